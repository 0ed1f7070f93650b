package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKYCStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to KYCStatus
		want     bool
	}{
		{KYCStatusDraft, KYCStatusEmailPending, true},
		{KYCStatusEmailPending, KYCStatusEmailPending, true},
		{KYCStatusEmailPending, KYCStatusEmailVerified, true},
		{KYCStatusEmailVerified, KYCStatusSubmitted, true},
		{KYCStatusDraft, KYCStatusSubmitted, false},
		{KYCStatusEmailVerified, KYCStatusDraft, false},
		{KYCStatusSubmitted, KYCStatusDraft, false},
		{KYCStatusSubmitted, KYCStatusEmailPending, false},
		{KYCStatus("bogus"), KYCStatusEmailPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestKYCDraft_ToSubmissionUsesSnakeCase(t *testing.T) {
	lat, lon := 6.5244, 3.3792
	draft := NewKYCDraft(time.Now())
	draft.Personal = KYCPersonalInfo{
		FirstName:            "Ada",
		LastName:             "Obi",
		Email:                "ada@example.com",
		Phone:                "+2348000000000",
		IdentityDocumentURLs: []string{"https://cdn/id-front.png", "https://cdn/id-back.png"},
	}
	draft.Location = KYCLocationInfo{Latitude: &lat, Longitude: &lon, Address: "Lagos", Country: "Nigeria", Verified: true}
	draft.Shop = KYCShopInfo{StoreName: "Ada Crafts", StoreDescription: "Beads", BusinessCategory: "crafts", BusinessPhone: "+234", BusinessAddress: "Yaba"}
	draft.Bank = KYCBankInfo{AccountHolderName: "Ada Obi", BankName: "GTB", AccountNumber: "0123456789", ConfirmAccountNumber: "0123456789", RoutingNumber: "058"}
	draft.Review.TermsAccepted = true

	raw, err := json.Marshal(draft.ToSubmission())
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, "Ada", payload["first_name"])
	assert.Equal(t, "Ada Crafts", payload["store_name"])
	assert.Equal(t, "0123456789", payload["account_number"])
	assert.Equal(t, lat, payload["latitude"])
	assert.Len(t, payload["identity_document_urls"], 2)
	assert.NotContains(t, payload, "confirmAccountNumber")
	assert.NotContains(t, payload, "firstName")
}

func TestOrderStatus_Transitions(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusConfirmed))
	assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusDelivered))
	assert.True(t, OrderStatusDelivered.CanTransitionTo(OrderStatusRefunded))
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusShipped))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusPending))
	assert.True(t, OrderStatusRefunded.IsTerminal())
	assert.True(t, OrderStatusConfirmed.CustomerCancellable())
	assert.False(t, OrderStatusProcessing.CustomerCancellable())
}

func TestPositionError_MessagesAreDistinct(t *testing.T) {
	messages := map[string]bool{}
	for _, code := range []PositionErrorCode{PositionPermissionDenied, PositionUnavailable, PositionTimeout, PositionUnknownError} {
		messages[(&PositionError{Code: code}).Error()] = true
	}

	assert.Len(t, messages, 4)
}
