package entity

import (
	"time"

	"github.com/google/uuid"
)

// KYCStatus is the state of the vendor onboarding wizard.
// It only moves forward: draft -> email_pending -> email_verified -> submitted.
type KYCStatus string

const (
	KYCStatusDraft         KYCStatus = "draft"
	KYCStatusEmailPending  KYCStatus = "email_pending"
	KYCStatusEmailVerified KYCStatus = "email_verified"
	KYCStatusSubmitted     KYCStatus = "submitted"
)

var kycOrder = map[KYCStatus]int{
	KYCStatusDraft:         0,
	KYCStatusEmailPending:  1,
	KYCStatusEmailVerified: 2,
	KYCStatusSubmitted:     3,
}

// CanTransitionTo allows only the next state in the chain. Re-sending the
// email code (email_pending -> email_pending) is also allowed.
func (s KYCStatus) CanTransitionTo(next KYCStatus) bool {
	if s == KYCStatusEmailPending && next == KYCStatusEmailPending {
		return true
	}

	from, ok := kycOrder[s]
	if !ok {
		return false
	}
	to, ok := kycOrder[next]
	if !ok {
		return false
	}

	return to == from+1
}

// KYCStep indexes the five wizard steps.
type KYCStep int

const (
	KYCStepPersonal KYCStep = iota
	KYCStepLocation
	KYCStepShop
	KYCStepBank
	KYCStepReview

	KYCStepCount = 5
)

// IsValid checks if the step index is inside the wizard.
func (s KYCStep) IsValid() bool {
	return s >= KYCStepPersonal && s < KYCStepCount
}

// KYCPersonalInfo is step 0.
type KYCPersonalInfo struct {
	FirstName            string   `json:"firstName" validate:"required"`
	LastName             string   `json:"lastName" validate:"required"`
	Email                string   `json:"email" validate:"required,email"`
	Phone                string   `json:"phone" validate:"required"`
	IdentityDocumentURLs []string `json:"identityDocumentUrls" validate:"min=2,dive,required"`
}

// KYCLocationInfo is step 1, filled by the location verification sub-flow.
type KYCLocationInfo struct {
	Latitude   *float64 `json:"latitude" validate:"required"`
	Longitude  *float64 `json:"longitude" validate:"required"`
	Accuracy   float64  `json:"accuracy"`
	Address    string   `json:"address" validate:"required"`
	City       string   `json:"city"`
	Country    string   `json:"country" validate:"required"`
	Verified   bool     `json:"verified" validate:"eq=true"`
	VerifiedBy string   `json:"verifiedBy,omitempty"`
}

// KYCShopInfo is step 2.
type KYCShopInfo struct {
	StoreName        string `json:"storeName" validate:"required"`
	StoreDescription string `json:"storeDescription" validate:"required"`
	BusinessCategory string `json:"businessCategory" validate:"required"`
	BusinessPhone    string `json:"businessPhone" validate:"required"`
	BusinessAddress  string `json:"businessAddress" validate:"required"`
}

// KYCBankInfo is step 3. The confirmation must match the account number.
type KYCBankInfo struct {
	AccountHolderName    string `json:"accountHolderName" validate:"required"`
	BankName             string `json:"bankName" validate:"required"`
	AccountNumber        string `json:"accountNumber" validate:"required"`
	ConfirmAccountNumber string `json:"confirmAccountNumber" validate:"required,eqfield=AccountNumber"`
	RoutingNumber        string `json:"routingNumber" validate:"required"`
}

// KYCReview is step 4.
type KYCReview struct {
	TermsAccepted bool `json:"termsAccepted" validate:"eq=true"`
}

// KYCDraft is the in-memory wizard object accumulated before the single submission.
type KYCDraft struct {
	ID          uuid.UUID       `json:"id"`
	Status      KYCStatus       `json:"status"`
	CurrentStep KYCStep         `json:"currentStep"`
	Personal    KYCPersonalInfo `json:"personal"`
	Location    KYCLocationInfo `json:"location"`
	Shop        KYCShopInfo     `json:"shop"`
	Bank        KYCBankInfo     `json:"bank"`
	Review      KYCReview       `json:"review"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewKYCDraft creates an empty draft in the draft state.
func NewKYCDraft(now time.Time) *KYCDraft {
	return &KYCDraft{
		ID:          uuid.New(),
		Status:      KYCStatusDraft,
		CurrentStep: KYCStepPersonal,
		UpdatedAt:   now,
	}
}

// EmailVerified reports whether the email step of the state machine is done.
func (d *KYCDraft) EmailVerified() bool {
	return d.Status == KYCStatusEmailVerified || d.Status == KYCStatusSubmitted
}

// StepData returns the struct validated for the given step.
func (d *KYCDraft) StepData(step KYCStep) any {
	switch step {
	case KYCStepPersonal:
		return &d.Personal
	case KYCStepLocation:
		return &d.Location
	case KYCStepShop:
		return &d.Shop
	case KYCStepBank:
		return &d.Bank
	case KYCStepReview:
		return &d.Review
	default:
		return nil
	}
}

// ToSubmission maps the camelCase wizard state to the snake_case API payload.
func (d *KYCDraft) ToSubmission() KYCSubmission {
	sub := KYCSubmission{
		FirstName:            d.Personal.FirstName,
		LastName:             d.Personal.LastName,
		Email:                d.Personal.Email,
		Phone:                d.Personal.Phone,
		IdentityDocumentURLs: append([]string(nil), d.Personal.IdentityDocumentURLs...),
		Address:              d.Location.Address,
		City:                 d.Location.City,
		Country:              d.Location.Country,
		LocationAccuracy:     d.Location.Accuracy,
		StoreName:            d.Shop.StoreName,
		StoreDescription:     d.Shop.StoreDescription,
		BusinessCategory:     d.Shop.BusinessCategory,
		BusinessPhone:        d.Shop.BusinessPhone,
		BusinessAddress:      d.Shop.BusinessAddress,
		AccountHolderName:    d.Bank.AccountHolderName,
		BankName:             d.Bank.BankName,
		AccountNumber:        d.Bank.AccountNumber,
		RoutingNumber:        d.Bank.RoutingNumber,
		TermsAccepted:        d.Review.TermsAccepted,
	}
	if d.Location.Latitude != nil {
		sub.Latitude = *d.Location.Latitude
	}
	if d.Location.Longitude != nil {
		sub.Longitude = *d.Location.Longitude
	}

	return sub
}

// KYCSubmission is the consolidated payload of POST /api/v1/kyc/submit.
type KYCSubmission struct {
	FirstName            string   `json:"first_name"`
	LastName             string   `json:"last_name"`
	Email                string   `json:"email"`
	Phone                string   `json:"phone"`
	IdentityDocumentURLs []string `json:"identity_document_urls"`
	Latitude             float64  `json:"latitude"`
	Longitude            float64  `json:"longitude"`
	LocationAccuracy     float64  `json:"location_accuracy"`
	Address              string   `json:"address"`
	City                 string   `json:"city"`
	Country              string   `json:"country"`
	StoreName            string   `json:"store_name"`
	StoreDescription     string   `json:"store_description"`
	BusinessCategory     string   `json:"business_category"`
	BusinessPhone        string   `json:"business_phone"`
	BusinessAddress      string   `json:"business_address"`
	AccountHolderName    string   `json:"account_holder_name"`
	BankName             string   `json:"bank_name"`
	AccountNumber        string   `json:"account_number"`
	RoutingNumber        string   `json:"routing_number"`
	TermsAccepted        bool     `json:"terms_accepted"`
}

// KYCApplication is the backend record created by a submission.
type KYCApplication struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}
