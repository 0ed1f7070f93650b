package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/store"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	readings []entity.PositionReading
	errs     []entity.PositionError
}

func (p *recordingPublisher) PublishReading(reading entity.PositionReading) int {
	p.readings = append(p.readings, reading)

	return 1
}

func (p *recordingPublisher) PublishError(posErr entity.PositionError) int {
	p.errs = append(p.errs, posErr)

	return 1
}

func createTestKYCHandler(t *testing.T) (*KYCHandler, *mockUsecase.MockKYCUsecase, *recordingPublisher) {
	kyc := mockUsecase.NewMockKYCUsecase(t)
	publisher := &recordingPublisher{}

	return NewKYCHandler(kyc, publisher, store.NewStore(nil, nil)), kyc, publisher
}

func TestKYCHandler_PublishReading(t *testing.T) {
	h, _, publisher := createTestKYCHandler(t)
	c, rec := newTestContext(t, http.MethodPost, "/kyc/location/readings",
		`{"latitude":25.06,"longitude":121.53,"accuracy":20}`)

	require.NoError(t, h.PublishReading(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	require.Len(t, publisher.readings, 1)
	reading := publisher.readings[0]
	assert.InDelta(t, 25.06, reading.Latitude(), 1e-9)
	assert.InDelta(t, 121.53, reading.Longitude(), 1e-9)
	assert.InDelta(t, 20.0, reading.Accuracy, 1e-9)
}

func TestKYCHandler_PublishReading_OutOfRange(t *testing.T) {
	h, _, publisher := createTestKYCHandler(t)
	c, _ := newTestContext(t, http.MethodPost, "/kyc/location/readings",
		`{"latitude":95,"longitude":121.53,"accuracy":20}`)

	require.ErrorIs(t, h.PublishReading(c), domainerrors.ErrValidationFailed)
	assert.Empty(t, publisher.readings)
}

func TestKYCHandler_PublishError(t *testing.T) {
	h, _, publisher := createTestKYCHandler(t)
	c, _ := newTestContext(t, http.MethodPost, "/kyc/location/errors", `{"code":1,"reason":"denied"}`)

	require.NoError(t, h.PublishError(c))
	require.Len(t, publisher.errs, 1)
	assert.Equal(t, entity.PositionPermissionDenied, publisher.errs[0].Code)
}

func TestKYCHandler_SavePersonal_ValidationKeepsInput(t *testing.T) {
	h, kyc, _ := createTestKYCHandler(t)
	c, _ := newTestContext(t, http.MethodPut, "/kyc/personal", `{"firstName":"Ana"}`)

	kyc.EXPECT().SavePersonal(mock.Anything, mock.AnythingOfType("entity.KYCPersonalInfo")).
		Return(&entity.KYCDraft{}, domainerrors.ErrValidationFailed.WithDetails("email is required"))

	require.ErrorIs(t, h.SavePersonal(c), domainerrors.ErrValidationFailed)
}

func TestKYCHandler_VerifyEmail(t *testing.T) {
	h, kyc, _ := createTestKYCHandler(t)
	c, rec := newTestContext(t, http.MethodPost, "/kyc/email/verify", `{"code":"123456"}`)

	kyc.EXPECT().VerifyEmail(mock.Anything, "123456").Return(nil)
	kyc.EXPECT().Draft().Return(entity.KYCDraft{CurrentStep: entity.KYCStepLocation})
	kyc.EXPECT().Steps().Return([]usecase.StepState{{Step: entity.KYCStepPersonal, Completed: true, Accessible: true}})

	require.NoError(t, h.VerifyEmail(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestKYCHandler_VerifyEmail_BadCode(t *testing.T) {
	h, _, _ := createTestKYCHandler(t)
	c, _ := newTestContext(t, http.MethodPost, "/kyc/email/verify", `{"code":"12ab"}`)

	require.ErrorIs(t, h.VerifyEmail(c), domainerrors.ErrValidationFailed)
}

func TestKYCHandler_Submit(t *testing.T) {
	h, kyc, _ := createTestKYCHandler(t)
	c, rec := newTestContext(t, http.MethodPost, "/kyc/submit", "")

	kyc.EXPECT().Submit(mock.Anything).Return(&entity.KYCApplication{ID: "app-1"}, nil)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
