package handler

import (
	"net/http"
	"time"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/store"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// PositionPublisher forwards device geolocation callbacks to open watches.
type PositionPublisher interface {
	PublishReading(reading entity.PositionReading) int
	PublishError(posErr entity.PositionError) int
}

// KYCHandler drives the vendor onboarding wizard.
type KYCHandler struct {
	kyc       usecase.KYCUsecase
	positions PositionPublisher
	state     *store.Store
}

// NewKYCHandler is the constructor for KYCHandler.
func NewKYCHandler(kyc usecase.KYCUsecase, positions PositionPublisher, state *store.Store) *KYCHandler {
	return &KYCHandler{
		kyc:       kyc,
		positions: positions,
		state:     state,
	}
}

type verifyEmailRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

type positionReadingRequest struct {
	Latitude  float64   `json:"latitude" validate:"latitude"`
	Longitude float64   `json:"longitude" validate:"longitude"`
	Accuracy  float64   `json:"accuracy" validate:"gte=0"`
	Timestamp time.Time `json:"timestamp"`
}

type positionErrorRequest struct {
	Code   entity.PositionErrorCode `json:"code" validate:"gte=0,lte=3"`
	Reason string                   `json:"reason"`
}

type wizardResponse struct {
	Draft entity.KYCDraft     `json:"draft"`
	Steps []usecase.StepState `json:"steps"`
}

func (h *KYCHandler) wizard(c echo.Context) error {
	return response.OK(c, wizardResponse{
		Draft: h.kyc.Draft(),
		Steps: h.kyc.Steps(),
	})
}

// GetWizard returns the draft and the completion of every step.
func (h *KYCHandler) GetWizard(c echo.Context) error {
	return h.wizard(c)
}

// savedStep writes the wizard after a step save. Validation failures still
// return the error envelope; the input is kept in the draft.
func (h *KYCHandler) savedStep(c echo.Context, err error) error {
	if err != nil {
		return errors.WithStack(err)
	}

	return h.wizard(c)
}

// SavePersonal saves step 0.
func (h *KYCHandler) SavePersonal(c echo.Context) error {
	var input entity.KYCPersonalInfo
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid personal information")
	}

	_, err := h.kyc.SavePersonal(c.Request().Context(), input)

	return h.savedStep(c, err)
}

// EditLocation corrects the address text of step 1.
func (h *KYCHandler) EditLocation(c echo.Context) error {
	var input usecase.LocationEdit
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid location")
	}

	_, err := h.kyc.EditLocation(c.Request().Context(), input)

	return h.savedStep(c, err)
}

// SaveShop saves step 2.
func (h *KYCHandler) SaveShop(c echo.Context) error {
	var input entity.KYCShopInfo
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid shop information")
	}

	_, err := h.kyc.SaveShop(c.Request().Context(), input)

	return h.savedStep(c, err)
}

// SaveBank saves step 3.
func (h *KYCHandler) SaveBank(c echo.Context) error {
	var input entity.KYCBankInfo
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid bank information")
	}

	_, err := h.kyc.SaveBank(c.Request().Context(), input)

	return h.savedStep(c, err)
}

// SaveReview saves step 4.
func (h *KYCHandler) SaveReview(c echo.Context) error {
	var input entity.KYCReview
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid review")
	}

	_, err := h.kyc.SaveReview(c.Request().Context(), input)

	return h.savedStep(c, err)
}

// SendEmailCode asks the backend to email a verification code.
func (h *KYCHandler) SendEmailCode(c echo.Context) error {
	if err := h.kyc.SendEmailCode(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

// VerifyEmail checks the emailed code.
func (h *KYCHandler) VerifyEmail(c echo.Context) error {
	var input verifyEmailRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	return h.savedStep(c, h.kyc.VerifyEmail(c.Request().Context(), input.Code))
}

// VerifyLocation samples the device position and reverse-geocodes the best reading.
// It blocks for the sampling window.
func (h *KYCHandler) VerifyLocation(c echo.Context) error {
	location, err := h.kyc.VerifyLocation(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, location)
}

// LocationStatus returns the sampling progress and the last resolved location.
func (h *KYCHandler) LocationStatus(c echo.Context) error {
	location := h.state.Location.Snapshot()

	return response.OK(c, map[string]any{
		"progress": h.state.Progress.Get(),
		"location": location.Data,
		"loading":  location.Loading,
		"error":    location.Error,
	})
}

// PublishReading receives one geolocation fix from the device.
func (h *KYCHandler) PublishReading(c echo.Context) error {
	var input positionReadingRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	delivered := h.positions.PublishReading(entity.PositionReading{
		Point:     orb.Point{input.Longitude, input.Latitude},
		Accuracy:  input.Accuracy,
		Timestamp: input.Timestamp,
	})

	return response.Success(c, http.StatusAccepted, map[string]int{"delivered": delivered}, "")
}

// PublishError receives a geolocation failure from the device.
func (h *KYCHandler) PublishError(c echo.Context) error {
	var input positionErrorRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	delivered := h.positions.PublishError(entity.PositionError{Code: input.Code, Reason: input.Reason})

	return response.Success(c, http.StatusAccepted, map[string]int{"delivered": delivered}, "")
}

// SaveDraft stores the draft locally.
func (h *KYCHandler) SaveDraft(c echo.Context) error {
	if err := h.kyc.SaveDraft(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Draft saved")
}

// RestoreDraft reloads the saved draft, if any.
func (h *KYCHandler) RestoreDraft(c echo.Context) error {
	restored, err := h.kyc.LoadDraft(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{
		"restored": restored,
		"draft":    h.kyc.Draft(),
		"steps":    h.kyc.Steps(),
	})
}

// DiscardDraft deletes the saved draft and starts over.
func (h *KYCHandler) DiscardDraft(c echo.Context) error {
	if err := h.kyc.DiscardDraft(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return h.wizard(c)
}

// Submit sends the application.
func (h *KYCHandler) Submit(c echo.Context) error {
	application, err := h.kyc.Submit(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, application, "Application submitted")
}
