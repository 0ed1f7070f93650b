package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// StepState describes one wizard step for the view.
type StepState struct {
	Step       entity.KYCStep `json:"step"`
	Completed  bool           `json:"completed"`
	Accessible bool           `json:"accessible"`
}

// LocationEdit is the part of the location step the user may correct by hand.
// Coordinates only come from VerifyLocation.
type LocationEdit struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city"`
	Country string `json:"country" validate:"required"`
}

// KYCUsecase drives the five-step vendor onboarding wizard.
type KYCUsecase interface {
	Draft() entity.KYCDraft
	Steps() []StepState
	IsStepCompleted(step entity.KYCStep) bool
	CanAccessStep(step entity.KYCStep) bool

	SavePersonal(ctx context.Context, info entity.KYCPersonalInfo) (*entity.KYCDraft, error)
	EditLocation(ctx context.Context, edit LocationEdit) (*entity.KYCDraft, error)
	SaveShop(ctx context.Context, info entity.KYCShopInfo) (*entity.KYCDraft, error)
	SaveBank(ctx context.Context, info entity.KYCBankInfo) (*entity.KYCDraft, error)
	SaveReview(ctx context.Context, review entity.KYCReview) (*entity.KYCDraft, error)

	SendEmailCode(ctx context.Context) error
	VerifyEmail(ctx context.Context, code string) error

	// VerifyLocation samples positions for the configured window, keeps the most
	// accurate reading and reverse-geocodes it.
	VerifyLocation(ctx context.Context) (*entity.ResolvedLocation, error)

	SaveDraft(ctx context.Context) error
	LoadDraft(ctx context.Context) (bool, error)
	DiscardDraft(ctx context.Context) error

	// Submit sends the consolidated payload once.
	Submit(ctx context.Context) (*entity.KYCApplication, error)
}

// LocationSampler watches positions for a fixed window.
type LocationSampler interface {
	// Sample returns the reading with the smallest accuracy radius seen during the
	// window and the number of readings received.
	Sample(ctx context.Context, onProgress func(entity.LocationProgress)) (*entity.PositionReading, int, error)
}
