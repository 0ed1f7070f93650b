package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/store"
	"marketplace/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// KYCDraftKey is the storage key of the saved wizard draft.
const KYCDraftKey = "kycDraft"

// kycService implements the KYCUsecase interface. It owns the only copy of the
// draft and publishes a snapshot to the store after every change.
type kycService struct {
	kycRepo  repository.KYCRepository
	sampler  usecase.LocationSampler
	geocoder service.Geocoder
	storage  service.StateStorage
	state    *store.Store
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time

	mu         sync.Mutex
	draft      *entity.KYCDraft
	sampling   bool
	submitting bool
}

// NewKYCService is the constructor for kycService.
func NewKYCService(
	kycRepo repository.KYCRepository,
	sampler usecase.LocationSampler,
	geocoder service.Geocoder,
	storage service.StateStorage,
	state *store.Store,
	logger *slog.Logger,
) usecase.KYCUsecase {
	srv := &kycService{
		kycRepo:  kycRepo,
		sampler:  sampler,
		geocoder: geocoder,
		storage:  storage,
		state:    state,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
		now:      time.Now,
	}
	srv.draft = entity.NewKYCDraft(srv.now())
	srv.publish()

	return srv
}

func (srv *kycService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Draft returns a copy of the wizard state.
func (srv *kycService) Draft() entity.KYCDraft {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return cloneDraft(srv.draft)
}

// Steps describes every step for the progress header.
func (srv *kycService) Steps() []usecase.StepState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	steps := make([]usecase.StepState, 0, entity.KYCStepCount)
	for step := entity.KYCStepPersonal; step < entity.KYCStepCount; step++ {
		steps = append(steps, usecase.StepState{
			Step:       step,
			Completed:  srv.isStepCompleted(step),
			Accessible: srv.canAccessStep(step),
		})
	}

	return steps
}

// IsStepCompleted runs the step's validation. The personal step also needs a verified email.
func (srv *kycService) IsStepCompleted(step entity.KYCStep) bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.isStepCompleted(step)
}

// CanAccessStep allows a step once every earlier step is completed.
func (srv *kycService) CanAccessStep(step entity.KYCStep) bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.canAccessStep(step)
}

func (srv *kycService) isStepCompleted(step entity.KYCStep) bool {
	if !step.IsValid() {
		return false
	}
	if srv.validate.Struct(srv.draft.StepData(step)) != nil {
		return false
	}
	if step == entity.KYCStepPersonal && !srv.draft.EmailVerified() {
		return false
	}

	return true
}

func (srv *kycService) canAccessStep(step entity.KYCStep) bool {
	if !step.IsValid() {
		return false
	}
	for prev := entity.KYCStepPersonal; prev < step; prev++ {
		if !srv.isStepCompleted(prev) {
			return false
		}
	}

	return true
}

// SavePersonal stores step 0. A verified email address can no longer change.
func (srv *kycService) SavePersonal(ctx context.Context, info entity.KYCPersonalInfo) (*entity.KYCDraft, error) {
	info.Email = strings.TrimSpace(info.Email)

	return srv.saveStep(ctx, entity.KYCStepPersonal, func(d *entity.KYCDraft) error {
		if d.EmailVerified() && !strings.EqualFold(d.Personal.Email, info.Email) {
			return domainerrors.ErrKYCInvalidTransition.WithDetails("a verified email address cannot be changed")
		}
		info.IdentityDocumentURLs = slices.Clone(info.IdentityDocumentURLs)
		d.Personal = info

		return nil
	})
}

// EditLocation corrects the address text of the location step. Coordinates and
// the verified flag are left alone.
func (srv *kycService) EditLocation(ctx context.Context, edit usecase.LocationEdit) (*entity.KYCDraft, error) {
	return srv.saveStep(ctx, entity.KYCStepLocation, func(d *entity.KYCDraft) error {
		d.Location.Address = strings.TrimSpace(edit.Address)
		d.Location.City = strings.TrimSpace(edit.City)
		d.Location.Country = strings.TrimSpace(edit.Country)

		return nil
	})
}

// SaveShop stores step 2.
func (srv *kycService) SaveShop(ctx context.Context, info entity.KYCShopInfo) (*entity.KYCDraft, error) {
	return srv.saveStep(ctx, entity.KYCStepShop, func(d *entity.KYCDraft) error {
		d.Shop = info

		return nil
	})
}

// SaveBank stores step 3.
func (srv *kycService) SaveBank(ctx context.Context, info entity.KYCBankInfo) (*entity.KYCDraft, error) {
	return srv.saveStep(ctx, entity.KYCStepBank, func(d *entity.KYCDraft) error {
		d.Bank = info

		return nil
	})
}

// SaveReview stores step 4.
func (srv *kycService) SaveReview(ctx context.Context, review entity.KYCReview) (*entity.KYCDraft, error) {
	return srv.saveStep(ctx, entity.KYCStepReview, func(d *entity.KYCDraft) error {
		d.Review = review

		return nil
	})
}

// saveStep applies a step edit. Input is kept even when it fails validation so
// the form is not lost; the wizard only advances on valid input.
func (srv *kycService) saveStep(ctx context.Context, step entity.KYCStep, apply func(d *entity.KYCDraft) error) (*entity.KYCDraft, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.draft.Status == entity.KYCStatusSubmitted {
		return nil, domainerrors.ErrKYCAlreadySubmitted
	}
	if !srv.canAccessStep(step) {
		return nil, domainerrors.ErrKYCStepLocked.WithDetails(fmt.Sprintf("step %d", step))
	}

	if err := apply(srv.draft); err != nil {
		return nil, err
	}
	srv.draft.UpdatedAt = srv.now()

	verr := srv.validate.Struct(srv.draft.StepData(step))
	if verr == nil && srv.isStepCompleted(step) && step+1 < entity.KYCStepCount && srv.draft.CurrentStep <= step {
		srv.draft.CurrentStep = step + 1
	}

	srv.publish()

	draft := cloneDraft(srv.draft)
	if verr != nil {
		srv.log(ctx).Debug("kyc step saved with errors", slog.Int("step", int(step)))

		return &draft, domainerrors.ErrValidationFailed.WithDetails(describeValidation(verr))
	}

	return &draft, nil
}

// SendEmailCode asks the backend to mail a verification code. It may be repeated
// while the code is pending.
func (srv *kycService) SendEmailCode(ctx context.Context) error {
	srv.mu.Lock()
	email := srv.draft.Personal.Email
	status := srv.draft.Status
	srv.mu.Unlock()

	if err := srv.validate.Var(email, "required,email"); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("a valid email address is required")
	}
	if !status.CanTransitionTo(entity.KYCStatusEmailPending) {
		return domainerrors.ErrKYCInvalidTransition.WithDetails(fmt.Sprintf("cannot send a code while %s", status))
	}

	srv.state.KYC.Begin()
	if err := srv.kycRepo.SendEmailCode(ctx, email); err != nil {
		srv.state.KYC.Fail(err)

		return fmt.Errorf("failed to send email code: %w", err)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.draft.Status.CanTransitionTo(entity.KYCStatusEmailPending) {
		srv.draft.Status = entity.KYCStatusEmailPending
		srv.draft.UpdatedAt = srv.now()
	}
	srv.publish()

	srv.log(ctx).Info("kyc email code sent")

	return nil
}

// VerifyEmail checks the code the user received.
func (srv *kycService) VerifyEmail(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return domainerrors.ErrValidationFailed.WithDetails("verification code is required")
	}

	srv.mu.Lock()
	email := srv.draft.Personal.Email
	status := srv.draft.Status
	srv.mu.Unlock()

	if !status.CanTransitionTo(entity.KYCStatusEmailVerified) {
		return domainerrors.ErrKYCInvalidTransition.WithDetails(fmt.Sprintf("cannot verify while %s", status))
	}

	srv.state.KYC.Begin()
	if err := srv.kycRepo.VerifyEmail(ctx, email, code); err != nil {
		srv.state.KYC.Fail(err)

		return fmt.Errorf("failed to verify email: %w", err)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.draft.Status.CanTransitionTo(entity.KYCStatusEmailVerified) {
		srv.draft.Status = entity.KYCStatusEmailVerified
		srv.draft.UpdatedAt = srv.now()
	}
	if srv.isStepCompleted(entity.KYCStepPersonal) && srv.draft.CurrentStep == entity.KYCStepPersonal {
		srv.draft.CurrentStep = entity.KYCStepLocation
	}
	srv.publish()

	srv.log(ctx).Info("kyc email verified")

	return nil
}

// VerifyLocation runs one sampling window and reverse-geocodes the best reading.
// When both geocoders fail the step stays unverified.
func (srv *kycService) VerifyLocation(ctx context.Context) (*entity.ResolvedLocation, error) {
	srv.mu.Lock()
	switch {
	case srv.draft.Status == entity.KYCStatusSubmitted:
		srv.mu.Unlock()

		return nil, domainerrors.ErrKYCAlreadySubmitted
	case !srv.canAccessStep(entity.KYCStepLocation):
		srv.mu.Unlock()

		return nil, domainerrors.ErrKYCStepLocked.WithDetails("verify your email first")
	case srv.sampling:
		srv.mu.Unlock()

		return nil, domainerrors.ErrKYCInvalidTransition.WithDetails("location verification is already running")
	}
	srv.sampling = true
	srv.mu.Unlock()

	defer func() {
		srv.mu.Lock()
		srv.sampling = false
		srv.mu.Unlock()
	}()

	srv.state.Location.Begin()

	reading, samples, err := srv.sampler.Sample(ctx, func(p entity.LocationProgress) {
		srv.state.Progress.Set(&p)
	})
	if err != nil {
		srv.state.Location.Fail(err)

		return nil, err
	}

	address, err := srv.geocoder.ReverseGeocode(ctx, reading.Point)
	if err != nil {
		srv.state.Location.Fail(err)

		return nil, err
	}

	resolved := &entity.ResolvedLocation{
		Latitude:    reading.Latitude(),
		Longitude:   reading.Longitude(),
		Accuracy:    reading.Accuracy,
		DisplayName: address.DisplayName,
		Locality:    address.Locality,
		City:        address.City,
		Region:      address.Region,
		Country:     address.Country,
		CountryCode: address.CountryCode,
		Postcode:    address.Postcode,
		Source:      address.Source,
		SampleCount: samples,
		CapturedAt:  reading.Timestamp,
	}
	srv.state.Location.Set(resolved)

	lat, lon := resolved.Latitude, resolved.Longitude
	city := address.City
	if city == "" {
		city = address.Locality
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.draft.Location = entity.KYCLocationInfo{
		Latitude:   &lat,
		Longitude:  &lon,
		Accuracy:   resolved.Accuracy,
		Address:    address.DisplayName,
		City:       city,
		Country:    address.Country,
		Verified:   true,
		VerifiedBy: address.Source,
	}
	srv.draft.UpdatedAt = srv.now()
	if srv.isStepCompleted(entity.KYCStepLocation) && srv.draft.CurrentStep <= entity.KYCStepLocation {
		srv.draft.CurrentStep = entity.KYCStepShop
	}
	srv.publish()

	srv.log(ctx).Info("kyc location verified",
		slog.Int("samples", samples),
		slog.Float64("accuracy", resolved.Accuracy),
		slog.String("source", address.Source),
	)

	return resolved, nil
}

// SaveDraft writes the wizard state to local storage.
func (srv *kycService) SaveDraft(ctx context.Context) error {
	draft := srv.Draft()
	if draft.Status == entity.KYCStatusSubmitted {
		return domainerrors.ErrKYCAlreadySubmitted
	}

	if err := srv.storage.Save(ctx, KYCDraftKey, &draft); err != nil {
		return errors.Wrap(err, "failed to save kyc draft")
	}

	return nil
}

// LoadDraft restores a saved wizard state. It reports false when none was saved.
func (srv *kycService) LoadDraft(ctx context.Context) (bool, error) {
	var draft entity.KYCDraft
	found, err := srv.storage.Load(ctx, KYCDraftKey, &draft)
	if err != nil {
		return false, errors.Wrap(err, "failed to load kyc draft")
	}
	if !found {
		return false, nil
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	// A submitted application never goes back to editing.
	if srv.submitting || srv.draft.Status == entity.KYCStatusSubmitted {
		return false, domainerrors.ErrKYCAlreadySubmitted
	}
	if !draft.CurrentStep.IsValid() {
		draft.CurrentStep = entity.KYCStepPersonal
	}
	srv.draft = &draft
	srv.publish()

	return true, nil
}

// DiscardDraft removes the saved draft and starts over.
func (srv *kycService) DiscardDraft(ctx context.Context) error {
	if err := srv.storage.Delete(ctx, KYCDraftKey); err != nil {
		return errors.Wrap(err, "failed to delete kyc draft")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.draft = entity.NewKYCDraft(srv.now())
	srv.publish()

	return nil
}

// Submit sends the consolidated payload. Concurrent or repeated calls fail
// without reaching the backend.
func (srv *kycService) Submit(ctx context.Context) (*entity.KYCApplication, error) {
	srv.mu.Lock()
	if srv.submitting || srv.draft.Status == entity.KYCStatusSubmitted {
		srv.mu.Unlock()

		return nil, domainerrors.ErrKYCAlreadySubmitted
	}
	if !srv.draft.EmailVerified() {
		srv.mu.Unlock()

		return nil, domainerrors.ErrEmailNotVerified
	}
	for step := entity.KYCStepPersonal; step < entity.KYCStepCount; step++ {
		if !srv.isStepCompleted(step) {
			srv.mu.Unlock()

			return nil, domainerrors.ErrKYCIncomplete.WithDetails(fmt.Sprintf("step %d is not complete", step))
		}
	}
	srv.submitting = true
	submission := srv.draft.ToSubmission()
	srv.mu.Unlock()

	srv.state.KYC.Begin()
	application, err := srv.kycRepo.Submit(ctx, submission)

	srv.mu.Lock()
	srv.submitting = false
	if err != nil {
		srv.mu.Unlock()
		srv.state.KYC.Fail(err)

		return nil, fmt.Errorf("failed to submit kyc application: %w", err)
	}
	srv.draft.Status = entity.KYCStatusSubmitted
	srv.draft.UpdatedAt = srv.now()
	srv.publish()
	srv.mu.Unlock()

	if err := srv.storage.Delete(ctx, KYCDraftKey); err != nil {
		srv.log(ctx).Warn("failed to delete submitted kyc draft", slog.Any("error", err))
	}

	srv.log(ctx).Info("kyc application submitted", slog.String("application_id", application.ID))

	return application, nil
}

// publish mirrors the draft into the store. Callers hold mu.
func (srv *kycService) publish() {
	draft := cloneDraft(srv.draft)
	srv.state.KYC.Set(&draft)
}

func cloneDraft(d *entity.KYCDraft) entity.KYCDraft {
	out := *d
	out.Personal.IdentityDocumentURLs = slices.Clone(d.Personal.IdentityDocumentURLs)

	return out
}

// describeValidation lists the failing fields of a validator error.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}

	return strings.Join(fields, "; ")
}
