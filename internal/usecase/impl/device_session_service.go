package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/store"
	"marketplace/internal/usecase"
)

// deviceSessionService implements the DeviceSessionUsecase interface.
type deviceSessionService struct {
	sessionRepo repository.DeviceSessionRepository
	state       *store.Store
	logger      *slog.Logger
}

// NewDeviceSessionService is the constructor for deviceSessionService.
func NewDeviceSessionService(
	sessionRepo repository.DeviceSessionRepository,
	state *store.Store,
	logger *slog.Logger,
) usecase.DeviceSessionUsecase {
	return &deviceSessionService{
		sessionRepo: sessionRepo,
		state:       state,
		logger:      logger,
	}
}

func (srv *deviceSessionService) List(ctx context.Context) ([]entity.DeviceSession, error) {
	srv.state.Sessions.Begin()

	sessions, err := srv.sessionRepo.List(ctx)
	if err != nil {
		srv.state.Sessions.Fail(err)

		return nil, fmt.Errorf("failed to list device sessions: %w", err)
	}

	srv.state.Sessions.SetItems(sessions, nil)

	return sessions, nil
}

func (srv *deviceSessionService) Revoke(ctx context.Context, id string) error {
	srv.state.Sessions.Begin()

	if err := srv.sessionRepo.Revoke(ctx, id); err != nil {
		srv.state.Sessions.Fail(err)

		return fmt.Errorf("failed to revoke device session: %w", err)
	}

	srv.state.Sessions.Update(func(items []entity.DeviceSession) []entity.DeviceSession {
		return removeWhere(items, func(s *entity.DeviceSession) bool { return s.ID == id })
	})

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("device session revoked", slog.String("session_id", id))

	return nil
}

// RevokeOthers signs out every device except the current one.
func (srv *deviceSessionService) RevokeOthers(ctx context.Context) error {
	srv.state.Sessions.Begin()

	if err := srv.sessionRepo.RevokeOthers(ctx); err != nil {
		srv.state.Sessions.Fail(err)

		return fmt.Errorf("failed to revoke other device sessions: %w", err)
	}

	srv.state.Sessions.Update(func(items []entity.DeviceSession) []entity.DeviceSession {
		return removeWhere(items, func(s *entity.DeviceSession) bool { return !s.IsCurrent })
	})

	return nil
}
