package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/store"
	"marketplace/internal/usecase"
)

// userAdminService implements the UserAdminUsecase interface.
type userAdminService struct {
	userRepo repository.UserRepository
	state    *store.Store
	logger   *slog.Logger
}

// NewUserAdminService is the constructor for userAdminService.
func NewUserAdminService(userRepo repository.UserRepository, state *store.Store, logger *slog.Logger) usecase.UserAdminUsecase {
	return &userAdminService{
		userRepo: userRepo,
		state:    state,
		logger:   logger,
	}
}

func (srv *userAdminService) List(ctx context.Context, filter entity.UserFilter) ([]entity.User, error) {
	srv.state.Users.Begin()

	users, pagination, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		srv.state.Users.Fail(err)

		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	srv.state.Users.SetItems(users, pagination)

	return users, nil
}

func (srv *userAdminService) Get(ctx context.Context, id string) (*entity.User, error) {
	srv.state.Users.Begin()

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		srv.state.Users.Fail(err)

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	srv.state.Users.Select(user)

	return user, nil
}

func (srv *userAdminService) UpdateStatus(ctx context.Context, id string, input usecase.UpdateUserStatusInput) (*entity.User, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown account status %q", input.Status))
	}

	srv.state.Users.Begin()

	user, err := srv.userRepo.UpdateStatus(ctx, id, input.Status, strings.TrimSpace(input.Reason))
	if err != nil {
		srv.state.Users.Fail(err)

		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	srv.state.Users.Update(func(items []entity.User) []entity.User {
		for i := range items {
			if items[i].ID == id {
				items[i] = *user
			}
		}

		return items
	})

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("user status updated",
		slog.String("user_id", id),
		slog.String("status", string(input.Status)),
	)

	return user, nil
}

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	adminRepo repository.AdminRepository
	state     *store.Store
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(adminRepo repository.AdminRepository, state *store.Store) usecase.DashboardUsecase {
	return &dashboardService{adminRepo: adminRepo, state: state}
}

func (srv *dashboardService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	srv.state.AdminStats.Begin()

	stats, err := srv.adminRepo.DashboardStats(ctx)
	if err != nil {
		srv.state.AdminStats.Fail(err)

		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	srv.state.AdminStats.Set(stats)

	return stats, nil
}
