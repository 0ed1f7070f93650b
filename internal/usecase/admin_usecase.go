package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// UpdateUserStatusInput is an admin account moderation request.
type UpdateUserStatusInput struct {
	Status entity.AccountStatus `json:"status" validate:"required,oneof=active inactive suspended pending_deletion deleted"`
	Reason string               `json:"reason" validate:"max=500"`
}

// UserAdminUsecase lists and moderates accounts.
type UserAdminUsecase interface {
	List(ctx context.Context, filter entity.UserFilter) ([]entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	UpdateStatus(ctx context.Context, id string, input UpdateUserStatusInput) (*entity.User, error)
}

// DashboardUsecase loads the admin dashboard summary.
type DashboardUsecase interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}
