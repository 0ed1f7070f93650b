// Package repository defines the gateways to the marketplace REST backend.
// These interfaces act as a contract between the usecase layer and the API client in infra.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// UserRepository reaches /api/v1/users.
type UserRepository interface {
	// List returns one page of users matching the filter.
	List(ctx context.Context, filter entity.UserFilter) ([]entity.User, *entity.Pagination, error)

	// FindByID retrieves a single user.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// UpdateStatus changes the account status of a user (admin only).
	UpdateStatus(ctx context.Context, id string, status entity.AccountStatus, reason string) (*entity.User, error)
}
