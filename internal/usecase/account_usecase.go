package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// LoginInput is an email and password sign-in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleSignInInput completes a Google sign-in redirect.
type GoogleSignInInput struct {
	State      string `json:"state" validate:"required"`
	Credential string `json:"credential" validate:"required"`
}

// AuthUsecase owns the persisted auth slice.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*entity.Session, error)
	// BeginGoogleSignIn returns the authorization URL and its one-time state, in that order.
	BeginGoogleSignIn() (string, string)
	// GoogleSignIn honors ctx cancellation: a cancelled sign-in never stores a session.
	GoogleSignIn(ctx context.Context, input GoogleSignInInput) (*entity.Session, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*entity.User, error)
	// Roles returns the roles of the stored session, or nil when signed out or expired.
	Roles() entity.Roles
}

// AddressUsecase maintains the address book.
type AddressUsecase interface {
	List(ctx context.Context) ([]entity.Address, error)
	Create(ctx context.Context, address entity.Address) (*entity.Address, error)
	Update(ctx context.Context, id string, address entity.Address) (*entity.Address, error)
	Delete(ctx context.Context, id string) error
	SetDefault(ctx context.Context, id string) (*entity.Address, error)
}

// DeviceSessionUsecase lists and revokes signed-in devices.
type DeviceSessionUsecase interface {
	List(ctx context.Context) ([]entity.DeviceSession, error)
	Revoke(ctx context.Context, id string) error
	RevokeOthers(ctx context.Context) error
}
