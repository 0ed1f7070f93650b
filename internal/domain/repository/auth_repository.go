package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// AuthRepository reaches /api/v1/auth.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*entity.Session, error)
	// GoogleLogin exchanges a Google credential (ID token or auth code) for a session.
	GoogleLogin(ctx context.Context, credential string) (*entity.Session, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*entity.User, error)
}

// DeviceSessionRepository reaches /api/v1/device-sessions.
type DeviceSessionRepository interface {
	List(ctx context.Context) ([]entity.DeviceSession, error)
	Revoke(ctx context.Context, id string) error
	RevokeOthers(ctx context.Context) error
}
