package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// KYCRepository reaches /api/v1/kyc.
type KYCRepository interface {
	SendEmailCode(ctx context.Context, email string) error
	VerifyEmail(ctx context.Context, email, code string) error
	Submit(ctx context.Context, submission entity.KYCSubmission) (*entity.KYCApplication, error)
}

// AdminRepository reaches /api/v1/admin.
type AdminRepository interface {
	DashboardStats(ctx context.Context) (*entity.DashboardStats, error)
}
