package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// InboxRepository reaches /api/v1/inbox.
type InboxRepository interface {
	List(ctx context.Context) ([]entity.InboxMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// NotificationRepository reaches /api/v1/notifications.
type NotificationRepository interface {
	List(ctx context.Context) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}
