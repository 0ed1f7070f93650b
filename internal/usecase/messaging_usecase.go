package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// InboxUsecase maintains the inbox slice.
type InboxUsecase interface {
	List(ctx context.Context) ([]entity.InboxMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	UnreadCount() int
}

// NotificationUsecase maintains the notification slice.
type NotificationUsecase interface {
	List(ctx context.Context) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	UnreadCount() int
}
