package impl

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/store"
	"marketplace/internal/usecase"
	"marketplace/internal/view"
)

// inboxService implements the InboxUsecase interface.
type inboxService struct {
	inboxRepo repository.InboxRepository
	state     *store.Store
	logger    *slog.Logger
}

// NewInboxService is the constructor for inboxService.
func NewInboxService(inboxRepo repository.InboxRepository, state *store.Store, logger *slog.Logger) usecase.InboxUsecase {
	return &inboxService{
		inboxRepo: inboxRepo,
		state:     state,
		logger:    logger,
	}
}

func (srv *inboxService) List(ctx context.Context) ([]entity.InboxMessage, error) {
	srv.state.Inbox.Begin()

	messages, err := srv.inboxRepo.List(ctx)
	if err != nil {
		srv.state.Inbox.Fail(err)

		return nil, fmt.Errorf("failed to list inbox: %w", err)
	}

	srv.state.Inbox.SetItems(messages, nil)

	return messages, nil
}

func (srv *inboxService) MarkRead(ctx context.Context, id string) error {
	srv.state.Inbox.Begin()

	if err := srv.inboxRepo.MarkRead(ctx, id); err != nil {
		srv.state.Inbox.Fail(err)

		return fmt.Errorf("failed to mark message read: %w", err)
	}

	srv.state.Inbox.Update(func(items []entity.InboxMessage) []entity.InboxMessage {
		for i := range items {
			if items[i].ID == id {
				items[i].IsRead = true
			}
		}

		return items
	})

	return nil
}

func (srv *inboxService) Delete(ctx context.Context, id string) error {
	srv.state.Inbox.Begin()

	if err := srv.inboxRepo.Delete(ctx, id); err != nil {
		srv.state.Inbox.Fail(err)

		return fmt.Errorf("failed to delete message: %w", err)
	}

	srv.state.Inbox.Update(func(items []entity.InboxMessage) []entity.InboxMessage {
		return removeWhere(items, func(m *entity.InboxMessage) bool { return m.ID == id })
	})

	return nil
}

func (srv *inboxService) UnreadCount() int {
	return view.UnreadMessages(srv.state.Inbox.Items())
}

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	state            *store.Store
	logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	state *store.Store,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		state:            state,
		logger:           logger,
	}
}

func (srv *notificationService) List(ctx context.Context) ([]entity.Notification, error) {
	srv.state.Notifications.Begin()

	notifications, err := srv.notificationRepo.List(ctx)
	if err != nil {
		srv.state.Notifications.Fail(err)

		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	srv.state.Notifications.SetItems(notifications, nil)

	return notifications, nil
}

func (srv *notificationService) MarkRead(ctx context.Context, id string) error {
	srv.state.Notifications.Begin()

	if err := srv.notificationRepo.MarkRead(ctx, id); err != nil {
		srv.state.Notifications.Fail(err)

		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	srv.markRead(func(n *entity.Notification) bool { return n.ID == id })

	return nil
}

func (srv *notificationService) MarkAllRead(ctx context.Context) error {
	srv.state.Notifications.Begin()

	if err := srv.notificationRepo.MarkAllRead(ctx); err != nil {
		srv.state.Notifications.Fail(err)

		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}

	srv.markRead(func(*entity.Notification) bool { return true })

	return nil
}

func (srv *notificationService) UnreadCount() int {
	return view.UnreadNotifications(srv.state.Notifications.Items())
}

func (srv *notificationService) markRead(match func(*entity.Notification) bool) {
	srv.state.Notifications.Update(func(items []entity.Notification) []entity.Notification {
		for i := range items {
			if match(&items[i]) {
				items[i].IsRead = true
			}
		}

		return items
	})
}
