package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessagingHandler serves the inbox and notifications.
type MessagingHandler struct {
	inbox         usecase.InboxUsecase
	notifications usecase.NotificationUsecase
}

// NewMessagingHandler is the constructor for MessagingHandler.
func NewMessagingHandler(inbox usecase.InboxUsecase, notifications usecase.NotificationUsecase) *MessagingHandler {
	return &MessagingHandler{inbox: inbox, notifications: notifications}
}

// Inbox returns the messages and the unread count.
func (h *MessagingHandler) Inbox(c echo.Context) error {
	messages, err := h.inbox.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{
		"items":  messages,
		"unread": h.inbox.UnreadCount(),
	})
}

// MarkMessageRead marks one message read.
func (h *MessagingHandler) MarkMessageRead(c echo.Context) error {
	if err := h.inbox.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]int{"unread": h.inbox.UnreadCount()})
}

// DeleteMessage removes one message.
func (h *MessagingHandler) DeleteMessage(c echo.Context) error {
	if err := h.inbox.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"unread": h.inbox.UnreadCount()}, "Message deleted")
}

// Notifications returns the notifications and the unread count.
func (h *MessagingHandler) Notifications(c echo.Context) error {
	notifications, err := h.notifications.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{
		"items":  notifications,
		"unread": h.notifications.UnreadCount(),
	})
}

// MarkNotificationRead marks one notification read.
func (h *MessagingHandler) MarkNotificationRead(c echo.Context) error {
	if err := h.notifications.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]int{"unread": h.notifications.UnreadCount()})
}

// MarkAllNotificationsRead marks every notification read.
func (h *MessagingHandler) MarkAllNotificationsRead(c echo.Context) error {
	if err := h.notifications.MarkAllRead(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]int{"unread": h.notifications.UnreadCount()})
}
