package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInboxService_UnreadCountFollowsMutations(t *testing.T) {
	inboxRepo := mockRepo.NewMockInboxRepository(t)
	state := newTestStore(t)
	srv := NewInboxService(inboxRepo, state, newTestLogger())
	ctx := context.Background()

	inboxRepo.EXPECT().List(ctx).Return([]entity.InboxMessage{
		{ID: "m1"},
		{ID: "m2"},
		{ID: "m3", IsRead: true},
	}, nil)
	inboxRepo.EXPECT().MarkRead(ctx, "m1").Return(nil)
	inboxRepo.EXPECT().Delete(ctx, "m2").Return(nil)

	_, err := srv.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, srv.UnreadCount())

	require.NoError(t, srv.MarkRead(ctx, "m1"))
	assert.Equal(t, 1, srv.UnreadCount())

	require.NoError(t, srv.Delete(ctx, "m2"))
	assert.Equal(t, 0, srv.UnreadCount())
	assert.Len(t, state.Inbox.Items(), 2)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	state := newTestStore(t)
	srv := NewNotificationService(notificationRepo, state, newTestLogger())
	ctx := context.Background()

	state.Notifications.SetItems([]entity.Notification{{ID: "n1"}, {ID: "n2"}}, nil)
	notificationRepo.EXPECT().MarkRead(ctx, "n1").Return(nil)
	notificationRepo.EXPECT().MarkAllRead(ctx).Return(nil)

	require.NoError(t, srv.MarkRead(ctx, "n1"))
	assert.Equal(t, 1, srv.UnreadCount())

	require.NoError(t, srv.MarkAllRead(ctx))
	assert.Equal(t, 0, srv.UnreadCount())
}

func TestNotificationService_MarkAllRead_Failure(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	state := newTestStore(t)
	srv := NewNotificationService(notificationRepo, state, newTestLogger())
	ctx := context.Background()

	state.Notifications.SetItems([]entity.Notification{{ID: "n1"}}, nil)
	notificationRepo.EXPECT().MarkAllRead(ctx).Return(errors.New("offline"))

	require.Error(t, srv.MarkAllRead(ctx))
	assert.Equal(t, 1, srv.UnreadCount())
	assert.Equal(t, "offline", state.Notifications.Snapshot().Error)
}
