package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/store"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	state     *store.Store
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	state := newTestStore(t)

	return orderServiceFixtures{
		service:   NewOrderService(orderRepo, state, newTestLogger()),
		orderRepo: orderRepo,
		state:     state,
	}
}

func TestOrderService_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		status  entity.OrderStatus
		wantErr error
	}{
		{name: "pending", status: entity.OrderStatusPending},
		{name: "confirmed", status: entity.OrderStatusConfirmed},
		{name: "processing", status: entity.OrderStatusProcessing, wantErr: domainerrors.ErrOrderNotCancellable},
		{name: "shipped", status: entity.OrderStatusShipped, wantErr: domainerrors.ErrOrderNotCancellable},
		{name: "delivered", status: entity.OrderStatusDelivered, wantErr: domainerrors.ErrOrderNotCancellable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			fx.state.Orders.SetItems([]entity.Order{{ID: "o1", Status: tt.status}}, nil)

			if tt.wantErr == nil {
				fx.orderRepo.EXPECT().Cancel(ctx, "o1", "changed my mind").
					Return(&entity.Order{ID: "o1", Status: entity.OrderStatusCancelled}, nil)
			}

			order, err := fx.service.Cancel(ctx, "o1", "changed my mind")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				fx.orderRepo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, entity.OrderStatusCancelled, order.Status)
			assert.Equal(t, entity.OrderStatusCancelled, fx.state.Orders.Items()[0].Status)
		})
	}
}

func TestOrderService_Cancel_UnknownOrderIsFetched(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, "o9").Return(&entity.Order{ID: "o9", Status: entity.OrderStatusShipped}, nil)

	_, err := fx.service.Cancel(ctx, "o9", "")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
}

func TestOrderService_Get_SelectsOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, "o1").Return(&entity.Order{ID: "o1", Status: entity.OrderStatusPending}, nil)
	fx.orderRepo.EXPECT().Cancel(ctx, "o1", "").Return(&entity.Order{ID: "o1", Status: entity.OrderStatusCancelled}, nil)

	_, err := fx.service.Get(ctx, "o1")
	require.NoError(t, err)

	_, err = fx.service.Cancel(ctx, "o1", "")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, fx.state.Orders.Snapshot().Selected.Status)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.state.AdminOrders.SetItems([]entity.Order{{ID: "o1", Status: entity.OrderStatusConfirmed}}, nil)

	_, err := fx.service.UpdateStatus(ctx, "o1", entity.OrderStatusDelivered)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderTransition)

	_, err = fx.service.UpdateStatus(ctx, "o1", "teleported")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.orderRepo.EXPECT().UpdateStatus(ctx, "o1", entity.OrderStatusProcessing).
		Return(&entity.Order{ID: "o1", Status: entity.OrderStatusProcessing}, nil)

	order, err := fx.service.UpdateStatus(ctx, "o1", entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	assert.Equal(t, entity.OrderStatusProcessing, fx.state.AdminOrders.Items()[0].Status)
}

func TestOrderService_ListMine(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	filter := entity.OrderFilter{Status: entity.OrderStatusPending, Page: 2, Limit: 10}
	pagination := &entity.Pagination{Page: 2, Limit: 10, Total: 11, TotalPages: 2}
	fx.orderRepo.EXPECT().ListMine(ctx, filter).Return([]entity.Order{{ID: "o11"}}, pagination, nil)

	orders, err := fx.service.ListMine(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, pagination, fx.state.Orders.Snapshot().Pagination)
}
