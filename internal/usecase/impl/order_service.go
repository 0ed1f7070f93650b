package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/store"
	"marketplace/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	state     *store.Store
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(orderRepo repository.OrderRepository, state *store.Store, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		state:     state,
		logger:    logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) ListMine(ctx context.Context, filter entity.OrderFilter) ([]entity.Order, error) {
	srv.state.Orders.Begin()

	orders, pagination, err := srv.orderRepo.ListMine(ctx, filter)
	if err != nil {
		srv.state.Orders.Fail(err)

		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	srv.state.Orders.SetItems(orders, pagination)

	return orders, nil
}

// Get loads one order into the detail view.
func (srv *orderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	srv.state.Orders.Begin()

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		srv.state.Orders.Fail(err)

		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	srv.state.Orders.Select(order)

	return order, nil
}

// Cancel is checked against the latest known status before any request is made.
func (srv *orderService) Cancel(ctx context.Context, id, reason string) (*entity.Order, error) {
	current, err := srv.currentOrder(ctx, srv.state.Orders, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CustomerCancellable() {
		err := domainerrors.ErrOrderNotCancellable.WithDetails(fmt.Sprintf("order is %s", current.Status))
		srv.state.Orders.Fail(err)

		return nil, err
	}

	srv.state.Orders.Begin()

	order, err := srv.orderRepo.Cancel(ctx, id, strings.TrimSpace(reason))
	if err != nil {
		srv.state.Orders.Fail(err)

		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	replaceOrder(srv.state.Orders, order)
	srv.log(ctx).Info("order cancelled", slog.String("order_id", id))

	return order, nil
}

// ListAll lists orders of every customer for the admin console.
func (srv *orderService) ListAll(ctx context.Context, filter entity.OrderFilter) ([]entity.Order, error) {
	srv.state.AdminOrders.Begin()

	orders, pagination, err := srv.orderRepo.ListAll(ctx, filter)
	if err != nil {
		srv.state.AdminOrders.Fail(err)

		return nil, fmt.Errorf("failed to list all orders: %w", err)
	}

	srv.state.AdminOrders.SetItems(orders, pagination)

	return orders, nil
}

// UpdateStatus moves an order forward along the fulfillment chain.
func (srv *orderService) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown order status %q", status))
	}

	current, err := srv.currentOrder(ctx, srv.state.AdminOrders, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		err := domainerrors.ErrInvalidOrderTransition.WithDetails(fmt.Sprintf("%s to %s", current.Status, status))
		srv.state.AdminOrders.Fail(err)

		return nil, err
	}

	srv.state.AdminOrders.Begin()

	order, err := srv.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		srv.state.AdminOrders.Fail(err)

		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	replaceOrder(srv.state.AdminOrders, order)
	srv.log(ctx).Info("order status updated",
		slog.String("order_id", id),
		slog.String("from", string(current.Status)),
		slog.String("to", string(status)),
	)

	return order, nil
}

// currentOrder finds the order in the slice or asks the backend.
func (srv *orderService) currentOrder(ctx context.Context, slice *store.Slice[entity.Order], id string) (*entity.Order, error) {
	snapshot := slice.Snapshot()
	if snapshot.Selected != nil && snapshot.Selected.ID == id {
		return snapshot.Selected, nil
	}
	for i := range snapshot.Items {
		if snapshot.Items[i].ID == id {
			return &snapshot.Items[i], nil
		}
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		slice.Fail(err)

		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

func replaceOrder(slice *store.Slice[entity.Order], order *entity.Order) {
	slice.Update(func(items []entity.Order) []entity.Order {
		for i := range items {
			if items[i].ID == order.ID {
				items[i] = *order
			}
		}

		return items
	})

	if selected := slice.Snapshot().Selected; selected != nil && selected.ID == order.ID {
		slice.Select(order)
	}
}
