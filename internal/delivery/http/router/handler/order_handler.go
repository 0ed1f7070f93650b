package handler

import (
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler serves customer orders and the admin order console.
type OrderHandler struct {
	orders usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(orders usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type cancelOrderRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type updateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

func orderFilter(c echo.Context) entity.OrderFilter {
	page, limit := pageParams(c)

	return entity.OrderFilter{
		Status: entity.OrderStatus(c.QueryParam("status")),
		Page:   page,
		Limit:  limit,
	}
}

// ListMine returns the signed-in customer's orders.
func (h *OrderHandler) ListMine(c echo.Context) error {
	orders, err := h.orders.ListMine(c.Request().Context(), orderFilter(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, orders, nil)
}

// Get returns one order.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orders.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order)
}

// Cancel cancels a pending or confirmed order.
func (h *OrderHandler) Cancel(c echo.Context) error {
	var input cancelOrderRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	order, err := h.orders.Cancel(c.Request().Context(), c.Param("id"), input.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order)
}

// ListAll returns every order for admins.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.orders.ListAll(c.Request().Context(), orderFilter(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, orders, nil)
}

// UpdateStatus moves an order along its lifecycle.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var input updateOrderStatusRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	order, err := h.orders.UpdateStatus(c.Request().Context(), c.Param("id"), input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order)
}
