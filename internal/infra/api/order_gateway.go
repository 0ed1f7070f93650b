package api

import (
	"context"
	"net/url"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
)

type orderGateway struct {
	client *Client
}

// NewOrderRepository returns the /orders gateway.
func NewOrderRepository(client *Client) repository.OrderRepository {
	return &orderGateway{client: client}
}

func orderQuery(filter entity.OrderFilter) url.Values {
	q := pageQuery(url.Values{}, filter.Page, filter.Limit)
	setIfNotEmpty(q, "status", string(filter.Status))

	return q
}

func (g *orderGateway) ListMine(ctx context.Context, filter entity.OrderFilter) ([]entity.Order, *entity.Pagination, error) {
	raw, err := g.client.Get(ctx, "/orders/my", orderQuery(filter))
	if err != nil {
		return nil, nil, err
	}

	return DecodeList[entity.Order](raw)
}

func (g *orderGateway) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	raw, err := g.client.Get(ctx, resource("/orders", id), nil)
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.Order](raw, "order")
}

func (g *orderGateway) Cancel(ctx context.Context, id string, reason string) (*entity.Order, error) {
	raw, err := g.client.Patch(ctx, resource("/orders", id, "cancel"), map[string]string{"reason": reason})
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.Order](raw, "order")
}

func (g *orderGateway) ListAll(ctx context.Context, filter entity.OrderFilter) ([]entity.Order, *entity.Pagination, error) {
	raw, err := g.client.Get(ctx, "/admin/orders", orderQuery(filter))
	if err != nil {
		return nil, nil, err
	}

	return DecodeList[entity.Order](raw)
}

func (g *orderGateway) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	raw, err := g.client.Patch(ctx, resource("/admin/orders", id, "status"), map[string]string{"status": string(status)})
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.Order](raw, "order")
}

type categoryGateway struct {
	client *Client
}

// NewCategoryRepository returns the taxonomy gateway.
func NewCategoryRepository(client *Client) repository.CategoryRepository {
	return &categoryGateway{client: client}
}

func listAll[T any](ctx context.Context, client *Client, path string) ([]T, error) {
	raw, err := client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	items, _, err := DecodeList[T](raw)

	return items, err
}

func (g *categoryGateway) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return listAll[entity.Category](ctx, g.client, "/categories")
}

func (g *categoryGateway) ListSubcategories(ctx context.Context) ([]entity.Subcategory, error) {
	return listAll[entity.Subcategory](ctx, g.client, "/subcategories")
}

func (g *categoryGateway) ListAttributes(ctx context.Context) ([]entity.Attribute, error) {
	return listAll[entity.Attribute](ctx, g.client, "/attributes")
}

func (g *categoryGateway) ListProductTypes(ctx context.Context) ([]entity.ProductType, error) {
	return listAll[entity.ProductType](ctx, g.client, "/product-types")
}

type adminGateway struct {
	client *Client
}

// NewAdminRepository returns the admin dashboard gateway.
func NewAdminRepository(client *Client) repository.AdminRepository {
	return &adminGateway{client: client}
}

func (g *adminGateway) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	raw, err := g.client.Get(ctx, "/admin/dashboard/stats", nil)
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.DashboardStats](raw, "stats")
}
