package api

import (
	"bytes"
	"context"
	"net/url"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
)

type cartGateway struct {
	client *Client
}

// NewCartRepository returns the /cart gateway.
func NewCartRepository(client *Client) repository.CartRepository {
	return &cartGateway{client: client}
}

// Get accepts a cart object or a bare item list.
func (g *cartGateway) Get(ctx context.Context) (*entity.Cart, error) {
	raw, err := g.client.Get(ctx, "/cart", nil)
	if err != nil {
		return nil, err
	}

	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		items, _, err := DecodeList[entity.CartItem](raw)
		if err != nil {
			return nil, err
		}

		return &entity.Cart{Items: items}, nil
	}

	if isEmpty(raw) {
		return &entity.Cart{Items: []entity.CartItem{}}, nil
	}

	cart, err := DecodeOne[entity.Cart](raw, "cart")
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []entity.CartItem{}
	}

	return cart, nil
}

func (g *cartGateway) AddItem(ctx context.Context, input entity.AddCartItemInput) (*entity.CartItem, error) {
	raw, err := g.client.Post(ctx, "/cart/items", input)
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.CartItem](raw, "item")
}

func (g *cartGateway) UpdateItem(ctx context.Context, itemID string, quantity int) (*entity.CartItem, error) {
	raw, err := g.client.Put(ctx, resource("/cart/items", itemID), map[string]int{"quantity": quantity})
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.CartItem](raw, "item")
}

func (g *cartGateway) RemoveItem(ctx context.Context, itemID string) error {
	_, err := g.client.Delete(ctx, resource("/cart/items", itemID))

	return err
}

func (g *cartGateway) Clear(ctx context.Context) error {
	_, err := g.client.Delete(ctx, "/cart")

	return err
}

type productGateway struct {
	client *Client
}

// NewProductRepository returns the /products gateway.
func NewProductRepository(client *Client) repository.ProductRepository {
	return &productGateway{client: client}
}

func (g *productGateway) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	raw, err := g.client.Get(ctx, resource("/products", id), nil)
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.Product](raw, "product")
}

func (g *productGateway) Search(ctx context.Context, query string, page, limit int) ([]entity.Product, *entity.Pagination, error) {
	q := pageQuery(url.Values{}, page, limit)
	setIfNotEmpty(q, "search", query)

	raw, err := g.client.Get(ctx, "/products", q)
	if err != nil {
		return nil, nil, err
	}

	return DecodeList[entity.Product](raw)
}

type wishlistGateway struct {
	client *Client
}

// NewWishlistRepository returns the /wishlist gateway.
func NewWishlistRepository(client *Client) repository.WishlistRepository {
	return &wishlistGateway{client: client}
}

func (g *wishlistGateway) List(ctx context.Context) ([]entity.WishlistItem, error) {
	raw, err := g.client.Get(ctx, "/wishlist", nil)
	if err != nil {
		return nil, err
	}

	items, _, err := DecodeList[entity.WishlistItem](raw)

	return items, err
}

func (g *wishlistGateway) Check(ctx context.Context, productID string) (*entity.WishlistCheck, error) {
	raw, err := g.client.Get(ctx, resource("/wishlist/check", productID), nil)
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.WishlistCheck](raw)
}

func (g *wishlistGateway) Add(ctx context.Context, productID string) (*entity.WishlistItem, error) {
	raw, err := g.client.Post(ctx, "/wishlist", map[string]string{"productId": productID})
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.WishlistItem](raw, "item")
}

func (g *wishlistGateway) Remove(ctx context.Context, productID string) error {
	_, err := g.client.Delete(ctx, resource("/wishlist", productID))

	return err
}
