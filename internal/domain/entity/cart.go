package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of the shopping cart.
type CartItem struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	VariantID *string          `json:"variantId,omitempty"`
	VendorID  string           `json:"vendorId,omitempty"`
	Name      string           `json:"name"`
	Image     string           `json:"image,omitempty"`
	Quantity  int              `json:"quantity"`
	Price     decimal.Decimal  `json:"price"`
	SalePrice *decimal.Decimal `json:"salePrice,omitempty"`
	Stock     *int             `json:"stock,omitempty"` // Stock known when the item was returned; nil if unknown.
	AddedAt   time.Time        `json:"addedAt"`
}

// UnitPrice is the sale price when present, otherwise the list price.
func (i *CartItem) UnitPrice() decimal.Decimal {
	if i.SalePrice != nil {
		return *i.SalePrice
	}

	return i.Price
}

// LineTotal is UnitPrice times quantity.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the backend cart of the signed-in user. Totals are never stored;
// they are derived from Items on every read.
type Cart struct {
	ID        string     `json:"id,omitempty"`
	UserID    string     `json:"userId,omitempty"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// AddCartItemInput is the body of an add-to-cart request.
type AddCartItemInput struct {
	ProductID string  `json:"productId" validate:"required"`
	VariantID *string `json:"variantId,omitempty"`
	Quantity  int     `json:"quantity" validate:"min=1"`
}

// ProductVariant is a purchasable option of a product (size, color...).
type ProductVariant struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	SalePrice *decimal.Decimal `json:"salePrice,omitempty"`
	Stock     int              `json:"stock"`
}

// Product is the subset of product fields the client needs for cart checks.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug,omitempty"`
	VendorID    string           `json:"vendorId,omitempty"`
	CategoryID  string           `json:"categoryId,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	SalePrice   *decimal.Decimal `json:"salePrice,omitempty"`
	Stock       int              `json:"stock"`
	Images      []string         `json:"images,omitempty"`
	Variants    []ProductVariant `json:"variants,omitempty"`
	Rating      float64          `json:"rating"`
	ReviewCount int              `json:"reviewCount"`
}

// StockFor returns the stock of the given variant, or of the product itself
// when variantID is nil or unknown.
func (p *Product) StockFor(variantID *string) int {
	if variantID != nil {
		for _, v := range p.Variants {
			if v.ID == *variantID {
				return v.Stock
			}
		}
	}

	return p.Stock
}
