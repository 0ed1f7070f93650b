package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WishlistItem is a (user, product) pair. ProductID is unique within a wishlist.
type WishlistItem struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	ProductID string          `json:"productId"`
	Product   *ProductSummary `json:"product,omitempty"`
	AddedAt   time.Time       `json:"addedAt"`
}

// ProductSummary is the product card embedded in wishlist responses.
type ProductSummary struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Image     string           `json:"image,omitempty"`
	Price     decimal.Decimal  `json:"price"`
	SalePrice *decimal.Decimal `json:"salePrice,omitempty"`
	InStock   bool             `json:"inStock"`
}

// WishlistCheck is the backend answer to "is this product in my wishlist".
type WishlistCheck struct {
	InWishlist bool          `json:"inWishlist"`
	Item       *WishlistItem `json:"item,omitempty"`
}
