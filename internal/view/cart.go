// Package view derives view-ready shapes from the raw slices. Every function
// is pure and recomputed on read; nothing here is stored.
package view

import (
	"marketplace/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Subtotal sums (salePrice ?? price) * quantity over the items.
func Subtotal(items []entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].LineTotal())
	}

	return total
}

// ItemCount sums the quantities of the items.
func ItemCount(items []entity.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}

	return count
}

// CartSummary is the cart as the view renders it.
type CartSummary struct {
	Items     []entity.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Subtotal  decimal.Decimal   `json:"subtotal"`
}

// SummarizeCart derives the counters from items.
func SummarizeCart(items []entity.CartItem) CartSummary {
	if items == nil {
		items = []entity.CartItem{}
	}

	return CartSummary{
		Items:     items,
		ItemCount: ItemCount(items),
		Subtotal:  Subtotal(items),
	}
}

// UnreadMessages counts inbox messages not yet read.
func UnreadMessages(messages []entity.InboxMessage) int {
	n := 0
	for _, m := range messages {
		if !m.IsRead {
			n++
		}
	}

	return n
}

// UnreadNotifications counts notifications not yet read.
func UnreadNotifications(notifications []entity.Notification) int {
	n := 0
	for _, item := range notifications {
		if !item.IsRead {
			n++
		}
	}

	return n
}
