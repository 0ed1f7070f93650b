package entity

import "time"

// Address is an entry of the signed-in user's address book.
type Address struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId,omitempty"`
	Label      string    `json:"label,omitempty"` // A user-defined label, e.g., "Home", "Office".
	FullName   string    `json:"fullName"`
	Phone      string    `json:"phone"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state,omitempty"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postalCode,omitempty"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	IsDefault  bool      `json:"isDefault"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
