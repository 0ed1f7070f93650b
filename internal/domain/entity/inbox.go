package entity

import "time"

// InboxMessage is a message delivered to the user's inbox.
type InboxMessage struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	OrderID   string    `json:"orderId,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
