// Package delivery defines the entry points started by the application.
package delivery

import "context"

// Delivery serves until the application stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
