// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is the common contract for transport servers managed by the
// application lifecycle.
type Delivery interface {
	// Serve blocks serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
