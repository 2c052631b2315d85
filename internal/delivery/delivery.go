// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is a long-running transport server started by the application.
type Delivery interface {
	// Serve blocks serving requests until shutdown or failure.
	Serve(ctx context.Context) error
}
