// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP, worker, ...) whose
// lifecycle is managed by the application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
