// Package delivery groups the inbound adapters (HTTP API, event dispatcher)
// that cmd binaries start through fx.
package delivery

import "context"

// Delivery is a long-running inbound adapter.
type Delivery interface {
	// Serve blocks until the adapter stops or fails.
	Serve(ctx context.Context) error
}
