// Package delivery defines the transport-agnostic contract a delivery
// mechanism (HTTP, worker, ...) exposes to the application entrypoint.
package delivery

import "context"

// Delivery is a long-running entrypoint surface. Serve blocks until the
// underlying listener stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
