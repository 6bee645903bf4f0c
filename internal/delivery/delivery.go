// Package delivery holds the entry points that drive the usecases.
package delivery

import "context"

// Delivery is a long running entry point (HTTP server, queue poller, sensor listener).
// Serve blocks until the delivery stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
