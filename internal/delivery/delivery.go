// Package delivery defines the inbound adapters started by the process.
package delivery

import "context"

// Delivery is a long-running inbound adapter, such as the HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
