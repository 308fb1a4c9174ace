// Package delivery holds the servers that expose the usecases to the outside world.
package delivery

import "context"

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
