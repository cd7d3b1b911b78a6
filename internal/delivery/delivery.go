// Package delivery defines the contract every transport-facing server implements.
package delivery

import "context"

// Delivery is a long-running server started at process startup.
type Delivery interface {
	Serve(ctx context.Context) error
}
