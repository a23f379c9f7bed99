// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a transport server (HTTP today) started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
