package port

import "context"

// Warehouse is the external warehouse-of-record. It is slow and possibly
// unreliable; callers never invoke it while holding a product lock except
// for first-time seeding, where the seed and the mutation must be atomic.
type Warehouse interface {
	// GetBaselineStock returns the authoritative stock for a product the
	// cache has never seen.
	GetBaselineStock(ctx context.Context, productID string) (int64, error)

	// PushStock notifies the warehouse of the cache's current value.
	// Best effort; a failed push is repaired by the periodic sweep.
	PushStock(ctx context.Context, productID string, stock int64) error
}
