package port

import (
	"context"

	"github.com/rl1809/stock-cache/internal/core/domain"
)

type StockStore interface {
	// Init prepares the backing schema/keyspace. Called once at startup.
	Init(ctx context.Context) error

	// Get returns the stored stock for a product, found=false if never seeded.
	Get(ctx context.Context, productID string) (stock int64, found bool, err error)

	// Put upserts the stock for a product. A completed Put is durably
	// visible to subsequent Get/ListAll calls.
	Put(ctx context.Context, productID string, stock int64) error

	// ListAll enumerates every product the store has ever seen.
	ListAll(ctx context.Context) ([]domain.StockEntry, error)
}
