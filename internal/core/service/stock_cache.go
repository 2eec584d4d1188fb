package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rl1809/stock-cache/internal/core/lock"
	"github.com/rl1809/stock-cache/internal/port"
)

var (
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrWarehouseUnavailable = errors.New("warehouse unavailable")
)

// StockCache serves reads from the local store, applies mutations under
// per-product locks, and hands every mutated product to the reconciler
// for a best-effort push back to the warehouse-of-record.
type StockCache struct {
	store      port.StockStore
	warehouse  port.Warehouse
	locks      *lock.Table
	reconciler *Reconciler
	log        zerolog.Logger
}

func NewStockCache(store port.StockStore, warehouse port.Warehouse, reconciler *Reconciler, logger zerolog.Logger) *StockCache {
	return &StockCache{
		store:      store,
		warehouse:  warehouse,
		locks:      lock.NewTable(),
		reconciler: reconciler,
		log:        logger.With().Str("component", "stock_cache").Logger(),
	}
}

// GetStock returns the cached stock for a product, seeding it from the
// warehouse baseline on first sight.
//
// This path deliberately skips the lock table: concurrent first reads of
// the same unseen product may both fetch the baseline and the last Put
// wins. The baseline read is idempotent, so the race costs at most one
// redundant warehouse call and never breaks the stock invariant.
func (s *StockCache) GetStock(ctx context.Context, productID string) (int64, error) {
	stock, found, err := s.store.Get(ctx, productID)
	if err != nil {
		return 0, err
	}
	if found {
		return stock, nil
	}

	baseline, err := s.warehouse.GetBaselineStock(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("%w: baseline fetch for %s: %v", ErrWarehouseUnavailable, productID, err)
	}
	if err := s.store.Put(ctx, productID, baseline); err != nil {
		return 0, err
	}

	s.log.Debug().Str("product_id", productID).Int64("stock", baseline).Msg("seeded from warehouse baseline")
	return baseline, nil
}

// TryRetrieveStock removes qty units if enough stock is on hand. The
// false return is a normal business outcome, not an error: the caller
// asked for more than the cache holds and nothing was mutated.
func (s *StockCache) TryRetrieveStock(ctx context.Context, productID string, qty int64) (bool, error) {
	if qty <= 0 {
		return false, ErrInvalidQuantity
	}

	h := s.locks.Acquire(productID)
	defer h.Release()

	current, found, err := s.currentLocked(ctx, productID)
	if err != nil {
		return false, err
	}
	if !found {
		// Persist the seed even if the retrieve below is rejected, so
		// the product is known to ListAll and the sweep from now on.
		if err := s.store.Put(ctx, productID, current); err != nil {
			return false, err
		}
	}

	if current < qty {
		s.log.Debug().
			Str("product_id", productID).
			Int64("stock", current).
			Int64("requested", qty).
			Msg("retrieve rejected, insufficient stock")
		s.reconciler.Enqueue(productID)
		return false, nil
	}

	if err := s.store.Put(ctx, productID, current-qty); err != nil {
		return false, err
	}

	s.reconciler.Enqueue(productID)
	return true, nil
}

// AddStock adds qty units, seeding from the warehouse baseline first if
// the product has never been cached.
func (s *StockCache) AddStock(ctx context.Context, productID string, qty int64) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	h := s.locks.Acquire(productID)
	defer h.Release()

	// On first sight the baseline and the added amount land in a single
	// write: currentLocked returns the unseeded baseline and the Put
	// below stores baseline+qty.
	current, _, err := s.currentLocked(ctx, productID)
	if err != nil {
		return err
	}

	if err := s.store.Put(ctx, productID, current+qty); err != nil {
		return err
	}

	s.reconciler.Enqueue(productID)
	return nil
}

// currentLocked reads the product's stock while the caller holds its
// lock, fetching the warehouse baseline on first sight (found=false).
// The baseline fetch has to happen under the lock so that seed and
// mutation are one atomic step; it only ever blocks callers of the same
// product. Persisting the value is left to the caller.
func (s *StockCache) currentLocked(ctx context.Context, productID string) (int64, bool, error) {
	stock, found, err := s.store.Get(ctx, productID)
	if err != nil {
		return 0, false, err
	}
	if found {
		return stock, true, nil
	}

	baseline, err := s.warehouse.GetBaselineStock(ctx, productID)
	if err != nil {
		return 0, false, fmt.Errorf("%w: baseline fetch for %s: %v", ErrWarehouseUnavailable, productID, err)
	}
	return baseline, false, nil
}
