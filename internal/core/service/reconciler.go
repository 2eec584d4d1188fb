package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rl1809/stock-cache/internal/port"
)

const pushTimeout = 5 * time.Second

// Reconciler owns the push path back to the warehouse-of-record. Mutation
// paths enqueue product ids; a fixed pool of workers reads the current
// stock and pushes it. Push failures are logged and swallowed: the next
// scheduler sweep re-pushes every known product, so a lost push heals
// within one interval.
type Reconciler struct {
	store     port.StockStore
	warehouse port.Warehouse
	jobs      chan string
	wg        sync.WaitGroup
	log       zerolog.Logger
}

func NewReconciler(store port.StockStore, warehouse port.Warehouse, queueSize int, logger zerolog.Logger) *Reconciler {
	return &Reconciler{
		store:     store,
		warehouse: warehouse,
		jobs:      make(chan string, queueSize),
		log:       logger.With().Str("component", "reconciler").Logger(),
	}
}

// Start launches the worker pool. Workers run until Close is called and
// the queue has drained; each push is individually bounded by
// pushTimeout, so draining terminates even against a dead warehouse.
func (r *Reconciler) Start(workers int) {
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go func(id int) {
			defer r.wg.Done()
			r.workerLoop(id)
		}(i)
	}
	r.log.Info().Int("workers", workers).Msg("reconcile workers started")
}

func (r *Reconciler) workerLoop(id int) {
	for productID := range r.jobs {
		pushCtx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		if err := r.ReconcileProduct(pushCtx, productID); err != nil {
			r.log.Warn().Err(err).Str("product_id", productID).Msg("push failed, sweep will retry")
		}
		cancel()
	}
	r.log.Debug().Int("worker", id).Msg("queue closed, worker stopping")
}

// Enqueue hands a product to the workers without blocking the caller.
// When the queue is full the job is dropped; the periodic sweep covers
// the loss.
func (r *Reconciler) Enqueue(productID string) bool {
	select {
	case r.jobs <- productID:
		return true
	default:
		r.log.Warn().Str("product_id", productID).Msg("reconcile queue full, job dropped")
		return false
	}
}

// ReconcileProduct reads the current stock and pushes it to the
// warehouse. It runs without the product lock, so the pushed value may
// already be stale relative to a concurrent mutation; that mutation's
// own push, or the sweep, delivers the newer value.
func (r *Reconciler) ReconcileProduct(ctx context.Context, productID string) error {
	stock, found, err := r.store.Get(ctx, productID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	return r.warehouse.PushStock(ctx, productID, stock)
}

// Close stops accepting jobs and waits for the workers to drain what is
// already queued.
func (r *Reconciler) Close() {
	close(r.jobs)
	r.wg.Wait()
}
