package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rl1809/stock-cache/internal/port"
)

// Scheduler periodically pushes every known product's stock to the
// warehouse. It is redundant with the per-mutation pushes on purpose:
// the sweep is the authoritative catch-up that repairs any push lost to
// a full queue or a warehouse outage.
type Scheduler struct {
	store      port.StockStore
	reconciler *Reconciler
	interval   time.Duration
	log        zerolog.Logger
}

func NewScheduler(store port.StockStore, reconciler *Reconciler, interval time.Duration, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		store:      store,
		reconciler: reconciler,
		interval:   interval,
		log:        logger.With().Str("component", "sync_scheduler").Logger(),
	}
}

// Start runs the sweep loop until ctx is cancelled. The first sweep
// fires immediately, then one per interval. An in-flight sweep is
// abandoned mid-product when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		s.sweep(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.log.Info().Msg("sync scheduler stopped")
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *Scheduler) sweep(ctx context.Context) {
	sweepID := uuid.NewString()

	entries, err := s.store.ListAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("sweep_id", sweepID).Msg("list stock entries failed")
		return
	}

	pushed := 0
	for _, e := range entries {
		if ctx.Err() != nil {
			return
		}
		if err := s.reconciler.ReconcileProduct(ctx, e.ProductID); err != nil {
			s.log.Warn().Err(err).Str("sweep_id", sweepID).Str("product_id", e.ProductID).Msg("sweep push failed")
			continue
		}
		pushed++
	}

	if len(entries) > 0 {
		s.log.Debug().Str("sweep_id", sweepID).Int("pushed", pushed).Int("known", len(entries)).Msg("sweep completed")
	}
}
