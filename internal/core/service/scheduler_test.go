package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestScheduler_SweepsEveryKnownProduct(t *testing.T) {
	store := newMockStore()
	store.data["item-1"] = 5
	store.data["item-2"] = 8
	store.data["item-3"] = 0
	wh := newMockWarehouse()

	logger := zerolog.Nop()
	reconciler := NewReconciler(store, wh, 64, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := NewScheduler(store, reconciler, 20*time.Millisecond, logger)
	scheduler.Start(ctx)

	waitFor(t, 2*time.Second, func() bool {
		for id, want := range map[string]int64{"item-1": 5, "item-2": 8, "item-3": 0} {
			got, ok := wh.lastPush(id)
			if !ok || got != want {
				return false
			}
		}
		return true
	})
}

func TestScheduler_FirstSweepRunsImmediately(t *testing.T) {
	store := newMockStore()
	store.data["item-1"] = 5
	wh := newMockWarehouse()

	logger := zerolog.Nop()
	reconciler := NewReconciler(store, wh, 64, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Interval far longer than the wait below: only the startup sweep
	// can satisfy it.
	scheduler := NewScheduler(store, reconciler, time.Hour, logger)
	scheduler.Start(ctx)

	waitFor(t, 2*time.Second, func() bool {
		stock, ok := wh.lastPush("item-1")
		return ok && stock == 5
	})
}

func TestScheduler_RepairsLostPush(t *testing.T) {
	store := newMockStore()
	store.data["item-1"] = 10
	wh := newMockWarehouse()
	wh.setPushErr(errors.New("warehouse down"))

	logger := zerolog.Nop()
	reconciler := NewReconciler(store, wh, 64, logger)
	reconciler.Start(1)
	defer reconciler.Close()

	cache := NewStockCache(store, wh, reconciler, logger)

	// Mutation succeeds locally while its push is lost.
	if err := cache.AddStock(context.Background(), "item-1", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := wh.lastPush("item-1"); ok {
		t.Fatal("push should have been lost")
	}

	// Warehouse comes back; the next sweep must deliver the current value.
	wh.setPushErr(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := NewScheduler(store, reconciler, 20*time.Millisecond, logger)
	scheduler.Start(ctx)

	waitFor(t, 2*time.Second, func() bool {
		stock, ok := wh.lastPush("item-1")
		return ok && stock == 15
	})
}

func TestScheduler_StopsOnCancel(t *testing.T) {
	store := newMockStore()
	store.data["item-1"] = 5
	wh := newMockWarehouse()

	logger := zerolog.Nop()
	reconciler := NewReconciler(store, wh, 64, logger)

	ctx, cancel := context.WithCancel(context.Background())
	scheduler := NewScheduler(store, reconciler, 10*time.Millisecond, logger)
	scheduler.Start(ctx)

	waitFor(t, 2*time.Second, func() bool {
		_, ok := wh.lastPush("item-1")
		return ok
	})

	cancel()
	time.Sleep(50 * time.Millisecond)

	wh.mu.Lock()
	before := wh.pushCount
	wh.mu.Unlock()

	time.Sleep(100 * time.Millisecond)

	wh.mu.Lock()
	after := wh.pushCount
	wh.mu.Unlock()

	if after != before {
		t.Errorf("scheduler kept pushing after cancel: %d -> %d", before, after)
	}
}
