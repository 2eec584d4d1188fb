package lock

import (
	"sync"
	"testing"
	"time"
)

func TestAcquire_MutualExclusion(t *testing.T) {
	table := NewTable()

	const goroutines = 50
	const increments = 100

	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				h := table.Acquire("item-1")
				counter++
				h.Release()
			}
		}()
	}

	wg.Wait()

	if counter != goroutines*increments {
		t.Errorf("expected counter %d, got %d", goroutines*increments, counter)
	}
}

func TestAcquire_DistinctKeysDoNotBlock(t *testing.T) {
	table := NewTable()

	h1 := table.Acquire("item-a")
	defer h1.Release()

	done := make(chan struct{})
	go func() {
		h2 := table.Acquire("item-b")
		h2.Release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("acquire on a different key blocked behind an unrelated lock")
	}
}

func TestRelease_EvictsIdleEntries(t *testing.T) {
	table := NewTable()

	handles := make([]*Handle, 0, 10)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		handles = append(handles, table.Acquire(id))
	}

	if got := table.Len(); got != 10 {
		t.Fatalf("expected 10 live entries, got %d", got)
	}

	for _, h := range handles {
		h.Release()
	}

	if got := table.Len(); got != 0 {
		t.Errorf("expected 0 entries after release, got %d", got)
	}
}

func TestAcquire_WaiterKeepsEntryAlive(t *testing.T) {
	table := NewTable()

	h := table.Acquire("item-1")

	acquired := make(chan *Handle)
	go func() {
		acquired <- table.Acquire("item-1")
	}()

	// Give the waiter time to register, then release. The entry must
	// survive until the waiter gets the lock.
	time.Sleep(50 * time.Millisecond)
	h.Release()

	h2 := <-acquired
	if got := table.Len(); got != 1 {
		t.Errorf("expected 1 live entry while held, got %d", got)
	}
	h2.Release()

	if got := table.Len(); got != 0 {
		t.Errorf("expected 0 entries after final release, got %d", got)
	}
}
