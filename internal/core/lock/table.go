package lock

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// shardCount must be a power of two so the hash can be masked.
const shardCount = 32

// Table hands out per-product mutexes. Entries are created on first
// Acquire and removed again when the last holder releases, so the table
// stays proportional to the number of locks currently in flight rather
// than growing with every product id ever touched.
//
// Shards only guard the bookkeeping maps; mutual exclusion itself is the
// per-entry mutex, so distinct product ids never block each other.
type Table struct {
	shards [shardCount]shard
}

type shard struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// Handle is an exclusively held product lock. Release it exactly once.
type Handle struct {
	key string
	s   *shard
	e   *entry
}

func NewTable() *Table {
	t := &Table{}
	for i := range t.shards {
		t.shards[i].entries = make(map[string]*entry)
	}
	return t
}

func (t *Table) shardFor(key string) *shard {
	return &t.shards[xxhash.Sum64String(key)&(shardCount-1)]
}

// Acquire blocks until no other caller holds the lock for productID.
func (t *Table) Acquire(productID string) *Handle {
	s := t.shardFor(productID)

	s.mu.Lock()
	e := s.entries[productID]
	if e == nil {
		e = &entry{}
		s.entries[productID] = e
	}
	e.refs++
	s.mu.Unlock()

	e.mu.Lock()
	return &Handle{key: productID, s: s, e: e}
}

// Release frees the lock and drops the table entry once nobody is
// holding or waiting on it.
func (h *Handle) Release() {
	h.e.mu.Unlock()

	h.s.mu.Lock()
	h.e.refs--
	if h.e.refs == 0 {
		delete(h.s.entries, h.key)
	}
	h.s.mu.Unlock()
}

// Len reports how many product locks are currently held or contended.
func (t *Table) Len() int {
	n := 0
	for i := range t.shards {
		s := &t.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}
