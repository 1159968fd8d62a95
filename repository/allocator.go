package repository

import "sync"

// EntityKind names one of the five allocator counters.
type EntityKind string

// Entity kinds with independent ID sequences
const (
	KindGenre      EntityKind = "genre"
	KindArtist     EntityKind = "artist"
	KindVenue      EntityKind = "venue"
	KindShow       EntityKind = "show"
	KindArtistShow EntityKind = "artist_show"
)

// Allocator hands out row IDs for the catalog tables: strictly
// increasing from 1, independent per entity kind, for the lifetime of
// the owning store. Each CatalogStore owns its own Allocator, so
// nothing leaks across store instances or tests.
type Allocator struct {
	mu       sync.Mutex
	counters map[EntityKind]uint
}

// NewAllocator creates an allocator with every counter at zero.
func NewAllocator() *Allocator {
	return &Allocator{counters: make(map[EntityKind]uint)}
}

// Next returns the next ID for kind. No two calls for the same kind
// ever return the same value.
func (a *Allocator) Next(kind EntityKind) uint {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.counters[kind]++
	return a.counters[kind]
}

// Prime raises kind's counter to at least n. It is used when opening
// an existing database without a reset, so newly allocated IDs start
// above the highest row already present. Prime never lowers a counter.
func (a *Allocator) Prime(kind EntityKind, n uint) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.counters[kind] < n {
		a.counters[kind] = n
	}
}
