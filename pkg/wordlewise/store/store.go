// Package store defines persistence for downloaded word lists, so repeat
// sessions can run offline. The cache never holds hints, candidate sets
// or any other per-session state.
package store

import (
	"context"
	"time"
)

// List is a cached word list keyed by the source it was fetched from.
type List struct {
	Source    string
	Words     []string
	FetchedAt time.Time
}

// Store is a read-through cache for word lists.
type Store interface {
	Close() error

	// PutList stores or replaces the list for its source.
	PutList(ctx context.Context, l List) error

	// GetList returns the cached list for source, if any.
	GetList(ctx context.Context, source string) (List, bool, error)
}
