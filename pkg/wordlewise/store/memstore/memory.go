// Package memstore is an in-memory implementation of store.Store for
// tests.
package memstore

import (
	"context"
	"sync"

	"github.com/cognicore/wordlewise/pkg/wordlewise/store"
)

// Store is an in-memory word list cache.
type Store struct {
	mu    sync.RWMutex
	lists map[string]store.List
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{lists: make(map[string]store.List)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// PutList stores a copy of the list keyed by its source.
func (s *Store) PutList(ctx context.Context, l store.List) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l.Words = copyWords(l.Words)
	s.lists[l.Source] = l
	return nil
}

// GetList returns a copy of the cached list for source, if any.
func (s *Store) GetList(ctx context.Context, source string) (store.List, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.lists[source]
	if !ok {
		return store.List{}, false, nil
	}
	l.Words = copyWords(l.Words)
	return l, true, nil
}

func copyWords(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
