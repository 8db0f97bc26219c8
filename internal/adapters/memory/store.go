// Package memory holds the process-local repositories. Nothing is persisted:
// every store starts empty and is gone when the process exits.
package memory

import (
	"slices"
	"sync"
)

// Store is an ordered collection keyed by K. Lookups return the first match in
// insertion order; duplicate keys are accepted.
type Store[K comparable, T any] struct {
	mu    sync.RWMutex
	items []*T
	key   func(*T) K
}

func NewStore[K comparable, T any](key func(*T) K) *Store[K, T] {
	return &Store[K, T]{key: key}
}

func (s *Store[K, T]) indexOf(k K) int {
	for i, item := range s.items {
		if s.key(item) == k {
			return i
		}
	}
	return -1
}

func (s *Store[K, T]) Find(k K) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(k); i >= 0 {
		return s.items[i]
	}
	return nil
}

// All returns a copy of the collection so callers never hold the backing slice.
func (s *Store[K, T]) All() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*T, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store[K, T]) Append(item *T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)
}

// Replace swaps the first entry sharing item's key, keeping its position.
func (s *Store[K, T]) Replace(item *T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(s.key(item))
	if i < 0 {
		return false
	}
	s.items[i] = item
	return true
}

func (s *Store[K, T]) Remove(k K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(k)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

func (s *Store[K, T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
