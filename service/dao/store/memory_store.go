package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/viant/noted/service/dao"
)

// MemoryStore is a generic in-memory implementation of dao.Service.
// It keeps entities of type *T mapped by a comparable key K obtained from the
// supplied keySelector. Concrete DAOs embed or wrap it and add validation.
type MemoryStore[K comparable, T any] struct {
	mu          sync.RWMutex
	records     map[K]*T
	keySelector func(*T) K
	compare     func(a, b K) int
}

// Option configures a MemoryStore.
type Option[K comparable, T any] func(s *MemoryStore[K, T])

// WithOrder makes List and Values return records sorted by key.
func WithOrder[K comparable, T any](compare func(a, b K) int) Option[K, T] {
	return func(s *MemoryStore[K, T]) {
		s.compare = compare
	}
}

// NewMemoryStore creates a new MemoryStore.
// keySelector extracts the entity key (usually the ID field) from a value.
func NewMemoryStore[K comparable, T any](keySelector func(*T) K, options ...Option[K, T]) *MemoryStore[K, T] {
	s := &MemoryStore[K, T]{
		records:     make(map[K]*T),
		keySelector: keySelector,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var _ dao.Service[string, struct{}] = (*MemoryStore[string, struct{}])(nil)

// Save stores or overwrites a record.
func (s *MemoryStore[K, T]) Save(_ context.Context, v *T) error {
	if v == nil {
		return dao.ErrNilEntity
	}
	key := s.keySelector(v)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = v
	return nil
}

// Insert stores v only if its key is not taken yet.
func (s *MemoryStore[K, T]) Insert(v *T) error {
	if v == nil {
		return dao.ErrNilEntity
	}
	key := s.keySelector(v)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; ok {
		return fmt.Errorf("%w: %v", dao.ErrDuplicateID, key)
	}
	s.records[key] = v
	return nil
}

// Load returns a record by key.
func (s *MemoryStore[K, T]) Load(_ context.Context, key K) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return v, nil
}

// Delete removes a record.
func (s *MemoryStore[K, T]) Delete(_ context.Context, key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return dao.ErrNotFound
	}
	delete(s.records, key)
	return nil
}

// List returns all stored records.
func (s *MemoryStore[K, T]) List(_ context.Context) ([]*T, error) {
	return s.Values(), nil
}

// Values returns all stored records, ordered when WithOrder was supplied.
func (s *MemoryStore[K, T]) Values() []*T {
	s.mu.RLock()
	out := make([]*T, 0, len(s.records))
	for _, v := range s.records {
		out = append(out, v)
	}
	s.mu.RUnlock()
	if s.compare != nil {
		slices.SortFunc(out, func(a, b *T) int {
			return s.compare(s.keySelector(a), s.keySelector(b))
		})
	}
	return out
}

// Contains reports whether key is stored.
func (s *MemoryStore[K, T]) Contains(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[key]
	return ok
}

// Len returns the number of stored records.
func (s *MemoryStore[K, T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Replace swaps the whole content for values. Nothing changes when values
// holds a nil entry or a repeated key.
func (s *MemoryStore[K, T]) Replace(values []*T) error {
	records := make(map[K]*T, len(values))
	for _, v := range values {
		if v == nil {
			return dao.ErrNilEntity
		}
		key := s.keySelector(v)
		if _, ok := records[key]; ok {
			return fmt.Errorf("%w: %v", dao.ErrDuplicateID, key)
		}
		records[key] = v
	}
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	return nil
}
