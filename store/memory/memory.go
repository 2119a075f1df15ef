// Package memory is an in-process Store with an optional size quota.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/f4ze/editor/store"
)

// Store keeps values in a map.
type Store struct {
	mu    sync.RWMutex
	data  map[string][]byte
	size  int
	quota int
}

var _ store.Store = (*Store)(nil)

// New returns an empty store. A positive quota bounds the total number of
// value bytes held.
func New(quota int) *Store {
	return &Store{data: make(map[string][]byte), quota: quota}
}

// Get implements store.Store.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", store.ErrNotFound, key)
	}
	return bytes.Clone(v), nil
}

// Put implements store.Store.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	size := s.size - len(s.data[key]) + len(value)
	if s.quota > 0 && size > s.quota {
		return fmt.Errorf("%w: %d bytes over a quota of %d", store.ErrQuotaExceeded, size, s.quota)
	}
	s.data[key] = bytes.Clone(value)
	s.size = size
	return nil
}

// Delete implements store.Store.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return fmt.Errorf("%w: %q", store.ErrNotFound, key)
	}
	s.size -= len(v)
	delete(s.data, key)
	return nil
}

// List implements store.Store.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.data)), nil
}

// Size returns the number of value bytes held.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}
