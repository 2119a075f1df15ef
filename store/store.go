// Package store defines the key-value contract projects are saved through.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get and Delete for a missing key.
	ErrNotFound = errors.New("store: not found")

	// ErrQuotaExceeded is returned by Put when the value would not fit.
	ErrQuotaExceeded = errors.New("store: quota exceeded")
)

// Store is a string-keyed blob store. Implementations are safe for
// concurrent use.
type Store interface {
	// Get returns the value under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key, or returns ErrNotFound.
	Delete(ctx context.Context, key string) error
	// List returns all keys in lexical order.
	List(ctx context.Context) ([]string, error)
}
