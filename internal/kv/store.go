// Package kv defines the namespaced key-value store that backs all
// persisted application state.  Every namespace maps to a single JSON
// blob which is read and overwritten whole; there is no partial-write
// state.  Two implementations exist: an in-memory map for tests and
// single-process use, and a Redis-backed store for deployments.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
// Callers that treat missing data as an empty collection should check
// for it with errors.Is.
var ErrNotFound = errors.New("kv: key not found")

// Store is the persistence contract.  Set overwrites the prior value
// of the key atomically from the caller's perspective.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
