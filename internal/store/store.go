// Package store persists emission calculation results for later retrieval.
//
// The core calculator is agnostic of storage: it produces a calc.Result and
// this package decides how to keep it. Store is the single stable interface
// any backend sits behind; the bundled FileStore keeps a JSON history file
// under the user's data directory.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/ecotrace/carbontrack/internal/calc"
)

// ErrStoreCorrupted indicates the history file exists but contains invalid
// data. Callers should abort rather than silently start fresh.
var ErrStoreCorrupted = errors.New("emission history file corrupted")

// Record is a persisted emission result with its storage identity.
type Record struct {
	// ID is an opaque, lexicographically sortable identifier (ULID).
	ID string `json:"id"`

	// Timestamp is when the result was saved, UTC.
	Timestamp time.Time `json:"timestamp"`

	// Result is the calculation output as produced by the engine.
	Result calc.Result `json:"result"`
}

// Store accepts emission results and returns them in insertion order.
type Store interface {
	// Save persists a result and returns its opaque identifier.
	Save(ctx context.Context, result calc.Result) (string, error)

	// List returns all saved records, oldest first.
	List(ctx context.Context) ([]Record, error)
}
