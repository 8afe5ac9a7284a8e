package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
// Consumers depend on narrow consumer-side interfaces, not on Store.
type Store interface {
	Pinger
	HashStore
	ListStore
	SortedSetStore
	CounterStore
	IndexManager
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashStore provides hash-based key-value operations.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	// HUpsert atomically inserts or updates a hash. All fields are
	// written; createField/createValue is written only when the key did
	// not exist. Returns true iff the key was created by this call.
	HUpsert(ctx context.Context, key string, fields map[string]string, createField, createValue string) (bool, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ListStore provides append-only list operations.
type ListStore interface {
	RPush(ctx context.Context, key string, values ...string) error
	// LRangeLast returns up to n trailing elements, newest first.
	LRangeLast(ctx context.Context, key string, n int) ([]string, error)
	LLen(ctx context.Context, key string) (int64, error)
}

// SortedSetStore provides sorted-set operations for ordered listings.
type SortedSetStore interface {
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRem(ctx context.Context, key string, member string) error
	// ZRevRangeAll returns all members ordered by score descending.
	ZRevRangeAll(ctx context.Context, key string) ([]string, error)
}

// CounterStore provides atomic counters for ID assignment.
type CounterStore interface {
	Incr(ctx context.Context, key string) (int64, error)
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Searcher provides search operations over FT indexes.
type Searcher interface {
	SearchText(ctx context.Context, q *TextQuery) (*SearchResult, error)
	SearchList(ctx context.Context, q *ListQuery) (*SearchResult, error)
	SearchCount(ctx context.Context, index string, filters []TagFilter) (int, error)
}
