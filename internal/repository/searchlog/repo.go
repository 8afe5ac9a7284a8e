// Package searchlog persists the append-only query log as a Redis
// list of JSON payloads. RPUSH is atomic, so concurrent searches never
// need further coordination.
package searchlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/searchdeck/searchdeck/internal/domain"
	"github.com/searchdeck/searchdeck/internal/domain/searchlog"
)

const logKey = domain.KeyPrefix + "search_log"

// store is the consumer interface for log persistence (ISP).
type store interface {
	RPush(ctx context.Context, key string, values ...string) error
	LRangeLast(ctx context.Context, key string, n int) ([]string, error)
	LLen(ctx context.Context, key string) (int64, error)
}

// Repo implements search log append and read-back.
type Repo struct {
	store store
}

// New creates a search log repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

type entryDTO struct {
	Query        string   `json:"query"`
	Apps         []string `json:"apps,omitempty"`
	Types        []string `json:"types,omitempty"`
	ResultsCount int      `json:"results_count"`
	User         string   `json:"user,omitempty"`
	SearchedAt   int64    `json:"searched_at"` // unix milliseconds
}

// Append adds one entry to the log.
func (r *Repo) Append(ctx context.Context, e searchlog.Entry) error {
	data, err := json.Marshal(entryDTO{
		Query:        e.Query,
		Apps:         e.Apps,
		Types:        e.Types,
		ResultsCount: e.ResultsCount,
		User:         e.User,
		SearchedAt:   e.SearchedAt.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("encode log entry: %w", err)
	}
	if err := r.store.RPush(ctx, logKey, string(data)); err != nil {
		return fmt.Errorf("append log entry: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (r *Repo) Recent(ctx context.Context, n int) ([]searchlog.Entry, error) {
	raws, err := r.store.LRangeLast(ctx, logKey, n)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	entries := make([]searchlog.Entry, 0, len(raws))
	for _, raw := range raws {
		var dto entryDTO
		if err := json.Unmarshal([]byte(raw), &dto); err != nil {
			// skip undecodable entries rather than failing the dashboard
			continue
		}
		entries = append(entries, searchlog.Entry{
			Query:        dto.Query,
			Apps:         dto.Apps,
			Types:        dto.Types,
			ResultsCount: dto.ResultsCount,
			User:         dto.User,
			SearchedAt:   time.UnixMilli(dto.SearchedAt).UTC(),
		})
	}
	return entries, nil
}

// Count returns the total number of logged searches.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	n, err := r.store.LLen(ctx, logKey)
	if err != nil {
		return 0, fmt.Errorf("count log: %w", err)
	}
	return n, nil
}
