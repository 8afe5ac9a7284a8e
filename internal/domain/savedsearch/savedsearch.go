// Package savedsearch defines the saved search entity: a named query
// plus optional filters a user wants to re-run later.
package savedsearch

import (
	"fmt"
	"time"

	"github.com/searchdeck/searchdeck/internal/domain"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

// SavedSearch is a persisted query. Its lifecycle is independent of
// indexed records; it only shares the query vocabulary.
type SavedSearch struct {
	id        int64
	name      string
	query     string
	filters   map[string]any
	user      string
	createdAt time.Time
}

// New validates and creates a SavedSearch. The ID is assigned by the
// repository on create.
func New(name, query string, filters map[string]any, user string) (SavedSearch, error) {
	if name == "" {
		return SavedSearch{}, fmt.Errorf("name is required: %w", domain.ErrValidation)
	}
	if len(name) > source.MaxNameLen {
		return SavedSearch{}, fmt.Errorf("name exceeds %d chars: %w", source.MaxNameLen, domain.ErrValidation)
	}
	if query == "" {
		return SavedSearch{}, fmt.Errorf("query is required: %w", domain.ErrValidation)
	}
	if len(query) > source.MaxQueryLen {
		return SavedSearch{}, fmt.Errorf("query exceeds %d chars: %w", source.MaxQueryLen, domain.ErrValidation)
	}
	if len(user) > source.MaxUserLen {
		return SavedSearch{}, fmt.Errorf("user exceeds %d chars: %w", source.MaxUserLen, domain.ErrValidation)
	}
	return SavedSearch{name: name, query: query, filters: filters, user: user}, nil
}

// Reconstruct creates a SavedSearch without validation (storage hydration).
func Reconstruct(
	id int64, name, query string, filters map[string]any, user string, createdAt time.Time,
) SavedSearch {
	return SavedSearch{id: id, name: name, query: query, filters: filters, user: user, createdAt: createdAt}
}

// ID returns the assigned identifier, 0 before create.
func (s *SavedSearch) ID() int64 { return s.id }

// Name returns the display name.
func (s *SavedSearch) Name() string { return s.name }

// Query returns the stored query text.
func (s *SavedSearch) Query() string { return s.query }

// Filters returns the stored filter set, possibly nil.
func (s *SavedSearch) Filters() map[string]any { return s.filters }

// User returns the owning user, possibly empty.
func (s *SavedSearch) User() string { return s.user }

// CreatedAt returns the creation time.
func (s *SavedSearch) CreatedAt() time.Time { return s.createdAt }
