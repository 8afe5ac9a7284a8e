// Package savedsearch implements CRUD over saved searches.
package savedsearch

import (
	"context"
	"fmt"

	"github.com/searchdeck/searchdeck/internal/domain"
	domsaved "github.com/searchdeck/searchdeck/internal/domain/savedsearch"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

// Listing pagination bounds, matching record browsing.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Update carries a partial update; nil fields keep their stored value.
type Update struct {
	Name    *string
	Query   *string
	Filters *map[string]any
	User    *string
}

// Service handles saved search CRUD.
type Service struct {
	repo Repository
}

// New creates a saved search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new saved search.
func (s *Service) Create(
	ctx context.Context, name, query string, filters map[string]any, user string,
) (domsaved.SavedSearch, error) {
	saved, err := domsaved.New(name, query, filters, user)
	if err != nil {
		return domsaved.SavedSearch{}, err
	}
	created, err := s.repo.Create(ctx, &saved)
	if err != nil {
		return domsaved.SavedSearch{}, fmt.Errorf("create saved search: %w", err)
	}
	return created, nil
}

// Get returns a saved search by ID.
func (s *Service) Get(ctx context.Context, id int64) (domsaved.SavedSearch, error) {
	return s.repo.Get(ctx, id)
}

// List returns the total count and a page of saved searches, newest
// first, optionally filtered by owning user.
func (s *Service) List(
	ctx context.Context, user string, limit, offset int,
) (int, []domsaved.SavedSearch, error) {
	if len(user) > source.MaxUserLen {
		return 0, nil, fmt.Errorf("user exceeds %d chars: %w", source.MaxUserLen, domain.ErrValidation)
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 1 || limit > MaxListLimit {
		return 0, nil, fmt.Errorf("limit must be between 1 and %d: %w", MaxListLimit, domain.ErrValidation)
	}
	if offset < 0 {
		return 0, nil, fmt.Errorf("offset must not be negative: %w", domain.ErrValidation)
	}
	return s.repo.List(ctx, user, limit, offset)
}

// Patch applies a partial update to an existing saved search and
// returns the new state.
func (s *Service) Patch(ctx context.Context, id int64, upd *Update) (domsaved.SavedSearch, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return domsaved.SavedSearch{}, err
	}

	name := current.Name()
	if upd.Name != nil {
		name = *upd.Name
	}
	query := current.Query()
	if upd.Query != nil {
		query = *upd.Query
	}
	filters := current.Filters()
	if upd.Filters != nil {
		filters = *upd.Filters
	}
	user := current.User()
	if upd.User != nil {
		user = *upd.User
	}

	// Revalidate the merged state through the constructor.
	merged, err := domsaved.New(name, query, filters, user)
	if err != nil {
		return domsaved.SavedSearch{}, err
	}
	stored := domsaved.Reconstruct(
		id, merged.Name(), merged.Query(), merged.Filters(), merged.User(), current.CreatedAt(),
	)
	if err := s.repo.Update(ctx, &stored); err != nil {
		return domsaved.SavedSearch{}, fmt.Errorf("update saved search: %w", err)
	}
	return stored, nil
}

// Delete removes a saved search by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
