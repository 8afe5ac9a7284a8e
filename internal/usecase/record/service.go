// Package record implements browsing and removal of indexed records.
package record

import (
	"context"
	"fmt"

	"github.com/searchdeck/searchdeck/internal/domain"
	domrec "github.com/searchdeck/searchdeck/internal/domain/record"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

// Browse pagination bounds.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Service handles record browsing and deletion.
type Service struct {
	repo Repository
}

// New creates a record service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns one record by natural key.
func (s *Service) Get(ctx context.Context, app, recordID string) (domrec.Record, error) {
	sa, err := source.ParseApp(app)
	if err != nil {
		return domrec.Record{}, err
	}
	if recordID == "" {
		return domrec.Record{}, fmt.Errorf("record_id is required: %w", domain.ErrValidation)
	}
	return s.repo.Get(ctx, sa, recordID)
}

// List returns the total match count and a page of records, newest
// update first, optionally filtered by comma-separated apps and types.
func (s *Service) List(
	ctx context.Context, appCSV, typeCSV string, limit, offset int,
) (int, []domrec.Record, error) {
	apps, err := source.ParseApps(appCSV)
	if err != nil {
		return 0, nil, err
	}
	types, err := source.ParseTypes(typeCSV)
	if err != nil {
		return 0, nil, err
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
	return s.repo.List(ctx, apps, types, limit, offset)
}

// Delete removes a record by natural key.
func (s *Service) Delete(ctx context.Context, app, recordID string) error {
	sa, err := source.ParseApp(app)
	if err != nil {
		return err
	}
	if recordID == "" {
		return fmt.Errorf("record_id is required: %w", domain.ErrValidation)
	}
	return s.repo.Delete(ctx, sa, recordID)
}
