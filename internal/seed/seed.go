// Package seed loads sample records and saved searches on first
// startup. It only runs against an empty index so restarts are
// idempotent.
package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domrec "github.com/searchdeck/searchdeck/internal/domain/record"
	domsaved "github.com/searchdeck/searchdeck/internal/domain/savedsearch"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

// RecordStore writes seed records and reports whether any exist.
type RecordStore interface {
	Count(ctx context.Context, apps ...source.App) (int, error)
	Upsert(ctx context.Context, rec *domrec.Record) (domrec.Record, bool, error)
}

// SavedSearchStore writes seed saved searches.
type SavedSearchStore interface {
	Create(ctx context.Context, s *domsaved.SavedSearch) (domsaved.SavedSearch, error)
}

// Run inserts the sample data set unless records already exist.
func Run(ctx context.Context, records RecordStore, saved SavedSearchStore, logger *zap.Logger) error {
	n, err := records.Count(ctx)
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if n > 0 {
		logger.Info("Seed data already present, skipping")
		return nil
	}

	now := time.Now().UTC()

	logger.Info("Inserting seed records", zap.Int("count", len(seedRecords)))
	for _, item := range seedRecords {
		rec, err := domrec.New(
			item.app, item.typ, item.recordID,
			item.name, item.title, item.content, item.tags, item.url, now,
		)
		if err != nil {
			return fmt.Errorf("build seed record %s:%s: %w", item.app, item.recordID, err)
		}
		if _, _, err := records.Upsert(ctx, &rec); err != nil {
			return fmt.Errorf("insert seed record %s:%s: %w", item.app, item.recordID, err)
		}
	}

	logger.Info("Inserting seed saved searches", zap.Int("count", len(seedSavedSearches)))
	for _, item := range seedSavedSearches {
		s, err := domsaved.New(item.name, item.query, item.filters, item.user)
		if err != nil {
			return fmt.Errorf("build seed saved search %q: %w", item.name, err)
		}
		if _, err := saved.Create(ctx, &s); err != nil {
			return fmt.Errorf("insert seed saved search %q: %w", item.name, err)
		}
	}

	logger.Info("Seed data inserted")
	return nil
}
