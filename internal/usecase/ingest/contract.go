package ingest

import (
	"context"

	domrec "github.com/searchdeck/searchdeck/internal/domain/record"
)

// Repository defines the storage contract for record ingestion.
type Repository interface {
	// Upsert atomically inserts or updates a record and returns the
	// stored state plus whether the write created it.
	Upsert(ctx context.Context, rec *domrec.Record) (domrec.Record, bool, error)
}
