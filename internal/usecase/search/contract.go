package search

import (
	"context"

	"github.com/searchdeck/searchdeck/internal/domain/query"
	domrec "github.com/searchdeck/searchdeck/internal/domain/record"
	"github.com/searchdeck/searchdeck/internal/domain/searchlog"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

// Repository defines the storage contract for search reads.
type Repository interface {
	// Search runs the scored full-text arm over the derived search
	// representation, pre-filtered by source app/type.
	Search(
		ctx context.Context, terms []string,
		apps []source.App, types []source.Type, limit int,
	) ([]query.Hit, error)

	// Scan returns up to limit records matching the tag filters, in no
	// particular order, for the title fallback and suggestions.
	Scan(
		ctx context.Context, apps []source.App, types []source.Type, limit int,
	) ([]domrec.Record, error)
}

// LogAppender records executed searches. Failures are non-fatal.
type LogAppender interface {
	Append(ctx context.Context, e searchlog.Entry) error
}
