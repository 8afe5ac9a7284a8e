package record

import (
	"context"
	"fmt"

	"github.com/searchdeck/searchdeck/internal/db"
	"github.com/searchdeck/searchdeck/internal/domain/query"
	domrec "github.com/searchdeck/searchdeck/internal/domain/record"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

// Search runs the scored full-text arm of the query engine: the given
// terms against the derived search representation, pre-filtered by
// app/type tags. Results carry the engine's relevance score and are
// capped at limit candidates.
func (r *Repo) Search(
	ctx context.Context, terms []string, apps []source.App, types []source.Type, limit int,
) ([]query.Hit, error) {
	result, err := r.store.SearchText(ctx, &db.TextQuery{
		IndexName: IndexName,
		Field:     fieldSearchText,
		Terms:     terms,
		Filters:   tagFilters(apps, types),
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("search records: %w", err)
	}

	hits := make([]query.Hit, 0, len(result.Entries))
	for _, e := range result.Entries {
		hits = append(hits, query.Hit{
			Record: fromFields(e.Fields),
			Rank:   e.Score,
		})
	}
	return hits, nil
}

// Scan returns up to limit records matching the tag filters, with no
// text matching and no particular order. The query engine uses it for
// the title-substring fallback and for suggestions.
func (r *Repo) Scan(
	ctx context.Context, apps []source.App, types []source.Type, limit int,
) ([]domrec.Record, error) {
	result, err := r.store.SearchList(ctx, &db.ListQuery{
		IndexName: IndexName,
		Filters:   tagFilters(apps, types),
		Offset:    0,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}

	records := make([]domrec.Record, 0, len(result.Entries))
	for _, e := range result.Entries {
		records = append(records, fromFields(e.Fields))
	}
	return records, nil
}
