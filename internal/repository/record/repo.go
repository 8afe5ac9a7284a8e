// Package record persists indexed records as hashes behind an FT
// index. The derived search representation is recomputed and written
// in the same atomic step as every record write.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/searchdeck/searchdeck/internal/db"
	"github.com/searchdeck/searchdeck/internal/domain"
	domrec "github.com/searchdeck/searchdeck/internal/domain/record"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

// store is the consumer interface for record persistence (ISP).
type store interface {
	HUpsert(ctx context.Context, key string, fields map[string]string, createField, createValue string) (bool, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index string, filters []db.TagFilter) (int, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Repo implements the record store contract.
type Repo struct {
	store store
}

// New creates a record repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// EnsureIndex creates the record FT index if it does not exist.
// language selects the stemming/stop-word rules applied to the
// search_text field.
func (r *Repo) EnsureIndex(ctx context.Context, language string) error {
	exists, err := r.store.IndexExists(ctx, IndexName)
	if err != nil {
		return fmt.Errorf("probe index: %w", err)
	}
	if exists {
		return nil
	}

	def := &db.IndexDefinition{
		Name:     IndexName,
		Prefixes: []string{keyPrefix},
		Language: language,
		Fields: []db.IndexField{
			{Name: fieldSearchText, Type: db.IndexFieldText},
			{Name: fieldSourceApp, Type: db.IndexFieldTag},
			{Name: fieldSourceType, Type: db.IndexFieldTag},
			{Name: fieldUpdatedAt, Type: db.IndexFieldNumeric, Sortable: true},
			{Name: fieldLastSynced, Type: db.IndexFieldNumeric, Sortable: true},
		},
	}
	if err := r.store.CreateIndex(ctx, def); err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// Upsert atomically inserts or updates a record by natural key,
// writing the recomputed search representation and updated_at in the
// same step. Returns the stored record and true iff no row existed for
// the key before this call.
func (r *Repo) Upsert(ctx context.Context, rec *domrec.Record) (domrec.Record, bool, error) {
	key := recordKey(rec.SourceApp(), rec.RecordID())
	now := time.Now().UTC()

	fields, err := toFields(rec, now)
	if err != nil {
		return domrec.Record{}, false, fmt.Errorf("encode record %s: %w", key, err)
	}

	created, err := r.store.HUpsert(ctx, key, fields, fieldCreatedAt, formatTime(now))
	if err != nil {
		return domrec.Record{}, false, fmt.Errorf("upsert %s: %w", key, err)
	}

	stored, err := r.Get(ctx, rec.SourceApp(), rec.RecordID())
	if err != nil {
		return domrec.Record{}, false, fmt.Errorf("reload %s: %w", key, err)
	}
	return stored, created, nil
}

// Get returns a record by natural key.
func (r *Repo) Get(ctx context.Context, app source.App, recordID string) (domrec.Record, error) {
	key := recordKey(app, recordID)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domrec.Record{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(m) == 0 {
		return domrec.Record{}, domain.ErrNotFound
	}
	return fromFields(m), nil
}

// List returns the total match count and a page of records ordered by
// most-recently-updated first.
func (r *Repo) List(
	ctx context.Context, apps []source.App, types []source.Type, limit, offset int,
) (int, []domrec.Record, error) {
	filters := tagFilters(apps, types)

	total, err := r.store.SearchCount(ctx, IndexName, filters)
	if err != nil {
		return 0, nil, fmt.Errorf("count records: %w", err)
	}

	result, err := r.store.SearchList(ctx, &db.ListQuery{
		IndexName: IndexName,
		Filters:   filters,
		SortBy:    fieldUpdatedAt,
		SortDesc:  true,
		Offset:    offset,
		Limit:     limit,
	})
	if err != nil {
		return 0, nil, fmt.Errorf("list records: %w", err)
	}

	records := make([]domrec.Record, 0, len(result.Entries))
	for _, e := range result.Entries {
		records = append(records, fromFields(e.Fields))
	}
	return total, records, nil
}

// Delete removes a record by natural key; ErrNotFound when absent.
func (r *Repo) Delete(ctx context.Context, app source.App, recordID string) error {
	key := recordKey(app, recordID)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// Count returns the number of indexed records, optionally filtered by app.
func (r *Repo) Count(ctx context.Context, apps ...source.App) (int, error) {
	n, err := r.store.SearchCount(ctx, IndexName, tagFilters(apps, nil))
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// LatestSync returns the most recent last_synced time for an app, or
// the zero time when the app has no records.
func (r *Repo) LatestSync(ctx context.Context, app source.App) (time.Time, error) {
	result, err := r.store.SearchList(ctx, &db.ListQuery{
		IndexName: IndexName,
		Filters:   tagFilters([]source.App{app}, nil),
		SortBy:    fieldLastSynced,
		SortDesc:  true,
		Offset:    0,
		Limit:     1,
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("latest sync %s: %w", app, err)
	}
	if len(result.Entries) == 0 {
		return time.Time{}, nil
	}
	return parseTime(result.Entries[0].Fields[fieldLastSynced]), nil
}

func tagFilters(apps []source.App, types []source.Type) []db.TagFilter {
	var filters []db.TagFilter
	if len(apps) > 0 {
		vals := make([]string, len(apps))
		for i, a := range apps {
			vals[i] = string(a)
		}
		filters = append(filters, db.TagFilter{Field: fieldSourceApp, Values: vals})
	}
	if len(types) > 0 {
		vals := make([]string, len(types))
		for i, t := range types {
			vals[i] = string(t)
		}
		filters = append(filters, db.TagFilter{Field: fieldSourceType, Values: vals})
	}
	return filters
}
