package record

import (
	"context"
	"testing"
	"time"

	"github.com/searchdeck/searchdeck/internal/db"
	domrec "github.com/searchdeck/searchdeck/internal/domain/record"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hupsertFn     func(ctx context.Context, key string, fields map[string]string, createField, createValue string) (bool, error)
	hgetAllFn     func(ctx context.Context, key string) (map[string]string, error)
	delFn         func(ctx context.Context, key string) error
	existsFn      func(ctx context.Context, key string) (bool, error)
	searchListFn  func(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	searchTextFn  func(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	searchCountFn func(ctx context.Context, index string, filters []db.TagFilter) (int, error)
	createIndexFn func(ctx context.Context, def *db.IndexDefinition) error
	indexExistsFn func(ctx context.Context, name string) (bool, error)
}

func (m *mockStore) HUpsert(
	ctx context.Context, key string, fields map[string]string, createField, createValue string,
) (bool, error) {
	if m.hupsertFn != nil {
		return m.hupsertFn(ctx, key, fields, createField, createValue)
	}
	return false, nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

func (m *mockStore) SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error) {
	if m.searchListFn != nil {
		return m.searchListFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if m.searchTextFn != nil {
		return m.searchTextFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchCount(ctx context.Context, index string, filters []db.TagFilter) (int, error) {
	if m.searchCountFn != nil {
		return m.searchCountFn(ctx, index, filters)
	}
	return 0, nil
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if m.indexExistsFn != nil {
		return m.indexExistsFn(ctx, name)
	}
	return false, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func testRecord(t *testing.T) domrec.Record {
	t.Helper()
	rec, err := domrec.New(
		"crm", "contact", "crm-c-001",
		"John Smith", "John Smith – VP Engineering", "Key enterprise contact.",
		[]string{"vip"}, "https://crm.example.com/contacts/1",
		time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("domrec.New: %v", err)
	}
	return rec
}

// storedFields returns the hash image of testRecord as the store would
// hand it back.
func storedFields(t *testing.T) map[string]string {
	t.Helper()
	rec := testRecord(t)
	fields, err := toFields(&rec, time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("toFields: %v", err)
	}
	fields[fieldCreatedAt] = formatTime(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	return fields
}
