package search

import (
	"context"
	"testing"
	"time"

	"github.com/searchdeck/searchdeck/internal/domain/query"
	domrec "github.com/searchdeck/searchdeck/internal/domain/record"
	"github.com/searchdeck/searchdeck/internal/domain/searchlog"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

type mockRepo struct {
	searchFn func(ctx context.Context, terms []string, apps []source.App, types []source.Type, limit int) ([]query.Hit, error)
	scanFn   func(ctx context.Context, apps []source.App, types []source.Type, limit int) ([]domrec.Record, error)
}

func (m *mockRepo) Search(
	ctx context.Context, terms []string, apps []source.App, types []source.Type, limit int,
) ([]query.Hit, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, terms, apps, types, limit)
	}
	return nil, nil
}

func (m *mockRepo) Scan(
	ctx context.Context, apps []source.App, types []source.Type, limit int,
) ([]domrec.Record, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, apps, types, limit)
	}
	return nil, nil
}

type mockLog struct {
	appendFn func(ctx context.Context, e searchlog.Entry) error
}

func (m *mockLog) Append(ctx context.Context, e searchlog.Entry) error {
	if m.appendFn != nil {
		return m.appendFn(ctx, e)
	}
	return nil
}

func testRecord(t *testing.T, recordID, title string) domrec.Record {
	t.Helper()
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return domrec.Reconstruct(
		source.AppCRM, source.TypeContact, recordID, "John Smith", title,
		"", nil, "", now, now, now,
	)
}

func mustParams(t *testing.T, q string, limit, offset int) *query.Params {
	t.Helper()
	p, err := query.New(q, "", "", limit, offset, "")
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	return &p
}
