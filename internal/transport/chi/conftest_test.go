package chi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/searchdeck/searchdeck/internal/domain/query"
	domrec "github.com/searchdeck/searchdeck/internal/domain/record"
	domsaved "github.com/searchdeck/searchdeck/internal/domain/savedsearch"
	"github.com/searchdeck/searchdeck/internal/domain/searchlog"
	"github.com/searchdeck/searchdeck/internal/domain/source"
	dashboarduc "github.com/searchdeck/searchdeck/internal/usecase/dashboard"
	healthuc "github.com/searchdeck/searchdeck/internal/usecase/health"
	ingestuc "github.com/searchdeck/searchdeck/internal/usecase/ingest"
	recorduc "github.com/searchdeck/searchdeck/internal/usecase/record"
	savedsearchuc "github.com/searchdeck/searchdeck/internal/usecase/savedsearch"
	searchuc "github.com/searchdeck/searchdeck/internal/usecase/search"
)

// stubBackend satisfies every use case contract so handler tests can
// drive the full service stack with plain function fields.
type stubBackend struct {
	upsertFn       func(ctx context.Context, rec *domrec.Record) (domrec.Record, bool, error)
	searchFn       func(ctx context.Context, terms []string, apps []source.App, types []source.Type, limit int) ([]query.Hit, error)
	scanFn         func(ctx context.Context, apps []source.App, types []source.Type, limit int) ([]domrec.Record, error)
	getFn          func(ctx context.Context, app source.App, recordID string) (domrec.Record, error)
	listFn         func(ctx context.Context, apps []source.App, types []source.Type, limit, offset int) (int, []domrec.Record, error)
	deleteFn       func(ctx context.Context, app source.App, recordID string) error
	countFn        func(ctx context.Context, apps ...source.App) (int, error)
	latestSyncFn   func(ctx context.Context, app source.App) (time.Time, error)
	savedCreateFn  func(ctx context.Context, s *domsaved.SavedSearch) (domsaved.SavedSearch, error)
	savedGetFn     func(ctx context.Context, id int64) (domsaved.SavedSearch, error)
	savedListFn    func(ctx context.Context, user string, limit, offset int) (int, []domsaved.SavedSearch, error)
	savedUpdateFn  func(ctx context.Context, s *domsaved.SavedSearch) error
	savedDeleteFn  func(ctx context.Context, id int64) error
	logAppendFn    func(ctx context.Context, e searchlog.Entry) error
	logRecentFn    func(ctx context.Context, n int) ([]searchlog.Entry, error)
	logCountFn     func(ctx context.Context) (int64, error)
	pingFn         func(ctx context.Context) error
}

func (b *stubBackend) Upsert(ctx context.Context, rec *domrec.Record) (domrec.Record, bool, error) {
	if b.upsertFn != nil {
		return b.upsertFn(ctx, rec)
	}
	return *rec, true, nil
}

func (b *stubBackend) Search(
	ctx context.Context, terms []string, apps []source.App, types []source.Type, limit int,
) ([]query.Hit, error) {
	if b.searchFn != nil {
		return b.searchFn(ctx, terms, apps, types, limit)
	}
	return nil, nil
}

func (b *stubBackend) Scan(
	ctx context.Context, apps []source.App, types []source.Type, limit int,
) ([]domrec.Record, error) {
	if b.scanFn != nil {
		return b.scanFn(ctx, apps, types, limit)
	}
	return nil, nil
}

func (b *stubBackend) Get(ctx context.Context, app source.App, recordID string) (domrec.Record, error) {
	if b.getFn != nil {
		return b.getFn(ctx, app, recordID)
	}
	return domrec.Record{}, nil
}

func (b *stubBackend) List(
	ctx context.Context, apps []source.App, types []source.Type, limit, offset int,
) (int, []domrec.Record, error) {
	if b.listFn != nil {
		return b.listFn(ctx, apps, types, limit, offset)
	}
	return 0, nil, nil
}

func (b *stubBackend) Delete(ctx context.Context, app source.App, recordID string) error {
	if b.deleteFn != nil {
		return b.deleteFn(ctx, app, recordID)
	}
	return nil
}

func (b *stubBackend) Count(ctx context.Context, apps ...source.App) (int, error) {
	if b.countFn != nil {
		return b.countFn(ctx, apps...)
	}
	return 0, nil
}

func (b *stubBackend) LatestSync(ctx context.Context, app source.App) (time.Time, error) {
	if b.latestSyncFn != nil {
		return b.latestSyncFn(ctx, app)
	}
	return time.Time{}, nil
}

func (b *stubBackend) Create(ctx context.Context, s *domsaved.SavedSearch) (domsaved.SavedSearch, error) {
	if b.savedCreateFn != nil {
		return b.savedCreateFn(ctx, s)
	}
	return *s, nil
}

func (b *stubBackend) SavedGet(ctx context.Context, id int64) (domsaved.SavedSearch, error) {
	if b.savedGetFn != nil {
		return b.savedGetFn(ctx, id)
	}
	return domsaved.SavedSearch{}, nil
}

func (b *stubBackend) SavedList(
	ctx context.Context, user string, limit, offset int,
) (int, []domsaved.SavedSearch, error) {
	if b.savedListFn != nil {
		return b.savedListFn(ctx, user, limit, offset)
	}
	return 0, nil, nil
}

func (b *stubBackend) Update(ctx context.Context, s *domsaved.SavedSearch) error {
	if b.savedUpdateFn != nil {
		return b.savedUpdateFn(ctx, s)
	}
	return nil
}

func (b *stubBackend) SavedDelete(ctx context.Context, id int64) error {
	if b.savedDeleteFn != nil {
		return b.savedDeleteFn(ctx, id)
	}
	return nil
}

func (b *stubBackend) Append(ctx context.Context, e searchlog.Entry) error {
	if b.logAppendFn != nil {
		return b.logAppendFn(ctx, e)
	}
	return nil
}

func (b *stubBackend) Recent(ctx context.Context, n int) ([]searchlog.Entry, error) {
	if b.logRecentFn != nil {
		return b.logRecentFn(ctx, n)
	}
	return nil, nil
}

func (b *stubBackend) LogCount(ctx context.Context) (int64, error) {
	if b.logCountFn != nil {
		return b.logCountFn(ctx)
	}
	return 0, nil
}

func (b *stubBackend) Ping(ctx context.Context) error {
	if b.pingFn != nil {
		return b.pingFn(ctx)
	}
	return nil
}

func newTestRouter(t *testing.T, b *stubBackend) http.Handler {
	t.Helper()
	srv := NewServer(
		ingestuc.New(b),
		searchuc.New(b, b, 1000),
		recorduc.New(b),
		savedsearchuc.New(savedRepoAdapter{b}),
		dashboarduc.New(b, logReaderAdapter{b}),
		healthuc.New(b),
		zap.NewNop(),
	)
	r := chi.NewRouter()
	srv.Mount(r)
	return r
}

// savedRepoAdapter maps the shared stub onto the saved search
// repository contract, whose method names collide with record methods.
type savedRepoAdapter struct{ b *stubBackend }

func (a savedRepoAdapter) Create(ctx context.Context, s *domsaved.SavedSearch) (domsaved.SavedSearch, error) {
	return a.b.Create(ctx, s)
}

func (a savedRepoAdapter) Get(ctx context.Context, id int64) (domsaved.SavedSearch, error) {
	return a.b.SavedGet(ctx, id)
}

func (a savedRepoAdapter) List(ctx context.Context, user string, limit, offset int) (int, []domsaved.SavedSearch, error) {
	return a.b.SavedList(ctx, user, limit, offset)
}

func (a savedRepoAdapter) Update(ctx context.Context, s *domsaved.SavedSearch) error {
	return a.b.Update(ctx, s)
}

func (a savedRepoAdapter) Delete(ctx context.Context, id int64) error {
	return a.b.SavedDelete(ctx, id)
}

type logReaderAdapter struct{ b *stubBackend }

func (a logReaderAdapter) Recent(ctx context.Context, n int) ([]searchlog.Entry, error) {
	return a.b.Recent(ctx, n)
}

func (a logReaderAdapter) Count(ctx context.Context) (int64, error) {
	return a.b.LogCount(ctx)
}

func apiRecord(t *testing.T, recordID, title string) domrec.Record {
	t.Helper()
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return domrec.Reconstruct(
		source.AppCRM, source.TypeContact, recordID, "John Smith", title,
		"", nil, "", now, now, now,
	)
}
