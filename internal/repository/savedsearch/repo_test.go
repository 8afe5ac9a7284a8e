package savedsearch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/searchdeck/searchdeck/internal/domain"
	domsaved "github.com/searchdeck/searchdeck/internal/domain/savedsearch"
)

type mockStore struct {
	hsetFn         func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn      func(ctx context.Context, key string) (map[string]string, error)
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	delFn          func(ctx context.Context, key string) error
	existsFn       func(ctx context.Context, key string) (bool, error)
	zaddFn         func(ctx context.Context, key string, score float64, member string) error
	zremFn         func(ctx context.Context, key string, member string) error
	zrevRangeFn    func(ctx context.Context, key string) ([]string, error)
	incrFn         func(ctx context.Context, key string) (int64, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return nil, nil
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

func (m *mockStore) ZAdd(ctx context.Context, key string, score float64, member string) error {
	if m.zaddFn != nil {
		return m.zaddFn(ctx, key, score, member)
	}
	return nil
}

func (m *mockStore) ZRem(ctx context.Context, key string, member string) error {
	if m.zremFn != nil {
		return m.zremFn(ctx, key, member)
	}
	return nil
}

func (m *mockStore) ZRevRangeAll(ctx context.Context, key string) ([]string, error) {
	if m.zrevRangeFn != nil {
		return m.zrevRangeFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) Incr(ctx context.Context, key string) (int64, error) {
	if m.incrFn != nil {
		return m.incrFn(ctx, key)
	}
	return 1, nil
}

func newSaved(t *testing.T) domsaved.SavedSearch {
	t.Helper()
	s, err := domsaved.New("Open Tickets", "ticket error", map[string]any{"app": []string{"helpdesk"}}, "support")
	if err != nil {
		t.Fatalf("domsaved.New: %v", err)
	}
	return s
}

func storedHash() map[string]string {
	return map[string]string{
		fieldName:      "Open Tickets",
		fieldQuery:     "ticket error",
		fieldFilters:   `{"app":["helpdesk"]}`,
		fieldUser:      "support",
		fieldCreatedAt: "1770000000000",
	}
}

func TestCreate_AssignsIDAndIndexes(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms)

	ms.incrFn = func(_ context.Context, key string) (int64, error) {
		if key != seqKey {
			t.Errorf("counter key = %q", key)
		}
		return 7, nil
	}
	var hsetKey string
	ms.hsetFn = func(_ context.Context, key string, fields map[string]string) error {
		hsetKey = key
		if fields[fieldName] != "Open Tickets" {
			t.Errorf("fields = %+v", fields)
		}
		return nil
	}
	var zKey, zMember string
	ms.zaddFn = func(_ context.Context, key string, _ float64, member string) error {
		zKey, zMember = key, member
		return nil
	}

	s := newSaved(t)
	created, err := repo.Create(context.Background(), &s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID() != 7 {
		t.Errorf("id = %d", created.ID())
	}
	if created.CreatedAt().IsZero() {
		t.Error("created_at not set")
	}
	if hsetKey != "searchdeck:saved:7" {
		t.Errorf("hash key = %q", hsetKey)
	}
	if zKey != byCreatedKey || zMember != "7" {
		t.Errorf("zadd = %q %q", zKey, zMember)
	}
}

func TestGet_NotFound(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms)
	ms.hgetAllFn = func(context.Context, string) (map[string]string, error) {
		return map[string]string{}, nil
	}

	_, err := repo.Get(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestGet_Hydrates(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms)
	ms.hgetAllFn = func(context.Context, string) (map[string]string, error) {
		return storedHash(), nil
	}

	s, err := repo.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID() != 7 || s.Name() != "Open Tickets" {
		t.Errorf("hydration mismatch: id=%d name=%q", s.ID(), s.Name())
	}
	apps, ok := s.Filters()["app"].([]any)
	if !ok || len(apps) != 1 || apps[0] != "helpdesk" {
		t.Errorf("filters = %+v", s.Filters())
	}
	if s.CreatedAt().UnixMilli() != 1770000000000 {
		t.Errorf("created_at = %v", s.CreatedAt())
	}
}

func TestList_FiltersByUserAndPaginates(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms)

	ms.zrevRangeFn = func(context.Context, string) ([]string, error) {
		return []string{"3", "2", "1"}, nil
	}
	ms.hgetAllMultiFn = func(_ context.Context, keys []string) ([]map[string]string, error) {
		if len(keys) != 3 {
			t.Errorf("keys = %v", keys)
		}
		h3 := storedHash()
		h2 := storedHash()
		h2[fieldUser] = "other"
		h1 := storedHash()
		return []map[string]string{h3, h2, h1}, nil
	}

	total, items, err := repo.List(context.Background(), "support", 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2 after user filter", total)
	}
	if len(items) != 1 || items[0].ID() != 3 {
		t.Fatalf("page = %+v", items)
	}
}

func TestList_Empty(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms)
	ms.zrevRangeFn = func(context.Context, string) ([]string, error) { return nil, nil }

	total, items, err := repo.List(context.Background(), "", 50, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 || items != nil {
		t.Errorf("got %d, %v", total, items)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms)
	ms.existsFn = func(context.Context, string) (bool, error) { return false, nil }

	s := domsaved.Reconstruct(9, "n", "q", nil, "", time.Now())
	if err := repo.Update(context.Background(), &s); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestDelete_RemovesHashAndIndex(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms)

	ms.existsFn = func(context.Context, string) (bool, error) { return true, nil }
	var delKey, zremMember string
	ms.delFn = func(_ context.Context, key string) error {
		delKey = key
		return nil
	}
	ms.zremFn = func(_ context.Context, _ string, member string) error {
		zremMember = member
		return nil
	}

	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delKey != "searchdeck:saved:7" || zremMember != "7" {
		t.Errorf("del = %q, zrem = %q", delKey, zremMember)
	}
}
