package savedsearch

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/searchdeck/searchdeck/internal/domain"
	domsaved "github.com/searchdeck/searchdeck/internal/domain/savedsearch"
)

type mockRepo struct {
	createFn func(ctx context.Context, s *domsaved.SavedSearch) (domsaved.SavedSearch, error)
	getFn    func(ctx context.Context, id int64) (domsaved.SavedSearch, error)
	listFn   func(ctx context.Context, user string, limit, offset int) (int, []domsaved.SavedSearch, error)
	updateFn func(ctx context.Context, s *domsaved.SavedSearch) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockRepo) Create(ctx context.Context, s *domsaved.SavedSearch) (domsaved.SavedSearch, error) {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	return *s, nil
}

func (m *mockRepo) Get(ctx context.Context, id int64) (domsaved.SavedSearch, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domsaved.SavedSearch{}, nil
}

func (m *mockRepo) List(ctx context.Context, user string, limit, offset int) (int, []domsaved.SavedSearch, error) {
	if m.listFn != nil {
		return m.listFn(ctx, user, limit, offset)
	}
	return 0, nil, nil
}

func (m *mockRepo) Update(ctx context.Context, s *domsaved.SavedSearch) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, s)
	}
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func strPtr(s string) *string { return &s }

func TestCreate_Validates(t *testing.T) {
	svc := New(&mockRepo{})

	if _, err := svc.Create(context.Background(), "", "q", nil, ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty name: want ErrValidation, got %v", err)
	}
}

func TestCreate_ReturnsStored(t *testing.T) {
	repo := &mockRepo{createFn: func(_ context.Context, s *domsaved.SavedSearch) (domsaved.SavedSearch, error) {
		return domsaved.Reconstruct(7, s.Name(), s.Query(), s.Filters(), s.User(), time.Now().UTC()), nil
	}}
	svc := New(repo)

	saved, err := svc.Create(context.Background(), "Open Tickets", "ticket error", nil, "support")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID() != 7 || saved.Name() != "Open Tickets" {
		t.Errorf("saved = %+v", saved)
	}
}

func TestList_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		user      string
		limit     int
		offset    int
		wantLimit int
		wantErr   bool
	}{
		{name: "zero limit defaults", wantLimit: DefaultListLimit},
		{name: "explicit limit kept", limit: 10, wantLimit: 10},
		{name: "above max rejected", limit: 201, wantErr: true},
		{name: "negative offset rejected", offset: -1, wantErr: true},
		{name: "oversized user rejected", user: strings.Repeat("u", 256), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit int
			repo := &mockRepo{listFn: func(_ context.Context, _ string, limit, _ int) (int, []domsaved.SavedSearch, error) {
				gotLimit = limit
				return 0, nil, nil
			}}
			svc := New(repo)

			_, _, err := svc.List(context.Background(), tt.user, tt.limit, tt.offset)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("want ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotLimit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", gotLimit, tt.wantLimit)
			}
		})
	}
}

func TestPatch_MergesOverCurrent(t *testing.T) {
	createdAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	current := domsaved.Reconstruct(7, "Open Tickets", "ticket error",
		map[string]any{"app": []any{"helpdesk"}}, "support", createdAt)

	var updated *domsaved.SavedSearch
	repo := &mockRepo{
		getFn: func(_ context.Context, id int64) (domsaved.SavedSearch, error) {
			if id != 7 {
				t.Errorf("get id = %d", id)
			}
			return current, nil
		},
		updateFn: func(_ context.Context, s *domsaved.SavedSearch) error {
			updated = s
			return nil
		},
	}
	svc := New(repo)

	stored, err := svc.Patch(context.Background(), 7, &Update{Query: strPtr("ticket outage")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Query() != "ticket outage" {
		t.Errorf("query = %q", stored.Query())
	}
	if stored.Name() != "Open Tickets" || stored.User() != "support" {
		t.Errorf("untouched fields changed: %+v", stored)
	}
	if !stored.CreatedAt().Equal(createdAt) {
		t.Errorf("created_at = %v, want preserved %v", stored.CreatedAt(), createdAt)
	}
	if updated == nil || updated.ID() != 7 {
		t.Errorf("repo update = %+v", updated)
	}
}

func TestPatch_RevalidatesMergedState(t *testing.T) {
	current := domsaved.Reconstruct(7, "Open Tickets", "ticket error", nil, "support",
		time.Now().UTC())
	repo := &mockRepo{getFn: func(context.Context, int64) (domsaved.SavedSearch, error) {
		return current, nil
	}}
	svc := New(repo)

	if _, err := svc.Patch(context.Background(), 7, &Update{Name: strPtr("")}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("want ErrValidation, got %v", err)
	}
}

func TestPatch_NotFound(t *testing.T) {
	repo := &mockRepo{getFn: func(context.Context, int64) (domsaved.SavedSearch, error) {
		return domsaved.SavedSearch{}, domain.ErrNotFound
	}}
	svc := New(repo)

	if _, err := svc.Patch(context.Background(), 99, &Update{}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestDelete_Delegates(t *testing.T) {
	var gotID int64
	repo := &mockRepo{deleteFn: func(_ context.Context, id int64) error {
		gotID = id
		return nil
	}}
	svc := New(repo)

	if err := svc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != 7 {
		t.Errorf("id = %d", gotID)
	}
}
