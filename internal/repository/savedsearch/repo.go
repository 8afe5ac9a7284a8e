// Package savedsearch persists saved searches as hashes, with IDs from
// an atomic counter and a creation-time sorted set for ordered listing.
package savedsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/searchdeck/searchdeck/internal/domain"
	domsaved "github.com/searchdeck/searchdeck/internal/domain/savedsearch"
)

const (
	seqKey       = domain.KeyPrefix + "saved:seq"
	byCreatedKey = domain.KeyPrefix + "saved:by_created"
	keyPrefix    = domain.KeyPrefix + "saved:"
)

// Hash field names for saved search storage.
const (
	fieldName      = "name"
	fieldQuery     = "query"
	fieldFilters   = "filters"
	fieldUser      = "user"
	fieldCreatedAt = "created_at"
)

// store is the consumer interface for saved search persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRem(ctx context.Context, key string, member string) error
	ZRevRangeAll(ctx context.Context, key string) ([]string, error)
	Incr(ctx context.Context, key string) (int64, error)
}

// Repo implements saved search CRUD.
type Repo struct {
	store store
}

// New creates a saved search repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

func savedKey(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

// Create assigns an ID and persists the saved search.
func (r *Repo) Create(ctx context.Context, s *domsaved.SavedSearch) (domsaved.SavedSearch, error) {
	id, err := r.store.Incr(ctx, seqKey)
	if err != nil {
		return domsaved.SavedSearch{}, fmt.Errorf("next saved search id: %w", err)
	}

	now := time.Now().UTC()
	stored := domsaved.Reconstruct(id, s.Name(), s.Query(), s.Filters(), s.User(), now)

	fields, err := toFields(&stored)
	if err != nil {
		return domsaved.SavedSearch{}, fmt.Errorf("encode saved search %d: %w", id, err)
	}
	if err := r.store.HSet(ctx, savedKey(id), fields); err != nil {
		return domsaved.SavedSearch{}, fmt.Errorf("store saved search %d: %w", id, err)
	}
	if err := r.store.ZAdd(ctx, byCreatedKey, float64(now.UnixMilli()), strconv.FormatInt(id, 10)); err != nil {
		return domsaved.SavedSearch{}, fmt.Errorf("index saved search %d: %w", id, err)
	}
	return stored, nil
}

// Get returns a saved search by ID.
func (r *Repo) Get(ctx context.Context, id int64) (domsaved.SavedSearch, error) {
	m, err := r.store.HGetAll(ctx, savedKey(id))
	if err != nil {
		return domsaved.SavedSearch{}, fmt.Errorf("hgetall saved search %d: %w", id, err)
	}
	if len(m) == 0 {
		return domsaved.SavedSearch{}, domain.ErrNotFound
	}
	return fromFields(id, m), nil
}

// List returns the total count and a page of saved searches, newest
// first, optionally filtered by owning user.
func (r *Repo) List(ctx context.Context, user string, limit, offset int) (int, []domsaved.SavedSearch, error) {
	ids, err := r.store.ZRevRangeAll(ctx, byCreatedKey)
	if err != nil {
		return 0, nil, fmt.Errorf("list saved search ids: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyPrefix + id
	}
	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return 0, nil, fmt.Errorf("load saved searches: %w", err)
	}

	all := make([]domsaved.SavedSearch, 0, len(maps))
	for i, m := range maps {
		if len(m) == 0 {
			continue // id still in the sorted set but hash gone
		}
		id, err := strconv.ParseInt(ids[i], 10, 64)
		if err != nil {
			continue
		}
		s := fromFields(id, m)
		if user != "" && s.User() != user {
			continue
		}
		all = append(all, s)
	}

	total := len(all)
	if offset >= total {
		return total, nil, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return total, all[offset:end], nil
}

// Update overwrites the mutable fields of an existing saved search.
func (r *Repo) Update(ctx context.Context, s *domsaved.SavedSearch) error {
	exists, err := r.store.Exists(ctx, savedKey(s.ID()))
	if err != nil {
		return fmt.Errorf("check saved search %d: %w", s.ID(), err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	fields, err := toFields(s)
	if err != nil {
		return fmt.Errorf("encode saved search %d: %w", s.ID(), err)
	}
	if err := r.store.HSet(ctx, savedKey(s.ID()), fields); err != nil {
		return fmt.Errorf("store saved search %d: %w", s.ID(), err)
	}
	return nil
}

// Delete removes a saved search; ErrNotFound when absent.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	exists, err := r.store.Exists(ctx, savedKey(id))
	if err != nil {
		return fmt.Errorf("check saved search %d: %w", id, err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := r.store.Del(ctx, savedKey(id)); err != nil {
		return fmt.Errorf("del saved search %d: %w", id, err)
	}
	if err := r.store.ZRem(ctx, byCreatedKey, strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("unindex saved search %d: %w", id, err)
	}
	return nil
}

func toFields(s *domsaved.SavedSearch) (map[string]string, error) {
	fields := map[string]string{
		fieldName:      s.Name(),
		fieldQuery:     s.Query(),
		fieldUser:      s.User(),
		fieldCreatedAt: strconv.FormatInt(s.CreatedAt().UnixMilli(), 10),
	}
	if s.Filters() != nil {
		data, err := json.Marshal(s.Filters())
		if err != nil {
			return nil, err
		}
		fields[fieldFilters] = string(data)
	} else {
		fields[fieldFilters] = ""
	}
	return fields, nil
}

func fromFields(id int64, m map[string]string) domsaved.SavedSearch {
	var filters map[string]any
	if raw := m[fieldFilters]; raw != "" {
		_ = json.Unmarshal([]byte(raw), &filters)
	}

	var createdAt time.Time
	if ms, err := strconv.ParseInt(m[fieldCreatedAt], 10, 64); err == nil && ms > 0 {
		createdAt = time.UnixMilli(ms).UTC()
	}

	return domsaved.Reconstruct(id, m[fieldName], m[fieldQuery], filters, m[fieldUser], createdAt)
}
