package savedsearch

import (
	"context"

	domsaved "github.com/searchdeck/searchdeck/internal/domain/savedsearch"
)

// Repository defines the storage contract for saved searches.
type Repository interface {
	Create(ctx context.Context, s *domsaved.SavedSearch) (domsaved.SavedSearch, error)
	Get(ctx context.Context, id int64) (domsaved.SavedSearch, error)
	List(ctx context.Context, user string, limit, offset int) (int, []domsaved.SavedSearch, error)
	Update(ctx context.Context, s *domsaved.SavedSearch) error
	Delete(ctx context.Context, id int64) error
}
