package record

import (
	"context"

	domrec "github.com/searchdeck/searchdeck/internal/domain/record"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

// Repository defines the storage contract for record browsing and removal.
type Repository interface {
	Get(ctx context.Context, app source.App, recordID string) (domrec.Record, error)
	List(
		ctx context.Context, apps []source.App, types []source.Type, limit, offset int,
	) (int, []domrec.Record, error)
	Delete(ctx context.Context, app source.App, recordID string) error
}
