package dashboard

import (
	"context"
	"time"

	"github.com/searchdeck/searchdeck/internal/domain/searchlog"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

// RecordReader reads aggregate record state for the dashboard.
type RecordReader interface {
	Count(ctx context.Context, apps ...source.App) (int, error)
	LatestSync(ctx context.Context, app source.App) (time.Time, error)
}

// LogReader reads search activity for the dashboard.
type LogReader interface {
	Recent(ctx context.Context, n int) ([]searchlog.Entry, error)
	Count(ctx context.Context) (int64, error)
}
