// Package dashboard aggregates index state and search activity into a
// single operational overview.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/searchdeck/searchdeck/internal/domain/searchlog"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

// recentSearches is how many log entries the overview shows.
const recentSearches = 10

// AppStats describes one source app's slice of the index.
type AppStats struct {
	App        source.App
	Records    int
	LatestSync time.Time
}

// Overview is the aggregated dashboard state. Apps is ordered by the
// canonical app enumeration and omits apps with no records.
type Overview struct {
	TotalRecords   int
	TotalSearches  int64
	Apps           []AppStats
	RecentSearches []searchlog.Entry
}

// Service assembles the dashboard overview.
type Service struct {
	records RecordReader
	log     LogReader
}

// New creates a dashboard service.
func New(records RecordReader, log LogReader) *Service {
	return &Service{records: records, log: log}
}

// Overview gathers record counts per app, sync freshness, and recent
// search activity.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	total, err := s.records.Count(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("total records: %w", err)
	}

	var apps []AppStats
	for _, app := range source.Apps() {
		n, err := s.records.Count(ctx, app)
		if err != nil {
			return Overview{}, fmt.Errorf("count %s records: %w", app, err)
		}
		if n == 0 {
			continue
		}
		latest, err := s.records.LatestSync(ctx, app)
		if err != nil {
			return Overview{}, fmt.Errorf("latest sync %s: %w", app, err)
		}
		apps = append(apps, AppStats{App: app, Records: n, LatestSync: latest})
	}

	searches, err := s.log.Count(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("total searches: %w", err)
	}
	recent, err := s.log.Recent(ctx, recentSearches)
	if err != nil {
		return Overview{}, fmt.Errorf("recent searches: %w", err)
	}

	return Overview{
		TotalRecords:   total,
		TotalSearches:  searches,
		Apps:           apps,
		RecentSearches: recent,
	}, nil
}
