// Package ingest accepts record submissions, single or in bulk, and
// writes them through the atomic upsert path.
package ingest

import (
	"context"
	"fmt"
	"time"

	domrec "github.com/searchdeck/searchdeck/internal/domain/record"
	"github.com/searchdeck/searchdeck/internal/metrics"
)

// Submission is one unvalidated ingestion payload as received on the
// wire. Validation happens in the record constructor.
type Submission struct {
	SourceApp  string
	SourceType string
	RecordID   string
	Name       string
	Title      string
	Content    string
	Tags       []string
	URL        string
}

// BulkReport summarizes a bulk ingestion run. Errors holds one line per
// rejected item; accepted items are counted even when siblings fail.
type BulkReport struct {
	Inserted int
	Updated  int
	Errors   []string
}

// Service handles record ingestion.
type Service struct {
	repo Repository
}

// New creates an ingestion service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Ingest validates and upserts a single submission. The bool reports
// whether the record was created rather than updated. last_synced is
// always stamped at ingestion time; the wire carries no override.
func (s *Service) Ingest(ctx context.Context, sub *Submission) (domrec.Record, bool, error) {
	rec, err := domrec.New(
		sub.SourceApp, sub.SourceType, sub.RecordID,
		sub.Name, sub.Title, sub.Content, sub.Tags, sub.URL, time.Now().UTC(),
	)
	if err != nil {
		return domrec.Record{}, false, err
	}

	stored, created, err := s.repo.Upsert(ctx, &rec)
	if err != nil {
		return domrec.Record{}, false, fmt.Errorf("upsert record: %w", err)
	}

	outcome := "updated"
	if created {
		outcome = "inserted"
	}
	metrics.RecordsIngestedTotal.WithLabelValues(sub.SourceApp, outcome).Inc()

	return stored, created, nil
}

// IngestBulk processes submissions independently: a failing item is
// reported and skipped, the rest still land.
func (s *Service) IngestBulk(ctx context.Context, subs []Submission) (BulkReport, error) {
	var report BulkReport
	for i := range subs {
		_, created, err := s.Ingest(ctx, &subs[i])
		if err != nil {
			report.Errors = append(report.Errors, bulkError(&subs[i], err))
			continue
		}
		if created {
			report.Inserted++
		} else {
			report.Updated++
		}
	}
	return report, nil
}

func bulkError(sub *Submission, err error) string {
	return fmt.Sprintf("%s:%s – %s", sub.SourceApp, sub.RecordID, err.Error())
}
