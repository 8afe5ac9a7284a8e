// Package search implements the ranked query engine: a scored
// full-text arm merged with a title-substring fallback, with every
// executed search appended to the search log.
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/searchdeck/searchdeck/internal/domain/query"
	"github.com/searchdeck/searchdeck/internal/domain/searchlog"
	"github.com/searchdeck/searchdeck/internal/domain/source"
	"github.com/searchdeck/searchdeck/internal/logger"
	"github.com/searchdeck/searchdeck/internal/metrics"
)

// Service executes ranked searches over indexed records.
type Service struct {
	repo          Repository
	log           LogAppender
	maxCandidates int
}

// New creates a search service. maxCandidates caps how many records
// each arm pulls before merging.
func New(repo Repository, log LogAppender, maxCandidates int) *Service {
	return &Service{repo: repo, log: log, maxCandidates: maxCandidates}
}

// Query runs both search arms, merges and ranks the hits, and returns
// the requested page. The total counts all matches, not just the page.
func (s *Service) Query(ctx context.Context, p *query.Params) (query.Page, error) {
	arm := "fulltext"
	if len(query.Tokenize(p.Q())) == 0 {
		arm = "fallback_only"
	}

	hits, err := s.collect(ctx, p)
	if err != nil {
		return query.Page{}, err
	}

	sortHits(hits)

	total := len(hits)
	page := paginate(hits, p.Offset(), p.Limit())

	metrics.SearchesTotal.WithLabelValues(arm).Inc()
	metrics.SearchResults.WithLabelValues(arm).Observe(float64(total))

	s.record(ctx, p, total)

	return query.Page{Total: total, Hits: page}, nil
}

// Suggest returns up to limit distinct titles containing q,
// case-insensitively, in ascending title order.
func (s *Service) Suggest(
	ctx context.Context, q string, apps []source.App, types []source.Type, limit int,
) ([]string, error) {
	records, err := s.repo.Scan(ctx, apps, types, s.maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("scan for suggestions: %w", err)
	}

	needle := strings.ToLower(q)
	seen := make(map[string]struct{})
	titles := make([]string, 0, limit)
	for _, rec := range records {
		title := rec.Title()
		if title == "" || !strings.Contains(strings.ToLower(title), needle) {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		titles = append(titles, title)
	}

	sort.Strings(titles)
	if len(titles) > limit {
		titles = titles[:limit]
	}
	return titles, nil
}

// collect gathers hits from the full-text arm and the title fallback,
// deduplicated by natural key with the scored hit winning.
func (s *Service) collect(ctx context.Context, p *query.Params) ([]query.Hit, error) {
	seen := make(map[string]struct{})
	var hits []query.Hit

	terms := query.Tokenize(p.Q())
	if len(terms) > 0 {
		scored, err := s.repo.Search(ctx, terms, p.Apps(), p.Types(), s.maxCandidates)
		if err != nil {
			return nil, fmt.Errorf("full-text search: %w", err)
		}
		for _, h := range scored {
			seen[hitKey(&h)] = struct{}{}
			hits = append(hits, h)
		}
	}

	// Title fallback catches records full-text matching misses, such
	// as stop-word-only queries and partial words inside titles.
	records, err := s.repo.Scan(ctx, p.Apps(), p.Types(), s.maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("scan for title fallback: %w", err)
	}
	needle := strings.ToLower(p.Q())
	for i := range records {
		if !strings.Contains(strings.ToLower(records[i].Title()), needle) {
			continue
		}
		h := query.Hit{Record: records[i], Rank: 0}
		if _, dup := seen[hitKey(&h)]; dup {
			continue
		}
		seen[hitKey(&h)] = struct{}{}
		hits = append(hits, h)
	}

	return hits, nil
}

// record appends the executed search to the log. Logging must never
// fail the search itself.
func (s *Service) record(ctx context.Context, p *query.Params, total int) {
	entry := searchlog.Entry{
		Query:        p.Q(),
		Apps:         p.AppStrings(),
		Types:        p.TypeStrings(),
		ResultsCount: total,
		User:         p.User(),
		SearchedAt:   time.Now().UTC(),
	}
	if err := s.log.Append(ctx, entry); err != nil {
		logger.FromContext(ctx).Warn("search log append failed",
			zap.String("query", p.Q()), zap.Error(err))
	}
}

func hitKey(h *query.Hit) string {
	return string(h.Record.SourceApp()) + ":" + h.Record.RecordID()
}

// sortHits orders by rank descending, then title ascending so equal
// ranks page deterministically.
func sortHits(hits []query.Hit) {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Rank != hits[j].Rank {
			return hits[i].Rank > hits[j].Rank
		}
		return hits[i].Record.Title() < hits[j].Record.Title()
	})
}

func paginate(hits []query.Hit, offset, limit int) []query.Hit {
	if offset >= len(hits) {
		return nil
	}
	end := offset + limit
	if end > len(hits) {
		end = len(hits)
	}
	return hits[offset:end]
}
