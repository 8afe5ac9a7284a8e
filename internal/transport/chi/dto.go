package chi

import (
	"time"

	"github.com/searchdeck/searchdeck/internal/domain/query"
	domrec "github.com/searchdeck/searchdeck/internal/domain/record"
	domsaved "github.com/searchdeck/searchdeck/internal/domain/savedsearch"
	"github.com/searchdeck/searchdeck/internal/domain/searchlog"
	dashboarduc "github.com/searchdeck/searchdeck/internal/usecase/dashboard"
	ingestuc "github.com/searchdeck/searchdeck/internal/usecase/ingest"
)

// Error codes returned in error responses.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeNotFound         = "not_found"
	codeConflict         = "conflict"
	codeUnauthorized     = "unauthorized"
	codeInternalError    = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ingestRequest struct {
	SourceApp  string   `json:"source_app"`
	SourceType string   `json:"source_type"`
	RecordID   string   `json:"record_id"`
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags,omitempty"`
	URL        string   `json:"url,omitempty"`
}

type bulkIngestRequest struct {
	Records []ingestRequest `json:"records"`
}

type bulkIngestResponse struct {
	Inserted int      `json:"inserted"`
	Updated  int      `json:"updated"`
	Errors   []string `json:"errors"`
}

type recordResponse struct {
	SourceApp  string    `json:"source_app"`
	SourceType string    `json:"source_type"`
	RecordID   string    `json:"record_id"`
	Name       string    `json:"name"`
	Title      string    `json:"title"`
	Content    string    `json:"content,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	URL        string    `json:"url,omitempty"`
	LastSynced time.Time `json:"last_synced"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type recordListResponse struct {
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
	Items  []recordResponse `json:"items"`
}

type searchResultItem struct {
	recordResponse
	Rank float64 `json:"rank"`
}

type searchResponse struct {
	Query   string             `json:"query"`
	Total   int                `json:"total"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
	Results []searchResultItem `json:"results"`
}

type suggestionsResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

type savedSearchRequest struct {
	Name    string         `json:"name"`
	Query   string         `json:"query"`
	Filters map[string]any `json:"filters,omitempty"`
	User    string         `json:"user,omitempty"`
}

type savedSearchPatchRequest struct {
	Name    *string         `json:"name"`
	Query   *string         `json:"query"`
	Filters *map[string]any `json:"filters"`
	User    *string         `json:"user"`
}

type savedSearchResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Query     string         `json:"query"`
	Filters   map[string]any `json:"filters,omitempty"`
	User      string         `json:"user,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type savedSearchListResponse struct {
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
	Items  []savedSearchResponse `json:"items"`
}

type searchLogEntryResponse struct {
	Query        string    `json:"query"`
	SourceApps   []string  `json:"source_apps,omitempty"`
	SourceTypes  []string  `json:"source_types,omitempty"`
	ResultsCount int       `json:"results_count"`
	User         string    `json:"user,omitempty"`
	SearchedAt   time.Time `json:"searched_at"`
}

type appStatsResponse struct {
	SourceApp  string     `json:"source_app"`
	Records    int        `json:"records"`
	LatestSync *time.Time `json:"latest_sync,omitempty"`
}

type dashboardResponse struct {
	TotalRecords   int                      `json:"total_records"`
	TotalSearches  int64                    `json:"total_searches"`
	Sources        []appStatsResponse       `json:"sources"`
	RecentSearches []searchLogEntryResponse `json:"recent_searches"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func submissionFromRequest(req *ingestRequest) ingestuc.Submission {
	return ingestuc.Submission{
		SourceApp:  req.SourceApp,
		SourceType: req.SourceType,
		RecordID:   req.RecordID,
		Name:       req.Name,
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		URL:        req.URL,
	}
}

func recordToResponse(rec *domrec.Record) recordResponse {
	return recordResponse{
		SourceApp:  string(rec.SourceApp()),
		SourceType: string(rec.SourceType()),
		RecordID:   rec.RecordID(),
		Name:       rec.Name(),
		Title:      rec.Title(),
		Content:    rec.Content(),
		Tags:       rec.Tags(),
		URL:        rec.URL(),
		LastSynced: rec.LastSynced().UTC(),
		CreatedAt:  rec.CreatedAt().UTC(),
		UpdatedAt:  rec.UpdatedAt().UTC(),
	}
}

func searchPageToResponse(p *query.Params, page *query.Page) searchResponse {
	results := make([]searchResultItem, len(page.Hits))
	for i := range page.Hits {
		results[i] = searchResultItem{
			recordResponse: recordToResponse(&page.Hits[i].Record),
			Rank:           page.Hits[i].Rank,
		}
	}
	return searchResponse{
		Query:   p.Q(),
		Total:   page.Total,
		Limit:   p.Limit(),
		Offset:  p.Offset(),
		Results: results,
	}
}

func savedSearchToResponse(s *domsaved.SavedSearch) savedSearchResponse {
	return savedSearchResponse{
		ID:        s.ID(),
		Name:      s.Name(),
		Query:     s.Query(),
		Filters:   s.Filters(),
		User:      s.User(),
		CreatedAt: s.CreatedAt().UTC(),
	}
}

func logEntryToResponse(e *searchlog.Entry) searchLogEntryResponse {
	return searchLogEntryResponse{
		Query:        e.Query,
		SourceApps:   e.Apps,
		SourceTypes:  e.Types,
		ResultsCount: e.ResultsCount,
		User:         e.User,
		SearchedAt:   e.SearchedAt.UTC(),
	}
}

func overviewToResponse(o *dashboarduc.Overview) dashboardResponse {
	sources := make([]appStatsResponse, len(o.Apps))
	for i, a := range o.Apps {
		sources[i] = appStatsResponse{
			SourceApp: string(a.App),
			Records:   a.Records,
		}
		if !a.LatestSync.IsZero() {
			t := a.LatestSync.UTC()
			sources[i].LatestSync = &t
		}
	}
	recent := make([]searchLogEntryResponse, len(o.RecentSearches))
	for i := range o.RecentSearches {
		recent[i] = logEntryToResponse(&o.RecentSearches[i])
	}
	return dashboardResponse{
		TotalRecords:   o.TotalRecords,
		TotalSearches:  o.TotalSearches,
		Sources:        sources,
		RecentSearches: recent,
	}
}
