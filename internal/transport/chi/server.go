// Package chi implements the HTTP API surface on the chi router.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/searchdeck/searchdeck/internal/domain"
	"github.com/searchdeck/searchdeck/internal/domain/query"
	"github.com/searchdeck/searchdeck/internal/domain/source"
	dashboarduc "github.com/searchdeck/searchdeck/internal/usecase/dashboard"
	healthuc "github.com/searchdeck/searchdeck/internal/usecase/health"
	ingestuc "github.com/searchdeck/searchdeck/internal/usecase/ingest"
	recorduc "github.com/searchdeck/searchdeck/internal/usecase/record"
	savedsearchuc "github.com/searchdeck/searchdeck/internal/usecase/savedsearch"
	searchuc "github.com/searchdeck/searchdeck/internal/usecase/search"
)

const maxBulkSize = 1000

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the use case services over HTTP.
type Server struct {
	ingest        *ingestuc.Service
	search        *searchuc.Service
	records       *recorduc.Service
	saved         *savedsearchuc.Service
	dashboard     *dashboarduc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	ingest *ingestuc.Service,
	search *searchuc.Service,
	records *recorduc.Service,
	saved *savedsearchuc.Service,
	dashboard *dashboarduc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		ingest:    ingest,
		search:    search,
		records:   records,
		saved:     saved,
		dashboard: dashboard,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrConflict, http.StatusConflict, codeConflict),
	}
	return s
}

// Mount registers all routes on the router.
func (s *Server) Mount(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.Search)
		r.Get("/search/suggestions", s.Suggestions)

		r.Route("/indexes", func(r chi.Router) {
			r.Get("/", s.ListRecords)
			r.Post("/", s.IngestRecord)
			r.Post("/bulk", s.IngestBulk)
			r.Get("/{sourceApp}/{recordID}", s.GetRecord)
			r.Delete("/{sourceApp}/{recordID}", s.DeleteRecord)
		})

		r.Route("/saved_searches", func(r chi.Router) {
			r.Get("/", s.ListSavedSearches)
			r.Post("/", s.CreateSavedSearch)
			r.Get("/{id}", s.GetSavedSearch)
			r.Put("/{id}", s.UpdateSavedSearch)
			r.Delete("/{id}", s.DeleteSavedSearch)
		})

		r.Get("/dashboard", s.Dashboard)
	})
}

// Search handles GET /api/v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := limitParam(q.Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be a positive integer")
		return
	}
	offset, err := intParam(q.Get("offset"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "offset must be an integer")
		return
	}

	params, err := query.New(
		q.Get("q"), q.Get("source_apps"), q.Get("source_types"), limit, offset, q.Get("user"),
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	page, err := s.search.Query(r.Context(), &params)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchPageToResponse(&params, &page))
}

// Suggestions handles GET /api/v1/search/suggestions.
func (s *Server) Suggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	partial := q.Get("q")
	if partial == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "q is required")
		return
	}
	if len(partial) > source.MaxQueryLen {
		writeError(w, http.StatusBadRequest, codeValidationFailed,
			fmt.Sprintf("q exceeds %d chars", source.MaxQueryLen))
		return
	}

	limit, err := intParam(q.Get("limit"), query.DefaultSuggestLimit)
	if err != nil || limit < 1 || limit > query.MaxSuggestLimit {
		writeError(w, http.StatusBadRequest, codeValidationFailed,
			fmt.Sprintf("limit must be between 1 and %d", query.MaxSuggestLimit))
		return
	}

	apps, err := source.ParseApps(q.Get("source_apps"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	types, err := source.ParseTypes(q.Get("source_types"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	titles, err := s.search.Suggest(r.Context(), partial, apps, types, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if titles == nil {
		titles = []string{}
	}

	writeJSON(w, http.StatusOK, suggestionsResponse{Query: partial, Suggestions: titles})
}

// IngestRecord handles POST /api/v1/indexes.
func (s *Server) IngestRecord(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sub := submissionFromRequest(&req)
	rec, created, err := s.ingest.Ingest(r.Context(), &sub)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		w.Header().Set("Location",
			fmt.Sprintf("/api/v1/indexes/%s/%s", rec.SourceApp(), rec.RecordID()))
	}
	writeJSON(w, status, recordToResponse(&rec))
}

// IngestBulk handles POST /api/v1/indexes/bulk.
func (s *Server) IngestBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkIngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.Records) == 0 || len(req.Records) > maxBulkSize {
		writeError(w, http.StatusBadRequest, codeValidationFailed,
			fmt.Sprintf("records count must be between 1 and %d", maxBulkSize))
		return
	}

	subs := make([]ingestuc.Submission, len(req.Records))
	for i := range req.Records {
		subs[i] = submissionFromRequest(&req.Records[i])
	}

	report, err := s.ingest.IngestBulk(r.Context(), subs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if report.Errors == nil {
		report.Errors = []string{}
	}
	writeJSON(w, http.StatusOK, bulkIngestResponse{
		Inserted: report.Inserted,
		Updated:  report.Updated,
		Errors:   report.Errors,
	})
}

// ListRecords handles GET /api/v1/indexes.
func (s *Server) ListRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := limitParam(q.Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be a positive integer")
		return
	}
	offset, err := intParam(q.Get("offset"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "offset must be an integer")
		return
	}

	total, records, err := s.records.List(
		r.Context(), q.Get("source_apps"), q.Get("source_types"), limit, offset,
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if limit == 0 {
		limit = recorduc.DefaultListLimit
	}
	items := make([]recordResponse, len(records))
	for i := range records {
		items[i] = recordToResponse(&records[i])
	}
	writeJSON(w, http.StatusOK, recordListResponse{
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Items:  items,
	})
}

// GetRecord handles GET /api/v1/indexes/{sourceApp}/{recordID}.
func (s *Server) GetRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.Get(r.Context(), chi.URLParam(r, "sourceApp"), chi.URLParam(r, "recordID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordToResponse(&rec))
}

// DeleteRecord handles DELETE /api/v1/indexes/{sourceApp}/{recordID}.
func (s *Server) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	err := s.records.Delete(r.Context(), chi.URLParam(r, "sourceApp"), chi.URLParam(r, "recordID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateSavedSearch handles POST /api/v1/saved_searches.
func (s *Server) CreateSavedSearch(w http.ResponseWriter, r *http.Request) {
	var req savedSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	saved, err := s.saved.Create(r.Context(), req.Name, req.Query, req.Filters, req.User)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/saved_searches/%d", saved.ID()))
	writeJSON(w, http.StatusCreated, savedSearchToResponse(&saved))
}

// ListSavedSearches handles GET /api/v1/saved_searches.
func (s *Server) ListSavedSearches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := limitParam(q.Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be a positive integer")
		return
	}
	offset, err := intParam(q.Get("offset"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "offset must be an integer")
		return
	}

	total, saved, err := s.saved.List(r.Context(), q.Get("user"), limit, offset)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if limit == 0 {
		limit = savedsearchuc.DefaultListLimit
	}
	items := make([]savedSearchResponse, len(saved))
	for i := range saved {
		items[i] = savedSearchToResponse(&saved[i])
	}
	writeJSON(w, http.StatusOK, savedSearchListResponse{
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Items:  items,
	})
}

// GetSavedSearch handles GET /api/v1/saved_searches/{id}.
func (s *Server) GetSavedSearch(w http.ResponseWriter, r *http.Request) {
	id, ok := savedSearchID(w, r)
	if !ok {
		return
	}

	saved, err := s.saved.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, savedSearchToResponse(&saved))
}

// UpdateSavedSearch handles PUT /api/v1/saved_searches/{id}.
func (s *Server) UpdateSavedSearch(w http.ResponseWriter, r *http.Request) {
	id, ok := savedSearchID(w, r)
	if !ok {
		return
	}

	var req savedSearchPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	saved, err := s.saved.Patch(r.Context(), id, &savedsearchuc.Update{
		Name:    req.Name,
		Query:   req.Query,
		Filters: req.Filters,
		User:    req.User,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, savedSearchToResponse(&saved))
}

// DeleteSavedSearch handles DELETE /api/v1/saved_searches/{id}.
func (s *Server) DeleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	id, ok := savedSearchID(w, r)
	if !ok {
		return
	}

	if err := s.saved.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Dashboard handles GET /api/v1/dashboard.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	overview, err := s.dashboard.Overview(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overviewToResponse(&overview))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func savedSearchID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// limitParam parses an optional limit parameter. Absent yields 0, which
// downstream validation maps to the endpoint's default page size. An
// explicit 0 is an error: zero is never a valid page size, so it must
// not silently become the default.
func limitParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.New("limit is zero")
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel-derived message for the client
// without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrValidation,
		domain.ErrNotFound,
		domain.ErrConflict,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return err.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
