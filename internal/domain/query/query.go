// Package query defines the search request value object and the
// tokenizer feeding the full-text arm of the query engine.
package query

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/searchdeck/searchdeck/internal/domain"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

// Pagination bounds for /search.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Suggestion bounds for /search/suggestions.
const (
	DefaultSuggestLimit = 10
	MaxSuggestLimit     = 50
)

// Params is a validated search request.
type Params struct {
	q      string
	apps   []source.App
	types  []source.Type
	limit  int
	offset int
	user   string
}

// New parses and validates search parameters. appCSV and typeCSV are
// comma-separated filter lists; empty means no filter. limit 0 means
// default.
func New(q, appCSV, typeCSV string, limit, offset int, user string) (Params, error) {
	if q == "" {
		return Params{}, fmt.Errorf("q is required: %w", domain.ErrValidation)
	}
	if len(q) > source.MaxQueryLen {
		return Params{}, fmt.Errorf("q exceeds %d chars: %w", source.MaxQueryLen, domain.ErrValidation)
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return Params{}, fmt.Errorf("limit must be between 1 and %d: %w", MaxLimit, domain.ErrValidation)
	}
	if offset < 0 {
		return Params{}, fmt.Errorf("offset must be >= 0: %w", domain.ErrValidation)
	}

	apps, err := source.ParseApps(appCSV)
	if err != nil {
		return Params{}, err
	}
	types, err := source.ParseTypes(typeCSV)
	if err != nil {
		return Params{}, err
	}

	return Params{q: q, apps: apps, types: types, limit: limit, offset: offset, user: user}, nil
}

// Q returns the raw query text.
func (p *Params) Q() string { return p.q }

// Apps returns the source_app filter set, nil when unfiltered.
func (p *Params) Apps() []source.App { return p.apps }

// Types returns the source_type filter set, nil when unfiltered.
func (p *Params) Types() []source.Type { return p.types }

// Limit returns the page size.
func (p *Params) Limit() int { return p.limit }

// Offset returns the pagination offset.
func (p *Params) Offset() int { return p.offset }

// User returns the caller identity for attribution, possibly empty.
func (p *Params) User() string { return p.user }

// AppStrings returns the app filter as raw strings for logging.
func (p *Params) AppStrings() []string {
	if p.apps == nil {
		return nil
	}
	out := make([]string, len(p.apps))
	for i, a := range p.apps {
		out[i] = string(a)
	}
	return out
}

// TypeStrings returns the type filter as raw strings for logging.
func (p *Params) TypeStrings() []string {
	if p.types == nil {
		return nil
	}
	out := make([]string, len(p.types))
	for i, t := range p.types {
		out[i] = string(t)
	}
	return out
}

// englishStopwords mirrors the text index's default English stop-word
// list. Tokens on this list never reach the full-text arm; a query
// reduced to nothing here is served by the title-substring fallback.
var englishStopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "for": {}, "if": {}, "in": {},
	"into": {}, "is": {}, "it": {}, "no": {}, "not": {}, "of": {},
	"on": {}, "or": {}, "such": {}, "that": {}, "the": {}, "their": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "this": {},
	"to": {}, "was": {}, "will": {}, "with": {},
}

// Tokenize splits q into lowercase alphanumeric terms, dropping
// English stop-words. An empty result means the full-text arm has
// nothing to match and only the fallback applies.
func Tokenize(q string) []string {
	fields := strings.FieldsFunc(strings.ToLower(q), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if _, stop := englishStopwords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
