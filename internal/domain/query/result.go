package query

import "github.com/searchdeck/searchdeck/internal/domain/record"

// Hit is a single ranked search result. Rank is 0.0 when the record
// matched only via the title-substring fallback.
type Hit struct {
	Record record.Record
	Rank   float64
}

// Page is a ranked result page. Total counts all matches before
// pagination.
type Page struct {
	Total int
	Hits  []Hit
}
