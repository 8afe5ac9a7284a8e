package db

// TagFilter restricts matches to documents whose tag field holds one
// of the given values.
type TagFilter struct {
	Field  string
	Values []string
}

// TextQuery is the input for a scored full-text search.
type TextQuery struct {
	IndexName    string
	Field        string   // TEXT field to match against
	Terms        []string // pre-tokenized query terms
	Filters      []TagFilter
	Limit        int
	ReturnFields []string
}

// ListQuery is the input for a filtered, sorted, paginated listing.
type ListQuery struct {
	IndexName    string
	Filters      []TagFilter
	SortBy       string // SORTABLE field name; empty for index order
	SortDesc     bool
	Offset       int
	Limit        int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
