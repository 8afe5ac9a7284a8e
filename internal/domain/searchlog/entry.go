// Package searchlog defines the append-only log of executed queries
// consumed by the dashboard. The core never mutates or deletes entries.
package searchlog

import "time"

// Entry records one executed search.
type Entry struct {
	Query        string
	Apps         []string
	Types        []string
	ResultsCount int
	User         string
	SearchedAt   time.Time
}
