// Package record defines the indexed record aggregate and the derived
// search representation it carries.
package record

import (
	"fmt"
	"time"

	"github.com/searchdeck/searchdeck/internal/domain"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

// Record is one indexed business record. The natural key
// (source_app, record_id) is immutable once created.
type Record struct {
	sourceApp  source.App
	sourceType source.Type
	recordID   string
	name       string
	title      string
	content    string
	tags       []string
	url        string
	lastSynced time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// New validates an ingestion submission and creates a Record.
// lastSynced is the upstream sync time, set by the caller.
// created_at/updated_at are owned by the store and left zero here.
func New(
	app, typ, recordID, name, title, content string,
	tags []string, url string, lastSynced time.Time,
) (Record, error) {
	sa, err := source.ParseApp(app)
	if err != nil {
		return Record{}, err
	}
	st, err := source.ParseType(typ)
	if err != nil {
		return Record{}, err
	}
	if recordID == "" {
		return Record{}, fmt.Errorf("record_id is required: %w", domain.ErrValidation)
	}
	if len(recordID) > source.MaxRecordIDLen {
		return Record{}, fmt.Errorf("record_id exceeds %d chars: %w", source.MaxRecordIDLen, domain.ErrValidation)
	}
	if name == "" {
		return Record{}, fmt.Errorf("name is required: %w", domain.ErrValidation)
	}
	if len(name) > source.MaxNameLen {
		return Record{}, fmt.Errorf("name exceeds %d chars: %w", source.MaxNameLen, domain.ErrValidation)
	}
	if title == "" {
		return Record{}, fmt.Errorf("title is required: %w", domain.ErrValidation)
	}
	if len(title) > source.MaxTitleLen {
		return Record{}, fmt.Errorf("title exceeds %d chars: %w", source.MaxTitleLen, domain.ErrValidation)
	}
	if len(url) > source.MaxURLLen {
		return Record{}, fmt.Errorf("url exceeds %d chars: %w", source.MaxURLLen, domain.ErrValidation)
	}

	return Record{
		sourceApp:  sa,
		sourceType: st,
		recordID:   recordID,
		name:       name,
		title:      title,
		content:    content,
		tags:       cloneTags(tags),
		url:        url,
		lastSynced: lastSynced,
	}, nil
}

// Reconstruct creates a Record without validation (storage hydration).
func Reconstruct(
	app source.App, typ source.Type, recordID, name, title, content string,
	tags []string, url string, lastSynced, createdAt, updatedAt time.Time,
) Record {
	return Record{
		sourceApp:  app,
		sourceType: typ,
		recordID:   recordID,
		name:       name,
		title:      title,
		content:    content,
		tags:       tags,
		url:        url,
		lastSynced: lastSynced,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// SourceApp returns the upstream application identifier.
func (r *Record) SourceApp() source.App { return r.sourceApp }

// SourceType returns the record kind.
func (r *Record) SourceType() source.Type { return r.sourceType }

// RecordID returns the identifier within the source application.
func (r *Record) RecordID() string { return r.recordID }

// Name returns the display name.
func (r *Record) Name() string { return r.name }

// Title returns the record title.
func (r *Record) Title() string { return r.title }

// Content returns the free-text body, possibly empty.
func (r *Record) Content() string { return r.content }

// Tags returns the ordered tag list, possibly nil.
func (r *Record) Tags() []string { return r.tags }

// URL returns the upstream link, possibly empty.
func (r *Record) URL() string { return r.url }

// LastSynced returns the upstream sync time.
func (r *Record) LastSynced() time.Time { return r.lastSynced }

// CreatedAt returns the first-insert time.
func (r *Record) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns the last write time.
func (r *Record) UpdatedAt() time.Time { return r.updatedAt }

// SearchText computes the derived search representation from the
// current field values. See BuildSearchText.
func (r *Record) SearchText() string {
	return BuildSearchText(r.name, r.title, r.content, string(r.sourceApp), string(r.sourceType))
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	c := make([]string, len(tags))
	copy(c, tags)
	return c
}
