package record

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/searchdeck/searchdeck/internal/domain/record"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

// Hash field names for record storage.
const (
	fieldName       = "name"
	fieldSourceApp  = "source_app"
	fieldSourceType = "source_type"
	fieldRecordID   = "record_id"
	fieldTitle      = "title"
	fieldContent    = "content"
	fieldTags       = "tags"
	fieldURL        = "url"
	fieldLastSynced = "last_synced"
	fieldCreatedAt  = "created_at"
	fieldUpdatedAt  = "updated_at"
	fieldSearchText = "search_text"
)

// toFields flattens a record into hash fields, recomputing the derived
// search representation so the stored value always reflects the fields
// being written. created_at is handled separately by the upsert.
func toFields(rec *record.Record, updatedAt time.Time) (map[string]string, error) {
	fields := map[string]string{
		fieldName:       rec.Name(),
		fieldSourceApp:  string(rec.SourceApp()),
		fieldSourceType: string(rec.SourceType()),
		fieldRecordID:   rec.RecordID(),
		fieldTitle:      rec.Title(),
		fieldContent:    rec.Content(),
		fieldURL:        rec.URL(),
		fieldLastSynced: formatTime(rec.LastSynced()),
		fieldUpdatedAt:  formatTime(updatedAt),
		fieldSearchText: rec.SearchText(),
	}

	if rec.Tags() != nil {
		data, err := json.Marshal(rec.Tags())
		if err != nil {
			return nil, err
		}
		fields[fieldTags] = string(data)
	} else {
		fields[fieldTags] = ""
	}

	return fields, nil
}

// fromFields hydrates a record from hash fields.
func fromFields(m map[string]string) record.Record {
	var tags []string
	if raw := m[fieldTags]; raw != "" {
		// tolerate malformed stored tags rather than failing the read
		_ = json.Unmarshal([]byte(raw), &tags)
	}

	return record.Reconstruct(
		source.App(m[fieldSourceApp]),
		source.Type(m[fieldSourceType]),
		m[fieldRecordID],
		m[fieldName],
		m[fieldTitle],
		m[fieldContent],
		tags,
		m[fieldURL],
		parseTime(m[fieldLastSynced]),
		parseTime(m[fieldCreatedAt]),
		parseTime(m[fieldUpdatedAt]),
	)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "0"
	}
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func parseTime(s string) time.Time {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
