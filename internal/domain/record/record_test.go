package record

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/searchdeck/searchdeck/internal/domain"
)

func TestNew_Valid(t *testing.T) {
	synced := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	rec, err := New(
		"crm", "contact", "crm-c-001",
		"John Smith", "John Smith – VP Engineering", "Key enterprise contact.",
		[]string{"vip", "enterprise"}, "https://crm.example.com/contacts/1", synced,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.SourceApp() != "crm" || rec.SourceType() != "contact" {
		t.Errorf("source mismatch: %s/%s", rec.SourceApp(), rec.SourceType())
	}
	if rec.RecordID() != "crm-c-001" {
		t.Errorf("record id = %q", rec.RecordID())
	}
	if !rec.LastSynced().Equal(synced) {
		t.Errorf("last synced = %v", rec.LastSynced())
	}
	if !rec.CreatedAt().IsZero() || !rec.UpdatedAt().IsZero() {
		t.Error("store-owned timestamps must be zero before persistence")
	}
}

func TestNew_Validation(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name                                             string
		app, typ, recordID, recName, title, content, url string
	}{
		{"unknown app", "notanapp", "contact", "r1", "n", "t", "", ""},
		{"unknown type", "crm", "widget", "r1", "n", "t", "", ""},
		{"empty record id", "crm", "contact", "", "n", "t", "", ""},
		{"record id too long", "crm", "contact", strings.Repeat("x", 256), "n", "t", "", ""},
		{"empty name", "crm", "contact", "r1", "", "t", "", ""},
		{"name too long", "crm", "contact", "r1", strings.Repeat("x", 501), "t", "", ""},
		{"empty title", "crm", "contact", "r1", "n", "", "", ""},
		{"title too long", "crm", "contact", "r1", "n", strings.Repeat("x", 1001), "", ""},
		{"url too long", "crm", "contact", "r1", "n", "t", "", "https://" + strings.Repeat("x", 2000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.app, tt.typ, tt.recordID, tt.recName, tt.title, tt.content, nil, tt.url, now)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("want ErrValidation, got %v", err)
			}
		})
	}
}

func TestNew_ClonesTags(t *testing.T) {
	tags := []string{"a", "b"}
	rec, err := New("crm", "contact", "r1", "n", "t", "", tags, "", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tags[0] = "mutated"
	if rec.Tags()[0] != "a" {
		t.Error("record tags must not alias the caller's slice")
	}
}

func TestBuildSearchText(t *testing.T) {
	tests := []struct {
		name                              string
		recName, title, content, app, typ string
		want                              string
	}{
		{
			name:    "joins and lowercases",
			recName: "John Smith", title: "VP Engineering", content: "Key contact",
			app: "crm", typ: "contact",
			want: "john smith vp engineering key contact crm contact",
		},
		{
			name:    "collapses whitespace and control chars",
			recName: "A\tB", title: "C\n\nD", content: "  E  ",
			app: "crm", typ: "deal",
			want: "a b c d e crm deal",
		},
		{
			name:    "empty content",
			recName: "Name", title: "Title", content: "",
			app: "jobs", typ: "job",
			want: "name title jobs job",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSearchText(tt.recName, tt.title, tt.content, tt.app, tt.typ)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSearchText_TracksFieldValues(t *testing.T) {
	rec, err := New("helpdesk", "ticket", "hd-1", "TICKET-1", "SSO broken", "Okta cert mismatch", nil, "", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := BuildSearchText("TICKET-1", "SSO broken", "Okta cert mismatch", "helpdesk", "ticket")
	if rec.SearchText() != want {
		t.Errorf("SearchText = %q, want %q", rec.SearchText(), want)
	}
}
