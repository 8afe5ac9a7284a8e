// Package source defines the closed enumerations of upstream source
// applications and record kinds, plus the field length limits enforced
// at the validation boundary. Extending either set is a deliberate
// schema change, not a runtime operation.
package source

import (
	"fmt"
	"strings"

	"github.com/searchdeck/searchdeck/internal/domain"
)

// App identifies the upstream application a record came from.
type App string

// Known source applications.
const (
	AppCRM          App = "crm"
	AppHelpdesk     App = "helpdesk"
	AppAnalytics    App = "analytics"
	AppSocial       App = "social"
	AppJobs         App = "jobs"
	AppCloud        App = "cloud"
	AppFinance      App = "finance"
	AppLegal        App = "legal"
	AppResearch     App = "research"
	AppProductivity App = "productivity"
)

// Type identifies the kind of record within a source application.
type Type string

// Known record kinds.
const (
	TypeContact     Type = "contact"
	TypeDeal        Type = "deal"
	TypeTicket      Type = "ticket"
	TypeArticle     Type = "article"
	TypePost        Type = "post"
	TypeJob         Type = "job"
	TypeTransaction Type = "transaction"
	TypeContract    Type = "contract"
	TypeTask        Type = "task"
	TypeSource      Type = "source"
)

// Field length limits shared by ingestion and saved searches.
const (
	MaxNameLen     = 500
	MaxRecordIDLen = 255
	MaxTitleLen    = 1000
	MaxURLLen      = 2000
	MaxQueryLen    = 1000
	MaxUserLen     = 255
)

var apps = []App{
	AppCRM, AppHelpdesk, AppAnalytics, AppSocial, AppJobs,
	AppCloud, AppFinance, AppLegal, AppResearch, AppProductivity,
}

var types = []Type{
	TypeContact, TypeDeal, TypeTicket, TypeArticle, TypePost,
	TypeJob, TypeTransaction, TypeContract, TypeTask, TypeSource,
}

// Apps returns all known source applications in declaration order.
func Apps() []App {
	out := make([]App, len(apps))
	copy(out, apps)
	return out
}

// Types returns all known record kinds in declaration order.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// ParseApp validates a raw source_app value against the closed set.
func ParseApp(s string) (App, error) {
	for _, a := range apps {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown source_app %q: %w", s, domain.ErrValidation)
}

// ParseType validates a raw source_type value against the closed set.
func ParseType(s string) (Type, error) {
	for _, t := range types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown source_type %q: %w", s, domain.ErrValidation)
}

// ParseApps parses a comma-separated list of source apps. Empty input
// means no filter.
func ParseApps(csv string) ([]App, error) {
	if csv == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	out := make([]App, 0, len(parts))
	for _, p := range parts {
		a, err := ParseApp(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// ParseTypes parses a comma-separated list of source types. Empty
// input means no filter.
func ParseTypes(csv string) ([]Type, error) {
	if csv == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	out := make([]Type, 0, len(parts))
	for _, p := range parts {
		t, err := ParseType(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
