package record

import (
	"strings"
	"unicode"
)

// BuildSearchText produces the derived search representation: the five
// source fields joined, lowercased, control characters stripped, and
// whitespace collapsed. Deterministic and side-effect free; stemming
// and stop-word handling happen in the text index, which is configured
// for a single language. The record repository recomputes this on
// every write so the stored value never lags the source fields.
func BuildSearchText(name, title, content, sourceApp, sourceType string) string {
	joined := name + " " + title + " " + content + " " + sourceApp + " " + sourceType

	var b strings.Builder
	b.Grow(len(joined))
	pendingSpace := false
	for _, r := range joined {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
