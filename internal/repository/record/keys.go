package record

import (
	"fmt"

	"github.com/searchdeck/searchdeck/internal/domain"
	"github.com/searchdeck/searchdeck/internal/domain/source"
)

// IndexName is the FT index over all record hashes.
const IndexName = domain.KeyPrefix + "record:idx"

const keyPrefix = domain.KeyPrefix + "record:"

func recordKey(app source.App, recordID string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, app, recordID)
}
