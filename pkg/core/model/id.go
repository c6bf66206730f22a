package model

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// OpportunityID derives a stable 16-hex-character ID from an
// opportunity's source and content, so repeated crawls of the same
// listing dedupe to one record. Falls back to the title when the source
// has no native ID.
func OpportunityID(source, sourceID, title, organization string) string {
	key := sourceID
	if key == "" {
		key = title
	}
	sum := md5.Sum([]byte(fmt.Sprintf("%s:%s:%s", source, key, organization)))
	return hex.EncodeToString(sum[:])[:16]
}
