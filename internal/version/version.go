// Package version centralizes version strings for the logical components of
// the concierge. Cache keys embed these versions, so bumping one invalidates
// every cached answer produced by the old logic or data.
package version

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComponentVersions holds the version strings for the parts of the system
// whose changes should invalidate cached answers. Bump the relevant field
// before deploying a change to that component.
var ComponentVersions = struct {
	// Catalog changes whenever the hotel inventory data changes.
	Catalog string
	// Tools changes whenever tool logic or schemas change.
	Tools string
	// PromptLogic changes whenever the conversation construction changes.
	PromptLogic string
}{
	Catalog:     "v1.0",
	Tools:       "v1.0",
	PromptLogic: "v1.0",
}

// GenerateVersionedCacheKey builds a stable cache key from a prefix, a hash
// of the query, and the current component versions.
//
// Example output: "concierge:a1b2c3d4...:cv1.0_tv1.0_pv1.0"
func GenerateVersionedCacheKey(prefix, query string) string {
	hasher := sha256.New()
	hasher.Write([]byte(query))
	queryHash := hex.EncodeToString(hasher.Sum(nil))

	versionString := fmt.Sprintf("c%s_t%s_p%s",
		ComponentVersions.Catalog,
		ComponentVersions.Tools,
		ComponentVersions.PromptLogic,
	)

	return fmt.Sprintf("%s:%s:%s", prefix, queryHash, versionString)
}
