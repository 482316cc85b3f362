package codec

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/sff/core/sff"
)

// Fingerprint returns the hex-encoded BLAKE3 hash of the document's
// canonical serialization (recomputed counters). Documents with equal
// content share a fingerprint even when their stored counters are stale,
// which makes it suitable for change detection and deduplication.
func Fingerprint(doc *sff.Document) string {
	sum := blake3.Sum256([]byte(Serialize(doc, Recompute)))
	return hex.EncodeToString(sum[:])
}
