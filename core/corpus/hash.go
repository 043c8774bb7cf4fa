package corpus

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Hash returns the hex-encoded BLAKE3 hash of the source buffer. It
// identifies corpus content: two corpora built from identical bytes
// share a hash regardless of language tag. The vocabulary store records
// it so a stored set can be traced back to its source text.
func (c *Corpus[L]) Hash() string {
	sum := blake3.Sum256([]byte(c.text))
	return hex.EncodeToString(sum[:])
}
