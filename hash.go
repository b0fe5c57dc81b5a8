package gqlfetch

import (
	"crypto/sha256"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hasher derives the cache key digest from canonical request bytes.
// Implementations must be pure: equal input yields an equal, fixed-length
// textual digest. Collision resistance only has to suffice for cache
// addressing; cryptographic strength is not required.
type Hasher interface {
	Hash(b []byte) string
}

// XXHash is the default Hasher: xxhash64 rendered as 16 lowercase hex chars.
type XXHash struct{}

var _ Hasher = XXHash{}

func (XXHash) Hash(b []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

// SHA256 renders the full 64 hex char digest. Slower than XXHash; use it
// when keys leave the process and collision headroom matters.
type SHA256 struct{}

var _ Hasher = SHA256{}

func (SHA256) Hash(b []byte) string {
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%x", sum)
}
