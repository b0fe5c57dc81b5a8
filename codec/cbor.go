package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR is a request codec producing RFC 8949 Core Deterministic output, the
// encoding mode intended for hashing/content addressing. More compact than
// JSON for large variable trees.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Time values are encoded as RFC3339Nano for stable, human-readable timestamps.
type CBOR struct {
	enc cbor.EncMode
}

var _ Codec = CBOR{}

// NewCBOR constructs a CBOR request codec using CoreDetEncOptions (RFC 8949).
func NewCBOR() (CBOR, error) {
	eo := cbor.CoreDetEncOptions()
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Should not use for prod just handy for package-level variables in tests/examples.
func MustCBOR() CBOR {
	c, err := NewCBOR()
	if err != nil {
		panic(err)
	}
	return c
}

// Encode encodes the pair as CBOR using the configured EncMode.
func (c CBOR) Encode(query string, variables map[string]any) ([]byte, error) {
	return c.enc.Marshal(request{Query: query, Variables: variables})
}
