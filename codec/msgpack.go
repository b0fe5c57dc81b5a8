package codec

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack is a request codec using vmihailenco/msgpack/v5 with sorted map
// keys, which keeps string-keyed variable trees deterministic. The zero
// value is ready to use.
type Msgpack struct{}

var _ Codec = Msgpack{}

func (Msgpack) Encode(query string, variables map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(request{Query: query, Variables: variables}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
