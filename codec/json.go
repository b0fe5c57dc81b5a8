package codec

import "encoding/json"

// JSON is the default request codec. encoding/json writes the keys of Go
// maps in sorted order at every nesting level, so the output is canonical
// for JSON-shaped variable trees. The zero value is ready to use.
type JSON struct{}

var _ Codec = JSON{}

func (JSON) Encode(query string, variables map[string]any) ([]byte, error) {
	return json.Marshal(request{Query: query, Variables: variables})
}
