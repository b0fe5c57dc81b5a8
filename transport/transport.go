// Package transport carries serialized requests to a GraphQL endpoint and
// parses the response envelope. It is the only component that touches the
// network; everything above it works with parsed envelopes and adds no
// retry, backoff, or timeout policy of its own.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// Transport performs one request/response exchange. Implementations own
// timeouts; cancellation follows ctx.
type Transport interface {
	Exchange(ctx context.Context, endpoint string, body []byte, header http.Header) (*Response, error)
}

// Response is the parsed GraphQL response envelope.
type Response struct {
	Data       json.RawMessage `json:"data,omitempty"`
	Errors     []ResponseError `json:"errors,omitempty"`
	Extensions json.RawMessage `json:"extensions,omitempty"`
}

// ResponseError is one member of the envelope's errors list.
type ResponseError struct {
	Message    string          `json:"message"`
	Path       []any           `json:"path,omitempty"`
	Locations  []Location      `json:"locations,omitempty"`
	Extensions json.RawMessage `json:"extensions,omitempty"`
}

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

var nullLiteral = []byte("null")

// HasData reports whether the envelope carries a usable data document.
// A missing or JSON-null data field counts as absent.
func (r *Response) HasData() bool {
	return r != nil && len(r.Data) > 0 && !bytes.Equal(r.Data, nullLiteral)
}
