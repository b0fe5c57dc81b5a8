package codec

// Codec serializes a (query, variables) pair into the canonical bytes a
// cache key is derived from.
//
// Implementations MUST be deterministic: structurally equal inputs produce
// byte-identical output, with stable map key ordering at every nesting
// level. The encoded form never leaves the process; it exists only to feed
// a hasher, and is independent of the wire body sent to the server.
type Codec interface {
	Encode(query string, variables map[string]any) ([]byte, error)
}

// request is the canonical envelope shared by the built-in codecs.
type request struct {
	Query     string         `json:"query" cbor:"query" msgpack:"query"`
	Variables map[string]any `json:"variables,omitempty" cbor:"variables,omitempty" msgpack:"variables,omitempty"`
}
