package codec

import (
	"bytes"
	"testing"
)

var all = map[string]Codec{
	"json":    JSON{},
	"cbor":    MustCBOR(),
	"msgpack": Msgpack{},
}

// two structurally equal variable trees assembled in different orders
func varsA() map[string]any {
	return map[string]any{
		"zed":   1,
		"alpha": map[string]any{"nested": []any{"x", "y"}, "a": true},
		"mid":   []any{map[string]any{"k2": 2.5, "k1": "v"}},
	}
}

func varsB() map[string]any {
	m := map[string]any{}
	m["mid"] = []any{map[string]any{"k1": "v", "k2": 2.5}}
	m["alpha"] = map[string]any{"a": true, "nested": []any{"x", "y"}}
	m["zed"] = 1
	return m
}

func TestEncodeDeterministic(t *testing.T) {
	const query = `query User($id: ID!) { user(id: $id) { __typename name } }`
	for name, c := range all {
		t.Run(name, func(t *testing.T) {
			a, err := c.Encode(query, varsA())
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			b, err := c.Encode(query, varsB())
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if !bytes.Equal(a, b) {
				t.Fatalf("structurally equal inputs encoded differently:\n%x\n%x", a, b)
			}
		})
	}
}

func TestEncodeDistinguishesInputs(t *testing.T) {
	for name, c := range all {
		t.Run(name, func(t *testing.T) {
			base, err := c.Encode("query A { a }", map[string]any{"id": "1"})
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			otherQuery, err := c.Encode("query B { b }", map[string]any{"id": "1"})
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			otherVars, err := c.Encode("query A { a }", map[string]any{"id": "2"})
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if bytes.Equal(base, otherQuery) {
				t.Fatalf("different queries encoded identically")
			}
			if bytes.Equal(base, otherVars) {
				t.Fatalf("different variables encoded identically")
			}
		})
	}
}

func TestEncodeNilVariablesStable(t *testing.T) {
	for name, c := range all {
		t.Run(name, func(t *testing.T) {
			a, err := c.Encode("query { me }", nil)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if len(a) == 0 {
				t.Fatalf("empty encoding")
			}
			b, err := c.Encode("query { me }", nil)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if !bytes.Equal(a, b) {
				t.Fatalf("nil-variable encoding unstable")
			}
		})
	}
}
