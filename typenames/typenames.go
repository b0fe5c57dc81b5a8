// Package typenames extracts the set of distinct __typename labels from a
// GraphQL response payload.
//
// Payloads are modeled as the JSON value sum type (null, number, string,
// bool, list, object) via structpb, so the walk handles every kind of node:
// lists and objects are descended into, scalars and null are skipped.
package typenames

import (
	"fmt"
	"sort"

	"google.golang.org/protobuf/types/known/structpb"
)

// Key is the field GraphQL servers use to label an object with its schema type.
const Key = "__typename"

// FromJSON parses raw as a single JSON value and returns the distinct
// __typename labels found anywhere in it, sorted. The result is a set;
// ordering carries no meaning.
func FromJSON(raw []byte) ([]string, error) {
	v := &structpb.Value{}
	if err := v.UnmarshalJSON(raw); err != nil {
		return nil, fmt.Errorf("typenames: parse payload: %w", err)
	}
	return FromValue(v), nil
}

// FromValue walks an already-parsed JSON value. Lists recurse into every
// element and objects into every field. A string under the __typename key
// is collected; the label itself is never walked into. A __typename holding
// anything but a string is ignored.
func FromValue(v *structpb.Value) []string {
	seen := make(map[string]struct{})
	walk(v, seen)

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func walk(v *structpb.Value, seen map[string]struct{}) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_ListValue:
		for _, el := range k.ListValue.GetValues() {
			walk(el, seen)
		}
	case *structpb.Value_StructValue:
		for field, val := range k.StructValue.GetFields() {
			if field == Key {
				if s, ok := val.GetKind().(*structpb.Value_StringValue); ok {
					seen[s.StringValue] = struct{}{}
				}
				continue
			}
			walk(val, seen)
		}
	}
}
