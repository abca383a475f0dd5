package domain

import "encoding/json"

// Kind tags one of the closed set of JSON value kinds a decoded document
// can hold. Error messages surface this tag rather than a Go type name.
type Kind string

const (
	KindNull    Kind = "null"
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindString  Kind = "string"
	KindList    Kind = "list"
	KindObject  Kind = "object"
)

// KindOf maps a value produced by encoding/json into its JSON kind.
// Decoded values that are none of the scalar or list shapes are objects
// (map[string]any is the only remaining shape the decoder emits).
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case float64, json.Number:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindList
	default:
		return KindObject
	}
}
