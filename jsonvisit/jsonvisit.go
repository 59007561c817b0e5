// Package jsonvisit walks unmarshaled JSON values. Encoded JSON data should be
// unmarshaled into a variable of type "any" and then processed with a Visitor
// through Accept. Numbers arrive as float64, or as json.Number when the
// decoder was told to UseNumber.
package jsonvisit

import (
	"encoding/json"
	"fmt"
)

// A Visitor handles each JSON kind. Map and Slice may call Accept on their
// elements with another visitor to descend into nested values.
type Visitor[T any] interface {
	Map(map[string]any) (T, error)
	Slice([]any) (T, error)
	Bool(bool) (T, error)
	Float64(float64) (T, error)
	Number(json.Number) (T, error)
	String(string) (T, error)
	Null() (T, error)
}

// Accept dispatches value to the visitor method for its JSON kind. Values
// that are not valid JSON kinds are rejected.
func Accept[T any](value any, visitor Visitor[T]) (T, error) {
	switch val := value.(type) {
	case map[string]any:
		return visitor.Map(val)
	case []any:
		return visitor.Slice(val)
	case float64:
		return visitor.Float64(val)
	case json.Number:
		return visitor.Number(val)
	case bool:
		return visitor.Bool(val)
	case string:
		return visitor.String(val)
	case nil:
		return visitor.Null()
	default:
		var zero T
		return zero, fmt.Errorf("invalid JSON value of type %T: %v", value, value)
	}
}
