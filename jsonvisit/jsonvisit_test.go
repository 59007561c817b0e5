package jsonvisit

import (
	"encoding/json"
	"strings"
	"testing"
)

// kindVisitor names the kind each value was dispatched as.
type kindVisitor struct{}

func (kindVisitor) Map(map[string]any) (string, error)   { return "map", nil }
func (kindVisitor) Slice([]any) (string, error)          { return "slice", nil }
func (kindVisitor) Bool(bool) (string, error)            { return "bool", nil }
func (kindVisitor) Float64(float64) (string, error)      { return "float64", nil }
func (kindVisitor) Number(n json.Number) (string, error) { return "number:" + n.String(), nil }
func (kindVisitor) String(string) (string, error)        { return "string", nil }
func (kindVisitor) Null() (string, error)                { return "null", nil }

func TestAcceptDispatch(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{map[string]any{}, "map"},
		{[]any{}, "slice"},
		{true, "bool"},
		{1.5, "float64"},
		{json.Number("9007199254740993"), "number:9007199254740993"},
		{"x", "string"},
		{nil, "null"},
	}

	for _, tt := range tests {
		got, err := Accept[string](tt.value, kindVisitor{})
		if err != nil {
			t.Fatalf("Accept(%v) failed: %v", tt.value, err)
		}
		if got != tt.want {
			t.Errorf("Accept(%v) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestAcceptKeepsDecodedNumbers(t *testing.T) {
	dec := json.NewDecoder(strings.NewReader(`18446744073709551617`))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		t.Fatal(err)
	}
	got, err := Accept[string](v, kindVisitor{})
	if err != nil {
		t.Fatal(err)
	}
	if got != "number:18446744073709551617" {
		t.Errorf("Expected exact number, got %s", got)
	}
}

func TestAcceptRejectsNonJSON(t *testing.T) {
	if _, err := Accept[string](42, kindVisitor{}); err == nil {
		t.Error("Expected error for int value")
	}
}
