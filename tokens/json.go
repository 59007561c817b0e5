package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"

	"github.com/RICE-COMP318-FALL23/radixsort-cll/jsonschema"
	"github.com/RICE-COMP318-FALL23/radixsort-cll/jsonvisit"
)

var errNotDocument = errors.New("input document must be a JSON object")

// FromJSON turns an input document of the form
//
//	{"radix": 16, "items": ["1a", "ff", "09"]}
//
// into a token stream holding the radix followed by the items. The document
// is validated with sv first. Numeric items are read as exact decimal
// integers and written out in the document's radix.
func FromJSON(data []byte, sv jsonschema.SchemaValidator) (*Slice, error) {
	if err := sv.ValidateData(data); err != nil {
		return nil, fmt.Errorf("invalid input document: %w", err)
	}

	var doc any
	if err := jsonschema.Decode(data, &doc); err != nil {
		slog.Error("FromJSON: unable to unmarshal input", "error", err)
		return nil, err
	}

	toks, err := jsonvisit.Accept[[]string](doc, documentVisitor{})
	if err != nil {
		return nil, err
	}
	s := NewSlice(toks...)
	slog.Debug("FromJSON: decoded input document", "radix", toks[0], "items", s.Remaining()-1)
	return s, nil
}

// documentVisitor walks the top-level object.
type documentVisitor struct{}

func (documentVisitor) Map(m map[string]any) ([]string, error) {
	radix, ok := m["radix"]
	if !ok {
		return nil, errors.New("input document has no radix")
	}
	r, err := jsonvisit.Accept[string](radix, scalarVisitor{radix: 10})
	if err != nil {
		return nil, fmt.Errorf("radix: %w", err)
	}
	base, err := strconv.Atoi(r)
	if err != nil || base < 2 || base > 36 {
		return nil, fmt.Errorf("radix %q must be an integer between 2 and 36", r)
	}
	toks := []string{r}

	items, ok := m["items"]
	if !ok {
		// a radix alone is a valid, empty input
		return toks, nil
	}
	rest, err := jsonvisit.Accept[[]string](items, itemsVisitor{radix: base})
	if err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	return append(toks, rest...), nil
}

func (documentVisitor) Slice([]any) ([]string, error)        { return nil, errNotDocument }
func (documentVisitor) Bool(bool) ([]string, error)          { return nil, errNotDocument }
func (documentVisitor) Float64(float64) ([]string, error)    { return nil, errNotDocument }
func (documentVisitor) Number(json.Number) ([]string, error) { return nil, errNotDocument }
func (documentVisitor) String(string) ([]string, error)      { return nil, errNotDocument }
func (documentVisitor) Null() ([]string, error)              { return nil, errNotDocument }

// itemsVisitor collects the items array.
type itemsVisitor struct {
	radix int
}

func (iv itemsVisitor) Slice(s []any) ([]string, error) {
	toks := make([]string, 0, len(s))
	for i, v := range s {
		t, err := jsonvisit.Accept[string](v, scalarVisitor{radix: iv.radix})
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		toks = append(toks, t)
	}
	return toks, nil
}

var errNotArray = errors.New("items must be an array")

func (itemsVisitor) Map(map[string]any) ([]string, error) { return nil, errNotArray }
func (itemsVisitor) Bool(bool) ([]string, error)          { return nil, errNotArray }
func (itemsVisitor) Float64(float64) ([]string, error)    { return nil, errNotArray }
func (itemsVisitor) Number(json.Number) ([]string, error) { return nil, errNotArray }
func (itemsVisitor) String(string) ([]string, error)      { return nil, errNotArray }
func (itemsVisitor) Null() ([]string, error)              { return nil, errNotArray }

// scalarVisitor renders a string or a whole number as a token. Strings pass
// through untouched so that leading zeros and hex letters survive; numbers
// are exact decimal literals rendered in radix.
type scalarVisitor struct {
	radix int
}

func (scalarVisitor) String(s string) (string, error) {
	return s, nil
}

func (sv scalarVisitor) Number(n json.Number) (string, error) {
	text := n.String()
	if strings.ContainsAny(text, ".eE+-") {
		return "", fmt.Errorf("%s is not a non-negative integer literal", text)
	}
	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return "", fmt.Errorf("%s is not a non-negative integer literal", text)
	}
	return v.Text(sv.radix), nil
}

// Float64 is only reached when the document was decoded without UseNumber,
// where exactness is already lost.
func (scalarVisitor) Float64(f float64) (string, error) {
	return "", fmt.Errorf("number %v was decoded as float64", f)
}

var errNotScalar = errors.New("expected a string or a number")

func (scalarVisitor) Map(map[string]any) (string, error) { return "", errNotScalar }
func (scalarVisitor) Slice([]any) (string, error)        { return "", errNotScalar }
func (scalarVisitor) Bool(bool) (string, error)          { return "", errNotScalar }
func (scalarVisitor) Null() (string, error)              { return "", errNotScalar }
