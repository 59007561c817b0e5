package radixsort

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the token stream does not even hold a radix.
var ErrEmptyInput = errors.New("empty input: no radix")

// MalformedDigitError reports a character that is not a digit in the sort radix.
type MalformedDigitError struct {
	Value string // the offending item
	Index int    // byte offset of Char within Value
	Char  byte
	Radix int
}

func (e *MalformedDigitError) Error() string {
	return fmt.Sprintf("malformed digit %q at index %d of %q for radix %d", e.Char, e.Index, e.Value, e.Radix)
}

// RadixError reports a radix token that could not be used.
type RadixError struct {
	Token string
	Err   error
}

func (e *RadixError) Error() string {
	return fmt.Sprintf("invalid radix %q: %v", e.Token, e.Err)
}

func (e *RadixError) Unwrap() error {
	return e.Err
}

var errRadixRange = fmt.Errorf("radix must be between %d and %d", MinRadix, MaxRadix)
