// Package radixsort sorts numeric strings with an LSD radix sort that works
// entirely by relinking the nodes of a circular linked list. Nodes are created
// once while the input is read and then recycled through every pass; scatter
// and gather only move links.
package radixsort

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
)

// Radix bounds accepted by ReadRadix. Sorting is documented for 10 and 16.
const (
	DefaultRadix = 10
	MinRadix     = 2
	MaxRadix     = 36
)

// TokenStream yields whitespace-delimited tokens. Next returns io.EOF once the
// stream is exhausted.
type TokenStream interface {
	Next() (string, error)
}

// Sorter holds the master list and the per-pass buckets.
type Sorter struct {
	masterListRear *Node   // rear of the master CLL; rear.next is the front
	buckets        []*Node // one CLL rear per digit value, reset every pass
	radix          int

	// OnPass, if set, is called after the gather of every pass with the pass
	// index and the rebuilt master list.
	OnPass func(pass int, rear *Node)
}

// New returns a Sorter with the default radix.
func New() *Sorter {
	return &Sorter{radix: DefaultRadix}
}

// Radix returns the radix read from the last stream.
func (s *Sorter) Radix() int {
	return s.radix
}

// MasterList returns the rear of the master list, or nil if it is empty.
func (s *Sorter) MasterList() *Node {
	return s.masterListRear
}

// Sort reads the radix and items from ts and returns the rear of a circular
// list holding the items in ascending order. An input with a radix but no
// items returns a nil list and no error.
func (s *Sorter) Sort(ts TokenStream) (*Node, error) {
	if err := s.ReadRadix(ts); err != nil {
		return nil, err
	}
	if err := s.BuildMasterList(ts); err != nil {
		return nil, err
	}
	if s.masterListRear == nil {
		slog.Info("Sort: nothing to sort", "radix", s.radix)
		return nil, nil
	}

	maxDigits := s.MaxDigits()
	for pass := 0; pass < maxDigits; pass++ {
		if err := s.Scatter(pass); err != nil {
			return nil, fmt.Errorf("pass %d: %w", pass, err)
		}
		s.Gather()
		slog.Debug("Sort: pass complete", "pass", pass, "of", maxDigits)
		if s.OnPass != nil {
			s.OnPass(pass, s.masterListRear)
		}
	}
	return s.masterListRear, nil
}

// ReadRadix consumes the first token of ts as the sort radix and sizes the
// bucket array for it.
func (s *Sorter) ReadRadix(ts TokenStream) error {
	token, err := ts.Next()
	if errors.Is(err, io.EOF) {
		slog.Error("ReadRadix: input is empty")
		return ErrEmptyInput
	}
	if err != nil {
		return fmt.Errorf("reading radix: %w", err)
	}

	radix, err := strconv.Atoi(token)
	if err != nil {
		slog.Error("ReadRadix: radix is not an integer", "token", token, "error", err)
		return &RadixError{Token: token, Err: err}
	}
	if radix < MinRadix || radix > MaxRadix {
		slog.Error("ReadRadix: radix out of range", "radix", radix)
		return &RadixError{Token: token, Err: errRadixRange}
	}

	s.radix = radix
	s.buckets = make([]*Node, radix)
	return nil
}

// BuildMasterList appends every remaining token of ts to the rear of a fresh
// master list, so the first token read ends up at the front. Each value is
// checked against the radix as it is read.
func (s *Sorter) BuildMasterList(ts TokenStream) error {
	s.masterListRear = nil
	for {
		token, err := ts.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading item: %w", err)
		}
		if err := s.checkDigits(token); err != nil {
			slog.Error("BuildMasterList: rejecting item", "error", err)
			return err
		}
		s.masterListRear = appendRear(s.masterListRear, &Node{Data: token})
	}
}

// MaxDigits returns the length of the longest item in the master list. The
// master list must not be empty.
func (s *Sorter) MaxDigits() int {
	maxDigits := len(s.masterListRear.Data)
	for ptr := s.masterListRear.next; ptr != s.masterListRear; ptr = ptr.next {
		if len(ptr.Data) > maxDigits {
			maxDigits = len(ptr.Data)
		}
	}
	return maxDigits
}

// Scatter moves every node of the master list into the bucket for its digit
// at the given pass, where pass 0 is the rightmost digit. Items too short to
// have that digit go to bucket 0. The master list is empty afterwards until
// Gather rebuilds it.
//
// On a malformed digit no node is lost: what was scattered so far is gathered
// and the unvisited remainder is appended before the error is returned.
func (s *Sorter) Scatter(pass int) error {
	s.buckets = make([]*Node, s.radix)
	rear := s.masterListRear
	if rear == nil {
		return nil
	}
	s.masterListRear = nil

	ptr := rear.next
	for {
		next := ptr.next
		last := ptr == rear

		bucket, err := s.bucketFor(ptr.Data, pass)
		if err != nil {
			// ptr..rear is still chained by its original links
			rear.next = ptr
			s.Gather()
			s.masterListRear = concat(s.masterListRear, rear)
			slog.Error("Scatter: aborting pass", "pass", pass, "error", err)
			return err
		}
		s.buckets[bucket] = appendRear(s.buckets[bucket], ptr)

		if last {
			return nil
		}
		ptr = next
	}
}

// Gather concatenates the buckets into the master list in bucket order,
// keeping the order within each bucket.
func (s *Sorter) Gather() {
	s.masterListRear = nil
	for i, bucketRear := range s.buckets {
		s.masterListRear = concat(s.masterListRear, bucketRear)
		s.buckets[i] = nil
	}
}

func (s *Sorter) bucketFor(value string, pass int) (int, error) {
	if len(value) < pass+1 {
		return 0, nil
	}
	i := len(value) - 1 - pass
	d := digitValue(value[i], s.radix)
	if d < 0 {
		return 0, &MalformedDigitError{Value: value, Index: i, Char: value[i], Radix: s.radix}
	}
	return d, nil
}

func (s *Sorter) checkDigits(value string) error {
	for i := 0; i < len(value); i++ {
		if digitValue(value[i], s.radix) < 0 {
			return &MalformedDigitError{Value: value, Index: i, Char: value[i], Radix: s.radix}
		}
	}
	return nil
}

// digitValue maps c to its value in radix, or -1 if c is not a digit there.
func digitValue(c byte, radix int) int {
	var d int
	switch {
	case '0' <= c && c <= '9':
		d = int(c - '0')
	case 'a' <= c && c <= 'z':
		d = int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		d = int(c-'A') + 10
	default:
		return -1
	}
	if d >= radix {
		return -1
	}
	return d
}
