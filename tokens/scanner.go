// Package tokens provides the token streams the sorter reads from: plain
// whitespace-delimited text and JSON input documents.
package tokens

import (
	"bufio"
	"io"
)

// Scanner splits a reader into whitespace-delimited tokens.
type Scanner struct {
	sc *bufio.Scanner
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Scanner{sc: sc}
}

// Next returns the next token, or io.EOF when the reader is exhausted.
func (s *Scanner) Next() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Slice is a token stream over tokens already held in memory.
type Slice struct {
	tokens []string
	pos    int
}

// NewSlice returns a stream yielding tokens in order.
func NewSlice(tokens ...string) *Slice {
	return &Slice{tokens: tokens}
}

// Next returns the next token, or io.EOF after the last one.
func (s *Slice) Next() (string, error) {
	if s.pos >= len(s.tokens) {
		return "", io.EOF
	}
	t := s.tokens[s.pos]
	s.pos++
	return t, nil
}

// Remaining reports how many tokens have not been read yet.
func (s *Slice) Remaining() int {
	return len(s.tokens) - s.pos
}
