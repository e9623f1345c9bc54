package fqn

import (
	"fmt"
	"strings"
)

// scanner walks an FQN one segment at a time.
type scanner struct {
	input string
	pos   int // current byte position
}

func newScanner(input string) *scanner {
	return &scanner{input: input}
}

func (s *scanner) done() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.input[s.pos]
}

// skipSeparator consumes a single separator. Callers only invoke it when
// segment stopped on one.
func (s *scanner) skipSeparator() {
	s.pos += len(Separator)
}

// segment reads one segment, quoted or bare, and leaves the scanner on the
// following separator or at end of input.
func (s *scanner) segment() (string, error) {
	start := s.pos
	if s.peek() == Quote[0] {
		end := strings.Index(s.input[s.pos+1:], Quote)
		if end < 0 {
			return "", fmt.Errorf("%w starting at %d in %q", ErrUnbalancedQuote, start, s.input)
		}
		s.pos += end + 2
		if !s.done() && !strings.HasPrefix(s.input[s.pos:], Separator) {
			return "", fmt.Errorf("%w: text after closing quote at %d in %q", ErrUnbalancedQuote, s.pos, s.input)
		}
		seg := s.input[start+1 : s.pos-1]
		if seg == "" {
			return "", fmt.Errorf("%w at %d in %q", ErrEmptySegment, start, s.input)
		}
		return seg, nil
	}

	for !s.done() && !strings.HasPrefix(s.input[s.pos:], Separator) {
		if s.peek() == Quote[0] {
			return "", fmt.Errorf("%w: stray quote at %d in %q", ErrUnbalancedQuote, s.pos, s.input)
		}
		s.pos++
	}
	if s.pos == start {
		return "", fmt.Errorf("%w at %d in %q", ErrEmptySegment, start, s.input)
	}
	return s.input[start:s.pos], nil
}
