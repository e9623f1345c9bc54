// Package fqn splits and builds fully qualified names.
//
// An FQN is an ordered list of name segments, outermost container first,
// joined by Separator:
//
//	service.database.schema.table.column
//
// A segment that itself contains the separator is wrapped in double quotes
// ("my.table"). Segments may not contain a double quote.
package fqn

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Separator joins FQN segments.
	Separator = "."
	// Quote wraps segments that contain Separator.
	Quote = `"`
)

var (
	// ErrUnbalancedQuote is returned when a quoted segment is never closed.
	ErrUnbalancedQuote = errors.New("fqn: unbalanced quote")
	// ErrEmptySegment is returned for inputs like "a..b" or a trailing dot.
	ErrEmptySegment = errors.New("fqn: empty segment")
	// ErrNotColumnFQN is returned when a column FQN has no table part.
	ErrNotColumnFQN = errors.New("fqn: not a column fqn")
)

// Split breaks an FQN into its unquoted segments. It returns nil for the
// empty string.
func Split(name string) ([]string, error) {
	if name == "" {
		return nil, nil
	}
	s := newScanner(name)
	var segments []string
	for {
		seg, err := s.segment()
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
		if s.done() {
			return segments, nil
		}
		s.skipSeparator()
		if s.done() {
			return nil, fmt.Errorf("%w at end of %q", ErrEmptySegment, name)
		}
	}
}

// MustSplit is Split for names known to be well formed; a malformed name
// yields its unsplit form as the only segment.
func MustSplit(name string) []string {
	segments, err := Split(name)
	if err != nil {
		return []string{name}
	}
	return segments
}

// QuoteName quotes a segment if it contains Separator. Already quoted
// segments are returned unchanged.
func QuoteName(name string) string {
	if len(name) > 1 && strings.HasPrefix(name, Quote) && strings.HasSuffix(name, Quote) {
		return name
	}
	if strings.Contains(name, Separator) {
		return Quote + name + Quote
	}
	return name
}

// UnquoteName strips the surrounding quotes from a segment, if present.
func UnquoteName(name string) string {
	if len(name) > 1 && strings.HasPrefix(name, Quote) && strings.HasSuffix(name, Quote) {
		return name[1 : len(name)-1]
	}
	return name
}

// Build joins segments into an FQN, quoting each one as needed.
func Build(segments ...string) string {
	quoted := make([]string, len(segments))
	for i, s := range segments {
		quoted[i] = QuoteName(s)
	}
	return strings.Join(quoted, Separator)
}
