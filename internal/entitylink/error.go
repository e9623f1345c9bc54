package entitylink

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLink is wrapped by every ParseError.
	ErrMalformedLink = errors.New("entitylink: malformed link")
	// ErrNotColumnLink is returned when a column is requested from a link
	// that does not address one.
	ErrNotColumnLink = errors.New("entitylink: link does not address a column")
)

// ParseError describes why a token could not be decoded. Pos is the byte
// offset in the token where decoding stopped.
type ParseError struct {
	Token      string
	Message    string
	Pos        int
	Suggestion string // "did you mean 'table'?" or ""
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("entitylink: %s at offset %d in %q", e.Message, e.Pos, e.Token)
	if e.Suggestion != "" {
		msg += " (" + e.Suggestion + ")"
	}
	return msg
}

// Unwrap lets callers match any parse failure with errors.Is(err, ErrMalformedLink).
func (e *ParseError) Unwrap() error {
	return ErrMalformedLink
}

func newParseErrorf(token string, pos int, format string, args ...any) *ParseError {
	return &ParseError{
		Token:   token,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

// levenshtein computes the edit distance between two strings.
func levenshtein(a, b string) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr := make([]int, lb+1)
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev = curr
	}
	return prev[lb]
}

// suggestFrom returns a hint naming the closest candidate within maxDist,
// or "".
func suggestFrom(input string, candidates []string, maxDist int) string {
	best := ""
	bestDist := maxDist + 1
	for _, c := range candidates {
		if d := levenshtein(input, c); d < bestDist {
			bestDist = d
			best = c
		}
	}
	if bestDist <= maxDist {
		return fmt.Sprintf("did you mean '%s'?", best)
	}
	return ""
}
