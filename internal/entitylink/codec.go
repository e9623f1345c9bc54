package entitylink

import (
	"fmt"
	"strings"

	"github.com/matthewbaird/catalogview/internal/fqn"
)

// Generate builds the link token for a table, or for a column when
// includeColumn is set, in which case name must be a column FQN and the
// table FQN is derived from it. Segment content is not validated.
func Generate(name string, includeColumn bool) (string, error) {
	if !includeColumn {
		return TableLink(name).String(), nil
	}
	table, err := fqn.TableFQNFromColumnFQN(name)
	if err != nil {
		return "", fmt.Errorf("generating column link: %w", err)
	}
	column, err := fqn.ColumnNameFromColumnFQN(name)
	if err != nil {
		return "", fmt.Errorf("generating column link: %w", err)
	}
	return ColumnLink(table, column).String(), nil
}

// EntityFQN returns the entity FQN a token addresses. With includeColumn
// the column is appended to the table FQN (table.column); the token must be
// a column link.
func EntityFQN(token string, includeColumn bool) (string, error) {
	link, err := Parse(token)
	if err != nil {
		return "", err
	}
	if !includeColumn {
		return link.EntityFQN, nil
	}
	if !link.IsColumn() {
		return "", fmt.Errorf("%w: %s", ErrNotColumnLink, token)
	}
	return link.ColumnFQN(), nil
}

// LenientEntityFQN decodes the way the catalog UI always has: take the text
// before the first ">", split on "::", and read the FQN at position 2. With
// includeColumn the last segment is appended after a ".". Short tokens
// yield "" (or a bare ".last") instead of an error.
func LenientEntityFQN(token string, includeColumn bool) string {
	head, _, _ := strings.Cut(token, suffix)
	segments := strings.Split(head, separator)
	var tableFQN string
	if len(segments) > 2 {
		tableFQN = segments[2]
	}
	if includeColumn {
		return tableFQN + fqn.Separator + segments[len(segments)-1]
	}
	return tableFQN
}

// IsColumnToken reports whether a token looks like a column link without
// fully parsing it.
func IsColumnToken(token string) bool {
	return strings.Contains(token, separator+FieldColumns+separator)
}
