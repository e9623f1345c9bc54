package fqn

import (
	"fmt"
	"strings"
)

// Part selects a level of the containment hierarchy.
type Part int

const (
	PartService Part = iota
	PartDatabase
	PartSchema
	PartTable
	PartColumn
	PartNestedColumn
	PartTestCase
	PartTopic
)

// String returns the part name used in CLI flags.
func (p Part) String() string {
	switch p {
	case PartService:
		return "service"
	case PartDatabase:
		return "database"
	case PartSchema:
		return "schema"
	case PartTable:
		return "table"
	case PartColumn:
		return "column"
	case PartNestedColumn:
		return "nested-column"
	case PartTestCase:
		return "test-case"
	case PartTopic:
		return "topic"
	default:
		return "unknown"
	}
}

// ParsePart is the inverse of Part.String.
func ParsePart(s string) (Part, error) {
	for p := PartService; p <= PartTopic; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("fqn: unknown part %q", s)
}

// tableDepth is the number of segments in a fully qualified table name:
// service.database.schema.table.
const tableDepth = 4

// partIndex is the segment position of each positional part.
var partIndex = map[Part]int{
	PartService:  0,
	PartDatabase: 1,
	PartSchema:   2,
	PartTable:    3,
	PartColumn:   4,
	PartTopic:    1,
}

// positionalOrder is the order parts are emitted in by PartialName.
var positionalOrder = []Part{PartService, PartDatabase, PartSchema, PartTable, PartColumn, PartTopic}

// segmentsOf splits leniently: a name the scanner rejects is split on the
// bare separator so display helpers never fail.
func segmentsOf(name string) []string {
	segments, err := Split(name)
	if err != nil {
		return strings.Split(name, Separator)
	}
	return segments
}

// PartialName extracts the requested hierarchy segments from an FQN and
// joins them with joinSep. PartNestedColumn takes precedence and returns
// every segment after the table joined with Separator. PartTestCase returns
// the last segment.
func PartialName(name string, parts []Part, joinSep string) string {
	if name == "" {
		return ""
	}
	segments := segmentsOf(name)
	want := make(map[Part]bool, len(parts))
	for _, p := range parts {
		want[p] = true
	}

	if want[PartNestedColumn] {
		if len(segments) <= tableDepth {
			return ""
		}
		return strings.Join(segments[tableDepth:], Separator)
	}
	if want[PartTestCase] {
		return segments[len(segments)-1]
	}

	var out []string
	for _, p := range positionalOrder {
		if !want[p] {
			continue
		}
		if i := partIndex[p]; i < len(segments) && segments[i] != "" {
			out = append(out, segments[i])
		}
	}
	return strings.Join(out, joinSep)
}

// splitColumn returns the table segments and the column path of a column
// FQN. Names with more than four segments are treated as fully qualified
// (service.database.schema.table followed by a possibly nested column);
// shorter names carry the column in their last segment.
func splitColumn(columnFQN string) ([]string, []string, error) {
	segments, err := Split(columnFQN)
	if err != nil {
		return nil, nil, err
	}
	if len(segments) < 2 {
		return nil, nil, fmt.Errorf("%w: %q has %d segment(s)", ErrNotColumnFQN, columnFQN, len(segments))
	}
	cut := len(segments) - 1
	if len(segments) > tableDepth {
		cut = tableDepth
	}
	return segments[:cut], segments[cut:], nil
}

// TableFQNFromColumnFQN returns the FQN of the table that contains the
// column.
func TableFQNFromColumnFQN(columnFQN string) (string, error) {
	table, _, err := splitColumn(columnFQN)
	if err != nil {
		return "", err
	}
	return Build(table...), nil
}

// ColumnNameFromColumnFQN returns the column path that TableFQNFromColumnFQN
// strips. Nested column segments are joined with Separator and re-quoted, so
// table and column rejoin to the original FQN.
func ColumnNameFromColumnFQN(columnFQN string) (string, error) {
	_, column, err := splitColumn(columnFQN)
	if err != nil {
		return "", err
	}
	return Build(column...), nil
}

// NameFromFQN returns the last segment of an FQN.
func NameFromFQN(name string) string {
	segments := segmentsOf(name)
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}
