// Package entitylink encodes and decodes entity link tokens, the bracketed
// strings the catalog uses to address an entity or one of its fields:
//
//	<#E::table::svc.db.schema.orders>
//	<#E::table::svc.db.schema.orders::columns::customer_id>
//
// The grammar is a wire contract with the catalog backend and must be
// preserved exactly.
package entitylink

import (
	"slices"
	"strings"

	"github.com/matthewbaird/catalogview/internal/fqn"
	"github.com/matthewbaird/catalogview/internal/types"
)

const (
	prefix    = "<#E"
	suffix    = ">"
	separator = "::"

	// FieldColumns is the field name of column links.
	FieldColumns = "columns"
)

// knownEntityTypes are the entity types a link may address.
var knownEntityTypes = []string{
	string(types.EntityTable),
	string(types.EntityTopic),
	string(types.EntityDashboard),
	string(types.EntityPipeline),
	string(types.EntityMlModel),
	string(types.EntityContainer),
	string(types.EntityDatabase),
	string(types.EntityDatabaseSchema),
	string(types.EntityGlossary),
	string(types.EntityGlossaryTerm),
	string(types.EntityTag),
	string(types.EntityTeam),
	string(types.EntityUser),
	string(types.EntityDashboardDataModel),
	string(types.EntityTestCase),
	string(types.EntityTestSuite),
}

// Link is a decoded entity link.
type Link struct {
	EntityType string `json:"entityType"`
	EntityFQN  string `json:"entityFqn"`
	Field      string `json:"field,omitempty"`       // "columns", "description", "tags", ...
	ArrayField string `json:"arrayField,omitempty"` // column name for column links
	SubField   string `json:"subField,omitempty"`   // e.g. "description" of a column
}

// TableLink addresses a table.
func TableLink(tableFQN string) Link {
	return Link{EntityType: string(types.EntityTable), EntityFQN: tableFQN}
}

// ColumnLink addresses a column of a table.
func ColumnLink(tableFQN, column string) Link {
	return Link{
		EntityType: string(types.EntityTable),
		EntityFQN:  tableFQN,
		Field:      FieldColumns,
		ArrayField: column,
	}
}

// IsColumn reports whether the link addresses a column.
func (l Link) IsColumn() bool {
	return l.Field == FieldColumns && l.ArrayField != ""
}

// String encodes the link as a token.
func (l Link) String() string {
	parts := []string{prefix, l.EntityType, l.EntityFQN}
	for _, p := range []string{l.Field, l.ArrayField, l.SubField} {
		if p == "" {
			break
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, separator) + suffix
}

// ColumnFQN returns the column-qualified name tableFQN.column. It is only
// meaningful for column links.
func (l Link) ColumnFQN() string {
	return l.EntityFQN + fqn.Separator + l.ArrayField
}

// Parse decodes a token. Unlike LenientEntityFQN it never guesses: any
// deviation from the grammar is a *ParseError.
func Parse(token string) (Link, error) {
	if !strings.HasPrefix(token, prefix+separator) {
		return Link{}, newParseErrorf(token, 0, "missing %q prefix", prefix+separator)
	}
	end := strings.Index(token, suffix)
	if end < 0 {
		return Link{}, newParseErrorf(token, len(token), "missing closing %q", suffix)
	}
	if end != len(token)-1 {
		return Link{}, newParseErrorf(token, end+1, "unexpected text after closing %q", suffix)
	}

	body := token[len(prefix)+len(separator) : end]
	segments := strings.Split(body, separator)
	if len(segments) < 2 || len(segments) > 5 {
		return Link{}, newParseErrorf(token, len(prefix), "want 2 to 5 segments, got %d", len(segments))
	}

	pos := len(prefix) + len(separator)
	for i, s := range segments {
		if s == "" {
			return Link{}, newParseErrorf(token, pos, "segment %d is empty", i)
		}
		pos += len(s) + len(separator)
	}

	link := Link{EntityType: segments[0], EntityFQN: segments[1]}
	if !slices.Contains(knownEntityTypes, link.EntityType) {
		perr := newParseErrorf(token, len(prefix)+len(separator), "unknown entity type %q", link.EntityType)
		perr.Suggestion = suggestFrom(link.EntityType, knownEntityTypes, 3)
		return Link{}, perr
	}
	if len(segments) > 2 {
		link.Field = segments[2]
	}
	if len(segments) > 3 {
		link.ArrayField = segments[3]
	}
	if len(segments) > 4 {
		link.SubField = segments[4]
	}
	return link, nil
}
