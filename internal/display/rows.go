package display

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/matthewbaird/catalogview/internal/types"
)

// ColumnRow is a schema table row built from a column.
type ColumnRow struct {
	ID          string               `json:"id"`
	Key         string               `json:"key"`
	Name        string               `json:"name"`
	DataType    string               `json:"dataType"`
	TypeLabel   string               `json:"typeLabel"`
	Description string               `json:"description"`
	Tags        []types.TagLabel     `json:"tags"`
	Constraint  types.ConstraintType `json:"constraint,omitempty"`
	Children    []ColumnRow          `json:"children,omitempty"`
}

// SortTagsCaseInsensitive returns the tags ordered by FQN ignoring case.
// The input slice is not modified.
func SortTagsCaseInsensitive(tags []types.TagLabel) []types.TagLabel {
	out := make([]types.TagLabel, len(tags))
	copy(out, tags)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].TagFQN) < strings.ToLower(out[j].TagFQN)
	})
	return out
}

// MakeRow converts a column without its children.
func MakeRow(c types.Column) ColumnRow {
	return ColumnRow{
		Key:         c.Name,
		Name:        c.Name,
		DataType:    c.DataType,
		TypeLabel:   DataTypeString(c.DataType),
		Description: c.Description,
		Tags:        SortTagsCaseInsensitive(c.Tags),
		Constraint:  c.Constraint,
	}
}

// MakeData converts columns into rows, recursing into nested columns. Every
// row gets an ID unique across calls, prefixed with the column name.
func MakeData(columns []types.Column) []ColumnRow {
	rows := make([]ColumnRow, 0, len(columns))
	for _, c := range columns {
		row := MakeRow(c)
		row.ID = c.Name + "-" + uuid.NewString()
		if len(c.Children) > 0 {
			row.Children = MakeData(c.Children)
		}
		rows = append(rows, row)
	}
	return rows
}
