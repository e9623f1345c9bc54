package display

import (
	"slices"

	"github.com/matthewbaird/catalogview/internal/types"
)

// ConstraintBadge is the icon shown next to a constrained column.
type ConstraintBadge struct {
	Title  string `json:"title"`
	Icon   Icon   `json:"icon"`
	TestID string `json:"testId"`
	Class  string `json:"class,omitempty"` // "diff-added" / "diff-removed"
}

type constraintStyle struct {
	title       string
	icon        Icon
	deletedIcon Icon
	testID      string
}

var constraintStyles = map[types.ConstraintType]constraintStyle{
	types.ConstraintPrimaryKey: {"Primary Key", "icon-key", "icon-key-line-through", "primary-key"},
	types.ConstraintUnique:     {"Unique", "icon-unique", "icon-unique-line-through", "unique"},
	types.ConstraintNotNull:    {"Not Null", "icon-not-null", "icon-not-null-line-through", "not-null"},
	types.ConstraintForeignKey: {"Foreign Key", "foreign-key", "foreign-key-line-through", "foreign-key"},
}

// ConstraintIcon returns the badge for a constraint. Deleted constraints
// use the struck-through icon. ok is false for constraints that have no
// icon, including the empty constraint.
func ConstraintIcon(c types.ConstraintType, added, deleted bool) (badge ConstraintBadge, ok bool) {
	style, ok := constraintStyles[c]
	if !ok {
		return ConstraintBadge{}, false
	}
	badge = ConstraintBadge{
		Title:  style.title,
		Icon:   style.icon,
		TestID: "constraint-icon-" + style.testID,
	}
	if deleted {
		badge.Icon = style.deletedIcon
		badge.Class = "diff-removed"
	} else if added {
		badge.Class = "diff-added"
	}
	return badge, true
}

// ConstraintDiff flags whether the column and table constraints were added
// or removed in the version being displayed.
type ConstraintDiff struct {
	ColumnAdded   bool
	ColumnDeleted bool
	TableAdded    bool
	TableDeleted  bool
}

// ConstraintSet is every badge shown for one column.
type ConstraintSet struct {
	Column *ConstraintBadge  `json:"column,omitempty"`
	Table  []ConstraintBadge `json:"table,omitempty"`
}

// PrepareConstraintIcons collects the column's own constraint and every
// table constraint that names the column.
func PrepareConstraintIcons(column string, columnConstraint types.ConstraintType, tableConstraints []types.TableConstraint, diff ConstraintDiff) ConstraintSet {
	var set ConstraintSet
	if columnConstraint != "" {
		if badge, ok := ConstraintIcon(columnConstraint, diff.ColumnAdded, diff.ColumnDeleted); ok {
			set.Column = &badge
		}
	}
	for _, tc := range tableConstraints {
		if !slices.Contains(tc.Columns, column) {
			continue
		}
		if badge, ok := ConstraintIcon(tc.ConstraintType, diff.TableAdded, diff.TableDeleted); ok {
			set.Table = append(set.Table, badge)
		}
	}
	return set
}
