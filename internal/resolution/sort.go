package resolution

import (
	"slices"

	"github.com/matthewbaird/catalogview/internal/types"
)

// statusRank orders runs so that failures surface first. Unknown statuses
// and cases that never ran sort last.
var statusRank = map[types.TestCaseStatus]int{
	types.TestCaseFailed:  0,
	types.TestCaseAborted: 1,
	types.TestCaseSuccess: 2,
}

const otherRank = 3

// Rank returns the sort priority of a status.
func Rank(s types.TestCaseStatus) int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return otherRank
}

// SortByStatus returns a copy of cases ordered Failed, Aborted, Success,
// then everything else. Cases with equal rank keep their input order.
func SortByStatus(cases []types.TestCase) []types.TestCase {
	out := slices.Clone(cases)
	slices.SortStableFunc(out, func(a, b types.TestCase) int {
		return Rank(a.Status()) - Rank(b.Status())
	})
	return out
}
