package resolution

import (
	"strings"
	"time"

	"github.com/matthewbaird/catalogview/internal/types"
)

// Placeholder fills cells that have no value.
const Placeholder = "--"

const (
	dateTimeLayout = "Jan 2, 2006, 3:04 PM"
	dateLayout     = "Jan 2, 2006"
)

func inZone(millis int64, loc *time.Location) time.Time {
	t := time.UnixMilli(millis)
	if loc != nil {
		t = t.In(loc)
	}
	return t
}

// FormatDateTime formats an epoch-millis timestamp, or returns the
// placeholder for a zero timestamp.
func FormatDateTime(millis int64, loc *time.Location) string {
	if millis == 0 {
		return Placeholder
	}
	return inZone(millis, loc).Format(dateTimeLayout)
}

// FormatDate formats the date part of an epoch-millis timestamp.
func FormatDate(millis int64, loc *time.Location) string {
	if millis == 0 {
		return ""
	}
	return inZone(millis, loc).Format(dateLayout)
}

// EntityName is the display name of a test case, falling back to its name.
func EntityName(tc types.TestCase) string {
	if tc.DisplayName != "" {
		return tc.DisplayName
	}
	return tc.Name
}

// OwnerName is the label of an assignee or reviewer, "" when unset.
func OwnerName(ref *types.EntityReference) string {
	switch {
	case ref == nil:
		return ""
	case ref.DisplayName != "":
		return ref.DisplayName
	default:
		return ref.Name
	}
}

// replacePlus undoes the "+" for space substitution of form-encoded names.
func replacePlus(s string) string {
	return strings.ReplaceAll(s, "+", " ")
}
