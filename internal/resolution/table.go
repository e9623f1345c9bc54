// Package resolution builds the resolution center table: the data-quality
// test cases of the catalog, failures first, with their table, column, last
// run and resolution state.
package resolution

import (
	"strings"
	"time"

	"github.com/matthewbaird/catalogview/internal/entitylink"
	"github.com/matthewbaird/catalogview/internal/fqn"
	"github.com/matthewbaird/catalogview/internal/routes"
	"github.com/matthewbaird/catalogview/internal/types"
)

// TableTestID marks the test case table.
const TableTestID = "test-case-table"

// TableLinkTestID marks the table link of each row.
const TableLinkTestID = "table-link"

// TableData is one page of test cases.
type TableData struct {
	Data    []types.TestCase `json:"data"`
	Loading bool             `json:"isLoading"`
}

// Link is a rendered anchor.
type Link struct {
	Text   string `json:"text"`
	Href   string `json:"href"`
	TestID string `json:"testId"`
}

// Badge is the resolution state of a failed case.
type Badge struct {
	Label   string `json:"label"`
	Class   string `json:"class"`
	Tooltip string `json:"tooltip,omitempty"`
}

// Row is one test case.
type Row struct {
	ID            string `json:"id"`
	TestID        string `json:"testId"`
	Status        string `json:"status"`
	StatusClass   string `json:"statusClass"`
	Name          string `json:"name"`
	Table         Link   `json:"table"`
	TestSuite     string `json:"testSuite"`
	Column        string `json:"column"`
	ExecutionTime string `json:"executionTime"`
	Resolution    *Badge `json:"resolution,omitempty"`
	Severity      string `json:"severity"`
	Assignee      string `json:"assignee"`
	Reviewer      string `json:"reviewer"`
}

// Table is the assembled resolution center table.
type Table struct {
	TestID     string        `json:"testId"`
	Loading    bool          `json:"loading"`
	Empty      bool          `json:"empty"`
	CanEdit    bool          `json:"canEdit"`
	Rows       []Row         `json:"rows"`
	Paging     *types.Paging `json:"paging,omitempty"`
	Pagination bool          `json:"pagination"`
}

// BuildTable sorts the page by status and renders every row. Timestamps are
// formatted in loc, or in local time when loc is nil.
func BuildTable(data TableData, perms types.Permissions, paging *types.Paging, showPagination bool, loc *time.Location) Table {
	sorted := SortByStatus(data.Data)
	rows := make([]Row, 0, len(sorted))
	for _, tc := range sorted {
		rows = append(rows, BuildRow(tc, loc))
	}
	return Table{
		TestID:     TableTestID,
		Loading:    data.Loading,
		Empty:      len(rows) == 0,
		CanEdit:    CheckPermission(types.OperationEditAll, types.ResourceTestCase, perms),
		Rows:       rows,
		Paging:     paging,
		Pagination: paging != nil && showPagination,
	}
}

// BuildRow renders one test case.
func BuildRow(tc types.TestCase, loc *time.Location) Row {
	status := string(tc.Status())
	row := Row{
		ID:            tc.ID,
		TestID:        tc.Name,
		Status:        status,
		StatusClass:   strings.ToLower(status),
		Name:          EntityName(tc),
		Table:         tableLink(tc.EntityLink),
		TestSuite:     tc.TestSuite,
		Column:        columnName(tc.EntityLink),
		ExecutionTime: Placeholder,
		Resolution:    resolutionBadge(tc.TestCaseResult, loc),
		Severity:      tc.Severity,
		Assignee:      OwnerName(tc.Assignee),
		Reviewer:      OwnerName(tc.Reviewer),
	}
	if tc.ExecutionTime != nil {
		row.ExecutionTime = FormatDateTime(tc.ExecutionTime.Timestamp, loc)
	}
	return row
}

// tableFQN reads the table FQN of a link, tolerating malformed tokens the
// way older catalog versions stored them.
func tableFQN(token string) string {
	if name, err := entitylink.EntityFQN(token, false); err == nil {
		return name
	}
	return entitylink.LenientEntityFQN(token, false)
}

func tableLink(token string) Link {
	name := tableFQN(token)
	href := routes.TableTabPath(routes.EncodeURIComponent(name), routes.TabProfiler)
	return Link{
		Text:   fqn.NameFromFQN(name),
		Href:   routes.WithQuery(href, "activeTab="+routes.EncodeURIComponent(routes.ProfilerDataQuality)),
		TestID: TableLinkTestID,
	}
}

func columnName(token string) string {
	if !entitylink.IsColumnToken(token) {
		return Placeholder
	}
	var column string
	if link, err := entitylink.Parse(token); err == nil && link.IsColumn() {
		column = link.ColumnFQN()
	} else {
		column = entitylink.LenientEntityFQN(token, true)
	}
	return fqn.NameFromFQN(replacePlus(column))
}

func resolutionBadge(result *types.TestCaseResult, loc *time.Location) *Badge {
	if result == nil || result.TestCaseFailureStatus == nil {
		return nil
	}
	fs := result.TestCaseFailureStatus
	label := string(fs.TestCaseFailureStatusType)
	if label == "" {
		return nil
	}
	b := &Badge{
		Label: label,
		Class: "resolution " + strings.ToLower(label),
	}
	if fs.UpdatedAt != 0 {
		b.Tooltip = FormatDate(fs.UpdatedAt, loc)
		if fs.UpdatedBy != "" {
			b.Tooltip += " by " + fs.UpdatedBy
		}
	}
	return b
}
