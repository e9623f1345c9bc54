package resolution

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewbaird/catalogview/internal/types"
)

const ts = int64(1700000000000) // 2023-11-14 22:13:20 UTC

func tc(id string, status types.TestCaseStatus) types.TestCase {
	c := types.TestCase{ID: id, Name: id, EntityLink: "<#E::table::svc.db.s.orders>"}
	if status != "" {
		c.TestCaseResult = &types.TestCaseResult{TestCaseStatus: status}
	}
	return c
}

func ids(cases []types.TestCase) []string {
	out := make([]string, len(cases))
	for i, c := range cases {
		out[i] = c.ID
	}
	return out
}

func TestSortByStatus(t *testing.T) {
	in := []types.TestCase{
		tc("s1", types.TestCaseSuccess),
		tc("none", ""),
		tc("f1", types.TestCaseFailed),
		tc("a1", types.TestCaseAborted),
		tc("q1", types.TestCaseQueued),
		tc("f2", types.TestCaseFailed),
		tc("s2", types.TestCaseSuccess),
	}
	got := SortByStatus(in)

	assert.Equal(t, []string{"f1", "f2", "a1", "s1", "s2", "none", "q1"}, ids(got))
	assert.Equal(t, "s1", in[0].ID, "input is not reordered")
}

func TestSortByStatus_Empty(t *testing.T) {
	assert.Empty(t, SortByStatus(nil))
}

func TestRank(t *testing.T) {
	assert.Equal(t, 0, Rank(types.TestCaseFailed))
	assert.Equal(t, 1, Rank(types.TestCaseAborted))
	assert.Equal(t, 2, Rank(types.TestCaseSuccess))
	assert.Equal(t, 3, Rank(types.TestCaseQueued))
	assert.Equal(t, 3, Rank(""))
}

func TestCheckPermission(t *testing.T) {
	perms := types.Permissions{
		types.ResourceTestCase: {types.OperationEditAll: true, types.OperationDelete: false},
	}
	assert.True(t, CheckPermission(types.OperationEditAll, types.ResourceTestCase, perms))
	assert.False(t, CheckPermission(types.OperationDelete, types.ResourceTestCase, perms))
	assert.False(t, CheckPermission(types.OperationEditAll, types.ResourceTable, perms))
	assert.False(t, CheckPermission(types.OperationEditAll, types.ResourceTestCase, nil))
}

func TestBuildRow_ColumnCase(t *testing.T) {
	c := types.TestCase{
		ID:          "1",
		Name:        "orders_id_not_null",
		DisplayName: "Orders id not null",
		EntityLink:  "<#E::table::svc.db.s.orders::columns::id>",
		TestSuite:   "svc.db.s.orders.testSuite",
		ExecutionTime: &types.TestCaseResult{
			Timestamp: ts,
		},
		TestCaseResult: &types.TestCaseResult{
			TestCaseStatus: types.TestCaseFailed,
			TestCaseFailureStatus: &types.TestCaseFailureStatus{
				TestCaseFailureStatusType: types.FailureAck,
				UpdatedBy:                 "aaron",
				UpdatedAt:                 ts,
			},
		},
		Severity: "Severity1",
		Assignee: &types.EntityReference{Name: "aaron", DisplayName: "Aaron"},
	}
	want := Row{
		ID:          "1",
		TestID:      "orders_id_not_null",
		Status:      "Failed",
		StatusClass: "failed",
		Name:        "Orders id not null",
		Table: Link{
			Text:   "orders",
			Href:   "/table/svc.db.s.orders/profiler?activeTab=Data%20Quality",
			TestID: "table-link",
		},
		TestSuite:     "svc.db.s.orders.testSuite",
		Column:        "id",
		ExecutionTime: "Nov 14, 2023, 10:13 PM",
		Resolution:    &Badge{Label: "Ack", Class: "resolution ack", Tooltip: "Nov 14, 2023 by aaron"},
		Severity:      "Severity1",
		Assignee:      "Aaron",
	}
	if diff := cmp.Diff(want, BuildRow(c, time.UTC)); diff != "" {
		t.Errorf("BuildRow mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRow_TableCase(t *testing.T) {
	c := types.TestCase{
		ID:             "2",
		Name:           "row_count",
		EntityLink:     "<#E::table::svc.db.s.my orders>",
		TestCaseResult: &types.TestCaseResult{TestCaseStatus: types.TestCaseSuccess},
	}
	row := BuildRow(c, time.UTC)

	assert.Equal(t, "row_count", row.Name)
	assert.Equal(t, "my orders", row.Table.Text)
	assert.Equal(t, "/table/svc.db.s.my%20orders/profiler?activeTab=Data%20Quality", row.Table.Href)
	assert.Equal(t, Placeholder, row.Column)
	assert.Equal(t, Placeholder, row.ExecutionTime)
	assert.Nil(t, row.Resolution)
}

func TestBuildRow_TimeZone(t *testing.T) {
	c := tc("x", types.TestCaseFailed)
	c.ExecutionTime = &types.TestCaseResult{Timestamp: ts}
	row := BuildRow(c, time.FixedZone("IST", 5*3600+1800))
	assert.Equal(t, "Nov 15, 2023, 3:43 AM", row.ExecutionTime)
}

func TestBuildRow_ResolutionWithoutUpdater(t *testing.T) {
	c := tc("x", types.TestCaseFailed)
	c.TestCaseResult.TestCaseFailureStatus = &types.TestCaseFailureStatus{
		TestCaseFailureStatusType: types.FailureNew,
	}
	row := BuildRow(c, time.UTC)
	require.NotNil(t, row.Resolution)
	assert.Equal(t, "resolution new", row.Resolution.Class)
	assert.Empty(t, row.Resolution.Tooltip)
}

func TestBuildTable(t *testing.T) {
	data := TableData{Data: []types.TestCase{
		tc("s", types.TestCaseSuccess),
		tc("f", types.TestCaseFailed),
	}}
	paging := &types.Paging{After: "abc", Total: 30}
	perms := types.Permissions{types.ResourceTestCase: {types.OperationEditAll: true}}

	table := BuildTable(data, perms, paging, true, time.UTC)

	assert.Equal(t, "test-case-table", table.TestID)
	assert.True(t, table.CanEdit)
	assert.True(t, table.Pagination)
	assert.False(t, table.Empty)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "f", table.Rows[0].ID)
	assert.Equal(t, "s", table.Rows[1].ID)
}

func TestBuildTable_Pagination(t *testing.T) {
	paging := &types.Paging{Total: 1}
	assert.False(t, BuildTable(TableData{}, nil, paging, false, nil).Pagination)
	assert.False(t, BuildTable(TableData{}, nil, nil, true, nil).Pagination)
	assert.True(t, BuildTable(TableData{}, nil, paging, true, nil).Pagination)
}

func TestBuildTable_Empty(t *testing.T) {
	table := BuildTable(TableData{Loading: true}, nil, nil, false, nil)
	assert.True(t, table.Empty)
	assert.True(t, table.Loading)
	assert.False(t, table.CanEdit)
	assert.NotNil(t, table.Rows)
}

func TestBuildRow_MalformedLink(t *testing.T) {
	c := tc("x", types.TestCaseFailed)
	c.EntityLink = "<#E::nosuchtype::a.b.c.d::columns::col>"
	row := BuildRow(c, time.UTC)
	assert.Equal(t, "d", row.Table.Text)
	assert.Equal(t, "col", row.Column)
}
