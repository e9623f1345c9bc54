package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewbaird/catalogview/internal/types"
)

func TestSample(t *testing.T) {
	s := Sample()
	assert.Equal(t, 40, s.Counts().TableCount)
	assert.Equal(t, 193, s.Counts().ServicesCount)
	assert.True(t, s.Permissions()[types.ResourceTestCase][types.OperationEditAll])

	cases, paging := s.TestCases(Page{})
	assert.Len(t, cases, 5)
	assert.Equal(t, types.Paging{Total: 5}, paging)
	assert.Nil(t, s.PendingNode())

	tbl := s.Table()
	require.NotNil(t, tbl)
	assert.Equal(t, "sample_data.ecommerce_db.shopify.dim_address", tbl.FullyQualifiedName)
	assert.Len(t, tbl.Columns, 5)
	assert.Len(t, tbl.Columns[3].Children, 2)
}

func TestTestCases_Paging(t *testing.T) {
	s := Sample()

	first, paging := s.TestCases(Page{Limit: 2})
	require.Len(t, first, 2)
	assert.Equal(t, types.Paging{After: "2", Total: 5}, paging)

	middle, paging := s.TestCases(Page{Limit: 2, Offset: 2})
	require.Len(t, middle, 2)
	assert.Equal(t, types.Paging{Before: "0", After: "4", Total: 5}, paging)

	last, paging := s.TestCases(Page{Limit: 2, Offset: 4})
	require.Len(t, last, 1)
	assert.Equal(t, types.Paging{Before: "2", Total: 5}, paging)

	past, _ := s.TestCases(Page{Limit: 2, Offset: 50})
	assert.Empty(t, past)
}

func TestTestCases_ReturnsCopy(t *testing.T) {
	s := Sample()
	cases, _ := s.TestCases(Page{})
	cases[0].Name = "changed"

	again, _ := s.TestCases(Page{})
	assert.Equal(t, "orders_row_count_between", again[0].Name)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"entityCounts":{"teamCount":3},"pendingNode":{"id":"n1"}}`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Counts().TeamCount)
	require.NotNil(t, s.PendingNode())
	assert.Equal(t, "n1", s.PendingNode().ID)

	s.SetPendingNode(nil)
	assert.Nil(t, s.PendingNode())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoad_EmptyPathIsSample(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, s.Counts().TeamCount)
}
