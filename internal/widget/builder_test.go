package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewbaird/catalogview/internal/assetstats"
	"github.com/matthewbaird/catalogview/internal/catalog"
	"github.com/matthewbaird/catalogview/internal/fixtures"
	"github.com/matthewbaird/catalogview/internal/lineage"
	"github.com/matthewbaird/catalogview/internal/render"
	"github.com/matthewbaird/catalogview/internal/resolution"
	"github.com/matthewbaird/catalogview/internal/schematable"
	"github.com/matthewbaird/catalogview/internal/types"
)

func newBuilder() *Builder {
	return &Builder{Catalog: catalog.MustDefault(), Store: fixtures.Sample(), Location: time.UTC}
}

func TestBuild_Stats(t *testing.T) {
	m, err := newBuilder().Build(render.WidgetStats, Options{})
	require.NoError(t, err)
	p, ok := m.(assetstats.Panel)
	require.True(t, ok)
	assert.Len(t, p.Counters, 11)
}

func TestBuild_Resolution(t *testing.T) {
	m, err := newBuilder().Build(render.WidgetResolution, Options{Page: fixtures.Page{Limit: 4}, ShowPagination: true})
	require.NoError(t, err)
	table, ok := m.(resolution.Table)
	require.True(t, ok)

	require.Len(t, table.Rows, 4)
	assert.Equal(t, "Failed", table.Rows[0].Status)
	assert.Equal(t, "Failed", table.Rows[1].Status)
	assert.Equal(t, "Aborted", table.Rows[2].Status)
	assert.Equal(t, "Success", table.Rows[3].Status)
	assert.True(t, table.CanEdit)
	assert.True(t, table.Pagination)
	assert.Equal(t, "4", table.Paging.After)
}

func TestBuild_Sidebar(t *testing.T) {
	b := newBuilder()
	b.Store.SetPendingNode(&types.Node{ID: "x"})

	m, err := b.Build(render.WidgetSidebar, Options{ShowSidebar: true})
	require.NoError(t, err)
	sb, ok := m.(lineage.Sidebar)
	require.True(t, ok)
	assert.True(t, sb.Open)
	assert.False(t, sb.Items[0].Draggable)
}

func TestBuild_Columns(t *testing.T) {
	m, err := newBuilder().Build(render.WidgetColumns, Options{})
	require.NoError(t, err)
	v, ok := m.(schematable.View)
	require.True(t, ok)
	assert.Equal(t, "sample_data.ecommerce_db.shopify.dim_address", v.Header.FQN)
	assert.Len(t, v.Rows, 5)

	m, err = newBuilder().Build(render.WidgetColumns, Options{ExpandColumns: true, DragColumns: true})
	require.NoError(t, err)
	v = m.(schematable.View)
	assert.Len(t, v.Rows, 7)
	assert.True(t, v.Rows[0].Expand.Drag)
}

func TestBuild_ColumnsWithoutTable(t *testing.T) {
	b := &Builder{Catalog: catalog.MustDefault(), Store: fixtures.NewStore(fixtures.Data{}), Location: time.UTC}
	m, err := b.Build(render.WidgetColumns, Options{})
	require.NoError(t, err)
	assert.Empty(t, m.(schematable.View).Rows)
}

func TestBuild_Unknown(t *testing.T) {
	_, err := newBuilder().Build("galaxy", Options{})
	assert.ErrorIs(t, err, render.ErrUnknownWidget)
}
