package lineage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewbaird/catalogview/internal/catalog"
	"github.com/matthewbaird/catalogview/internal/display"
	"github.com/matthewbaird/catalogview/internal/types"
)

func TestBuildSidebar(t *testing.T) {
	entries := catalog.MustDefault().Lineage
	sb := BuildSidebar(entries, true, nil)

	assert.True(t, sb.Open)
	require.Len(t, sb.Items, len(entries))

	first := sb.Items[0]
	assert.Equal(t, "Tables", first.Label)
	assert.Equal(t, "table-default", first.Payload)
	assert.Equal(t, display.IconTable, first.Icon)
	assert.Equal(t, "application/reactflow", first.MIME)
	assert.Equal(t, "move", first.Effect)
	assert.True(t, first.Draggable)

	labels := make([]string, len(sb.Items))
	keys := make(map[string]bool)
	for i, it := range sb.Items {
		labels[i] = it.Label
		keys[it.Key] = true
	}
	assert.Equal(t, []string{"Tables", "Dashboards", "Topics", "Mlmodels", "Containers", "Pipelines"}, labels)
	assert.Len(t, keys, len(sb.Items), "keys are unique")
	assert.Equal(t, display.IconMlModel, sb.Items[3].Icon)
}

func TestBuildSidebar_PendingNodeDisablesAll(t *testing.T) {
	entries := catalog.MustDefault().Lineage
	sb := BuildSidebar(entries, false, &types.Node{ID: "n1"})

	assert.False(t, sb.Open)
	for _, it := range sb.Items {
		assert.False(t, it.Draggable, it.Label)
	}
}

func TestBuildSidebar_EmptyPendingNode(t *testing.T) {
	sb := BuildSidebar(catalog.MustDefault().Lineage, true, &types.Node{})
	require.NotEmpty(t, sb.Items)
	for _, it := range sb.Items {
		assert.True(t, it.Draggable, it.Label)
	}
}

func TestBuildSidebar_Empty(t *testing.T) {
	sb := BuildSidebar(nil, true, nil)
	assert.Empty(t, sb.Items)
	assert.NotNil(t, sb.Items)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Topics", Label("topic"))
	assert.Equal(t, "Mlmodels", Label("mlmodel"))
	assert.Equal(t, "Mlmodels", Label("mlModel"))
	assert.Equal(t, "Data models", Label("data model"))
	assert.Equal(t, "S", Label(""))
}
