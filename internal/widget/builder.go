// Package widget assembles widget view models from the catalog and the
// fixture store.
package widget

import (
	"fmt"
	"time"

	"github.com/matthewbaird/catalogview/internal/assetstats"
	"github.com/matthewbaird/catalogview/internal/catalog"
	"github.com/matthewbaird/catalogview/internal/fixtures"
	"github.com/matthewbaird/catalogview/internal/lineage"
	"github.com/matthewbaird/catalogview/internal/render"
	"github.com/matthewbaird/catalogview/internal/resolution"
	"github.com/matthewbaird/catalogview/internal/schematable"
)

// Options are per-request knobs.
type Options struct {
	Page           fixtures.Page
	ShowPagination bool
	ShowSidebar    bool
	ExpandColumns  bool
	DragColumns    bool
	Loading        bool
}

// Builder builds view models.
type Builder struct {
	Catalog  *catalog.Catalog
	Store    *fixtures.Store
	Location *time.Location
}

// Build returns the view model of the named widget.
func (b *Builder) Build(name string, opts Options) (any, error) {
	switch name {
	case render.WidgetStats:
		return assetstats.Build(b.Catalog.Stats, b.Store.Counts(), opts.Loading), nil
	case render.WidgetResolution:
		cases, paging := b.Store.TestCases(opts.Page)
		data := resolution.TableData{Data: cases, Loading: opts.Loading}
		return resolution.BuildTable(data, b.Store.Permissions(), &paging, opts.ShowPagination, b.Location), nil
	case render.WidgetSidebar:
		return lineage.BuildSidebar(b.Catalog.Lineage, opts.ShowSidebar, b.Store.PendingNode()), nil
	case render.WidgetColumns:
		return schematable.Build(b.Store.Table(), schematable.Options{
			ExpandAll: opts.ExpandColumns,
			Draggable: opts.DragColumns,
			Loading:   opts.Loading,
		}), nil
	}
	return nil, fmt.Errorf("%w: %s", render.ErrUnknownWidget, name)
}
