// Package render turns widget view models into HTML fragments.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/matthewbaird/catalogview/internal/assetstats"
	"github.com/matthewbaird/catalogview/internal/lineage"
	"github.com/matthewbaird/catalogview/internal/resolution"
	"github.com/matthewbaird/catalogview/internal/schematable"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Widget names.
const (
	WidgetStats      = "stats"
	WidgetResolution = "resolution"
	WidgetSidebar    = "sidebar"
	WidgetColumns    = "columns"
)

// Widgets lists every renderable widget.
var Widgets = []string{WidgetStats, WidgetResolution, WidgetSidebar, WidgetColumns}

// ErrUnknownWidget is returned for a widget name with no template.
var ErrUnknownWidget = errors.New("render: unknown widget")

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

func templateName(widget string) string {
	return widget + ".html.tmpl"
}

func execute(w io.Writer, widget string, data any) error {
	t := templates.Lookup(templateName(widget))
	if t == nil {
		return fmt.Errorf("%w: %s", ErrUnknownWidget, widget)
	}
	if err := t.Execute(w, data); err != nil {
		return fmt.Errorf("rendering %s: %w", widget, err)
	}
	return nil
}

// Stats renders the asset stats panel.
func Stats(w io.Writer, p assetstats.Panel) error {
	return execute(w, WidgetStats, p)
}

// Resolution renders the resolution center table.
func Resolution(w io.Writer, t resolution.Table) error {
	return execute(w, WidgetResolution, t)
}

// Sidebar renders the lineage sidebar.
func Sidebar(w io.Writer, s lineage.Sidebar) error {
	return execute(w, WidgetSidebar, s)
}

// Columns renders the schema tab of a table.
func Columns(w io.Writer, v schematable.View) error {
	return execute(w, WidgetColumns, v)
}

// Widget renders a widget by name. data must be the widget's view model.
func Widget(w io.Writer, widget string, data any) error {
	switch widget {
	case WidgetStats:
		p, ok := data.(assetstats.Panel)
		if !ok {
			return fmt.Errorf("rendering %s: got %T", widget, data)
		}
		return Stats(w, p)
	case WidgetResolution:
		t, ok := data.(resolution.Table)
		if !ok {
			return fmt.Errorf("rendering %s: got %T", widget, data)
		}
		return Resolution(w, t)
	case WidgetSidebar:
		s, ok := data.(lineage.Sidebar)
		if !ok {
			return fmt.Errorf("rendering %s: got %T", widget, data)
		}
		return Sidebar(w, s)
	case WidgetColumns:
		v, ok := data.(schematable.View)
		if !ok {
			return fmt.Errorf("rendering %s: got %T", widget, data)
		}
		return Columns(w, v)
	}
	return fmt.Errorf("%w: %s", ErrUnknownWidget, widget)
}

// Page renders a widget inside a standalone HTML document.
func Page(w io.Writer, title, widget string, data any) error {
	var body bytes.Buffer
	if err := Widget(&body, widget, data); err != nil {
		return err
	}
	return execute(w, "page", struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())})
}
