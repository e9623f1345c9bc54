// Package schematable builds the view model of a table's schema tab: a
// header with the service logo, tier, usage and tags, followed by one row
// per column with its type label, constraint badges and expand controls.
package schematable

import (
	"github.com/matthewbaird/catalogview/internal/display"
	"github.com/matthewbaird/catalogview/internal/entitylink"
	"github.com/matthewbaird/catalogview/internal/fqn"
	"github.com/matthewbaird/catalogview/internal/routes"
	"github.com/matthewbaird/catalogview/internal/types"
)

const sourceGlossary = "Glossary"

// TagLink is a tag chip. Glossary terms link to their glossary page,
// classification tags to their classification.
type TagLink struct {
	FQN  string       `json:"fqn"`
	Href string       `json:"href"`
	Icon display.Icon `json:"icon"`
}

// Header is the summary shown above the columns.
type Header struct {
	Name        string              `json:"name"`
	FQN         string              `json:"fqn"`
	Href        string              `json:"href"`
	Description string              `json:"description,omitempty"`
	Service     display.ServiceLogo `json:"service"`
	Tier        string              `json:"tier,omitempty"`
	Usage       string              `json:"usage,omitempty"`
	Tags        []TagLink           `json:"tags"`
}

// Row is one visible column. Nested columns follow their parent with a
// greater Depth and are only present while expanded.
type Row struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Depth       int                   `json:"depth"`
	TypeLabel   string                `json:"typeLabel"`
	Description string                `json:"description,omitempty"`
	Link        string                `json:"link"`
	Expand      display.ExpandControl `json:"expand"`
	Constraints display.ConstraintSet `json:"constraints"`
	Tags        []TagLink             `json:"tags"`
}

// View is the schema widget.
type View struct {
	Header  Header `json:"header"`
	Rows    []Row  `json:"rows"`
	Loading bool   `json:"loading"`
	TestID  string `json:"testId"`
}

// Options control which rows are shown.
type Options struct {
	ExpandAll bool // show nested columns
	Draggable bool // columns can be reordered
	Loading   bool
}

// Build returns the schema view of t. A nil table yields an empty view.
func Build(t *types.Table, opts Options) View {
	v := View{Rows: []Row{}, Loading: opts.Loading, TestID: "entity-table"}
	if t == nil {
		v.Header.Tags = []TagLink{}
		return v
	}
	v.Header = header(t)
	b := rowBuilder{table: t, opts: opts}
	b.add(&v.Rows, display.MakeData(t.Columns), nil)
	return v
}

func header(t *types.Table) Header {
	name := t.DisplayName
	if name == "" {
		name = t.Name
	}
	h := Header{
		Name:        name,
		FQN:         t.FullyQualifiedName,
		Href:        routes.EntityPath(string(types.EntityTable), t.FullyQualifiedName),
		Description: t.Description,
		Service:     display.ServiceIcon(string(types.EntityTable), t.ServiceType),
		Tier:        display.TierFromTags(t.Tags),
		Tags:        tagLinks(display.SortTagsCaseInsensitive(display.TagsWithoutTier(t.Tags))),
	}
	if u := t.UsageSummary; u != nil && u.WeeklyStats != nil {
		h.Usage = display.UsagePercentile(u.WeeklyStats.PercentileRank, true)
	}
	return h
}

type rowBuilder struct {
	table *types.Table
	opts  Options
}

// add appends rows depth-first. path holds the names of the enclosing
// columns.
func (b rowBuilder) add(out *[]Row, rows []display.ColumnRow, path []string) {
	for _, r := range rows {
		colPath := append(append([]string(nil), path...), r.Name)

		// Table constraints only name top-level columns.
		var tableConstraints []types.TableConstraint
		if len(path) == 0 {
			tableConstraints = b.table.TableConstraints
		}

		expandable := len(r.Children) > 0
		*out = append(*out, Row{
			ID:          r.ID,
			Name:        r.Name,
			Depth:       len(path),
			TypeLabel:   r.TypeLabel,
			Description: r.Description,
			Link:        entitylink.ColumnLink(b.table.FullyQualifiedName, fqn.Build(colPath...)).String(),
			Expand:      display.ExpandIcon(expandable, b.opts.ExpandAll, b.opts.Draggable),
			Constraints: display.PrepareConstraintIcons(r.Name, r.Constraint, tableConstraints, display.ConstraintDiff{}),
			Tags:        tagLinks(r.Tags),
		})
		if expandable && b.opts.ExpandAll {
			b.add(out, r.Children, colPath)
		}
	}
}

func tagLinks(tags []types.TagLabel) []TagLink {
	out := make([]TagLink, 0, len(tags))
	for _, t := range tags {
		out = append(out, tagLink(t))
	}
	return out
}

func tagLink(t types.TagLabel) TagLink {
	if t.Source == sourceGlossary {
		return TagLink{FQN: t.TagFQN, Href: routes.GlossaryRoot(t.TagFQN), Icon: display.IconTerm}
	}
	classification := t.TagFQN
	if parts, err := fqn.Split(t.TagFQN); err == nil && len(parts) > 0 {
		classification = parts[0]
	}
	return TagLink{
		FQN:  t.TagFQN,
		Href: routes.EntityPath(string(types.EntityTag), classification),
		Icon: display.IconClassification,
	}
}
