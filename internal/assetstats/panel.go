// Package assetstats projects the catalog's entity counts onto the "my
// assets" summary panel.
package assetstats

import (
	"github.com/matthewbaird/catalogview/internal/catalog"
	"github.com/matthewbaird/catalogview/internal/display"
	"github.com/matthewbaird/catalogview/internal/types"
)

// ContainerTestID marks the panel root.
const ContainerTestID = "data-summary-container"

// CountTestID marks the count inside each counter.
const CountTestID = "filter-count"

// Counter is one labelled count linking to its list page.
type Counter struct {
	ID          string       `json:"id"`
	TestID      string       `json:"testId"`
	ContainerID string       `json:"containerId"`
	Label       string       `json:"label"`
	Count       int          `json:"count"`
	Href        string       `json:"href"`
	Icon        display.Icon `json:"icon"`
}

// Panel is the assembled stats panel.
type Panel struct {
	TestID   string    `json:"testId"`
	Loading  bool      `json:"loading"`
	Counters []Counter `json:"counters"`
}

// countFields reads an EntitiesCount field by its JSON name.
var countFields = map[string]func(types.EntitiesCount) int{
	"tableCount":            func(c types.EntitiesCount) int { return c.TableCount },
	"topicCount":            func(c types.EntitiesCount) int { return c.TopicCount },
	"dashboardCount":        func(c types.EntitiesCount) int { return c.DashboardCount },
	"pipelineCount":         func(c types.EntitiesCount) int { return c.PipelineCount },
	"mlmodelCount":          func(c types.EntitiesCount) int { return c.MlModelCount },
	"storageContainerCount": func(c types.EntitiesCount) int { return c.StorageContainerCount },
	"glossaryTermCount":     func(c types.EntitiesCount) int { return c.GlossaryTermCount },
	"testSuiteCount":        func(c types.EntitiesCount) int { return c.TestSuiteCount },
	"servicesCount":         func(c types.EntitiesCount) int { return c.ServicesCount },
	"userCount":             func(c types.EntitiesCount) int { return c.UserCount },
	"teamCount":             func(c types.EntitiesCount) int { return c.TeamCount },
}

// Count returns the named count field, or 0 for an unknown name.
func Count(counts types.EntitiesCount, field string) int {
	if get, ok := countFields[field]; ok {
		return get(counts)
	}
	return 0
}

// Build returns one counter per definition, in definition order.
func Build(defs []catalog.StatCounter, counts types.EntitiesCount, loading bool) Panel {
	out := make([]Counter, 0, len(defs))
	for _, d := range defs {
		out = append(out, Counter{
			ID:          d.ID,
			TestID:      d.ID,
			ContainerID: d.ID + "-summary",
			Label:       d.Label,
			Count:       Count(counts, d.Count),
			Href:        d.Href,
			Icon:        display.Icon(d.Icon),
		})
	}
	return Panel{TestID: ContainerTestID, Loading: loading, Counters: out}
}
