// Package display holds the lookup tables that turn catalog enumerations
// into display artefacts: entity icons, constraint badges, data type labels,
// tier tags and usage percentiles. Every table is a map literal with an
// explicit default, so an unknown or legacy key never fails.
package display

import (
	"strings"

	"github.com/matthewbaird/catalogview/internal/types"
)

// Icon names an SVG asset.
type Icon string

const (
	IconTable          Icon = "ic-table"
	IconTopic          Icon = "ic-topic"
	IconDashboard      Icon = "ic-dashboard"
	IconMlModel        Icon = "ic-ml-model"
	IconPipeline       Icon = "ic-pipeline"
	IconContainer      Icon = "ic-storage"
	IconDataModel      Icon = "data-model"
	IconClassification Icon = "classification"
	IconGlossary       Icon = "glossary"
	IconTerm           Icon = "book"
	IconTeam           Icon = "teams-grey"
	IconDrag           Icon = "drag"
	IconDragDotted     Icon = "dots-six-bold"
	IconArrowDown      Icon = "ic-arrow-down"
	IconArrowRight     Icon = "ic-arrow-right"
)

// Asset returns the served path of the icon.
func (i Icon) Asset() string {
	if i == "" {
		return ""
	}
	return "/assets/svg/" + string(i) + ".svg"
}

// entityIcons maps entity types and search indexes to their icon. Tables
// are the default and need no entry.
var entityIcons = map[string]Icon{
	string(types.IndexTopic):               IconTopic,
	string(types.EntityTopic):              IconTopic,
	string(types.IndexDashboard):           IconDashboard,
	string(types.EntityDashboard):          IconDashboard,
	string(types.IndexMlModel):             IconMlModel,
	string(types.EntityMlModel):            IconMlModel,
	string(types.IndexPipeline):            IconPipeline,
	string(types.EntityPipeline):           IconPipeline,
	string(types.IndexContainer):           IconContainer,
	string(types.EntityContainer):          IconContainer,
	string(types.EntityDashboardDataModel): IconDataModel,
	string(types.EntityTag):                IconClassification,
	string(types.EntityGlossary):           IconGlossary,
	string(types.EntityGlossaryTerm):       IconTerm,
	string(types.IndexTeam):                IconTeam,
	string(types.EntityTeam):               IconTeam,
}

// EntityIcon returns the icon for an entity type or search index.
func EntityIcon(key string) Icon {
	if icon, ok := entityIcons[key]; ok {
		return icon
	}
	return IconTable
}

// ServiceLogo is what a search result shows next to its name: an icon for
// glossary terms and tags, otherwise the logo of the owning service.
type ServiceLogo struct {
	Icon Icon   `json:"icon,omitempty"`
	Src  string `json:"src,omitempty"`
	Alt  string `json:"alt,omitempty"`
}

const defaultServiceLogo = "/assets/img/service-icon-generic.png"

// serviceLogos maps lower-cased service types to their logo.
var serviceLogos = map[string]string{
	"mysql":      "/assets/img/service-icon-sql.png",
	"postgres":   "/assets/img/service-icon-post.png",
	"redshift":   "/assets/img/service-icon-redshift.png",
	"bigquery":   "/assets/img/service-icon-query.png",
	"snowflake":  "/assets/img/service-icon-snowflakes.png",
	"databricks": "/assets/img/service-icon-databrick.png",
	"trino":      "/assets/img/service-icon-trino.png",
	"hive":       "/assets/img/service-icon-hive.png",
	"oracle":     "/assets/img/service-icon-oracle.png",
	"mssql":      "/assets/img/service-icon-mssql.png",
	"kafka":      "/assets/img/service-icon-kafka.png",
	"redpanda":   "/assets/img/service-icon-redpanda.png",
	"airflow":    "/assets/img/service-icon-airflow.png",
	"dagster":    "/assets/img/service-icon-dagster.png",
	"looker":     "/assets/img/service-icon-looker.png",
	"tableau":    "/assets/img/service-icon-tableau.png",
	"superset":   "/assets/img/service-icon-superset.png",
	"metabase":   "/assets/img/service-icon-metabase.png",
	"mlflow":     "/assets/img/service-icon-mlflow.png",
	"s3":         "/assets/img/service-icon-amazon-s3.svg",
}

// ServiceTypeLogo returns the logo for a service type, falling back to the
// generic logo.
func ServiceTypeLogo(serviceType string) string {
	if src, ok := serviceLogos[strings.ToLower(serviceType)]; ok {
		return src
	}
	return defaultServiceLogo
}

// ServiceIcon picks the logo for a search result.
func ServiceIcon(entityType, serviceType string) ServiceLogo {
	switch types.EntityType(entityType) {
	case types.EntityGlossaryTerm:
		return ServiceLogo{Icon: IconGlossary}
	case types.EntityTag:
		return ServiceLogo{Icon: IconClassification}
	default:
		return ServiceLogo{Src: ServiceTypeLogo(serviceType), Alt: "service-icon"}
	}
}

// ExpandControl describes the expand and drag affordances of a nested
// column row.
type ExpandControl struct {
	Drag        bool `json:"drag"`
	Icon        Icon `json:"icon,omitempty"`
	Placeholder bool `json:"placeholder"` // keeps alignment when nothing expands
}

// ExpandIcon chooses the controls for a row.
func ExpandIcon(expandable, expanded, draggable bool) ExpandControl {
	if !expandable {
		return ExpandControl{Drag: draggable, Placeholder: draggable}
	}
	icon := IconArrowRight
	if expanded {
		icon = IconArrowDown
	}
	return ExpandControl{Drag: draggable, Icon: icon}
}
