// Package routes builds the catalog UI's navigation paths. The literal
// paths are a contract with the router and must not change.
package routes

import "strings"

// List pages.
const (
	ExploreTables     = "/explore/tables"
	ExploreTopics     = "/explore/topics"
	ExploreDashboards = "/explore/dashboards"
	ExplorePipelines  = "/explore/pipelines"
	ExploreMlModels   = "/explore/mlmodels"
	ExploreContainers = "/explore/containers"
	Glossary          = "/glossary"
	TestSuites        = "/test-suites"
	DatabaseServices  = "/settings/services/databases"
	Users             = "/settings/members/users"
	OrganizationTeam  = "/settings/members/teams/Organization"
)

// Entity detail tabs.
const (
	TabSchema   = "schema"
	TabProfiler = "profiler"
	TabLineage  = "lineage"
)

// ProfilerDataQuality is the activeTab of the profiler tab that lists test
// cases.
const ProfilerDataQuality = "Data Quality"

// SettingsCustomAttributes is the settings category holding custom
// attribute types.
const SettingsCustomAttributes = "customAttributes"

// detailPrefix is the route prefix of every entity detail page.
var detailPrefix = map[string]string{
	"table":              "/table/",
	"topic":              "/topic/",
	"dashboard":          "/dashboard/",
	"pipeline":           "/pipeline/",
	"database":           "/database/",
	"databaseSchema":     "/databaseSchema/",
	"glossary":           "/glossary/",
	"webhook":            "/webhook/",
	"team":               "/settings/members/teams/",
	"mlmodel":            "/mlmodel/",
	"container":          "/container/",
	"tag":                "/tags/",
	"dashboardDataModel": "/dashboardDataModel/",
}

func detail(kind, name string) string {
	return detailPrefix[kind] + name
}

func TableDetailsPath(name string) string     { return detail("table", name) }
func TopicDetailsPath(name string) string     { return detail("topic", name) }
func DashboardDetailsPath(name string) string { return detail("dashboard", name) }
func PipelineDetailsPath(name string) string  { return detail("pipeline", name) }
func DatabaseDetailsPath(name string) string  { return detail("database", name) }
func SchemaDetailsPath(name string) string    { return detail("databaseSchema", name) }
func GlossaryPath(name string) string         { return detail("glossary", name) }
func EditWebhookPath(name string) string      { return detail("webhook", name) }
func TeamDetailsPath(name string) string      { return detail("team", name) }
func MlModelPath(name string) string          { return detail("mlmodel", name) }
func ContainerDetailPath(name string) string  { return detail("container", name) }
func TagsDetailsPath(name string) string      { return detail("tag", name) }
func DataModelDetailsPath(name string) string { return detail("dashboardDataModel", name) }

// TableTabPath is the path of one tab of a table's detail page.
func TableTabPath(name, tab string) string {
	return TableDetailsPath(name) + "/" + tab
}

// ServiceDetailsPath is the path of a service under its category, e.g.
// /service/databaseServices/mysql_prod.
func ServiceDetailsPath(name, category string) string {
	return "/service/" + category + "/" + name
}

// SettingPath is the path of a settings tab.
func SettingPath(category, tab string) string {
	return "/settings/" + category + "/" + tab
}

// GlossaryRoot returns the glossary list path, or a glossary's page when
// name is set.
func GlossaryRoot(name string) string {
	if name == "" {
		return Glossary
	}
	return GlossaryPath(name)
}

// WithQuery appends an already encoded query string.
func WithQuery(path, query string) string {
	if query == "" {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&" + query
	}
	return path + "?" + query
}
