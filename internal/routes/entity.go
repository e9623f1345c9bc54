package routes

import (
	"github.com/matthewbaird/catalogview/internal/fqn"
	"github.com/matthewbaird/catalogview/internal/types"
)

// pathBuilder receives the raw FQN, its URI-component encoding and the
// dispatch key. Detail pages whose router decodes the FQN take the raw
// form; the rest take the encoded one.
type pathBuilder func(raw, encoded, key string) string

func raw(build func(string) string) pathBuilder {
	return func(raw, _, _ string) string { return build(raw) }
}

func encoded(build func(string) string) pathBuilder {
	return func(_, encoded, _ string) string { return build(encoded) }
}

func servicePath(_, encoded, key string) string {
	return ServiceDetailsPath(encoded, key+"s")
}

func customTypePath(_, encoded, _ string) string {
	return SettingPath(SettingsCustomAttributes, encoded+"s")
}

func testCasePath(name, _, _ string) string {
	table, err := fqn.TableFQNFromColumnFQN(name)
	if err != nil {
		table = name
	}
	return TableTabPath(table, TabProfiler) + "?activeTab=" + ProfilerDataQuality
}

// entityPaths maps entity types and search indexes to their detail route.
// Tables are the default.
var entityPaths = map[string]pathBuilder{
	string(types.IndexTopic):               raw(TopicDetailsPath),
	string(types.EntityTopic):              raw(TopicDetailsPath),
	string(types.IndexDashboard):           raw(DashboardDetailsPath),
	string(types.EntityDashboard):          raw(DashboardDetailsPath),
	string(types.IndexPipeline):            raw(PipelineDetailsPath),
	string(types.EntityPipeline):           raw(PipelineDetailsPath),
	string(types.EntityDatabase):           raw(DatabaseDetailsPath),
	string(types.EntityDatabaseSchema):     raw(SchemaDetailsPath),
	string(types.EntityGlossary):           raw(GlossaryPath),
	string(types.EntityGlossaryTerm):       raw(GlossaryPath),
	string(types.IndexGlossary):            raw(GlossaryPath),
	string(types.EntityDatabaseService):    servicePath,
	string(types.EntityDashboardService):   servicePath,
	string(types.EntityMessagingService):   servicePath,
	string(types.EntityPipelineService):    servicePath,
	string(types.EntityWebhook):            encoded(EditWebhookPath),
	string(types.EntityCustomType):         customTypePath,
	string(types.EntityTeam):               encoded(TeamDetailsPath),
	string(types.IndexTeam):                encoded(TeamDetailsPath),
	string(types.EntityMlModel):            encoded(MlModelPath),
	string(types.IndexMlModel):             encoded(MlModelPath),
	string(types.EntityContainer):          raw(ContainerDetailPath),
	string(types.IndexContainer):           raw(ContainerDetailPath),
	string(types.IndexTag):                 encoded(TagsDetailsPath),
	string(types.EntityTag):                encoded(TagsDetailsPath),
	string(types.EntityDashboardDataModel): raw(DataModelDetailsPath),
	string(types.EntityTestCase):           testCasePath,
}

// EntityPath returns the detail page of an entity given its entity type or
// search index. Unknown kinds link to the table page.
func EntityPath(key, name string) string {
	build, ok := entityPaths[key]
	if !ok {
		build = raw(TableDetailsPath)
	}
	return build(name, EncodeURIComponent(name), key)
}
