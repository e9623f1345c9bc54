// Package types provides Go structs for the catalog records the widgets
// consume. These are the already-fetched outputs of the catalog API
// (entity counts, test cases, table columns, lineage nodes) and carry the
// API's camelCase JSON names so fixtures can be decoded directly.
package types

// EntityType is the catalog's entity kind as it appears in entity
// references and entity links.
type EntityType string

const (
	EntityTable              EntityType = "table"
	EntityTopic              EntityType = "topic"
	EntityDashboard          EntityType = "dashboard"
	EntityPipeline           EntityType = "pipeline"
	EntityMlModel            EntityType = "mlmodel"
	EntityContainer          EntityType = "container"
	EntityDatabase           EntityType = "database"
	EntityDatabaseSchema     EntityType = "databaseSchema"
	EntityGlossary           EntityType = "glossary"
	EntityGlossaryTerm       EntityType = "glossaryTerm"
	EntityTag                EntityType = "tag"
	EntityTeam               EntityType = "team"
	EntityUser               EntityType = "user"
	EntityDatabaseService    EntityType = "databaseService"
	EntityDashboardService   EntityType = "dashboardService"
	EntityMessagingService   EntityType = "messagingService"
	EntityPipelineService    EntityType = "pipelineService"
	EntityWebhook            EntityType = "webhook"
	EntityCustomType         EntityType = "type"
	EntityDashboardDataModel EntityType = "dashboardDataModel"
	EntityTestCase           EntityType = "testCase"
	EntityTestSuite          EntityType = "testSuite"
)

// SearchIndex is the name of a search index. Search results carry it in place
// of an entity type, so the dispatch tables accept both.
type SearchIndex string

const (
	IndexTable     SearchIndex = "table_search_index"
	IndexTopic     SearchIndex = "topic_search_index"
	IndexDashboard SearchIndex = "dashboard_search_index"
	IndexPipeline  SearchIndex = "pipeline_search_index"
	IndexMlModel   SearchIndex = "mlmodel_search_index"
	IndexContainer SearchIndex = "container_search_index"
	IndexGlossary  SearchIndex = "glossary_search_index"
	IndexTag       SearchIndex = "tag_search_index"
	IndexTeam      SearchIndex = "team_search_index"
	IndexUser      SearchIndex = "user_search_index"
)

// ConstraintType is a column or table constraint.
type ConstraintType string

const (
	ConstraintPrimaryKey ConstraintType = "PRIMARY_KEY"
	ConstraintUnique     ConstraintType = "UNIQUE"
	ConstraintNotNull    ConstraintType = "NOT_NULL"
	ConstraintForeignKey ConstraintType = "FOREIGN_KEY"
	ConstraintNull       ConstraintType = "NULL"
)

// EntitiesCount is the entity count aggregation returned by the catalog.
type EntitiesCount struct {
	TableCount            int `json:"tableCount"`
	TopicCount            int `json:"topicCount"`
	DashboardCount        int `json:"dashboardCount"`
	PipelineCount         int `json:"pipelineCount"`
	MlModelCount          int `json:"mlmodelCount"`
	StorageContainerCount int `json:"storageContainerCount"`
	GlossaryTermCount     int `json:"glossaryTermCount"`
	TestSuiteCount        int `json:"testSuiteCount"`
	ServicesCount         int `json:"servicesCount"`
	UserCount             int `json:"userCount"`
	TeamCount             int `json:"teamCount"`
}

// EntityReference points at another entity (owner, assignee, reviewer).
type EntityReference struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	Name               string `json:"name,omitempty"`
	DisplayName        string `json:"displayName,omitempty"`
	FullyQualifiedName string `json:"fullyQualifiedName,omitempty"`
	Deleted            bool   `json:"deleted,omitempty"`
}

// TagLabel is a tag or glossary term applied to an entity or column.
type TagLabel struct {
	TagFQN      string `json:"tagFQN"`
	Source      string `json:"source,omitempty"` // "Classification" or "Glossary"
	LabelType   string `json:"labelType,omitempty"`
	State       string `json:"state,omitempty"`
	Description string `json:"description,omitempty"`
}

// Column is a table column, possibly with nested children for struct types.
type Column struct {
	Name               string         `json:"name"`
	DisplayName        string         `json:"displayName,omitempty"`
	DataType           string         `json:"dataType"`
	DataTypeDisplay    string         `json:"dataTypeDisplay,omitempty"`
	Description        string         `json:"description,omitempty"`
	FullyQualifiedName string         `json:"fullyQualifiedName,omitempty"`
	Constraint         ConstraintType `json:"constraint,omitempty"`
	Tags               []TagLabel     `json:"tags,omitempty"`
	Children           []Column       `json:"children,omitempty"`
}

// TableConstraint is a multi-column constraint declared on a table.
type TableConstraint struct {
	ConstraintType ConstraintType `json:"constraintType"`
	Columns        []string       `json:"columns,omitempty"`
}

// UsageStats is one window of a usage summary.
type UsageStats struct {
	Count          int     `json:"count"`
	PercentileRank float64 `json:"percentileRank"`
}

// UsageSummary is the usage block of a table.
type UsageSummary struct {
	DailyStats  *UsageStats `json:"dailyStats,omitempty"`
	WeeklyStats *UsageStats `json:"weeklyStats,omitempty"`
	Date        string      `json:"date,omitempty"`
}

// Table is a table with its schema.
type Table struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	DisplayName        string            `json:"displayName,omitempty"`
	FullyQualifiedName string            `json:"fullyQualifiedName"`
	Description        string            `json:"description,omitempty"`
	ServiceType        string            `json:"serviceType,omitempty"`
	Service            *EntityReference  `json:"service,omitempty"`
	Columns            []Column          `json:"columns"`
	TableConstraints   []TableConstraint `json:"tableConstraints,omitempty"`
	Tags               []TagLabel        `json:"tags,omitempty"`
	UsageSummary       *UsageSummary     `json:"usageSummary,omitempty"`
}

// TestCaseStatus is the outcome of a test case run.
type TestCaseStatus string

const (
	TestCaseSuccess TestCaseStatus = "Success"
	TestCaseFailed  TestCaseStatus = "Failed"
	TestCaseAborted TestCaseStatus = "Aborted"
	TestCaseQueued  TestCaseStatus = "Queued"
)

// TestCaseFailureStatusType is the resolution state of a failed test case.
type TestCaseFailureStatusType string

const (
	FailureNew      TestCaseFailureStatusType = "New"
	FailureAck      TestCaseFailureStatusType = "Ack"
	FailureAssigned TestCaseFailureStatusType = "Assigned"
	FailureResolved TestCaseFailureStatusType = "Resolved"
)

// TestCaseFailureStatus records who moved a failure to its current state.
type TestCaseFailureStatus struct {
	TestCaseFailureStatusType TestCaseFailureStatusType `json:"testCaseFailureStatusType"`
	TestCaseFailureReason     string                    `json:"testCaseFailureReason,omitempty"`
	TestCaseFailureComment    string                    `json:"testCaseFailureComment,omitempty"`
	UpdatedBy                 string                    `json:"updatedBy,omitempty"`
	UpdatedAt                 int64                     `json:"updatedAt,omitempty"` // epoch millis
}

// TestCaseResult is the latest result attached to a test case.
type TestCaseResult struct {
	Timestamp             int64                  `json:"timestamp,omitempty"` // epoch millis
	TestCaseStatus        TestCaseStatus         `json:"testCaseStatus,omitempty"`
	Result                string                 `json:"result,omitempty"`
	TestCaseFailureStatus *TestCaseFailureStatus `json:"testCaseFailureStatus,omitempty"`
}

// TestCase is a data-quality test bound to a table or column via an entity
// link.
type TestCase struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	DisplayName        string           `json:"displayName,omitempty"`
	FullyQualifiedName string           `json:"fullyQualifiedName,omitempty"`
	EntityLink         string           `json:"entityLink"`
	TestSuite          string           `json:"testSuite,omitempty"`
	ExecutionTime      *TestCaseResult  `json:"executionTime,omitempty"`
	TestCaseResult     *TestCaseResult  `json:"testCaseResult,omitempty"`
	Severity           string           `json:"severity,omitempty"`
	Assignee           *EntityReference `json:"assignee,omitempty"`
	Reviewer           *EntityReference `json:"reviewer,omitempty"`
}

// Status returns the latest run status, or "" when the case never ran.
func (tc TestCase) Status() TestCaseStatus {
	if tc.TestCaseResult == nil {
		return ""
	}
	return tc.TestCaseResult.TestCaseStatus
}

// Paging is the cursor block returned with list responses.
type Paging struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
	Total  int    `json:"total"`
}

// Node is a lineage canvas node. Only its identity matters to the sidebar.
type Node struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

// Operation is a permission operation.
type Operation string

const (
	OperationViewAll Operation = "ViewAll"
	OperationEditAll Operation = "EditAll"
	OperationCreate  Operation = "Create"
	OperationDelete  Operation = "Delete"
)

// ResourceEntity names a permission resource.
type ResourceEntity string

const (
	ResourceTestCase  ResourceEntity = "testCase"
	ResourceTable     ResourceEntity = "table"
	ResourceTestSuite ResourceEntity = "testSuite"
)

// Permissions is the evaluated permission map for the current user:
// resource -> operation -> allowed.
type Permissions map[ResourceEntity]map[Operation]bool
