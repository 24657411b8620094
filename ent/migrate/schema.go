// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConnectorRecordsColumns holds the columns for the "connector_records" table.
	ConnectorRecordsColumns = []*schema.Column{
		{Name: "connector_id", Type: field.TypeString, Unique: true},
		{Name: "organisation_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "dialect", Type: field.TypeString},
		{Name: "dsn_secret", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ConnectorRecordsTable holds the schema information for the "connector_records" table.
	ConnectorRecordsTable = &schema.Table{
		Name:       "connector_records",
		Columns:    ConnectorRecordsColumns,
		PrimaryKey: []*schema.Column{ConnectorRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "connectorrecord_organisation_id",
				Unique:  false,
				Columns: []*schema.Column{ConnectorRecordsColumns[1]},
			},
			{
				Name:    "connectorrecord_organisation_id_name",
				Unique:  true,
				Columns: []*schema.Column{ConnectorRecordsColumns[1], ConnectorRecordsColumns[2]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "organisation_id", Type: field.TypeString},
		{Name: "job_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "headers", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "succeeded", "failed", "cancelled"}, Default: "queued"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "lock_owner", Type: field.TypeString, Nullable: true},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "status_message", Type: field.TypeString, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "scheduled_for", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_organisation_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1]},
			},
			{
				Name:    "job_job_type",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2]},
			},
			{
				Name:    "job_status_locked_until_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5], JobsColumns[10], JobsColumns[6], JobsColumns[16]},
			},
		},
	}
	// JobEventsColumns holds the columns for the "job_events" table.
	JobEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "event_index", Type: field.TypeInt},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// JobEventsTable holds the schema information for the "job_events" table.
	JobEventsTable = &schema.Table{
		Name:       "job_events",
		Columns:    JobEventsColumns,
		PrimaryKey: []*schema.Column{JobEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_events_jobs_events",
				Columns:    []*schema.Column{JobEventsColumns[5]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobevent_job_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobEventsColumns[5], JobEventsColumns[4]},
			},
			{
				Name:    "jobevent_job_id_event_type_event_index",
				Unique:  true,
				Columns: []*schema.Column{JobEventsColumns[5], JobEventsColumns[1], JobEventsColumns[2]},
			},
		},
	}
	// SemanticModelRecordsColumns holds the columns for the "semantic_model_records" table.
	SemanticModelRecordsColumns = []*schema.Column{
		{Name: "model_id", Type: field.TypeString, Unique: true},
		{Name: "organisation_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "connector_id", Type: field.TypeString},
		{Name: "definition", Type: field.TypeString, Size: 2147483647},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SemanticModelRecordsTable holds the schema information for the "semantic_model_records" table.
	SemanticModelRecordsTable = &schema.Table{
		Name:       "semantic_model_records",
		Columns:    SemanticModelRecordsColumns,
		PrimaryKey: []*schema.Column{SemanticModelRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "semanticmodelrecord_organisation_id",
				Unique:  false,
				Columns: []*schema.Column{SemanticModelRecordsColumns[1]},
			},
			{
				Name:    "semanticmodelrecord_organisation_id_name",
				Unique:  true,
				Columns: []*schema.Column{SemanticModelRecordsColumns[1], SemanticModelRecordsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConnectorRecordsTable,
		JobsTable,
		JobEventsTable,
		SemanticModelRecordsTable,
	}
)

func init() {
	JobEventsTable.ForeignKeys[0].RefTable = JobsTable
}
