// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/quillhq/quill/ent/connectorrecord"
	"github.com/quillhq/quill/ent/job"
	"github.com/quillhq/quill/ent/jobevent"
	"github.com/quillhq/quill/ent/schema"
	"github.com/quillhq/quill/ent/semanticmodelrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	connectorrecordFields := schema.ConnectorRecord{}.Fields()
	_ = connectorrecordFields
	// connectorrecordDescEnabled is the schema descriptor for enabled field.
	connectorrecordDescEnabled := connectorrecordFields[6].Descriptor()
	// connectorrecord.DefaultEnabled holds the default value on creation for the enabled field.
	connectorrecord.DefaultEnabled = connectorrecordDescEnabled.Default.(bool)
	// connectorrecordDescCreatedAt is the schema descriptor for created_at field.
	connectorrecordDescCreatedAt := connectorrecordFields[7].Descriptor()
	// connectorrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	connectorrecord.DefaultCreatedAt = connectorrecordDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescPriority is the schema descriptor for priority field.
	jobDescPriority := jobFields[6].Descriptor()
	// job.DefaultPriority holds the default value on creation for the priority field.
	job.DefaultPriority = jobDescPriority.Default.(int)
	// jobDescAttempt is the schema descriptor for attempt field.
	jobDescAttempt := jobFields[7].Descriptor()
	// job.DefaultAttempt holds the default value on creation for the attempt field.
	job.DefaultAttempt = jobDescAttempt.Default.(int)
	// jobDescMaxAttempts is the schema descriptor for max_attempts field.
	jobDescMaxAttempts := jobFields[8].Descriptor()
	// job.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	job.DefaultMaxAttempts = jobDescMaxAttempts.Default.(int)
	// jobDescProgress is the schema descriptor for progress field.
	jobDescProgress := jobFields[11].Descriptor()
	// job.DefaultProgress holds the default value on creation for the progress field.
	job.DefaultProgress = jobDescProgress.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[16].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	jobeventFields := schema.JobEvent{}.Fields()
	_ = jobeventFields
	// jobeventDescCreatedAt is the schema descriptor for created_at field.
	jobeventDescCreatedAt := jobeventFields[4].Descriptor()
	// jobevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobevent.DefaultCreatedAt = jobeventDescCreatedAt.Default.(func() time.Time)
	semanticmodelrecordFields := schema.SemanticModelRecord{}.Fields()
	_ = semanticmodelrecordFields
	// semanticmodelrecordDescCreatedAt is the schema descriptor for created_at field.
	semanticmodelrecordDescCreatedAt := semanticmodelrecordFields[6].Descriptor()
	// semanticmodelrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	semanticmodelrecord.DefaultCreatedAt = semanticmodelrecordDescCreatedAt.Default.(func() time.Time)
	// semanticmodelrecordDescUpdatedAt is the schema descriptor for updated_at field.
	semanticmodelrecordDescUpdatedAt := semanticmodelrecordFields[7].Descriptor()
	// semanticmodelrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	semanticmodelrecord.DefaultUpdatedAt = semanticmodelrecordDescUpdatedAt.Default.(func() time.Time)
	// semanticmodelrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	semanticmodelrecord.UpdateDefaultUpdatedAt = semanticmodelrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
