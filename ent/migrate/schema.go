// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "prior_points", Type: field.TypeInt},
		{Name: "new_total", Type: field.TypeInt},
		{Name: "threshold", Type: field.TypeInt},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[4]},
			},
			{
				Name:    "masteryevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
		},
	}
	// ResultEventsColumns holds the columns for the "result_events" table.
	ResultEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "attempts", Type: field.TypeInt, Default: 1},
		{Name: "correct", Type: field.TypeBool},
		{Name: "duration_ms", Type: field.TypeInt},
	}
	// ResultEventsTable holds the schema information for the "result_events" table.
	ResultEventsTable = &schema.Table{
		Name:       "result_events",
		Columns:    ResultEventsColumns,
		PrimaryKey: []*schema.Column{ResultEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resultevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[1]},
			},
			{
				Name:    "resultevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[2]},
			},
			{
				Name:    "resultevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[4]},
			},
			{
				Name:    "resultevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[5]},
			},
			{
				Name:    "resultevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[7]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "questions_served", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "session_points", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		MasteryEventsTable,
		ResultEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
