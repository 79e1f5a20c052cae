// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// QueryEventsColumns holds the columns for the "query_events" table.
	QueryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "question", Type: field.TypeString},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "hallucination", Type: field.TypeBool, Default: false},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "answer_body", Type: field.TypeString, Default: ""},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// QueryEventsTable holds the schema information for the "query_events" table.
	QueryEventsTable = &schema.Table{
		Name:       "query_events",
		Columns:    QueryEventsColumns,
		PrimaryKey: []*schema.Column{QueryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QueryEventsColumns[1]},
			},
			{
				Name:    "queryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QueryEventsColumns[2]},
			},
			{
				Name:    "queryevent_provider",
				Unique:  false,
				Columns: []*schema.Column{QueryEventsColumns[3]},
			},
			{
				Name:    "queryevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{QueryEventsColumns[4]},
			},
			{
				Name:    "queryevent_success",
				Unique:  false,
				Columns: []*schema.Column{QueryEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QueryEventsTable,
	}
)

func init() {
}
