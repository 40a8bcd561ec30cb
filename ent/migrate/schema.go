// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentsColumns holds the columns for the "assessments" table.
	AssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "symptoms", Type: field.TypeJSON},
		{Name: "medication", Type: field.TypeString},
		{Name: "yes_count", Type: field.TypeInt},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"normal", "moderate", "critical"}},
	}
	// AssessmentsTable holds the schema information for the "assessments" table.
	AssessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    AssessmentsColumns,
		PrimaryKey: []*schema.Column{AssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessment_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[1]},
			},
			{
				Name:    "assessment_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[2]},
			},
			{
				Name:    "assessment_level",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentsTable,
	}
)

func init() {
}
