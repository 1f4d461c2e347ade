package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a bank entry. Immutable reference data once ingested.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("Prefixed id: open:<key> or code:<key>"),
		field.Enum("question_type").
			Values("open", "code"),
		field.Text("text").
			NotEmpty().
			Comment("The question prompt as ingested"),
		field.JSON("topics", []string{}).
			Optional().
			Comment("Topic tags used for matching and diversity"),
		field.String("difficulty").
			Default("").
			Comment("Easy, Medium, Hard, or empty for open questions"),
		field.Text("solution_text").
			Default("").
			Comment("Reference solution for code questions"),
		field.String("source").
			Default("").
			Comment("Ingest source file, for provenance"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_type"),
		index.Fields("question_type", "difficulty"),
	}
}
