package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CVAnalysis is one CV-vs-JD analysis result. Append-only; readiness
// always reads the most recent row per user+job spec.
type CVAnalysis struct {
	ent.Schema
}

func (CVAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID"),
		field.String("user_id").
			NotEmpty(),
		field.String("job_spec_id").
			NotEmpty(),
		field.Float("match_score").
			Comment("0-1 fit between CV and JD"),
		field.JSON("strengths", []string{}).
			Optional(),
		field.JSON("gaps", []string{}).
			Optional(),
		field.JSON("suggestions", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (CVAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "job_spec_id"),
		index.Fields("created_at"),
	}
}
