package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionHistory tracks when a question was last asked to a user for a
// given job description. Rows are upserted, never deleted.
type QuestionHistory struct {
	ent.Schema
}

func (QuestionHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("jd_hash").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.String("session_id").
			Default(""),
		field.Time("last_asked_at").
			Default(time.Now),
	}
}

func (QuestionHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "jd_hash", "question_id").
			Unique(),
		index.Fields("last_asked_at"),
	}
}
