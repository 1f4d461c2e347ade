package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterviewTurn is one immutable exchange within a session. Follow-up
// turns link to their main turn via parent_turn_id, forming a tree.
type InterviewTurn struct {
	ent.Schema
}

func (InterviewTurn) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InterviewTurn) Fields() []ent.Field {
	return []ent.Field{
		field.String("turn_id").
			Unique().
			Immutable().
			Comment("UUID"),
		field.String("session_id").
			NotEmpty(),
		field.Int("turn_index").
			Comment("Position within the session, 0-based"),
		field.String("question_id").
			NotEmpty(),
		field.Text("question_snapshot").
			Comment("Question text as presented, post-refinement"),
		field.Text("transcript").
			Default(""),
		field.Text("code").
			Default("").
			Comment("Submitted code, code questions only"),
		field.Float("score").
			Comment("Satisfaction score in [0,1]"),
		field.Bool("is_followup").
			Default(false),
		field.String("parent_turn_id").
			Default("").
			Comment("Most recent main turn when this turn is a follow-up"),
		field.Int("question_number").
			Default(0).
			Comment("Plan index of the question this turn belongs to"),
		field.Int("time_spent_secs").
			Default(0),
	}
}

func (InterviewTurn) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "turn_index"),
		index.Fields("question_id"),
	}
}
