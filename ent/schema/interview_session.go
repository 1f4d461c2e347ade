package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterviewSession is one mock interview. The plan is fixed at start;
// conversation_state is the single mutable blob the turn engine owns.
type InterviewSession struct {
	ent.Schema
}

// PlanCandidateData is the serialized form of an alternate question ref
// stored on adaptive code slots.
type PlanCandidateData struct {
	QuestionID string   `json:"question_id"`
	Difficulty string   `json:"difficulty"`
	Topics     []string `json:"topics"`
}

// PlanItemData is the serialized form of one plan slot.
type PlanItemData struct {
	Section    string              `json:"section"`
	SlotIndex  int                 `json:"slot_index"`
	QuestionID string              `json:"question_id"`
	Difficulty string              `json:"difficulty,omitempty"`
	Topics     []string            `json:"topics"`
	Candidates []PlanCandidateData `json:"candidates,omitempty"`
}

func (InterviewSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID"),
		field.String("user_id").
			NotEmpty(),
		field.String("job_spec_id").
			Default(""),
		field.String("language").
			Default("english"),
		field.String("persona").
			Default("friendly"),
		field.JSON("plan", []PlanItemData{}).
			Optional().
			Comment("Ordered plan items, read-only after start"),
		field.Text("conversation_state").
			Default("").
			Comment("JSON blob owned by the turn engine; malformed content is treated as empty state"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

func (InterviewSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "started_at"),
		index.Fields("job_spec_id"),
	}
}
