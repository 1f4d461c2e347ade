package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReadinessSnapshot is one point in the per-user readiness time series.
// Snapshots accumulate and are never updated retroactively.
type ReadinessSnapshot struct {
	ent.Schema
}

// ScoreWeightsData is the serialized weight vector persisted with each
// snapshot so historical rows stay interpretable if weights change.
type ScoreWeightsData struct {
	CV        float64 `json:"cv"`
	Interview float64 `json:"interview"`
	Practice  float64 `json:"practice"`
}

// ReadinessBreakdownData is the serialized score breakdown.
type ReadinessBreakdownData struct {
	CVScore        float64          `json:"cv_score"`
	InterviewScore float64          `json:"interview_score"`
	PracticeScore  float64          `json:"practice_score"`
	Weights        ScoreWeightsData `json:"weights"`
}

func (ReadinessSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("job_spec_id").
			Default(""),
		field.Float("readiness_score"),
		field.Float("cv_score"),
		field.Float("interview_score"),
		field.Float("practice_score"),
		field.JSON("breakdown", &ReadinessBreakdownData{}).
			Optional(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (ReadinessSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "timestamp"),
		index.Fields("user_id", "job_spec_id"),
	}
}
