package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobSpec is an ingested job description, deduplicated by content hash.
type JobSpec struct {
	ent.Schema
}

// TopicWeightData is the serialized form of a weighted topic.
type TopicWeightData struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// RoleProfileData is the serialized role profile extracted from a JD.
type RoleProfileData struct {
	RoleTitle  string            `json:"role_title"`
	Seniority  string            `json:"seniority"`
	Topics     []TopicWeightData `json:"topics"`
	FocusAreas []string          `json:"focus_areas"`
}

func (JobSpec) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID"),
		field.String("jd_hash").
			Unique().
			NotEmpty().
			Comment("MD5 of the JD text, dedupe key"),
		field.String("title").
			Default(""),
		field.Text("raw_text").
			NotEmpty(),
		field.JSON("role_profile", &RoleProfileData{}).
			Optional().
			Comment("Extracted once at ingest; immutable after creation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (JobSpec) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("jd_hash"),
	}
}
