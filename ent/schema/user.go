package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User is a candidate practicing interviews.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID"),
		field.String("email").
			Unique().
			NotEmpty(),
		field.String("name").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
