package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records the start or stop of a practice session.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("student_id").
			NotEmpty(),
		field.String("skill_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start or stop"),
		field.Int("questions_served").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.Int("session_points").
			Default(0).
			Comment("Net points for the session; can be negative"),
		field.Int("duration_secs").
			Default(0),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("skill_id"),
	}
}
