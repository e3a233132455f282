package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records a skill crossing its mastery threshold.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty(),
		field.String("skill_id").
			NotEmpty(),
		field.String("session_id").
			Optional(),
		field.Int("prior_points").
			Comment("Cumulative points before the crossing round"),
		field.Int("new_total").
			Comment("Cumulative points after the crossing round"),
		field.Int("threshold"),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id"),
		index.Fields("student_id"),
	}
}
