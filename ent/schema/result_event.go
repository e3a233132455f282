package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultEvent records one scored submission within a practice session.
type ResultEvent struct {
	ent.Schema
}

func (ResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("result_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned by the engine"),
		field.String("student_id").
			NotEmpty(),
		field.String("skill_id").
			NotEmpty().
			Comment("Skill the question belonged to"),
		field.String("question_id").
			NotEmpty().
			Comment("Stable question identity hash"),
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int("score").
			Comment("Round total after rules; can be negative"),
		field.Int("attempts").
			Default(1),
		field.Bool("correct"),
		field.Int("duration_ms").
			Comment("Milliseconds from question shown to submission"),
	}
}

func (ResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("skill_id"),
		index.Fields("session_id"),
	}
}
