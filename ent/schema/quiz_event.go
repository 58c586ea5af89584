package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records one completed quiz for history and stats.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Quiz session UUID"),
		field.String("topic").
			Comment("Topic the quiz covered"),
		field.String("difficulty").
			Comment("Difficulty level played"),
		field.Int("score").
			Comment("Questions answered correctly"),
		field.Int("total_questions").
			Comment("Questions in the quiz"),
		field.Int("duration_secs").
			Default(0).
			Comment("Time taken to finish, in seconds"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("session_id"),
	}
}
