package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records one completed quiz attempt.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session the quiz was taken in"),
		field.String("language_id").
			NotEmpty().
			Comment("Catalog id of the quiz language"),
		field.String("level").
			NotEmpty().
			Comment("Beginner, Intermediate or Advanced"),
		field.Int("total_questions").
			Comment("Accepted question count after filtering"),
		field.Int("correct_answers").
			Comment("Questions answered correctly"),
		field.Int("score").
			Comment("round(100 * correct / total)"),
		field.Bool("passed").
			Comment("Whether the score reached the certificate threshold"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("language_id"),
		index.Fields("passed"),
	}
}
