package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Assessment records one evaluated self check.
type Assessment struct {
	ent.Schema
}

func (Assessment) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("name").
			Comment("Trimmed name entered on the form"),
		field.Strings("symptoms").
			Comment("Yes/No per symptom question, in question order"),
		field.String("medication").
			Comment("Yes/No answer to the medication question"),
		field.Int("yes_count").
			Min(0).
			Comment("Number of symptoms answered Yes"),
		field.Enum("level").
			Values("normal", "moderate", "critical").
			Comment("Severity derived from yes_count"),
	}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level"),
	}
}
