package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// BusinessHour is one weekday's opening window for a provider.
type BusinessHour struct {
	ent.Schema
}

func (BusinessHour) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (BusinessHour) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("provider_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Int("day_of_week").
			Min(0).
			Max(6).
			Comment("0 = Sunday"),

		field.String("open_time").
			MaxLen(5).
			Comment("HH:MM"),

		field.String("close_time").
			MaxLen(5).
			Comment("HH:MM"),

		field.Bool("closed").
			Default(false),
	}
}

func (BusinessHour) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider_id", "day_of_week").Unique(),
	}
}
