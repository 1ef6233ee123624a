package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Service is an offering in a provider's catalog.
type Service struct {
	ent.Schema
}

func (Service) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Service) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("provider_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("name").
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),

		field.Int("duration_minutes").
			Positive(),

		field.Int64("price_cents").
			Default(0).
			NonNegative().
			Comment("Price in centavos"),

		field.Bool("active").
			Default(true),
	}
}

func (Service) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider_id", "active"),
	}
}
