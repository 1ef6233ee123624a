package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Customer is a client record in a provider's directory. Named Customer
// because ent reserves Client for the generated database handle.
type Customer struct {
	ent.Schema
}

func (Customer) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Customer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id; set when the customer has a dashboard account"),

		field.UUID("provider_id", uuid.UUID{}).
			Comment("FK → users.id (the provider who owns this record)"),

		field.String("name").
			MaxLen(255),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("E.164 formatted"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Int("total_appointments").
			Default(0).
			NonNegative(),

		field.Time("last_appointment_at").
			Optional().
			Nillable(),
	}
}

func (Customer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider_id", "name"),
		index.Fields("provider_id", "email"),
	}
}
