package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked session between a provider and a client.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("provider_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → customers.id"),

		field.UUID("service_id", uuid.UUID{}).
			Comment("FK → services.id"),

		field.String("date").
			MaxLen(10).
			Comment("Calendar date, YYYY-MM-DD"),

		field.String("time").
			MaxLen(5).
			Comment("Start time, HH:MM"),

		field.Enum("status").
			Values("scheduled", "confirmed", "completed", "canceled", "no_show").
			Default("scheduled"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Time("canceled_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider_id", "date"),
		index.Fields("client_id", "status"),
		index.Fields("date", "status"),
	}
}
