package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// EmailLog is an append-only record of every outbound email attempt.
type EmailLog struct {
	ent.Schema
}

func (EmailLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (EmailLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Resolved from the recipient address; nil for unknown recipients"),

		field.String("recipient").
			MaxLen(255),

		field.String("subject").
			MaxLen(255),

		field.Text("content").
			Comment("Body as rendered for the recipient"),

		field.String("type").
			MaxLen(64).
			Comment("Event that produced the email"),

		field.UUID("appointment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Appointment the event refers to, when there is one"),

		field.Enum("status").
			Values("sent", "failed"),

		field.Text("error").
			Optional().
			Nillable().
			Comment("Transport error when status is failed"),
	}
}

func (EmailLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient", "created_at"),
		index.Fields("status", "created_at"),
	}
}
