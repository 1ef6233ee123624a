package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// EmailNotification holds per-user email notification preferences. One row
// per user; every flag defaults to opted-in.
type EmailNotification struct {
	ent.Schema
}

func (EmailNotification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (EmailNotification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.Bool("appointment_created").
			Default(true),

		field.Bool("appointment_updated").
			Default(true),

		field.Bool("appointment_canceled").
			Default(true),

		field.Bool("appointment_reminder").
			Default(true),

		field.Bool("appointment_confirmed").
			Default(true),
	}
}

func (EmailNotification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
