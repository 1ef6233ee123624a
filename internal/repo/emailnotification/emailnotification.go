// Code generated by ent, DO NOT EDIT.

package emailnotification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the emailnotification type in the database.
	Label = "email_notification"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAppointmentCreated holds the string denoting the appointment_created field in the database.
	FieldAppointmentCreated = "appointment_created"
	// FieldAppointmentUpdated holds the string denoting the appointment_updated field in the database.
	FieldAppointmentUpdated = "appointment_updated"
	// FieldAppointmentCanceled holds the string denoting the appointment_canceled field in the database.
	FieldAppointmentCanceled = "appointment_canceled"
	// FieldAppointmentReminder holds the string denoting the appointment_reminder field in the database.
	FieldAppointmentReminder = "appointment_reminder"
	// FieldAppointmentConfirmed holds the string denoting the appointment_confirmed field in the database.
	FieldAppointmentConfirmed = "appointment_confirmed"
	// Table holds the table name of the emailnotification in the database.
	Table = "email_notifications"
)

// Columns holds all SQL columns for emailnotification fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldAppointmentCreated,
	FieldAppointmentUpdated,
	FieldAppointmentCanceled,
	FieldAppointmentReminder,
	FieldAppointmentConfirmed,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultAppointmentCreated holds the default value on creation for the "appointment_created" field.
	DefaultAppointmentCreated bool
	// DefaultAppointmentUpdated holds the default value on creation for the "appointment_updated" field.
	DefaultAppointmentUpdated bool
	// DefaultAppointmentCanceled holds the default value on creation for the "appointment_canceled" field.
	DefaultAppointmentCanceled bool
	// DefaultAppointmentReminder holds the default value on creation for the "appointment_reminder" field.
	DefaultAppointmentReminder bool
	// DefaultAppointmentConfirmed holds the default value on creation for the "appointment_confirmed" field.
	DefaultAppointmentConfirmed bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the EmailNotification queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAppointmentCreated orders the results by the appointment_created field.
func ByAppointmentCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentCreated, opts...).ToFunc()
}

// ByAppointmentUpdated orders the results by the appointment_updated field.
func ByAppointmentUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentUpdated, opts...).ToFunc()
}

// ByAppointmentCanceled orders the results by the appointment_canceled field.
func ByAppointmentCanceled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentCanceled, opts...).ToFunc()
}

// ByAppointmentReminder orders the results by the appointment_reminder field.
func ByAppointmentReminder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentReminder, opts...).ToFunc()
}

// ByAppointmentConfirmed orders the results by the appointment_confirmed field.
func ByAppointmentConfirmed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentConfirmed, opts...).ToFunc()
}
