// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/appointease/appointease_backend/internal/repo/emailnotification"
	"github.com/google/uuid"
)

// EmailNotification is the model entity for the EmailNotification schema.
type EmailNotification struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// AppointmentCreated holds the value of the "appointment_created" field.
	AppointmentCreated bool `json:"appointment_created,omitempty"`
	// AppointmentUpdated holds the value of the "appointment_updated" field.
	AppointmentUpdated bool `json:"appointment_updated,omitempty"`
	// AppointmentCanceled holds the value of the "appointment_canceled" field.
	AppointmentCanceled bool `json:"appointment_canceled,omitempty"`
	// AppointmentReminder holds the value of the "appointment_reminder" field.
	AppointmentReminder bool `json:"appointment_reminder,omitempty"`
	// AppointmentConfirmed holds the value of the "appointment_confirmed" field.
	AppointmentConfirmed bool `json:"appointment_confirmed,omitempty"`
	selectValues         sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmailNotification) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case emailnotification.FieldAppointmentCreated, emailnotification.FieldAppointmentUpdated, emailnotification.FieldAppointmentCanceled, emailnotification.FieldAppointmentReminder, emailnotification.FieldAppointmentConfirmed:
			values[i] = new(sql.NullBool)
		case emailnotification.FieldCreatedAt, emailnotification.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case emailnotification.FieldID, emailnotification.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmailNotification fields.
func (_m *EmailNotification) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case emailnotification.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case emailnotification.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case emailnotification.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case emailnotification.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case emailnotification.FieldAppointmentCreated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_created", values[i])
			} else if value.Valid {
				_m.AppointmentCreated = value.Bool
			}
		case emailnotification.FieldAppointmentUpdated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_updated", values[i])
			} else if value.Valid {
				_m.AppointmentUpdated = value.Bool
			}
		case emailnotification.FieldAppointmentCanceled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_canceled", values[i])
			} else if value.Valid {
				_m.AppointmentCanceled = value.Bool
			}
		case emailnotification.FieldAppointmentReminder:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_reminder", values[i])
			} else if value.Valid {
				_m.AppointmentReminder = value.Bool
			}
		case emailnotification.FieldAppointmentConfirmed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_confirmed", values[i])
			} else if value.Valid {
				_m.AppointmentConfirmed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EmailNotification.
// This includes values selected through modifiers, order, etc.
func (_m *EmailNotification) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EmailNotification.
// Note that you need to call EmailNotification.Unwrap() before calling this method if this EmailNotification
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmailNotification) Update() *EmailNotificationUpdateOne {
	return NewEmailNotificationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmailNotification entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmailNotification) Unwrap() *EmailNotification {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: EmailNotification is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmailNotification) String() string {
	var builder strings.Builder
	builder.WriteString("EmailNotification(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("appointment_created=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentCreated))
	builder.WriteString(", ")
	builder.WriteString("appointment_updated=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentUpdated))
	builder.WriteString(", ")
	builder.WriteString("appointment_canceled=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentCanceled))
	builder.WriteString(", ")
	builder.WriteString("appointment_reminder=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentReminder))
	builder.WriteString(", ")
	builder.WriteString("appointment_confirmed=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentConfirmed))
	builder.WriteByte(')')
	return builder.String()
}

// EmailNotifications is a parsable slice of EmailNotification.
type EmailNotifications []*EmailNotification
