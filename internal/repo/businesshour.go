// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/appointease/appointease_backend/internal/repo/businesshour"
	"github.com/google/uuid"
)

// BusinessHour is the model entity for the BusinessHour schema.
type BusinessHour struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	ProviderID uuid.UUID `json:"provider_id,omitempty"`
	// 0 = Sunday
	DayOfWeek int `json:"day_of_week,omitempty"`
	// HH:MM
	OpenTime string `json:"open_time,omitempty"`
	// HH:MM
	CloseTime string `json:"close_time,omitempty"`
	// Closed holds the value of the "closed" field.
	Closed       bool `json:"closed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BusinessHour) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case businesshour.FieldClosed:
			values[i] = new(sql.NullBool)
		case businesshour.FieldDayOfWeek:
			values[i] = new(sql.NullInt64)
		case businesshour.FieldOpenTime, businesshour.FieldCloseTime:
			values[i] = new(sql.NullString)
		case businesshour.FieldCreatedAt, businesshour.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case businesshour.FieldID, businesshour.FieldProviderID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BusinessHour fields.
func (_m *BusinessHour) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case businesshour.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case businesshour.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case businesshour.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case businesshour.FieldProviderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field provider_id", values[i])
			} else if value != nil {
				_m.ProviderID = *value
			}
		case businesshour.FieldDayOfWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_of_week", values[i])
			} else if value.Valid {
				_m.DayOfWeek = int(value.Int64)
			}
		case businesshour.FieldOpenTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field open_time", values[i])
			} else if value.Valid {
				_m.OpenTime = value.String
			}
		case businesshour.FieldCloseTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field close_time", values[i])
			} else if value.Valid {
				_m.CloseTime = value.String
			}
		case businesshour.FieldClosed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field closed", values[i])
			} else if value.Valid {
				_m.Closed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BusinessHour.
// This includes values selected through modifiers, order, etc.
func (_m *BusinessHour) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BusinessHour.
// Note that you need to call BusinessHour.Unwrap() before calling this method if this BusinessHour
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BusinessHour) Update() *BusinessHourUpdateOne {
	return NewBusinessHourClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BusinessHour entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BusinessHour) Unwrap() *BusinessHour {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: BusinessHour is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BusinessHour) String() string {
	var builder strings.Builder
	builder.WriteString("BusinessHour(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("provider_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProviderID))
	builder.WriteString(", ")
	builder.WriteString("day_of_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayOfWeek))
	builder.WriteString(", ")
	builder.WriteString("open_time=")
	builder.WriteString(_m.OpenTime)
	builder.WriteString(", ")
	builder.WriteString("close_time=")
	builder.WriteString(_m.CloseTime)
	builder.WriteString(", ")
	builder.WriteString("closed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Closed))
	builder.WriteByte(')')
	return builder.String()
}

// BusinessHours is a parsable slice of BusinessHour.
type BusinessHours []*BusinessHour
