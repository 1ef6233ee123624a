// Code generated by ent, DO NOT EDIT.

package businesshour

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the businesshour type in the database.
	Label = "business_hour"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldProviderID holds the string denoting the provider_id field in the database.
	FieldProviderID = "provider_id"
	// FieldDayOfWeek holds the string denoting the day_of_week field in the database.
	FieldDayOfWeek = "day_of_week"
	// FieldOpenTime holds the string denoting the open_time field in the database.
	FieldOpenTime = "open_time"
	// FieldCloseTime holds the string denoting the close_time field in the database.
	FieldCloseTime = "close_time"
	// FieldClosed holds the string denoting the closed field in the database.
	FieldClosed = "closed"
	// Table holds the table name of the businesshour in the database.
	Table = "business_hours"
)

// Columns holds all SQL columns for businesshour fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldProviderID,
	FieldDayOfWeek,
	FieldOpenTime,
	FieldCloseTime,
	FieldClosed,
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
	// DayOfWeekValidator is a validator for the "day_of_week" field. It is called by the builders before save.
	DayOfWeekValidator func(int) error
	// OpenTimeValidator is a validator for the "open_time" field. It is called by the builders before save.
	OpenTimeValidator func(string) error
	// CloseTimeValidator is a validator for the "close_time" field. It is called by the builders before save.
	CloseTimeValidator func(string) error
	// DefaultClosed holds the default value on creation for the "closed" field.
	DefaultClosed bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BusinessHour queries.
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

// ByProviderID orders the results by the provider_id field.
func ByProviderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderID, opts...).ToFunc()
}

// ByDayOfWeek orders the results by the day_of_week field.
func ByDayOfWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayOfWeek, opts...).ToFunc()
}

// ByOpenTime orders the results by the open_time field.
func ByOpenTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpenTime, opts...).ToFunc()
}

// ByCloseTime orders the results by the close_time field.
func ByCloseTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCloseTime, opts...).ToFunc()
}

// ByClosed orders the results by the closed field.
func ByClosed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosed, opts...).ToFunc()
}
