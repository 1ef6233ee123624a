// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// BusinessHour is the predicate function for businesshour builders.
type BusinessHour func(*sql.Selector)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// EmailLog is the predicate function for emaillog builders.
type EmailLog func(*sql.Selector)

// EmailNotification is the predicate function for emailnotification builders.
type EmailNotification func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Service is the predicate function for service builders.
type Service func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
