// Code generated by ent, DO NOT EDIT.

package emailnotification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/appointease/appointease_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldUserID, v))
}

// AppointmentCreated applies equality check predicate on the "appointment_created" field. It's identical to AppointmentCreatedEQ.
func AppointmentCreated(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldAppointmentCreated, v))
}

// AppointmentUpdated applies equality check predicate on the "appointment_updated" field. It's identical to AppointmentUpdatedEQ.
func AppointmentUpdated(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldAppointmentUpdated, v))
}

// AppointmentCanceled applies equality check predicate on the "appointment_canceled" field. It's identical to AppointmentCanceledEQ.
func AppointmentCanceled(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldAppointmentCanceled, v))
}

// AppointmentReminder applies equality check predicate on the "appointment_reminder" field. It's identical to AppointmentReminderEQ.
func AppointmentReminder(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldAppointmentReminder, v))
}

// AppointmentConfirmed applies equality check predicate on the "appointment_confirmed" field. It's identical to AppointmentConfirmedEQ.
func AppointmentConfirmed(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldAppointmentConfirmed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldLTE(FieldUserID, v))
}

// AppointmentCreatedEQ applies the EQ predicate on the "appointment_created" field.
func AppointmentCreatedEQ(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldAppointmentCreated, v))
}

// AppointmentCreatedNEQ applies the NEQ predicate on the "appointment_created" field.
func AppointmentCreatedNEQ(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldNEQ(FieldAppointmentCreated, v))
}

// AppointmentUpdatedEQ applies the EQ predicate on the "appointment_updated" field.
func AppointmentUpdatedEQ(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldAppointmentUpdated, v))
}

// AppointmentUpdatedNEQ applies the NEQ predicate on the "appointment_updated" field.
func AppointmentUpdatedNEQ(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldNEQ(FieldAppointmentUpdated, v))
}

// AppointmentCanceledEQ applies the EQ predicate on the "appointment_canceled" field.
func AppointmentCanceledEQ(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldAppointmentCanceled, v))
}

// AppointmentCanceledNEQ applies the NEQ predicate on the "appointment_canceled" field.
func AppointmentCanceledNEQ(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldNEQ(FieldAppointmentCanceled, v))
}

// AppointmentReminderEQ applies the EQ predicate on the "appointment_reminder" field.
func AppointmentReminderEQ(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldAppointmentReminder, v))
}

// AppointmentReminderNEQ applies the NEQ predicate on the "appointment_reminder" field.
func AppointmentReminderNEQ(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldNEQ(FieldAppointmentReminder, v))
}

// AppointmentConfirmedEQ applies the EQ predicate on the "appointment_confirmed" field.
func AppointmentConfirmedEQ(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldEQ(FieldAppointmentConfirmed, v))
}

// AppointmentConfirmedNEQ applies the NEQ predicate on the "appointment_confirmed" field.
func AppointmentConfirmedNEQ(v bool) predicate.EmailNotification {
	return predicate.EmailNotification(sql.FieldNEQ(FieldAppointmentConfirmed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmailNotification) predicate.EmailNotification {
	return predicate.EmailNotification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmailNotification) predicate.EmailNotification {
	return predicate.EmailNotification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmailNotification) predicate.EmailNotification {
	return predicate.EmailNotification(sql.NotPredicates(p))
}
