// Code generated by ent, DO NOT EDIT.

package businesshour

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/appointease/appointease_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProviderID applies equality check predicate on the "provider_id" field. It's identical to ProviderIDEQ.
func ProviderID(v uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldProviderID, v))
}

// DayOfWeek applies equality check predicate on the "day_of_week" field. It's identical to DayOfWeekEQ.
func DayOfWeek(v int) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldDayOfWeek, v))
}

// OpenTime applies equality check predicate on the "open_time" field. It's identical to OpenTimeEQ.
func OpenTime(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldOpenTime, v))
}

// CloseTime applies equality check predicate on the "close_time" field. It's identical to CloseTimeEQ.
func CloseTime(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldCloseTime, v))
}

// Closed applies equality check predicate on the "closed" field. It's identical to ClosedEQ.
func Closed(v bool) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldClosed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldLTE(FieldUpdatedAt, v))
}

// ProviderIDEQ applies the EQ predicate on the "provider_id" field.
func ProviderIDEQ(v uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldProviderID, v))
}

// ProviderIDNEQ applies the NEQ predicate on the "provider_id" field.
func ProviderIDNEQ(v uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNEQ(FieldProviderID, v))
}

// ProviderIDIn applies the In predicate on the "provider_id" field.
func ProviderIDIn(vs ...uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldIn(FieldProviderID, vs...))
}

// ProviderIDNotIn applies the NotIn predicate on the "provider_id" field.
func ProviderIDNotIn(vs ...uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNotIn(FieldProviderID, vs...))
}

// ProviderIDGT applies the GT predicate on the "provider_id" field.
func ProviderIDGT(v uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldGT(FieldProviderID, v))
}

// ProviderIDGTE applies the GTE predicate on the "provider_id" field.
func ProviderIDGTE(v uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldGTE(FieldProviderID, v))
}

// ProviderIDLT applies the LT predicate on the "provider_id" field.
func ProviderIDLT(v uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldLT(FieldProviderID, v))
}

// ProviderIDLTE applies the LTE predicate on the "provider_id" field.
func ProviderIDLTE(v uuid.UUID) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldLTE(FieldProviderID, v))
}

// DayOfWeekEQ applies the EQ predicate on the "day_of_week" field.
func DayOfWeekEQ(v int) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldDayOfWeek, v))
}

// DayOfWeekNEQ applies the NEQ predicate on the "day_of_week" field.
func DayOfWeekNEQ(v int) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNEQ(FieldDayOfWeek, v))
}

// DayOfWeekIn applies the In predicate on the "day_of_week" field.
func DayOfWeekIn(vs ...int) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldIn(FieldDayOfWeek, vs...))
}

// DayOfWeekNotIn applies the NotIn predicate on the "day_of_week" field.
func DayOfWeekNotIn(vs ...int) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNotIn(FieldDayOfWeek, vs...))
}

// DayOfWeekGT applies the GT predicate on the "day_of_week" field.
func DayOfWeekGT(v int) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldGT(FieldDayOfWeek, v))
}

// DayOfWeekGTE applies the GTE predicate on the "day_of_week" field.
func DayOfWeekGTE(v int) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldGTE(FieldDayOfWeek, v))
}

// DayOfWeekLT applies the LT predicate on the "day_of_week" field.
func DayOfWeekLT(v int) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldLT(FieldDayOfWeek, v))
}

// DayOfWeekLTE applies the LTE predicate on the "day_of_week" field.
func DayOfWeekLTE(v int) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldLTE(FieldDayOfWeek, v))
}

// OpenTimeEQ applies the EQ predicate on the "open_time" field.
func OpenTimeEQ(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldOpenTime, v))
}

// OpenTimeNEQ applies the NEQ predicate on the "open_time" field.
func OpenTimeNEQ(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNEQ(FieldOpenTime, v))
}

// OpenTimeIn applies the In predicate on the "open_time" field.
func OpenTimeIn(vs ...string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldIn(FieldOpenTime, vs...))
}

// OpenTimeNotIn applies the NotIn predicate on the "open_time" field.
func OpenTimeNotIn(vs ...string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNotIn(FieldOpenTime, vs...))
}

// OpenTimeGT applies the GT predicate on the "open_time" field.
func OpenTimeGT(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldGT(FieldOpenTime, v))
}

// OpenTimeGTE applies the GTE predicate on the "open_time" field.
func OpenTimeGTE(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldGTE(FieldOpenTime, v))
}

// OpenTimeLT applies the LT predicate on the "open_time" field.
func OpenTimeLT(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldLT(FieldOpenTime, v))
}

// OpenTimeLTE applies the LTE predicate on the "open_time" field.
func OpenTimeLTE(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldLTE(FieldOpenTime, v))
}

// OpenTimeContains applies the Contains predicate on the "open_time" field.
func OpenTimeContains(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldContains(FieldOpenTime, v))
}

// OpenTimeHasPrefix applies the HasPrefix predicate on the "open_time" field.
func OpenTimeHasPrefix(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldHasPrefix(FieldOpenTime, v))
}

// OpenTimeHasSuffix applies the HasSuffix predicate on the "open_time" field.
func OpenTimeHasSuffix(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldHasSuffix(FieldOpenTime, v))
}

// OpenTimeEqualFold applies the EqualFold predicate on the "open_time" field.
func OpenTimeEqualFold(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEqualFold(FieldOpenTime, v))
}

// OpenTimeContainsFold applies the ContainsFold predicate on the "open_time" field.
func OpenTimeContainsFold(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldContainsFold(FieldOpenTime, v))
}

// CloseTimeEQ applies the EQ predicate on the "close_time" field.
func CloseTimeEQ(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldCloseTime, v))
}

// CloseTimeNEQ applies the NEQ predicate on the "close_time" field.
func CloseTimeNEQ(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNEQ(FieldCloseTime, v))
}

// CloseTimeIn applies the In predicate on the "close_time" field.
func CloseTimeIn(vs ...string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldIn(FieldCloseTime, vs...))
}

// CloseTimeNotIn applies the NotIn predicate on the "close_time" field.
func CloseTimeNotIn(vs ...string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNotIn(FieldCloseTime, vs...))
}

// CloseTimeGT applies the GT predicate on the "close_time" field.
func CloseTimeGT(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldGT(FieldCloseTime, v))
}

// CloseTimeGTE applies the GTE predicate on the "close_time" field.
func CloseTimeGTE(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldGTE(FieldCloseTime, v))
}

// CloseTimeLT applies the LT predicate on the "close_time" field.
func CloseTimeLT(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldLT(FieldCloseTime, v))
}

// CloseTimeLTE applies the LTE predicate on the "close_time" field.
func CloseTimeLTE(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldLTE(FieldCloseTime, v))
}

// CloseTimeContains applies the Contains predicate on the "close_time" field.
func CloseTimeContains(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldContains(FieldCloseTime, v))
}

// CloseTimeHasPrefix applies the HasPrefix predicate on the "close_time" field.
func CloseTimeHasPrefix(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldHasPrefix(FieldCloseTime, v))
}

// CloseTimeHasSuffix applies the HasSuffix predicate on the "close_time" field.
func CloseTimeHasSuffix(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldHasSuffix(FieldCloseTime, v))
}

// CloseTimeEqualFold applies the EqualFold predicate on the "close_time" field.
func CloseTimeEqualFold(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEqualFold(FieldCloseTime, v))
}

// CloseTimeContainsFold applies the ContainsFold predicate on the "close_time" field.
func CloseTimeContainsFold(v string) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldContainsFold(FieldCloseTime, v))
}

// ClosedEQ applies the EQ predicate on the "closed" field.
func ClosedEQ(v bool) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldEQ(FieldClosed, v))
}

// ClosedNEQ applies the NEQ predicate on the "closed" field.
func ClosedNEQ(v bool) predicate.BusinessHour {
	return predicate.BusinessHour(sql.FieldNEQ(FieldClosed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BusinessHour) predicate.BusinessHour {
	return predicate.BusinessHour(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BusinessHour) predicate.BusinessHour {
	return predicate.BusinessHour(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BusinessHour) predicate.BusinessHour {
	return predicate.BusinessHour(sql.NotPredicates(p))
}
