// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/appointease/appointease_backend/internal/repo/emailnotification"
	"github.com/appointease/appointease_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// EmailNotificationUpdate is the builder for updating EmailNotification entities.
type EmailNotificationUpdate struct {
	config
	hooks    []Hook
	mutation *EmailNotificationMutation
}

// Where appends a list predicates to the EmailNotificationUpdate builder.
func (_u *EmailNotificationUpdate) Where(ps ...predicate.EmailNotification) *EmailNotificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmailNotificationUpdate) SetUpdatedAt(v time.Time) *EmailNotificationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EmailNotificationUpdate) SetUserID(v uuid.UUID) *EmailNotificationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EmailNotificationUpdate) SetNillableUserID(v *uuid.UUID) *EmailNotificationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAppointmentCreated sets the "appointment_created" field.
func (_u *EmailNotificationUpdate) SetAppointmentCreated(v bool) *EmailNotificationUpdate {
	_u.mutation.SetAppointmentCreated(v)
	return _u
}

// SetNillableAppointmentCreated sets the "appointment_created" field if the given value is not nil.
func (_u *EmailNotificationUpdate) SetNillableAppointmentCreated(v *bool) *EmailNotificationUpdate {
	if v != nil {
		_u.SetAppointmentCreated(*v)
	}
	return _u
}

// SetAppointmentUpdated sets the "appointment_updated" field.
func (_u *EmailNotificationUpdate) SetAppointmentUpdated(v bool) *EmailNotificationUpdate {
	_u.mutation.SetAppointmentUpdated(v)
	return _u
}

// SetNillableAppointmentUpdated sets the "appointment_updated" field if the given value is not nil.
func (_u *EmailNotificationUpdate) SetNillableAppointmentUpdated(v *bool) *EmailNotificationUpdate {
	if v != nil {
		_u.SetAppointmentUpdated(*v)
	}
	return _u
}

// SetAppointmentCanceled sets the "appointment_canceled" field.
func (_u *EmailNotificationUpdate) SetAppointmentCanceled(v bool) *EmailNotificationUpdate {
	_u.mutation.SetAppointmentCanceled(v)
	return _u
}

// SetNillableAppointmentCanceled sets the "appointment_canceled" field if the given value is not nil.
func (_u *EmailNotificationUpdate) SetNillableAppointmentCanceled(v *bool) *EmailNotificationUpdate {
	if v != nil {
		_u.SetAppointmentCanceled(*v)
	}
	return _u
}

// SetAppointmentReminder sets the "appointment_reminder" field.
func (_u *EmailNotificationUpdate) SetAppointmentReminder(v bool) *EmailNotificationUpdate {
	_u.mutation.SetAppointmentReminder(v)
	return _u
}

// SetNillableAppointmentReminder sets the "appointment_reminder" field if the given value is not nil.
func (_u *EmailNotificationUpdate) SetNillableAppointmentReminder(v *bool) *EmailNotificationUpdate {
	if v != nil {
		_u.SetAppointmentReminder(*v)
	}
	return _u
}

// SetAppointmentConfirmed sets the "appointment_confirmed" field.
func (_u *EmailNotificationUpdate) SetAppointmentConfirmed(v bool) *EmailNotificationUpdate {
	_u.mutation.SetAppointmentConfirmed(v)
	return _u
}

// SetNillableAppointmentConfirmed sets the "appointment_confirmed" field if the given value is not nil.
func (_u *EmailNotificationUpdate) SetNillableAppointmentConfirmed(v *bool) *EmailNotificationUpdate {
	if v != nil {
		_u.SetAppointmentConfirmed(*v)
	}
	return _u
}

// Mutation returns the EmailNotificationMutation object of the builder.
func (_u *EmailNotificationUpdate) Mutation() *EmailNotificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailNotificationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailNotificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailNotificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailNotificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmailNotificationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emailnotification.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *EmailNotificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(emailnotification.Table, emailnotification.Columns, sqlgraph.NewFieldSpec(emailnotification.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emailnotification.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(emailnotification.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentCreated(); ok {
		_spec.SetField(emailnotification.FieldAppointmentCreated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppointmentUpdated(); ok {
		_spec.SetField(emailnotification.FieldAppointmentUpdated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppointmentCanceled(); ok {
		_spec.SetField(emailnotification.FieldAppointmentCanceled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppointmentReminder(); ok {
		_spec.SetField(emailnotification.FieldAppointmentReminder, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppointmentConfirmed(); ok {
		_spec.SetField(emailnotification.FieldAppointmentConfirmed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailnotification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailNotificationUpdateOne is the builder for updating a single EmailNotification entity.
type EmailNotificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailNotificationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmailNotificationUpdateOne) SetUpdatedAt(v time.Time) *EmailNotificationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EmailNotificationUpdateOne) SetUserID(v uuid.UUID) *EmailNotificationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EmailNotificationUpdateOne) SetNillableUserID(v *uuid.UUID) *EmailNotificationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAppointmentCreated sets the "appointment_created" field.
func (_u *EmailNotificationUpdateOne) SetAppointmentCreated(v bool) *EmailNotificationUpdateOne {
	_u.mutation.SetAppointmentCreated(v)
	return _u
}

// SetNillableAppointmentCreated sets the "appointment_created" field if the given value is not nil.
func (_u *EmailNotificationUpdateOne) SetNillableAppointmentCreated(v *bool) *EmailNotificationUpdateOne {
	if v != nil {
		_u.SetAppointmentCreated(*v)
	}
	return _u
}

// SetAppointmentUpdated sets the "appointment_updated" field.
func (_u *EmailNotificationUpdateOne) SetAppointmentUpdated(v bool) *EmailNotificationUpdateOne {
	_u.mutation.SetAppointmentUpdated(v)
	return _u
}

// SetNillableAppointmentUpdated sets the "appointment_updated" field if the given value is not nil.
func (_u *EmailNotificationUpdateOne) SetNillableAppointmentUpdated(v *bool) *EmailNotificationUpdateOne {
	if v != nil {
		_u.SetAppointmentUpdated(*v)
	}
	return _u
}

// SetAppointmentCanceled sets the "appointment_canceled" field.
func (_u *EmailNotificationUpdateOne) SetAppointmentCanceled(v bool) *EmailNotificationUpdateOne {
	_u.mutation.SetAppointmentCanceled(v)
	return _u
}

// SetNillableAppointmentCanceled sets the "appointment_canceled" field if the given value is not nil.
func (_u *EmailNotificationUpdateOne) SetNillableAppointmentCanceled(v *bool) *EmailNotificationUpdateOne {
	if v != nil {
		_u.SetAppointmentCanceled(*v)
	}
	return _u
}

// SetAppointmentReminder sets the "appointment_reminder" field.
func (_u *EmailNotificationUpdateOne) SetAppointmentReminder(v bool) *EmailNotificationUpdateOne {
	_u.mutation.SetAppointmentReminder(v)
	return _u
}

// SetNillableAppointmentReminder sets the "appointment_reminder" field if the given value is not nil.
func (_u *EmailNotificationUpdateOne) SetNillableAppointmentReminder(v *bool) *EmailNotificationUpdateOne {
	if v != nil {
		_u.SetAppointmentReminder(*v)
	}
	return _u
}

// SetAppointmentConfirmed sets the "appointment_confirmed" field.
func (_u *EmailNotificationUpdateOne) SetAppointmentConfirmed(v bool) *EmailNotificationUpdateOne {
	_u.mutation.SetAppointmentConfirmed(v)
	return _u
}

// SetNillableAppointmentConfirmed sets the "appointment_confirmed" field if the given value is not nil.
func (_u *EmailNotificationUpdateOne) SetNillableAppointmentConfirmed(v *bool) *EmailNotificationUpdateOne {
	if v != nil {
		_u.SetAppointmentConfirmed(*v)
	}
	return _u
}

// Mutation returns the EmailNotificationMutation object of the builder.
func (_u *EmailNotificationUpdateOne) Mutation() *EmailNotificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmailNotificationUpdate builder.
func (_u *EmailNotificationUpdateOne) Where(ps ...predicate.EmailNotification) *EmailNotificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailNotificationUpdateOne) Select(field string, fields ...string) *EmailNotificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailNotification entity.
func (_u *EmailNotificationUpdateOne) Save(ctx context.Context) (*EmailNotification, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailNotificationUpdateOne) SaveX(ctx context.Context) *EmailNotification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailNotificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailNotificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmailNotificationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emailnotification.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *EmailNotificationUpdateOne) sqlSave(ctx context.Context) (_node *EmailNotification, err error) {
	_spec := sqlgraph.NewUpdateSpec(emailnotification.Table, emailnotification.Columns, sqlgraph.NewFieldSpec(emailnotification.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "EmailNotification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emailnotification.FieldID)
		for _, f := range fields {
			if !emailnotification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != emailnotification.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emailnotification.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(emailnotification.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentCreated(); ok {
		_spec.SetField(emailnotification.FieldAppointmentCreated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppointmentUpdated(); ok {
		_spec.SetField(emailnotification.FieldAppointmentUpdated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppointmentCanceled(); ok {
		_spec.SetField(emailnotification.FieldAppointmentCanceled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppointmentReminder(); ok {
		_spec.SetField(emailnotification.FieldAppointmentReminder, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppointmentConfirmed(); ok {
		_spec.SetField(emailnotification.FieldAppointmentConfirmed, field.TypeBool, value)
	}
	_node = &EmailNotification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailnotification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
