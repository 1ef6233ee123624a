// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/appointease/appointease_backend/internal/repo/emaillog"
	"github.com/appointease/appointease_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// EmailLogUpdate is the builder for updating EmailLog entities.
type EmailLogUpdate struct {
	config
	hooks    []Hook
	mutation *EmailLogMutation
}

// Where appends a list predicates to the EmailLogUpdate builder.
func (_u *EmailLogUpdate) Where(ps ...predicate.EmailLog) *EmailLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EmailLogUpdate) SetUserID(v uuid.UUID) *EmailLogUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableUserID(v *uuid.UUID) *EmailLogUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *EmailLogUpdate) ClearUserID() *EmailLogUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetRecipient sets the "recipient" field.
func (_u *EmailLogUpdate) SetRecipient(v string) *EmailLogUpdate {
	_u.mutation.SetRecipient(v)
	return _u
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableRecipient(v *string) *EmailLogUpdate {
	if v != nil {
		_u.SetRecipient(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailLogUpdate) SetSubject(v string) *EmailLogUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableSubject(v *string) *EmailLogUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *EmailLogUpdate) SetContent(v string) *EmailLogUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableContent(v *string) *EmailLogUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *EmailLogUpdate) SetType(v string) *EmailLogUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableType(v *string) *EmailLogUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *EmailLogUpdate) SetAppointmentID(v uuid.UUID) *EmailLogUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableAppointmentID(v *uuid.UUID) *EmailLogUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *EmailLogUpdate) ClearAppointmentID() *EmailLogUpdate {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EmailLogUpdate) SetStatus(v emaillog.Status) *EmailLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableStatus(v *emaillog.Status) *EmailLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *EmailLogUpdate) SetError(v string) *EmailLogUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableError(v *string) *EmailLogUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *EmailLogUpdate) ClearError() *EmailLogUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the EmailLogMutation object of the builder.
func (_u *EmailLogUpdate) Mutation() *EmailLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailLogUpdate) check() error {
	if v, ok := _u.mutation.Recipient(); ok {
		if err := emaillog.RecipientValidator(v); err != nil {
			return &ValidationError{Name: "recipient", err: fmt.Errorf(`repo: validator failed for field "EmailLog.recipient": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := emaillog.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "EmailLog.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := emaillog.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "EmailLog.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := emaillog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "EmailLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EmailLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emaillog.Table, emaillog.Columns, sqlgraph.NewFieldSpec(emaillog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(emaillog.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(emaillog.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Recipient(); ok {
		_spec.SetField(emaillog.FieldRecipient, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emaillog.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(emaillog.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(emaillog.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(emaillog.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(emaillog.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(emaillog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(emaillog.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(emaillog.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emaillog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailLogUpdateOne is the builder for updating a single EmailLog entity.
type EmailLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailLogMutation
}

// SetUserID sets the "user_id" field.
func (_u *EmailLogUpdateOne) SetUserID(v uuid.UUID) *EmailLogUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableUserID(v *uuid.UUID) *EmailLogUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *EmailLogUpdateOne) ClearUserID() *EmailLogUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetRecipient sets the "recipient" field.
func (_u *EmailLogUpdateOne) SetRecipient(v string) *EmailLogUpdateOne {
	_u.mutation.SetRecipient(v)
	return _u
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableRecipient(v *string) *EmailLogUpdateOne {
	if v != nil {
		_u.SetRecipient(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailLogUpdateOne) SetSubject(v string) *EmailLogUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableSubject(v *string) *EmailLogUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *EmailLogUpdateOne) SetContent(v string) *EmailLogUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableContent(v *string) *EmailLogUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *EmailLogUpdateOne) SetType(v string) *EmailLogUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableType(v *string) *EmailLogUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *EmailLogUpdateOne) SetAppointmentID(v uuid.UUID) *EmailLogUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *EmailLogUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *EmailLogUpdateOne) ClearAppointmentID() *EmailLogUpdateOne {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EmailLogUpdateOne) SetStatus(v emaillog.Status) *EmailLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableStatus(v *emaillog.Status) *EmailLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *EmailLogUpdateOne) SetError(v string) *EmailLogUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableError(v *string) *EmailLogUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *EmailLogUpdateOne) ClearError() *EmailLogUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the EmailLogMutation object of the builder.
func (_u *EmailLogUpdateOne) Mutation() *EmailLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmailLogUpdate builder.
func (_u *EmailLogUpdateOne) Where(ps ...predicate.EmailLog) *EmailLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailLogUpdateOne) Select(field string, fields ...string) *EmailLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailLog entity.
func (_u *EmailLogUpdateOne) Save(ctx context.Context) (*EmailLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailLogUpdateOne) SaveX(ctx context.Context) *EmailLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailLogUpdateOne) check() error {
	if v, ok := _u.mutation.Recipient(); ok {
		if err := emaillog.RecipientValidator(v); err != nil {
			return &ValidationError{Name: "recipient", err: fmt.Errorf(`repo: validator failed for field "EmailLog.recipient": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := emaillog.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "EmailLog.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := emaillog.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "EmailLog.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := emaillog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "EmailLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EmailLogUpdateOne) sqlSave(ctx context.Context) (_node *EmailLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emaillog.Table, emaillog.Columns, sqlgraph.NewFieldSpec(emaillog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "EmailLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emaillog.FieldID)
		for _, f := range fields {
			if !emaillog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != emaillog.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(emaillog.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(emaillog.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Recipient(); ok {
		_spec.SetField(emaillog.FieldRecipient, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emaillog.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(emaillog.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(emaillog.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(emaillog.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(emaillog.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(emaillog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(emaillog.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(emaillog.FieldError, field.TypeString)
	}
	_node = &EmailLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emaillog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
