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
	"github.com/appointease/appointease_backend/internal/repo/customer"
	"github.com/appointease/appointease_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// CustomerUpdate is the builder for updating Customer entities.
type CustomerUpdate struct {
	config
	hooks    []Hook
	mutation *CustomerMutation
}

// Where appends a list predicates to the CustomerUpdate builder.
func (_u *CustomerUpdate) Where(ps ...predicate.Customer) *CustomerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CustomerUpdate) SetUpdatedAt(v time.Time) *CustomerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CustomerUpdate) SetUserID(v uuid.UUID) *CustomerUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CustomerUpdate) SetNillableUserID(v *uuid.UUID) *CustomerUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *CustomerUpdate) ClearUserID() *CustomerUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *CustomerUpdate) SetProviderID(v uuid.UUID) *CustomerUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *CustomerUpdate) SetNillableProviderID(v *uuid.UUID) *CustomerUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CustomerUpdate) SetName(v string) *CustomerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CustomerUpdate) SetNillableName(v *string) *CustomerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CustomerUpdate) SetEmail(v string) *CustomerUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CustomerUpdate) SetNillableEmail(v *string) *CustomerUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CustomerUpdate) ClearEmail() *CustomerUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CustomerUpdate) SetPhone(v string) *CustomerUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CustomerUpdate) SetNillablePhone(v *string) *CustomerUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CustomerUpdate) ClearPhone() *CustomerUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CustomerUpdate) SetNotes(v string) *CustomerUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CustomerUpdate) SetNillableNotes(v *string) *CustomerUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CustomerUpdate) ClearNotes() *CustomerUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetTotalAppointments sets the "total_appointments" field.
func (_u *CustomerUpdate) SetTotalAppointments(v int) *CustomerUpdate {
	_u.mutation.ResetTotalAppointments()
	_u.mutation.SetTotalAppointments(v)
	return _u
}

// SetNillableTotalAppointments sets the "total_appointments" field if the given value is not nil.
func (_u *CustomerUpdate) SetNillableTotalAppointments(v *int) *CustomerUpdate {
	if v != nil {
		_u.SetTotalAppointments(*v)
	}
	return _u
}

// AddTotalAppointments adds value to the "total_appointments" field.
func (_u *CustomerUpdate) AddTotalAppointments(v int) *CustomerUpdate {
	_u.mutation.AddTotalAppointments(v)
	return _u
}

// SetLastAppointmentAt sets the "last_appointment_at" field.
func (_u *CustomerUpdate) SetLastAppointmentAt(v time.Time) *CustomerUpdate {
	_u.mutation.SetLastAppointmentAt(v)
	return _u
}

// SetNillableLastAppointmentAt sets the "last_appointment_at" field if the given value is not nil.
func (_u *CustomerUpdate) SetNillableLastAppointmentAt(v *time.Time) *CustomerUpdate {
	if v != nil {
		_u.SetLastAppointmentAt(*v)
	}
	return _u
}

// ClearLastAppointmentAt clears the value of the "last_appointment_at" field.
func (_u *CustomerUpdate) ClearLastAppointmentAt() *CustomerUpdate {
	_u.mutation.ClearLastAppointmentAt()
	return _u
}

// Mutation returns the CustomerMutation object of the builder.
func (_u *CustomerUpdate) Mutation() *CustomerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CustomerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CustomerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CustomerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CustomerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CustomerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := customer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CustomerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := customer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Customer.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := customer.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Customer.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := customer.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Customer.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAppointments(); ok {
		if err := customer.TotalAppointmentsValidator(v); err != nil {
			return &ValidationError{Name: "total_appointments", err: fmt.Errorf(`repo: validator failed for field "Customer.total_appointments": %w`, err)}
		}
	}
	return nil
}

func (_u *CustomerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(customer.Table, customer.Columns, sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(customer.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(customer.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(customer.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(customer.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(customer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(customer.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(customer.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(customer.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(customer.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(customer.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(customer.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAppointments(); ok {
		_spec.SetField(customer.FieldTotalAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAppointments(); ok {
		_spec.AddField(customer.FieldTotalAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAppointmentAt(); ok {
		_spec.SetField(customer.FieldLastAppointmentAt, field.TypeTime, value)
	}
	if _u.mutation.LastAppointmentAtCleared() {
		_spec.ClearField(customer.FieldLastAppointmentAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{customer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CustomerUpdateOne is the builder for updating a single Customer entity.
type CustomerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CustomerMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CustomerUpdateOne) SetUpdatedAt(v time.Time) *CustomerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CustomerUpdateOne) SetUserID(v uuid.UUID) *CustomerUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CustomerUpdateOne) SetNillableUserID(v *uuid.UUID) *CustomerUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *CustomerUpdateOne) ClearUserID() *CustomerUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *CustomerUpdateOne) SetProviderID(v uuid.UUID) *CustomerUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *CustomerUpdateOne) SetNillableProviderID(v *uuid.UUID) *CustomerUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CustomerUpdateOne) SetName(v string) *CustomerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CustomerUpdateOne) SetNillableName(v *string) *CustomerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CustomerUpdateOne) SetEmail(v string) *CustomerUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CustomerUpdateOne) SetNillableEmail(v *string) *CustomerUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CustomerUpdateOne) ClearEmail() *CustomerUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CustomerUpdateOne) SetPhone(v string) *CustomerUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CustomerUpdateOne) SetNillablePhone(v *string) *CustomerUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CustomerUpdateOne) ClearPhone() *CustomerUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CustomerUpdateOne) SetNotes(v string) *CustomerUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CustomerUpdateOne) SetNillableNotes(v *string) *CustomerUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CustomerUpdateOne) ClearNotes() *CustomerUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetTotalAppointments sets the "total_appointments" field.
func (_u *CustomerUpdateOne) SetTotalAppointments(v int) *CustomerUpdateOne {
	_u.mutation.ResetTotalAppointments()
	_u.mutation.SetTotalAppointments(v)
	return _u
}

// SetNillableTotalAppointments sets the "total_appointments" field if the given value is not nil.
func (_u *CustomerUpdateOne) SetNillableTotalAppointments(v *int) *CustomerUpdateOne {
	if v != nil {
		_u.SetTotalAppointments(*v)
	}
	return _u
}

// AddTotalAppointments adds value to the "total_appointments" field.
func (_u *CustomerUpdateOne) AddTotalAppointments(v int) *CustomerUpdateOne {
	_u.mutation.AddTotalAppointments(v)
	return _u
}

// SetLastAppointmentAt sets the "last_appointment_at" field.
func (_u *CustomerUpdateOne) SetLastAppointmentAt(v time.Time) *CustomerUpdateOne {
	_u.mutation.SetLastAppointmentAt(v)
	return _u
}

// SetNillableLastAppointmentAt sets the "last_appointment_at" field if the given value is not nil.
func (_u *CustomerUpdateOne) SetNillableLastAppointmentAt(v *time.Time) *CustomerUpdateOne {
	if v != nil {
		_u.SetLastAppointmentAt(*v)
	}
	return _u
}

// ClearLastAppointmentAt clears the value of the "last_appointment_at" field.
func (_u *CustomerUpdateOne) ClearLastAppointmentAt() *CustomerUpdateOne {
	_u.mutation.ClearLastAppointmentAt()
	return _u
}

// Mutation returns the CustomerMutation object of the builder.
func (_u *CustomerUpdateOne) Mutation() *CustomerMutation {
	return _u.mutation
}

// Where appends a list predicates to the CustomerUpdate builder.
func (_u *CustomerUpdateOne) Where(ps ...predicate.Customer) *CustomerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CustomerUpdateOne) Select(field string, fields ...string) *CustomerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Customer entity.
func (_u *CustomerUpdateOne) Save(ctx context.Context) (*Customer, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CustomerUpdateOne) SaveX(ctx context.Context) *Customer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CustomerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CustomerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CustomerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := customer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CustomerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := customer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Customer.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := customer.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Customer.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := customer.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Customer.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAppointments(); ok {
		if err := customer.TotalAppointmentsValidator(v); err != nil {
			return &ValidationError{Name: "total_appointments", err: fmt.Errorf(`repo: validator failed for field "Customer.total_appointments": %w`, err)}
		}
	}
	return nil
}

func (_u *CustomerUpdateOne) sqlSave(ctx context.Context) (_node *Customer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(customer.Table, customer.Columns, sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Customer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, customer.FieldID)
		for _, f := range fields {
			if !customer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != customer.FieldID {
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
		_spec.SetField(customer.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(customer.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(customer.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(customer.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(customer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(customer.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(customer.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(customer.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(customer.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(customer.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(customer.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAppointments(); ok {
		_spec.SetField(customer.FieldTotalAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAppointments(); ok {
		_spec.AddField(customer.FieldTotalAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAppointmentAt(); ok {
		_spec.SetField(customer.FieldLastAppointmentAt, field.TypeTime, value)
	}
	if _u.mutation.LastAppointmentAtCleared() {
		_spec.ClearField(customer.FieldLastAppointmentAt, field.TypeTime)
	}
	_node = &Customer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{customer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
