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
	"github.com/appointease/appointease_backend/internal/repo/businesshour"
	"github.com/appointease/appointease_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// BusinessHourUpdate is the builder for updating BusinessHour entities.
type BusinessHourUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessHourMutation
}

// Where appends a list predicates to the BusinessHourUpdate builder.
func (_u *BusinessHourUpdate) Where(ps ...predicate.BusinessHour) *BusinessHourUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessHourUpdate) SetUpdatedAt(v time.Time) *BusinessHourUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *BusinessHourUpdate) SetProviderID(v uuid.UUID) *BusinessHourUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *BusinessHourUpdate) SetNillableProviderID(v *uuid.UUID) *BusinessHourUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *BusinessHourUpdate) SetDayOfWeek(v int) *BusinessHourUpdate {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *BusinessHourUpdate) SetNillableDayOfWeek(v *int) *BusinessHourUpdate {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *BusinessHourUpdate) AddDayOfWeek(v int) *BusinessHourUpdate {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetOpenTime sets the "open_time" field.
func (_u *BusinessHourUpdate) SetOpenTime(v string) *BusinessHourUpdate {
	_u.mutation.SetOpenTime(v)
	return _u
}

// SetNillableOpenTime sets the "open_time" field if the given value is not nil.
func (_u *BusinessHourUpdate) SetNillableOpenTime(v *string) *BusinessHourUpdate {
	if v != nil {
		_u.SetOpenTime(*v)
	}
	return _u
}

// SetCloseTime sets the "close_time" field.
func (_u *BusinessHourUpdate) SetCloseTime(v string) *BusinessHourUpdate {
	_u.mutation.SetCloseTime(v)
	return _u
}

// SetNillableCloseTime sets the "close_time" field if the given value is not nil.
func (_u *BusinessHourUpdate) SetNillableCloseTime(v *string) *BusinessHourUpdate {
	if v != nil {
		_u.SetCloseTime(*v)
	}
	return _u
}

// SetClosed sets the "closed" field.
func (_u *BusinessHourUpdate) SetClosed(v bool) *BusinessHourUpdate {
	_u.mutation.SetClosed(v)
	return _u
}

// SetNillableClosed sets the "closed" field if the given value is not nil.
func (_u *BusinessHourUpdate) SetNillableClosed(v *bool) *BusinessHourUpdate {
	if v != nil {
		_u.SetClosed(*v)
	}
	return _u
}

// Mutation returns the BusinessHourMutation object of the builder.
func (_u *BusinessHourUpdate) Mutation() *BusinessHourMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessHourUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessHourUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessHourUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessHourUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessHourUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businesshour.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessHourUpdate) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := businesshour.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "BusinessHour.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OpenTime(); ok {
		if err := businesshour.OpenTimeValidator(v); err != nil {
			return &ValidationError{Name: "open_time", err: fmt.Errorf(`repo: validator failed for field "BusinessHour.open_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CloseTime(); ok {
		if err := businesshour.CloseTimeValidator(v); err != nil {
			return &ValidationError{Name: "close_time", err: fmt.Errorf(`repo: validator failed for field "BusinessHour.close_time": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessHourUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businesshour.Table, businesshour.Columns, sqlgraph.NewFieldSpec(businesshour.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(businesshour.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(businesshour.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(businesshour.FieldDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(businesshour.FieldDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpenTime(); ok {
		_spec.SetField(businesshour.FieldOpenTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.CloseTime(); ok {
		_spec.SetField(businesshour.FieldCloseTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Closed(); ok {
		_spec.SetField(businesshour.FieldClosed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businesshour.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessHourUpdateOne is the builder for updating a single BusinessHour entity.
type BusinessHourUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessHourMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessHourUpdateOne) SetUpdatedAt(v time.Time) *BusinessHourUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *BusinessHourUpdateOne) SetProviderID(v uuid.UUID) *BusinessHourUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *BusinessHourUpdateOne) SetNillableProviderID(v *uuid.UUID) *BusinessHourUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *BusinessHourUpdateOne) SetDayOfWeek(v int) *BusinessHourUpdateOne {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *BusinessHourUpdateOne) SetNillableDayOfWeek(v *int) *BusinessHourUpdateOne {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *BusinessHourUpdateOne) AddDayOfWeek(v int) *BusinessHourUpdateOne {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetOpenTime sets the "open_time" field.
func (_u *BusinessHourUpdateOne) SetOpenTime(v string) *BusinessHourUpdateOne {
	_u.mutation.SetOpenTime(v)
	return _u
}

// SetNillableOpenTime sets the "open_time" field if the given value is not nil.
func (_u *BusinessHourUpdateOne) SetNillableOpenTime(v *string) *BusinessHourUpdateOne {
	if v != nil {
		_u.SetOpenTime(*v)
	}
	return _u
}

// SetCloseTime sets the "close_time" field.
func (_u *BusinessHourUpdateOne) SetCloseTime(v string) *BusinessHourUpdateOne {
	_u.mutation.SetCloseTime(v)
	return _u
}

// SetNillableCloseTime sets the "close_time" field if the given value is not nil.
func (_u *BusinessHourUpdateOne) SetNillableCloseTime(v *string) *BusinessHourUpdateOne {
	if v != nil {
		_u.SetCloseTime(*v)
	}
	return _u
}

// SetClosed sets the "closed" field.
func (_u *BusinessHourUpdateOne) SetClosed(v bool) *BusinessHourUpdateOne {
	_u.mutation.SetClosed(v)
	return _u
}

// SetNillableClosed sets the "closed" field if the given value is not nil.
func (_u *BusinessHourUpdateOne) SetNillableClosed(v *bool) *BusinessHourUpdateOne {
	if v != nil {
		_u.SetClosed(*v)
	}
	return _u
}

// Mutation returns the BusinessHourMutation object of the builder.
func (_u *BusinessHourUpdateOne) Mutation() *BusinessHourMutation {
	return _u.mutation
}

// Where appends a list predicates to the BusinessHourUpdate builder.
func (_u *BusinessHourUpdateOne) Where(ps ...predicate.BusinessHour) *BusinessHourUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessHourUpdateOne) Select(field string, fields ...string) *BusinessHourUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusinessHour entity.
func (_u *BusinessHourUpdateOne) Save(ctx context.Context) (*BusinessHour, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessHourUpdateOne) SaveX(ctx context.Context) *BusinessHour {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessHourUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessHourUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessHourUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businesshour.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessHourUpdateOne) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := businesshour.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "BusinessHour.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OpenTime(); ok {
		if err := businesshour.OpenTimeValidator(v); err != nil {
			return &ValidationError{Name: "open_time", err: fmt.Errorf(`repo: validator failed for field "BusinessHour.open_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CloseTime(); ok {
		if err := businesshour.CloseTimeValidator(v); err != nil {
			return &ValidationError{Name: "close_time", err: fmt.Errorf(`repo: validator failed for field "BusinessHour.close_time": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessHourUpdateOne) sqlSave(ctx context.Context) (_node *BusinessHour, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businesshour.Table, businesshour.Columns, sqlgraph.NewFieldSpec(businesshour.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BusinessHour.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, businesshour.FieldID)
		for _, f := range fields {
			if !businesshour.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != businesshour.FieldID {
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
		_spec.SetField(businesshour.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(businesshour.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(businesshour.FieldDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(businesshour.FieldDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpenTime(); ok {
		_spec.SetField(businesshour.FieldOpenTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.CloseTime(); ok {
		_spec.SetField(businesshour.FieldCloseTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Closed(); ok {
		_spec.SetField(businesshour.FieldClosed, field.TypeBool, value)
	}
	_node = &BusinessHour{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businesshour.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
