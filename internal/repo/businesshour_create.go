// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/appointease/appointease_backend/internal/repo/businesshour"
	"github.com/google/uuid"
)

// BusinessHourCreate is the builder for creating a BusinessHour entity.
type BusinessHourCreate struct {
	config
	mutation *BusinessHourMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BusinessHourCreate) SetCreatedAt(v time.Time) *BusinessHourCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BusinessHourCreate) SetNillableCreatedAt(v *time.Time) *BusinessHourCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BusinessHourCreate) SetUpdatedAt(v time.Time) *BusinessHourCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BusinessHourCreate) SetNillableUpdatedAt(v *time.Time) *BusinessHourCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetProviderID sets the "provider_id" field.
func (_c *BusinessHourCreate) SetProviderID(v uuid.UUID) *BusinessHourCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetDayOfWeek sets the "day_of_week" field.
func (_c *BusinessHourCreate) SetDayOfWeek(v int) *BusinessHourCreate {
	_c.mutation.SetDayOfWeek(v)
	return _c
}

// SetOpenTime sets the "open_time" field.
func (_c *BusinessHourCreate) SetOpenTime(v string) *BusinessHourCreate {
	_c.mutation.SetOpenTime(v)
	return _c
}

// SetCloseTime sets the "close_time" field.
func (_c *BusinessHourCreate) SetCloseTime(v string) *BusinessHourCreate {
	_c.mutation.SetCloseTime(v)
	return _c
}

// SetClosed sets the "closed" field.
func (_c *BusinessHourCreate) SetClosed(v bool) *BusinessHourCreate {
	_c.mutation.SetClosed(v)
	return _c
}

// SetNillableClosed sets the "closed" field if the given value is not nil.
func (_c *BusinessHourCreate) SetNillableClosed(v *bool) *BusinessHourCreate {
	if v != nil {
		_c.SetClosed(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BusinessHourCreate) SetID(v uuid.UUID) *BusinessHourCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BusinessHourCreate) SetNillableID(v *uuid.UUID) *BusinessHourCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BusinessHourMutation object of the builder.
func (_c *BusinessHourCreate) Mutation() *BusinessHourMutation {
	return _c.mutation
}

// Save creates the BusinessHour in the database.
func (_c *BusinessHourCreate) Save(ctx context.Context) (*BusinessHour, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessHourCreate) SaveX(ctx context.Context) *BusinessHour {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessHourCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessHourCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusinessHourCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := businesshour.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := businesshour.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Closed(); !ok {
		v := businesshour.DefaultClosed
		_c.mutation.SetClosed(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := businesshour.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessHourCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "BusinessHour.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "BusinessHour.updated_at"`)}
	}
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`repo: missing required field "BusinessHour.provider_id"`)}
	}
	if _, ok := _c.mutation.DayOfWeek(); !ok {
		return &ValidationError{Name: "day_of_week", err: errors.New(`repo: missing required field "BusinessHour.day_of_week"`)}
	}
	if v, ok := _c.mutation.DayOfWeek(); ok {
		if err := businesshour.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "BusinessHour.day_of_week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OpenTime(); !ok {
		return &ValidationError{Name: "open_time", err: errors.New(`repo: missing required field "BusinessHour.open_time"`)}
	}
	if v, ok := _c.mutation.OpenTime(); ok {
		if err := businesshour.OpenTimeValidator(v); err != nil {
			return &ValidationError{Name: "open_time", err: fmt.Errorf(`repo: validator failed for field "BusinessHour.open_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CloseTime(); !ok {
		return &ValidationError{Name: "close_time", err: errors.New(`repo: missing required field "BusinessHour.close_time"`)}
	}
	if v, ok := _c.mutation.CloseTime(); ok {
		if err := businesshour.CloseTimeValidator(v); err != nil {
			return &ValidationError{Name: "close_time", err: fmt.Errorf(`repo: validator failed for field "BusinessHour.close_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Closed(); !ok {
		return &ValidationError{Name: "closed", err: errors.New(`repo: missing required field "BusinessHour.closed"`)}
	}
	return nil
}

func (_c *BusinessHourCreate) sqlSave(ctx context.Context) (*BusinessHour, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BusinessHourCreate) createSpec() (*BusinessHour, *sqlgraph.CreateSpec) {
	var (
		_node = &BusinessHour{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(businesshour.Table, sqlgraph.NewFieldSpec(businesshour.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(businesshour.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(businesshour.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ProviderID(); ok {
		_spec.SetField(businesshour.FieldProviderID, field.TypeUUID, value)
		_node.ProviderID = value
	}
	if value, ok := _c.mutation.DayOfWeek(); ok {
		_spec.SetField(businesshour.FieldDayOfWeek, field.TypeInt, value)
		_node.DayOfWeek = value
	}
	if value, ok := _c.mutation.OpenTime(); ok {
		_spec.SetField(businesshour.FieldOpenTime, field.TypeString, value)
		_node.OpenTime = value
	}
	if value, ok := _c.mutation.CloseTime(); ok {
		_spec.SetField(businesshour.FieldCloseTime, field.TypeString, value)
		_node.CloseTime = value
	}
	if value, ok := _c.mutation.Closed(); ok {
		_spec.SetField(businesshour.FieldClosed, field.TypeBool, value)
		_node.Closed = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BusinessHour.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BusinessHourUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BusinessHourCreate) OnConflict(opts ...sql.ConflictOption) *BusinessHourUpsertOne {
	_c.conflict = opts
	return &BusinessHourUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BusinessHour.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BusinessHourCreate) OnConflictColumns(columns ...string) *BusinessHourUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BusinessHourUpsertOne{
		create: _c,
	}
}

type (
	// BusinessHourUpsertOne is the builder for "upsert"-ing
	//  one BusinessHour node.
	BusinessHourUpsertOne struct {
		create *BusinessHourCreate
	}

	// BusinessHourUpsert is the "OnConflict" setter.
	BusinessHourUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *BusinessHourUpsert) SetUpdatedAt(v time.Time) *BusinessHourUpsert {
	u.Set(businesshour.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BusinessHourUpsert) UpdateUpdatedAt() *BusinessHourUpsert {
	u.SetExcluded(businesshour.FieldUpdatedAt)
	return u
}

// SetProviderID sets the "provider_id" field.
func (u *BusinessHourUpsert) SetProviderID(v uuid.UUID) *BusinessHourUpsert {
	u.Set(businesshour.FieldProviderID, v)
	return u
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *BusinessHourUpsert) UpdateProviderID() *BusinessHourUpsert {
	u.SetExcluded(businesshour.FieldProviderID)
	return u
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *BusinessHourUpsert) SetDayOfWeek(v int) *BusinessHourUpsert {
	u.Set(businesshour.FieldDayOfWeek, v)
	return u
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *BusinessHourUpsert) UpdateDayOfWeek() *BusinessHourUpsert {
	u.SetExcluded(businesshour.FieldDayOfWeek)
	return u
}

// AddDayOfWeek adds v to the "day_of_week" field.
func (u *BusinessHourUpsert) AddDayOfWeek(v int) *BusinessHourUpsert {
	u.Add(businesshour.FieldDayOfWeek, v)
	return u
}

// SetOpenTime sets the "open_time" field.
func (u *BusinessHourUpsert) SetOpenTime(v string) *BusinessHourUpsert {
	u.Set(businesshour.FieldOpenTime, v)
	return u
}

// UpdateOpenTime sets the "open_time" field to the value that was provided on create.
func (u *BusinessHourUpsert) UpdateOpenTime() *BusinessHourUpsert {
	u.SetExcluded(businesshour.FieldOpenTime)
	return u
}

// SetCloseTime sets the "close_time" field.
func (u *BusinessHourUpsert) SetCloseTime(v string) *BusinessHourUpsert {
	u.Set(businesshour.FieldCloseTime, v)
	return u
}

// UpdateCloseTime sets the "close_time" field to the value that was provided on create.
func (u *BusinessHourUpsert) UpdateCloseTime() *BusinessHourUpsert {
	u.SetExcluded(businesshour.FieldCloseTime)
	return u
}

// SetClosed sets the "closed" field.
func (u *BusinessHourUpsert) SetClosed(v bool) *BusinessHourUpsert {
	u.Set(businesshour.FieldClosed, v)
	return u
}

// UpdateClosed sets the "closed" field to the value that was provided on create.
func (u *BusinessHourUpsert) UpdateClosed() *BusinessHourUpsert {
	u.SetExcluded(businesshour.FieldClosed)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BusinessHour.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(businesshour.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BusinessHourUpsertOne) UpdateNewValues() *BusinessHourUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(businesshour.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(businesshour.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BusinessHour.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BusinessHourUpsertOne) Ignore() *BusinessHourUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BusinessHourUpsertOne) DoNothing() *BusinessHourUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BusinessHourCreate.OnConflict
// documentation for more info.
func (u *BusinessHourUpsertOne) Update(set func(*BusinessHourUpsert)) *BusinessHourUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BusinessHourUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BusinessHourUpsertOne) SetUpdatedAt(v time.Time) *BusinessHourUpsertOne {
	return u.Update(func(s *BusinessHourUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BusinessHourUpsertOne) UpdateUpdatedAt() *BusinessHourUpsertOne {
	return u.Update(func(s *BusinessHourUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *BusinessHourUpsertOne) SetProviderID(v uuid.UUID) *BusinessHourUpsertOne {
	return u.Update(func(s *BusinessHourUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *BusinessHourUpsertOne) UpdateProviderID() *BusinessHourUpsertOne {
	return u.Update(func(s *BusinessHourUpsert) {
		s.UpdateProviderID()
	})
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *BusinessHourUpsertOne) SetDayOfWeek(v int) *BusinessHourUpsertOne {
	return u.Update(func(s *BusinessHourUpsert) {
		s.SetDayOfWeek(v)
	})
}

// AddDayOfWeek adds v to the "day_of_week" field.
func (u *BusinessHourUpsertOne) AddDayOfWeek(v int) *BusinessHourUpsertOne {
	return u.Update(func(s *BusinessHourUpsert) {
		s.AddDayOfWeek(v)
	})
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *BusinessHourUpsertOne) UpdateDayOfWeek() *BusinessHourUpsertOne {
	return u.Update(func(s *BusinessHourUpsert) {
		s.UpdateDayOfWeek()
	})
}

// SetOpenTime sets the "open_time" field.
func (u *BusinessHourUpsertOne) SetOpenTime(v string) *BusinessHourUpsertOne {
	return u.Update(func(s *BusinessHourUpsert) {
		s.SetOpenTime(v)
	})
}

// UpdateOpenTime sets the "open_time" field to the value that was provided on create.
func (u *BusinessHourUpsertOne) UpdateOpenTime() *BusinessHourUpsertOne {
	return u.Update(func(s *BusinessHourUpsert) {
		s.UpdateOpenTime()
	})
}

// SetCloseTime sets the "close_time" field.
func (u *BusinessHourUpsertOne) SetCloseTime(v string) *BusinessHourUpsertOne {
	return u.Update(func(s *BusinessHourUpsert) {
		s.SetCloseTime(v)
	})
}

// UpdateCloseTime sets the "close_time" field to the value that was provided on create.
func (u *BusinessHourUpsertOne) UpdateCloseTime() *BusinessHourUpsertOne {
	return u.Update(func(s *BusinessHourUpsert) {
		s.UpdateCloseTime()
	})
}

// SetClosed sets the "closed" field.
func (u *BusinessHourUpsertOne) SetClosed(v bool) *BusinessHourUpsertOne {
	return u.Update(func(s *BusinessHourUpsert) {
		s.SetClosed(v)
	})
}

// UpdateClosed sets the "closed" field to the value that was provided on create.
func (u *BusinessHourUpsertOne) UpdateClosed() *BusinessHourUpsertOne {
	return u.Update(func(s *BusinessHourUpsert) {
		s.UpdateClosed()
	})
}

// Exec executes the query.
func (u *BusinessHourUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BusinessHourCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BusinessHourUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BusinessHourUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: BusinessHourUpsertOne.ID is not supported by MySQL driver. Use BusinessHourUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BusinessHourUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BusinessHourCreateBulk is the builder for creating many BusinessHour entities in bulk.
type BusinessHourCreateBulk struct {
	config
	err      error
	builders []*BusinessHourCreate
	conflict []sql.ConflictOption
}

// Save creates the BusinessHour entities in the database.
func (_c *BusinessHourCreateBulk) Save(ctx context.Context) ([]*BusinessHour, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusinessHour, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessHourMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BusinessHourCreateBulk) SaveX(ctx context.Context) []*BusinessHour {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessHourCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessHourCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BusinessHour.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BusinessHourUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BusinessHourCreateBulk) OnConflict(opts ...sql.ConflictOption) *BusinessHourUpsertBulk {
	_c.conflict = opts
	return &BusinessHourUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BusinessHour.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BusinessHourCreateBulk) OnConflictColumns(columns ...string) *BusinessHourUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BusinessHourUpsertBulk{
		create: _c,
	}
}

// BusinessHourUpsertBulk is the builder for "upsert"-ing
// a bulk of BusinessHour nodes.
type BusinessHourUpsertBulk struct {
	create *BusinessHourCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BusinessHour.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(businesshour.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BusinessHourUpsertBulk) UpdateNewValues() *BusinessHourUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(businesshour.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(businesshour.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BusinessHour.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BusinessHourUpsertBulk) Ignore() *BusinessHourUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BusinessHourUpsertBulk) DoNothing() *BusinessHourUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BusinessHourCreateBulk.OnConflict
// documentation for more info.
func (u *BusinessHourUpsertBulk) Update(set func(*BusinessHourUpsert)) *BusinessHourUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BusinessHourUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BusinessHourUpsertBulk) SetUpdatedAt(v time.Time) *BusinessHourUpsertBulk {
	return u.Update(func(s *BusinessHourUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BusinessHourUpsertBulk) UpdateUpdatedAt() *BusinessHourUpsertBulk {
	return u.Update(func(s *BusinessHourUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *BusinessHourUpsertBulk) SetProviderID(v uuid.UUID) *BusinessHourUpsertBulk {
	return u.Update(func(s *BusinessHourUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *BusinessHourUpsertBulk) UpdateProviderID() *BusinessHourUpsertBulk {
	return u.Update(func(s *BusinessHourUpsert) {
		s.UpdateProviderID()
	})
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *BusinessHourUpsertBulk) SetDayOfWeek(v int) *BusinessHourUpsertBulk {
	return u.Update(func(s *BusinessHourUpsert) {
		s.SetDayOfWeek(v)
	})
}

// AddDayOfWeek adds v to the "day_of_week" field.
func (u *BusinessHourUpsertBulk) AddDayOfWeek(v int) *BusinessHourUpsertBulk {
	return u.Update(func(s *BusinessHourUpsert) {
		s.AddDayOfWeek(v)
	})
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *BusinessHourUpsertBulk) UpdateDayOfWeek() *BusinessHourUpsertBulk {
	return u.Update(func(s *BusinessHourUpsert) {
		s.UpdateDayOfWeek()
	})
}

// SetOpenTime sets the "open_time" field.
func (u *BusinessHourUpsertBulk) SetOpenTime(v string) *BusinessHourUpsertBulk {
	return u.Update(func(s *BusinessHourUpsert) {
		s.SetOpenTime(v)
	})
}

// UpdateOpenTime sets the "open_time" field to the value that was provided on create.
func (u *BusinessHourUpsertBulk) UpdateOpenTime() *BusinessHourUpsertBulk {
	return u.Update(func(s *BusinessHourUpsert) {
		s.UpdateOpenTime()
	})
}

// SetCloseTime sets the "close_time" field.
func (u *BusinessHourUpsertBulk) SetCloseTime(v string) *BusinessHourUpsertBulk {
	return u.Update(func(s *BusinessHourUpsert) {
		s.SetCloseTime(v)
	})
}

// UpdateCloseTime sets the "close_time" field to the value that was provided on create.
func (u *BusinessHourUpsertBulk) UpdateCloseTime() *BusinessHourUpsertBulk {
	return u.Update(func(s *BusinessHourUpsert) {
		s.UpdateCloseTime()
	})
}

// SetClosed sets the "closed" field.
func (u *BusinessHourUpsertBulk) SetClosed(v bool) *BusinessHourUpsertBulk {
	return u.Update(func(s *BusinessHourUpsert) {
		s.SetClosed(v)
	})
}

// UpdateClosed sets the "closed" field to the value that was provided on create.
func (u *BusinessHourUpsertBulk) UpdateClosed() *BusinessHourUpsertBulk {
	return u.Update(func(s *BusinessHourUpsert) {
		s.UpdateClosed()
	})
}

// Exec executes the query.
func (u *BusinessHourUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the BusinessHourCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BusinessHourCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BusinessHourUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
