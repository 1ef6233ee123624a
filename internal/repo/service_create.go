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
	"github.com/appointease/appointease_backend/internal/repo/service"
	"github.com/google/uuid"
)

// ServiceCreate is the builder for creating a Service entity.
type ServiceCreate struct {
	config
	mutation *ServiceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServiceCreate) SetCreatedAt(v time.Time) *ServiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableCreatedAt(v *time.Time) *ServiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ServiceCreate) SetUpdatedAt(v time.Time) *ServiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableUpdatedAt(v *time.Time) *ServiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetProviderID sets the "provider_id" field.
func (_c *ServiceCreate) SetProviderID(v uuid.UUID) *ServiceCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ServiceCreate) SetName(v string) *ServiceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ServiceCreate) SetDescription(v string) *ServiceCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableDescription(v *string) *ServiceCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *ServiceCreate) SetDurationMinutes(v int) *ServiceCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetPriceCents sets the "price_cents" field.
func (_c *ServiceCreate) SetPriceCents(v int64) *ServiceCreate {
	_c.mutation.SetPriceCents(v)
	return _c
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_c *ServiceCreate) SetNillablePriceCents(v *int64) *ServiceCreate {
	if v != nil {
		_c.SetPriceCents(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ServiceCreate) SetActive(v bool) *ServiceCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableActive(v *bool) *ServiceCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServiceCreate) SetID(v uuid.UUID) *ServiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServiceCreate) SetNillableID(v *uuid.UUID) *ServiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ServiceMutation object of the builder.
func (_c *ServiceCreate) Mutation() *ServiceMutation {
	return _c.mutation
}

// Save creates the Service in the database.
func (_c *ServiceCreate) Save(ctx context.Context) (*Service, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceCreate) SaveX(ctx context.Context) *Service {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := service.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := service.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.PriceCents(); !ok {
		v := service.DefaultPriceCents
		_c.mutation.SetPriceCents(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := service.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := service.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Service.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Service.updated_at"`)}
	}
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`repo: missing required field "Service.provider_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Service.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := service.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Service.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "Service.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := service.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "Service.duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriceCents(); !ok {
		return &ValidationError{Name: "price_cents", err: errors.New(`repo: missing required field "Service.price_cents"`)}
	}
	if v, ok := _c.mutation.PriceCents(); ok {
		if err := service.PriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_cents", err: fmt.Errorf(`repo: validator failed for field "Service.price_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`repo: missing required field "Service.active"`)}
	}
	return nil
}

func (_c *ServiceCreate) sqlSave(ctx context.Context) (*Service, error) {
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

func (_c *ServiceCreate) createSpec() (*Service, *sqlgraph.CreateSpec) {
	var (
		_node = &Service{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(service.Table, sqlgraph.NewFieldSpec(service.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(service.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(service.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ProviderID(); ok {
		_spec.SetField(service.FieldProviderID, field.TypeUUID, value)
		_node.ProviderID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(service.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(service.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(service.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.PriceCents(); ok {
		_spec.SetField(service.FieldPriceCents, field.TypeInt64, value)
		_node.PriceCents = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(service.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Service.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ServiceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ServiceCreate) OnConflict(opts ...sql.ConflictOption) *ServiceUpsertOne {
	_c.conflict = opts
	return &ServiceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Service.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ServiceCreate) OnConflictColumns(columns ...string) *ServiceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ServiceUpsertOne{
		create: _c,
	}
}

type (
	// ServiceUpsertOne is the builder for "upsert"-ing
	//  one Service node.
	ServiceUpsertOne struct {
		create *ServiceCreate
	}

	// ServiceUpsert is the "OnConflict" setter.
	ServiceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ServiceUpsert) SetUpdatedAt(v time.Time) *ServiceUpsert {
	u.Set(service.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ServiceUpsert) UpdateUpdatedAt() *ServiceUpsert {
	u.SetExcluded(service.FieldUpdatedAt)
	return u
}

// SetProviderID sets the "provider_id" field.
func (u *ServiceUpsert) SetProviderID(v uuid.UUID) *ServiceUpsert {
	u.Set(service.FieldProviderID, v)
	return u
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *ServiceUpsert) UpdateProviderID() *ServiceUpsert {
	u.SetExcluded(service.FieldProviderID)
	return u
}

// SetName sets the "name" field.
func (u *ServiceUpsert) SetName(v string) *ServiceUpsert {
	u.Set(service.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ServiceUpsert) UpdateName() *ServiceUpsert {
	u.SetExcluded(service.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *ServiceUpsert) SetDescription(v string) *ServiceUpsert {
	u.Set(service.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ServiceUpsert) UpdateDescription() *ServiceUpsert {
	u.SetExcluded(service.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ServiceUpsert) ClearDescription() *ServiceUpsert {
	u.SetNull(service.FieldDescription)
	return u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *ServiceUpsert) SetDurationMinutes(v int) *ServiceUpsert {
	u.Set(service.FieldDurationMinutes, v)
	return u
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *ServiceUpsert) UpdateDurationMinutes() *ServiceUpsert {
	u.SetExcluded(service.FieldDurationMinutes)
	return u
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *ServiceUpsert) AddDurationMinutes(v int) *ServiceUpsert {
	u.Add(service.FieldDurationMinutes, v)
	return u
}

// SetPriceCents sets the "price_cents" field.
func (u *ServiceUpsert) SetPriceCents(v int64) *ServiceUpsert {
	u.Set(service.FieldPriceCents, v)
	return u
}

// UpdatePriceCents sets the "price_cents" field to the value that was provided on create.
func (u *ServiceUpsert) UpdatePriceCents() *ServiceUpsert {
	u.SetExcluded(service.FieldPriceCents)
	return u
}

// AddPriceCents adds v to the "price_cents" field.
func (u *ServiceUpsert) AddPriceCents(v int64) *ServiceUpsert {
	u.Add(service.FieldPriceCents, v)
	return u
}

// SetActive sets the "active" field.
func (u *ServiceUpsert) SetActive(v bool) *ServiceUpsert {
	u.Set(service.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ServiceUpsert) UpdateActive() *ServiceUpsert {
	u.SetExcluded(service.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Service.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(service.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ServiceUpsertOne) UpdateNewValues() *ServiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(service.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(service.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Service.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ServiceUpsertOne) Ignore() *ServiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ServiceUpsertOne) DoNothing() *ServiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ServiceCreate.OnConflict
// documentation for more info.
func (u *ServiceUpsertOne) Update(set func(*ServiceUpsert)) *ServiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ServiceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ServiceUpsertOne) SetUpdatedAt(v time.Time) *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ServiceUpsertOne) UpdateUpdatedAt() *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *ServiceUpsertOne) SetProviderID(v uuid.UUID) *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *ServiceUpsertOne) UpdateProviderID() *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.UpdateProviderID()
	})
}

// SetName sets the "name" field.
func (u *ServiceUpsertOne) SetName(v string) *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ServiceUpsertOne) UpdateName() *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ServiceUpsertOne) SetDescription(v string) *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ServiceUpsertOne) UpdateDescription() *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ServiceUpsertOne) ClearDescription() *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.ClearDescription()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *ServiceUpsertOne) SetDurationMinutes(v int) *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *ServiceUpsertOne) AddDurationMinutes(v int) *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *ServiceUpsertOne) UpdateDurationMinutes() *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetPriceCents sets the "price_cents" field.
func (u *ServiceUpsertOne) SetPriceCents(v int64) *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.SetPriceCents(v)
	})
}

// AddPriceCents adds v to the "price_cents" field.
func (u *ServiceUpsertOne) AddPriceCents(v int64) *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.AddPriceCents(v)
	})
}

// UpdatePriceCents sets the "price_cents" field to the value that was provided on create.
func (u *ServiceUpsertOne) UpdatePriceCents() *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.UpdatePriceCents()
	})
}

// SetActive sets the "active" field.
func (u *ServiceUpsertOne) SetActive(v bool) *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ServiceUpsertOne) UpdateActive() *ServiceUpsertOne {
	return u.Update(func(s *ServiceUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *ServiceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ServiceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ServiceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ServiceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ServiceUpsertOne.ID is not supported by MySQL driver. Use ServiceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ServiceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ServiceCreateBulk is the builder for creating many Service entities in bulk.
type ServiceCreateBulk struct {
	config
	err      error
	builders []*ServiceCreate
	conflict []sql.ConflictOption
}

// Save creates the Service entities in the database.
func (_c *ServiceCreateBulk) Save(ctx context.Context) ([]*Service, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Service, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceMutation)
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
func (_c *ServiceCreateBulk) SaveX(ctx context.Context) []*Service {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Service.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ServiceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ServiceCreateBulk) OnConflict(opts ...sql.ConflictOption) *ServiceUpsertBulk {
	_c.conflict = opts
	return &ServiceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Service.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ServiceCreateBulk) OnConflictColumns(columns ...string) *ServiceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ServiceUpsertBulk{
		create: _c,
	}
}

// ServiceUpsertBulk is the builder for "upsert"-ing
// a bulk of Service nodes.
type ServiceUpsertBulk struct {
	create *ServiceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Service.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(service.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ServiceUpsertBulk) UpdateNewValues() *ServiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(service.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(service.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Service.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ServiceUpsertBulk) Ignore() *ServiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ServiceUpsertBulk) DoNothing() *ServiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ServiceCreateBulk.OnConflict
// documentation for more info.
func (u *ServiceUpsertBulk) Update(set func(*ServiceUpsert)) *ServiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ServiceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ServiceUpsertBulk) SetUpdatedAt(v time.Time) *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ServiceUpsertBulk) UpdateUpdatedAt() *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *ServiceUpsertBulk) SetProviderID(v uuid.UUID) *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *ServiceUpsertBulk) UpdateProviderID() *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.UpdateProviderID()
	})
}

// SetName sets the "name" field.
func (u *ServiceUpsertBulk) SetName(v string) *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ServiceUpsertBulk) UpdateName() *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ServiceUpsertBulk) SetDescription(v string) *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ServiceUpsertBulk) UpdateDescription() *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ServiceUpsertBulk) ClearDescription() *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.ClearDescription()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *ServiceUpsertBulk) SetDurationMinutes(v int) *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *ServiceUpsertBulk) AddDurationMinutes(v int) *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *ServiceUpsertBulk) UpdateDurationMinutes() *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetPriceCents sets the "price_cents" field.
func (u *ServiceUpsertBulk) SetPriceCents(v int64) *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.SetPriceCents(v)
	})
}

// AddPriceCents adds v to the "price_cents" field.
func (u *ServiceUpsertBulk) AddPriceCents(v int64) *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.AddPriceCents(v)
	})
}

// UpdatePriceCents sets the "price_cents" field to the value that was provided on create.
func (u *ServiceUpsertBulk) UpdatePriceCents() *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.UpdatePriceCents()
	})
}

// SetActive sets the "active" field.
func (u *ServiceUpsertBulk) SetActive(v bool) *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ServiceUpsertBulk) UpdateActive() *ServiceUpsertBulk {
	return u.Update(func(s *ServiceUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *ServiceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ServiceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ServiceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ServiceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
