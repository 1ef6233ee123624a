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
	"github.com/appointease/appointease_backend/internal/repo/emailnotification"
	"github.com/google/uuid"
)

// EmailNotificationCreate is the builder for creating a EmailNotification entity.
type EmailNotificationCreate struct {
	config
	mutation *EmailNotificationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmailNotificationCreate) SetCreatedAt(v time.Time) *EmailNotificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmailNotificationCreate) SetNillableCreatedAt(v *time.Time) *EmailNotificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EmailNotificationCreate) SetUpdatedAt(v time.Time) *EmailNotificationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EmailNotificationCreate) SetNillableUpdatedAt(v *time.Time) *EmailNotificationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *EmailNotificationCreate) SetUserID(v uuid.UUID) *EmailNotificationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAppointmentCreated sets the "appointment_created" field.
func (_c *EmailNotificationCreate) SetAppointmentCreated(v bool) *EmailNotificationCreate {
	_c.mutation.SetAppointmentCreated(v)
	return _c
}

// SetNillableAppointmentCreated sets the "appointment_created" field if the given value is not nil.
func (_c *EmailNotificationCreate) SetNillableAppointmentCreated(v *bool) *EmailNotificationCreate {
	if v != nil {
		_c.SetAppointmentCreated(*v)
	}
	return _c
}

// SetAppointmentUpdated sets the "appointment_updated" field.
func (_c *EmailNotificationCreate) SetAppointmentUpdated(v bool) *EmailNotificationCreate {
	_c.mutation.SetAppointmentUpdated(v)
	return _c
}

// SetNillableAppointmentUpdated sets the "appointment_updated" field if the given value is not nil.
func (_c *EmailNotificationCreate) SetNillableAppointmentUpdated(v *bool) *EmailNotificationCreate {
	if v != nil {
		_c.SetAppointmentUpdated(*v)
	}
	return _c
}

// SetAppointmentCanceled sets the "appointment_canceled" field.
func (_c *EmailNotificationCreate) SetAppointmentCanceled(v bool) *EmailNotificationCreate {
	_c.mutation.SetAppointmentCanceled(v)
	return _c
}

// SetNillableAppointmentCanceled sets the "appointment_canceled" field if the given value is not nil.
func (_c *EmailNotificationCreate) SetNillableAppointmentCanceled(v *bool) *EmailNotificationCreate {
	if v != nil {
		_c.SetAppointmentCanceled(*v)
	}
	return _c
}

// SetAppointmentReminder sets the "appointment_reminder" field.
func (_c *EmailNotificationCreate) SetAppointmentReminder(v bool) *EmailNotificationCreate {
	_c.mutation.SetAppointmentReminder(v)
	return _c
}

// SetNillableAppointmentReminder sets the "appointment_reminder" field if the given value is not nil.
func (_c *EmailNotificationCreate) SetNillableAppointmentReminder(v *bool) *EmailNotificationCreate {
	if v != nil {
		_c.SetAppointmentReminder(*v)
	}
	return _c
}

// SetAppointmentConfirmed sets the "appointment_confirmed" field.
func (_c *EmailNotificationCreate) SetAppointmentConfirmed(v bool) *EmailNotificationCreate {
	_c.mutation.SetAppointmentConfirmed(v)
	return _c
}

// SetNillableAppointmentConfirmed sets the "appointment_confirmed" field if the given value is not nil.
func (_c *EmailNotificationCreate) SetNillableAppointmentConfirmed(v *bool) *EmailNotificationCreate {
	if v != nil {
		_c.SetAppointmentConfirmed(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmailNotificationCreate) SetID(v uuid.UUID) *EmailNotificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmailNotificationCreate) SetNillableID(v *uuid.UUID) *EmailNotificationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the EmailNotificationMutation object of the builder.
func (_c *EmailNotificationCreate) Mutation() *EmailNotificationMutation {
	return _c.mutation
}

// Save creates the EmailNotification in the database.
func (_c *EmailNotificationCreate) Save(ctx context.Context) (*EmailNotification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailNotificationCreate) SaveX(ctx context.Context) *EmailNotification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailNotificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailNotificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmailNotificationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := emailnotification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := emailnotification.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.AppointmentCreated(); !ok {
		v := emailnotification.DefaultAppointmentCreated
		_c.mutation.SetAppointmentCreated(v)
	}
	if _, ok := _c.mutation.AppointmentUpdated(); !ok {
		v := emailnotification.DefaultAppointmentUpdated
		_c.mutation.SetAppointmentUpdated(v)
	}
	if _, ok := _c.mutation.AppointmentCanceled(); !ok {
		v := emailnotification.DefaultAppointmentCanceled
		_c.mutation.SetAppointmentCanceled(v)
	}
	if _, ok := _c.mutation.AppointmentReminder(); !ok {
		v := emailnotification.DefaultAppointmentReminder
		_c.mutation.SetAppointmentReminder(v)
	}
	if _, ok := _c.mutation.AppointmentConfirmed(); !ok {
		v := emailnotification.DefaultAppointmentConfirmed
		_c.mutation.SetAppointmentConfirmed(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := emailnotification.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailNotificationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "EmailNotification.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "EmailNotification.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "EmailNotification.user_id"`)}
	}
	if _, ok := _c.mutation.AppointmentCreated(); !ok {
		return &ValidationError{Name: "appointment_created", err: errors.New(`repo: missing required field "EmailNotification.appointment_created"`)}
	}
	if _, ok := _c.mutation.AppointmentUpdated(); !ok {
		return &ValidationError{Name: "appointment_updated", err: errors.New(`repo: missing required field "EmailNotification.appointment_updated"`)}
	}
	if _, ok := _c.mutation.AppointmentCanceled(); !ok {
		return &ValidationError{Name: "appointment_canceled", err: errors.New(`repo: missing required field "EmailNotification.appointment_canceled"`)}
	}
	if _, ok := _c.mutation.AppointmentReminder(); !ok {
		return &ValidationError{Name: "appointment_reminder", err: errors.New(`repo: missing required field "EmailNotification.appointment_reminder"`)}
	}
	if _, ok := _c.mutation.AppointmentConfirmed(); !ok {
		return &ValidationError{Name: "appointment_confirmed", err: errors.New(`repo: missing required field "EmailNotification.appointment_confirmed"`)}
	}
	return nil
}

func (_c *EmailNotificationCreate) sqlSave(ctx context.Context) (*EmailNotification, error) {
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

func (_c *EmailNotificationCreate) createSpec() (*EmailNotification, *sqlgraph.CreateSpec) {
	var (
		_node = &EmailNotification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emailnotification.Table, sqlgraph.NewFieldSpec(emailnotification.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(emailnotification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(emailnotification.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(emailnotification.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.AppointmentCreated(); ok {
		_spec.SetField(emailnotification.FieldAppointmentCreated, field.TypeBool, value)
		_node.AppointmentCreated = value
	}
	if value, ok := _c.mutation.AppointmentUpdated(); ok {
		_spec.SetField(emailnotification.FieldAppointmentUpdated, field.TypeBool, value)
		_node.AppointmentUpdated = value
	}
	if value, ok := _c.mutation.AppointmentCanceled(); ok {
		_spec.SetField(emailnotification.FieldAppointmentCanceled, field.TypeBool, value)
		_node.AppointmentCanceled = value
	}
	if value, ok := _c.mutation.AppointmentReminder(); ok {
		_spec.SetField(emailnotification.FieldAppointmentReminder, field.TypeBool, value)
		_node.AppointmentReminder = value
	}
	if value, ok := _c.mutation.AppointmentConfirmed(); ok {
		_spec.SetField(emailnotification.FieldAppointmentConfirmed, field.TypeBool, value)
		_node.AppointmentConfirmed = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmailNotification.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmailNotificationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EmailNotificationCreate) OnConflict(opts ...sql.ConflictOption) *EmailNotificationUpsertOne {
	_c.conflict = opts
	return &EmailNotificationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmailNotification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmailNotificationCreate) OnConflictColumns(columns ...string) *EmailNotificationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmailNotificationUpsertOne{
		create: _c,
	}
}

type (
	// EmailNotificationUpsertOne is the builder for "upsert"-ing
	//  one EmailNotification node.
	EmailNotificationUpsertOne struct {
		create *EmailNotificationCreate
	}

	// EmailNotificationUpsert is the "OnConflict" setter.
	EmailNotificationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *EmailNotificationUpsert) SetUpdatedAt(v time.Time) *EmailNotificationUpsert {
	u.Set(emailnotification.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmailNotificationUpsert) UpdateUpdatedAt() *EmailNotificationUpsert {
	u.SetExcluded(emailnotification.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *EmailNotificationUpsert) SetUserID(v uuid.UUID) *EmailNotificationUpsert {
	u.Set(emailnotification.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *EmailNotificationUpsert) UpdateUserID() *EmailNotificationUpsert {
	u.SetExcluded(emailnotification.FieldUserID)
	return u
}

// SetAppointmentCreated sets the "appointment_created" field.
func (u *EmailNotificationUpsert) SetAppointmentCreated(v bool) *EmailNotificationUpsert {
	u.Set(emailnotification.FieldAppointmentCreated, v)
	return u
}

// UpdateAppointmentCreated sets the "appointment_created" field to the value that was provided on create.
func (u *EmailNotificationUpsert) UpdateAppointmentCreated() *EmailNotificationUpsert {
	u.SetExcluded(emailnotification.FieldAppointmentCreated)
	return u
}

// SetAppointmentUpdated sets the "appointment_updated" field.
func (u *EmailNotificationUpsert) SetAppointmentUpdated(v bool) *EmailNotificationUpsert {
	u.Set(emailnotification.FieldAppointmentUpdated, v)
	return u
}

// UpdateAppointmentUpdated sets the "appointment_updated" field to the value that was provided on create.
func (u *EmailNotificationUpsert) UpdateAppointmentUpdated() *EmailNotificationUpsert {
	u.SetExcluded(emailnotification.FieldAppointmentUpdated)
	return u
}

// SetAppointmentCanceled sets the "appointment_canceled" field.
func (u *EmailNotificationUpsert) SetAppointmentCanceled(v bool) *EmailNotificationUpsert {
	u.Set(emailnotification.FieldAppointmentCanceled, v)
	return u
}

// UpdateAppointmentCanceled sets the "appointment_canceled" field to the value that was provided on create.
func (u *EmailNotificationUpsert) UpdateAppointmentCanceled() *EmailNotificationUpsert {
	u.SetExcluded(emailnotification.FieldAppointmentCanceled)
	return u
}

// SetAppointmentReminder sets the "appointment_reminder" field.
func (u *EmailNotificationUpsert) SetAppointmentReminder(v bool) *EmailNotificationUpsert {
	u.Set(emailnotification.FieldAppointmentReminder, v)
	return u
}

// UpdateAppointmentReminder sets the "appointment_reminder" field to the value that was provided on create.
func (u *EmailNotificationUpsert) UpdateAppointmentReminder() *EmailNotificationUpsert {
	u.SetExcluded(emailnotification.FieldAppointmentReminder)
	return u
}

// SetAppointmentConfirmed sets the "appointment_confirmed" field.
func (u *EmailNotificationUpsert) SetAppointmentConfirmed(v bool) *EmailNotificationUpsert {
	u.Set(emailnotification.FieldAppointmentConfirmed, v)
	return u
}

// UpdateAppointmentConfirmed sets the "appointment_confirmed" field to the value that was provided on create.
func (u *EmailNotificationUpsert) UpdateAppointmentConfirmed() *EmailNotificationUpsert {
	u.SetExcluded(emailnotification.FieldAppointmentConfirmed)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EmailNotification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(emailnotification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmailNotificationUpsertOne) UpdateNewValues() *EmailNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(emailnotification.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(emailnotification.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmailNotification.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EmailNotificationUpsertOne) Ignore() *EmailNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmailNotificationUpsertOne) DoNothing() *EmailNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmailNotificationCreate.OnConflict
// documentation for more info.
func (u *EmailNotificationUpsertOne) Update(set func(*EmailNotificationUpsert)) *EmailNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmailNotificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EmailNotificationUpsertOne) SetUpdatedAt(v time.Time) *EmailNotificationUpsertOne {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmailNotificationUpsertOne) UpdateUpdatedAt() *EmailNotificationUpsertOne {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *EmailNotificationUpsertOne) SetUserID(v uuid.UUID) *EmailNotificationUpsertOne {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *EmailNotificationUpsertOne) UpdateUserID() *EmailNotificationUpsertOne {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.UpdateUserID()
	})
}

// SetAppointmentCreated sets the "appointment_created" field.
func (u *EmailNotificationUpsertOne) SetAppointmentCreated(v bool) *EmailNotificationUpsertOne {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.SetAppointmentCreated(v)
	})
}

// UpdateAppointmentCreated sets the "appointment_created" field to the value that was provided on create.
func (u *EmailNotificationUpsertOne) UpdateAppointmentCreated() *EmailNotificationUpsertOne {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.UpdateAppointmentCreated()
	})
}

// SetAppointmentUpdated sets the "appointment_updated" field.
func (u *EmailNotificationUpsertOne) SetAppointmentUpdated(v bool) *EmailNotificationUpsertOne {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.SetAppointmentUpdated(v)
	})
}

// UpdateAppointmentUpdated sets the "appointment_updated" field to the value that was provided on create.
func (u *EmailNotificationUpsertOne) UpdateAppointmentUpdated() *EmailNotificationUpsertOne {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.UpdateAppointmentUpdated()
	})
}

// SetAppointmentCanceled sets the "appointment_canceled" field.
func (u *EmailNotificationUpsertOne) SetAppointmentCanceled(v bool) *EmailNotificationUpsertOne {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.SetAppointmentCanceled(v)
	})
}

// UpdateAppointmentCanceled sets the "appointment_canceled" field to the value that was provided on create.
func (u *EmailNotificationUpsertOne) UpdateAppointmentCanceled() *EmailNotificationUpsertOne {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.UpdateAppointmentCanceled()
	})
}

// SetAppointmentReminder sets the "appointment_reminder" field.
func (u *EmailNotificationUpsertOne) SetAppointmentReminder(v bool) *EmailNotificationUpsertOne {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.SetAppointmentReminder(v)
	})
}

// UpdateAppointmentReminder sets the "appointment_reminder" field to the value that was provided on create.
func (u *EmailNotificationUpsertOne) UpdateAppointmentReminder() *EmailNotificationUpsertOne {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.UpdateAppointmentReminder()
	})
}

// SetAppointmentConfirmed sets the "appointment_confirmed" field.
func (u *EmailNotificationUpsertOne) SetAppointmentConfirmed(v bool) *EmailNotificationUpsertOne {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.SetAppointmentConfirmed(v)
	})
}

// UpdateAppointmentConfirmed sets the "appointment_confirmed" field to the value that was provided on create.
func (u *EmailNotificationUpsertOne) UpdateAppointmentConfirmed() *EmailNotificationUpsertOne {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.UpdateAppointmentConfirmed()
	})
}

// Exec executes the query.
func (u *EmailNotificationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for EmailNotificationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmailNotificationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EmailNotificationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: EmailNotificationUpsertOne.ID is not supported by MySQL driver. Use EmailNotificationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EmailNotificationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EmailNotificationCreateBulk is the builder for creating many EmailNotification entities in bulk.
type EmailNotificationCreateBulk struct {
	config
	err      error
	builders []*EmailNotificationCreate
	conflict []sql.ConflictOption
}

// Save creates the EmailNotification entities in the database.
func (_c *EmailNotificationCreateBulk) Save(ctx context.Context) ([]*EmailNotification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmailNotification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailNotificationMutation)
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
func (_c *EmailNotificationCreateBulk) SaveX(ctx context.Context) []*EmailNotification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailNotificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailNotificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmailNotification.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmailNotificationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EmailNotificationCreateBulk) OnConflict(opts ...sql.ConflictOption) *EmailNotificationUpsertBulk {
	_c.conflict = opts
	return &EmailNotificationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmailNotification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmailNotificationCreateBulk) OnConflictColumns(columns ...string) *EmailNotificationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmailNotificationUpsertBulk{
		create: _c,
	}
}

// EmailNotificationUpsertBulk is the builder for "upsert"-ing
// a bulk of EmailNotification nodes.
type EmailNotificationUpsertBulk struct {
	create *EmailNotificationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EmailNotification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(emailnotification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmailNotificationUpsertBulk) UpdateNewValues() *EmailNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(emailnotification.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(emailnotification.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmailNotification.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EmailNotificationUpsertBulk) Ignore() *EmailNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmailNotificationUpsertBulk) DoNothing() *EmailNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmailNotificationCreateBulk.OnConflict
// documentation for more info.
func (u *EmailNotificationUpsertBulk) Update(set func(*EmailNotificationUpsert)) *EmailNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmailNotificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EmailNotificationUpsertBulk) SetUpdatedAt(v time.Time) *EmailNotificationUpsertBulk {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmailNotificationUpsertBulk) UpdateUpdatedAt() *EmailNotificationUpsertBulk {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *EmailNotificationUpsertBulk) SetUserID(v uuid.UUID) *EmailNotificationUpsertBulk {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *EmailNotificationUpsertBulk) UpdateUserID() *EmailNotificationUpsertBulk {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.UpdateUserID()
	})
}

// SetAppointmentCreated sets the "appointment_created" field.
func (u *EmailNotificationUpsertBulk) SetAppointmentCreated(v bool) *EmailNotificationUpsertBulk {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.SetAppointmentCreated(v)
	})
}

// UpdateAppointmentCreated sets the "appointment_created" field to the value that was provided on create.
func (u *EmailNotificationUpsertBulk) UpdateAppointmentCreated() *EmailNotificationUpsertBulk {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.UpdateAppointmentCreated()
	})
}

// SetAppointmentUpdated sets the "appointment_updated" field.
func (u *EmailNotificationUpsertBulk) SetAppointmentUpdated(v bool) *EmailNotificationUpsertBulk {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.SetAppointmentUpdated(v)
	})
}

// UpdateAppointmentUpdated sets the "appointment_updated" field to the value that was provided on create.
func (u *EmailNotificationUpsertBulk) UpdateAppointmentUpdated() *EmailNotificationUpsertBulk {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.UpdateAppointmentUpdated()
	})
}

// SetAppointmentCanceled sets the "appointment_canceled" field.
func (u *EmailNotificationUpsertBulk) SetAppointmentCanceled(v bool) *EmailNotificationUpsertBulk {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.SetAppointmentCanceled(v)
	})
}

// UpdateAppointmentCanceled sets the "appointment_canceled" field to the value that was provided on create.
func (u *EmailNotificationUpsertBulk) UpdateAppointmentCanceled() *EmailNotificationUpsertBulk {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.UpdateAppointmentCanceled()
	})
}

// SetAppointmentReminder sets the "appointment_reminder" field.
func (u *EmailNotificationUpsertBulk) SetAppointmentReminder(v bool) *EmailNotificationUpsertBulk {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.SetAppointmentReminder(v)
	})
}

// UpdateAppointmentReminder sets the "appointment_reminder" field to the value that was provided on create.
func (u *EmailNotificationUpsertBulk) UpdateAppointmentReminder() *EmailNotificationUpsertBulk {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.UpdateAppointmentReminder()
	})
}

// SetAppointmentConfirmed sets the "appointment_confirmed" field.
func (u *EmailNotificationUpsertBulk) SetAppointmentConfirmed(v bool) *EmailNotificationUpsertBulk {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.SetAppointmentConfirmed(v)
	})
}

// UpdateAppointmentConfirmed sets the "appointment_confirmed" field to the value that was provided on create.
func (u *EmailNotificationUpsertBulk) UpdateAppointmentConfirmed() *EmailNotificationUpsertBulk {
	return u.Update(func(s *EmailNotificationUpsert) {
		s.UpdateAppointmentConfirmed()
	})
}

// Exec executes the query.
func (u *EmailNotificationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the EmailNotificationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for EmailNotificationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmailNotificationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
