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
	"github.com/appointease/appointease_backend/internal/repo/emaillog"
	"github.com/google/uuid"
)

// EmailLogCreate is the builder for creating a EmailLog entity.
type EmailLogCreate struct {
	config
	mutation *EmailLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmailLogCreate) SetCreatedAt(v time.Time) *EmailLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmailLogCreate) SetNillableCreatedAt(v *time.Time) *EmailLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *EmailLogCreate) SetUserID(v uuid.UUID) *EmailLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *EmailLogCreate) SetNillableUserID(v *uuid.UUID) *EmailLogCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetRecipient sets the "recipient" field.
func (_c *EmailLogCreate) SetRecipient(v string) *EmailLogCreate {
	_c.mutation.SetRecipient(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *EmailLogCreate) SetSubject(v string) *EmailLogCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *EmailLogCreate) SetContent(v string) *EmailLogCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetType sets the "type" field.
func (_c *EmailLogCreate) SetType(v string) *EmailLogCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *EmailLogCreate) SetAppointmentID(v uuid.UUID) *EmailLogCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_c *EmailLogCreate) SetNillableAppointmentID(v *uuid.UUID) *EmailLogCreate {
	if v != nil {
		_c.SetAppointmentID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EmailLogCreate) SetStatus(v emaillog.Status) *EmailLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetError sets the "error" field.
func (_c *EmailLogCreate) SetError(v string) *EmailLogCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *EmailLogCreate) SetNillableError(v *string) *EmailLogCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmailLogCreate) SetID(v uuid.UUID) *EmailLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmailLogCreate) SetNillableID(v *uuid.UUID) *EmailLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the EmailLogMutation object of the builder.
func (_c *EmailLogCreate) Mutation() *EmailLogMutation {
	return _c.mutation
}

// Save creates the EmailLog in the database.
func (_c *EmailLogCreate) Save(ctx context.Context) (*EmailLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailLogCreate) SaveX(ctx context.Context) *EmailLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmailLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := emaillog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := emaillog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailLogCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "EmailLog.created_at"`)}
	}
	if _, ok := _c.mutation.Recipient(); !ok {
		return &ValidationError{Name: "recipient", err: errors.New(`repo: missing required field "EmailLog.recipient"`)}
	}
	if v, ok := _c.mutation.Recipient(); ok {
		if err := emaillog.RecipientValidator(v); err != nil {
			return &ValidationError{Name: "recipient", err: fmt.Errorf(`repo: validator failed for field "EmailLog.recipient": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`repo: missing required field "EmailLog.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := emaillog.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "EmailLog.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`repo: missing required field "EmailLog.content"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`repo: missing required field "EmailLog.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := emaillog.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "EmailLog.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "EmailLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := emaillog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "EmailLog.status": %w`, err)}
		}
	}
	return nil
}

func (_c *EmailLogCreate) sqlSave(ctx context.Context) (*EmailLog, error) {
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

func (_c *EmailLogCreate) createSpec() (*EmailLog, *sqlgraph.CreateSpec) {
	var (
		_node = &EmailLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emaillog.Table, sqlgraph.NewFieldSpec(emaillog.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(emaillog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(emaillog.FieldUserID, field.TypeUUID, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.Recipient(); ok {
		_spec.SetField(emaillog.FieldRecipient, field.TypeString, value)
		_node.Recipient = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(emaillog.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(emaillog.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(emaillog.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(emaillog.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(emaillog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(emaillog.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmailLog.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmailLogUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EmailLogCreate) OnConflict(opts ...sql.ConflictOption) *EmailLogUpsertOne {
	_c.conflict = opts
	return &EmailLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmailLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmailLogCreate) OnConflictColumns(columns ...string) *EmailLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmailLogUpsertOne{
		create: _c,
	}
}

type (
	// EmailLogUpsertOne is the builder for "upsert"-ing
	//  one EmailLog node.
	EmailLogUpsertOne struct {
		create *EmailLogCreate
	}

	// EmailLogUpsert is the "OnConflict" setter.
	EmailLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *EmailLogUpsert) SetUserID(v uuid.UUID) *EmailLogUpsert {
	u.Set(emaillog.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *EmailLogUpsert) UpdateUserID() *EmailLogUpsert {
	u.SetExcluded(emaillog.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *EmailLogUpsert) ClearUserID() *EmailLogUpsert {
	u.SetNull(emaillog.FieldUserID)
	return u
}

// SetRecipient sets the "recipient" field.
func (u *EmailLogUpsert) SetRecipient(v string) *EmailLogUpsert {
	u.Set(emaillog.FieldRecipient, v)
	return u
}

// UpdateRecipient sets the "recipient" field to the value that was provided on create.
func (u *EmailLogUpsert) UpdateRecipient() *EmailLogUpsert {
	u.SetExcluded(emaillog.FieldRecipient)
	return u
}

// SetSubject sets the "subject" field.
func (u *EmailLogUpsert) SetSubject(v string) *EmailLogUpsert {
	u.Set(emaillog.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *EmailLogUpsert) UpdateSubject() *EmailLogUpsert {
	u.SetExcluded(emaillog.FieldSubject)
	return u
}

// SetContent sets the "content" field.
func (u *EmailLogUpsert) SetContent(v string) *EmailLogUpsert {
	u.Set(emaillog.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *EmailLogUpsert) UpdateContent() *EmailLogUpsert {
	u.SetExcluded(emaillog.FieldContent)
	return u
}

// SetType sets the "type" field.
func (u *EmailLogUpsert) SetType(v string) *EmailLogUpsert {
	u.Set(emaillog.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EmailLogUpsert) UpdateType() *EmailLogUpsert {
	u.SetExcluded(emaillog.FieldType)
	return u
}

// SetAppointmentID sets the "appointment_id" field.
func (u *EmailLogUpsert) SetAppointmentID(v uuid.UUID) *EmailLogUpsert {
	u.Set(emaillog.FieldAppointmentID, v)
	return u
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *EmailLogUpsert) UpdateAppointmentID() *EmailLogUpsert {
	u.SetExcluded(emaillog.FieldAppointmentID)
	return u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *EmailLogUpsert) ClearAppointmentID() *EmailLogUpsert {
	u.SetNull(emaillog.FieldAppointmentID)
	return u
}

// SetStatus sets the "status" field.
func (u *EmailLogUpsert) SetStatus(v emaillog.Status) *EmailLogUpsert {
	u.Set(emaillog.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EmailLogUpsert) UpdateStatus() *EmailLogUpsert {
	u.SetExcluded(emaillog.FieldStatus)
	return u
}

// SetError sets the "error" field.
func (u *EmailLogUpsert) SetError(v string) *EmailLogUpsert {
	u.Set(emaillog.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *EmailLogUpsert) UpdateError() *EmailLogUpsert {
	u.SetExcluded(emaillog.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *EmailLogUpsert) ClearError() *EmailLogUpsert {
	u.SetNull(emaillog.FieldError)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EmailLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(emaillog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmailLogUpsertOne) UpdateNewValues() *EmailLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(emaillog.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(emaillog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmailLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EmailLogUpsertOne) Ignore() *EmailLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmailLogUpsertOne) DoNothing() *EmailLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmailLogCreate.OnConflict
// documentation for more info.
func (u *EmailLogUpsertOne) Update(set func(*EmailLogUpsert)) *EmailLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmailLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *EmailLogUpsertOne) SetUserID(v uuid.UUID) *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *EmailLogUpsertOne) UpdateUserID() *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *EmailLogUpsertOne) ClearUserID() *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.ClearUserID()
	})
}

// SetRecipient sets the "recipient" field.
func (u *EmailLogUpsertOne) SetRecipient(v string) *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetRecipient(v)
	})
}

// UpdateRecipient sets the "recipient" field to the value that was provided on create.
func (u *EmailLogUpsertOne) UpdateRecipient() *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateRecipient()
	})
}

// SetSubject sets the "subject" field.
func (u *EmailLogUpsertOne) SetSubject(v string) *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *EmailLogUpsertOne) UpdateSubject() *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateSubject()
	})
}

// SetContent sets the "content" field.
func (u *EmailLogUpsertOne) SetContent(v string) *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *EmailLogUpsertOne) UpdateContent() *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateContent()
	})
}

// SetType sets the "type" field.
func (u *EmailLogUpsertOne) SetType(v string) *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EmailLogUpsertOne) UpdateType() *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateType()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *EmailLogUpsertOne) SetAppointmentID(v uuid.UUID) *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *EmailLogUpsertOne) UpdateAppointmentID() *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateAppointmentID()
	})
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *EmailLogUpsertOne) ClearAppointmentID() *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.ClearAppointmentID()
	})
}

// SetStatus sets the "status" field.
func (u *EmailLogUpsertOne) SetStatus(v emaillog.Status) *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EmailLogUpsertOne) UpdateStatus() *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateStatus()
	})
}

// SetError sets the "error" field.
func (u *EmailLogUpsertOne) SetError(v string) *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *EmailLogUpsertOne) UpdateError() *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *EmailLogUpsertOne) ClearError() *EmailLogUpsertOne {
	return u.Update(func(s *EmailLogUpsert) {
		s.ClearError()
	})
}

// Exec executes the query.
func (u *EmailLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for EmailLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmailLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EmailLogUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: EmailLogUpsertOne.ID is not supported by MySQL driver. Use EmailLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EmailLogUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EmailLogCreateBulk is the builder for creating many EmailLog entities in bulk.
type EmailLogCreateBulk struct {
	config
	err      error
	builders []*EmailLogCreate
	conflict []sql.ConflictOption
}

// Save creates the EmailLog entities in the database.
func (_c *EmailLogCreateBulk) Save(ctx context.Context) ([]*EmailLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmailLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailLogMutation)
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
func (_c *EmailLogCreateBulk) SaveX(ctx context.Context) []*EmailLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmailLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmailLogUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EmailLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *EmailLogUpsertBulk {
	_c.conflict = opts
	return &EmailLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmailLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmailLogCreateBulk) OnConflictColumns(columns ...string) *EmailLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmailLogUpsertBulk{
		create: _c,
	}
}

// EmailLogUpsertBulk is the builder for "upsert"-ing
// a bulk of EmailLog nodes.
type EmailLogUpsertBulk struct {
	create *EmailLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EmailLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(emaillog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmailLogUpsertBulk) UpdateNewValues() *EmailLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(emaillog.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(emaillog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmailLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EmailLogUpsertBulk) Ignore() *EmailLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmailLogUpsertBulk) DoNothing() *EmailLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmailLogCreateBulk.OnConflict
// documentation for more info.
func (u *EmailLogUpsertBulk) Update(set func(*EmailLogUpsert)) *EmailLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmailLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *EmailLogUpsertBulk) SetUserID(v uuid.UUID) *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *EmailLogUpsertBulk) UpdateUserID() *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *EmailLogUpsertBulk) ClearUserID() *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.ClearUserID()
	})
}

// SetRecipient sets the "recipient" field.
func (u *EmailLogUpsertBulk) SetRecipient(v string) *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetRecipient(v)
	})
}

// UpdateRecipient sets the "recipient" field to the value that was provided on create.
func (u *EmailLogUpsertBulk) UpdateRecipient() *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateRecipient()
	})
}

// SetSubject sets the "subject" field.
func (u *EmailLogUpsertBulk) SetSubject(v string) *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *EmailLogUpsertBulk) UpdateSubject() *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateSubject()
	})
}

// SetContent sets the "content" field.
func (u *EmailLogUpsertBulk) SetContent(v string) *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *EmailLogUpsertBulk) UpdateContent() *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateContent()
	})
}

// SetType sets the "type" field.
func (u *EmailLogUpsertBulk) SetType(v string) *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EmailLogUpsertBulk) UpdateType() *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateType()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *EmailLogUpsertBulk) SetAppointmentID(v uuid.UUID) *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *EmailLogUpsertBulk) UpdateAppointmentID() *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateAppointmentID()
	})
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *EmailLogUpsertBulk) ClearAppointmentID() *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.ClearAppointmentID()
	})
}

// SetStatus sets the "status" field.
func (u *EmailLogUpsertBulk) SetStatus(v emaillog.Status) *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EmailLogUpsertBulk) UpdateStatus() *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateStatus()
	})
}

// SetError sets the "error" field.
func (u *EmailLogUpsertBulk) SetError(v string) *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *EmailLogUpsertBulk) UpdateError() *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *EmailLogUpsertBulk) ClearError() *EmailLogUpsertBulk {
	return u.Update(func(s *EmailLogUpsert) {
		s.ClearError()
	})
}

// Exec executes the query.
func (u *EmailLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the EmailLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for EmailLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmailLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
