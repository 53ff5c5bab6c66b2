// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edulend/loanassist/gen/ent/application"
	"github.com/edulend/loanassist/gen/ent/appointment"
	"github.com/edulend/loanassist/gen/ent/predicate"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAppID sets the "app_id" field.
func (_u *AppointmentUpdate) SetAppID(v int) *AppointmentUpdate {
	_u.mutation.SetAppID(v)
	return _u
}

// SetNillableAppID sets the "app_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableAppID(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetAppID(*v)
	}
	return _u
}

// SetUserEmail sets the "user_email" field.
func (_u *AppointmentUpdate) SetUserEmail(v string) *AppointmentUpdate {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableUserEmail(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// SetBankID sets the "bank_id" field.
func (_u *AppointmentUpdate) SetBankID(v int) *AppointmentUpdate {
	_u.mutation.ResetBankID()
	_u.mutation.SetBankID(v)
	return _u
}

// SetNillableBankID sets the "bank_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableBankID(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetBankID(*v)
	}
	return _u
}

// AddBankID adds value to the "bank_id" field.
func (_u *AppointmentUpdate) AddBankID(v int) *AppointmentUpdate {
	_u.mutation.AddBankID(v)
	return _u
}

// SetScheduledTime sets the "scheduled_time" field.
func (_u *AppointmentUpdate) SetScheduledTime(v string) *AppointmentUpdate {
	_u.mutation.SetScheduledTime(v)
	return _u
}

// SetNillableScheduledTime sets the "scheduled_time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableScheduledTime(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetScheduledTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v string) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApplicationID sets the "application" edge to the Application entity by ID.
func (_u *AppointmentUpdate) SetApplicationID(id int) *AppointmentUpdate {
	_u.mutation.SetApplicationID(id)
	return _u
}

// SetApplication sets the "application" edge to the Application entity.
func (_u *AppointmentUpdate) SetApplication(v *Application) *AppointmentUpdate {
	return _u.SetApplicationID(v.ID)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// ClearApplication clears the "application" edge to the Application entity.
func (_u *AppointmentUpdate) ClearApplication() *AppointmentUpdate {
	_u.mutation.ClearApplication()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.UserEmail(); ok {
		if err := appointment.UserEmailValidator(v); err != nil {
			return &ValidationError{Name: "user_email", err: fmt.Errorf(`ent: validator failed for field "Appointment.user_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScheduledTime(); ok {
		if err := appointment.ScheduledTimeValidator(v); err != nil {
			return &ValidationError{Name: "scheduled_time", err: fmt.Errorf(`ent: validator failed for field "Appointment.scheduled_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Appointment.application"`)
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(appointment.FieldUserEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.BankID(); ok {
		_spec.SetField(appointment.FieldBankID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBankID(); ok {
		_spec.AddField(appointment.FieldBankID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScheduledTime(); ok {
		_spec.SetField(appointment.FieldScheduledTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.ApplicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointment.ApplicationTable,
			Columns: []string{appointment.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointment.ApplicationTable,
			Columns: []string{appointment.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetAppID sets the "app_id" field.
func (_u *AppointmentUpdateOne) SetAppID(v int) *AppointmentUpdateOne {
	_u.mutation.SetAppID(v)
	return _u
}

// SetNillableAppID sets the "app_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableAppID(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetAppID(*v)
	}
	return _u
}

// SetUserEmail sets the "user_email" field.
func (_u *AppointmentUpdateOne) SetUserEmail(v string) *AppointmentUpdateOne {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableUserEmail(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// SetBankID sets the "bank_id" field.
func (_u *AppointmentUpdateOne) SetBankID(v int) *AppointmentUpdateOne {
	_u.mutation.ResetBankID()
	_u.mutation.SetBankID(v)
	return _u
}

// SetNillableBankID sets the "bank_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableBankID(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetBankID(*v)
	}
	return _u
}

// AddBankID adds value to the "bank_id" field.
func (_u *AppointmentUpdateOne) AddBankID(v int) *AppointmentUpdateOne {
	_u.mutation.AddBankID(v)
	return _u
}

// SetScheduledTime sets the "scheduled_time" field.
func (_u *AppointmentUpdateOne) SetScheduledTime(v string) *AppointmentUpdateOne {
	_u.mutation.SetScheduledTime(v)
	return _u
}

// SetNillableScheduledTime sets the "scheduled_time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableScheduledTime(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetScheduledTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v string) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApplicationID sets the "application" edge to the Application entity by ID.
func (_u *AppointmentUpdateOne) SetApplicationID(id int) *AppointmentUpdateOne {
	_u.mutation.SetApplicationID(id)
	return _u
}

// SetApplication sets the "application" edge to the Application entity.
func (_u *AppointmentUpdateOne) SetApplication(v *Application) *AppointmentUpdateOne {
	return _u.SetApplicationID(v.ID)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// ClearApplication clears the "application" edge to the Application entity.
func (_u *AppointmentUpdateOne) ClearApplication() *AppointmentUpdateOne {
	_u.mutation.ClearApplication()
	return _u
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.UserEmail(); ok {
		if err := appointment.UserEmailValidator(v); err != nil {
			return &ValidationError{Name: "user_email", err: fmt.Errorf(`ent: validator failed for field "Appointment.user_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScheduledTime(); ok {
		if err := appointment.ScheduledTimeValidator(v); err != nil {
			return &ValidationError{Name: "scheduled_time", err: fmt.Errorf(`ent: validator failed for field "Appointment.scheduled_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Appointment.application"`)
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
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
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(appointment.FieldUserEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.BankID(); ok {
		_spec.SetField(appointment.FieldBankID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBankID(); ok {
		_spec.AddField(appointment.FieldBankID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScheduledTime(); ok {
		_spec.SetField(appointment.FieldScheduledTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.ApplicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointment.ApplicationTable,
			Columns: []string{appointment.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appointment.ApplicationTable,
			Columns: []string{appointment.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
