// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/edulend/loanassist/gen/ent/application"
	"github.com/edulend/loanassist/gen/ent/appointment"
	"github.com/edulend/loanassist/gen/ent/predicate"
)

// ApplicationUpdate is the builder for updating Application entities.
type ApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationMutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdate) Where(ps ...predicate.Application) *ApplicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserEmail sets the "user_email" field.
func (_u *ApplicationUpdate) SetUserEmail(v string) *ApplicationUpdate {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableUserEmail(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// SetBankID sets the "bank_id" field.
func (_u *ApplicationUpdate) SetBankID(v int) *ApplicationUpdate {
	_u.mutation.ResetBankID()
	_u.mutation.SetBankID(v)
	return _u
}

// SetNillableBankID sets the "bank_id" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableBankID(v *int) *ApplicationUpdate {
	if v != nil {
		_u.SetBankID(*v)
	}
	return _u
}

// AddBankID adds value to the "bank_id" field.
func (_u *ApplicationUpdate) AddBankID(v int) *ApplicationUpdate {
	_u.mutation.AddBankID(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdate) SetStatus(v string) *ApplicationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableStatus(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFilledFormFields sets the "filled_form_fields" field.
func (_u *ApplicationUpdate) SetFilledFormFields(v json.RawMessage) *ApplicationUpdate {
	_u.mutation.SetFilledFormFields(v)
	return _u
}

// AppendFilledFormFields appends value to the "filled_form_fields" field.
func (_u *ApplicationUpdate) AppendFilledFormFields(v json.RawMessage) *ApplicationUpdate {
	_u.mutation.AppendFilledFormFields(v)
	return _u
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_u *ApplicationUpdate) AddAppointmentIDs(ids ...int) *ApplicationUpdate {
	_u.mutation.AddAppointmentIDs(ids...)
	return _u
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_u *ApplicationUpdate) AddAppointments(v ...*Appointment) *ApplicationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdate) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearAppointments clears all "appointments" edges to the Appointment entity.
func (_u *ApplicationUpdate) ClearAppointments() *ApplicationUpdate {
	_u.mutation.ClearAppointments()
	return _u
}

// RemoveAppointmentIDs removes the "appointments" edge to Appointment entities by IDs.
func (_u *ApplicationUpdate) RemoveAppointmentIDs(ids ...int) *ApplicationUpdate {
	_u.mutation.RemoveAppointmentIDs(ids...)
	return _u
}

// RemoveAppointments removes "appointments" edges to Appointment entities.
func (_u *ApplicationUpdate) RemoveAppointments(v ...*Appointment) *ApplicationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdate) check() error {
	if v, ok := _u.mutation.UserEmail(); ok {
		if err := application.UserEmailValidator(v); err != nil {
			return &ValidationError{Name: "user_email", err: fmt.Errorf(`ent: validator failed for field "Application.user_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(application.FieldUserEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.BankID(); ok {
		_spec.SetField(application.FieldBankID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBankID(); ok {
		_spec.AddField(application.FieldBankID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilledFormFields(); ok {
		_spec.SetField(application.FieldFilledFormFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilledFormFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldFilledFormFields, value)
		})
	}
	if _u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.AppointmentsTable,
			Columns: []string{application.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentsIDs(); len(nodes) > 0 && !_u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.AppointmentsTable,
			Columns: []string{application.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.AppointmentsTable,
			Columns: []string{application.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationUpdateOne is the builder for updating a single Application entity.
type ApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationMutation
}

// SetUserEmail sets the "user_email" field.
func (_u *ApplicationUpdateOne) SetUserEmail(v string) *ApplicationUpdateOne {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableUserEmail(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// SetBankID sets the "bank_id" field.
func (_u *ApplicationUpdateOne) SetBankID(v int) *ApplicationUpdateOne {
	_u.mutation.ResetBankID()
	_u.mutation.SetBankID(v)
	return _u
}

// SetNillableBankID sets the "bank_id" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableBankID(v *int) *ApplicationUpdateOne {
	if v != nil {
		_u.SetBankID(*v)
	}
	return _u
}

// AddBankID adds value to the "bank_id" field.
func (_u *ApplicationUpdateOne) AddBankID(v int) *ApplicationUpdateOne {
	_u.mutation.AddBankID(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdateOne) SetStatus(v string) *ApplicationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableStatus(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFilledFormFields sets the "filled_form_fields" field.
func (_u *ApplicationUpdateOne) SetFilledFormFields(v json.RawMessage) *ApplicationUpdateOne {
	_u.mutation.SetFilledFormFields(v)
	return _u
}

// AppendFilledFormFields appends value to the "filled_form_fields" field.
func (_u *ApplicationUpdateOne) AppendFilledFormFields(v json.RawMessage) *ApplicationUpdateOne {
	_u.mutation.AppendFilledFormFields(v)
	return _u
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_u *ApplicationUpdateOne) AddAppointmentIDs(ids ...int) *ApplicationUpdateOne {
	_u.mutation.AddAppointmentIDs(ids...)
	return _u
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_u *ApplicationUpdateOne) AddAppointments(v ...*Appointment) *ApplicationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdateOne) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearAppointments clears all "appointments" edges to the Appointment entity.
func (_u *ApplicationUpdateOne) ClearAppointments() *ApplicationUpdateOne {
	_u.mutation.ClearAppointments()
	return _u
}

// RemoveAppointmentIDs removes the "appointments" edge to Appointment entities by IDs.
func (_u *ApplicationUpdateOne) RemoveAppointmentIDs(ids ...int) *ApplicationUpdateOne {
	_u.mutation.RemoveAppointmentIDs(ids...)
	return _u
}

// RemoveAppointments removes "appointments" edges to Appointment entities.
func (_u *ApplicationUpdateOne) RemoveAppointments(v ...*Appointment) *ApplicationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentIDs(ids...)
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdateOne) Where(ps ...predicate.Application) *ApplicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationUpdateOne) Select(field string, fields ...string) *ApplicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Application entity.
func (_u *ApplicationUpdateOne) Save(ctx context.Context) (*Application, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdateOne) SaveX(ctx context.Context) *Application {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdateOne) check() error {
	if v, ok := _u.mutation.UserEmail(); ok {
		if err := application.UserEmailValidator(v); err != nil {
			return &ValidationError{Name: "user_email", err: fmt.Errorf(`ent: validator failed for field "Application.user_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicationUpdateOne) sqlSave(ctx context.Context) (_node *Application, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Application.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, application.FieldID)
		for _, f := range fields {
			if !application.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != application.FieldID {
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
		_spec.SetField(application.FieldUserEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.BankID(); ok {
		_spec.SetField(application.FieldBankID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBankID(); ok {
		_spec.AddField(application.FieldBankID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilledFormFields(); ok {
		_spec.SetField(application.FieldFilledFormFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilledFormFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldFilledFormFields, value)
		})
	}
	if _u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.AppointmentsTable,
			Columns: []string{application.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentsIDs(); len(nodes) > 0 && !_u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.AppointmentsTable,
			Columns: []string{application.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.AppointmentsTable,
			Columns: []string{application.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Application{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
