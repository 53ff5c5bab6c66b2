// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edulend/loanassist/gen/ent/bank"
	"github.com/edulend/loanassist/gen/ent/predicate"
)

// BankUpdate is the builder for updating Bank entities.
type BankUpdate struct {
	config
	hooks    []Hook
	mutation *BankMutation
}

// Where appends a list predicates to the BankUpdate builder.
func (_u *BankUpdate) Where(ps ...predicate.Bank) *BankUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *BankUpdate) SetBankName(v string) *BankUpdate {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *BankUpdate) SetNillableBankName(v *string) *BankUpdate {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// SetMinGpa sets the "min_gpa" field.
func (_u *BankUpdate) SetMinGpa(v float64) *BankUpdate {
	_u.mutation.ResetMinGpa()
	_u.mutation.SetMinGpa(v)
	return _u
}

// SetNillableMinGpa sets the "min_gpa" field if the given value is not nil.
func (_u *BankUpdate) SetNillableMinGpa(v *float64) *BankUpdate {
	if v != nil {
		_u.SetMinGpa(*v)
	}
	return _u
}

// AddMinGpa adds value to the "min_gpa" field.
func (_u *BankUpdate) AddMinGpa(v float64) *BankUpdate {
	_u.mutation.AddMinGpa(v)
	return _u
}

// SetMaxIncome sets the "max_income" field.
func (_u *BankUpdate) SetMaxIncome(v float64) *BankUpdate {
	_u.mutation.ResetMaxIncome()
	_u.mutation.SetMaxIncome(v)
	return _u
}

// SetNillableMaxIncome sets the "max_income" field if the given value is not nil.
func (_u *BankUpdate) SetNillableMaxIncome(v *float64) *BankUpdate {
	if v != nil {
		_u.SetMaxIncome(*v)
	}
	return _u
}

// AddMaxIncome adds value to the "max_income" field.
func (_u *BankUpdate) AddMaxIncome(v float64) *BankUpdate {
	_u.mutation.AddMaxIncome(v)
	return _u
}

// SetBaseInterestRate sets the "base_interest_rate" field.
func (_u *BankUpdate) SetBaseInterestRate(v float64) *BankUpdate {
	_u.mutation.ResetBaseInterestRate()
	_u.mutation.SetBaseInterestRate(v)
	return _u
}

// SetNillableBaseInterestRate sets the "base_interest_rate" field if the given value is not nil.
func (_u *BankUpdate) SetNillableBaseInterestRate(v *float64) *BankUpdate {
	if v != nil {
		_u.SetBaseInterestRate(*v)
	}
	return _u
}

// AddBaseInterestRate adds value to the "base_interest_rate" field.
func (_u *BankUpdate) AddBaseInterestRate(v float64) *BankUpdate {
	_u.mutation.AddBaseInterestRate(v)
	return _u
}

// SetMaxLoanAmount sets the "max_loan_amount" field.
func (_u *BankUpdate) SetMaxLoanAmount(v int) *BankUpdate {
	_u.mutation.ResetMaxLoanAmount()
	_u.mutation.SetMaxLoanAmount(v)
	return _u
}

// SetNillableMaxLoanAmount sets the "max_loan_amount" field if the given value is not nil.
func (_u *BankUpdate) SetNillableMaxLoanAmount(v *int) *BankUpdate {
	if v != nil {
		_u.SetMaxLoanAmount(*v)
	}
	return _u
}

// AddMaxLoanAmount adds value to the "max_loan_amount" field.
func (_u *BankUpdate) AddMaxLoanAmount(v int) *BankUpdate {
	_u.mutation.AddMaxLoanAmount(v)
	return _u
}

// SetApprovalRate sets the "approval_rate" field.
func (_u *BankUpdate) SetApprovalRate(v int) *BankUpdate {
	_u.mutation.ResetApprovalRate()
	_u.mutation.SetApprovalRate(v)
	return _u
}

// SetNillableApprovalRate sets the "approval_rate" field if the given value is not nil.
func (_u *BankUpdate) SetNillableApprovalRate(v *int) *BankUpdate {
	if v != nil {
		_u.SetApprovalRate(*v)
	}
	return _u
}

// AddApprovalRate adds value to the "approval_rate" field.
func (_u *BankUpdate) AddApprovalRate(v int) *BankUpdate {
	_u.mutation.AddApprovalRate(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *BankUpdate) SetDescription(v string) *BankUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BankUpdate) SetNillableDescription(v *string) *BankUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BankUpdate) ClearDescription() *BankUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the BankMutation object of the builder.
func (_u *BankUpdate) Mutation() *BankMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BankUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BankUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BankUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BankUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BankUpdate) check() error {
	if v, ok := _u.mutation.BankName(); ok {
		if err := bank.BankNameValidator(v); err != nil {
			return &ValidationError{Name: "bank_name", err: fmt.Errorf(`ent: validator failed for field "Bank.bank_name": %w`, err)}
		}
	}
	return nil
}

func (_u *BankUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bank.Table, bank.Columns, sqlgraph.NewFieldSpec(bank.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(bank.FieldBankName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinGpa(); ok {
		_spec.SetField(bank.FieldMinGpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinGpa(); ok {
		_spec.AddField(bank.FieldMinGpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxIncome(); ok {
		_spec.SetField(bank.FieldMaxIncome, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxIncome(); ok {
		_spec.AddField(bank.FieldMaxIncome, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BaseInterestRate(); ok {
		_spec.SetField(bank.FieldBaseInterestRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBaseInterestRate(); ok {
		_spec.AddField(bank.FieldBaseInterestRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxLoanAmount(); ok {
		_spec.SetField(bank.FieldMaxLoanAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxLoanAmount(); ok {
		_spec.AddField(bank.FieldMaxLoanAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ApprovalRate(); ok {
		_spec.SetField(bank.FieldApprovalRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApprovalRate(); ok {
		_spec.AddField(bank.FieldApprovalRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(bank.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(bank.FieldDescription, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bank.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BankUpdateOne is the builder for updating a single Bank entity.
type BankUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BankMutation
}

// SetBankName sets the "bank_name" field.
func (_u *BankUpdateOne) SetBankName(v string) *BankUpdateOne {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *BankUpdateOne) SetNillableBankName(v *string) *BankUpdateOne {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// SetMinGpa sets the "min_gpa" field.
func (_u *BankUpdateOne) SetMinGpa(v float64) *BankUpdateOne {
	_u.mutation.ResetMinGpa()
	_u.mutation.SetMinGpa(v)
	return _u
}

// SetNillableMinGpa sets the "min_gpa" field if the given value is not nil.
func (_u *BankUpdateOne) SetNillableMinGpa(v *float64) *BankUpdateOne {
	if v != nil {
		_u.SetMinGpa(*v)
	}
	return _u
}

// AddMinGpa adds value to the "min_gpa" field.
func (_u *BankUpdateOne) AddMinGpa(v float64) *BankUpdateOne {
	_u.mutation.AddMinGpa(v)
	return _u
}

// SetMaxIncome sets the "max_income" field.
func (_u *BankUpdateOne) SetMaxIncome(v float64) *BankUpdateOne {
	_u.mutation.ResetMaxIncome()
	_u.mutation.SetMaxIncome(v)
	return _u
}

// SetNillableMaxIncome sets the "max_income" field if the given value is not nil.
func (_u *BankUpdateOne) SetNillableMaxIncome(v *float64) *BankUpdateOne {
	if v != nil {
		_u.SetMaxIncome(*v)
	}
	return _u
}

// AddMaxIncome adds value to the "max_income" field.
func (_u *BankUpdateOne) AddMaxIncome(v float64) *BankUpdateOne {
	_u.mutation.AddMaxIncome(v)
	return _u
}

// SetBaseInterestRate sets the "base_interest_rate" field.
func (_u *BankUpdateOne) SetBaseInterestRate(v float64) *BankUpdateOne {
	_u.mutation.ResetBaseInterestRate()
	_u.mutation.SetBaseInterestRate(v)
	return _u
}

// SetNillableBaseInterestRate sets the "base_interest_rate" field if the given value is not nil.
func (_u *BankUpdateOne) SetNillableBaseInterestRate(v *float64) *BankUpdateOne {
	if v != nil {
		_u.SetBaseInterestRate(*v)
	}
	return _u
}

// AddBaseInterestRate adds value to the "base_interest_rate" field.
func (_u *BankUpdateOne) AddBaseInterestRate(v float64) *BankUpdateOne {
	_u.mutation.AddBaseInterestRate(v)
	return _u
}

// SetMaxLoanAmount sets the "max_loan_amount" field.
func (_u *BankUpdateOne) SetMaxLoanAmount(v int) *BankUpdateOne {
	_u.mutation.ResetMaxLoanAmount()
	_u.mutation.SetMaxLoanAmount(v)
	return _u
}

// SetNillableMaxLoanAmount sets the "max_loan_amount" field if the given value is not nil.
func (_u *BankUpdateOne) SetNillableMaxLoanAmount(v *int) *BankUpdateOne {
	if v != nil {
		_u.SetMaxLoanAmount(*v)
	}
	return _u
}

// AddMaxLoanAmount adds value to the "max_loan_amount" field.
func (_u *BankUpdateOne) AddMaxLoanAmount(v int) *BankUpdateOne {
	_u.mutation.AddMaxLoanAmount(v)
	return _u
}

// SetApprovalRate sets the "approval_rate" field.
func (_u *BankUpdateOne) SetApprovalRate(v int) *BankUpdateOne {
	_u.mutation.ResetApprovalRate()
	_u.mutation.SetApprovalRate(v)
	return _u
}

// SetNillableApprovalRate sets the "approval_rate" field if the given value is not nil.
func (_u *BankUpdateOne) SetNillableApprovalRate(v *int) *BankUpdateOne {
	if v != nil {
		_u.SetApprovalRate(*v)
	}
	return _u
}

// AddApprovalRate adds value to the "approval_rate" field.
func (_u *BankUpdateOne) AddApprovalRate(v int) *BankUpdateOne {
	_u.mutation.AddApprovalRate(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *BankUpdateOne) SetDescription(v string) *BankUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BankUpdateOne) SetNillableDescription(v *string) *BankUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BankUpdateOne) ClearDescription() *BankUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the BankMutation object of the builder.
func (_u *BankUpdateOne) Mutation() *BankMutation {
	return _u.mutation
}

// Where appends a list predicates to the BankUpdate builder.
func (_u *BankUpdateOne) Where(ps ...predicate.Bank) *BankUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BankUpdateOne) Select(field string, fields ...string) *BankUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bank entity.
func (_u *BankUpdateOne) Save(ctx context.Context) (*Bank, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BankUpdateOne) SaveX(ctx context.Context) *Bank {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BankUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BankUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BankUpdateOne) check() error {
	if v, ok := _u.mutation.BankName(); ok {
		if err := bank.BankNameValidator(v); err != nil {
			return &ValidationError{Name: "bank_name", err: fmt.Errorf(`ent: validator failed for field "Bank.bank_name": %w`, err)}
		}
	}
	return nil
}

func (_u *BankUpdateOne) sqlSave(ctx context.Context) (_node *Bank, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bank.Table, bank.Columns, sqlgraph.NewFieldSpec(bank.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bank.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bank.FieldID)
		for _, f := range fields {
			if !bank.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bank.FieldID {
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
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(bank.FieldBankName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinGpa(); ok {
		_spec.SetField(bank.FieldMinGpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinGpa(); ok {
		_spec.AddField(bank.FieldMinGpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxIncome(); ok {
		_spec.SetField(bank.FieldMaxIncome, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxIncome(); ok {
		_spec.AddField(bank.FieldMaxIncome, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BaseInterestRate(); ok {
		_spec.SetField(bank.FieldBaseInterestRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBaseInterestRate(); ok {
		_spec.AddField(bank.FieldBaseInterestRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxLoanAmount(); ok {
		_spec.SetField(bank.FieldMaxLoanAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxLoanAmount(); ok {
		_spec.AddField(bank.FieldMaxLoanAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ApprovalRate(); ok {
		_spec.SetField(bank.FieldApprovalRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApprovalRate(); ok {
		_spec.AddField(bank.FieldApprovalRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(bank.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(bank.FieldDescription, field.TypeString)
	}
	_node = &Bank{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bank.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
