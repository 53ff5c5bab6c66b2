// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edulend/loanassist/gen/ent/bank"
)

// BankCreate is the builder for creating a Bank entity.
type BankCreate struct {
	config
	mutation *BankMutation
	hooks    []Hook
}

// SetBankName sets the "bank_name" field.
func (_c *BankCreate) SetBankName(v string) *BankCreate {
	_c.mutation.SetBankName(v)
	return _c
}

// SetMinGpa sets the "min_gpa" field.
func (_c *BankCreate) SetMinGpa(v float64) *BankCreate {
	_c.mutation.SetMinGpa(v)
	return _c
}

// SetMaxIncome sets the "max_income" field.
func (_c *BankCreate) SetMaxIncome(v float64) *BankCreate {
	_c.mutation.SetMaxIncome(v)
	return _c
}

// SetBaseInterestRate sets the "base_interest_rate" field.
func (_c *BankCreate) SetBaseInterestRate(v float64) *BankCreate {
	_c.mutation.SetBaseInterestRate(v)
	return _c
}

// SetMaxLoanAmount sets the "max_loan_amount" field.
func (_c *BankCreate) SetMaxLoanAmount(v int) *BankCreate {
	_c.mutation.SetMaxLoanAmount(v)
	return _c
}

// SetApprovalRate sets the "approval_rate" field.
func (_c *BankCreate) SetApprovalRate(v int) *BankCreate {
	_c.mutation.SetApprovalRate(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *BankCreate) SetDescription(v string) *BankCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *BankCreate) SetNillableDescription(v *string) *BankCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BankCreate) SetID(v int) *BankCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BankMutation object of the builder.
func (_c *BankCreate) Mutation() *BankMutation {
	return _c.mutation
}

// Save creates the Bank in the database.
func (_c *BankCreate) Save(ctx context.Context) (*Bank, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BankCreate) SaveX(ctx context.Context) *Bank {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BankCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BankCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BankCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := bank.DefaultDescription
		_c.mutation.SetDescription(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BankCreate) check() error {
	if _, ok := _c.mutation.BankName(); !ok {
		return &ValidationError{Name: "bank_name", err: errors.New(`ent: missing required field "Bank.bank_name"`)}
	}
	if v, ok := _c.mutation.BankName(); ok {
		if err := bank.BankNameValidator(v); err != nil {
			return &ValidationError{Name: "bank_name", err: fmt.Errorf(`ent: validator failed for field "Bank.bank_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinGpa(); !ok {
		return &ValidationError{Name: "min_gpa", err: errors.New(`ent: missing required field "Bank.min_gpa"`)}
	}
	if _, ok := _c.mutation.MaxIncome(); !ok {
		return &ValidationError{Name: "max_income", err: errors.New(`ent: missing required field "Bank.max_income"`)}
	}
	if _, ok := _c.mutation.BaseInterestRate(); !ok {
		return &ValidationError{Name: "base_interest_rate", err: errors.New(`ent: missing required field "Bank.base_interest_rate"`)}
	}
	if _, ok := _c.mutation.MaxLoanAmount(); !ok {
		return &ValidationError{Name: "max_loan_amount", err: errors.New(`ent: missing required field "Bank.max_loan_amount"`)}
	}
	if _, ok := _c.mutation.ApprovalRate(); !ok {
		return &ValidationError{Name: "approval_rate", err: errors.New(`ent: missing required field "Bank.approval_rate"`)}
	}
	return nil
}

func (_c *BankCreate) sqlSave(ctx context.Context) (*Bank, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BankCreate) createSpec() (*Bank, *sqlgraph.CreateSpec) {
	var (
		_node = &Bank{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bank.Table, sqlgraph.NewFieldSpec(bank.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BankName(); ok {
		_spec.SetField(bank.FieldBankName, field.TypeString, value)
		_node.BankName = value
	}
	if value, ok := _c.mutation.MinGpa(); ok {
		_spec.SetField(bank.FieldMinGpa, field.TypeFloat64, value)
		_node.MinGpa = value
	}
	if value, ok := _c.mutation.MaxIncome(); ok {
		_spec.SetField(bank.FieldMaxIncome, field.TypeFloat64, value)
		_node.MaxIncome = value
	}
	if value, ok := _c.mutation.BaseInterestRate(); ok {
		_spec.SetField(bank.FieldBaseInterestRate, field.TypeFloat64, value)
		_node.BaseInterestRate = value
	}
	if value, ok := _c.mutation.MaxLoanAmount(); ok {
		_spec.SetField(bank.FieldMaxLoanAmount, field.TypeInt, value)
		_node.MaxLoanAmount = value
	}
	if value, ok := _c.mutation.ApprovalRate(); ok {
		_spec.SetField(bank.FieldApprovalRate, field.TypeInt, value)
		_node.ApprovalRate = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(bank.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	return _node, _spec
}

// BankCreateBulk is the builder for creating many Bank entities in bulk.
type BankCreateBulk struct {
	config
	err      error
	builders []*BankCreate
}

// Save creates the Bank entities in the database.
func (_c *BankCreateBulk) Save(ctx context.Context) ([]*Bank, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bank, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BankMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *BankCreateBulk) SaveX(ctx context.Context) []*Bank {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BankCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BankCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
