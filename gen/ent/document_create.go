// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edulend/loanassist/gen/ent/document"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetEmail sets the "email" field.
func (_c *DocumentCreate) SetEmail(v string) *DocumentCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetUploadTime sets the "upload_time" field.
func (_c *DocumentCreate) SetUploadTime(v time.Time) *DocumentCreate {
	_c.mutation.SetUploadTime(v)
	return _c
}

// SetNillableUploadTime sets the "upload_time" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUploadTime(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUploadTime(*v)
	}
	return _c
}

// SetSourceFiles sets the "source_files" field.
func (_c *DocumentCreate) SetSourceFiles(v string) *DocumentCreate {
	_c.mutation.SetSourceFiles(v)
	return _c
}

// SetExtractedName sets the "extracted_name" field.
func (_c *DocumentCreate) SetExtractedName(v string) *DocumentCreate {
	_c.mutation.SetExtractedName(v)
	return _c
}

// SetNillableExtractedName sets the "extracted_name" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractedName(v *string) *DocumentCreate {
	if v != nil {
		_c.SetExtractedName(*v)
	}
	return _c
}

// SetExtractedCourse sets the "extracted_course" field.
func (_c *DocumentCreate) SetExtractedCourse(v string) *DocumentCreate {
	_c.mutation.SetExtractedCourse(v)
	return _c
}

// SetNillableExtractedCourse sets the "extracted_course" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractedCourse(v *string) *DocumentCreate {
	if v != nil {
		_c.SetExtractedCourse(*v)
	}
	return _c
}

// SetExtractedCollege sets the "extracted_college" field.
func (_c *DocumentCreate) SetExtractedCollege(v string) *DocumentCreate {
	_c.mutation.SetExtractedCollege(v)
	return _c
}

// SetNillableExtractedCollege sets the "extracted_college" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractedCollege(v *string) *DocumentCreate {
	if v != nil {
		_c.SetExtractedCollege(*v)
	}
	return _c
}

// SetExtractedUsn sets the "extracted_usn" field.
func (_c *DocumentCreate) SetExtractedUsn(v string) *DocumentCreate {
	_c.mutation.SetExtractedUsn(v)
	return _c
}

// SetNillableExtractedUsn sets the "extracted_usn" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractedUsn(v *string) *DocumentCreate {
	if v != nil {
		_c.SetExtractedUsn(*v)
	}
	return _c
}

// SetExtractedDob sets the "extracted_dob" field.
func (_c *DocumentCreate) SetExtractedDob(v string) *DocumentCreate {
	_c.mutation.SetExtractedDob(v)
	return _c
}

// SetNillableExtractedDob sets the "extracted_dob" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractedDob(v *string) *DocumentCreate {
	if v != nil {
		_c.SetExtractedDob(*v)
	}
	return _c
}

// SetExtractedGpa sets the "extracted_gpa" field.
func (_c *DocumentCreate) SetExtractedGpa(v float64) *DocumentCreate {
	_c.mutation.SetExtractedGpa(v)
	return _c
}

// SetNillableExtractedGpa sets the "extracted_gpa" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractedGpa(v *float64) *DocumentCreate {
	if v != nil {
		_c.SetExtractedGpa(*v)
	}
	return _c
}

// SetExtractedIncome sets the "extracted_income" field.
func (_c *DocumentCreate) SetExtractedIncome(v float64) *DocumentCreate {
	_c.mutation.SetExtractedIncome(v)
	return _c
}

// SetNillableExtractedIncome sets the "extracted_income" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractedIncome(v *float64) *DocumentCreate {
	if v != nil {
		_c.SetExtractedIncome(*v)
	}
	return _c
}

// SetExtractedLoanAmount sets the "extracted_loan_amount" field.
func (_c *DocumentCreate) SetExtractedLoanAmount(v float64) *DocumentCreate {
	_c.mutation.SetExtractedLoanAmount(v)
	return _c
}

// SetNillableExtractedLoanAmount sets the "extracted_loan_amount" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractedLoanAmount(v *float64) *DocumentCreate {
	if v != nil {
		_c.SetExtractedLoanAmount(*v)
	}
	return _c
}

// SetExtractedAdmissionYear sets the "extracted_admission_year" field.
func (_c *DocumentCreate) SetExtractedAdmissionYear(v int) *DocumentCreate {
	_c.mutation.SetExtractedAdmissionYear(v)
	return _c
}

// SetNillableExtractedAdmissionYear sets the "extracted_admission_year" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractedAdmissionYear(v *int) *DocumentCreate {
	if v != nil {
		_c.SetExtractedAdmissionYear(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *DocumentCreate) SetRawText(v string) *DocumentCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetParsedJSON sets the "parsed_json" field.
func (_c *DocumentCreate) SetParsedJSON(v json.RawMessage) *DocumentCreate {
	_c.mutation.SetParsedJSON(v)
	return _c
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.UploadTime(); !ok {
		v := document.DefaultUploadTime()
		_c.mutation.SetUploadTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Document.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := document.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Document.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadTime(); !ok {
		return &ValidationError{Name: "upload_time", err: errors.New(`ent: missing required field "Document.upload_time"`)}
	}
	if _, ok := _c.mutation.SourceFiles(); !ok {
		return &ValidationError{Name: "source_files", err: errors.New(`ent: missing required field "Document.source_files"`)}
	}
	if v, ok := _c.mutation.SourceFiles(); ok {
		if err := document.SourceFilesValidator(v); err != nil {
			return &ValidationError{Name: "source_files", err: fmt.Errorf(`ent: validator failed for field "Document.source_files": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "Document.raw_text"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(document.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.UploadTime(); ok {
		_spec.SetField(document.FieldUploadTime, field.TypeTime, value)
		_node.UploadTime = value
	}
	if value, ok := _c.mutation.SourceFiles(); ok {
		_spec.SetField(document.FieldSourceFiles, field.TypeString, value)
		_node.SourceFiles = value
	}
	if value, ok := _c.mutation.ExtractedName(); ok {
		_spec.SetField(document.FieldExtractedName, field.TypeString, value)
		_node.ExtractedName = &value
	}
	if value, ok := _c.mutation.ExtractedCourse(); ok {
		_spec.SetField(document.FieldExtractedCourse, field.TypeString, value)
		_node.ExtractedCourse = &value
	}
	if value, ok := _c.mutation.ExtractedCollege(); ok {
		_spec.SetField(document.FieldExtractedCollege, field.TypeString, value)
		_node.ExtractedCollege = &value
	}
	if value, ok := _c.mutation.ExtractedUsn(); ok {
		_spec.SetField(document.FieldExtractedUsn, field.TypeString, value)
		_node.ExtractedUsn = &value
	}
	if value, ok := _c.mutation.ExtractedDob(); ok {
		_spec.SetField(document.FieldExtractedDob, field.TypeString, value)
		_node.ExtractedDob = &value
	}
	if value, ok := _c.mutation.ExtractedGpa(); ok {
		_spec.SetField(document.FieldExtractedGpa, field.TypeFloat64, value)
		_node.ExtractedGpa = &value
	}
	if value, ok := _c.mutation.ExtractedIncome(); ok {
		_spec.SetField(document.FieldExtractedIncome, field.TypeFloat64, value)
		_node.ExtractedIncome = &value
	}
	if value, ok := _c.mutation.ExtractedLoanAmount(); ok {
		_spec.SetField(document.FieldExtractedLoanAmount, field.TypeFloat64, value)
		_node.ExtractedLoanAmount = &value
	}
	if value, ok := _c.mutation.ExtractedAdmissionYear(); ok {
		_spec.SetField(document.FieldExtractedAdmissionYear, field.TypeInt, value)
		_node.ExtractedAdmissionYear = &value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(document.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.ParsedJSON(); ok {
		_spec.SetField(document.FieldParsedJSON, field.TypeJSON, value)
		_node.ParsedJSON = value
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
				if specs[i].ID.Value != nil {
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
