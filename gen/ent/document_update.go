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
	"github.com/edulend/loanassist/gen/ent/document"
	"github.com/edulend/loanassist/gen/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *DocumentUpdate) SetEmail(v string) *DocumentUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableEmail(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetSourceFiles sets the "source_files" field.
func (_u *DocumentUpdate) SetSourceFiles(v string) *DocumentUpdate {
	_u.mutation.SetSourceFiles(v)
	return _u
}

// SetNillableSourceFiles sets the "source_files" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourceFiles(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourceFiles(*v)
	}
	return _u
}

// SetExtractedName sets the "extracted_name" field.
func (_u *DocumentUpdate) SetExtractedName(v string) *DocumentUpdate {
	_u.mutation.SetExtractedName(v)
	return _u
}

// SetNillableExtractedName sets the "extracted_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedName(*v)
	}
	return _u
}

// ClearExtractedName clears the value of the "extracted_name" field.
func (_u *DocumentUpdate) ClearExtractedName() *DocumentUpdate {
	_u.mutation.ClearExtractedName()
	return _u
}

// SetExtractedCourse sets the "extracted_course" field.
func (_u *DocumentUpdate) SetExtractedCourse(v string) *DocumentUpdate {
	_u.mutation.SetExtractedCourse(v)
	return _u
}

// SetNillableExtractedCourse sets the "extracted_course" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedCourse(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedCourse(*v)
	}
	return _u
}

// ClearExtractedCourse clears the value of the "extracted_course" field.
func (_u *DocumentUpdate) ClearExtractedCourse() *DocumentUpdate {
	_u.mutation.ClearExtractedCourse()
	return _u
}

// SetExtractedCollege sets the "extracted_college" field.
func (_u *DocumentUpdate) SetExtractedCollege(v string) *DocumentUpdate {
	_u.mutation.SetExtractedCollege(v)
	return _u
}

// SetNillableExtractedCollege sets the "extracted_college" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedCollege(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedCollege(*v)
	}
	return _u
}

// ClearExtractedCollege clears the value of the "extracted_college" field.
func (_u *DocumentUpdate) ClearExtractedCollege() *DocumentUpdate {
	_u.mutation.ClearExtractedCollege()
	return _u
}

// SetExtractedUsn sets the "extracted_usn" field.
func (_u *DocumentUpdate) SetExtractedUsn(v string) *DocumentUpdate {
	_u.mutation.SetExtractedUsn(v)
	return _u
}

// SetNillableExtractedUsn sets the "extracted_usn" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedUsn(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedUsn(*v)
	}
	return _u
}

// ClearExtractedUsn clears the value of the "extracted_usn" field.
func (_u *DocumentUpdate) ClearExtractedUsn() *DocumentUpdate {
	_u.mutation.ClearExtractedUsn()
	return _u
}

// SetExtractedDob sets the "extracted_dob" field.
func (_u *DocumentUpdate) SetExtractedDob(v string) *DocumentUpdate {
	_u.mutation.SetExtractedDob(v)
	return _u
}

// SetNillableExtractedDob sets the "extracted_dob" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedDob(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedDob(*v)
	}
	return _u
}

// ClearExtractedDob clears the value of the "extracted_dob" field.
func (_u *DocumentUpdate) ClearExtractedDob() *DocumentUpdate {
	_u.mutation.ClearExtractedDob()
	return _u
}

// SetExtractedGpa sets the "extracted_gpa" field.
func (_u *DocumentUpdate) SetExtractedGpa(v float64) *DocumentUpdate {
	_u.mutation.ResetExtractedGpa()
	_u.mutation.SetExtractedGpa(v)
	return _u
}

// SetNillableExtractedGpa sets the "extracted_gpa" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedGpa(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedGpa(*v)
	}
	return _u
}

// AddExtractedGpa adds value to the "extracted_gpa" field.
func (_u *DocumentUpdate) AddExtractedGpa(v float64) *DocumentUpdate {
	_u.mutation.AddExtractedGpa(v)
	return _u
}

// ClearExtractedGpa clears the value of the "extracted_gpa" field.
func (_u *DocumentUpdate) ClearExtractedGpa() *DocumentUpdate {
	_u.mutation.ClearExtractedGpa()
	return _u
}

// SetExtractedIncome sets the "extracted_income" field.
func (_u *DocumentUpdate) SetExtractedIncome(v float64) *DocumentUpdate {
	_u.mutation.ResetExtractedIncome()
	_u.mutation.SetExtractedIncome(v)
	return _u
}

// SetNillableExtractedIncome sets the "extracted_income" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedIncome(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedIncome(*v)
	}
	return _u
}

// AddExtractedIncome adds value to the "extracted_income" field.
func (_u *DocumentUpdate) AddExtractedIncome(v float64) *DocumentUpdate {
	_u.mutation.AddExtractedIncome(v)
	return _u
}

// ClearExtractedIncome clears the value of the "extracted_income" field.
func (_u *DocumentUpdate) ClearExtractedIncome() *DocumentUpdate {
	_u.mutation.ClearExtractedIncome()
	return _u
}

// SetExtractedLoanAmount sets the "extracted_loan_amount" field.
func (_u *DocumentUpdate) SetExtractedLoanAmount(v float64) *DocumentUpdate {
	_u.mutation.ResetExtractedLoanAmount()
	_u.mutation.SetExtractedLoanAmount(v)
	return _u
}

// SetNillableExtractedLoanAmount sets the "extracted_loan_amount" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedLoanAmount(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedLoanAmount(*v)
	}
	return _u
}

// AddExtractedLoanAmount adds value to the "extracted_loan_amount" field.
func (_u *DocumentUpdate) AddExtractedLoanAmount(v float64) *DocumentUpdate {
	_u.mutation.AddExtractedLoanAmount(v)
	return _u
}

// ClearExtractedLoanAmount clears the value of the "extracted_loan_amount" field.
func (_u *DocumentUpdate) ClearExtractedLoanAmount() *DocumentUpdate {
	_u.mutation.ClearExtractedLoanAmount()
	return _u
}

// SetExtractedAdmissionYear sets the "extracted_admission_year" field.
func (_u *DocumentUpdate) SetExtractedAdmissionYear(v int) *DocumentUpdate {
	_u.mutation.ResetExtractedAdmissionYear()
	_u.mutation.SetExtractedAdmissionYear(v)
	return _u
}

// SetNillableExtractedAdmissionYear sets the "extracted_admission_year" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedAdmissionYear(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedAdmissionYear(*v)
	}
	return _u
}

// AddExtractedAdmissionYear adds value to the "extracted_admission_year" field.
func (_u *DocumentUpdate) AddExtractedAdmissionYear(v int) *DocumentUpdate {
	_u.mutation.AddExtractedAdmissionYear(v)
	return _u
}

// ClearExtractedAdmissionYear clears the value of the "extracted_admission_year" field.
func (_u *DocumentUpdate) ClearExtractedAdmissionYear() *DocumentUpdate {
	_u.mutation.ClearExtractedAdmissionYear()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *DocumentUpdate) SetRawText(v string) *DocumentUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableRawText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetParsedJSON sets the "parsed_json" field.
func (_u *DocumentUpdate) SetParsedJSON(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetParsedJSON(v)
	return _u
}

// AppendParsedJSON appends value to the "parsed_json" field.
func (_u *DocumentUpdate) AppendParsedJSON(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendParsedJSON(v)
	return _u
}

// ClearParsedJSON clears the value of the "parsed_json" field.
func (_u *DocumentUpdate) ClearParsedJSON() *DocumentUpdate {
	_u.mutation.ClearParsedJSON()
	return _u
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := document.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Document.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFiles(); ok {
		if err := document.SourceFilesValidator(v); err != nil {
			return &ValidationError{Name: "source_files", err: fmt.Errorf(`ent: validator failed for field "Document.source_files": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(document.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFiles(); ok {
		_spec.SetField(document.FieldSourceFiles, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedName(); ok {
		_spec.SetField(document.FieldExtractedName, field.TypeString, value)
	}
	if _u.mutation.ExtractedNameCleared() {
		_spec.ClearField(document.FieldExtractedName, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedCourse(); ok {
		_spec.SetField(document.FieldExtractedCourse, field.TypeString, value)
	}
	if _u.mutation.ExtractedCourseCleared() {
		_spec.ClearField(document.FieldExtractedCourse, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedCollege(); ok {
		_spec.SetField(document.FieldExtractedCollege, field.TypeString, value)
	}
	if _u.mutation.ExtractedCollegeCleared() {
		_spec.ClearField(document.FieldExtractedCollege, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedUsn(); ok {
		_spec.SetField(document.FieldExtractedUsn, field.TypeString, value)
	}
	if _u.mutation.ExtractedUsnCleared() {
		_spec.ClearField(document.FieldExtractedUsn, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedDob(); ok {
		_spec.SetField(document.FieldExtractedDob, field.TypeString, value)
	}
	if _u.mutation.ExtractedDobCleared() {
		_spec.ClearField(document.FieldExtractedDob, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedGpa(); ok {
		_spec.SetField(document.FieldExtractedGpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractedGpa(); ok {
		_spec.AddField(document.FieldExtractedGpa, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractedGpaCleared() {
		_spec.ClearField(document.FieldExtractedGpa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractedIncome(); ok {
		_spec.SetField(document.FieldExtractedIncome, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractedIncome(); ok {
		_spec.AddField(document.FieldExtractedIncome, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractedIncomeCleared() {
		_spec.ClearField(document.FieldExtractedIncome, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractedLoanAmount(); ok {
		_spec.SetField(document.FieldExtractedLoanAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractedLoanAmount(); ok {
		_spec.AddField(document.FieldExtractedLoanAmount, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractedLoanAmountCleared() {
		_spec.ClearField(document.FieldExtractedLoanAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractedAdmissionYear(); ok {
		_spec.SetField(document.FieldExtractedAdmissionYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractedAdmissionYear(); ok {
		_spec.AddField(document.FieldExtractedAdmissionYear, field.TypeInt, value)
	}
	if _u.mutation.ExtractedAdmissionYearCleared() {
		_spec.ClearField(document.FieldExtractedAdmissionYear, field.TypeInt)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(document.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParsedJSON(); ok {
		_spec.SetField(document.FieldParsedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParsedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldParsedJSON, value)
		})
	}
	if _u.mutation.ParsedJSONCleared() {
		_spec.ClearField(document.FieldParsedJSON, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetEmail sets the "email" field.
func (_u *DocumentUpdateOne) SetEmail(v string) *DocumentUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableEmail(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetSourceFiles sets the "source_files" field.
func (_u *DocumentUpdateOne) SetSourceFiles(v string) *DocumentUpdateOne {
	_u.mutation.SetSourceFiles(v)
	return _u
}

// SetNillableSourceFiles sets the "source_files" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourceFiles(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourceFiles(*v)
	}
	return _u
}

// SetExtractedName sets the "extracted_name" field.
func (_u *DocumentUpdateOne) SetExtractedName(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractedName(v)
	return _u
}

// SetNillableExtractedName sets the "extracted_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedName(*v)
	}
	return _u
}

// ClearExtractedName clears the value of the "extracted_name" field.
func (_u *DocumentUpdateOne) ClearExtractedName() *DocumentUpdateOne {
	_u.mutation.ClearExtractedName()
	return _u
}

// SetExtractedCourse sets the "extracted_course" field.
func (_u *DocumentUpdateOne) SetExtractedCourse(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractedCourse(v)
	return _u
}

// SetNillableExtractedCourse sets the "extracted_course" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedCourse(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedCourse(*v)
	}
	return _u
}

// ClearExtractedCourse clears the value of the "extracted_course" field.
func (_u *DocumentUpdateOne) ClearExtractedCourse() *DocumentUpdateOne {
	_u.mutation.ClearExtractedCourse()
	return _u
}

// SetExtractedCollege sets the "extracted_college" field.
func (_u *DocumentUpdateOne) SetExtractedCollege(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractedCollege(v)
	return _u
}

// SetNillableExtractedCollege sets the "extracted_college" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedCollege(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedCollege(*v)
	}
	return _u
}

// ClearExtractedCollege clears the value of the "extracted_college" field.
func (_u *DocumentUpdateOne) ClearExtractedCollege() *DocumentUpdateOne {
	_u.mutation.ClearExtractedCollege()
	return _u
}

// SetExtractedUsn sets the "extracted_usn" field.
func (_u *DocumentUpdateOne) SetExtractedUsn(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractedUsn(v)
	return _u
}

// SetNillableExtractedUsn sets the "extracted_usn" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedUsn(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedUsn(*v)
	}
	return _u
}

// ClearExtractedUsn clears the value of the "extracted_usn" field.
func (_u *DocumentUpdateOne) ClearExtractedUsn() *DocumentUpdateOne {
	_u.mutation.ClearExtractedUsn()
	return _u
}

// SetExtractedDob sets the "extracted_dob" field.
func (_u *DocumentUpdateOne) SetExtractedDob(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractedDob(v)
	return _u
}

// SetNillableExtractedDob sets the "extracted_dob" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedDob(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedDob(*v)
	}
	return _u
}

// ClearExtractedDob clears the value of the "extracted_dob" field.
func (_u *DocumentUpdateOne) ClearExtractedDob() *DocumentUpdateOne {
	_u.mutation.ClearExtractedDob()
	return _u
}

// SetExtractedGpa sets the "extracted_gpa" field.
func (_u *DocumentUpdateOne) SetExtractedGpa(v float64) *DocumentUpdateOne {
	_u.mutation.ResetExtractedGpa()
	_u.mutation.SetExtractedGpa(v)
	return _u
}

// SetNillableExtractedGpa sets the "extracted_gpa" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedGpa(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedGpa(*v)
	}
	return _u
}

// AddExtractedGpa adds value to the "extracted_gpa" field.
func (_u *DocumentUpdateOne) AddExtractedGpa(v float64) *DocumentUpdateOne {
	_u.mutation.AddExtractedGpa(v)
	return _u
}

// ClearExtractedGpa clears the value of the "extracted_gpa" field.
func (_u *DocumentUpdateOne) ClearExtractedGpa() *DocumentUpdateOne {
	_u.mutation.ClearExtractedGpa()
	return _u
}

// SetExtractedIncome sets the "extracted_income" field.
func (_u *DocumentUpdateOne) SetExtractedIncome(v float64) *DocumentUpdateOne {
	_u.mutation.ResetExtractedIncome()
	_u.mutation.SetExtractedIncome(v)
	return _u
}

// SetNillableExtractedIncome sets the "extracted_income" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedIncome(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedIncome(*v)
	}
	return _u
}

// AddExtractedIncome adds value to the "extracted_income" field.
func (_u *DocumentUpdateOne) AddExtractedIncome(v float64) *DocumentUpdateOne {
	_u.mutation.AddExtractedIncome(v)
	return _u
}

// ClearExtractedIncome clears the value of the "extracted_income" field.
func (_u *DocumentUpdateOne) ClearExtractedIncome() *DocumentUpdateOne {
	_u.mutation.ClearExtractedIncome()
	return _u
}

// SetExtractedLoanAmount sets the "extracted_loan_amount" field.
func (_u *DocumentUpdateOne) SetExtractedLoanAmount(v float64) *DocumentUpdateOne {
	_u.mutation.ResetExtractedLoanAmount()
	_u.mutation.SetExtractedLoanAmount(v)
	return _u
}

// SetNillableExtractedLoanAmount sets the "extracted_loan_amount" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedLoanAmount(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedLoanAmount(*v)
	}
	return _u
}

// AddExtractedLoanAmount adds value to the "extracted_loan_amount" field.
func (_u *DocumentUpdateOne) AddExtractedLoanAmount(v float64) *DocumentUpdateOne {
	_u.mutation.AddExtractedLoanAmount(v)
	return _u
}

// ClearExtractedLoanAmount clears the value of the "extracted_loan_amount" field.
func (_u *DocumentUpdateOne) ClearExtractedLoanAmount() *DocumentUpdateOne {
	_u.mutation.ClearExtractedLoanAmount()
	return _u
}

// SetExtractedAdmissionYear sets the "extracted_admission_year" field.
func (_u *DocumentUpdateOne) SetExtractedAdmissionYear(v int) *DocumentUpdateOne {
	_u.mutation.ResetExtractedAdmissionYear()
	_u.mutation.SetExtractedAdmissionYear(v)
	return _u
}

// SetNillableExtractedAdmissionYear sets the "extracted_admission_year" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedAdmissionYear(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedAdmissionYear(*v)
	}
	return _u
}

// AddExtractedAdmissionYear adds value to the "extracted_admission_year" field.
func (_u *DocumentUpdateOne) AddExtractedAdmissionYear(v int) *DocumentUpdateOne {
	_u.mutation.AddExtractedAdmissionYear(v)
	return _u
}

// ClearExtractedAdmissionYear clears the value of the "extracted_admission_year" field.
func (_u *DocumentUpdateOne) ClearExtractedAdmissionYear() *DocumentUpdateOne {
	_u.mutation.ClearExtractedAdmissionYear()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *DocumentUpdateOne) SetRawText(v string) *DocumentUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableRawText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetParsedJSON sets the "parsed_json" field.
func (_u *DocumentUpdateOne) SetParsedJSON(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetParsedJSON(v)
	return _u
}

// AppendParsedJSON appends value to the "parsed_json" field.
func (_u *DocumentUpdateOne) AppendParsedJSON(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendParsedJSON(v)
	return _u
}

// ClearParsedJSON clears the value of the "parsed_json" field.
func (_u *DocumentUpdateOne) ClearParsedJSON() *DocumentUpdateOne {
	_u.mutation.ClearParsedJSON()
	return _u
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := document.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Document.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFiles(); ok {
		if err := document.SourceFilesValidator(v); err != nil {
			return &ValidationError{Name: "source_files", err: fmt.Errorf(`ent: validator failed for field "Document.source_files": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(document.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFiles(); ok {
		_spec.SetField(document.FieldSourceFiles, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedName(); ok {
		_spec.SetField(document.FieldExtractedName, field.TypeString, value)
	}
	if _u.mutation.ExtractedNameCleared() {
		_spec.ClearField(document.FieldExtractedName, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedCourse(); ok {
		_spec.SetField(document.FieldExtractedCourse, field.TypeString, value)
	}
	if _u.mutation.ExtractedCourseCleared() {
		_spec.ClearField(document.FieldExtractedCourse, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedCollege(); ok {
		_spec.SetField(document.FieldExtractedCollege, field.TypeString, value)
	}
	if _u.mutation.ExtractedCollegeCleared() {
		_spec.ClearField(document.FieldExtractedCollege, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedUsn(); ok {
		_spec.SetField(document.FieldExtractedUsn, field.TypeString, value)
	}
	if _u.mutation.ExtractedUsnCleared() {
		_spec.ClearField(document.FieldExtractedUsn, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedDob(); ok {
		_spec.SetField(document.FieldExtractedDob, field.TypeString, value)
	}
	if _u.mutation.ExtractedDobCleared() {
		_spec.ClearField(document.FieldExtractedDob, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedGpa(); ok {
		_spec.SetField(document.FieldExtractedGpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractedGpa(); ok {
		_spec.AddField(document.FieldExtractedGpa, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractedGpaCleared() {
		_spec.ClearField(document.FieldExtractedGpa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractedIncome(); ok {
		_spec.SetField(document.FieldExtractedIncome, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractedIncome(); ok {
		_spec.AddField(document.FieldExtractedIncome, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractedIncomeCleared() {
		_spec.ClearField(document.FieldExtractedIncome, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractedLoanAmount(); ok {
		_spec.SetField(document.FieldExtractedLoanAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractedLoanAmount(); ok {
		_spec.AddField(document.FieldExtractedLoanAmount, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractedLoanAmountCleared() {
		_spec.ClearField(document.FieldExtractedLoanAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractedAdmissionYear(); ok {
		_spec.SetField(document.FieldExtractedAdmissionYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractedAdmissionYear(); ok {
		_spec.AddField(document.FieldExtractedAdmissionYear, field.TypeInt, value)
	}
	if _u.mutation.ExtractedAdmissionYearCleared() {
		_spec.ClearField(document.FieldExtractedAdmissionYear, field.TypeInt)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(document.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParsedJSON(); ok {
		_spec.SetField(document.FieldParsedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParsedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldParsedJSON, value)
		})
	}
	if _u.mutation.ParsedJSONCleared() {
		_spec.ClearField(document.FieldParsedJSON, field.TypeJSON)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
