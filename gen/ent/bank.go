// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/edulend/loanassist/gen/ent/bank"
)

// Bank is the model entity for the Bank schema.
type Bank struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// BankName holds the value of the "bank_name" field.
	BankName string `json:"bank_name,omitempty"`
	// MinGpa holds the value of the "min_gpa" field.
	MinGpa float64 `json:"min_gpa,omitempty"`
	// MaxIncome holds the value of the "max_income" field.
	MaxIncome float64 `json:"max_income,omitempty"`
	// BaseInterestRate holds the value of the "base_interest_rate" field.
	BaseInterestRate float64 `json:"base_interest_rate,omitempty"`
	// MaxLoanAmount holds the value of the "max_loan_amount" field.
	MaxLoanAmount int `json:"max_loan_amount,omitempty"`
	// ApprovalRate holds the value of the "approval_rate" field.
	ApprovalRate int `json:"approval_rate,omitempty"`
	// Description holds the value of the "description" field.
	Description  string `json:"description,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Bank) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bank.FieldMinGpa, bank.FieldMaxIncome, bank.FieldBaseInterestRate:
			values[i] = new(sql.NullFloat64)
		case bank.FieldID, bank.FieldMaxLoanAmount, bank.FieldApprovalRate:
			values[i] = new(sql.NullInt64)
		case bank.FieldBankName, bank.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Bank fields.
func (_m *Bank) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bank.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case bank.FieldBankName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_name", values[i])
			} else if value.Valid {
				_m.BankName = value.String
			}
		case bank.FieldMinGpa:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_gpa", values[i])
			} else if value.Valid {
				_m.MinGpa = value.Float64
			}
		case bank.FieldMaxIncome:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_income", values[i])
			} else if value.Valid {
				_m.MaxIncome = value.Float64
			}
		case bank.FieldBaseInterestRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field base_interest_rate", values[i])
			} else if value.Valid {
				_m.BaseInterestRate = value.Float64
			}
		case bank.FieldMaxLoanAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_loan_amount", values[i])
			} else if value.Valid {
				_m.MaxLoanAmount = int(value.Int64)
			}
		case bank.FieldApprovalRate:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field approval_rate", values[i])
			} else if value.Valid {
				_m.ApprovalRate = int(value.Int64)
			}
		case bank.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Bank.
// This includes values selected through modifiers, order, etc.
func (_m *Bank) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Bank.
// Note that you need to call Bank.Unwrap() before calling this method if this Bank
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Bank) Update() *BankUpdateOne {
	return NewBankClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Bank entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Bank) Unwrap() *Bank {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Bank is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Bank) String() string {
	var builder strings.Builder
	builder.WriteString("Bank(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bank_name=")
	builder.WriteString(_m.BankName)
	builder.WriteString(", ")
	builder.WriteString("min_gpa=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinGpa))
	builder.WriteString(", ")
	builder.WriteString("max_income=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxIncome))
	builder.WriteString(", ")
	builder.WriteString("base_interest_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaseInterestRate))
	builder.WriteString(", ")
	builder.WriteString("max_loan_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxLoanAmount))
	builder.WriteString(", ")
	builder.WriteString("approval_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovalRate))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteByte(')')
	return builder.String()
}

// Banks is a parsable slice of Bank.
type Banks []*Bank
