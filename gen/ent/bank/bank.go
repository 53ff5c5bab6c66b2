// Code generated by ent, DO NOT EDIT.

package bank

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the bank type in the database.
	Label = "bank"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBankName holds the string denoting the bank_name field in the database.
	FieldBankName = "bank_name"
	// FieldMinGpa holds the string denoting the min_gpa field in the database.
	FieldMinGpa = "min_gpa"
	// FieldMaxIncome holds the string denoting the max_income field in the database.
	FieldMaxIncome = "max_income"
	// FieldBaseInterestRate holds the string denoting the base_interest_rate field in the database.
	FieldBaseInterestRate = "base_interest_rate"
	// FieldMaxLoanAmount holds the string denoting the max_loan_amount field in the database.
	FieldMaxLoanAmount = "max_loan_amount"
	// FieldApprovalRate holds the string denoting the approval_rate field in the database.
	FieldApprovalRate = "approval_rate"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// Table holds the table name of the bank in the database.
	Table = "banks"
)

// Columns holds all SQL columns for bank fields.
var Columns = []string{
	FieldID,
	FieldBankName,
	FieldMinGpa,
	FieldMaxIncome,
	FieldBaseInterestRate,
	FieldMaxLoanAmount,
	FieldApprovalRate,
	FieldDescription,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// BankNameValidator is a validator for the "bank_name" field. It is called by the builders before save.
	BankNameValidator func(string) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
)

// OrderOption defines the ordering options for the Bank queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBankName orders the results by the bank_name field.
func ByBankName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBankName, opts...).ToFunc()
}

// ByMinGpa orders the results by the min_gpa field.
func ByMinGpa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinGpa, opts...).ToFunc()
}

// ByMaxIncome orders the results by the max_income field.
func ByMaxIncome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxIncome, opts...).ToFunc()
}

// ByBaseInterestRate orders the results by the base_interest_rate field.
func ByBaseInterestRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseInterestRate, opts...).ToFunc()
}

// ByMaxLoanAmount orders the results by the max_loan_amount field.
func ByMaxLoanAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxLoanAmount, opts...).ToFunc()
}

// ByApprovalRate orders the results by the approval_rate field.
func ByApprovalRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovalRate, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}
