// Code generated by ent, DO NOT EDIT.

package bank

import (
	"entgo.io/ent/dialect/sql"
	"github.com/edulend/loanassist/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Bank {
	return predicate.Bank(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Bank {
	return predicate.Bank(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Bank {
	return predicate.Bank(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Bank {
	return predicate.Bank(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Bank {
	return predicate.Bank(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Bank {
	return predicate.Bank(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Bank {
	return predicate.Bank(sql.FieldLTE(FieldID, id))
}

// BankName applies equality check predicate on the "bank_name" field. It's identical to BankNameEQ.
func BankName(v string) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldBankName, v))
}

// MinGpa applies equality check predicate on the "min_gpa" field. It's identical to MinGpaEQ.
func MinGpa(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldMinGpa, v))
}

// MaxIncome applies equality check predicate on the "max_income" field. It's identical to MaxIncomeEQ.
func MaxIncome(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldMaxIncome, v))
}

// BaseInterestRate applies equality check predicate on the "base_interest_rate" field. It's identical to BaseInterestRateEQ.
func BaseInterestRate(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldBaseInterestRate, v))
}

// MaxLoanAmount applies equality check predicate on the "max_loan_amount" field. It's identical to MaxLoanAmountEQ.
func MaxLoanAmount(v int) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldMaxLoanAmount, v))
}

// ApprovalRate applies equality check predicate on the "approval_rate" field. It's identical to ApprovalRateEQ.
func ApprovalRate(v int) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldApprovalRate, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldDescription, v))
}

// BankNameEQ applies the EQ predicate on the "bank_name" field.
func BankNameEQ(v string) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldBankName, v))
}

// BankNameNEQ applies the NEQ predicate on the "bank_name" field.
func BankNameNEQ(v string) predicate.Bank {
	return predicate.Bank(sql.FieldNEQ(FieldBankName, v))
}

// BankNameIn applies the In predicate on the "bank_name" field.
func BankNameIn(vs ...string) predicate.Bank {
	return predicate.Bank(sql.FieldIn(FieldBankName, vs...))
}

// BankNameNotIn applies the NotIn predicate on the "bank_name" field.
func BankNameNotIn(vs ...string) predicate.Bank {
	return predicate.Bank(sql.FieldNotIn(FieldBankName, vs...))
}

// BankNameGT applies the GT predicate on the "bank_name" field.
func BankNameGT(v string) predicate.Bank {
	return predicate.Bank(sql.FieldGT(FieldBankName, v))
}

// BankNameGTE applies the GTE predicate on the "bank_name" field.
func BankNameGTE(v string) predicate.Bank {
	return predicate.Bank(sql.FieldGTE(FieldBankName, v))
}

// BankNameLT applies the LT predicate on the "bank_name" field.
func BankNameLT(v string) predicate.Bank {
	return predicate.Bank(sql.FieldLT(FieldBankName, v))
}

// BankNameLTE applies the LTE predicate on the "bank_name" field.
func BankNameLTE(v string) predicate.Bank {
	return predicate.Bank(sql.FieldLTE(FieldBankName, v))
}

// BankNameContains applies the Contains predicate on the "bank_name" field.
func BankNameContains(v string) predicate.Bank {
	return predicate.Bank(sql.FieldContains(FieldBankName, v))
}

// BankNameHasPrefix applies the HasPrefix predicate on the "bank_name" field.
func BankNameHasPrefix(v string) predicate.Bank {
	return predicate.Bank(sql.FieldHasPrefix(FieldBankName, v))
}

// BankNameHasSuffix applies the HasSuffix predicate on the "bank_name" field.
func BankNameHasSuffix(v string) predicate.Bank {
	return predicate.Bank(sql.FieldHasSuffix(FieldBankName, v))
}

// BankNameEqualFold applies the EqualFold predicate on the "bank_name" field.
func BankNameEqualFold(v string) predicate.Bank {
	return predicate.Bank(sql.FieldEqualFold(FieldBankName, v))
}

// BankNameContainsFold applies the ContainsFold predicate on the "bank_name" field.
func BankNameContainsFold(v string) predicate.Bank {
	return predicate.Bank(sql.FieldContainsFold(FieldBankName, v))
}

// MinGpaEQ applies the EQ predicate on the "min_gpa" field.
func MinGpaEQ(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldMinGpa, v))
}

// MinGpaNEQ applies the NEQ predicate on the "min_gpa" field.
func MinGpaNEQ(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldNEQ(FieldMinGpa, v))
}

// MinGpaIn applies the In predicate on the "min_gpa" field.
func MinGpaIn(vs ...float64) predicate.Bank {
	return predicate.Bank(sql.FieldIn(FieldMinGpa, vs...))
}

// MinGpaNotIn applies the NotIn predicate on the "min_gpa" field.
func MinGpaNotIn(vs ...float64) predicate.Bank {
	return predicate.Bank(sql.FieldNotIn(FieldMinGpa, vs...))
}

// MinGpaGT applies the GT predicate on the "min_gpa" field.
func MinGpaGT(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldGT(FieldMinGpa, v))
}

// MinGpaGTE applies the GTE predicate on the "min_gpa" field.
func MinGpaGTE(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldGTE(FieldMinGpa, v))
}

// MinGpaLT applies the LT predicate on the "min_gpa" field.
func MinGpaLT(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldLT(FieldMinGpa, v))
}

// MinGpaLTE applies the LTE predicate on the "min_gpa" field.
func MinGpaLTE(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldLTE(FieldMinGpa, v))
}

// MaxIncomeEQ applies the EQ predicate on the "max_income" field.
func MaxIncomeEQ(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldMaxIncome, v))
}

// MaxIncomeNEQ applies the NEQ predicate on the "max_income" field.
func MaxIncomeNEQ(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldNEQ(FieldMaxIncome, v))
}

// MaxIncomeIn applies the In predicate on the "max_income" field.
func MaxIncomeIn(vs ...float64) predicate.Bank {
	return predicate.Bank(sql.FieldIn(FieldMaxIncome, vs...))
}

// MaxIncomeNotIn applies the NotIn predicate on the "max_income" field.
func MaxIncomeNotIn(vs ...float64) predicate.Bank {
	return predicate.Bank(sql.FieldNotIn(FieldMaxIncome, vs...))
}

// MaxIncomeGT applies the GT predicate on the "max_income" field.
func MaxIncomeGT(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldGT(FieldMaxIncome, v))
}

// MaxIncomeGTE applies the GTE predicate on the "max_income" field.
func MaxIncomeGTE(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldGTE(FieldMaxIncome, v))
}

// MaxIncomeLT applies the LT predicate on the "max_income" field.
func MaxIncomeLT(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldLT(FieldMaxIncome, v))
}

// MaxIncomeLTE applies the LTE predicate on the "max_income" field.
func MaxIncomeLTE(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldLTE(FieldMaxIncome, v))
}

// BaseInterestRateEQ applies the EQ predicate on the "base_interest_rate" field.
func BaseInterestRateEQ(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldBaseInterestRate, v))
}

// BaseInterestRateNEQ applies the NEQ predicate on the "base_interest_rate" field.
func BaseInterestRateNEQ(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldNEQ(FieldBaseInterestRate, v))
}

// BaseInterestRateIn applies the In predicate on the "base_interest_rate" field.
func BaseInterestRateIn(vs ...float64) predicate.Bank {
	return predicate.Bank(sql.FieldIn(FieldBaseInterestRate, vs...))
}

// BaseInterestRateNotIn applies the NotIn predicate on the "base_interest_rate" field.
func BaseInterestRateNotIn(vs ...float64) predicate.Bank {
	return predicate.Bank(sql.FieldNotIn(FieldBaseInterestRate, vs...))
}

// BaseInterestRateGT applies the GT predicate on the "base_interest_rate" field.
func BaseInterestRateGT(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldGT(FieldBaseInterestRate, v))
}

// BaseInterestRateGTE applies the GTE predicate on the "base_interest_rate" field.
func BaseInterestRateGTE(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldGTE(FieldBaseInterestRate, v))
}

// BaseInterestRateLT applies the LT predicate on the "base_interest_rate" field.
func BaseInterestRateLT(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldLT(FieldBaseInterestRate, v))
}

// BaseInterestRateLTE applies the LTE predicate on the "base_interest_rate" field.
func BaseInterestRateLTE(v float64) predicate.Bank {
	return predicate.Bank(sql.FieldLTE(FieldBaseInterestRate, v))
}

// MaxLoanAmountEQ applies the EQ predicate on the "max_loan_amount" field.
func MaxLoanAmountEQ(v int) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldMaxLoanAmount, v))
}

// MaxLoanAmountNEQ applies the NEQ predicate on the "max_loan_amount" field.
func MaxLoanAmountNEQ(v int) predicate.Bank {
	return predicate.Bank(sql.FieldNEQ(FieldMaxLoanAmount, v))
}

// MaxLoanAmountIn applies the In predicate on the "max_loan_amount" field.
func MaxLoanAmountIn(vs ...int) predicate.Bank {
	return predicate.Bank(sql.FieldIn(FieldMaxLoanAmount, vs...))
}

// MaxLoanAmountNotIn applies the NotIn predicate on the "max_loan_amount" field.
func MaxLoanAmountNotIn(vs ...int) predicate.Bank {
	return predicate.Bank(sql.FieldNotIn(FieldMaxLoanAmount, vs...))
}

// MaxLoanAmountGT applies the GT predicate on the "max_loan_amount" field.
func MaxLoanAmountGT(v int) predicate.Bank {
	return predicate.Bank(sql.FieldGT(FieldMaxLoanAmount, v))
}

// MaxLoanAmountGTE applies the GTE predicate on the "max_loan_amount" field.
func MaxLoanAmountGTE(v int) predicate.Bank {
	return predicate.Bank(sql.FieldGTE(FieldMaxLoanAmount, v))
}

// MaxLoanAmountLT applies the LT predicate on the "max_loan_amount" field.
func MaxLoanAmountLT(v int) predicate.Bank {
	return predicate.Bank(sql.FieldLT(FieldMaxLoanAmount, v))
}

// MaxLoanAmountLTE applies the LTE predicate on the "max_loan_amount" field.
func MaxLoanAmountLTE(v int) predicate.Bank {
	return predicate.Bank(sql.FieldLTE(FieldMaxLoanAmount, v))
}

// ApprovalRateEQ applies the EQ predicate on the "approval_rate" field.
func ApprovalRateEQ(v int) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldApprovalRate, v))
}

// ApprovalRateNEQ applies the NEQ predicate on the "approval_rate" field.
func ApprovalRateNEQ(v int) predicate.Bank {
	return predicate.Bank(sql.FieldNEQ(FieldApprovalRate, v))
}

// ApprovalRateIn applies the In predicate on the "approval_rate" field.
func ApprovalRateIn(vs ...int) predicate.Bank {
	return predicate.Bank(sql.FieldIn(FieldApprovalRate, vs...))
}

// ApprovalRateNotIn applies the NotIn predicate on the "approval_rate" field.
func ApprovalRateNotIn(vs ...int) predicate.Bank {
	return predicate.Bank(sql.FieldNotIn(FieldApprovalRate, vs...))
}

// ApprovalRateGT applies the GT predicate on the "approval_rate" field.
func ApprovalRateGT(v int) predicate.Bank {
	return predicate.Bank(sql.FieldGT(FieldApprovalRate, v))
}

// ApprovalRateGTE applies the GTE predicate on the "approval_rate" field.
func ApprovalRateGTE(v int) predicate.Bank {
	return predicate.Bank(sql.FieldGTE(FieldApprovalRate, v))
}

// ApprovalRateLT applies the LT predicate on the "approval_rate" field.
func ApprovalRateLT(v int) predicate.Bank {
	return predicate.Bank(sql.FieldLT(FieldApprovalRate, v))
}

// ApprovalRateLTE applies the LTE predicate on the "approval_rate" field.
func ApprovalRateLTE(v int) predicate.Bank {
	return predicate.Bank(sql.FieldLTE(FieldApprovalRate, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Bank {
	return predicate.Bank(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Bank {
	return predicate.Bank(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Bank {
	return predicate.Bank(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Bank {
	return predicate.Bank(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Bank {
	return predicate.Bank(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Bank {
	return predicate.Bank(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Bank {
	return predicate.Bank(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Bank {
	return predicate.Bank(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Bank {
	return predicate.Bank(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Bank {
	return predicate.Bank(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Bank {
	return predicate.Bank(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Bank {
	return predicate.Bank(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Bank {
	return predicate.Bank(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Bank {
	return predicate.Bank(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Bank {
	return predicate.Bank(sql.FieldContainsFold(FieldDescription, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bank) predicate.Bank {
	return predicate.Bank(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bank) predicate.Bank {
	return predicate.Bank(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bank) predicate.Bank {
	return predicate.Bank(sql.NotPredicates(p))
}
