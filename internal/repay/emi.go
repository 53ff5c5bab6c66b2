// Package repay computes fixed-installment amortization figures.
package repay

import "math"

// Plan summarizes a repayment schedule at a fixed monthly installment.
type Plan struct {
	EMI           float64
	Months        int
	TotalPayment  float64
	TotalInterest float64
}

// EMI returns the monthly installment for the given principal, annual rate
// (percent) and tenure (years), rounded to 2 decimals. Degenerate inputs
// (principal, rate or tenure <= 0) return 0 rather than an error.
func EMI(principal, annualRate float64, tenureYears int) float64 {
	if principal <= 0 || annualRate <= 0 || tenureYears <= 0 {
		return 0
	}

	monthlyRate := annualRate / 12 / 100
	months := float64(tenureYears * 12)

	pow := math.Pow(1+monthlyRate, months)
	emi := principal * monthlyRate * pow / (pow - 1)
	return round2(emi)
}

// NewPlan computes the full schedule summary. TotalPayment = EMI x months and
// TotalInterest = TotalPayment - principal, both rounded to 2 decimals.
func NewPlan(principal, annualRate float64, tenureYears int) Plan {
	emi := EMI(principal, annualRate, tenureYears)
	if emi == 0 {
		return Plan{}
	}
	months := tenureYears * 12
	total := round2(emi * float64(months))
	return Plan{
		EMI:           emi,
		Months:        months,
		TotalPayment:  total,
		TotalInterest: round2(total - principal),
	}
}

// RefinanceSaving compares the remaining schedule at the old rate against a
// fresh schedule at the new rate over the same remaining months. Positive
// means refinancing saves money.
func RefinanceSaving(outstanding, oldRate, newRate float64, remainingMonths int) float64 {
	if outstanding <= 0 || remainingMonths <= 0 || oldRate <= 0 || newRate <= 0 {
		return 0
	}
	oldTotal := monthlyTotal(outstanding, oldRate, remainingMonths)
	newTotal := monthlyTotal(outstanding, newRate, remainingMonths)
	return round2(oldTotal - newTotal)
}

func monthlyTotal(principal, annualRate float64, months int) float64 {
	monthlyRate := annualRate / 12 / 100
	pow := math.Pow(1+monthlyRate, float64(months))
	emi := principal * monthlyRate * pow / (pow - 1)
	return emi * float64(months)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
