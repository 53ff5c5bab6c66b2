// Package ranking scores lenders against a borrower profile.
//
// Score and Rank are deterministic, side-effect-free functions of their
// inputs: no I/O, no randomness.
package ranking

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// LenderRule is one row of the read-only lender eligibility table.
type LenderRule struct {
	BankID           int
	BankName         string
	MinGPA           float64
	MaxIncome        float64
	BaseInterestRate float64
	MaxLoanAmount    int
	ApprovalRate     int
	Description      string
}

// RankedLender is the per-lender ranking output. Recomputed on every request,
// never persisted.
type RankedLender struct {
	BankID      int     `json:"bank_id"`
	BankName    string  `json:"bank_name"`
	Score       int     `json:"score"`
	Why         string  `json:"why"`
	Interest    float64 `json:"interest"`
	MaxAmount   int     `json:"max_amount"`
	Approval    int     `json:"approval"`
	Description string  `json:"description"`
}

// Profile is the borrower input. Empty string means the value is missing;
// a non-numeric string counts as a parse error, not as missing.
type Profile struct {
	GPA    string
	Income string
}

const (
	gpaPoints      = 40
	incomePoints   = 30
	baselinePoints = 30
	ratePoints     = 5
	lowRateCutoff  = 10.5
	highRateCutoff = 12.0
	goodFitCutoff  = 75

	goodFitWhy = "Good fit - meets most criteria."
	partialWhy = "Partial fit."
)

// Score computes the 0..100 fit score and the human-readable rationale for
// one lender.
func Score(p Profile, rule LenderRule) (int, string) {
	score := 0
	var reasons []string

	switch gpa, ok, missing := parseValue(p.GPA); {
	case missing:
		reasons = append(reasons, "GPA missing")
	case !ok:
		reasons = append(reasons, "GPA parse error")
	case gpa >= rule.MinGPA:
		score += gpaPoints
	default:
		reasons = append(reasons, fmt.Sprintf("GPA %v below min %v", p.GPA, trimFloat(rule.MinGPA)))
	}

	switch inc, ok, missing := parseValue(p.Income); {
	case missing:
		reasons = append(reasons, "Income missing")
	case !ok:
		reasons = append(reasons, "Income parse error")
	case inc <= rule.MaxIncome:
		score += incomePoints
	default:
		reasons = append(reasons, fmt.Sprintf("Income %v > max %v", p.Income, trimFloat(rule.MaxIncome)))
	}

	score += baselinePoints

	// interest influence
	if rule.BaseInterestRate <= lowRateCutoff {
		score += ratePoints
	} else if rule.BaseInterestRate > highRateCutoff {
		score -= ratePoints
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	if score >= goodFitCutoff {
		return score, goodFitWhy
	}
	if len(reasons) == 0 {
		return score, partialWhy
	}
	return score, strings.Join(reasons, "; ")
}

// Rank scores every lender and returns them sorted by descending score.
// Ties preserve input order (stable sort).
func Rank(p Profile, rules []LenderRule) []RankedLender {
	out := make([]RankedLender, 0, len(rules))
	for _, rule := range rules {
		score, why := Score(p, rule)
		out = append(out, RankedLender{
			BankID:      rule.BankID,
			BankName:    rule.BankName,
			Score:       score,
			Why:         why,
			Interest:    rule.BaseInterestRate,
			MaxAmount:   rule.MaxLoanAmount,
			Approval:    rule.ApprovalRate,
			Description: rule.Description,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// parseValue returns (value, parsedOK, missing).
func parseValue(s string) (float64, bool, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, false
	}
	return v, true, false
}

// trimFloat renders a float without trailing zeros, matching how the rule
// values read in rationale strings.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
