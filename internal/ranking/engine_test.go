package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rule(minGPA, maxIncome, rate float64) LenderRule {
	return LenderRule{
		BankID:           1,
		BankName:         "Test Bank",
		MinGPA:           minGPA,
		MaxIncome:        maxIncome,
		BaseInterestRate: rate,
		MaxLoanAmount:    500000,
		ApprovalRate:     90,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		profile   Profile
		rule      LenderRule
		wantScore int
		wantWhy   string
	}{
		{
			name:      "all criteria met with low rate clamps at 100",
			profile:   Profile{GPA: "9.0", Income: "300000"},
			rule:      rule(7.5, 600000, 9.5),
			wantScore: 100,
			wantWhy:   "Good fit - meets most criteria.",
		},
		{
			name:      "all criteria met with mid rate",
			profile:   Profile{GPA: "9.0", Income: "300000"},
			rule:      rule(7.5, 600000, 11.0),
			wantScore: 100,
			wantWhy:   "Good fit - meets most criteria.",
		},
		{
			name:      "high rate costs five points",
			profile:   Profile{GPA: "9.0", Income: "300000"},
			rule:      rule(7.5, 600000, 12.5),
			wantScore: 95,
			wantWhy:   "Good fit - meets most criteria.",
		},
		{
			name:      "gpa below minimum",
			profile:   Profile{GPA: "6.0", Income: "300000"},
			rule:      rule(7.5, 600000, 11.0),
			wantScore: 60,
			wantWhy:   "GPA 6.0 below min 7.5",
		},
		{
			name:      "income above cap",
			profile:   Profile{GPA: "9.0", Income: "900000"},
			rule:      rule(7.5, 600000, 11.0),
			wantScore: 70,
			wantWhy:   "Income 900000 > max 600000",
		},
		{
			name:      "both missing",
			profile:   Profile{},
			rule:      rule(7.5, 600000, 11.0),
			wantScore: 30,
			wantWhy:   "GPA missing; Income missing",
		},
		{
			name:      "parse errors reported distinctly",
			profile:   Profile{GPA: "abc", Income: "n/a"},
			rule:      rule(7.5, 600000, 11.0),
			wantScore: 30,
			wantWhy:   "GPA parse error; Income parse error",
		},
		{
			name:      "boundary gpa counts as met",
			profile:   Profile{GPA: "7.5", Income: "600000"},
			rule:      rule(7.5, 600000, 10.5),
			wantScore: 100,
			wantWhy:   "Good fit - meets most criteria.",
		},
		{
			name:      "missing everything with high rate stays non-negative",
			profile:   Profile{},
			rule:      rule(7.5, 600000, 13.0),
			wantScore: 25,
			wantWhy:   "GPA missing; Income missing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, why := Score(tt.profile, tt.rule)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantWhy, why)
		})
	}
}

func TestScoreAtGoodFitCutoff(t *testing.T) {
	// 40 (gpa) + 30 (baseline) + 5 (low rate) = 75, exactly at the cutoff
	score, why := Score(Profile{GPA: "9.0", Income: "900000"}, rule(7.5, 600000, 9.0))
	assert.Equal(t, 75, score)
	assert.Equal(t, "Good fit - meets most criteria.", why)
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	rules := []LenderRule{
		{BankID: 1, BankName: "High Rate", MinGPA: 7.0, MaxIncome: 600000, BaseInterestRate: 13.0},
		{BankID: 2, BankName: "Low Rate", MinGPA: 7.0, MaxIncome: 600000, BaseInterestRate: 9.0},
		{BankID: 3, BankName: "Strict GPA", MinGPA: 9.9, MaxIncome: 600000, BaseInterestRate: 9.0},
	}
	ranked := Rank(Profile{GPA: "8.0", Income: "400000"}, rules)

	assert.Len(t, ranked, 3)
	assert.Equal(t, 2, ranked[0].BankID)
	assert.Equal(t, 1, ranked[1].BankID)
	assert.Equal(t, 3, ranked[2].BankID)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankTiesPreserveInputOrder(t *testing.T) {
	rules := []LenderRule{
		{BankID: 10, BankName: "First", MinGPA: 7.0, MaxIncome: 600000, BaseInterestRate: 11.0},
		{BankID: 20, BankName: "Second", MinGPA: 7.0, MaxIncome: 600000, BaseInterestRate: 11.0},
	}
	ranked := Rank(Profile{GPA: "8.0", Income: "400000"}, rules)
	assert.Equal(t, 10, ranked[0].BankID)
	assert.Equal(t, 20, ranked[1].BankID)
}

func TestRankEmptyRules(t *testing.T) {
	assert.Empty(t, Rank(Profile{GPA: "8.0"}, nil))
}
