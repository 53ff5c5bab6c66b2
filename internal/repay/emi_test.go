package repay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEMIKnownValue(t *testing.T) {
	// the textbook figure: 1,00,000 at 12% over 12 months
	assert.InDelta(t, 8884.88, EMI(100000, 12, 1), 0.01)
}

func TestEMIDegenerateInputs(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
	}{
		{"zero principal", 0, 8.5, 5},
		{"negative principal", -1000, 8.5, 5},
		{"zero rate", 500000, 0, 5},
		{"negative rate", 500000, -1, 5},
		{"zero tenure", 500000, 8.5, 0},
		{"negative tenure", 500000, 8.5, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, EMI(tt.principal, tt.rate, tt.years))
		})
	}
}

func TestEMIMonotonicInRate(t *testing.T) {
	low := EMI(500000, 8.0, 5)
	high := EMI(500000, 12.0, 5)
	assert.Greater(t, high, low)
}

func TestNewPlanArithmetic(t *testing.T) {
	p := NewPlan(500000, 8.15, 5)

	assert.Equal(t, 60, p.Months)
	assert.Greater(t, p.EMI, 0.0)
	assert.InDelta(t, p.EMI*60, p.TotalPayment, 0.01)
	assert.InDelta(t, p.TotalPayment-500000, p.TotalInterest, 0.01)
	assert.Greater(t, p.TotalInterest, 0.0)
}

func TestNewPlanDegenerate(t *testing.T) {
	assert.Equal(t, Plan{}, NewPlan(0, 8.15, 5))
	assert.Equal(t, Plan{}, NewPlan(500000, 0, 5))
}

func TestRefinanceSaving(t *testing.T) {
	saving := RefinanceSaving(400000, 12.0, 9.0, 48)
	assert.Greater(t, saving, 0.0)

	// moving to a worse rate costs money
	assert.Less(t, RefinanceSaving(400000, 9.0, 12.0, 48), 0.0)

	// same rate is a wash
	assert.Zero(t, RefinanceSaving(400000, 10.0, 10.0, 48))

	assert.Zero(t, RefinanceSaving(0, 12.0, 9.0, 48))
	assert.Zero(t, RefinanceSaving(400000, 12.0, 9.0, 0))
}
