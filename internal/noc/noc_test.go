package noc

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	cert := Generate(Details{
		StudentName: "Ananya Sharma",
		USN:         "1RV21CS042",
		College:     "RV College of Engineering",
		Course:      "Computer Science",
		BankName:    "State Bank",
		LoanAmount:  300000,
		IssuedAt:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, cert, "NO OBJECTION CERTIFICATE")
	assert.Contains(t, cert, "Ananya Sharma")
	assert.Contains(t, cert, "USN: 1RV21CS042")
	assert.Contains(t, cert, "RV College of Engineering")
	assert.Contains(t, cert, "Rs. 300000.00")
	assert.Contains(t, cert, "State Bank")
	assert.Contains(t, cert, "10 March 2025")
	assert.Contains(t, cert, "Authorized Signatory")
}

func TestGenerateStableLayout(t *testing.T) {
	d := Details{
		StudentName: "Ravi Kumar",
		USN:         "1XX20EC001",
		College:     "Some College",
		Course:      "Electronics",
		BankName:    "Union Bank",
		LoanAmount:  450000,
		IssuedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, Generate(d), Generate(d))
}

func TestGenerateMissingFields(t *testing.T) {
	cert := Generate(Details{IssuedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})
	assert.Contains(t, cert, "N/A")
	assert.NotContains(t, cert, "certify that  (")
}

func TestGenerateDefaultsIssueDate(t *testing.T) {
	cert := Generate(Details{StudentName: "X Y"})
	year := time.Now().UTC().Format("2006")
	assert.True(t, strings.Contains(cert, year))
}
