package banks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "banks.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCSVMissingFile(t *testing.T) {
	rules, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), nil)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestLoadCSVEmptyFile(t *testing.T) {
	rules, err := LoadCSV(writeCSV(t, ""), nil)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestLoadCSVHeaderOnly(t *testing.T) {
	rules, err := LoadCSV(writeCSV(t, "bank_id,bank_name,min_gpa,max_income\n"), nil)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestLoadCSVFullRow(t *testing.T) {
	csv := strings.Join([]string{
		"bank_id,bank_name,min_gpa,max_income,base_interest_rate,max_loan_amount,approval_rate,description",
		"1,State Bank,7.5,600000,9.8,750000,85,Flagship education loan scheme",
	}, "\n")
	rules, err := LoadCSV(writeCSV(t, csv), nil)
	require.NoError(t, err)
	require.Len(t, rules, 1)

	r := rules[0]
	assert.Equal(t, 1, r.BankID)
	assert.Equal(t, "State Bank", r.BankName)
	assert.Equal(t, 7.5, r.MinGPA)
	assert.Equal(t, 600000.0, r.MaxIncome)
	assert.Equal(t, 9.8, r.BaseInterestRate)
	assert.Equal(t, 750000, r.MaxLoanAmount)
	assert.Equal(t, 85, r.ApprovalRate)
	assert.Equal(t, "Flagship education loan scheme", r.Description)
}

func TestLoadCSVDefaultsForSparseRow(t *testing.T) {
	csv := strings.Join([]string{
		"bank_id,bank_name,min_gpa,max_income",
		"2,Union Bank,7.0,500000",
	}, "\n")
	rules, err := LoadCSV(writeCSV(t, csv), nil)
	require.NoError(t, err)
	require.Len(t, rules, 1)

	r := rules[0]
	assert.Equal(t, defaultMaxLoanAmount, r.MaxLoanAmount)
	assert.Equal(t, defaultApprovalRate, r.ApprovalRate)
	assert.Equal(t, defaultDescription, r.Description)
	assert.Zero(t, r.BaseInterestRate)
}

func TestLoadCSVSkipsMalformedRows(t *testing.T) {
	csv := strings.Join([]string{
		"bank_id,bank_name,min_gpa,max_income",
		"oops,Bad Bank,7.0,500000",
		"3,Good Bank,bad-gpa,500000",
		"4,Also Good,7.0,not-a-number",
		"5,Kept Bank,7.0,500000",
	}, "\n")
	rules, err := LoadCSV(writeCSV(t, csv), nil)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, 5, rules[0].BankID)
	assert.Equal(t, "Kept Bank", rules[0].BankName)
}

func TestLoadCSVTrimsCells(t *testing.T) {
	csv := strings.Join([]string{
		"bank_id, bank_name, min_gpa, max_income",
		"6, Padded Bank , 7.0, 500000",
	}, "\n")
	rules, err := LoadCSV(writeCSV(t, csv), nil)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "Padded Bank", rules[0].BankName)
}
