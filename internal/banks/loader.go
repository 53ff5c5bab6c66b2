// Package banks loads the external read-only lender reference table.
package banks

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/edulend/loanassist/internal/ranking"
)

// Column defaults for sparse rows.
const (
	defaultMaxLoanAmount = 500000
	defaultApprovalRate  = 90
	defaultDescription   = "This bank offers education loans under PM-Vidyalaxmi and CSIS schemes."
)

// LoadCSV reads lender rules from a comma-separated file with a header row.
// A missing, empty or header-only file yields an empty rule set. Rows with
// malformed required cells are skipped, not fatal.
func LoadCSV(path string, logger *slog.Logger) ([]ranking.LenderRule, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("lender table missing, using empty rule set", "path", path)
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return parse(f, logger)
}

func parse(r io.Reader, logger *slog.Logger) ([]ranking.LenderRule, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var rules []ranking.LenderRule
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rules, err
		}

		cell := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		bankID, err := strconv.Atoi(cell("bank_id"))
		if err != nil {
			logger.Warn("skipping lender row with bad bank_id", "value", cell("bank_id"))
			continue
		}
		minGPA, err := strconv.ParseFloat(cell("min_gpa"), 64)
		if err != nil {
			logger.Warn("skipping lender row with bad min_gpa", "bank_id", bankID, "value", cell("min_gpa"))
			continue
		}
		maxIncome, err := strconv.ParseFloat(cell("max_income"), 64)
		if err != nil {
			logger.Warn("skipping lender row with bad max_income", "bank_id", bankID, "value", cell("max_income"))
			continue
		}

		rule := ranking.LenderRule{
			BankID:        bankID,
			BankName:      cell("bank_name"),
			MinGPA:        minGPA,
			MaxIncome:     maxIncome,
			MaxLoanAmount: defaultMaxLoanAmount,
			ApprovalRate:  defaultApprovalRate,
			Description:   defaultDescription,
		}
		if v, err := strconv.ParseFloat(cell("base_interest_rate"), 64); err == nil {
			rule.BaseInterestRate = v
		}
		if v, err := strconv.Atoi(cell("max_loan_amount")); err == nil {
			rule.MaxLoanAmount = v
		}
		if v, err := strconv.Atoi(cell("approval_rate")); err == nil {
			rule.ApprovalRate = v
		}
		if d := cell("description"); d != "" {
			rule.Description = d
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
