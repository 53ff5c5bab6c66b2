package repository

import (
	"context"
	"log/slog"

	"github.com/edulend/loanassist/gen/ent"
	entbank "github.com/edulend/loanassist/gen/ent/bank"
	"github.com/edulend/loanassist/internal/ranking"
)

type BankRepository interface {
	// Seed loads the external lender reference rows into the store,
	// replacing rows that share an id.
	Seed(ctx context.Context, rules []ranking.LenderRule) error
	List(ctx context.Context) ([]ranking.LenderRule, error)
}

type bankRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBankRepository(client *ent.Client, logger *slog.Logger) BankRepository {
	return &bankRepo{client: client, logger: logger}
}

func (r *bankRepo) Seed(ctx context.Context, rules []ranking.LenderRule) error {
	for _, rule := range rules {
		exists, err := r.client.Bank.Query().
			Where(entbank.ID(rule.BankID)).
			Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			err = r.client.Bank.UpdateOneID(rule.BankID).
				SetBankName(rule.BankName).
				SetMinGpa(rule.MinGPA).
				SetMaxIncome(rule.MaxIncome).
				SetBaseInterestRate(rule.BaseInterestRate).
				SetMaxLoanAmount(rule.MaxLoanAmount).
				SetApprovalRate(rule.ApprovalRate).
				SetDescription(rule.Description).
				Exec(ctx)
		} else {
			err = r.client.Bank.Create().
				SetID(rule.BankID).
				SetBankName(rule.BankName).
				SetMinGpa(rule.MinGPA).
				SetMaxIncome(rule.MaxIncome).
				SetBaseInterestRate(rule.BaseInterestRate).
				SetMaxLoanAmount(rule.MaxLoanAmount).
				SetApprovalRate(rule.ApprovalRate).
				SetDescription(rule.Description).
				Exec(ctx)
		}
		if err != nil {
			r.logger.Error("bank seed failed", "bank_id", rule.BankID, "error", err)
			return err
		}
	}
	r.logger.Info("lender table seeded", "count", len(rules))
	return nil
}

func (r *bankRepo) List(ctx context.Context) ([]ranking.LenderRule, error) {
	rows, err := r.client.Bank.Query().
		Order(entbank.ByID()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list banks", "error", err)
		return nil, err
	}
	rules := make([]ranking.LenderRule, 0, len(rows))
	for _, b := range rows {
		rules = append(rules, ranking.LenderRule{
			BankID:           b.ID,
			BankName:         b.BankName,
			MinGPA:           b.MinGpa,
			MaxIncome:        b.MaxIncome,
			BaseInterestRate: b.BaseInterestRate,
			MaxLoanAmount:    b.MaxLoanAmount,
			ApprovalRate:     b.ApprovalRate,
			Description:      b.Description,
		})
	}
	return rules, nil
}
