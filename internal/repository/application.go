package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/edulend/loanassist/gen/ent"
	entapp "github.com/edulend/loanassist/gen/ent/application"
)

type ApplicationRepository interface {
	// Append stores a new application with status Pending and returns its id.
	Append(ctx context.Context, userEmail string, bankID int, filledFields map[string]any) (int, error)
	GetByID(ctx context.Context, id int) (*ent.Application, error)
	ListByEmail(ctx context.Context, userEmail string) ([]*ent.Application, error)
	// UpdateStatus is the external review path; the pipeline never calls it.
	UpdateStatus(ctx context.Context, id int, status string) error
}

type applicationRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewApplicationRepository(client *ent.Client, logger *slog.Logger) ApplicationRepository {
	return &applicationRepo{client: client, logger: logger}
}

func (r *applicationRepo) Append(ctx context.Context, userEmail string, bankID int, filledFields map[string]any) (int, error) {
	if filledFields == nil {
		filledFields = map[string]any{}
	}
	b, err := json.Marshal(filledFields)
	if err != nil {
		return 0, fmt.Errorf("encode form fields: %w", err)
	}
	app, err := r.client.Application.Create().
		SetUserEmail(userEmail).
		SetBankID(bankID).
		SetFilledFormFields(b).
		Save(ctx)
	if err != nil {
		r.logger.Error("application append failed", "user_email", userEmail, "bank_id", bankID, "error", err)
		return 0, err
	}
	r.logger.Info("application appended", "app_id", app.ID, "user_email", userEmail, "bank_id", bankID)
	return app.ID, nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int) (*ent.Application, error) {
	return r.client.Application.Get(ctx, id)
}

func (r *applicationRepo) ListByEmail(ctx context.Context, userEmail string) ([]*ent.Application, error) {
	apps, err := r.client.Application.Query().
		Where(entapp.UserEmail(userEmail)).
		Order(entapp.ByTimestamp()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list applications", "user_email", userEmail, "error", err)
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int, status string) error {
	if err := r.client.Application.UpdateOneID(id).SetStatus(status).Exec(ctx); err != nil {
		r.logger.Error("application status update failed", "app_id", id, "status", status, "error", err)
		return err
	}
	r.logger.Info("application status updated", "app_id", id, "status", status)
	return nil
}
