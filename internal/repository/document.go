package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/edulend/loanassist/gen/ent"
	entdoc "github.com/edulend/loanassist/gen/ent/document"
	"github.com/edulend/loanassist/internal/extract"
)

type DocumentRepository interface {
	// Record appends one row per processed upload batch and returns it.
	// The document id is assigned by the store and strictly increases in
	// creation order.
	Record(ctx context.Context, email string, sourceFiles []string, fields extract.Fields) (*ent.Document, error)
	GetByID(ctx context.Context, id int) (*ent.Document, error)
	ListByEmail(ctx context.Context, email string) ([]*ent.Document, error)
}

type documentRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{client: client, logger: logger}
}

func (r *documentRepo) Record(ctx context.Context, email string, sourceFiles []string, fields extract.Fields) (*ent.Document, error) {
	parsed, err := fields.JSON()
	if err != nil {
		return nil, fmt.Errorf("encode parsed fields: %w", err)
	}
	if err := extract.ValidateJSONAgainstSchema(extract.BuildDocumentJSONSchema(), parsed); err != nil {
		return nil, fmt.Errorf("parsed fields schema: %w", err)
	}
	files, err := json.Marshal(sourceFiles)
	if err != nil {
		return nil, fmt.Errorf("encode source files: %w", err)
	}

	doc, err := r.client.Document.Create().
		SetEmail(email).
		SetSourceFiles(string(files)).
		SetNillableExtractedName(fields.Name).
		SetNillableExtractedCourse(fields.Course).
		SetNillableExtractedCollege(fields.College).
		SetNillableExtractedUsn(fields.USN).
		SetNillableExtractedDob(fields.DOB).
		SetNillableExtractedGpa(fields.GPA).
		SetNillableExtractedIncome(fields.Income).
		SetNillableExtractedLoanAmount(fields.LoanAmount).
		SetNillableExtractedAdmissionYear(fields.AdmissionYear).
		SetRawText(fields.RawText).
		SetParsedJSON(parsed).
		Save(ctx)
	if err != nil {
		r.logger.Error("document record failed", "email", email, "error", err)
		return nil, err
	}
	r.logger.Info("document recorded", "doc_id", doc.ID, "email", email, "files", len(sourceFiles))
	return doc, nil
}

func (r *documentRepo) GetByID(ctx context.Context, id int) (*ent.Document, error) {
	return r.client.Document.Get(ctx, id)
}

func (r *documentRepo) ListByEmail(ctx context.Context, email string) ([]*ent.Document, error) {
	docs, err := r.client.Document.Query().
		Where(entdoc.Email(email)).
		Order(entdoc.ByUploadTime()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "email", email, "error", err)
		return nil, err
	}
	return docs, nil
}
