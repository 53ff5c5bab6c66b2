package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/edulend/loanassist/gen/ent"
	"github.com/edulend/loanassist/internal/extract"
	"github.com/edulend/loanassist/internal/ocr"
	"github.com/edulend/loanassist/internal/repository"
)

// Processor coordinates text recognition then field extraction for a
// batch of uploaded files, and records the result as one document row.
type Processor struct {
	logger    *slog.Logger
	extractor *ocr.Extractor
	docsRepo  repository.DocumentRepository
}

func NewProcessor(logger *slog.Logger, extractor *ocr.Extractor, docsRepo repository.DocumentRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger, extractor: extractor, docsRepo: docsRepo}
}

// Result summarizes one processed upload batch.
type Result struct {
	Document *ent.Document
	Fields   extract.Fields
	Warnings []string
}

// ProcessUpload runs OCR over every file, concatenates the recognized
// text, extracts fields from it, and appends one document row for the
// batch. A file that fails recognition aborts the whole batch; field
// extraction itself never fails, absent fields are simply omitted.
func (p *Processor) ProcessUpload(ctx context.Context, email string, paths []string) (*Result, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files to process")
	}
	reqID := uuid.New()
	start := time.Now()
	log := p.logger.With("request_id", reqID.String(), "email", email)

	log.Info("upload processing start", "files", len(paths))

	text, perFile, err := p.extractor.ExtractAll(ctx, paths)
	if err != nil {
		log.Error("text recognition failed", "error", err)
		return nil, err
	}
	var warnings []string
	for _, r := range perFile {
		warnings = append(warnings, r.Warnings...)
	}
	log.Debug("text recognition done", "bytes", len(text), "warnings", len(warnings))

	fields := extract.ParseFields(text)

	doc, err := p.docsRepo.Record(ctx, email, paths, fields)
	if err != nil {
		log.Error("document record failed", "error", err)
		return nil, err
	}

	log.Info("upload processed",
		"doc_id", doc.ID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &Result{Document: doc, Fields: fields, Warnings: warnings}, nil
}
