package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/edulend/loanassist/gen/ent"
	loansv1 "github.com/edulend/loanassist/gen/proto/loans/v1"
	"github.com/edulend/loanassist/internal/common"
	"github.com/edulend/loanassist/internal/pipeline"
	"github.com/edulend/loanassist/internal/repository"
)

type DocumentsServer struct {
	loansv1.UnimplementedDocumentsServiceServer
	processor *pipeline.Processor
	docsRepo  repository.DocumentRepository
	logger    *slog.Logger
}

func NewDocumentsServer(processor *pipeline.Processor, docsRepo repository.DocumentRepository, logger *slog.Logger) *DocumentsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentsServer{processor: processor, docsRepo: docsRepo, logger: logger}
}

func (s *DocumentsServer) ProcessUpload(ctx context.Context, req *loansv1.ProcessUploadRequest) (*loansv1.ProcessUploadResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, common.InvalidArgumentError("email is required")
	}
	if len(req.GetFilePaths()) == 0 {
		return nil, common.InvalidArgumentError("at least one file path is required")
	}

	res, err := s.processor.ProcessUpload(ctx, email, req.GetFilePaths())
	if err != nil {
		s.logger.Error("upload processing failed", "email", email, "error", err)
		return nil, common.InternalErrorf("upload processing failed: %v", err)
	}
	return &loansv1.ProcessUploadResponse{
		Document: toPBDocument(res.Document),
		Warnings: res.Warnings,
	}, nil
}

func (s *DocumentsServer) ListDocuments(ctx context.Context, req *loansv1.ListDocumentsRequest) (*loansv1.ListDocumentsResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, common.InvalidArgumentError("email is required")
	}

	docs, err := s.docsRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, common.InternalError("list documents failed")
	}
	out := make([]*loansv1.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toPBDocument(d))
	}
	return &loansv1.ListDocumentsResponse{Documents: out}, nil
}

func toPBDocument(d *ent.Document) *loansv1.Document {
	var files []string
	_ = json.Unmarshal([]byte(d.SourceFiles), &files)
	return &loansv1.Document{
		Id:          int64(d.ID),
		Email:       d.Email,
		UploadTime:  d.UploadTime.UTC().Format(time.RFC3339),
		SourceFiles: files,
		ParsedJson:  string(d.ParsedJSON),
		RawText:     d.RawText,
	}
}
