package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/edulend/loanassist/internal/common"
	"github.com/edulend/loanassist/internal/ocr"
	"github.com/edulend/loanassist/internal/pipeline"
	repo "github.com/edulend/loanassist/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	if len(os.Args) < 3 {
		logger.Error("usage", "cmd", "processdoc <email> <file> [file...]")
		os.Exit(2)
	}
	email := os.Args[1]
	paths := os.Args[2:]

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	entc, cleanup, err := repo.Open(ctx, repo.Config{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := repo.Migrate(ctx, entc, logger); err != nil {
		os.Exit(1)
	}

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)

	docsRepo := repo.NewDocumentRepository(entc, logger)
	p := pipeline.NewProcessor(logger, extractor, docsRepo)

	start := time.Now()
	res, err := p.ProcessUpload(ctx, email, paths)
	if err != nil {
		logger.Error("document processing failed",
			"error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("document processed",
		"doc_id", res.Document.ID,
		"files", len(paths),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	out, _ := res.Fields.JSON()
	fmt.Println(string(out))
}
