package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/edulend/loanassist/constants"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for PDF pages, default 200
	MaxPages      int    // 0 = no limit

	TessdataDir string
}

type Result struct {
	Text     string
	Pages    int
	Format   string // constants.PDF | constants.IMAGE
	Method   string // "pdf-ocr" | "image-ocr"
	Language string
	Duration time.Duration
	Warnings []string
}

// Capabilities reports which external binaries were found at construction.
type Capabilities struct {
	Tesseract bool
	Pdftoppm  bool
}

type Extractor struct {
	cfg    Config
	runner Runner
	caps   Capabilities
	logger *slog.Logger
}

// NewExtractor probes the external binaries once; per-call checks then only
// consult the cached result.
func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	e := &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
	e.probe()
	return e
}

func (e *Extractor) probe() {
	if _, err := e.runner.LookPath(e.cfg.Tesseract); err == nil {
		e.caps.Tesseract = true
	}
	if _, err := e.runner.LookPath(e.cfg.Pdftoppm); err == nil {
		e.caps.Pdftoppm = true
	}
	e.logger.Info("ocr capabilities resolved",
		"tesseract", e.caps.Tesseract,
		"pdftoppm", e.caps.Pdftoppm,
	)
}

// Capabilities returns the probe result from construction time.
func (e *Extractor) Capabilities() Capabilities { return e.caps }

func (e *Extractor) ensureOCR() error {
	if !e.caps.Tesseract {
		return &CapabilityError{
			Binary: e.cfg.Tesseract,
			Hint:   "install the Tesseract executable",
		}
	}
	return nil
}

func (e *Extractor) ensurePDF() error {
	if !e.caps.Pdftoppm {
		return &CapabilityError{
			Binary: e.cfg.Pdftoppm,
			Hint:   "install poppler-utils for PDF rasterization",
		}
	}
	return nil
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text recognition", "path", path, "ext", ext)
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.IMAGE:
		res, err := e.extractImage(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	default:
		e.logger.Error("unsupported extension", "extension", ext, "path", path)
		return Result{}, &UnsupportedFormatError{Ext: ext}
	}
}

// ExtractAll recognizes every file in an upload batch and joins the per-file
// texts with newlines, in input order. Any single failure aborts the batch,
// wrapped with the offending path.
func (e *Extractor) ExtractAll(ctx context.Context, paths []string) (string, []Result, error) {
	var parts []string
	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		res, err := e.Extract(ctx, p)
		if err != nil {
			return "", results, fmt.Errorf("recognition failed for file %s: %w", p, err)
		}
		parts = append(parts, res.Text)
		results = append(results, res)
	}
	return strings.Join(parts, "\n"), results, nil
}
