package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/edulend/loanassist/constants"
)

// extractPDF rasterizes each page independently, recognizes it, and joins
// page texts with newline separators in page order.
func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	if err := e.ensurePDF(); err != nil {
		return Result{Format: constants.PDF}, err
	}
	if err := e.ensureOCR(); err != nil {
		return Result{Format: constants.PDF}, err
	}

	tmpDir, err := os.MkdirTemp("", "la-pp-*")
	if err != nil {
		return Result{Format: constants.PDF}, err
	}
	defer func(dir string) {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			e.logger.Warn("failed to remove temp dir", "dir", dir, "error", rmErr)
		}
	}(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 200 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return Result{Format: constants.PDF, Warnings: []string{string(errb)}}, fmt.Errorf("pdftoppm: %w", err)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return Result{Format: constants.PDF, Warnings: []string{"pdftoppm produced no images"}},
			fmt.Errorf("no pages rendered")
	}

	var pageTexts []string
	var warns []string
	for _, img := range matches {
		txt, w, err := e.tesseractOCR(ctx, img)
		if err != nil {
			return Result{Format: constants.PDF, Warnings: warns}, err
		}
		pageTexts = append(pageTexts, txt)
		warns = append(warns, w...)
	}

	return Result{
		Text:     Normalize(strings.Join(pageTexts, "\n")),
		Pages:    len(matches),
		Format:   constants.PDF,
		Method:   "pdf-ocr",
		Language: e.cfg.TesseractLang,
		Warnings: warns,
	}, nil
}
