package ocr

import (
	"context"
	"fmt"

	"github.com/edulend/loanassist/constants"
)

func (e *Extractor) extractImage(ctx context.Context, path string) (Result, error) {
	if err := e.ensureOCR(); err != nil {
		return Result{Format: constants.IMAGE}, err
	}
	txt, warn, err := e.tesseractOCR(ctx, path)
	if err != nil {
		return Result{Format: constants.IMAGE, Warnings: warn}, err
	}
	return Result{
		Text:     Normalize(txt),
		Pages:    1,
		Format:   constants.IMAGE,
		Method:   "image-ocr",
		Language: e.cfg.TesseractLang,
		Warnings: warn,
	}, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}

	// minor cleanup of obvious line noise
	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return txt, nil, nil
}
