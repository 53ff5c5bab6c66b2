package ocr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner fakes the external binaries. pages maps an image path suffix to
// the text tesseract would emit; renderPages makes pdftoppm produce files.
type stubRunner struct {
	available   map[string]bool
	pages       map[string]string
	renderPages int
	calls       []string
}

func (s *stubRunner) LookPath(name string) (string, error) {
	if s.available[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New("not found")
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	switch name {
	case "pdftoppm":
		prefix := args[len(args)-1]
		for i := 1; i <= s.renderPages; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte{0}, 0o600); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		path := args[0]
		for suffix, text := range s.pages {
			if strings.HasSuffix(path, suffix) {
				return []byte(text), nil, nil
			}
		}
		return nil, []byte("no text"), errors.New("exit status 1")
	}
	return nil, nil, fmt.Errorf("unexpected command %s", name)
}

func newTestExtractor(r Runner) *Extractor {
	e := &Extractor{
		cfg: Config{
			Pdftoppm:      "pdftoppm",
			Tesseract:     "tesseract",
			TesseractLang: "eng",
			DPI:           200,
		},
		runner: r,
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
	}
	e.probe()
	return e
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := newTestExtractor(&stubRunner{available: map[string]bool{"tesseract": true, "pdftoppm": true}})

	_, err := e.Extract(context.Background(), "notes.docx")
	var ufe *UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, "docx", ufe.Ext)
}

func TestExtractMissingTesseract(t *testing.T) {
	e := newTestExtractor(&stubRunner{available: map[string]bool{"pdftoppm": true}})
	assert.False(t, e.Capabilities().Tesseract)

	_, err := e.Extract(context.Background(), "scan.png")
	var ce *CapabilityError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "tesseract", ce.Binary)
}

func TestExtractMissingPdftoppm(t *testing.T) {
	e := newTestExtractor(&stubRunner{available: map[string]bool{"tesseract": true}})

	_, err := e.Extract(context.Background(), "statement.pdf")
	var ce *CapabilityError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "pdftoppm", ce.Binary)
}

func TestExtractImage(t *testing.T) {
	r := &stubRunner{
		available: map[string]bool{"tesseract": true, "pdftoppm": true},
		pages:     map[string]string{"marksheet.png": "Name: Test Student\nGPA: 8.1"},
	}
	e := newTestExtractor(r)

	res, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "marksheet.png"))
	require.NoError(t, err)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "IMAGE", res.Format)
	assert.Contains(t, res.Text, "Name: Test Student")
}

func TestExtractPDFJoinsPages(t *testing.T) {
	r := &stubRunner{
		available:   map[string]bool{"tesseract": true, "pdftoppm": true},
		renderPages: 2,
		pages: map[string]string{
			"-1.png": "page one text",
			"-2.png": "page two text",
		},
	}
	e := newTestExtractor(r)

	res, err := e.Extract(context.Background(), "statement.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "page one text\npage two text", res.Text)
}

func TestExtractPDFMaxPages(t *testing.T) {
	r := &stubRunner{
		available:   map[string]bool{"tesseract": true, "pdftoppm": true},
		renderPages: 3,
		pages: map[string]string{
			"-1.png": "one",
			"-2.png": "two",
			"-3.png": "three",
		},
	}
	e := newTestExtractor(r)
	e.cfg.MaxPages = 2

	res, err := e.Extract(context.Background(), "long.pdf")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "one\ntwo", res.Text)
}

func TestExtractPDFPageFailureAborts(t *testing.T) {
	r := &stubRunner{
		available:   map[string]bool{"tesseract": true, "pdftoppm": true},
		renderPages: 2,
		pages:       map[string]string{"-1.png": "only the first page recognizes"},
	}
	e := newTestExtractor(r)

	_, err := e.Extract(context.Background(), "broken.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tesseract")
}

func TestExtractAll(t *testing.T) {
	r := &stubRunner{
		available: map[string]bool{"tesseract": true, "pdftoppm": true},
		pages: map[string]string{
			"a.png": "first file",
			"b.png": "second file",
		},
	}
	e := newTestExtractor(r)

	text, results, err := e.ExtractAll(context.Background(), []string{"a.png", "b.png"})
	require.NoError(t, err)
	assert.Equal(t, "first file\nsecond file", text)
	assert.Len(t, results, 2)
}

func TestExtractAllWrapsFailure(t *testing.T) {
	r := &stubRunner{
		available: map[string]bool{"tesseract": true, "pdftoppm": true},
		pages:     map[string]string{"a.png": "ok"},
	}
	e := newTestExtractor(r)

	_, _, err := e.ExtractAll(context.Background(), []string{"a.png", "bad.png"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recognition failed for file bad.png")
}
