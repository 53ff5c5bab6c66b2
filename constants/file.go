package constants

import "strings"

// Format values stored on document rows.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// FileTypes holds the allowed values for the format field.
var FileTypes = []string{PDF, IMAGE}

// imageExts holds the raster formats tesseract reads directly.
var imageExts = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"tiff": {},
	"bmp":  {},
	"gif":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to PDF or IMAGE.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	ext = NormalizeExt(ext)
	if ext == "pdf" {
		return PDF
	}
	if _, ok := imageExts[ext]; ok {
		return IMAGE
	}
	return ""
}
