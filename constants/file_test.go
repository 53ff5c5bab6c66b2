package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "jpeg", NormalizeExt("JPEG"))
	assert.Equal(t, "", NormalizeExt("."))
}

func TestMapExtToFormat(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".pdf", PDF},
		{"pdf", PDF},
		{".png", IMAGE},
		{"JPG", IMAGE},
		{".jpeg", IMAGE},
		{"tiff", IMAGE},
		{"bmp", IMAGE},
		{"gif", IMAGE},
		{".docx", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MapExtToFormat(tt.ext), "ext %q", tt.ext)
	}
}
