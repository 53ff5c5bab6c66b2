package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs and runs of spaces", "a\t\tb    c", "a b c"},
		{"collapse blank lines", "a\n\n\n\n\nb", "a\n\nb"},
		{"trailing spaces stripped per line", "a   \nb  ", "a\nb"},
		{"digits untouched", "DOB: 05/11/2001\nGPA: 8.07", "DOB: 05/11/2001\nGPA: 8.07"},
		{"outer whitespace trimmed", "\n\n  text  \n\n", "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
