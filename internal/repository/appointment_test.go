package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeScheduledTime(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"iso with T separator", "2025-03-10T14:30:00", "2025-03-10 14:30:00", true},
		{"date hour minute", "2025-03-10 14:30", "2025-03-10 14:30:00", true},
		{"already normalized form is not accepted input", "2025-03-10 14:30:00", "2025-03-10 14:30:00", false},
		{"free text stored verbatim", "next tuesday at noon", "next tuesday at noon", false},
		{"empty stays empty", "", "", false},
		{"date only is not enough", "2025-03-10", "2025-03-10", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeScheduledTime(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
