package export

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenFormFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"empty object", "{}", ""},
		{"sorted keys", `{"loan_amount":"300000","course":"CS","bank":"SBI"}`, "bank=SBI; course=CS; loan_amount=300000"},
		{"non object passes through", `[1,2]`, "[1,2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flattenFormFields(json.RawMessage(tt.raw)))
		})
	}
}
