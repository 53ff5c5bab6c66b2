package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsedFieldsMatchDocumentSchema(t *testing.T) {
	schema := BuildDocumentJSONSchema()

	for _, text := range []string{
		"",
		"Course: MBA",
		sampleText,
	} {
		b, err := ParseFields(text).JSON()
		require.NoError(t, err)
		assert.NoError(t, ValidateJSONAgainstSchema(schema, b), "text: %q", text)
	}
}

func TestValidateRejectsUnknownProperty(t *testing.T) {
	err := ValidateJSONAgainstSchema(BuildDocumentJSONSchema(),
		[]byte(`{"raw_text":"x","surprise":1}`))
	assert.Error(t, err)
}

func TestValidateRejectsMissingRawText(t *testing.T) {
	err := ValidateJSONAgainstSchema(BuildDocumentJSONSchema(),
		[]byte(`{"extracted_name":"A"}`))
	assert.Error(t, err)
}

func TestValidateRejectsWrongType(t *testing.T) {
	err := ValidateJSONAgainstSchema(BuildDocumentJSONSchema(),
		[]byte(`{"raw_text":"x","extracted_gpa":"not-a-number"}`))
	assert.Error(t, err)
}
