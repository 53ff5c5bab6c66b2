package extract

// BuildDocumentJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the parsed_json payload. Used to validate the
// payload before it is persisted.
func BuildDocumentJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"extracted_name":    nullableProp("string"),
			"extracted_dob":     nullableProp("string"),
			"extracted_college": nullableProp("string"),
			"extracted_course":  nullableProp("string"),
			"extracted_gpa":     nullableProp("number"),
			"extracted_usn":     nullableProp("string"),
			"extracted_income":  nullableProp("number"),
			"extracted_admission_year": map[string]any{
				"type": []any{"integer", "null"},
			},
			"extracted_loan_amount": nullableProp("number"),
			"raw_text":              map[string]any{"type": "string"},
		},
		"required": []any{"raw_text"},
	}
}

func nullableProp(typ string) map[string]any {
	return map[string]any{"type": []any{typ, "null"}}
}
