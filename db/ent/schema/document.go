package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document is one processed upload batch: identifiers, source file list,
// extracted fields and the raw recognized text. Rows are append-only.
type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		// implicit auto-increment int id = doc_id
		field.String("email").NotEmpty(),
		field.Time("upload_time").Default(time.Now).Immutable(),
		// JSON array of source file paths, in upload order
		field.String("source_files").NotEmpty(),
		field.String("extracted_name").Optional().Nillable(),
		field.String("extracted_course").Optional().Nillable(),
		field.String("extracted_college").Optional().Nillable(),
		field.String("extracted_usn").Optional().Nillable(),
		field.String("extracted_dob").Optional().Nillable(),
		field.Float("extracted_gpa").Optional().Nillable(),
		field.Float("extracted_income").Optional().Nillable(),
		field.Float("extracted_loan_amount").Optional().Nillable(),
		field.Int("extracted_admission_year").Optional().Nillable(),
		field.String("raw_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("parsed_json", json.RawMessage{}).Optional(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email", "upload_time"),
	}
}
