package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Bank mirrors one row of the external lender reference CSV. IDs come from
// the seed file, not from the sequence.
type Bank struct{ ent.Schema }

func (Bank) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "banks"},
	}
}

func (Bank) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").Unique().Immutable(),
		field.String("bank_name").NotEmpty(),
		field.Float("min_gpa"),
		field.Float("max_income"),
		field.Float("base_interest_rate"),
		field.Int("max_loan_amount"),
		field.Int("approval_rate"),
		field.String("description").Optional().Default(""),
	}
}
