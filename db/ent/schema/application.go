package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/edulend/loanassist/constants"
	"github.com/edulend/loanassist/db/ent/schema/utils"
)

// Application is one submitted loan application. Status is mutated by the
// external review flow, never by the pipeline.
type Application struct{ ent.Schema }

func (Application) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "applications"},
	}
}

func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_email").NotEmpty(),
		field.Int("bank_id"),
		field.String("status").
			Default(string(constants.AppStatusPending)).
			Validate(utils.EnumValidator(constants.ApplicationStatuses...)),
		field.JSON("filled_form_fields", json.RawMessage{}),
		field.Time("timestamp").Default(time.Now).Immutable(),
	}
}

func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("appointments", Appointment.Type),
	}
}

func (Application) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_email", "timestamp"),
		index.Fields("bank_id"),
	}
}
