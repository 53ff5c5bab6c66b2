package schema

import (
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

// Appointment is a counseling-slot request linked to an application.
// scheduled_time is a string column: unparseable caller input is stored
// verbatim instead of rejected.
type Appointment struct{ ent.Schema }

func (Appointment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "appointments"},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("app_id"),
		field.String("user_email").NotEmpty(),
		field.Int("bank_id"),
		field.String("scheduled_time").NotEmpty(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.String("status").
			Default(string(constants.AppointmentScheduled)).
			Validate(utils.EnumValidator(constants.AppointmentStatuses...)),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("application", Application.Type).
			Ref("appointments").
			Field("app_id").
			Unique().
			Required(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_email", "created_at"),
		index.Fields("app_id"),
	}
}
