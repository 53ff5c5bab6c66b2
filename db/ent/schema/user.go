package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// User is the flat credential record: email -> salted hash plus profile
// fields. No sessions or tokens live here.
type User struct{ ent.Schema }

func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "users"},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").NotEmpty().Unique(),
		field.String("password_hash").NotEmpty().Sensitive(),
		field.String("full_name").Optional().Default(""),
		field.String("phone").Optional().Default(""),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Bool("profile_completed").Default(false),
	}
}
