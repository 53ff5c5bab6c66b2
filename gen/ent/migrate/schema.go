// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_email", Type: field.TypeString},
		{Name: "bank_id", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "Pending"},
		{Name: "filled_form_fields", Type: field.TypeJSON},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// ApplicationsTable holds the schema information for the "applications" table.
	ApplicationsTable = &schema.Table{
		Name:       "applications",
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "application_user_email_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[1], ApplicationsColumns[5]},
			},
			{
				Name:    "application_bank_id",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[2]},
			},
		},
	}
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_email", Type: field.TypeString},
		{Name: "bank_id", Type: field.TypeInt},
		{Name: "scheduled_time", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeString, Default: "Scheduled"},
		{Name: "app_id", Type: field.TypeInt},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_applications_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[6]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_user_email_created_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[1], AppointmentsColumns[4]},
			},
			{
				Name:    "appointment_app_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[6]},
			},
		},
	}
	// BanksColumns holds the columns for the "banks" table.
	BanksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "bank_name", Type: field.TypeString},
		{Name: "min_gpa", Type: field.TypeFloat64},
		{Name: "max_income", Type: field.TypeFloat64},
		{Name: "base_interest_rate", Type: field.TypeFloat64},
		{Name: "max_loan_amount", Type: field.TypeInt},
		{Name: "approval_rate", Type: field.TypeInt},
		{Name: "description", Type: field.TypeString, Nullable: true, Default: ""},
	}
	// BanksTable holds the schema information for the "banks" table.
	BanksTable = &schema.Table{
		Name:       "banks",
		Columns:    BanksColumns,
		PrimaryKey: []*schema.Column{BanksColumns[0]},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "upload_time", Type: field.TypeTime},
		{Name: "source_files", Type: field.TypeString},
		{Name: "extracted_name", Type: field.TypeString, Nullable: true},
		{Name: "extracted_course", Type: field.TypeString, Nullable: true},
		{Name: "extracted_college", Type: field.TypeString, Nullable: true},
		{Name: "extracted_usn", Type: field.TypeString, Nullable: true},
		{Name: "extracted_dob", Type: field.TypeString, Nullable: true},
		{Name: "extracted_gpa", Type: field.TypeFloat64, Nullable: true},
		{Name: "extracted_income", Type: field.TypeFloat64, Nullable: true},
		{Name: "extracted_loan_amount", Type: field.TypeFloat64, Nullable: true},
		{Name: "extracted_admission_year", Type: field.TypeInt, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "parsed_json", Type: field.TypeJSON, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_email_upload_time",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "full_name", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "phone", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "profile_completed", Type: field.TypeBool, Default: false},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicationsTable,
		AppointmentsTable,
		BanksTable,
		DocumentsTable,
		UsersTable,
	}
)

func init() {
	ApplicationsTable.Annotation = &entsql.Annotation{
		Table: "applications",
	}
	AppointmentsTable.ForeignKeys[0].RefTable = ApplicationsTable
	AppointmentsTable.Annotation = &entsql.Annotation{
		Table: "appointments",
	}
	BanksTable.Annotation = &entsql.Annotation{
		Table: "banks",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
