// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/edulend/loanassist/db/ent/schema"
	"github.com/edulend/loanassist/gen/ent/application"
	"github.com/edulend/loanassist/gen/ent/appointment"
	"github.com/edulend/loanassist/gen/ent/bank"
	"github.com/edulend/loanassist/gen/ent/document"
	"github.com/edulend/loanassist/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescUserEmail is the schema descriptor for user_email field.
	applicationDescUserEmail := applicationFields[0].Descriptor()
	// application.UserEmailValidator is a validator for the "user_email" field. It is called by the builders before save.
	application.UserEmailValidator = applicationDescUserEmail.Validators[0].(func(string) error)
	// applicationDescStatus is the schema descriptor for status field.
	applicationDescStatus := applicationFields[2].Descriptor()
	// application.DefaultStatus holds the default value on creation for the status field.
	application.DefaultStatus = applicationDescStatus.Default.(string)
	// application.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	application.StatusValidator = applicationDescStatus.Validators[0].(func(string) error)
	// applicationDescTimestamp is the schema descriptor for timestamp field.
	applicationDescTimestamp := applicationFields[4].Descriptor()
	// application.DefaultTimestamp holds the default value on creation for the timestamp field.
	application.DefaultTimestamp = applicationDescTimestamp.Default.(func() time.Time)
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescUserEmail is the schema descriptor for user_email field.
	appointmentDescUserEmail := appointmentFields[1].Descriptor()
	// appointment.UserEmailValidator is a validator for the "user_email" field. It is called by the builders before save.
	appointment.UserEmailValidator = appointmentDescUserEmail.Validators[0].(func(string) error)
	// appointmentDescScheduledTime is the schema descriptor for scheduled_time field.
	appointmentDescScheduledTime := appointmentFields[3].Descriptor()
	// appointment.ScheduledTimeValidator is a validator for the "scheduled_time" field. It is called by the builders before save.
	appointment.ScheduledTimeValidator = appointmentDescScheduledTime.Validators[0].(func(string) error)
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentFields[4].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescStatus is the schema descriptor for status field.
	appointmentDescStatus := appointmentFields[5].Descriptor()
	// appointment.DefaultStatus holds the default value on creation for the status field.
	appointment.DefaultStatus = appointmentDescStatus.Default.(string)
	// appointment.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	appointment.StatusValidator = appointmentDescStatus.Validators[0].(func(string) error)
	bankFields := schema.Bank{}.Fields()
	_ = bankFields
	// bankDescBankName is the schema descriptor for bank_name field.
	bankDescBankName := bankFields[1].Descriptor()
	// bank.BankNameValidator is a validator for the "bank_name" field. It is called by the builders before save.
	bank.BankNameValidator = bankDescBankName.Validators[0].(func(string) error)
	// bankDescDescription is the schema descriptor for description field.
	bankDescDescription := bankFields[7].Descriptor()
	// bank.DefaultDescription holds the default value on creation for the description field.
	bank.DefaultDescription = bankDescDescription.Default.(string)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescEmail is the schema descriptor for email field.
	documentDescEmail := documentFields[0].Descriptor()
	// document.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	document.EmailValidator = documentDescEmail.Validators[0].(func(string) error)
	// documentDescUploadTime is the schema descriptor for upload_time field.
	documentDescUploadTime := documentFields[1].Descriptor()
	// document.DefaultUploadTime holds the default value on creation for the upload_time field.
	document.DefaultUploadTime = documentDescUploadTime.Default.(func() time.Time)
	// documentDescSourceFiles is the schema descriptor for source_files field.
	documentDescSourceFiles := documentFields[2].Descriptor()
	// document.SourceFilesValidator is a validator for the "source_files" field. It is called by the builders before save.
	document.SourceFilesValidator = documentDescSourceFiles.Validators[0].(func(string) error)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescFullName is the schema descriptor for full_name field.
	userDescFullName := userFields[2].Descriptor()
	// user.DefaultFullName holds the default value on creation for the full_name field.
	user.DefaultFullName = userDescFullName.Default.(string)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[3].Descriptor()
	// user.DefaultPhone holds the default value on creation for the phone field.
	user.DefaultPhone = userDescPhone.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescProfileCompleted is the schema descriptor for profile_completed field.
	userDescProfileCompleted := userFields[5].Descriptor()
	// user.DefaultProfileCompleted holds the default value on creation for the profile_completed field.
	user.DefaultProfileCompleted = userDescProfileCompleted.Default.(bool)
}
