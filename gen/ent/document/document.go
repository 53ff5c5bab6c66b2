// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldUploadTime holds the string denoting the upload_time field in the database.
	FieldUploadTime = "upload_time"
	// FieldSourceFiles holds the string denoting the source_files field in the database.
	FieldSourceFiles = "source_files"
	// FieldExtractedName holds the string denoting the extracted_name field in the database.
	FieldExtractedName = "extracted_name"
	// FieldExtractedCourse holds the string denoting the extracted_course field in the database.
	FieldExtractedCourse = "extracted_course"
	// FieldExtractedCollege holds the string denoting the extracted_college field in the database.
	FieldExtractedCollege = "extracted_college"
	// FieldExtractedUsn holds the string denoting the extracted_usn field in the database.
	FieldExtractedUsn = "extracted_usn"
	// FieldExtractedDob holds the string denoting the extracted_dob field in the database.
	FieldExtractedDob = "extracted_dob"
	// FieldExtractedGpa holds the string denoting the extracted_gpa field in the database.
	FieldExtractedGpa = "extracted_gpa"
	// FieldExtractedIncome holds the string denoting the extracted_income field in the database.
	FieldExtractedIncome = "extracted_income"
	// FieldExtractedLoanAmount holds the string denoting the extracted_loan_amount field in the database.
	FieldExtractedLoanAmount = "extracted_loan_amount"
	// FieldExtractedAdmissionYear holds the string denoting the extracted_admission_year field in the database.
	FieldExtractedAdmissionYear = "extracted_admission_year"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldParsedJSON holds the string denoting the parsed_json field in the database.
	FieldParsedJSON = "parsed_json"
	// Table holds the table name of the document in the database.
	Table = "documents"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldUploadTime,
	FieldSourceFiles,
	FieldExtractedName,
	FieldExtractedCourse,
	FieldExtractedCollege,
	FieldExtractedUsn,
	FieldExtractedDob,
	FieldExtractedGpa,
	FieldExtractedIncome,
	FieldExtractedLoanAmount,
	FieldExtractedAdmissionYear,
	FieldRawText,
	FieldParsedJSON,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultUploadTime holds the default value on creation for the "upload_time" field.
	DefaultUploadTime func() time.Time
	// SourceFilesValidator is a validator for the "source_files" field. It is called by the builders before save.
	SourceFilesValidator func(string) error
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByUploadTime orders the results by the upload_time field.
func ByUploadTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadTime, opts...).ToFunc()
}

// BySourceFiles orders the results by the source_files field.
func BySourceFiles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFiles, opts...).ToFunc()
}

// ByExtractedName orders the results by the extracted_name field.
func ByExtractedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedName, opts...).ToFunc()
}

// ByExtractedCourse orders the results by the extracted_course field.
func ByExtractedCourse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedCourse, opts...).ToFunc()
}

// ByExtractedCollege orders the results by the extracted_college field.
func ByExtractedCollege(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedCollege, opts...).ToFunc()
}

// ByExtractedUsn orders the results by the extracted_usn field.
func ByExtractedUsn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedUsn, opts...).ToFunc()
}

// ByExtractedDob orders the results by the extracted_dob field.
func ByExtractedDob(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedDob, opts...).ToFunc()
}

// ByExtractedGpa orders the results by the extracted_gpa field.
func ByExtractedGpa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedGpa, opts...).ToFunc()
}

// ByExtractedIncome orders the results by the extracted_income field.
func ByExtractedIncome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedIncome, opts...).ToFunc()
}

// ByExtractedLoanAmount orders the results by the extracted_loan_amount field.
func ByExtractedLoanAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedLoanAmount, opts...).ToFunc()
}

// ByExtractedAdmissionYear orders the results by the extracted_admission_year field.
func ByExtractedAdmissionYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedAdmissionYear, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}
