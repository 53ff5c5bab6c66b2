// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/edulend/loanassist/gen/ent/document"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// UploadTime holds the value of the "upload_time" field.
	UploadTime time.Time `json:"upload_time,omitempty"`
	// SourceFiles holds the value of the "source_files" field.
	SourceFiles string `json:"source_files,omitempty"`
	// ExtractedName holds the value of the "extracted_name" field.
	ExtractedName *string `json:"extracted_name,omitempty"`
	// ExtractedCourse holds the value of the "extracted_course" field.
	ExtractedCourse *string `json:"extracted_course,omitempty"`
	// ExtractedCollege holds the value of the "extracted_college" field.
	ExtractedCollege *string `json:"extracted_college,omitempty"`
	// ExtractedUsn holds the value of the "extracted_usn" field.
	ExtractedUsn *string `json:"extracted_usn,omitempty"`
	// ExtractedDob holds the value of the "extracted_dob" field.
	ExtractedDob *string `json:"extracted_dob,omitempty"`
	// ExtractedGpa holds the value of the "extracted_gpa" field.
	ExtractedGpa *float64 `json:"extracted_gpa,omitempty"`
	// ExtractedIncome holds the value of the "extracted_income" field.
	ExtractedIncome *float64 `json:"extracted_income,omitempty"`
	// ExtractedLoanAmount holds the value of the "extracted_loan_amount" field.
	ExtractedLoanAmount *float64 `json:"extracted_loan_amount,omitempty"`
	// ExtractedAdmissionYear holds the value of the "extracted_admission_year" field.
	ExtractedAdmissionYear *int `json:"extracted_admission_year,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// ParsedJSON holds the value of the "parsed_json" field.
	ParsedJSON   json.RawMessage `json:"parsed_json,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldParsedJSON:
			values[i] = new([]byte)
		case document.FieldExtractedGpa, document.FieldExtractedIncome, document.FieldExtractedLoanAmount:
			values[i] = new(sql.NullFloat64)
		case document.FieldID, document.FieldExtractedAdmissionYear:
			values[i] = new(sql.NullInt64)
		case document.FieldEmail, document.FieldSourceFiles, document.FieldExtractedName, document.FieldExtractedCourse, document.FieldExtractedCollege, document.FieldExtractedUsn, document.FieldExtractedDob, document.FieldRawText:
			values[i] = new(sql.NullString)
		case document.FieldUploadTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case document.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case document.FieldUploadTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field upload_time", values[i])
			} else if value.Valid {
				_m.UploadTime = value.Time
			}
		case document.FieldSourceFiles:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_files", values[i])
			} else if value.Valid {
				_m.SourceFiles = value.String
			}
		case document.FieldExtractedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_name", values[i])
			} else if value.Valid {
				_m.ExtractedName = new(string)
				*_m.ExtractedName = value.String
			}
		case document.FieldExtractedCourse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_course", values[i])
			} else if value.Valid {
				_m.ExtractedCourse = new(string)
				*_m.ExtractedCourse = value.String
			}
		case document.FieldExtractedCollege:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_college", values[i])
			} else if value.Valid {
				_m.ExtractedCollege = new(string)
				*_m.ExtractedCollege = value.String
			}
		case document.FieldExtractedUsn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_usn", values[i])
			} else if value.Valid {
				_m.ExtractedUsn = new(string)
				*_m.ExtractedUsn = value.String
			}
		case document.FieldExtractedDob:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_dob", values[i])
			} else if value.Valid {
				_m.ExtractedDob = new(string)
				*_m.ExtractedDob = value.String
			}
		case document.FieldExtractedGpa:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_gpa", values[i])
			} else if value.Valid {
				_m.ExtractedGpa = new(float64)
				*_m.ExtractedGpa = value.Float64
			}
		case document.FieldExtractedIncome:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_income", values[i])
			} else if value.Valid {
				_m.ExtractedIncome = new(float64)
				*_m.ExtractedIncome = value.Float64
			}
		case document.FieldExtractedLoanAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_loan_amount", values[i])
			} else if value.Valid {
				_m.ExtractedLoanAmount = new(float64)
				*_m.ExtractedLoanAmount = value.Float64
			}
		case document.FieldExtractedAdmissionYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_admission_year", values[i])
			} else if value.Valid {
				_m.ExtractedAdmissionYear = new(int)
				*_m.ExtractedAdmissionYear = int(value.Int64)
			}
		case document.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case document.FieldParsedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ParsedJSON); err != nil {
					return fmt.Errorf("unmarshal field parsed_json: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("upload_time=")
	builder.WriteString(_m.UploadTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("source_files=")
	builder.WriteString(_m.SourceFiles)
	builder.WriteString(", ")
	if v := _m.ExtractedName; v != nil {
		builder.WriteString("extracted_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractedCourse; v != nil {
		builder.WriteString("extracted_course=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractedCollege; v != nil {
		builder.WriteString("extracted_college=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractedUsn; v != nil {
		builder.WriteString("extracted_usn=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractedDob; v != nil {
		builder.WriteString("extracted_dob=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractedGpa; v != nil {
		builder.WriteString("extracted_gpa=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExtractedIncome; v != nil {
		builder.WriteString("extracted_income=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExtractedLoanAmount; v != nil {
		builder.WriteString("extracted_loan_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExtractedAdmissionYear; v != nil {
		builder.WriteString("extracted_admission_year=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("parsed_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParsedJSON))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
