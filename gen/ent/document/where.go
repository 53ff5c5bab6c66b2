// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/edulend/loanassist/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldEmail, v))
}

// UploadTime applies equality check predicate on the "upload_time" field. It's identical to UploadTimeEQ.
func UploadTime(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadTime, v))
}

// SourceFiles applies equality check predicate on the "source_files" field. It's identical to SourceFilesEQ.
func SourceFiles(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceFiles, v))
}

// ExtractedName applies equality check predicate on the "extracted_name" field. It's identical to ExtractedNameEQ.
func ExtractedName(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedName, v))
}

// ExtractedCourse applies equality check predicate on the "extracted_course" field. It's identical to ExtractedCourseEQ.
func ExtractedCourse(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedCourse, v))
}

// ExtractedCollege applies equality check predicate on the "extracted_college" field. It's identical to ExtractedCollegeEQ.
func ExtractedCollege(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedCollege, v))
}

// ExtractedUsn applies equality check predicate on the "extracted_usn" field. It's identical to ExtractedUsnEQ.
func ExtractedUsn(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedUsn, v))
}

// ExtractedDob applies equality check predicate on the "extracted_dob" field. It's identical to ExtractedDobEQ.
func ExtractedDob(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedDob, v))
}

// ExtractedGpa applies equality check predicate on the "extracted_gpa" field. It's identical to ExtractedGpaEQ.
func ExtractedGpa(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedGpa, v))
}

// ExtractedIncome applies equality check predicate on the "extracted_income" field. It's identical to ExtractedIncomeEQ.
func ExtractedIncome(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedIncome, v))
}

// ExtractedLoanAmount applies equality check predicate on the "extracted_loan_amount" field. It's identical to ExtractedLoanAmountEQ.
func ExtractedLoanAmount(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedLoanAmount, v))
}

// ExtractedAdmissionYear applies equality check predicate on the "extracted_admission_year" field. It's identical to ExtractedAdmissionYearEQ.
func ExtractedAdmissionYear(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedAdmissionYear, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldRawText, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldEmail, v))
}

// UploadTimeEQ applies the EQ predicate on the "upload_time" field.
func UploadTimeEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadTime, v))
}

// UploadTimeNEQ applies the NEQ predicate on the "upload_time" field.
func UploadTimeNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUploadTime, v))
}

// UploadTimeIn applies the In predicate on the "upload_time" field.
func UploadTimeIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUploadTime, vs...))
}

// UploadTimeNotIn applies the NotIn predicate on the "upload_time" field.
func UploadTimeNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUploadTime, vs...))
}

// UploadTimeGT applies the GT predicate on the "upload_time" field.
func UploadTimeGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUploadTime, v))
}

// UploadTimeGTE applies the GTE predicate on the "upload_time" field.
func UploadTimeGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUploadTime, v))
}

// UploadTimeLT applies the LT predicate on the "upload_time" field.
func UploadTimeLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUploadTime, v))
}

// UploadTimeLTE applies the LTE predicate on the "upload_time" field.
func UploadTimeLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUploadTime, v))
}

// SourceFilesEQ applies the EQ predicate on the "source_files" field.
func SourceFilesEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceFiles, v))
}

// SourceFilesNEQ applies the NEQ predicate on the "source_files" field.
func SourceFilesNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSourceFiles, v))
}

// SourceFilesIn applies the In predicate on the "source_files" field.
func SourceFilesIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSourceFiles, vs...))
}

// SourceFilesNotIn applies the NotIn predicate on the "source_files" field.
func SourceFilesNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSourceFiles, vs...))
}

// SourceFilesGT applies the GT predicate on the "source_files" field.
func SourceFilesGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSourceFiles, v))
}

// SourceFilesGTE applies the GTE predicate on the "source_files" field.
func SourceFilesGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSourceFiles, v))
}

// SourceFilesLT applies the LT predicate on the "source_files" field.
func SourceFilesLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSourceFiles, v))
}

// SourceFilesLTE applies the LTE predicate on the "source_files" field.
func SourceFilesLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSourceFiles, v))
}

// SourceFilesContains applies the Contains predicate on the "source_files" field.
func SourceFilesContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSourceFiles, v))
}

// SourceFilesHasPrefix applies the HasPrefix predicate on the "source_files" field.
func SourceFilesHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSourceFiles, v))
}

// SourceFilesHasSuffix applies the HasSuffix predicate on the "source_files" field.
func SourceFilesHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSourceFiles, v))
}

// SourceFilesEqualFold applies the EqualFold predicate on the "source_files" field.
func SourceFilesEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSourceFiles, v))
}

// SourceFilesContainsFold applies the ContainsFold predicate on the "source_files" field.
func SourceFilesContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSourceFiles, v))
}

// ExtractedNameEQ applies the EQ predicate on the "extracted_name" field.
func ExtractedNameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedName, v))
}

// ExtractedNameNEQ applies the NEQ predicate on the "extracted_name" field.
func ExtractedNameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractedName, v))
}

// ExtractedNameIn applies the In predicate on the "extracted_name" field.
func ExtractedNameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractedName, vs...))
}

// ExtractedNameNotIn applies the NotIn predicate on the "extracted_name" field.
func ExtractedNameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractedName, vs...))
}

// ExtractedNameGT applies the GT predicate on the "extracted_name" field.
func ExtractedNameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractedName, v))
}

// ExtractedNameGTE applies the GTE predicate on the "extracted_name" field.
func ExtractedNameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractedName, v))
}

// ExtractedNameLT applies the LT predicate on the "extracted_name" field.
func ExtractedNameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractedName, v))
}

// ExtractedNameLTE applies the LTE predicate on the "extracted_name" field.
func ExtractedNameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractedName, v))
}

// ExtractedNameContains applies the Contains predicate on the "extracted_name" field.
func ExtractedNameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldExtractedName, v))
}

// ExtractedNameHasPrefix applies the HasPrefix predicate on the "extracted_name" field.
func ExtractedNameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldExtractedName, v))
}

// ExtractedNameHasSuffix applies the HasSuffix predicate on the "extracted_name" field.
func ExtractedNameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldExtractedName, v))
}

// ExtractedNameIsNil applies the IsNil predicate on the "extracted_name" field.
func ExtractedNameIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedName))
}

// ExtractedNameNotNil applies the NotNil predicate on the "extracted_name" field.
func ExtractedNameNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedName))
}

// ExtractedNameEqualFold applies the EqualFold predicate on the "extracted_name" field.
func ExtractedNameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldExtractedName, v))
}

// ExtractedNameContainsFold applies the ContainsFold predicate on the "extracted_name" field.
func ExtractedNameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldExtractedName, v))
}

// ExtractedCourseEQ applies the EQ predicate on the "extracted_course" field.
func ExtractedCourseEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedCourse, v))
}

// ExtractedCourseNEQ applies the NEQ predicate on the "extracted_course" field.
func ExtractedCourseNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractedCourse, v))
}

// ExtractedCourseIn applies the In predicate on the "extracted_course" field.
func ExtractedCourseIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractedCourse, vs...))
}

// ExtractedCourseNotIn applies the NotIn predicate on the "extracted_course" field.
func ExtractedCourseNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractedCourse, vs...))
}

// ExtractedCourseGT applies the GT predicate on the "extracted_course" field.
func ExtractedCourseGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractedCourse, v))
}

// ExtractedCourseGTE applies the GTE predicate on the "extracted_course" field.
func ExtractedCourseGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractedCourse, v))
}

// ExtractedCourseLT applies the LT predicate on the "extracted_course" field.
func ExtractedCourseLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractedCourse, v))
}

// ExtractedCourseLTE applies the LTE predicate on the "extracted_course" field.
func ExtractedCourseLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractedCourse, v))
}

// ExtractedCourseContains applies the Contains predicate on the "extracted_course" field.
func ExtractedCourseContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldExtractedCourse, v))
}

// ExtractedCourseHasPrefix applies the HasPrefix predicate on the "extracted_course" field.
func ExtractedCourseHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldExtractedCourse, v))
}

// ExtractedCourseHasSuffix applies the HasSuffix predicate on the "extracted_course" field.
func ExtractedCourseHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldExtractedCourse, v))
}

// ExtractedCourseIsNil applies the IsNil predicate on the "extracted_course" field.
func ExtractedCourseIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedCourse))
}

// ExtractedCourseNotNil applies the NotNil predicate on the "extracted_course" field.
func ExtractedCourseNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedCourse))
}

// ExtractedCourseEqualFold applies the EqualFold predicate on the "extracted_course" field.
func ExtractedCourseEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldExtractedCourse, v))
}

// ExtractedCourseContainsFold applies the ContainsFold predicate on the "extracted_course" field.
func ExtractedCourseContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldExtractedCourse, v))
}

// ExtractedCollegeEQ applies the EQ predicate on the "extracted_college" field.
func ExtractedCollegeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedCollege, v))
}

// ExtractedCollegeNEQ applies the NEQ predicate on the "extracted_college" field.
func ExtractedCollegeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractedCollege, v))
}

// ExtractedCollegeIn applies the In predicate on the "extracted_college" field.
func ExtractedCollegeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractedCollege, vs...))
}

// ExtractedCollegeNotIn applies the NotIn predicate on the "extracted_college" field.
func ExtractedCollegeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractedCollege, vs...))
}

// ExtractedCollegeGT applies the GT predicate on the "extracted_college" field.
func ExtractedCollegeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractedCollege, v))
}

// ExtractedCollegeGTE applies the GTE predicate on the "extracted_college" field.
func ExtractedCollegeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractedCollege, v))
}

// ExtractedCollegeLT applies the LT predicate on the "extracted_college" field.
func ExtractedCollegeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractedCollege, v))
}

// ExtractedCollegeLTE applies the LTE predicate on the "extracted_college" field.
func ExtractedCollegeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractedCollege, v))
}

// ExtractedCollegeContains applies the Contains predicate on the "extracted_college" field.
func ExtractedCollegeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldExtractedCollege, v))
}

// ExtractedCollegeHasPrefix applies the HasPrefix predicate on the "extracted_college" field.
func ExtractedCollegeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldExtractedCollege, v))
}

// ExtractedCollegeHasSuffix applies the HasSuffix predicate on the "extracted_college" field.
func ExtractedCollegeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldExtractedCollege, v))
}

// ExtractedCollegeIsNil applies the IsNil predicate on the "extracted_college" field.
func ExtractedCollegeIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedCollege))
}

// ExtractedCollegeNotNil applies the NotNil predicate on the "extracted_college" field.
func ExtractedCollegeNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedCollege))
}

// ExtractedCollegeEqualFold applies the EqualFold predicate on the "extracted_college" field.
func ExtractedCollegeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldExtractedCollege, v))
}

// ExtractedCollegeContainsFold applies the ContainsFold predicate on the "extracted_college" field.
func ExtractedCollegeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldExtractedCollege, v))
}

// ExtractedUsnEQ applies the EQ predicate on the "extracted_usn" field.
func ExtractedUsnEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedUsn, v))
}

// ExtractedUsnNEQ applies the NEQ predicate on the "extracted_usn" field.
func ExtractedUsnNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractedUsn, v))
}

// ExtractedUsnIn applies the In predicate on the "extracted_usn" field.
func ExtractedUsnIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractedUsn, vs...))
}

// ExtractedUsnNotIn applies the NotIn predicate on the "extracted_usn" field.
func ExtractedUsnNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractedUsn, vs...))
}

// ExtractedUsnGT applies the GT predicate on the "extracted_usn" field.
func ExtractedUsnGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractedUsn, v))
}

// ExtractedUsnGTE applies the GTE predicate on the "extracted_usn" field.
func ExtractedUsnGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractedUsn, v))
}

// ExtractedUsnLT applies the LT predicate on the "extracted_usn" field.
func ExtractedUsnLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractedUsn, v))
}

// ExtractedUsnLTE applies the LTE predicate on the "extracted_usn" field.
func ExtractedUsnLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractedUsn, v))
}

// ExtractedUsnContains applies the Contains predicate on the "extracted_usn" field.
func ExtractedUsnContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldExtractedUsn, v))
}

// ExtractedUsnHasPrefix applies the HasPrefix predicate on the "extracted_usn" field.
func ExtractedUsnHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldExtractedUsn, v))
}

// ExtractedUsnHasSuffix applies the HasSuffix predicate on the "extracted_usn" field.
func ExtractedUsnHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldExtractedUsn, v))
}

// ExtractedUsnIsNil applies the IsNil predicate on the "extracted_usn" field.
func ExtractedUsnIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedUsn))
}

// ExtractedUsnNotNil applies the NotNil predicate on the "extracted_usn" field.
func ExtractedUsnNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedUsn))
}

// ExtractedUsnEqualFold applies the EqualFold predicate on the "extracted_usn" field.
func ExtractedUsnEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldExtractedUsn, v))
}

// ExtractedUsnContainsFold applies the ContainsFold predicate on the "extracted_usn" field.
func ExtractedUsnContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldExtractedUsn, v))
}

// ExtractedDobEQ applies the EQ predicate on the "extracted_dob" field.
func ExtractedDobEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedDob, v))
}

// ExtractedDobNEQ applies the NEQ predicate on the "extracted_dob" field.
func ExtractedDobNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractedDob, v))
}

// ExtractedDobIn applies the In predicate on the "extracted_dob" field.
func ExtractedDobIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractedDob, vs...))
}

// ExtractedDobNotIn applies the NotIn predicate on the "extracted_dob" field.
func ExtractedDobNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractedDob, vs...))
}

// ExtractedDobGT applies the GT predicate on the "extracted_dob" field.
func ExtractedDobGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractedDob, v))
}

// ExtractedDobGTE applies the GTE predicate on the "extracted_dob" field.
func ExtractedDobGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractedDob, v))
}

// ExtractedDobLT applies the LT predicate on the "extracted_dob" field.
func ExtractedDobLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractedDob, v))
}

// ExtractedDobLTE applies the LTE predicate on the "extracted_dob" field.
func ExtractedDobLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractedDob, v))
}

// ExtractedDobContains applies the Contains predicate on the "extracted_dob" field.
func ExtractedDobContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldExtractedDob, v))
}

// ExtractedDobHasPrefix applies the HasPrefix predicate on the "extracted_dob" field.
func ExtractedDobHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldExtractedDob, v))
}

// ExtractedDobHasSuffix applies the HasSuffix predicate on the "extracted_dob" field.
func ExtractedDobHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldExtractedDob, v))
}

// ExtractedDobIsNil applies the IsNil predicate on the "extracted_dob" field.
func ExtractedDobIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedDob))
}

// ExtractedDobNotNil applies the NotNil predicate on the "extracted_dob" field.
func ExtractedDobNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedDob))
}

// ExtractedDobEqualFold applies the EqualFold predicate on the "extracted_dob" field.
func ExtractedDobEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldExtractedDob, v))
}

// ExtractedDobContainsFold applies the ContainsFold predicate on the "extracted_dob" field.
func ExtractedDobContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldExtractedDob, v))
}

// ExtractedGpaEQ applies the EQ predicate on the "extracted_gpa" field.
func ExtractedGpaEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedGpa, v))
}

// ExtractedGpaNEQ applies the NEQ predicate on the "extracted_gpa" field.
func ExtractedGpaNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractedGpa, v))
}

// ExtractedGpaIn applies the In predicate on the "extracted_gpa" field.
func ExtractedGpaIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractedGpa, vs...))
}

// ExtractedGpaNotIn applies the NotIn predicate on the "extracted_gpa" field.
func ExtractedGpaNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractedGpa, vs...))
}

// ExtractedGpaGT applies the GT predicate on the "extracted_gpa" field.
func ExtractedGpaGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractedGpa, v))
}

// ExtractedGpaGTE applies the GTE predicate on the "extracted_gpa" field.
func ExtractedGpaGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractedGpa, v))
}

// ExtractedGpaLT applies the LT predicate on the "extracted_gpa" field.
func ExtractedGpaLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractedGpa, v))
}

// ExtractedGpaLTE applies the LTE predicate on the "extracted_gpa" field.
func ExtractedGpaLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractedGpa, v))
}

// ExtractedGpaIsNil applies the IsNil predicate on the "extracted_gpa" field.
func ExtractedGpaIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedGpa))
}

// ExtractedGpaNotNil applies the NotNil predicate on the "extracted_gpa" field.
func ExtractedGpaNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedGpa))
}

// ExtractedIncomeEQ applies the EQ predicate on the "extracted_income" field.
func ExtractedIncomeEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedIncome, v))
}

// ExtractedIncomeNEQ applies the NEQ predicate on the "extracted_income" field.
func ExtractedIncomeNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractedIncome, v))
}

// ExtractedIncomeIn applies the In predicate on the "extracted_income" field.
func ExtractedIncomeIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractedIncome, vs...))
}

// ExtractedIncomeNotIn applies the NotIn predicate on the "extracted_income" field.
func ExtractedIncomeNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractedIncome, vs...))
}

// ExtractedIncomeGT applies the GT predicate on the "extracted_income" field.
func ExtractedIncomeGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractedIncome, v))
}

// ExtractedIncomeGTE applies the GTE predicate on the "extracted_income" field.
func ExtractedIncomeGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractedIncome, v))
}

// ExtractedIncomeLT applies the LT predicate on the "extracted_income" field.
func ExtractedIncomeLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractedIncome, v))
}

// ExtractedIncomeLTE applies the LTE predicate on the "extracted_income" field.
func ExtractedIncomeLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractedIncome, v))
}

// ExtractedIncomeIsNil applies the IsNil predicate on the "extracted_income" field.
func ExtractedIncomeIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedIncome))
}

// ExtractedIncomeNotNil applies the NotNil predicate on the "extracted_income" field.
func ExtractedIncomeNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedIncome))
}

// ExtractedLoanAmountEQ applies the EQ predicate on the "extracted_loan_amount" field.
func ExtractedLoanAmountEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedLoanAmount, v))
}

// ExtractedLoanAmountNEQ applies the NEQ predicate on the "extracted_loan_amount" field.
func ExtractedLoanAmountNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractedLoanAmount, v))
}

// ExtractedLoanAmountIn applies the In predicate on the "extracted_loan_amount" field.
func ExtractedLoanAmountIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractedLoanAmount, vs...))
}

// ExtractedLoanAmountNotIn applies the NotIn predicate on the "extracted_loan_amount" field.
func ExtractedLoanAmountNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractedLoanAmount, vs...))
}

// ExtractedLoanAmountGT applies the GT predicate on the "extracted_loan_amount" field.
func ExtractedLoanAmountGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractedLoanAmount, v))
}

// ExtractedLoanAmountGTE applies the GTE predicate on the "extracted_loan_amount" field.
func ExtractedLoanAmountGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractedLoanAmount, v))
}

// ExtractedLoanAmountLT applies the LT predicate on the "extracted_loan_amount" field.
func ExtractedLoanAmountLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractedLoanAmount, v))
}

// ExtractedLoanAmountLTE applies the LTE predicate on the "extracted_loan_amount" field.
func ExtractedLoanAmountLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractedLoanAmount, v))
}

// ExtractedLoanAmountIsNil applies the IsNil predicate on the "extracted_loan_amount" field.
func ExtractedLoanAmountIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedLoanAmount))
}

// ExtractedLoanAmountNotNil applies the NotNil predicate on the "extracted_loan_amount" field.
func ExtractedLoanAmountNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedLoanAmount))
}

// ExtractedAdmissionYearEQ applies the EQ predicate on the "extracted_admission_year" field.
func ExtractedAdmissionYearEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedAdmissionYear, v))
}

// ExtractedAdmissionYearNEQ applies the NEQ predicate on the "extracted_admission_year" field.
func ExtractedAdmissionYearNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractedAdmissionYear, v))
}

// ExtractedAdmissionYearIn applies the In predicate on the "extracted_admission_year" field.
func ExtractedAdmissionYearIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractedAdmissionYear, vs...))
}

// ExtractedAdmissionYearNotIn applies the NotIn predicate on the "extracted_admission_year" field.
func ExtractedAdmissionYearNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractedAdmissionYear, vs...))
}

// ExtractedAdmissionYearGT applies the GT predicate on the "extracted_admission_year" field.
func ExtractedAdmissionYearGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractedAdmissionYear, v))
}

// ExtractedAdmissionYearGTE applies the GTE predicate on the "extracted_admission_year" field.
func ExtractedAdmissionYearGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractedAdmissionYear, v))
}

// ExtractedAdmissionYearLT applies the LT predicate on the "extracted_admission_year" field.
func ExtractedAdmissionYearLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractedAdmissionYear, v))
}

// ExtractedAdmissionYearLTE applies the LTE predicate on the "extracted_admission_year" field.
func ExtractedAdmissionYearLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractedAdmissionYear, v))
}

// ExtractedAdmissionYearIsNil applies the IsNil predicate on the "extracted_admission_year" field.
func ExtractedAdmissionYearIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedAdmissionYear))
}

// ExtractedAdmissionYearNotNil applies the NotNil predicate on the "extracted_admission_year" field.
func ExtractedAdmissionYearNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedAdmissionYear))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldRawText, v))
}

// ParsedJSONIsNil applies the IsNil predicate on the "parsed_json" field.
func ParsedJSONIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldParsedJSON))
}

// ParsedJSONNotNil applies the NotNil predicate on the "parsed_json" field.
func ParsedJSONNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldParsedJSON))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
