package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = `Name: Ananya Sharma
DOB: 2003-07-14
College: RV College of Engineering
Course: Computer Science
USN: 1RV21CS042
GPA: 8.7
Family Income: 4,50,000
Admission Year: 2021
Loan Amount: 3,00,000`

func TestParseFieldsFullDocument(t *testing.T) {
	f := ParseFields(sampleText)

	require.NotNil(t, f.Name)
	assert.Equal(t, "Ananya Sharma", *f.Name)

	require.NotNil(t, f.DOB)
	assert.Equal(t, "2003-07-14", *f.DOB)

	require.NotNil(t, f.College)
	assert.Equal(t, "RV College of Engineering", *f.College)

	require.NotNil(t, f.Course)
	assert.Equal(t, "Computer Science", *f.Course)

	require.NotNil(t, f.USN)
	assert.Equal(t, "1RV21CS042", *f.USN)

	require.NotNil(t, f.GPA)
	assert.Equal(t, 8.7, *f.GPA)

	require.NotNil(t, f.Income)
	assert.Equal(t, 450000.0, *f.Income)

	require.NotNil(t, f.AdmissionYear)
	assert.Equal(t, 2021, *f.AdmissionYear)

	require.NotNil(t, f.LoanAmount)
	assert.Equal(t, 300000.0, *f.LoanAmount)

	assert.Equal(t, sampleText, f.RawText)
}

func TestParseFieldsIndependence(t *testing.T) {
	// a corrupted GPA must not block the other searches
	f := ParseFields("Name: Ravi Kumar\nGPA: ??\nIncome: 200000")
	require.NotNil(t, f.Name)
	assert.Equal(t, "Ravi Kumar", *f.Name)
	assert.Nil(t, f.GPA)
	require.NotNil(t, f.Income)
	assert.Equal(t, 200000.0, *f.Income)
}

func TestParseFieldsEmptyText(t *testing.T) {
	f := ParseFields("")
	assert.Nil(t, f.Name)
	assert.Nil(t, f.GPA)
	assert.Nil(t, f.Income)
	assert.Nil(t, f.DOB)
	assert.Equal(t, "", f.RawText)
}

func TestParseFieldsNameFallback(t *testing.T) {
	// no "Name:" label, but the document leads with a capitalized line
	f := ParseFields("Priya Nair\nCourse: Electronics")
	require.NotNil(t, f.Name)
	assert.Equal(t, "Priya Nair", *f.Name)
}

func TestParseFieldsDOBFormats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"iso", "DOB: 2001-11-05", "2001-11-05"},
		{"slash", "Date of Birth: 05/11/2001", "05/11/2001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ParseFields(tt.text)
			require.NotNil(t, f.DOB)
			assert.Equal(t, tt.want, *f.DOB)
		})
	}
}

func TestParseFieldsCGPAAlias(t *testing.T) {
	f := ParseFields("CGPA 9.12")
	require.NotNil(t, f.GPA)
	assert.Equal(t, 9.12, *f.GPA)
}

func TestFieldsJSONAbsentFieldsAreNull(t *testing.T) {
	f := ParseFields("Course: MBA")
	b, err := f.JSON()
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	// absent fields serialize as explicit nulls, keeping the shape stable
	for _, key := range []string{
		"extracted_name", "extracted_dob", "extracted_college",
		"extracted_usn", "extracted_gpa", "extracted_income",
		"extracted_admission_year", "extracted_loan_amount",
	} {
		v, ok := m[key]
		require.True(t, ok, "missing key %s", key)
		assert.Nil(t, v, "key %s should be null", key)
	}
	assert.Equal(t, "MBA", m["extracted_course"])
	assert.Equal(t, "Course: MBA", m["raw_text"])
}

func TestFieldsProfile(t *testing.T) {
	f := ParseFields("GPA: 8.5\nIncome: 300000")
	p := f.Profile()
	assert.Equal(t, "8.5", p.GPA)
	assert.Equal(t, "300000", p.Income)

	empty := ParseFields("nothing here").Profile()
	assert.Equal(t, "", empty.GPA)
	assert.Equal(t, "", empty.Income)
}
