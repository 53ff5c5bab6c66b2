// Package extract turns recognized document text into typed fields.
//
// Every field is produced by one independent pattern search over the whole
// text. A failed or malformed capture leaves that field nil and never blocks
// the others; numeric parse failures are absorbed, not raised.
package extract

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/edulend/loanassist/internal/ranking"
)

// Fields is the structured output of one extraction run. Nil means the field
// was absent or unparseable. RawText is always carried so callers can audit
// or re-derive.
type Fields struct {
	Name          *string  `json:"extracted_name"`
	DOB           *string  `json:"extracted_dob"`
	College       *string  `json:"extracted_college"`
	Course        *string  `json:"extracted_course"`
	GPA           *float64 `json:"extracted_gpa"`
	USN           *string  `json:"extracted_usn"`
	Income        *float64 `json:"extracted_income"`
	AdmissionYear *int     `json:"extracted_admission_year"`
	LoanAmount    *float64 `json:"extracted_loan_amount"`
	RawText       string   `json:"raw_text"`
}

var (
	// labeled name is case-sensitive; the bare-line fallback catches
	// documents that lead with a capitalized name and no label
	reName         = regexp.MustCompile(`Name[:\s]+([A-Z][A-Za-z .\-]{2,80})`)
	reNameBareLine = regexp.MustCompile(`(?m)^\s*([A-Z][A-Za-z ]{2,80})\s*$`)
	reGPA          = regexp.MustCompile(`(?i)(GPA|CGPA)[:\s]*([0-9]{1,2}\.?[0-9]{0,2})`)
	reIncome       = regexp.MustCompile(`(?i)(Income|Family Income|family_income)[:\s₹Rs.]*([0-9,]+)`)
	reYear         = regexp.MustCompile(`(?i)Admission\s*Year[:\s]*([0-9]{4})`)
	reCourse       = regexp.MustCompile(`(?i)Course[:\s]*([A-Za-z0-9 \-&]+)`)
	reCollege      = regexp.MustCompile(`(?i)College[:\s]*([A-Za-z0-9 &.\-]+)`)
	reUSN          = regexp.MustCompile(`(?i)(USN|Roll No\.?|usn)[:\s]*([A-Z0-9\-]+)`)
	reDOB          = regexp.MustCompile(`(?i)(DOB|Date of Birth)[:\s]*([0-9]{4}-[0-9]{2}-[0-9]{2}|[0-9]{2}/[0-9]{2}/[0-9]{4})`)
	reLoanAmount   = regexp.MustCompile(`(?i)(loan_amount|Loan amount|Loan Amount)[:\s₹Rs.]*([0-9,]+)`)
)

// ParseFields extracts structured info from recognized text.
func ParseFields(text string) Fields {
	f := Fields{RawText: text}

	if m := reName.FindStringSubmatch(text); m != nil {
		f.Name = trimmed(m[1])
	} else if m := reNameBareLine.FindStringSubmatch(text); m != nil {
		f.Name = trimmed(m[1])
	}

	if m := reGPA.FindStringSubmatch(text); m != nil {
		f.GPA = parseFloat(m[2])
	}

	if m := reIncome.FindStringSubmatch(text); m != nil {
		f.Income = parseFloat(strings.ReplaceAll(m[2], ",", ""))
	}

	if m := reYear.FindStringSubmatch(text); m != nil {
		f.AdmissionYear = parseInt(m[1])
	}

	if m := reCourse.FindStringSubmatch(text); m != nil {
		f.Course = trimmed(m[1])
	}

	if m := reCollege.FindStringSubmatch(text); m != nil {
		f.College = trimmed(m[1])
	}

	if m := reUSN.FindStringSubmatch(text); m != nil {
		f.USN = trimmed(m[2])
	}

	if m := reDOB.FindStringSubmatch(text); m != nil {
		f.DOB = trimmed(m[2])
	}

	if m := reLoanAmount.FindStringSubmatch(text); m != nil {
		f.LoanAmount = parseFloat(strings.ReplaceAll(m[2], ",", ""))
	}

	return f
}

// JSON renders the parsed_json payload (nil fields serialize as null, so the
// stored shape is stable regardless of which searches matched).
func (f Fields) JSON() ([]byte, error) {
	return json.Marshal(f)
}

// Profile builds the ranking input from extracted fields. Absent values map
// to empty strings, which the ranking engine treats as missing.
func (f Fields) Profile() ranking.Profile {
	p := ranking.Profile{}
	if f.GPA != nil {
		p.GPA = strconv.FormatFloat(*f.GPA, 'f', -1, 64)
	}
	if f.Income != nil {
		p.Income = strconv.FormatFloat(*f.Income, 'f', -1, 64)
	}
	return p
}

func trimmed(s string) *string {
	t := strings.TrimSpace(s)
	return &t
}

func parseFloat(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}
