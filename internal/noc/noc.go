// Package noc renders No Objection Certificates for sanctioned
// education loans as fixed-layout plain text.
package noc

import (
	"fmt"
	"strings"
	"time"
)

// Details carries everything that appears on the certificate.
type Details struct {
	StudentName string
	USN         string
	College     string
	Course      string
	BankName    string
	LoanAmount  float64
	IssuedAt    time.Time
}

const width = 64

// Generate renders the certificate. The layout is fixed so downstream
// consumers can diff or archive certificates byte for byte.
func Generate(d Details) string {
	if d.IssuedAt.IsZero() {
		d.IssuedAt = time.Now().UTC()
	}
	rule := strings.Repeat("=", width)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(center("NO OBJECTION CERTIFICATE") + "\n")
	b.WriteString(rule + "\n\n")
	b.WriteString(fmt.Sprintf("Date: %s\n\n", d.IssuedAt.Format("02 January 2006")))
	b.WriteString("TO WHOMSOEVER IT MAY CONCERN\n\n")
	b.WriteString(fmt.Sprintf(
		"This is to certify that %s (USN: %s), a student of\n%s enrolled in %s, has no\noutstanding dues with this institution.\n\n",
		orDash(d.StudentName), orDash(d.USN), orDash(d.College), orDash(d.Course)))
	b.WriteString(fmt.Sprintf(
		"The institution has no objection to the student availing an\neducation loan of Rs. %.2f from %s.\n\n",
		d.LoanAmount, orDash(d.BankName)))
	b.WriteString("This certificate is issued upon the student's request for\nloan processing purposes.\n\n\n")
	b.WriteString("Authorized Signatory\n")
	b.WriteString(rule + "\n")
	return b.String()
}

func center(s string) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
