package export

import (
	"fmt"
	"strings"

	"github.com/gorewood/folio/internal/document"
)

// PlainText returns a plain text rendition of doc.
func PlainText(doc document.Document) string {
	switch d := doc.(type) {
	case *document.Resume:
		return resumeText(d)
	case *document.CoverLetter:
		return coverLetterText(d)
	}
	return ""
}

func resumeText(r *document.Resume) string {
	var b strings.Builder
	pd := r.PersonalDetails
	fmt.Fprintf(&b, "%s\n%s\n", pd.FullName, pd.JobTitle)
	fmt.Fprintf(&b, "Contact: %s | %s | %s | %s\n\n", pd.Email, pd.Phone, pd.LinkedIn, pd.Website)
	fmt.Fprintf(&b, "SUMMARY\n%s\n\n", r.Summary)

	if len(r.Experience) > 0 {
		b.WriteString("EXPERIENCE\n\n")
		for _, exp := range r.Experience {
			fmt.Fprintf(&b, "%s at %s (%s - %s)\n", exp.JobTitle, exp.Company, exp.StartDate, exp.EndDate)
			for _, line := range exp.Responsibilities {
				fmt.Fprintf(&b, "  - %s\n", line)
			}
			b.WriteString("\n")
		}
	}

	if len(r.Education) > 0 {
		b.WriteString("EDUCATION\n\n")
		for _, edu := range r.Education {
			fmt.Fprintf(&b, "%s in %s, %s (%s - %s)\n", edu.Degree, edu.FieldOfStudy, edu.Institution, edu.StartDate, edu.EndDate)
		}
		b.WriteString("\n")
	}

	if len(r.Skills) > 0 {
		names := make([]string, 0, len(r.Skills))
		for _, s := range r.Skills {
			names = append(names, s.Name)
		}
		fmt.Fprintf(&b, "SKILLS\n%s\n", strings.Join(names, ", "))
	}

	return b.String()
}

func coverLetterText(c *document.CoverLetter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", c.PersonalDetails.FullName)
	fmt.Fprintf(&b, "%s\n\n", c.Date)
	fmt.Fprintf(&b, "%s\n%s\n\n", c.RecipientName, c.RecipientCompany)
	fmt.Fprintf(&b, "%s\n", c.Body)
	return b.String()
}
