package document

import (
	"time"

	"github.com/gorewood/folio/internal/render"
)

// CoverLetter is a short correspondence letter.
type CoverLetter struct {
	Kind             Kind            `json:"kind"`
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Template         string          `json:"template"`
	PersonalDetails  PersonalDetails `json:"personalDetails"`
	RecipientName    string          `json:"recipientName"`
	RecipientCompany string          `json:"recipientCompany"`
	Date             string          `json:"date"`
	Body             string          `json:"body"`
	CreatedAt        time.Time       `json:"createdAt,omitzero"`
	UpdatedAt        time.Time       `json:"updatedAt,omitzero"`
}

// Field implements render.Record.
func (c *CoverLetter) Field(name string) render.Value {
	if c == nil {
		return render.Absent
	}
	switch name {
	case "kind":
		return render.Text(string(KindCoverLetter))
	case "id":
		return render.Text(c.ID)
	case "name":
		return render.Text(c.Name)
	case "template":
		return render.Text(c.Template)
	case "personalDetails":
		return render.RecordOf(c.PersonalDetails)
	case "recipientName":
		return render.Text(c.RecipientName)
	case "recipientCompany":
		return render.Text(c.RecipientCompany)
	case "date":
		return render.Text(c.Date)
	case "body":
		return render.Text(c.Body)
	case "createdAt":
		return timeValue(c.CreatedAt)
	case "updatedAt":
		return timeValue(c.UpdatedAt)
	default:
		return render.Absent
	}
}
