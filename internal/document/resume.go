package document

import (
	"time"

	"github.com/gorewood/folio/internal/render"
)

// Resume is a multi-section professional profile.
type Resume struct {
	Kind                Kind                  `json:"kind"`
	ID                  string                `json:"id"`
	Name                string                `json:"name"`
	Template            string                `json:"template"`
	AccentColor         string                `json:"accentColor"`
	FontFamily          FontFamily            `json:"fontFamily"`
	PersonalDetails     PersonalDetails       `json:"personalDetails"`
	Summary             string                `json:"summary"`
	Experience          []Experience          `json:"experience"`
	Education           []Education           `json:"education"`
	Skills              []Skill               `json:"skills"`
	Projects            []Project             `json:"projects"`
	Languages           []LanguageProficiency `json:"languages"`
	SupplementarySkills []Skill               `json:"supplementarySkills"`
	Courses             []Course              `json:"courses"`
	Awards              []Award               `json:"awards"`
	AcademicExperience  []AcademicExperience  `json:"academicExperience"`
	References          []Reference           `json:"references"`
	CreatedAt           time.Time             `json:"createdAt,omitzero"`
	UpdatedAt           time.Time             `json:"updatedAt,omitzero"`
}

// PersonalDetails holds contact information shared by both document kinds.
type PersonalDetails struct {
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// Experience is one position held.
type Experience struct {
	ID               string   `json:"id"`
	JobTitle         string   `json:"jobTitle"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Responsibilities []string `json:"responsibilities"`
}

// Education is one degree or program.
type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

// Skill is a named skill.
type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Project is a portfolio project.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Link         string   `json:"link"`
	Technologies []string `json:"technologies"`
}

// LanguageProficiency is a spoken language and level.
type LanguageProficiency struct {
	ID          string `json:"id"`
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// Course is a completed course.
type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Institution string `json:"institution"`
	Date        string `json:"date"`
}

// Award is an honor received.
type Award struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// AcademicExperience is a research or teaching position.
type AcademicExperience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Reference is a professional contact.
type Reference struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	ContactInfo string `json:"contactInfo"`
}

// Field implements render.Record.
func (r *Resume) Field(name string) render.Value {
	if r == nil {
		return render.Absent
	}
	switch name {
	case "kind":
		return render.Text(string(KindResume))
	case "id":
		return render.Text(r.ID)
	case "name":
		return render.Text(r.Name)
	case "template":
		return render.Text(r.Template)
	case "accentColor":
		return render.Text(r.AccentColor)
	case "fontFamily":
		return render.Text(string(r.FontFamily))
	case "personalDetails":
		return render.RecordOf(r.PersonalDetails)
	case "summary":
		return render.Text(r.Summary)
	case "experience":
		return render.SeqOf(r.Experience)
	case "education":
		return render.SeqOf(r.Education)
	case "skills":
		return render.SeqOf(r.Skills)
	case "projects":
		return render.SeqOf(r.Projects)
	case "languages":
		return render.SeqOf(r.Languages)
	case "supplementarySkills":
		return render.SeqOf(r.SupplementarySkills)
	case "courses":
		return render.SeqOf(r.Courses)
	case "awards":
		return render.SeqOf(r.Awards)
	case "academicExperience":
		return render.SeqOf(r.AcademicExperience)
	case "references":
		return render.SeqOf(r.References)
	case "createdAt":
		return timeValue(r.CreatedAt)
	case "updatedAt":
		return timeValue(r.UpdatedAt)
	default:
		return render.Absent
	}
}

// Field implements render.Record.
func (p PersonalDetails) Field(name string) render.Value {
	switch name {
	case "fullName":
		return render.Text(p.FullName)
	case "jobTitle":
		return render.Text(p.JobTitle)
	case "email":
		return render.Text(p.Email)
	case "phone":
		return render.Text(p.Phone)
	case "address":
		return render.Text(p.Address)
	case "linkedin":
		return render.Text(p.LinkedIn)
	case "website":
		return render.Text(p.Website)
	default:
		return render.Absent
	}
}

// Field implements render.Record.
func (e Experience) Field(name string) render.Value {
	switch name {
	case "id":
		return render.Text(e.ID)
	case "jobTitle":
		return render.Text(e.JobTitle)
	case "company":
		return render.Text(e.Company)
	case "location":
		return render.Text(e.Location)
	case "startDate":
		return render.Text(e.StartDate)
	case "endDate":
		return render.Text(e.EndDate)
	case "responsibilities":
		return render.Strings(e.Responsibilities)
	default:
		return render.Absent
	}
}

// Field implements render.Record.
func (e Education) Field(name string) render.Value {
	switch name {
	case "id":
		return render.Text(e.ID)
	case "institution":
		return render.Text(e.Institution)
	case "degree":
		return render.Text(e.Degree)
	case "fieldOfStudy":
		return render.Text(e.FieldOfStudy)
	case "startDate":
		return render.Text(e.StartDate)
	case "endDate":
		return render.Text(e.EndDate)
	default:
		return render.Absent
	}
}

// Field implements render.Record.
func (s Skill) Field(name string) render.Value {
	switch name {
	case "id":
		return render.Text(s.ID)
	case "name":
		return render.Text(s.Name)
	default:
		return render.Absent
	}
}

// Field implements render.Record.
func (p Project) Field(name string) render.Value {
	switch name {
	case "id":
		return render.Text(p.ID)
	case "name":
		return render.Text(p.Name)
	case "description":
		return render.Text(p.Description)
	case "link":
		return render.Text(p.Link)
	case "technologies":
		return render.Strings(p.Technologies)
	default:
		return render.Absent
	}
}

// Field implements render.Record.
func (l LanguageProficiency) Field(name string) render.Value {
	switch name {
	case "id":
		return render.Text(l.ID)
	case "language":
		return render.Text(l.Language)
	case "proficiency":
		return render.Text(l.Proficiency)
	default:
		return render.Absent
	}
}

// Field implements render.Record.
func (c Course) Field(name string) render.Value {
	switch name {
	case "id":
		return render.Text(c.ID)
	case "name":
		return render.Text(c.Name)
	case "institution":
		return render.Text(c.Institution)
	case "date":
		return render.Text(c.Date)
	default:
		return render.Absent
	}
}

// Field implements render.Record.
func (a Award) Field(name string) render.Value {
	switch name {
	case "id":
		return render.Text(a.ID)
	case "name":
		return render.Text(a.Name)
	case "issuer":
		return render.Text(a.Issuer)
	case "date":
		return render.Text(a.Date)
	default:
		return render.Absent
	}
}

// Field implements render.Record.
func (a AcademicExperience) Field(name string) render.Value {
	switch name {
	case "id":
		return render.Text(a.ID)
	case "title":
		return render.Text(a.Title)
	case "institution":
		return render.Text(a.Institution)
	case "date":
		return render.Text(a.Date)
	case "description":
		return render.Text(a.Description)
	default:
		return render.Absent
	}
}

// Field implements render.Record.
func (r Reference) Field(name string) render.Value {
	switch name {
	case "id":
		return render.Text(r.ID)
	case "name":
		return render.Text(r.Name)
	case "title":
		return render.Text(r.Title)
	case "company":
		return render.Text(r.Company)
	case "contactInfo":
		return render.Text(r.ContactInfo)
	default:
		return render.Absent
	}
}

// timeValue renders a timestamp as a calendar date. The zero time is Absent.
func timeValue(t time.Time) render.Value {
	if t.IsZero() {
		return render.Absent
	}
	return render.Text(t.Format(time.DateOnly))
}
