package document

// PlaceholderSection documents the paths a template can reference for one
// section of a document. Loop is set for sections rendered with
// {{#each Loop}}; Fields are then relative to each element.
type PlaceholderSection struct {
	Section string   `json:"section"`
	Loop    string   `json:"loop,omitempty"`
	Fields  []string `json:"fields"`
}

var personalDetailFields = []string{
	"personalDetails.fullName",
	"personalDetails.jobTitle",
	"personalDetails.email",
	"personalDetails.phone",
	"personalDetails.address",
	"personalDetails.linkedin",
	"personalDetails.website",
}

// Placeholders lists the placeholder paths available to templates of kind.
func Placeholders(kind Kind) []PlaceholderSection {
	if kind == KindCoverLetter {
		return []PlaceholderSection{
			{Section: "Personal Details", Fields: personalDetailFields},
			{Section: "Recipient", Fields: []string{"recipientName", "recipientCompany", "date"}},
			{Section: "Body", Fields: []string{"body"}},
		}
	}
	return []PlaceholderSection{
		{Section: "Personal Details", Fields: personalDetailFields},
		{Section: "Style", Fields: []string{"accentColor", "fontFamily"}},
		{Section: "Summary", Fields: []string{"summary"}},
		{Section: "Experience", Loop: "experience", Fields: []string{"jobTitle", "company", "location", "startDate", "endDate", "responsibilities"}},
		{Section: "Education", Loop: "education", Fields: []string{"institution", "degree", "fieldOfStudy", "startDate", "endDate"}},
		{Section: "Skills", Loop: "skills", Fields: []string{"name"}},
		{Section: "Projects", Loop: "projects", Fields: []string{"name", "description", "link", "technologies"}},
		{Section: "Languages", Loop: "languages", Fields: []string{"language", "proficiency"}},
		{Section: "Supplementary Skills", Loop: "supplementarySkills", Fields: []string{"name"}},
		{Section: "Courses", Loop: "courses", Fields: []string{"name", "institution", "date"}},
		{Section: "Awards", Loop: "awards", Fields: []string{"name", "issuer", "date"}},
		{Section: "Academic Experience", Loop: "academicExperience", Fields: []string{"title", "institution", "date", "description"}},
		{Section: "References", Loop: "references", Fields: []string{"name", "title", "company", "contactInfo"}},
	}
}
