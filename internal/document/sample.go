package document

import (
	"time"

	"github.com/google/uuid"
)

// Default templates for new documents.
const (
	DefaultResumeTemplate      = "classic"
	DefaultCoverLetterTemplate = "minimalist"
)

// DefaultTemplate returns the built-in template new documents of kind use.
func DefaultTemplate(kind Kind) string {
	if kind == KindCoverLetter {
		return DefaultCoverLetterTemplate
	}
	return DefaultResumeTemplate
}

// Sample returns a fully populated document used to preview templates.
// Every section has at least one entry so every placeholder renders.
func Sample(kind Kind) Document {
	if kind == KindCoverLetter {
		return SampleCoverLetter()
	}
	return SampleResume()
}

// SampleResume returns a resume with every section populated.
func SampleResume() *Resume {
	return &Resume{
		Kind:        KindResume,
		ID:          "preview-resume",
		Name:        "Sample Resume",
		Template:    DefaultResumeTemplate,
		AccentColor: "#4f46e5",
		FontFamily:  FontInter,
		PersonalDetails: PersonalDetails{
			FullName: "Jane Doe",
			JobTitle: "Lead Developer",
			Email:    "jane.doe@email.com",
			Phone:    "555-123-4567",
			Address:  "456 Tech Ave, Webville",
			LinkedIn: "linkedin.com/in/janedoe",
			Website:  "janedoe.dev",
		},
		Summary: "Innovative and detail-oriented Lead Developer with over 10 years of experience " +
			"in building and maintaining scalable web applications.",
		Experience: []Experience{{
			ID:        "exp-1",
			JobTitle:  "Lead Developer",
			Company:   "Innovate LLC",
			Location:  "Tech City",
			StartDate: "2018",
			EndDate:   "Present",
			Responsibilities: []string{
				"Led a team of 5 developers.",
				"Architected new microservices architecture.",
			},
		}},
		Education: []Education{{
			ID:           "edu-1",
			Institution:  "Major University",
			Degree:       "M.S.",
			FieldOfStudy: "Software Engineering",
			StartDate:    "2012",
			EndDate:      "2014",
		}},
		Skills: []Skill{
			{ID: "skill-1", Name: "React"},
			{ID: "skill-2", Name: "TypeScript"},
			{ID: "skill-3", Name: "GraphQL"},
		},
		Projects: []Project{{
			ID:           "proj-1",
			Name:         "Project Titan",
			Description:  "A large-scale data visualization tool.",
			Link:         "project-titan.com",
			Technologies: []string{"D3.js", "React", "Python"},
		}},
		Languages: []LanguageProficiency{
			{ID: "lang-1", Language: "English", Proficiency: "Native"},
			{ID: "lang-2", Language: "German", Proficiency: "Professional"},
		},
		SupplementarySkills: []Skill{
			{ID: "sup-1", Name: "Agile Leadership"},
			{ID: "sup-2", Name: "Public Speaking"},
		},
		Courses: []Course{{
			ID: "course-1", Name: "Advanced Machine Learning", Institution: "Online Academy", Date: "2021",
		}},
		Awards: []Award{{
			ID: "award-1", Name: "Innovator of the Year", Issuer: "TechCon", Date: "2022",
		}},
		AcademicExperience: []AcademicExperience{{
			ID:          "acad-1",
			Title:       "Research Assistant",
			Institution: "Major University",
			Date:        "2013",
			Description: "Assisted in research on distributed systems.",
		}},
		References: []Reference{{
			ID: "ref-1", Name: "Dr. Alan Grant", Title: "Professor", Company: "Major University",
			ContactInfo: "agrant@majoru.edu",
		}},
	}
}

// SampleCoverLetter returns a populated cover letter.
func SampleCoverLetter() *CoverLetter {
	return &CoverLetter{
		Kind:     KindCoverLetter,
		ID:       "preview-cover-letter",
		Name:     "Sample Cover Letter",
		Template: DefaultCoverLetterTemplate,
		PersonalDetails: PersonalDetails{
			FullName: "Jane Smith",
			JobTitle: "Product Manager",
			Email:    "jane.smith@example.com",
			Phone:    "098-765-4321",
			Address:  "456 Oak Ave, Anytown, USA",
			LinkedIn: "linkedin.com/in/janesmith",
			Website:  "janesmith.com",
		},
		RecipientName:    "Hiring Manager",
		RecipientCompany: "Innovate Inc.",
		Date:             "2025-01-15",
		Body: "Dear Hiring Manager,\n\n" +
			"I am writing to express my interest in the Product Manager position at Innovate Inc. " +
			"I am confident that my skills and experience are a great match for this role.\n\n" +
			"Thank you for your time and consideration.\n\n" +
			"Sincerely,\nJane Smith",
	}
}

// New creates a starter document of kind named name, with a fresh ID and
// timestamps. An empty name falls back to "Untitled <kind label>".
func New(kind Kind, name string, now time.Time) Document {
	if name == "" {
		name = "Untitled " + kind.Label()
	}
	if kind == KindCoverLetter {
		letter := SampleCoverLetter()
		letter.ID = NewID(kind, now)
		letter.Name = name
		letter.Date = now.Format(time.DateOnly)
		letter.Touch(now)
		return letter
	}

	resume := &Resume{
		Kind:        KindResume,
		ID:          NewID(kind, now),
		Name:        name,
		Template:    DefaultResumeTemplate,
		AccentColor: "#3b82f6",
		FontFamily:  FontInter,
		PersonalDetails: PersonalDetails{
			FullName: "John Doe",
			JobTitle: "Software Engineer",
			Email:    "john.doe@example.com",
			Phone:    "123-456-7890",
			Address:  "123 Main St, Anytown, USA",
			LinkedIn: "linkedin.com/in/johndoe",
			Website:  "johndoe.com",
		},
		Summary: "A passionate software engineer with experience in building web applications.",
		Experience: []Experience{{
			ID:        uuid.NewString(),
			JobTitle:  "Senior Software Engineer",
			Company:   "Tech Corp",
			Location:  "San Francisco, CA",
			StartDate: "2020-01-01",
			EndDate:   "Present",
			Responsibilities: []string{
				"Developed and maintained web applications.",
				"Collaborated with cross-functional teams.",
			},
		}},
		Education: []Education{{
			ID:           uuid.NewString(),
			Institution:  "State University",
			Degree:       "Bachelor of Science",
			FieldOfStudy: "Computer Science",
			StartDate:    "2016-09-01",
			EndDate:      "2020-05-01",
		}},
		Skills: []Skill{
			{ID: uuid.NewString(), Name: "JavaScript"},
			{ID: uuid.NewString(), Name: "React"},
			{ID: uuid.NewString(), Name: "Node.js"},
		},
	}
	resume.Touch(now)
	return resume
}
