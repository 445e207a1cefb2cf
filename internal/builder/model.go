package builder

import (
	"encoding/json"
	"errors"
	"strings"
)

// PersonalInfo is the header block of a resume.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	Location string `json:"location"`
}

// ExperienceEntry is one job on the resume.
type ExperienceEntry struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry is one degree on the resume.
type EducationEntry struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

// SkillList accepts either a JSON array of strings or a single
// comma-separated string, since clients send both shapes.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = trimAll(arr)
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*s = trimAll(strings.Split(joined, ","))
		return nil
	}
	return errors.New("skills must be a string or an array of strings")
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ResumeContent is the structured resume a client submits for rendering.
type ResumeContent struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Summary      string            `json:"summary"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       SkillList         `json:"skills"`
}

// Validate checks the minimum content required to render a document.
// Only the name is mandatory; the contact line is simply omitted when
// no contact details were sent.
func (r ResumeContent) Validate() error {
	if strings.TrimSpace(r.PersonalInfo.FullName) == "" {
		return errors.New("full name is required")
	}
	return nil
}
