package analysis

// Status bands derived from the numeric score. The status field is never
// trusted from upstream output; it is always recomputed from the score.
const (
	StatusNeedsImprovement = "needs-improvement"
	StatusAlmostThere      = "almost-there"
	StatusJobReady         = "job-ready"
)

// SkillGap describes one skill category and what is missing from it.
type SkillGap struct {
	Category      string   `json:"category"`
	Completion    int      `json:"completion"`
	MissingSkills []string `json:"missingSkills"`
}

// Improvement is a concrete line-level rewrite suggestion.
type Improvement struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
	Reason   string `json:"reason"`
}

// RoadmapWeek is one week of the preparation plan.
type RoadmapWeek struct {
	Week      int      `json:"week"`
	Title     string   `json:"title"`
	Skills    []string `json:"skills"`
	Tasks     []string `json:"tasks"`
	Project   string   `json:"project"`
	Completed bool     `json:"completed"`
}

// ProjectIdea is a portfolio project suggestion.
type ProjectIdea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Difficulty  string   `json:"difficulty"`
}

// Result is the full analysis payload returned to the client.
type Result struct {
	Score              int           `json:"score"`
	Status             string        `json:"status"`
	TargetRole         string        `json:"targetRole"`
	Analysis           string        `json:"analysis"`
	Recruiters         []string      `json:"recruiters"`
	Feedback           string        `json:"feedback"`
	SkillGaps          []SkillGap    `json:"skillGaps"`
	MissingKeywords    []string      `json:"missingKeywords"`
	ResumeImprovements []Improvement `json:"resumeImprovements"`
	Roadmap            []RoadmapWeek `json:"roadmap"`
	ProjectIdeas       []ProjectIdea `json:"projectIdeas"`
}

// StatusForScore maps a score onto its band.
func StatusForScore(score int) string {
	switch {
	case score >= 75:
		return StatusJobReady
	case score >= 50:
		return StatusAlmostThere
	default:
		return StatusNeedsImprovement
	}
}

// Normalize recomputes derived fields and replaces nil slices with empty
// ones so the JSON encoding never emits null arrays.
func (r *Result) Normalize(targetRole string) {
	r.TargetRole = targetRole
	r.Status = StatusForScore(r.Score)
	if r.Recruiters == nil {
		r.Recruiters = []string{}
	}
	if r.SkillGaps == nil {
		r.SkillGaps = []SkillGap{}
	}
	if r.MissingKeywords == nil {
		r.MissingKeywords = []string{}
	}
	if r.ResumeImprovements == nil {
		r.ResumeImprovements = []Improvement{}
	}
	if r.Roadmap == nil {
		r.Roadmap = []RoadmapWeek{}
	}
	if r.ProjectIdeas == nil {
		r.ProjectIdeas = []ProjectIdea{}
	}
	for i := range r.SkillGaps {
		if r.SkillGaps[i].MissingSkills == nil {
			r.SkillGaps[i].MissingSkills = []string{}
		}
	}
	for i := range r.Roadmap {
		r.Roadmap[i].Completed = false
		if r.Roadmap[i].Skills == nil {
			r.Roadmap[i].Skills = []string{}
		}
		if r.Roadmap[i].Tasks == nil {
			r.Roadmap[i].Tasks = []string{}
		}
	}
	for i := range r.ProjectIdeas {
		if r.ProjectIdeas[i].Skills == nil {
			r.ProjectIdeas[i].Skills = []string{}
		}
	}
}
