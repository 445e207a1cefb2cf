package analysis

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
)

// skillCategory binds a broad category label to the literal keywords the
// fallback scanner looks for in the resume text.
type skillCategory struct {
	label    string
	keywords []string
}

var fallbackCategories = []skillCategory{
	{label: "Frontend", keywords: []string{"html", "css", "javascript", "react", "typescript", "redux", "tailwind"}},
	{label: "Backend", keywords: []string{"node", "express", "api", "sql", "mongodb", "postgres", "docker", "go", "java"}},
	{label: "Data", keywords: []string{"python", "pandas", "numpy", "machine learning", "analytics", "excel"}},
	{label: "General", keywords: []string{"git", "github", "testing", "agile", "communication", "leadership"}},
}

const (
	fallbackBaseScore   = 40
	fallbackPerMatch    = 3
	fallbackScoreFloor  = 45
	fallbackScoreCeil   = 95
	missingSampleChance = 0.6
)

// Fallback synthesizes an analysis result from keyword matching alone. It
// never fails, even on empty text. Missing-keyword sampling is seeded from
// an FNV hash of the input text, so identical inputs produce identical
// results while different resumes still vary.
func Fallback(resumeText, targetRole string) *Result {
	lower := strings.ToLower(resumeText)
	rng := rand.New(rand.NewSource(int64(seedFor(lower))))

	score := fallbackBaseScore
	matched := []string{}
	missing := []string{}
	gaps := make([]SkillGap, 0, len(fallbackCategories))

	for _, cat := range fallbackCategories {
		catMatched := 0
		catMissing := []string{}
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, kw)
				catMatched++
				score += fallbackPerMatch
				continue
			}
			if rng.Float64() < missingSampleChance {
				catMissing = append(catMissing, kw)
				missing = append(missing, kw)
			}
		}
		gaps = append(gaps, SkillGap{
			Category:      cat.label,
			Completion:    catMatched * 100 / len(cat.keywords),
			MissingSkills: catMissing,
		})
	}

	if score < fallbackScoreFloor {
		score = fallbackScoreFloor
	}
	if score > fallbackScoreCeil {
		score = fallbackScoreCeil
	}

	res := &Result{
		Score: score,
		Analysis: fmt.Sprintf(
			"Automated keyword review for the %s role: %d relevant skills detected. This is an approximate assessment produced without AI assistance.",
			targetRole, len(matched)),
		Feedback: fmt.Sprintf(
			"Your resume mentions %d skills relevant to %s. Add measurable outcomes to your experience bullets and name the tools you used on each project.",
			len(matched), targetRole),
		SkillGaps:       gaps,
		MissingKeywords: missing,
		ResumeImprovements: []Improvement{
			{
				Original: "Worked on various projects using different technologies.",
				Improved: fmt.Sprintf("Built and shipped projects targeting %s responsibilities, naming the exact stack and the outcome of each.", targetRole),
				Reason:   "Specific technologies and results are what screeners scan for.",
			},
		},
		Roadmap: []RoadmapWeek{
			{
				Week:  1,
				Title: fmt.Sprintf("Close the most visible gaps for %s", targetRole),
				Skills: func() []string {
					if len(missing) > 3 {
						return missing[:3]
					}
					return missing
				}(),
				Tasks: []string{
					"Rewrite your top three experience bullets with concrete metrics.",
					"Add a skills section that names the missing keywords you actually know.",
				},
				Project: "Refresh one existing portfolio project and document it in the resume.",
			},
		},
	}
	res.Normalize(targetRole)
	return res
}

func seedFor(text string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	return h.Sum64()
}
