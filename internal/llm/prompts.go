package llm

import (
	_ "embed"
	"strings"
)

//go:embed prompts/analyze_v1.txt
var analyzePromptV1 string

// BuildAnalysisPrompt renders the career-analysis instruction template with
// the extracted resume text and the user's target role. Pure string
// interpolation; the template declares the exact output schema.
func BuildAnalysisPrompt(resumeText, targetRole string) string {
	replacer := strings.NewReplacer(
		"{{TARGET_ROLE}}", targetRole,
		"{{RESUME_TEXT}}", resumeText,
	)
	return replacer.Replace(analyzePromptV1)
}
