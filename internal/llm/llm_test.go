package llm

import (
	"strings"
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"tagged fence", "```json\n{\"score\": 80}\n```", `{"score": 80}`},
		{"bare fence", "```\n{\"score\": 80}\n```", `{"score": 80}`},
		{"no fence", `{"score": 80}`, `{"score": 80}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
		{"fence mid-text", "prefix ```json\n{\"a\":1}\n``` suffix", "prefix \n{\"a\":1}\n suffix"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanJSONBlock(tc.input); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuildAnalysisPromptEmbedsInputs(t *testing.T) {
	prompt := BuildAnalysisPrompt("Education and Skills text", "Data Engineer")

	if !strings.Contains(prompt, "Data Engineer") {
		t.Fatal("expected prompt to embed the target role")
	}
	if !strings.Contains(prompt, "Education and Skills text") {
		t.Fatal("expected prompt to embed the resume text")
	}
	if strings.Contains(prompt, "{{") {
		t.Fatalf("expected all template tokens replaced, got: %s", prompt)
	}
	for _, field := range []string{"score", "status", "skillGaps", "missingKeywords", "resumeImprovements", "roadmap", "projectIdeas"} {
		if !strings.Contains(prompt, field) {
			t.Fatalf("expected declared schema to mention %q", field)
		}
	}
}
