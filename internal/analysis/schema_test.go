package analysis

import (
	"encoding/json"
	"strings"
	"testing"
)

func validAIOutput() string {
	res := Result{
		Score:    82,
		Analysis: "Strong resume overall.",
		Feedback: "Good structure.",
		SkillGaps: []SkillGap{
			{Category: "Backend", Completion: 70, MissingSkills: []string{"docker"}},
		},
		MissingKeywords: []string{"docker"},
		ResumeImprovements: []Improvement{
			{Original: "Did stuff", Improved: "Shipped an API", Reason: "Specificity"},
		},
		Roadmap: []RoadmapWeek{
			{Week: 1, Title: "Containers", Skills: []string{"docker"}, Tasks: []string{"Learn docker"}, Project: "Containerize an app"},
		},
		ProjectIdeas: []ProjectIdea{
			{Title: "API", Description: "Build one", Skills: []string{"go"}, Difficulty: "Intermediate"},
		},
	}
	data, _ := json.Marshal(res)
	return string(data)
}

func TestParseAIResultAcceptsValidOutput(t *testing.T) {
	res, err := ParseAIResult(validAIOutput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 82 {
		t.Fatalf("expected score 82, got %d", res.Score)
	}
	if len(res.Roadmap) != 1 {
		t.Fatalf("expected 1 roadmap week, got %d", len(res.Roadmap))
	}
}

func TestParseAIResultRejectsBrokenJSON(t *testing.T) {
	if _, err := ParseAIResult(`{"score": 80,`); err == nil {
		t.Fatal("expected error for truncated json")
	}
}

func TestParseAIResultRejectsMissingFields(t *testing.T) {
	if _, err := ParseAIResult(`{"score": 80, "analysis": "fine"}`); err == nil {
		t.Fatal("expected error for missing required fields")
	}
}

func TestParseAIResultRejectsWrongTypes(t *testing.T) {
	bad := strings.Replace(validAIOutput(), `"score":82`, `"score":"82"`, 1)
	if _, err := ParseAIResult(bad); err == nil {
		t.Fatal("expected error for string score")
	}
}

func TestParseAIResultRejectsUnknownDifficulty(t *testing.T) {
	bad := strings.Replace(validAIOutput(), `"difficulty":"Intermediate"`, `"difficulty":"medium"`, 1)
	if _, err := ParseAIResult(bad); err == nil {
		t.Fatal("expected error for difficulty outside Beginner/Intermediate/Advanced")
	}
}

func TestParseAIResultRejectsOutOfRangeScore(t *testing.T) {
	bad := strings.Replace(validAIOutput(), `"score":82`, `"score":140`, 1)
	if _, err := ParseAIResult(bad); err == nil {
		t.Fatal("expected error for score above 100")
	}
}
