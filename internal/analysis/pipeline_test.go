package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"careerprep-backend/internal/extract"
)

type stubLLM struct {
	output string
	err    error
	calls  int
}

func (s *stubLLM) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.output, nil
}

// blockingLLM never answers; it waits out whatever deadline the caller set.
type blockingLLM struct{}

func (blockingLLM) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

const resumeText = "Education: BSc. Skills: go, sql. Experience: backend work. Projects: api."

func TestAnalyzeUsesAIResult(t *testing.T) {
	client := &stubLLM{output: "```json\n" + validAIOutput() + "\n```"}
	svc := NewService(client, time.Second)

	res, source, err := svc.Analyze(context.Background(), []byte(resumeText), extract.MimePlain, "Backend Developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceAI {
		t.Fatalf("expected ai source, got %q", source)
	}
	if res.TargetRole != "Backend Developer" {
		t.Fatalf("expected caller role to overwrite model output, got %q", res.TargetRole)
	}
	if res.Status != StatusForScore(res.Score) {
		t.Fatalf("status %q inconsistent with score %d", res.Status, res.Score)
	}
	if client.calls != 1 {
		t.Fatalf("expected exactly one ai call, got %d", client.calls)
	}
}

func TestAnalyzeFallsBackOnAIError(t *testing.T) {
	client := &stubLLM{err: errors.New("quota exceeded")}
	svc := NewService(client, time.Second)

	res, source, err := svc.Analyze(context.Background(), []byte(resumeText), extract.MimePlain, "Backend Developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceFallback {
		t.Fatalf("expected fallback source, got %q", source)
	}
	if res.Score < 45 || res.Score > 95 {
		t.Fatalf("fallback score %d out of band", res.Score)
	}
	if client.calls != 1 {
		t.Fatalf("expected a single ai attempt with no retry, got %d", client.calls)
	}
}

func TestAnalyzeFallsBackOnBadAIOutput(t *testing.T) {
	client := &stubLLM{output: "I cannot answer that in JSON."}
	svc := NewService(client, time.Second)

	_, source, err := svc.Analyze(context.Background(), []byte(resumeText), extract.MimePlain, "Backend Developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceFallback {
		t.Fatalf("expected fallback source, got %q", source)
	}
}

func TestAnalyzeFallsBackOnSchemaMismatch(t *testing.T) {
	client := &stubLLM{output: `{"score": 80, "analysis": "fine"}`}
	svc := NewService(client, time.Second)

	_, source, err := svc.Analyze(context.Background(), []byte(resumeText), extract.MimePlain, "Backend Developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceFallback {
		t.Fatalf("expected fallback source for shape mismatch, got %q", source)
	}
}

func TestAnalyzeTimesOutStalledAICall(t *testing.T) {
	svc := NewService(blockingLLM{}, 50*time.Millisecond)

	start := time.Now()
	res, source, err := svc.Analyze(context.Background(), []byte(resumeText), extract.MimePlain, "Backend Developer")
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceFallback {
		t.Fatalf("expected fallback source after timeout, got %q", source)
	}
	if res.Score < 45 || res.Score > 95 {
		t.Fatalf("fallback score %d out of band", res.Score)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("expected the configured timeout to bound the call, took %v", elapsed)
	}
}

func TestAnalyzeWithoutClientAlwaysFallsBack(t *testing.T) {
	svc := NewService(nil, time.Second)

	res, source, err := svc.Analyze(context.Background(), []byte(resumeText), extract.MimePlain, "Data Engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceFallback {
		t.Fatalf("expected fallback source, got %q", source)
	}
	if res.TargetRole != "Data Engineer" {
		t.Fatalf("expected target role from caller, got %q", res.TargetRole)
	}
}

func TestAnalyzeRejectsUnsupportedType(t *testing.T) {
	svc := NewService(nil, time.Second)

	_, _, err := svc.Analyze(context.Background(), []byte{0x89, 0x50}, "image/png", "Backend Developer")
	if !errors.Is(err, extract.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "image/png") {
		t.Fatalf("expected error to name the type, got %v", err)
	}
}

func TestAnalyzeRejectsNonResumeText(t *testing.T) {
	svc := NewService(nil, time.Second)

	_, _, err := svc.Analyze(context.Background(), []byte("Quarterly revenue projections."), extract.MimePlain, "Backend Developer")
	if !errors.Is(err, ErrNotResume) {
		t.Fatalf("expected ErrNotResume, got %v", err)
	}
}

func TestAnalyzeCorruptDocumentRejectedWhenNoText(t *testing.T) {
	// Extraction failure degrades to empty text, and empty text cannot
	// pass section validation, so the request ends rejected.
	svc := NewService(nil, time.Second)

	_, _, err := svc.Analyze(context.Background(), []byte("not a zip"), extract.MimeDOCX, "Backend Developer")
	if !errors.Is(err, ErrNotResume) {
		t.Fatalf("expected ErrNotResume after failed extraction, got %v", err)
	}
}
