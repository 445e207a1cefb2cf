package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careerprep-backend/internal/extract"
	"careerprep-backend/internal/llm"
	"careerprep-backend/internal/shared/telemetry"
)

// Source records which path produced a result.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Service orchestrates one analysis request end to end. Each request
// moves through received, extracted, validated, ai-attempted and
// resolved; the single alternate edge routes ai failures through the
// heuristic generator, and validation failure rejects the request.
type Service struct {
	client    llm.Client
	aiTimeout time.Duration
}

func NewService(client llm.Client, aiTimeout time.Duration) *Service {
	return &Service{client: client, aiTimeout: aiTimeout}
}

// Analyze runs the extract, validate, AI, fallback sequence over an
// uploaded document. Client input problems (unsupported type, text that
// is not a resume) come back as errors; every backend problem resolves
// through the fallback generator instead of failing the request.
func (s *Service) Analyze(ctx context.Context, data []byte, mimeType, targetRole string) (*Result, Source, error) {
	// received -> extracted
	text, err := extract.Text(ctx, data, mimeType)
	switch {
	case errors.Is(err, extract.ErrUnsupportedType):
		return nil, "", fmt.Errorf("%w: %s", extract.ErrUnsupportedType, mimeType)
	case errors.Is(err, extract.ErrExtractionFailed):
		// A broken document still gets an empty-text fallback result,
		// provided validation can pass on whatever text we salvaged.
		telemetry.Warn("analysis.extract.failed", map[string]any{"mimeType": mimeType})
		text = ""
	case err != nil:
		return nil, "", err
	}

	// extracted -> validated | rejected
	if !LooksLikeResume(text) {
		return nil, "", ErrNotResume
	}

	// validated -> ai-attempted -> resolved, falling through to the
	// heuristic generator on any ai failure. This edge never fails.
	res, err := s.attemptAI(ctx, text, targetRole)
	if err != nil {
		telemetry.Warn("analysis.ai.fallback", map[string]any{"reason": err.Error()})
		return Fallback(text, targetRole), SourceFallback, nil
	}

	res.Normalize(targetRole)
	return res, SourceAI, nil
}

// attemptAI makes the single AI attempt for this request. A nil client
// means no credential was configured, which fails fast without touching
// the network.
func (s *Service) attemptAI(ctx context.Context, text, targetRole string) (*Result, error) {
	if s.client == nil {
		return nil, errors.New("ai client not configured")
	}

	aiCtx := ctx
	if s.aiTimeout > 0 {
		var cancel context.CancelFunc
		aiCtx, cancel = context.WithTimeout(ctx, s.aiTimeout)
		defer cancel()
	}

	raw, err := s.client.GenerateJSON(aiCtx, llm.BuildAnalysisPrompt(text, targetRole))
	if err != nil {
		return nil, fmt.Errorf("ai call failed: %w", err)
	}

	res, err := ParseAIResult(llm.CleanJSONBlock(raw))
	if err != nil {
		return nil, err
	}
	return res, nil
}
