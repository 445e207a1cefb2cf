package llm

import (
	"context"
	"strings"
)

// Client abstracts generative model providers for career analysis.
type Client interface {
	// GenerateJSON sends the prompt and returns the model's raw text output.
	// The caller owns fence stripping and JSON parsing.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// CleanJSONBlock removes markdown code-fence wrappers the model may emit
// around a JSON payload, both the ```json and bare ``` variants, then trims
// surrounding whitespace.
func CleanJSONBlock(text string) string {
	clean := strings.ReplaceAll(text, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}
