package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// resultSchema is the structural contract the model's JSON must satisfy
// before it is accepted. A mismatch is treated the same as unparsable
// output: the request falls through to the heuristic generator.
const resultSchema = `{
  "type": "object",
  "required": ["score", "analysis", "feedback", "skillGaps", "missingKeywords", "resumeImprovements", "roadmap", "projectIdeas"],
  "properties": {
    "score": {"type": "integer", "minimum": 0, "maximum": 100},
    "status": {"type": "string"},
    "targetRole": {"type": "string"},
    "analysis": {"type": "string"},
    "recruiters": {"type": "array", "items": {"type": "string"}},
    "feedback": {"type": "string"},
    "skillGaps": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["category", "completion", "missingSkills"],
        "properties": {
          "category": {"type": "string"},
          "completion": {"type": "integer", "minimum": 0, "maximum": 100},
          "missingSkills": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "missingKeywords": {"type": "array", "items": {"type": "string"}},
    "resumeImprovements": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["original", "improved", "reason"],
        "properties": {
          "original": {"type": "string"},
          "improved": {"type": "string"},
          "reason": {"type": "string"}
        }
      }
    },
    "roadmap": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["week", "title", "skills", "tasks", "project"],
        "properties": {
          "week": {"type": "integer"},
          "title": {"type": "string"},
          "skills": {"type": "array", "items": {"type": "string"}},
          "tasks": {"type": "array", "items": {"type": "string"}},
          "project": {"type": "string"}
        }
      }
    },
    "projectIdeas": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "description", "skills", "difficulty"],
        "properties": {
          "title": {"type": "string"},
          "description": {"type": "string"},
          "skills": {"type": "array", "items": {"type": "string"}},
          "difficulty": {"type": "string", "enum": ["Beginner", "Intermediate", "Advanced"]}
        }
      }
    }
  }
}`

var compiledResultSchema = gojsonschema.NewStringLoader(resultSchema)

// ParseAIResult parses the cleaned model output and checks it against the
// result schema. Any syntactic or structural problem is returned as an
// error so the caller can route to the fallback path.
func ParseAIResult(raw string) (*Result, error) {
	verdict, err := gojsonschema.Validate(compiledResultSchema, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("ai output is not valid json: %w", err)
	}
	if !verdict.Valid() {
		return nil, fmt.Errorf("ai output does not match the result schema: %s", firstSchemaError(verdict))
	}

	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, fmt.Errorf("decode ai output: %w", err)
	}
	return &res, nil
}

func firstSchemaError(verdict *gojsonschema.Result) string {
	errs := verdict.Errors()
	if len(errs) == 0 {
		return "unknown mismatch"
	}
	return errs[0].String()
}
