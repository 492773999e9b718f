package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
	"github.com/xeipuuv/gojsonschema"
)

// fencedJSONPattern matches a ```json or bare ``` code block
var fencedJSONPattern = regexp.MustCompile("(?s)```(?:json|JSON)?[ \t]*\r?\n(.*?)\r?\n[ \t]*```")

// aiRecommendationSchema is the minimum structure accepted from the AI service
const aiRecommendationSchema = `{
  "type": "object",
  "required": ["skinConditionAnalysis", "recommendedProducts", "morningRoutine", "nightRoutine"],
  "properties": {
    "skinConditionAnalysis": {"type": "string", "minLength": 1},
    "recommendedProducts": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "price": {"type": "string"},
          "ingredients": {"type": "string"},
          "suitableFor": {"type": "string"},
          "matchReasons": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "morningRoutine": {"type": "string"},
    "nightRoutine": {"type": "string"},
    "skinCareAdvice": {"type": "string"}
  }
}`

var aiSchema = mustLoadSchema(aiRecommendationSchema)

func mustLoadSchema(schema string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid AI response schema: %v", err))
	}
	return s
}

// MalformedResponseError carries the raw AI reply that could not be parsed
type MalformedResponseError struct {
	Raw   string
	Cause error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: %v", domain.ErrMalformedAIResponse, e.Cause)
}

// Unwrap exposes both the sentinel and the underlying cause
func (e *MalformedResponseError) Unwrap() []error {
	return []error{domain.ErrMalformedAIResponse, e.Cause}
}

// ParseAIResponse turns a raw AI reply into a recommendation.
// The payload is either fully valid or rejected; partial data is never returned.
func ParseAIResponse(raw string) (*domain.AIRecommendation, error) {
	payload := extractJSON(raw)
	if payload == "" {
		return nil, &MalformedResponseError{Raw: raw, Cause: errors.New("no JSON object found")}
	}

	result, err := aiSchema.Validate(gojsonschema.NewStringLoader(payload))
	if err != nil {
		return nil, &MalformedResponseError{Raw: raw, Cause: fmt.Errorf("invalid JSON: %w", err)}
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, &MalformedResponseError{Raw: raw, Cause: fmt.Errorf("schema violation: %s", strings.Join(msgs, "; "))}
	}

	var rec domain.AIRecommendation
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Cause: err}
	}

	for i := range rec.RecommendedProducts {
		if rec.RecommendedProducts[i].MatchReasons == nil {
			rec.RecommendedProducts[i].MatchReasons = []string{}
		}
	}

	return &rec, nil
}

// extractJSON returns the JSON object inside a fenced block, or the outermost
// brace-delimited span of the text
func extractJSON(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	if m := fencedJSONPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
