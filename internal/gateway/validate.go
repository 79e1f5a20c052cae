package gateway

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// answerSchemaDefinition is the JSON Schema every answer payload must
// satisfy. The direct-provider clients also send it to the model as
// their structured output schema.
var answerSchemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"answer": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "The answer to the learner's question",
		},
		"validation": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"isValid": map[string]any{
					"type":        "boolean",
					"description": "Whether the answer is considered sound",
				},
				"confidence": map[string]any{
					"type":        "number",
					"minimum":     0.0,
					"maximum":     1.0,
					"description": "Self-reported trust in the answer (0.0-1.0)",
				},
				"sources": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Where the answer was grounded, in order",
				},
				"corrections": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Amendments applied to the original claim, if any",
				},
			},
			"required": []any{"isValid", "confidence", "sources"},
		},
		"hallucination": map[string]any{
			"type":        "boolean",
			"description": "True when the answer may be unreliable",
		},
	},
	"required": []any{"answer", "validation", "hallucination"},
}

var compileAnswerSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(answerSchemaDefinition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://tutor-answer.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	return c.Compile(schemaURL)
})

// parseAnswer validates a raw payload against the answer schema and
// decodes it. Any shape mismatch becomes *ErrInvalidAnswer.
func parseAnswer(raw json.RawMessage) (*Answer, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidAnswer{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := compileAnswerSchema()
	if err != nil {
		return nil, &ErrInvalidAnswer{
			Content: raw,
			Err:     fmt.Errorf("compile answer schema: %w", err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return nil, &ErrInvalidAnswer{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}

	var answer Answer
	if err := json.Unmarshal(raw, &answer); err != nil {
		return nil, &ErrInvalidAnswer{
			Content: raw,
			Err:     fmt.Errorf("decode answer: %w", err),
		}
	}

	return &answer, nil
}
