package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchemaDef is the JSON Schema a question bank document must
// conform to before it is decoded. Unknown extra fields are tolerated;
// the structural shape of questions and options is not.
var bankSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"questionNumber": map[string]any{"type": "integer"},
					"question":       map[string]any{"type": "string"},
					"imageUrl":       map[string]any{"type": "string"},
					"hint":           map[string]any{"type": "string"},
					"answerOptions": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"text":      map[string]any{"type": "string"},
								"isCorrect": map[string]any{"type": "boolean"},
								"rationale": map[string]any{"type": "string"},
							},
							"required": []any{"text", "isCorrect"},
						},
					},
				},
				"required": []any{"question", "answerOptions"},
			},
		},
	},
	"required": []any{"questions"},
}

var (
	compileOnce   sync.Once
	bankSchema    *jsonschema.Schema
	bankSchemaErr error
)

// validateBankDocument checks raw JSON against the bank schema.
func validateBankDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://question-bank.json", bankSchemaDef); err != nil {
			bankSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		bankSchema, bankSchemaErr = c.Compile("schema://question-bank.json")
	})
	if bankSchemaErr != nil {
		return fmt.Errorf("compile bank schema: %w", bankSchemaErr)
	}

	if err := bankSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
