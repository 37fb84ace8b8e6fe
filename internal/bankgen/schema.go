package bankgen

import "github.com/quizdeck/quizdeck/internal/llm"

// bankSchema describes the JSON document the model must produce: a
// list of multiple-choice questions with rationales.
var bankSchema = &llm.Schema{
	Name:        "question_bank",
	Description: "A multiple-choice question bank",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "A short hint that helps without giving the answer away",
						},
						"answerOptions": map[string]any{
							"type":        "array",
							"description": "Between two and six options, exactly one correct",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"text": map[string]any{
										"type":        "string",
										"description": "The option text",
									},
									"isCorrect": map[string]any{
										"type":        "boolean",
										"description": "Whether this option is the correct answer",
									},
									"rationale": map[string]any{
										"type":        "string",
										"description": "Why this option is right or wrong",
									},
								},
								"required":             []any{"text", "isCorrect", "rationale"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"question", "hint", "answerOptions"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
