package bankgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quizdeck/quizdeck/internal/bank"
	"github.com/quizdeck/quizdeck/internal/llm"
)

// Request describes a bank to generate.
type Request struct {
	Topic      string
	Count      int
	Language   string
	Difficulty string
}

// Generator produces question banks via an LLM provider.
type Generator struct {
	provider llm.Provider
}

// NewGenerator creates a Generator backed by the given provider.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// generatedBank mirrors the schema the model is asked to fill.
type generatedBank struct {
	Questions []generatedQuestion `json:"questions"`
}

type generatedQuestion struct {
	Question      string              `json:"question"`
	Hint          string              `json:"hint"`
	AnswerOptions []bank.AnswerOption `json:"answerOptions"`
}

// Generate asks the model for questions and converts the response into
// bank questions, numbering them from 1. Responses that pass schema
// validation but break structural rules (option count, exactly one
// correct) are rejected.
func (g *Generator) Generate(ctx context.Context, req Request) ([]bank.Question, error) {
	if req.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if req.Count < 1 {
		return nil, fmt.Errorf("count must be at least 1")
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      bankSchema,
		MaxTokens:   8192,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("generate bank: %w", err)
	}

	var parsed generatedBank
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, fmt.Errorf("parse generated bank: %w", err)
	}
	if len(parsed.Questions) == 0 {
		return nil, fmt.Errorf("model returned no questions")
	}

	questions := make([]bank.Question, 0, len(parsed.Questions))
	for i, gq := range parsed.Questions {
		q := bank.Question{
			QuestionNumber: i + 1,
			Text:           gq.Question,
			Hint:           gq.Hint,
			Options:        gq.AnswerOptions,
		}
		if err := checkQuestion(q); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// checkQuestion enforces the structural rules the schema alone cannot
// express.
func checkQuestion(q bank.Question) error {
	if q.Text == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Options) < 2 || len(q.Options) > 6 {
		return fmt.Errorf("got %d options, want 2-6", len(q.Options))
	}
	correct := 0
	for _, opt := range q.Options {
		if opt.Text == "" {
			return fmt.Errorf("empty option text")
		}
		if opt.Correct {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("got %d correct options, want exactly 1", correct)
	}
	return nil
}

// Marshal renders questions as a bank file document.
func Marshal(questions []bank.Question) ([]byte, error) {
	doc := struct {
		Questions []bank.Question `json:"questions"`
	}{Questions: questions}
	return json.MarshalIndent(doc, "", "  ")
}
