package bankgen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdeck/quizdeck/internal/llm"
)

const goodBankJSON = `{
	"questions": [
		{
			"question": "What is the capital of France?",
			"hint": "It is on the Seine.",
			"answerOptions": [
				{"text": "Lyon", "isCorrect": false, "rationale": "Lyon is not the capital."},
				{"text": "Paris", "isCorrect": true, "rationale": "Paris is the capital of France."}
			]
		},
		{
			"question": "What is 2 + 2?",
			"hint": "Count on your fingers.",
			"answerOptions": [
				{"text": "3", "isCorrect": false, "rationale": "One short."},
				{"text": "4", "isCorrect": true, "rationale": "2 + 2 = 4."},
				{"text": "5", "isCorrect": false, "rationale": "One too many."}
			]
		}
	]
}`

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(goodBankJSON)})
	gen := NewGenerator(mock)

	questions, err := gen.Generate(context.Background(), Request{Topic: "general knowledge", Count: 2})
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.Equal(t, 1, questions[0].QuestionNumber)
	assert.Equal(t, 2, questions[1].QuestionNumber)
	assert.Equal(t, "What is the capital of France?", questions[0].Text)
	assert.True(t, questions[0].HasHint())
	assert.Equal(t, 1, questions[0].CorrectIndex())

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.NotEmpty(t, req.System)
	require.NotNil(t, req.Schema)
	assert.Equal(t, "question_bank", req.Schema.Name)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "general knowledge")
}

func TestGenerateRequestValidation(t *testing.T) {
	gen := NewGenerator(llm.NewMockProvider())

	_, err := gen.Generate(context.Background(), Request{Topic: "", Count: 5})
	assert.Error(t, err)

	_, err = gen.Generate(context.Background(), Request{Topic: "math", Count: 0})
	assert.Error(t, err)
}

func TestGenerateRejectsStructurallyInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			"no questions",
			`{"questions": []}`,
		},
		{
			"single option",
			`{"questions": [{"question": "Q?", "hint": "", "answerOptions": [
				{"text": "only", "isCorrect": true, "rationale": "r"}]}]}`,
		},
		{
			"two correct options",
			`{"questions": [{"question": "Q?", "hint": "", "answerOptions": [
				{"text": "a", "isCorrect": true, "rationale": "r"},
				{"text": "b", "isCorrect": true, "rationale": "r"}]}]}`,
		},
		{
			"no correct option",
			`{"questions": [{"question": "Q?", "hint": "", "answerOptions": [
				{"text": "a", "isCorrect": false, "rationale": "r"},
				{"text": "b", "isCorrect": false, "rationale": "r"}]}]}`,
		},
		{
			"empty question text",
			`{"questions": [{"question": "", "hint": "", "answerOptions": [
				{"text": "a", "isCorrect": true, "rationale": "r"},
				{"text": "b", "isCorrect": false, "rationale": "r"}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.payload)})
			_, err := NewGenerator(mock).Generate(context.Background(), Request{Topic: "x", Count: 1})
			assert.Error(t, err)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(goodBankJSON)})
	questions, err := NewGenerator(mock).Generate(context.Background(), Request{Topic: "x", Count: 2})
	require.NoError(t, err)

	data, err := Marshal(questions)
	require.NoError(t, err)

	var doc struct {
		Questions []json.RawMessage `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Questions, 2)
}
