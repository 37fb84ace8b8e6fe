package bankgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author. You write clear, factually accurate
multiple-choice questions for self-study.

Rules:
- Every question has between two and six answer options.
- Exactly one option per question is correct.
- Every option carries a rationale explaining why it is right or wrong.
- Hints help the learner reason toward the answer without revealing it.
- Wrong options must be plausible, not jokes or throwaways.
- Respond with JSON matching the requested schema, nothing else.`

// buildUserMessage renders the generation request for the model.
func buildUserMessage(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d multiple-choice questions about: %s\n", req.Count, req.Topic)
	if req.Language != "" {
		fmt.Fprintf(&b, "Write all text in %s.\n", req.Language)
	}
	if req.Difficulty != "" {
		fmt.Fprintf(&b, "Target difficulty: %s.\n", req.Difficulty)
	}
	return b.String()
}
