package bank

import "strconv"

// letters are the option labels for positions 0-25.
const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Question is a single multiple-choice question from a bank file.
// Questions are immutable once loaded; identity is the position in the
// sorted sequence.
type Question struct {
	// QuestionNumber orders questions within the bank. Absent numbers
	// sort as 0.
	QuestionNumber int `json:"questionNumber"`

	// Text is the question prompt.
	Text string `json:"question"`

	// ImageURL is an optional illustration shown with the question.
	ImageURL string `json:"imageUrl,omitempty"`

	// Hint is an optional hint the learner can reveal.
	Hint string `json:"hint,omitempty"`

	// Options are the answer choices in display order.
	Options []AnswerOption `json:"answerOptions"`
}

// AnswerOption is one selectable choice of a question.
type AnswerOption struct {
	Text string `json:"text"`

	// Correct marks the right answer. Banks carry exactly one correct
	// option per question.
	Correct bool `json:"isCorrect"`

	// Rationale explains why this option is right or wrong. Optional.
	Rationale string `json:"rationale,omitempty"`
}

// HasHint reports whether the question carries a hint.
func (q Question) HasHint() bool {
	return q.Hint != ""
}

// CorrectIndex returns the index of the first correct option, or -1 if
// the question has none.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt.Correct {
			return i
		}
	}
	return -1
}

// OptionLabel returns the display label for an option position:
// letters A-Z for positions 0-25, the 1-based number beyond that.
func OptionLabel(pos int) string {
	if pos >= 0 && pos < len(letters) {
		return string(letters[pos])
	}
	return strconv.Itoa(pos + 1)
}
