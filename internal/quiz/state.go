package quiz

// Mode selects how answering behaves for the rest of the session.
type Mode string

const (
	// ModeManual gives immediate correctness feedback and locks each
	// answer once given.
	ModeManual Mode = "manual"

	// ModeAuto defers feedback, allows re-answering until the session
	// is finished, and advances automatically after an answer.
	ModeAuto Mode = "auto"
)

// ValidMode reports whether m is one of the recognized modes.
func ValidMode(m Mode) bool {
	return m == ModeManual || m == ModeAuto
}

// AnswerRecord is the learner's stored answer for one question.
type AnswerRecord struct {
	// SelectedOption is the index of the chosen option.
	SelectedOption int

	// Correct records whether the chosen option was the right one.
	Correct bool
}

// SessionState is the mutable state of one quiz session. It is owned
// and mutated exclusively by the Engine.
type SessionState struct {
	// CurrentIndex is the question being shown, in [0, len(Answers)-1].
	CurrentIndex int

	// Answers has one slot per question; nil means unanswered.
	Answers []*AnswerRecord

	// HintsRevealed holds the indices of questions whose hint has been
	// shown. Reveals are idempotent and survive finishing.
	HintsRevealed map[int]bool

	// Mode is the active answering mode.
	Mode Mode

	// Finished is set by Finish and cleared only by Reset.
	Finished bool

	// SummaryVisible toggles the summary view while finished. Transient;
	// not persisted.
	SummaryVisible bool
}

// newSessionState builds a fresh state for a bank of n questions.
func newSessionState(n int) *SessionState {
	return &SessionState{
		Answers:       make([]*AnswerRecord, n),
		HintsRevealed: make(map[int]bool),
		Mode:          ModeManual,
	}
}

// QuestionCount returns the number of answer slots.
func (s *SessionState) QuestionCount() int {
	return len(s.Answers)
}

// Answered reports whether question i has a recorded answer.
func (s *SessionState) Answered(i int) bool {
	return i >= 0 && i < len(s.Answers) && s.Answers[i] != nil
}

// CorrectCount returns the number of correctly answered questions.
func (s *SessionState) CorrectCount() int {
	n := 0
	for _, a := range s.Answers {
		if a != nil && a.Correct {
			n++
		}
	}
	return n
}

// clamp forces i into [0, n-1] for n > 0.
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
