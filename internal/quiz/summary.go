package quiz

// QuestionStatus classifies one question in the session summary.
type QuestionStatus string

const (
	StatusCorrect    QuestionStatus = "correct"
	StatusIncorrect  QuestionStatus = "incorrect"
	StatusUnanswered QuestionStatus = "unanswered"
)

// QuestionResult is one per-question line of the summary.
type QuestionResult struct {
	Index  int
	Status QuestionStatus
}

// Totals aggregates the per-question statuses.
type Totals struct {
	Correct    int
	Incorrect  int
	Unanswered int
}

// Summary is the end-of-session report.
type Summary struct {
	PerQuestion []QuestionResult
	Totals      Totals
}

// BuildSummary derives the summary from the session state. Pure: no
// side effects, always consistent with the state passed in.
func BuildSummary(state *SessionState) Summary {
	sum := Summary{PerQuestion: make([]QuestionResult, state.QuestionCount())}
	for i, a := range state.Answers {
		status := StatusUnanswered
		switch {
		case a == nil:
			sum.Totals.Unanswered++
		case a.Correct:
			status = StatusCorrect
			sum.Totals.Correct++
		default:
			status = StatusIncorrect
			sum.Totals.Incorrect++
		}
		sum.PerQuestion[i] = QuestionResult{Index: i, Status: status}
	}
	return sum
}
