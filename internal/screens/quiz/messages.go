package quizscreen

import "github.com/quizdeck/quizdeck/internal/quiz"

// autoAdvanceMsg fires when a scheduled auto-advance delay elapses.
// The token ties it to the submission that scheduled it; the engine
// ignores tokens made stale by later interactions.
type autoAdvanceMsg struct {
	Token uint64
}

// FinishedMsg is emitted once when the session is finished, so the
// host can record the attempt.
type FinishedMsg struct {
	Summary quiz.Summary
}
