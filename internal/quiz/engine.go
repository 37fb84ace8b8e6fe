package quiz

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/quizdeck/quizdeck/internal/bank"
)

// Auto-advance delays. A re-answer advances faster than a first answer;
// the ordering matters, the exact durations are tuning values.
const (
	FirstAnswerAdvanceDelay = 350 * time.Millisecond
	ReAnswerAdvanceDelay    = 200 * time.Millisecond
)

// ErrEmptyBank is returned when a session is started on a bank with no
// questions.
var ErrEmptyBank = errors.New("question bank is empty")

// PendingAdvance describes a scheduled auto-advance. The holder should
// deliver Token back via ConsumeAdvance after Delay; a stale token is
// ignored, which is how manual navigation cancels the advance.
type PendingAdvance struct {
	Target int
	Delay  time.Duration
	Token  uint64
}

// Engine is the navigation and answer state machine for one session
// over one immutable question bank. All operations are total over valid
// inputs: they never fail after initialization, they may be no-ops.
type Engine struct {
	questions []bank.Question
	state     *SessionState
	codec     *Codec

	pending *PendingAdvance
	seq     uint64
}

// NewEngine seeds a session for the given bank and overlays any
// compatible stored snapshot. codec may be nil, in which case nothing
// persists.
func NewEngine(questions []bank.Question, codec *Codec) (*Engine, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}

	e := &Engine{
		questions: questions,
		state:     newSessionState(len(questions)),
		codec:     codec,
	}

	if codec != nil {
		if restored := codec.Load(len(questions)); restored != nil {
			e.state = restored
		}
	}
	return e, nil
}

// State exposes the session state for rendering. Callers must not
// mutate it.
func (e *Engine) State() *SessionState { return e.state }

// Questions returns the immutable question sequence.
func (e *Engine) Questions() []bank.Question { return e.questions }

// Question returns the question at the current index.
func (e *Engine) Question() bank.Question {
	return e.questions[e.state.CurrentIndex]
}

// SubmitAnswer records the answer for question index. Rejected (nil)
// when the session is finished, when index is not the current question,
// when optionIndex is out of range, or when the slot is already filled
// in manual mode. In auto mode a filled slot is overwritten and an
// advance to the next question is scheduled.
func (e *Engine) SubmitAnswer(index, optionIndex int) (*AnswerRecord, *PendingAdvance) {
	s := e.state
	if s.Finished || index != s.CurrentIndex {
		return nil, nil
	}
	q := e.questions[index]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return nil, nil
	}

	overwrite := s.Answers[index] != nil
	if overwrite && s.Mode != ModeAuto {
		// Manual mode locks a filled slot until reset.
		return nil, nil
	}

	rec := &AnswerRecord{
		SelectedOption: optionIndex,
		Correct:        q.Options[optionIndex].Correct,
	}
	s.Answers[index] = rec
	e.persist()

	var adv *PendingAdvance
	if s.Mode == ModeAuto && index < len(e.questions)-1 {
		delay := FirstAnswerAdvanceDelay
		if overwrite {
			delay = ReAnswerAdvanceDelay
		}
		e.seq++
		adv = &PendingAdvance{Target: index + 1, Delay: delay, Token: e.seq}
		e.pending = adv
	}
	return rec, adv
}

// ConsumeAdvance applies a previously scheduled auto-advance. It
// reports false when the token is stale, i.e. a manual action landed
// in between and the advance must not race it.
func (e *Engine) ConsumeAdvance(token uint64) bool {
	if e.pending == nil || e.pending.Token != token {
		return false
	}
	target := e.pending.Target
	e.pending = nil
	e.state.CurrentIndex = clamp(target, len(e.questions))
	e.persist()
	return true
}

// cancelAdvance drops any pending auto-advance. Every manual
// navigation, mode change, and reset goes through here first.
func (e *Engine) cancelAdvance() {
	e.pending = nil
	e.seq++
}

// RevealHint marks question index's hint as shown. Idempotent; a no-op
// for questions without a hint. Allowed even after finishing.
func (e *Engine) RevealHint(index int) {
	if index < 0 || index >= len(e.questions) || !e.questions[index].HasHint() {
		return
	}
	if e.state.HintsRevealed[index] {
		return
	}
	e.state.HintsRevealed[index] = true
	e.persist()
}

// GoTo clamps target into bounds and moves there. Allowed in any state,
// including finished, to support review navigation.
func (e *Engine) GoTo(target int) {
	e.cancelAdvance()
	e.state.CurrentIndex = clamp(target, len(e.questions))
	e.persist()
}

// GoPrevious moves back one question; a no-op at the first.
func (e *Engine) GoPrevious() {
	e.cancelAdvance()
	if e.state.CurrentIndex == 0 {
		return
	}
	e.state.CurrentIndex--
	e.persist()
}

// GoNext moves forward one question; a no-op at the last.
func (e *Engine) GoNext() {
	e.cancelAdvance()
	if e.state.CurrentIndex >= len(e.questions)-1 {
		return
	}
	e.state.CurrentIndex++
	e.persist()
}

// SetMode switches the answering mode. Unrecognized values are ignored.
// Existing answers are untouched; only future editability and feedback
// immediacy change.
func (e *Engine) SetMode(m Mode) {
	if !ValidMode(m) || m == e.state.Mode {
		return
	}
	e.cancelAdvance()
	e.state.Mode = m
	e.persist()
}

// Finish ends the answering phase and enters review. Irrevocable except
// via Reset.
func (e *Engine) Finish() {
	e.cancelAdvance()
	e.state.Finished = true
	e.state.SummaryVisible = true
	e.persist()
}

// Reset atomically clears all answers, hints and flags, returns to
// question 0, and deletes the stored snapshot for this quiz.
func (e *Engine) Reset() {
	e.cancelAdvance()
	e.state = newSessionState(len(e.questions))
	if e.codec != nil {
		if err := e.codec.Delete(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: delete session snapshot: %v\n", err)
		}
	}
}

// ParseJumpTarget validates a 1-based jump input against the question
// count and returns the zero-based index. Non-numeric input and numbers
// outside [1, total] are rejected without mutating anything.
func ParseJumpTarget(input string, total int) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", input)
	}
	if n < 1 || n > total {
		return 0, fmt.Errorf("question %d out of range 1-%d", n, total)
	}
	return n - 1, nil
}

// persist writes a snapshot after a mutation. Best-effort: failures are
// logged by the codec and never interrupt the session.
func (e *Engine) persist() {
	if e.codec != nil {
		e.codec.Save(e.state)
	}
}
