package quiz

import (
	"testing"

	"github.com/quizdeck/quizdeck/internal/bank"
)

// testBank builds a bank of n questions with three options each; the
// correct option is always index 1.
func testBank(n int) []bank.Question {
	qs := make([]bank.Question, n)
	for i := range qs {
		qs[i] = bank.Question{
			QuestionNumber: i + 1,
			Text:           "question",
			Hint:           "hint",
			Options: []bank.AnswerOption{
				{Text: "wrong"},
				{Text: "right", Correct: true},
				{Text: "also wrong"},
			},
		}
	}
	return qs
}

// memStore is a minimal in-process SnapshotStore.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memStore) Put(key string, data []byte) error {
	m.data[key] = data
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func newTestEngine(t *testing.T, n int) *Engine {
	t.Helper()
	e, err := NewEngine(testBank(n), nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestNewEngineEmptyBank(t *testing.T) {
	_, err := NewEngine(nil, nil)
	if err != ErrEmptyBank {
		t.Fatalf("expected ErrEmptyBank, got %v", err)
	}
}

func TestNewEngineDefaults(t *testing.T) {
	e := newTestEngine(t, 3)
	s := e.State()

	if s.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", s.CurrentIndex)
	}
	if s.Mode != ModeManual {
		t.Errorf("Mode = %q, want manual", s.Mode)
	}
	if len(s.Answers) != 3 {
		t.Errorf("len(Answers) = %d, want 3", len(s.Answers))
	}
	if s.Finished {
		t.Error("new session should not be finished")
	}
}

func TestSubmitAnswerManual(t *testing.T) {
	e := newTestEngine(t, 3)

	rec, adv := e.SubmitAnswer(0, 1)
	if rec == nil {
		t.Fatal("first answer should be accepted")
	}
	if !rec.Correct {
		t.Error("option 1 should be correct")
	}
	if adv != nil {
		t.Error("manual mode must not schedule an advance")
	}
	if e.State().CurrentIndex != 0 {
		t.Error("manual mode must not move the index")
	}

	// Manual mode locks the slot.
	rec, _ = e.SubmitAnswer(0, 0)
	if rec != nil {
		t.Error("re-answer in manual mode should be rejected")
	}
	if e.State().Answers[0].SelectedOption != 1 {
		t.Error("locked answer was overwritten")
	}
}

func TestSubmitAnswerRejections(t *testing.T) {
	e := newTestEngine(t, 3)

	if rec, _ := e.SubmitAnswer(1, 0); rec != nil {
		t.Error("answer for a non-current question should be rejected")
	}
	if rec, _ := e.SubmitAnswer(0, -1); rec != nil {
		t.Error("negative option index should be rejected")
	}
	if rec, _ := e.SubmitAnswer(0, 3); rec != nil {
		t.Error("out-of-range option index should be rejected")
	}

	e.Finish()
	if rec, _ := e.SubmitAnswer(0, 0); rec != nil {
		t.Error("answers after finish should be rejected")
	}
}

func TestSubmitAnswerAutoAdvance(t *testing.T) {
	e := newTestEngine(t, 3)
	e.SetMode(ModeAuto)

	rec, adv := e.SubmitAnswer(0, 0)
	if rec == nil || adv == nil {
		t.Fatal("auto mode first answer should be accepted and schedule an advance")
	}
	if adv.Target != 1 {
		t.Errorf("advance target = %d, want 1", adv.Target)
	}
	if adv.Delay != FirstAnswerAdvanceDelay {
		t.Errorf("first answer delay = %v, want %v", adv.Delay, FirstAnswerAdvanceDelay)
	}

	// Re-answer before the advance fires: overwrite, shorter delay.
	rec, adv2 := e.SubmitAnswer(0, 1)
	if rec == nil || adv2 == nil {
		t.Fatal("re-answer in auto mode should be accepted")
	}
	if adv2.Delay != ReAnswerAdvanceDelay {
		t.Errorf("re-answer delay = %v, want %v", adv2.Delay, ReAnswerAdvanceDelay)
	}
	if e.State().Answers[0].SelectedOption != 1 {
		t.Error("re-answer should overwrite the record")
	}

	// The first token went stale when the second answer landed.
	if e.ConsumeAdvance(adv.Token) {
		t.Error("stale token must not advance")
	}
	if !e.ConsumeAdvance(adv2.Token) {
		t.Error("live token should advance")
	}
	if e.State().CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", e.State().CurrentIndex)
	}

	// A consumed token cannot fire twice.
	if e.ConsumeAdvance(adv2.Token) {
		t.Error("consumed token must not advance again")
	}
}

func TestAutoAdvanceNotScheduledOnLastQuestion(t *testing.T) {
	e := newTestEngine(t, 2)
	e.SetMode(ModeAuto)
	e.GoTo(1)

	rec, adv := e.SubmitAnswer(1, 0)
	if rec == nil {
		t.Fatal("answer on last question should be accepted")
	}
	if adv != nil {
		t.Error("no advance should be scheduled on the last question")
	}
}

func TestManualActionsCancelPendingAdvance(t *testing.T) {
	cancel := map[string]func(e *Engine){
		"GoPrevious": func(e *Engine) { e.GoPrevious() },
		"GoNext":     func(e *Engine) { e.GoNext() },
		"GoTo":       func(e *Engine) { e.GoTo(2) },
		"SetMode":    func(e *Engine) { e.SetMode(ModeManual) },
		"Finish":     func(e *Engine) { e.Finish() },
		"Reset":      func(e *Engine) { e.Reset() },
	}

	for name, action := range cancel {
		t.Run(name, func(t *testing.T) {
			e := newTestEngine(t, 4)
			e.SetMode(ModeAuto)
			_, adv := e.SubmitAnswer(0, 0)
			if adv == nil {
				t.Fatal("expected a pending advance")
			}

			action(e)
			if e.ConsumeAdvance(adv.Token) {
				t.Error("advance should be canceled by the manual action")
			}
		})
	}
}

func TestNavigationBounds(t *testing.T) {
	e := newTestEngine(t, 3)

	e.GoPrevious()
	if e.State().CurrentIndex != 0 {
		t.Error("GoPrevious at the first question should be a no-op")
	}

	e.GoTo(2)
	e.GoNext()
	if e.State().CurrentIndex != 2 {
		t.Error("GoNext at the last question should be a no-op")
	}

	e.GoTo(-5)
	if e.State().CurrentIndex != 0 {
		t.Error("GoTo below range should clamp to 0")
	}
	e.GoTo(99)
	if e.State().CurrentIndex != 2 {
		t.Error("GoTo above range should clamp to the last question")
	}
}

func TestRevealHint(t *testing.T) {
	qs := testBank(2)
	qs[1].Hint = ""
	e, err := NewEngine(qs, nil)
	if err != nil {
		t.Fatal(err)
	}

	e.RevealHint(0)
	e.RevealHint(0) // idempotent
	if !e.State().HintsRevealed[0] {
		t.Error("hint 0 should be revealed")
	}

	e.RevealHint(1)
	if e.State().HintsRevealed[1] {
		t.Error("question without a hint must not record a reveal")
	}

	e.RevealHint(-1)
	e.RevealHint(5)

	e.Finish()
	e.GoTo(0)
	if !e.State().HintsRevealed[0] {
		t.Error("hint reveals must survive finishing")
	}
}

func TestSetMode(t *testing.T) {
	e := newTestEngine(t, 2)

	e.SubmitAnswer(0, 0)
	e.SetMode(ModeAuto)
	if e.State().Mode != ModeAuto {
		t.Fatal("mode should switch to auto")
	}
	if e.State().Answers[0] == nil {
		t.Error("mode change must not touch existing answers")
	}

	e.SetMode(Mode("turbo"))
	if e.State().Mode != ModeAuto {
		t.Error("unrecognized mode must be ignored")
	}

	// Auto mode unlocks the slot answered in manual mode.
	rec, _ := e.SubmitAnswer(0, 1)
	if rec == nil {
		t.Error("auto mode should allow re-answering")
	}
}

func TestFinishIrrevocable(t *testing.T) {
	e := newTestEngine(t, 2)
	e.Finish()

	s := e.State()
	if !s.Finished || !s.SummaryVisible {
		t.Fatal("Finish should set Finished and show the summary")
	}

	// Navigation still works for review.
	e.GoNext()
	if s.CurrentIndex != 1 {
		t.Error("review navigation should still work")
	}
	if !s.Finished {
		t.Error("navigation must not clear Finished")
	}

	e.SetMode(ModeAuto)
	if !s.Finished {
		t.Error("mode change must not clear Finished")
	}

	e.Reset()
	if e.State().Finished {
		t.Error("Reset should clear Finished")
	}
}

func TestResetClearsEverything(t *testing.T) {
	store := newMemStore()
	codec := NewCodec(store, "sample")
	e, err := NewEngine(testBank(3), codec)
	if err != nil {
		t.Fatal(err)
	}

	e.SubmitAnswer(0, 1)
	e.RevealHint(0)
	e.SetMode(ModeAuto)
	e.GoTo(2)
	e.Finish()

	if store.data[codec.Key()] == nil {
		t.Fatal("snapshot should exist before reset")
	}

	e.Reset()
	s := e.State()
	if s.CurrentIndex != 0 || s.Finished || s.SummaryVisible {
		t.Error("reset should return to the initial position")
	}
	for i, a := range s.Answers {
		if a != nil {
			t.Errorf("answer %d should be cleared", i)
		}
	}
	if len(s.HintsRevealed) != 0 {
		t.Error("hint reveals should be cleared")
	}
	if s.Mode != ModeManual {
		t.Error("mode should return to manual")
	}
	if store.data[codec.Key()] != nil {
		t.Error("reset should delete the stored snapshot")
	}
}

func TestEngineRestoresSnapshot(t *testing.T) {
	store := newMemStore()
	codec := NewCodec(store, "sample")

	e1, err := NewEngine(testBank(3), codec)
	if err != nil {
		t.Fatal(err)
	}
	e1.SubmitAnswer(0, 1)
	e1.SetMode(ModeAuto)
	e1.GoTo(2)
	e1.RevealHint(2)

	e2, err := NewEngine(testBank(3), NewCodec(store, "sample"))
	if err != nil {
		t.Fatal(err)
	}
	s := e2.State()
	if s.CurrentIndex != 2 {
		t.Errorf("restored CurrentIndex = %d, want 2", s.CurrentIndex)
	}
	if s.Mode != ModeAuto {
		t.Errorf("restored Mode = %q, want auto", s.Mode)
	}
	if s.Answers[0] == nil || !s.Answers[0].Correct {
		t.Error("restored answer 0 should be present and correct")
	}
	if !s.HintsRevealed[2] {
		t.Error("restored hint reveal missing")
	}
}

func TestEngineIgnoresSnapshotForDifferentBankSize(t *testing.T) {
	store := newMemStore()

	e1, err := NewEngine(testBank(3), NewCodec(store, "sample"))
	if err != nil {
		t.Fatal(err)
	}
	e1.GoTo(2)

	e2, err := NewEngine(testBank(5), NewCodec(store, "sample"))
	if err != nil {
		t.Fatal(err)
	}
	if e2.State().CurrentIndex != 0 {
		t.Error("snapshot for a different question count must be discarded")
	}
}

func TestParseJumpTarget(t *testing.T) {
	tests := []struct {
		input   string
		total   int
		want    int
		wantErr bool
	}{
		{"1", 10, 0, false},
		{"5", 10, 4, false},
		{"10", 10, 9, false},
		{"0", 10, 0, true},
		{"11", 10, 0, true},
		{"-3", 10, 0, true},
		{"abc", 10, 0, true},
		{"", 10, 0, true},
		{"2.5", 10, 0, true},
	}

	for _, tt := range tests {
		got, err := ParseJumpTarget(tt.input, tt.total)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseJumpTarget(%q, %d): expected error", tt.input, tt.total)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseJumpTarget(%q, %d): %v", tt.input, tt.total, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseJumpTarget(%q, %d) = %d, want %d", tt.input, tt.total, got, tt.want)
		}
	}
}
