package quizscreen

import (
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
)

// Model is the quiz session screen. All session semantics live in the
// engine; the model holds only presentation state.
type Model struct {
	engine *quiz.Engine
	title  string

	cursor        int
	summaryCursor int
	jump          *components.JumpInput
	confirmReset  bool
	confirmFinish bool
	status        string
}

// New creates the quiz screen for an engine and deck title.
func New(engine *quiz.Engine, title string) *Model {
	m := &Model{engine: engine, title: title}
	m.syncCursor()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Title returns the deck title for the header.
func (m *Model) Title() string {
	return m.title
}

// Mode returns the current answering mode for the header badge.
func (m *Model) Mode() string {
	return string(m.engine.State().Mode)
}

// InputActive reports whether the jump input is capturing keystrokes.
func (m *Model) InputActive() bool {
	return m.jump != nil
}

// KeyHints returns the footer hints for the current state.
func (m *Model) KeyHints() []layout.KeyHint {
	st := m.engine.State()
	switch {
	case m.jump != nil:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	case m.confirmReset:
		return []layout.KeyHint{
			{Key: "Y", Description: "Start over"},
			{Key: "N", Description: "Keep going"},
		}
	case m.confirmFinish:
		return []layout.KeyHint{
			{Key: "Y", Description: "Finish"},
			{Key: "N", Description: "Keep going"},
		}
	case st.Finished && st.SummaryVisible:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Select"},
			{Key: "Enter", Description: "Go to question"},
			{Key: "S", Description: "Review"},
			{Key: "R", Description: "Start over"},
		}
	case st.Finished:
		return []layout.KeyHint{
			{Key: "←/→", Description: "Navigate"},
			{Key: "G", Description: "Jump"},
			{Key: "S", Description: "Summary"},
			{Key: "R", Description: "Start over"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Select"},
			{Key: "Enter", Description: "Answer"},
			{Key: "←/→", Description: "Navigate"},
			{Key: "H", Description: "Hint"},
			{Key: "M", Description: "Mode"},
			{Key: "F", Description: "Finish"},
		}
	}
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case autoAdvanceMsg:
		if m.engine.ConsumeAdvance(msg.Token) {
			m.syncCursor()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.jump != nil {
		j, cmd := m.jump.Update(msg)
		m.jump = &j
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	key := msg.String()
	st := m.engine.State()
	m.status = ""

	if m.jump != nil {
		return m.handleJumpKey(msg, key)
	}

	if m.confirmReset {
		switch key {
		case "y", "Y":
			m.confirmReset = false
			m.engine.Reset()
			m.syncCursor()
		case "n", "N", "esc":
			m.confirmReset = false
		}
		return m, nil
	}

	if m.confirmFinish {
		switch key {
		case "y", "Y":
			m.confirmFinish = false
			m.engine.Finish()
			summary := quiz.BuildSummary(m.engine.State())
			return m, func() tea.Msg { return FinishedMsg{Summary: summary} }
		case "n", "N", "esc":
			m.confirmFinish = false
		}
		return m, nil
	}

	if st.Finished && st.SummaryVisible {
		switch key {
		case "up", "k":
			if m.summaryCursor > 0 {
				m.summaryCursor--
			}
		case "down", "j":
			if m.summaryCursor < st.QuestionCount()-1 {
				m.summaryCursor++
			}
		case "enter":
			st.SummaryVisible = false
			m.engine.GoTo(m.summaryCursor)
			m.syncCursor()
		case "esc", "s":
			st.SummaryVisible = false
		case "r":
			m.confirmReset = true
		case "g":
			j := components.NewJumpInput()
			m.jump = &j
			return m, j.Init()
		}
		return m, nil
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.engine.Question().Options)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m.submit(m.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if idx < len(m.engine.Question().Options) {
			m.cursor = idx
			return m.submit(idx)
		}
		return m, nil
	case "left", "p":
		m.engine.GoPrevious()
		m.syncCursor()
		return m, nil
	case "right", "n":
		m.engine.GoNext()
		m.syncCursor()
		return m, nil
	case "h":
		m.engine.RevealHint(st.CurrentIndex)
		return m, nil
	case "m":
		if st.Mode == quiz.ModeManual {
			m.engine.SetMode(quiz.ModeAuto)
		} else {
			m.engine.SetMode(quiz.ModeManual)
		}
		return m, nil
	case "g":
		j := components.NewJumpInput()
		m.jump = &j
		return m, j.Init()
	case "f":
		if !st.Finished {
			m.confirmFinish = true
		}
		return m, nil
	case "s":
		if st.Finished {
			st.SummaryVisible = true
			m.summaryCursor = st.CurrentIndex
		}
		return m, nil
	case "r":
		m.confirmReset = true
		return m, nil
	}

	return m, nil
}

func (m *Model) handleJumpKey(msg tea.KeyMsg, key string) (*Model, tea.Cmd) {
	switch key {
	case "enter":
		st := m.engine.State()
		target, err := quiz.ParseJumpTarget(m.jump.Value(), st.QuestionCount())
		if err != nil {
			// Revert the field to the current position and surface the
			// problem.
			m.jump.Err = err.Error()
			m.jump.Model.SetValue(strconv.Itoa(st.CurrentIndex + 1))
			return m, nil
		}
		m.jump = nil
		m.engine.State().SummaryVisible = false
		m.engine.GoTo(target)
		m.syncCursor()
		return m, nil
	case "esc":
		m.jump = nil
		return m, nil
	}

	j, cmd := m.jump.Update(msg)
	m.jump = &j
	return m, cmd
}

// submit records an answer and, in auto mode, schedules the advance.
func (m *Model) submit(optionIndex int) (*Model, tea.Cmd) {
	st := m.engine.State()
	record, pending := m.engine.SubmitAnswer(st.CurrentIndex, optionIndex)
	if record == nil {
		if st.Answered(st.CurrentIndex) && !st.Finished && st.Mode == quiz.ModeManual {
			m.status = "Answer locked. Switch to auto mode to change answers."
		}
		return m, nil
	}

	if pending != nil {
		token := pending.Token
		return m, tea.Tick(pending.Delay, func(time.Time) tea.Msg {
			return autoAdvanceMsg{Token: token}
		})
	}
	return m, nil
}

// syncCursor points the cursor at the recorded answer for the current
// question, or the first option.
func (m *Model) syncCursor() {
	st := m.engine.State()
	if ans := st.Answers[st.CurrentIndex]; ans != nil {
		m.cursor = ans.SelectedOption
	} else {
		m.cursor = 0
	}
}
