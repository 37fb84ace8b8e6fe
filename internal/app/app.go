package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/bank"
	"github.com/quizdeck/quizdeck/internal/quiz"
	quizscreen "github.com/quizdeck/quizdeck/internal/screens/quiz"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// Options configures the application.
type Options struct {
	Slug   string
	Title  string
	Source string
	Store  *store.Store
}

// bankLoadedMsg is sent when the question bank finishes loading.
type bankLoadedMsg struct {
	Questions []bank.Question
	Err       error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	width  int
	height int

	screen *quizscreen.Model
	errMsg string
}

func newAppModel(opts Options) AppModel {
	return AppModel{opts: opts}
}

func (m AppModel) Init() tea.Cmd {
	return m.loadBank()
}

// loadBank fetches and parses the question bank asynchronously.
func (m AppModel) loadBank() tea.Cmd {
	source := m.opts.Source
	return func() tea.Msg {
		questions, err := bank.Load(context.Background(), source)
		return bankLoadedMsg{Questions: questions, Err: err}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case bankLoadedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		codec := quiz.NewCodec(m.opts.Store.Snapshots(), m.opts.Slug)
		engine, err := quiz.NewEngine(msg.Questions, codec)
		if err != nil {
			m.errMsg = fmt.Sprintf("cannot start session: %v", err)
			return m, nil
		}
		m.screen = quizscreen.New(engine, m.opts.Title)
		return m, m.screen.Init()

	case quizscreen.FinishedMsg:
		return m, m.recordAttempt(msg.Summary)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.screen == nil || !m.screen.InputActive() {
				return m, tea.Quit
			}
		}
	}

	if m.screen != nil {
		var cmd tea.Cmd
		m.screen, cmd = m.screen.Update(msg)
		return m, cmd
	}

	return m, nil
}

// recordAttempt logs the finished attempt. Failures are warnings; the
// session result on screen is not affected.
func (m AppModel) recordAttempt(summary quiz.Summary) tea.Cmd {
	opts := m.opts
	return func() tea.Msg {
		_, err := opts.Store.RecordAttempt(context.Background(), opts.Slug,
			summary.Totals.Correct, summary.Totals.Incorrect, summary.Totals.Unanswered)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record attempt: %v\n", err)
		}
		return nil
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	if m.errMsg != "" {
		v.SetContent(theme.Incorrect.Width(m.width).Align(lipgloss.Center).Render("\n\n" + m.errMsg + "\n\nPress Ctrl+C to quit."))
		return v
	}

	if m.screen == nil {
		v.SetContent(theme.Subtitle.Width(m.width).Render("\n\nLoading questions..."))
		return v
	}

	header := layout.RenderHeader(m.screen.Title(), m.screen.Position(), m.screen.Mode(), m.width)

	hints := append(m.screen.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	content := m.screen.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
