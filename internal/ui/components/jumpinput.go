package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// JumpInput is a small numeric input for jumping to a question by its
// one-based number.
type JumpInput struct {
	Model textinput.Model
	Err   string
}

// NewJumpInput creates a focused jump input.
func NewJumpInput() JumpInput {
	ti := textinput.New()
	ti.Placeholder = "question #"
	ti.CharLimit = 4
	ti.Focus()
	return JumpInput{Model: ti}
}

// Init returns the initial command.
func (j JumpInput) Init() tea.Cmd {
	return j.Model.Focus()
}

// Update handles messages, letting only digits through.
func (j JumpInput) Update(msg tea.Msg) (JumpInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return j, nil
		}
	}

	var cmd tea.Cmd
	j.Model, cmd = j.Model.Update(msg)
	return j, cmd
}

// View renders the input with any validation error beneath it.
func (j JumpInput) View() string {
	view := lipgloss.NewStyle().Foreground(theme.Text).Render("Jump to: ") + j.Model.View()
	if j.Err != "" {
		view += "\n" + theme.Incorrect.Render(j.Err)
	}
	return view
}

// Value returns the current input value.
func (j JumpInput) Value() string {
	return j.Model.Value()
}
