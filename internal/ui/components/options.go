package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/bank"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// OptionList renders a question's answer options. It is a pure view;
// the session engine owns all state.
type OptionList struct {
	Question bank.Question

	// Cursor is the highlighted option, -1 for none.
	Cursor int

	// Chosen is the recorded answer, -1 when unanswered.
	Chosen int

	// Reveal shows correctness coloring and rationales. In manual mode
	// it turns on as soon as the question is answered; in auto mode
	// only during review.
	Reveal bool
}

// View renders the option lines.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Question.Options {
		label := bank.OptionLabel(i)
		prefix := "  "
		if i == o.Cursor && !o.Reveal {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt.Text)
		marker := ""
		if i == o.Chosen {
			marker = "  [your answer]"
		}

		switch {
		case o.Reveal && opt.Correct:
			s += theme.Correct.Render(line+marker) + "\n"
		case o.Reveal && i == o.Chosen:
			s += theme.Incorrect.Render(line+marker) + "\n"
		case o.Reveal:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line+marker) + "\n"
		default:
			s += theme.Unselected.Render(line+marker) + "\n"
		}

		if o.Reveal && opt.Rationale != "" && (opt.Correct || i == o.Chosen) {
			s += theme.Hint.Render("      "+opt.Rationale) + "\n"
		}
	}
	return s
}
