package quizscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/bank"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// Position returns the "3 / 10" header fragment.
func (m *Model) Position() string {
	st := m.engine.State()
	return fmt.Sprintf("%d / %d", st.CurrentIndex+1, st.QuestionCount())
}

func (m *Model) View(width, height int) string {
	st := m.engine.State()

	if m.confirmReset {
		return renderConfirm(width, height, "Start over?", "All answers and progress will be erased.")
	}
	if m.confirmFinish {
		return renderConfirm(width, height, "Finish the quiz?", "Finishing is final. You can review but not change answers.")
	}
	if st.Finished && st.SummaryVisible {
		return m.renderSummary(width, height)
	}
	return m.renderQuestion(width, height)
}

func (m *Model) renderQuestion(width, height int) string {
	st := m.engine.State()
	q := m.engine.Question()

	var b strings.Builder

	progress := components.ProgressBar{
		Percent: float64(st.CurrentIndex+1) / float64(st.QuestionCount()),
		Width:   min(width-8, 50),
	}
	b.WriteString(progress.View() + "\n\n")

	b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf("Q%d. %s", st.CurrentIndex+1, q.Text)) + "\n")
	if q.ImageURL != "" {
		b.WriteString(theme.Hint.Render("Image: "+q.ImageURL) + "\n")
	}
	b.WriteString("\n")

	answer := st.Answers[st.CurrentIndex]
	reveal := st.Finished || (answer != nil && st.Mode == quiz.ModeManual)

	opts := components.OptionList{
		Question: q,
		Cursor:   m.cursor,
		Chosen:   -1,
		Reveal:   reveal,
	}
	if answer != nil {
		opts.Chosen = answer.SelectedOption
	}
	b.WriteString(opts.View() + "\n")

	switch {
	case reveal && answer != nil && answer.Correct:
		b.WriteString(theme.Correct.Render("Correct!") + "\n")
	case reveal && answer != nil:
		correct := q.CorrectIndex()
		line := "Not quite."
		if correct >= 0 {
			line = fmt.Sprintf("Not quite. The answer is %s.", bank.OptionLabel(correct))
		}
		b.WriteString(theme.Incorrect.Render(line) + "\n")
	case answer != nil && st.Mode == quiz.ModeAuto:
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Answered %s. Pick again to change it.", bank.OptionLabel(answer.SelectedOption))) + "\n")
	}

	if st.HintsRevealed[st.CurrentIndex] && q.HasHint() {
		b.WriteString("\n" + theme.Hint.Render("Hint: "+q.Hint) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + theme.Hint.Render(m.status) + "\n")
	}

	if m.jump != nil {
		b.WriteString("\n" + m.jump.View() + "\n")
	}

	return centerBox(width, height, b.String())
}

func (m *Model) renderSummary(width, height int) string {
	st := m.engine.State()
	summary := quiz.BuildSummary(st)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz complete!") + "\n\n")

	b.WriteString(theme.Correct.Render(fmt.Sprintf("  Correct    %d", summary.Totals.Correct)) + "\n")
	b.WriteString(theme.Incorrect.Render(fmt.Sprintf("  Incorrect  %d", summary.Totals.Incorrect)) + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  Unanswered %d", summary.Totals.Unanswered)) + "\n\n")

	for _, r := range summary.PerQuestion {
		var marker string
		switch r.Status {
		case quiz.StatusCorrect:
			marker = theme.Correct.Render("+")
		case quiz.StatusIncorrect:
			marker = theme.Incorrect.Render("x")
		default:
			marker = theme.Hint.Render("-")
		}
		cursor := "  "
		if r.Index == m.summaryCursor {
			cursor = theme.Selected.Render("> ")
		}
		b.WriteString(fmt.Sprintf("  %s%s Q%d\n", cursor, marker, r.Index+1))
	}

	if m.jump != nil {
		b.WriteString("\n" + m.jump.View() + "\n")
	}

	return centerBox(width, height, b.String())
}

func renderConfirm(width, height int, title, detail string) string {
	content := theme.Title.Render(title) + "\n\n" +
		theme.Body.Render(detail) + "\n\n" +
		theme.Hint.Render("Y to confirm, N to cancel")
	return centerBox(width, height, content)
}

func centerBox(width, height int, content string) string {
	card := theme.Card.Width(min(width-4, 72)).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
