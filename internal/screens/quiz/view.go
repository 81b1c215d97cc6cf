package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/harini/sciquiz/internal/quiz"
	"github.com/harini/sciquiz/internal/ui/components"
	"github.com/harini/sciquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.session == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Finding a question set for you...")
	}
	switch s.session.Phase {
	case quiz.PhaseRevealed:
		return s.renderFeedback(width)
	case quiz.PhaseCompleted:
		return ""
	default:
		return s.renderQuestion(width)
	}
}

func (s *QuizScreen) renderQuestion(width int) string {
	sess := s.session
	q := sess.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Position and countdown line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", sess.Index+1, sess.Total()))

	infoRight := timerStyle(sess.TimeLeft).Render(fmt.Sprintf("⏱ %2ds", sess.TimeLeft))

	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad < 1 {
		rightPad = 1
	}
	b.WriteString(infoLeft + strings.Repeat(" ", rightPad) + infoRight)
	b.WriteString("\n")

	barWidth := width - 8
	if barWidth < 10 {
		barWidth = 10
	}
	b.WriteString(components.NewQuizProgress(barWidth).View(sess.Index, sess.Total()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text, centered.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text.In(sess.Language)))
	b.WriteString("\n\n")

	// Options.
	var opts strings.Builder
	for i, opt := range q.Options {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt.In(sess.Language))
		if i == s.selected {
			opts.WriteString(theme.Selected.Render(line))
		} else {
			opts.WriteString(theme.Body.Render(line))
		}
		opts.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.String()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Select (1-4) or use arrows + Enter"))

	return b.String()
}

func (s *QuizScreen) renderFeedback(width int) string {
	sess := s.session
	q := sess.Current()

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n")

	switch {
	case sess.LastCorrect:
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("Correct!"))
	case sess.LastChoice == quiz.ChoiceNone:
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Time's up!"))
	default:
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Not quite"))
	}
	b.WriteString("\n")

	if q != nil && !sess.LastCorrect {
		if sess.LastChoice >= 0 && sess.LastChoice < len(q.Options) {
			b.WriteString(center.Foreground(theme.TextDim).Render(
				fmt.Sprintf("You picked: %s", q.Options[sess.LastChoice].In(sess.Language))))
			b.WriteString("\n")
		}
		b.WriteString(center.Foreground(theme.TextDim).Render(
			fmt.Sprintf("Correct answer: %s", q.Options[q.AnswerIndex].In(sess.Language))))
		b.WriteString("\n")
	}

	if msg := quiz.CelebrationMessage(sess.Streak, sess.Language); msg != "" {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Accent).Bold(true).Render(msg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("Score so far: %d / %d", sess.Correct, sess.Index+1)))

	return b.String()
}

// timerStyle colors the countdown as it runs low.
func timerStyle(secondsLeft int) lipgloss.Style {
	switch {
	case secondsLeft <= quiz.DangerSeconds:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	case secondsLeft <= quiz.WarnSeconds:
		return lipgloss.NewStyle().Foreground(theme.Warning)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
