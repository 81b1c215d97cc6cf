package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/harini/sciquiz/internal/quiz"
	"github.com/harini/sciquiz/internal/router"
	"github.com/harini/sciquiz/internal/screen"
	"github.com/harini/sciquiz/internal/ui/layout"
	"github.com/harini/sciquiz/internal/ui/theme"
)

// SummaryScreen shows the results of a finished quiz.
type SummaryScreen struct {
	session *quiz.Session
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a completed session.
func New(session *quiz.Session) *SummaryScreen {
	return &SummaryScreen{session: session}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to menu"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sess := s.session

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Quiz Complete!"))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · %s · Set %d", sess.Scope, sess.Difficulty, sess.Set)))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(
		fmt.Sprintf("Score: %d / %d", sess.Correct, sess.Total())))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Accent).Render(
		fmt.Sprintf("%d%%", sess.Percentage())))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Warning).Render(renderStars(sess.Stars())))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(verdict(sess.Percentage())))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Press Enter to go back"))

	return b.String()
}

// renderStars draws a five-star row with half-star support.
func renderStars(stars float64) string {
	full := int(stars)
	half := stars-float64(full) >= 0.5

	var b strings.Builder
	for i := 0; i < full; i++ {
		b.WriteString("★ ")
	}
	if half {
		b.WriteString("⯨ ")
	}
	remaining := 5 - full
	if half {
		remaining--
	}
	for i := 0; i < remaining; i++ {
		b.WriteString("☆ ")
	}
	return strings.TrimRight(b.String(), " ")
}

func verdict(pct int) string {
	switch {
	case pct >= 90:
		return "Outstanding work!"
	case pct >= 70:
		return "Great job!"
	case pct >= 50:
		return "Good effort — keep practicing!"
	default:
		return "Keep at it — every quiz makes you stronger!"
	}
}
