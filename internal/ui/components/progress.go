package components

import (
	"charm.land/bubbles/v2/progress"
	"charm.land/lipgloss/v2"

	"github.com/harini/sciquiz/internal/ui/theme"
)

// QuizProgress renders the position within a quiz as a horizontal bar.
type QuizProgress struct {
	bar progress.Model
}

// NewQuizProgress creates a quiz progress bar of the given width.
func NewQuizProgress(width int) QuizProgress {
	bar := progress.New(
		progress.WithColors(theme.Secondary),
		progress.WithoutPercentage(),
	)
	bar.SetWidth(width)
	return QuizProgress{bar: bar}
}

// View renders the bar for answered-of-total questions.
func (p QuizProgress) View(answered, total int) string {
	if total <= 0 {
		return ""
	}
	pct := float64(answered) / float64(total)
	if pct > 1 {
		pct = 1
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ")
	return label + p.bar.ViewAs(pct)
}
