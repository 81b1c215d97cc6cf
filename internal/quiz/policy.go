package quiz

import "github.com/harini/sciquiz/internal/question"

// Timer policy. Younger grades and beginner difficulty get the shorter
// countdown; everyone else gets the full one.
const (
	ShortQuestionSeconds = 20
	FullQuestionSeconds  = 30

	// Countdown styling thresholds surfaced by the UI.
	WarnSeconds   = 15
	DangerSeconds = 10
)

var beginnerGrades = map[string]bool{
	"Grade 6": true,
	"Grade 7": true,
	"Grade 8": true,
}

// QuestionSeconds returns the per-question countdown duration for a
// grade/difficulty combination.
func QuestionSeconds(grade string, difficulty question.Difficulty) int {
	if difficulty == question.Beginner || beginnerGrades[grade] {
		return ShortQuestionSeconds
	}
	return FullQuestionSeconds
}
