package quiz

import (
	"time"

	"github.com/harini/sciquiz/internal/quiz"
)

// quizInitMsg is sent when set allocation and question loading complete.
type quizInitMsg struct {
	Session *quiz.Session
	Err     error
}

// timerTickMsg is sent every second to drive the per-question countdown.
type timerTickMsg time.Time

// advanceMsg is sent when the feedback display period ends.
type advanceMsg struct{}
