package quiz

import (
	"time"

	"github.com/harini/sciquiz/internal/allocate"
	"github.com/harini/sciquiz/internal/question"
	"github.com/harini/sciquiz/internal/store"
)

// Phase is the current phase of a quiz run.
type Phase int

const (
	PhaseAwaitingStart Phase = iota // Set claimed, first question not yet shown
	PhaseQuestion                   // Question displayed, answer not locked
	PhaseRevealed                   // Answer locked, feedback shown
	PhaseCompleted                  // Past the last question
)

// ChoiceNone marks a timeout: no option was chosen, always incorrect.
const ChoiceNone = -1

// FeedbackDelay is how long the revealed answer stays on screen before
// the quiz auto-advances. No user action is required.
const FeedbackDelay = 2 * time.Second

// DefaultQuizLength is the target number of questions per quiz. A set
// with fewer questions silently shortens the quiz.
const DefaultQuizLength = 10

// Config carries the quiz parameters supplied by the UI layer.
type Config struct {
	Scope      question.Scope
	Difficulty question.Difficulty
	Language   string
	TotalSets  int // 0 means allocate.DefaultTotalSets
	QuizLength int // 0 means DefaultQuizLength
}

// Session is the explicit context object for one quiz run. One instance
// exists per active quiz; nothing about a run lives in package state.
type Session struct {
	Scope      question.Scope
	Difficulty question.Difficulty
	Language   string

	// Set is the question set claimed for this run.
	Set int

	// Questions is the shuffled, truncated question list.
	Questions []question.Question

	// Index is the position of the current question.
	Index int

	// Correct counts correct answers so far.
	Correct int

	// Streak is the cross-quiz consecutive-correct counter, loaded from
	// the shared store at start and persisted on every change.
	Streak int

	// TimeLeft is the current question's remaining countdown in seconds.
	TimeLeft int

	// Locked is true once an answer (or timeout) has been scored for the
	// current question. Further selections are no-ops.
	Locked bool

	// LastChoice is the option index scored for the current question,
	// or ChoiceNone on timeout. Meaningful only while Locked.
	LastChoice int

	// LastCorrect records whether the last scored answer was correct.
	LastCorrect bool

	Phase Phase

	tracker *allocate.Tracker
	kv      store.KV
}

// Current returns the question at the cursor, or nil past the end.
func (s *Session) Current() *question.Question {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Total returns the quiz length.
func (s *Session) Total() int {
	return len(s.Questions)
}

// Percentage returns the final score as a rounded percentage. A zero-length
// quiz scores 0.
func (s *Session) Percentage() int {
	if len(s.Questions) == 0 {
		return 0
	}
	return int(float64(s.Correct)/float64(len(s.Questions))*100 + 0.5)
}

// Stars returns the half-star rating (0 to 5 in steps of 0.5) derived
// from the percentage.
func (s *Session) Stars() float64 {
	return float64(int(float64(s.Percentage())/10+0.5)) / 2
}
