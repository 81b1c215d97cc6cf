package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/harini/sciquiz/internal/allocate"
	"github.com/harini/sciquiz/internal/question"
	"github.com/harini/sciquiz/internal/quiz"
	"github.com/harini/sciquiz/internal/router"
	"github.com/harini/sciquiz/internal/screen"
	"github.com/harini/sciquiz/internal/screens/summary"
	"github.com/harini/sciquiz/internal/store"
	"github.com/harini/sciquiz/internal/ui/layout"
)

// Params carries the quiz parameters chosen on the home screen (or
// supplied on the command line).
type Params struct {
	Scope      question.Scope
	Difficulty question.Difficulty
	Language   string
}

// QuizScreen implements screen.Screen for an active quiz run.
type QuizScreen struct {
	repo    *question.Repository
	tracker *allocate.Tracker
	shared  store.KV
	params  Params

	session  *quiz.Session
	selected int
	errMsg   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Teardown = (*QuizScreen)(nil)

// New creates a quiz screen. The set is claimed in Init, not here, so
// construction is cheap and failure surfaces through the UI.
func New(repo *question.Repository, tracker *allocate.Tracker, shared store.KV, params Params) *QuizScreen {
	return &QuizScreen{
		repo:    repo,
		tracker: tracker,
		shared:  shared,
		params:  params,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.startQuiz()
}

func (s *QuizScreen) Title() string {
	return s.params.Scope.String()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session == nil || s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	switch s.session.Phase {
	case quiz.PhaseRevealed:
		return []layout.KeyHint{
			{Key: "", Description: "Next question coming up..."},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Leave quiz"},
		}
	}
}

// Teardown releases the set claim when the program exits mid-quiz.
func (s *QuizScreen) Teardown() {
	if s.session != nil {
		_ = s.session.Abandon(context.Background())
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizInitMsg:
		return s.handleInit(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case advanceMsg:
		return s.handleAdvance()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// startQuiz claims a set and loads its questions.
func (s *QuizScreen) startQuiz() tea.Cmd {
	return func() tea.Msg {
		sess, err := quiz.Start(context.Background(), s.repo, s.tracker, s.shared, quiz.Config{
			Scope:      s.params.Scope,
			Difficulty: s.params.Difficulty,
			Language:   s.params.Language,
		})
		return quizInitMsg{Session: sess, Err: err}
	}
}

func (s *QuizScreen) handleInit(msg quizInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.session = msg.Session
	s.session.Begin()
	return s, tea.Batch(
		func() tea.Msg { return screen.StreakMsg(s.session.Streak) },
		tickCmd(),
	)
}

func (s *QuizScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.session == nil || s.session.Phase != quiz.PhaseQuestion {
		return s, nil
	}
	if s.session.Tick() > 0 {
		return s, tickCmd()
	}
	// Out of time: scored as incorrect, feedback shown as usual.
	if err := s.session.Select(context.Background(), quiz.ChoiceNone); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	return s, tea.Batch(
		func() tea.Msg { return screen.StreakMsg(s.session.Streak) },
		advanceCmd(),
	)
}

func (s *QuizScreen) handleAdvance() (screen.Screen, tea.Cmd) {
	if s.session == nil || s.session.Phase != quiz.PhaseRevealed {
		return s, nil
	}
	if err := s.session.Advance(context.Background()); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if s.session.Phase == quiz.PhaseCompleted {
		sess := s.session
		return s, tea.Batch(
			func() tea.Msg { return screen.StreakMsg(sess.Streak) },
			func() tea.Msg {
				return router.PushScreenMsg{Screen: summary.New(sess)}
			},
		)
	}
	s.selected = 0
	return s, tickCmd()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.session == nil {
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch s.session.Phase {
	case quiz.PhaseRevealed, quiz.PhaseCompleted:
		// Advancement is timer-driven; keys are ignored.
		return s, nil
	}

	q := s.session.Current()
	if q == nil {
		return s, nil
	}

	switch key {
	case "esc":
		_ = s.session.Abandon(context.Background())
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "down", "j":
		if s.selected < len(q.Options)-1 {
			s.selected++
		}
		return s, nil
	case "enter":
		return s.submit(s.selected)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(q.Options) {
			s.selected = idx
			return s.submit(idx)
		}
		return s, nil
	}
	return s, nil
}

func (s *QuizScreen) submit(choice int) (screen.Screen, tea.Cmd) {
	if err := s.session.Select(context.Background(), choice); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	return s, tea.Batch(
		func() tea.Msg { return screen.StreakMsg(s.session.Streak) },
		advanceCmd(),
	)
}

// tickCmd returns a 1-second countdown tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// advanceCmd schedules the auto-advance after the feedback display period.
func advanceCmd() tea.Cmd {
	return tea.Tick(quiz.FeedbackDelay, func(time.Time) tea.Msg {
		return advanceMsg{}
	})
}
