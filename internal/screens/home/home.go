package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/harini/sciquiz/internal/allocate"
	"github.com/harini/sciquiz/internal/question"
	"github.com/harini/sciquiz/internal/router"
	"github.com/harini/sciquiz/internal/screen"
	quizscreen "github.com/harini/sciquiz/internal/screens/quiz"
	"github.com/harini/sciquiz/internal/store"
	"github.com/harini/sciquiz/internal/ui/components"
	"github.com/harini/sciquiz/internal/ui/layout"
	"github.com/harini/sciquiz/internal/ui/theme"
)

// step is the current stage of the pick-a-quiz flow.
type step int

const (
	stepGrade step = iota
	stepSubject
	stepDifficulty
)

var difficulties = []question.Difficulty{
	question.Beginner,
	question.Intermediate,
	question.Advanced,
}

// HomeScreen walks the player through grade, subject, and difficulty,
// then launches the quiz.
type HomeScreen struct {
	repo    *question.Repository
	tracker *allocate.Tracker
	shared  store.KV

	step     step
	grade    string
	subject  string
	language string
	menu     components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(repo *question.Repository, tracker *allocate.Tracker, shared store.KV, language string) *HomeScreen {
	s := &HomeScreen{
		repo:     repo,
		tracker:  tracker,
		shared:   shared,
		language: language,
	}
	s.menu = s.gradeMenu()
	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	// Surface the persisted streak in the header straight away.
	return func() tea.Msg {
		var streak int
		_, _ = s.shared.Get(context.Background(), "streak", &streak)
		return screen.StreakMsg(streak)
	}
}

func (s *HomeScreen) Title() string {
	return "Science Quiz"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
		{Key: "L", Description: "Language"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			switch s.step {
			case stepSubject:
				s.step = stepGrade
				s.menu = s.gradeMenu()
			case stepDifficulty:
				s.step = stepSubject
				s.menu = s.subjectMenu()
			}
			return s, nil
		case "l", "L":
			if s.language == "ta" {
				s.language = "en"
			} else {
				s.language = "ta"
			}
			_ = s.shared.Put(context.Background(), "lang", s.language)
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Pick your quiz"))
	b.WriteString("\n")

	var crumbs []string
	if s.grade != "" && s.step > stepGrade {
		crumbs = append(crumbs, s.grade)
	}
	if s.subject != "" && s.step > stepSubject {
		crumbs = append(crumbs, s.subject)
	}
	crumbs = append(crumbs, "language: "+s.language)
	b.WriteString(theme.Subtitle.Width(width).Render(strings.Join(crumbs, "  ·  ")))
	b.WriteString("\n\n")

	var prompt string
	switch s.step {
	case stepGrade:
		prompt = "Grade"
	case stepSubject:
		prompt = "Subject"
	case stepDifficulty:
		prompt = "Difficulty"
	}
	b.WriteString(theme.Hint.Render("  " + prompt))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (s *HomeScreen) gradeMenu() components.Menu {
	grades := s.repo.Grades()
	items := make([]components.MenuItem, 0, len(grades))
	for _, grade := range grades {
		grade := grade
		items = append(items, components.MenuItem{
			Label: grade,
			Action: func() tea.Cmd {
				s.grade = grade
				s.step = stepSubject
				s.menu = s.subjectMenu()
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (s *HomeScreen) subjectMenu() components.Menu {
	subjects := s.repo.Subjects(s.grade)
	items := make([]components.MenuItem, 0, len(subjects))
	for _, subject := range subjects {
		subject := subject
		items = append(items, components.MenuItem{
			Label: subject,
			Action: func() tea.Cmd {
				s.subject = subject
				s.step = stepDifficulty
				s.menu = s.difficultyMenu()
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (s *HomeScreen) difficultyMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(difficulties))
	for _, diff := range difficulties {
		diff := diff
		items = append(items, components.MenuItem{
			Label: string(diff),
			Action: func() tea.Cmd {
				params := quizscreen.Params{
					Scope:      question.Scope{Grade: s.grade, Subject: s.subject},
					Difficulty: diff,
					Language:   s.language,
				}
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.New(s.repo, s.tracker, s.shared, params),
					}
				}
			},
		})
	}
	return components.NewMenu(items)
}
