package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/harini/sciquiz/internal/allocate"
	"github.com/harini/sciquiz/internal/question"
	"github.com/harini/sciquiz/internal/router"
	"github.com/harini/sciquiz/internal/screen"
	"github.com/harini/sciquiz/internal/screens/home"
	quizscreen "github.com/harini/sciquiz/internal/screens/quiz"
	"github.com/harini/sciquiz/internal/store"
	"github.com/harini/sciquiz/internal/ui/layout"
)

// Options carries the wired dependencies for a program run.
type Options struct {
	Repo     *question.Repository
	Shared   store.KV
	Tracker  *allocate.Tracker
	Language string

	// Scope, when valid, skips the home screen and starts a quiz
	// directly (the `play --grade --subject` path).
	Scope      question.Scope
	Difficulty question.Difficulty
}

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	width  int
	height int
	streak int
}

func newModel(opts Options) Model {
	var first screen.Screen
	if opts.Scope.Valid() {
		first = quizscreen.New(opts.Repo, opts.Tracker, opts.Shared, quizscreen.Params{
			Scope:      opts.Scope,
			Difficulty: opts.Difficulty,
			Language:   opts.Language,
		})
	} else {
		first = home.New(opts.Repo, opts.Tracker, opts.Shared, opts.Language)
	}
	return Model{router: router.New(first)}
}

func (m Model) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StreakMsg:
		m.streak = int(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// Screens holding a set claim release it on teardown.
			m.router.Teardown()
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, m.streak, m.width)

	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if custom := hp.KeyHints(); custom != nil {
			hints = custom
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and releases any held set claim on
// the way out, however the program ended.
func Run(opts Options) error {
	model := newModel(opts)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.router.Teardown()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
