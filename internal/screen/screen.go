package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/harini/sciquiz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StreakMsg announces the current cross-quiz streak so the root model
// can show it in the header.
type StreakMsg int

// Teardown is an optional interface for screens that must run cleanup
// when the program exits while they are still on the stack. The quiz
// screen uses it to release its set claim on abrupt shutdown.
type Teardown interface {
	Teardown()
}
