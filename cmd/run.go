package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harini/sciquiz/internal/allocate"
	"github.com/harini/sciquiz/internal/app"
	"github.com/harini/sciquiz/internal/identity"
	"github.com/harini/sciquiz/internal/question"
	"github.com/harini/sciquiz/internal/store"
)

// launchParams carries optional command-line quiz parameters. A valid
// scope skips the home screen.
type launchParams struct {
	Scope      question.Scope
	Difficulty question.Difficulty
	Language   string
}

// deps is the wired dependency set shared by all commands.
type deps struct {
	repo    *question.Repository
	shared  *store.SharedStore
	tracker *allocate.Tracker
}

// openDeps opens the shared store, loads the question bank, and builds a
// tracker bound to this process's session id. The caller must call close.
func openDeps(cmd *cobra.Command) (*deps, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	shared, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	var repo *question.Repository
	if bankPath := resolveBankPath(cmd); bankPath != "" {
		repo, err = question.Load(bankPath)
	} else {
		repo, err = question.LoadDefault()
	}
	if err != nil {
		shared.Close()
		return nil, nil, err
	}

	// The session id lives in a per-process cache, mirroring how each
	// running instance gets its own identity.
	ids := identity.NewProvider(store.NewMemStore())
	sessionID, err := ids.SessionID(context.Background())
	if err != nil {
		shared.Close()
		return nil, nil, err
	}

	return &deps{
		repo:    repo,
		shared:  shared,
		tracker: allocate.NewTracker(shared, sessionID),
	}, func() { shared.Close() }, nil
}

// runApp wires dependencies and launches the TUI.
func runApp(cmd *cobra.Command, params launchParams) error {
	d, closeDeps, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer closeDeps()

	lang := params.Language
	if lang == "" {
		_, _ = d.shared.Get(context.Background(), "lang", &lang)
	}
	if lang == "" {
		lang = "en"
	}

	return app.Run(app.Options{
		Repo:       d.repo,
		Shared:     d.shared,
		Tracker:    d.tracker,
		Language:   lang,
		Scope:      params.Scope,
		Difficulty: params.Difficulty,
	})
}
