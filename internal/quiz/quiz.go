// Package quiz drives a single quiz run: question sequencing, countdown,
// answer locking, scoring, and streak bookkeeping. It owns no rendering;
// the UI layer feeds it ticks and selections and reads its state.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/harini/sciquiz/internal/allocate"
	"github.com/harini/sciquiz/internal/question"
	"github.com/harini/sciquiz/internal/store"
)

var (
	// ErrMissingScope means grade or subject was not supplied.
	ErrMissingScope = errors.New("quiz requires both grade and subject")

	// ErrNoQuestions means the claimed set has no questions for the scope.
	// This is a configuration fault in the question bank, fatal for the
	// attempt; the claim is released before it is returned.
	ErrNoQuestions = errors.New("no questions found for the selected set")
)

// Start allocates a set for the session and builds a ready-to-run quiz.
// All fatal conditions surface here, before any question is shown; nothing
// fails mid-quiz.
func Start(ctx context.Context, repo *question.Repository, tracker *allocate.Tracker, kv store.KV, cfg Config) (*Session, error) {
	if !cfg.Scope.Valid() {
		return nil, ErrMissingScope
	}
	totalSets := cfg.TotalSets
	if totalSets == 0 {
		totalSets = allocate.DefaultTotalSets
	}
	length := cfg.QuizLength
	if length == 0 {
		length = DefaultQuizLength
	}

	set, err := tracker.ClaimSet(ctx, cfg.Scope, totalSets)
	if err != nil {
		return nil, fmt.Errorf("allocate set: %w", err)
	}

	pool := repo.ForScopeSet(cfg.Scope, set)
	if len(pool) == 0 {
		// Do not hold a claim for an attempt that cannot start.
		_ = tracker.Release(ctx, cfg.Scope)
		return nil, fmt.Errorf("%w: %s set %d", ErrNoQuestions, cfg.Scope, set)
	}
	if len(pool) < length {
		length = len(pool)
	}

	shuffle(pool)

	streak, err := loadStreak(ctx, kv)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Scope:      cfg.Scope,
		Difficulty: cfg.Difficulty,
		Language:   cfg.Language,
		Set:        set,
		Questions:  pool[:length],
		Streak:     streak,
		LastChoice: ChoiceNone,
		Phase:      PhaseAwaitingStart,
		tracker:    tracker,
		kv:         kv,
	}
	return s, nil
}

// Begin shows the first question and starts its countdown.
func (s *Session) Begin() {
	if s.Phase != PhaseAwaitingStart {
		return
	}
	if len(s.Questions) == 0 {
		s.Phase = PhaseCompleted
		return
	}
	s.Phase = PhaseQuestion
	s.TimeLeft = QuestionSeconds(s.Scope.Grade, s.Difficulty)
}

// Tick decrements the current question's countdown by one second and
// returns the remaining time. The caller scores a timeout by calling
// Select with ChoiceNone when this reaches zero.
func (s *Session) Tick() int {
	if s.Phase != PhaseQuestion || s.Locked {
		return s.TimeLeft
	}
	if s.TimeLeft > 0 {
		s.TimeLeft--
	}
	return s.TimeLeft
}

// Select scores an answer for the current question and reveals feedback.
// choice is an option index, or ChoiceNone for a timeout. At most one
// answer is scored per question: once locked, further calls are no-ops.
func (s *Session) Select(ctx context.Context, choice int) error {
	if s.Phase != PhaseQuestion || s.Locked {
		return nil
	}
	q := s.Current()
	if q == nil {
		return nil
	}

	s.Locked = true
	s.LastChoice = choice
	s.LastCorrect = choice == q.AnswerIndex

	if s.LastCorrect {
		s.Correct++
		s.Streak++
	} else {
		s.Streak = 0
	}
	s.Phase = PhaseRevealed

	return saveStreak(ctx, s.kv, s.Streak)
}

// Advance moves past the revealed question. Reaching the end completes
// the quiz: the set is recorded in the completion ledger (which releases
// the active claim) and the streak resets for the next attempt.
func (s *Session) Advance(ctx context.Context) error {
	if s.Phase != PhaseRevealed {
		return nil
	}
	s.Index++
	if s.Index >= len(s.Questions) {
		return s.complete(ctx)
	}
	s.Phase = PhaseQuestion
	s.Locked = false
	s.LastChoice = ChoiceNone
	s.TimeLeft = QuestionSeconds(s.Scope.Grade, s.Difficulty)
	return nil
}

// Abandon releases the session's claim without recording completion.
// Called when the player leaves mid-quiz; required so the set frees up
// for other sessions before the TTL. Safe to call more than once.
func (s *Session) Abandon(ctx context.Context) error {
	if s.Phase == PhaseCompleted {
		return nil
	}
	return s.tracker.Release(ctx, s.Scope)
}

func (s *Session) complete(ctx context.Context) error {
	s.Phase = PhaseCompleted
	if err := s.tracker.MarkCompleted(ctx, s.Scope, s.Set); err != nil {
		return fmt.Errorf("record completion: %w", err)
	}
	// A fresh start for the next quiz in any scope.
	s.Streak = 0
	return saveStreak(ctx, s.kv, 0)
}

// shuffle applies a uniform random permutation (Fisher-Yates).
func shuffle(qs []question.Question) {
	rand.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}
