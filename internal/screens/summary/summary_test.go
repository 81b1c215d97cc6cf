package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/harini/sciquiz/internal/question"
	"github.com/harini/sciquiz/internal/quiz"
	"github.com/harini/sciquiz/internal/router"
)

func testSession() *quiz.Session {
	return &quiz.Session{
		Scope:      question.Scope{Grade: "Grade 9", Subject: "physics"},
		Difficulty: question.Intermediate,
		Set:        2,
		Questions:  make([]question.Question, 10),
		Correct:    8,
		Phase:      quiz.PhaseCompleted,
	}
}

func TestSummaryScreen_View(t *testing.T) {
	s := New(testSession())
	view := s.View(80, 24)

	for _, want := range []string{"8 / 10", "80%", "Set 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_EnterPopsToRoot(t *testing.T) {
	s := New(testSession())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
}

func TestRenderStars(t *testing.T) {
	tests := []struct {
		stars float64
		full  int
		half  bool
	}{
		{5, 5, false},
		{4.5, 4, true},
		{2.5, 2, true},
		{0, 0, false},
	}
	for _, tt := range tests {
		got := renderStars(tt.stars)
		if n := strings.Count(got, "★"); n != tt.full {
			t.Errorf("renderStars(%v): %d full stars, want %d", tt.stars, n, tt.full)
		}
		if has := strings.Contains(got, "⯨"); has != tt.half {
			t.Errorf("renderStars(%v): half star = %v, want %v", tt.stars, has, tt.half)
		}
	}
}
