package quiz

import "testing"

func TestPercentage_Rounds(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{5, 6, 83},
		{1, 3, 33},
		{2, 3, 67},
		{10, 10, 100},
		{0, 10, 0},
	}
	for _, tt := range tests {
		s := &Session{Correct: tt.correct, Questions: makeQuestions(tt.total)}
		if got := s.Percentage(); got != tt.want {
			t.Errorf("Percentage(%d/%d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestPercentage_ZeroTotal(t *testing.T) {
	s := &Session{}
	if got := s.Percentage(); got != 0 {
		t.Errorf("Percentage with no questions = %d, want 0", got)
	}
}

func TestStars_HalfSteps(t *testing.T) {
	tests := []struct {
		correct, total int
		want           float64
	}{
		{10, 10, 5.0},
		{9, 10, 4.5},
		{5, 10, 2.5},
		{1, 10, 0.5},
		{0, 10, 0.0},
		{5, 6, 4.0}, // 83% -> 8 half-stars
	}
	for _, tt := range tests {
		s := &Session{Correct: tt.correct, Questions: makeQuestions(tt.total)}
		if got := s.Stars(); got != tt.want {
			t.Errorf("Stars(%d/%d) = %.1f, want %.1f", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestCurrent_NilPastEnd(t *testing.T) {
	s := &Session{Questions: makeQuestions(2), Index: 2}
	if s.Current() != nil {
		t.Error("Current past the last question should be nil")
	}
}
