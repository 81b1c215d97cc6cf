package question

import (
	"regexp"
	"strconv"
)

// Difficulty is the declared difficulty band of a question.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Text holds a localized string keyed by language code ("en", "ta", ...).
type Text map[string]string

// In returns the text in the given language, falling back to English.
func (t Text) In(lang string) string {
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	return t["en"]
}

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	ID          string     `json:"id"`
	Grade       string     `json:"grade"`
	Subject     string     `json:"subject"`
	Difficulty  Difficulty `json:"difficulty"`
	SetNumber   int        `json:"setNumber,omitempty"`
	Text        Text       `json:"text"`
	Options     []Text     `json:"options"`
	AnswerIndex int        `json:"answerIndex"`
}

// Scope is the (grade, subject) pair that partitions the question bank.
// Sets and completion are tracked per scope.
type Scope struct {
	Grade   string
	Subject string
}

// Valid reports whether both fields are present. A quiz cannot start
// against a partial scope.
func (s Scope) Valid() bool {
	return s.Grade != "" && s.Subject != ""
}

func (s Scope) String() string {
	return s.Grade + "/" + s.Subject
}

// setMarker matches the legacy "_set<N>_" id convention used by older
// question banks that predate the explicit setNumber field.
var setMarker = regexp.MustCompile(`_set(\d+)_`)

// SetFromID extracts the set number encoded in a question id, or 0 if
// the id carries no marker.
func SetFromID(id string) int {
	m := setMarker.FindStringSubmatch(id)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
