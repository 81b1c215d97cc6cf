package question

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/questions.json
var defaultBank []byte

// Repository is an immutable, in-memory question bank loaded once at startup.
type Repository struct {
	questions []Question
}

// Load reads and validates a question bank from a JSON file.
func Load(path string) (*Repository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	repo, err := New(raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return repo, nil
}

// LoadDefault builds a repository from the bundled question bank.
func LoadDefault() (*Repository, error) {
	return New(defaultBank)
}

// New parses, validates, and indexes a raw question bank document.
func New(raw []byte) (*Repository, error) {
	if err := validateBank(raw); err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	for i := range questions {
		q := &questions[i]
		// Older banks encode the set in the id instead of setNumber.
		if q.SetNumber == 0 {
			q.SetNumber = SetFromID(q.ID)
		}
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
			return nil, fmt.Errorf("question %s: answerIndex %d out of range for %d options",
				q.ID, q.AnswerIndex, len(q.Options))
		}
	}

	return &Repository{questions: questions}, nil
}

// Len returns the total number of questions in the bank.
func (r *Repository) Len() int {
	return len(r.questions)
}

// ForScopeSet returns the questions belonging to the given scope and set
// number. The result is a fresh slice; the repository is never mutated.
func (r *Repository) ForScopeSet(scope Scope, set int) []Question {
	var out []Question
	for _, q := range r.questions {
		if q.Grade == scope.Grade && q.Subject == scope.Subject && q.SetNumber == set {
			out = append(out, q)
		}
	}
	return out
}

// Grades returns the distinct grades present in the bank, sorted.
func (r *Repository) Grades() []string {
	return r.distinct(func(q Question) string { return q.Grade })
}

// Subjects returns the distinct subjects available for a grade, sorted.
func (r *Repository) Subjects(grade string) []string {
	return r.distinct(func(q Question) string {
		if q.Grade != grade {
			return ""
		}
		return q.Subject
	})
}

func (r *Repository) distinct(key func(Question) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range r.questions {
		k := key(q)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// validateBank checks the raw document against the bank schema.
func validateBank(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	defBytes, err := json.Marshal(bankSchema)
	if err != nil {
		return fmt.Errorf("marshal bank schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return fmt.Errorf("parse bank schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://questions.json", defParsed); err != nil {
		return fmt.Errorf("add bank schema: %w", err)
	}
	compiled, err := c.Compile("schema://questions.json")
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("question bank validation failed: %w", err)
	}
	return nil
}
