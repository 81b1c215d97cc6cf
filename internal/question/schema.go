package question

// bankSchema defines the JSON schema a question bank document must satisfy.
// Localized text objects require at least an English entry so the UI always
// has a fallback language.
var bankSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"grade": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"subject": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
			"setNumber": map[string]any{
				"type":    "integer",
				"minimum": 1,
			},
			"text": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"en": map[string]any{"type": "string", "minLength": 1},
				},
				"required": []any{"en"},
			},
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"en": map[string]any{"type": "string"},
					},
					"required": []any{"en"},
				},
			},
			"answerIndex": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
		},
		"required": []any{"id", "grade", "subject", "difficulty", "text", "options", "answerIndex"},
	},
}
