package questions

import "github.com/ankitn/skillforge/internal/llm"

// questionSchema defines the JSON shape for generated questions.
var questionSchema = &llm.Schema{
	Name:        "practice-question",
	Description: "A single practice question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the student, plain text",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Answer options for multiple choice, one matching the answer. Empty for free-text questions.",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer. For multiple choice: the text of the correct option.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A brief worked solution shown after the student answers",
			},
		},
		"required":             []any{"question_text", "choices", "answer", "explanation"},
		"additionalProperties": false,
	},
}
