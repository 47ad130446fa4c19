package exercisegen

import "github.com/abhisek/lingoleap/internal/llm"

// ExerciseSchema defines the JSON schema for exercise generation.
var ExerciseSchema = &llm.Schema{
	Name:        "exercises",
	Description: "A set of diverse language practice exercises",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exercises": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{KindFillBlank, KindMultipleChoice, KindTranslation},
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The exercise prompt. Fill-in-the-blank uses ___ for the blank",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Choices for multiple-choice exercises",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct answer",
						},
					},
					"required":             []any{"type", "question", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"exercises"},
		"additionalProperties": false,
	},
}
