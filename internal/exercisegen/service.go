// Package exercisegen generates practice exercise sets via schema-constrained
// LLM output.
package exercisegen

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/abhisek/lingoleap/internal/catalog"
	"github.com/abhisek/lingoleap/internal/llm"
)

// GenerationError is the learner-facing message when exercise generation
// fails for any reason.
const GenerationError = "Failed to generate exercises. The AI might be having a busy day!"

// ErrNoValidExercises is returned when the model responded but every item
// was malformed.
var ErrNoValidExercises = errors.New("exercisegen: no valid exercises in response")

// Service generates exercises through an LLM provider.
type Service struct {
	provider llm.Provider
}

// NewService creates an exercise generation service.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

type exerciseOutput struct {
	Exercises []Exercise `json:"exercises"`
}

// Generate produces a set of exercises for the topic at the given level.
// Malformed items are dropped; an error is returned only when the request
// fails or nothing usable remains.
func (s *Service) Generate(ctx context.Context, language catalog.Language, topic, level string) ([]Exercise, error) {
	ctx = llm.WithPurpose(ctx, "exercise-gen")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExercisePrompt(language, topic, level)},
		},
		Schema: ExerciseSchema,
	})
	if err != nil {
		return nil, err
	}

	var out exerciseOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	exercises := make([]Exercise, 0, len(out.Exercises))
	for _, e := range out.Exercises {
		if e.valid() {
			exercises = append(exercises, e)
		}
	}
	if len(exercises) == 0 {
		return nil, ErrNoValidExercises
	}
	return exercises, nil
}
