// Package quiz generates proficiency quizzes and scores attempts.
package quiz

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/abhisek/lingoleap/internal/catalog"
	"github.com/abhisek/lingoleap/internal/llm"
)

// GenerationError is the learner-facing message when quiz generation fails.
const GenerationError = "Failed to generate a quiz. Let's try again in a moment."

// ErrNoValidQuestions is returned when the model responded but every
// question was unscorable.
var ErrNoValidQuestions = errors.New("quiz: no valid questions in response")

// Service generates quizzes through an LLM provider.
type Service struct {
	provider llm.Provider
}

// NewService creates a quiz generation service.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

type quizOutput struct {
	Questions []Question `json:"questions"`
}

// Generate produces a quiz for the language at the given level. Questions
// whose stated correct answer is not among the options are dropped rather
// than failing the whole quiz.
func (s *Service) Generate(ctx context.Context, language catalog.Language, level string) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizPrompt(language, level)},
		},
		Schema: QuizSchema,
	})
	if err != nil {
		return nil, err
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	questions := make([]Question, 0, len(out.Questions))
	for _, q := range out.Questions {
		if q.valid() {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return nil, ErrNoValidQuestions
	}
	return questions, nil
}
