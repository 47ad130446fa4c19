// Package studygen generates free-form study material: topic study guides
// and grammar guides rendered as markdown.
package studygen

import (
	"context"
	"strings"

	"github.com/abhisek/lingoleap/internal/catalog"
	"github.com/abhisek/lingoleap/internal/llm"
)

// Fallback texts shown when generation fails. Material generation never
// surfaces an error to the caller; a readable apology takes the content's
// place instead.
const (
	StudyGuideFallback   = "Sorry, I couldn't generate the study material at this moment. Please try again later."
	GrammarGuideFallback = "Sorry, I couldn't generate the grammar guide at this moment. Please try again later."
)

// Service generates study material through an LLM provider.
type Service struct {
	provider llm.Provider
}

// NewService creates a study material generation service.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// StudyGuide generates a markdown study guide for the topic at the given
// level. It never returns an error; failures yield the fallback text.
func (s *Service) StudyGuide(ctx context.Context, language catalog.Language, topic, level string) string {
	ctx = llm.WithPurpose(ctx, "study-guide")
	return s.generate(ctx, buildStudyGuidePrompt(language, topic, level), StudyGuideFallback)
}

// GrammarGuide generates a markdown grammar guide for the topic at the
// given level. It never returns an error; failures yield the fallback text.
func (s *Service) GrammarGuide(ctx context.Context, language catalog.Language, topic, level string) string {
	ctx = llm.WithPurpose(ctx, "grammar-guide")
	return s.generate(ctx, buildGrammarGuidePrompt(language, topic, level), GrammarGuideFallback)
}

func (s *Service) generate(ctx context.Context, prompt, fallback string) string {
	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
	})
	if err != nil {
		return fallback
	}
	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return fallback
	}
	return text
}
