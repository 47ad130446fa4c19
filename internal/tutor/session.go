// Package tutor runs the streaming chat conversation with the AI teacher.
package tutor

import (
	"context"

	"github.com/abhisek/lingoleap/internal/catalog"
	"github.com/abhisek/lingoleap/internal/llm"
)

// Session is the model-facing side of a tutoring conversation. It owns the
// system prompt and the committed message history sent with every turn.
// Construction does no I/O; the first request happens on Greet or SendTurn.
type Session struct {
	provider llm.Provider
	system   string
	history  []llm.Message
}

// NewSession creates a tutoring session for one learner and language.
func NewSession(provider llm.Provider, language catalog.Language, learnerName string) *Session {
	return &Session{
		provider: provider,
		system:   buildSystemPrompt(language, learnerName),
	}
}

// Greet requests the tutor's opening greeting. The system prompt instructs
// the model to greet unprompted, so the greeting turn carries no user text.
func (s *Session) Greet(ctx context.Context) (llm.Stream, error) {
	return s.send(ctx, "")
}

// SendTurn streams the tutor's reply to userText. The turn is not part of
// the committed history until Commit is called: a failed turn leaves the
// model-facing history exactly as it was.
func (s *Session) SendTurn(ctx context.Context, userText string) (llm.Stream, error) {
	return s.send(ctx, userText)
}

// Commit appends a completed turn to the model-facing history. Call it only
// after the reply stream finished cleanly. An empty userText (the greeting
// turn) commits only the tutor reply.
func (s *Session) Commit(userText, reply string) {
	if userText != "" {
		s.history = append(s.history, llm.Message{Role: llm.RoleUser, Content: userText})
	}
	s.history = append(s.history, llm.Message{Role: llm.RoleAssistant, Content: reply})
}

// History returns the committed model-facing messages.
func (s *Session) History() []llm.Message {
	return s.history
}

func (s *Session) send(ctx context.Context, userText string) (llm.Stream, error) {
	ctx = llm.WithPurpose(ctx, "chat-turn")

	messages := make([]llm.Message, 0, len(s.history)+1)
	messages = append(messages, s.history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userText})

	return s.provider.GenerateStream(ctx, llm.Request{
		System:   s.system,
		Messages: messages,
	})
}
