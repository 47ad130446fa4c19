package llm

import "context"

type contextKey string

const purposeKey contextKey = "purpose"

// WithPurpose labels the context with what the call is for (chat-turn,
// study-guide, quiz-gen, ...) so the event log can attribute usage.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose label, or "unknown" if none was set.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
