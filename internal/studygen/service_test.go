package studygen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/lingoleap/internal/catalog"
	"github.com/abhisek/lingoleap/internal/llm"
)

func testLanguage(t *testing.T) catalog.Language {
	t.Helper()
	lang, ok := catalog.ByID("japanese")
	if !ok {
		t.Fatal("japanese missing from catalog")
	}
	return lang
}

func TestStudyGuideReturnsContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("# Counting\n\nNumbers one to ten."),
	})
	svc := NewService(mock)

	got := svc.StudyGuide(context.Background(), testLanguage(t), "Numbers", "Beginner")
	if !strings.Contains(got, "Counting") {
		t.Errorf("guide = %q, want generated content", got)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Beginner", "Japanese", `"Numbers"`, "study guide"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestStudyGuideFallbackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock)

	got := svc.StudyGuide(context.Background(), testLanguage(t), "Numbers", "Beginner")
	if got != StudyGuideFallback {
		t.Errorf("guide = %q, want fallback", got)
	}
}

func TestStudyGuideFallbackOnEmptyContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("   \n"),
	})
	svc := NewService(mock)

	got := svc.StudyGuide(context.Background(), testLanguage(t), "Numbers", "Beginner")
	if got != StudyGuideFallback {
		t.Errorf("guide = %q, want fallback", got)
	}
}

func TestGrammarGuideUsesOwnPromptAndFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("# Particles\n\nWa vs ga."),
	})
	svc := NewService(mock)

	got := svc.GrammarGuide(context.Background(), testLanguage(t), "Particles", "Advanced")
	if !strings.Contains(got, "Particles") {
		t.Errorf("guide = %q, want generated content", got)
	}
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"grammar guide", "Advanced", "Common mistakes"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Exhausted queue: next call falls back, never errors.
	got = svc.GrammarGuide(context.Background(), testLanguage(t), "Particles", "Advanced")
	if got != GrammarGuideFallback {
		t.Errorf("guide = %q, want fallback", got)
	}
}
