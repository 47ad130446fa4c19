package exercisegen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/lingoleap/internal/catalog"
	"github.com/abhisek/lingoleap/internal/llm"
)

func testLanguage(t *testing.T) catalog.Language {
	t.Helper()
	lang, ok := catalog.ByID("german")
	if !ok {
		t.Fatal("german missing from catalog")
	}
	return lang
}

func mockResponse(t *testing.T, exercises []Exercise) llm.MockResponse {
	t.Helper()
	body, err := json.Marshal(map[string]any{"exercises": exercises})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return llm.MockResponse{Content: body}
}

func TestGenerateReturnsExercises(t *testing.T) {
	mock := llm.NewMockProvider(mockResponse(t, []Exercise{
		{Type: KindFillBlank, Question: "Ich ___ ein Buch.", Answer: "lese"},
		{Type: KindMultipleChoice, Question: "What is 'dog'?", Options: []string{"Hund", "Katze", "Vogel", "Fisch"}, Answer: "Hund"},
		{Type: KindTranslation, Question: "Translate: Good morning", Answer: "Guten Morgen"},
	}))
	svc := NewService(mock)

	got, err := svc.Generate(context.Background(), testLanguage(t), "Daily life", "Beginner")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d exercises, want 3", len(got))
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"5 diverse exercises", "Beginner", "German", `"Daily life"`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema != ExerciseSchema {
		t.Error("expected schema-constrained request")
	}
}

func TestGenerateDropsMalformedItems(t *testing.T) {
	mock := llm.NewMockProvider(mockResponse(t, []Exercise{
		{Type: KindFillBlank, Question: "Ich ___ ein Buch.", Answer: "lese"},
		{Type: "essay", Question: "Write about your day.", Answer: "n/a"},                                             // unknown kind
		{Type: KindMultipleChoice, Question: "Pick one", Options: []string{"a", "b"}, Answer: "c"},                    // answer not in options
		{Type: KindTranslation, Question: "", Answer: "Hallo"},                                                        // empty question
		{Type: KindMultipleChoice, Question: "What is 'cat'?", Options: []string{"Katze", "Hund"}, Answer: "Katze"},   // valid
	}))
	svc := NewService(mock)

	got, err := svc.Generate(context.Background(), testLanguage(t), "Animals", "Beginner")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d exercises, want 2", len(got))
	}
	if got[0].Type != KindFillBlank || got[1].Question != "What is 'cat'?" {
		t.Errorf("unexpected surviving exercises: %+v", got)
	}
}

func TestGenerateAllMalformed(t *testing.T) {
	mock := llm.NewMockProvider(mockResponse(t, []Exercise{
		{Type: "unknown", Question: "q", Answer: "a"},
	}))
	svc := NewService(mock)

	_, err := svc.Generate(context.Background(), testLanguage(t), "Animals", "Beginner")
	if !errors.Is(err, ErrNoValidExercises) {
		t.Fatalf("err = %v, want ErrNoValidExercises", err)
	}
}

func TestGenerateProviderError(t *testing.T) {
	provErr := &llm.ErrProviderUnavailable{}
	mock := llm.NewMockProvider(llm.MockResponse{Err: provErr})
	svc := NewService(mock)

	_, err := svc.Generate(context.Background(), testLanguage(t), "Animals", "Beginner")
	if !errors.Is(err, provErr) {
		t.Fatalf("err = %v, want provider error", err)
	}
}
