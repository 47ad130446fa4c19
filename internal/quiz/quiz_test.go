package quiz

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
	lang, ok := catalog.ByID("italian")
	if !ok {
		t.Fatal("italian missing from catalog")
	}
	return lang
}

func makeQuestion(text, correct string, distractors ...string) Question {
	return Question{
		Question:      text,
		Options:       append([]string{correct}, distractors...),
		CorrectAnswer: correct,
	}
}

func mockQuiz(t *testing.T, questions []Question) llm.MockResponse {
	t.Helper()
	body, err := json.Marshal(map[string]any{"questions": questions})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return llm.MockResponse{Content: body}
}

func TestGenerateFiltersUnscorableQuestions(t *testing.T) {
	questions := make([]Question, 0, 10)
	for i := 0; i < 7; i++ {
		questions = append(questions, makeQuestion("q", "right", "a", "b", "c"))
	}
	// Three unscorable: correct answer missing from options.
	for i := 0; i < 3; i++ {
		questions = append(questions, Question{
			Question:      "bad",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: "e",
		})
	}

	mock := llm.NewMockProvider(mockQuiz(t, questions))
	svc := NewService(mock)

	got, err := svc.Generate(context.Background(), testLanguage(t), "Intermediate")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("got %d questions, want 7", len(got))
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"10-question", "Intermediate", "Italian", "4 options"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateAllUnscorable(t *testing.T) {
	mock := llm.NewMockProvider(mockQuiz(t, []Question{
		{Question: "bad", Options: []string{"a", "b"}, CorrectAnswer: "z"},
	}))
	svc := NewService(mock)

	_, err := svc.Generate(context.Background(), testLanguage(t), "Beginner")
	if !errors.Is(err, ErrNoValidQuestions) {
		t.Fatalf("err = %v, want ErrNoValidQuestions", err)
	}
}

func TestEngineFullAttempt(t *testing.T) {
	questions := []Question{
		makeQuestion("one", "A", "B", "C", "D"),
		makeQuestion("two", "B", "A", "C", "D"),
		makeQuestion("three", "C", "A", "B", "D"),
	}
	e, err := NewEngine(questions)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	// Answer q1 correctly (correct answer is at index 0).
	if err := e.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := e.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}

	// Answer q2 incorrectly.
	if err := e.Select(1); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := e.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}

	// Answer q3 correctly; makeQuestion puts the right answer first.
	if !e.OnLast() {
		t.Fatal("expected final question")
	}
	if err := e.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}

	score, err := e.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	// 2/3 correct = 66.67, rounds to 67.
	if score != 67 {
		t.Errorf("score = %d, want 67", score)
	}
	if e.CorrectCount() != 2 {
		t.Errorf("correct = %d, want 2", e.CorrectCount())
	}
	if !e.Done() {
		t.Error("expected done after submit")
	}
}

func TestEngineRequiresSelectionBeforeAdvance(t *testing.T) {
	e, err := NewEngine([]Question{
		makeQuestion("one", "A", "B"),
		makeQuestion("two", "A", "B"),
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if err := e.Advance(); err == nil {
		t.Fatal("expected error advancing without a selection")
	}

	// Reselecting before advancing replaces the choice.
	if err := e.Select(1); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := e.Select(0); err != nil {
		t.Fatalf("reselect: %v", err)
	}
	if e.Selected() != 0 {
		t.Errorf("selected = %d, want 0", e.Selected())
	}
}

func TestEngineSubmitOnlyOnce(t *testing.T) {
	e, err := NewEngine([]Question{makeQuestion("one", "A", "B")})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if err := e.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := e.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := e.Submit(); !errors.Is(err, ErrQuizComplete) {
		t.Fatalf("second submit err = %v, want ErrQuizComplete", err)
	}
	if err := e.Select(1); !errors.Is(err, ErrQuizComplete) {
		t.Fatalf("select after submit err = %v, want ErrQuizComplete", err)
	}
}

func TestEngineScoreRounding(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		correct int
		want    int
	}{
		{"perfect", 10, 10, 100},
		{"eight of ten", 10, 8, 80},
		{"one of three", 3, 1, 33},
		{"five of six", 6, 5, 83},
		{"zero", 4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := make([]Question, tt.total)
			for i := range questions {
				questions[i] = makeQuestion("q", "A", "B")
			}
			e, err := NewEngine(questions)
			if err != nil {
				t.Fatalf("new engine: %v", err)
			}

			for i := 0; i < tt.total; i++ {
				choice := 1 // wrong
				if i < tt.correct {
					choice = 0 // right
				}
				if err := e.Select(choice); err != nil {
					t.Fatalf("select %d: %v", i, err)
				}
				if !e.OnLast() {
					if err := e.Advance(); err != nil {
						t.Fatalf("advance %d: %v", i, err)
					}
				}
			}

			score, err := e.Submit()
			if err != nil {
				t.Fatalf("submit: %v", err)
			}
			if score != tt.want {
				t.Errorf("score = %d, want %d", score, tt.want)
			}
		})
	}
}

func TestEngineEmptyQuestions(t *testing.T) {
	if _, err := NewEngine(nil); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}
