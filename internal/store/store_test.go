package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "chat-turn", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true, RequestBody: "req-1", ResponseBody: "resp-1"},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz-gen", InputTokens: 200, OutputTokens: 900, LatencyMs: 2400, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "chat-turn", Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}

	// Newest first.
	if got[0].Purpose != "chat-turn" || got[0].Success {
		t.Errorf("got[0] = %+v, want failed chat-turn", got[0])
	}
	if got[2].RequestBody != "req-1" || got[2].ResponseBody != "resp-1" {
		t.Errorf("got[2] bodies = %q/%q, want req-1/resp-1", got[2].RequestBody, got[2].ResponseBody)
	}

	// Sequences strictly increasing in append order.
	if !(got[2].Sequence < got[1].Sequence && got[1].Sequence < got[0].Sequence) {
		t.Errorf("sequences not increasing: %d, %d, %d", got[2].Sequence, got[1].Sequence, got[0].Sequence)
	}
}

func TestQueryLLMEventsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "study-guide", Success: true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d events, want 2", len(got))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "grammar-guide", Success: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected non-nil event")
	}
	if e.Purpose != "grammar-guide" {
		t.Errorf("purpose = %q, want grammar-guide", e.Purpose)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "chat-turn", InputTokens: 100, OutputTokens: 50, LatencyMs: 1000, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "chat-turn", InputTokens: 300, OutputTokens: 150, LatencyMs: 3000, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-pro", Purpose: "quiz-gen", InputTokens: 50, OutputTokens: 500, LatencyMs: 5000, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d purposes, want 2", len(stats))
	}

	// Sorted alphabetically: chat-turn, quiz-gen.
	ct := stats[0]
	if ct.Purpose != "chat-turn" || ct.Calls != 2 || ct.InputTokens != 400 || ct.OutputTokens != 200 || ct.AvgLatencyMs != 2000 {
		t.Errorf("chat-turn usage = %+v", ct)
	}
	qg := stats[1]
	if qg.Purpose != "quiz-gen" || qg.Calls != 1 || qg.OutputTokens != 500 {
		t.Errorf("quiz-gen usage = %+v", qg)
	}

	models, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("got %d models, want 2", len(models))
	}
	if models[0].Model != "gemini-2.5-flash" || models[0].Calls != 2 || models[0].InputTokens != 400 {
		t.Errorf("flash usage = %+v", models[0])
	}
}

func TestAppendSessionEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:   "sess-1",
		Action:      "start",
		LearnerName: "Alex",
		LanguageID:  "french",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1",
		Action:    "end",
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	count, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("session events = %d, want 2", count)
	}
}

func TestAppendAndQueryQuizEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []QuizEventData{
		{SessionID: "sess-1", LanguageID: "french", Level: "Beginner", TotalQuestions: 10, CorrectAnswers: 6, Score: 60, Passed: false},
		{SessionID: "sess-1", LanguageID: "french", Level: "Beginner", TotalQuestions: 10, CorrectAnswers: 9, Score: 90, Passed: true},
	}
	for i, a := range attempts {
		if err := repo.AppendQuizEvent(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryQuizEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}

	// Newest first: the passing attempt.
	if !got[0].Passed || got[0].Score != 90 {
		t.Errorf("got[0] = %+v, want passed with score 90", got[0])
	}
	if got[1].Passed || got[1].CorrectAnswers != 6 {
		t.Errorf("got[1] = %+v, want failed with 6 correct", got[1])
	}
}
