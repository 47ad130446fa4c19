package tutor

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/abhisek/lingoleap/internal/catalog"
	"github.com/abhisek/lingoleap/internal/llm"
)

func testLanguage(t *testing.T) catalog.Language {
	t.Helper()
	lang, ok := catalog.ByID("french")
	if !ok {
		t.Fatal("french missing from catalog")
	}
	return lang
}

func drain(t *testing.T, stream llm.Stream) (string, error) {
	t.Helper()
	defer stream.Close()
	var full string
	for {
		frag, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return full, nil
		}
		if err != nil {
			return full, err
		}
		full += frag
	}
}

func TestSessionGreetingIsEmptyUserTurn(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddStream([]string{"Bonjour", " Alex!"})

	sess := NewSession(mock, testLanguage(t), "Alex")
	stream, err := sess.Greet(context.Background())
	if err != nil {
		t.Fatalf("greet: %v", err)
	}
	reply, err := drain(t, stream)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if reply != "Bonjour Alex!" {
		t.Errorf("reply = %q, want %q", reply, "Bonjour Alex!")
	}

	if len(mock.StreamCalls) != 1 {
		t.Fatalf("stream calls = %d, want 1", len(mock.StreamCalls))
	}
	req := mock.StreamCalls[0]
	if len(req.Messages) != 1 || req.Messages[0].Content != "" {
		t.Errorf("greeting request messages = %+v, want single empty user message", req.Messages)
	}
	if req.System == "" {
		t.Error("expected non-empty system prompt")
	}
}

func TestSessionHistoryGrowsOnCommitOnly(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddStream([]string{"Très bien!"})

	sess := NewSession(mock, testLanguage(t), "Alex")

	stream, err := sess.SendTurn(context.Background(), "How do I say 'very good'?")
	if err != nil {
		t.Fatalf("send turn: %v", err)
	}
	reply, err := drain(t, stream)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}

	// Nothing committed yet.
	if len(sess.History()) != 0 {
		t.Fatalf("history = %d messages before commit, want 0", len(sess.History()))
	}

	sess.Commit("How do I say 'very good'?", reply)
	h := sess.History()
	if len(h) != 2 {
		t.Fatalf("history = %d messages after commit, want 2", len(h))
	}
	if h[0].Role != llm.RoleUser || h[1].Role != llm.RoleAssistant {
		t.Errorf("history roles = %v/%v, want user/assistant", h[0].Role, h[1].Role)
	}
}

func TestSessionFailedTurnLeavesHistoryIntact(t *testing.T) {
	mock := llm.NewMockProvider()
	rateErr := &llm.ErrRateLimit{}
	mock.AddStream([]string{"Salut!"})
	mock.AddFailingStream([]string{"Je "}, 1, rateErr)
	mock.AddStream([]string{"Oui!"})

	sess := NewSession(mock, testLanguage(t), "Alex")

	// First turn succeeds and is committed.
	stream, err := sess.SendTurn(context.Background(), "Hi")
	if err != nil {
		t.Fatalf("send turn 1: %v", err)
	}
	reply, err := drain(t, stream)
	if err != nil {
		t.Fatalf("drain 1: %v", err)
	}
	sess.Commit("Hi", reply)

	// Second turn fails mid-stream and is not committed.
	stream, err = sess.SendTurn(context.Background(), "Tell me more")
	if err != nil {
		t.Fatalf("send turn 2: %v", err)
	}
	if _, err = drain(t, stream); !errors.Is(err, rateErr) {
		t.Fatalf("drain 2 err = %v, want the injected rate limit error", err)
	}

	if len(sess.History()) != 2 {
		t.Fatalf("history = %d messages after failed turn, want 2", len(sess.History()))
	}

	// Third turn sends only the committed history plus the new message.
	stream, err = sess.SendTurn(context.Background(), "Again?")
	if err != nil {
		t.Fatalf("send turn 3: %v", err)
	}
	if _, err = drain(t, stream); err != nil {
		t.Fatalf("drain 3: %v", err)
	}

	req := mock.StreamCalls[2]
	if len(req.Messages) != 3 {
		t.Fatalf("turn 3 sent %d messages, want 3 (committed pair + new)", len(req.Messages))
	}
	if req.Messages[2].Content != "Again?" {
		t.Errorf("last message = %q, want %q", req.Messages[2].Content, "Again?")
	}
	for _, m := range req.Messages {
		if m.Content == "Tell me more" {
			t.Error("failed turn leaked into model-facing history")
		}
	}
}

func TestTranscriptTurnLifecycle(t *testing.T) {
	tr := NewTranscript()

	if err := tr.BeginTurn("Hello"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if !tr.Streaming() {
		t.Fatal("expected streaming after begin")
	}

	// Second turn while streaming is rejected.
	if err := tr.BeginTurn("Again"); !errors.Is(err, ErrTurnInFlight) {
		t.Fatalf("begin while streaming err = %v, want ErrTurnInFlight", err)
	}

	tr.AppendFragment("Bon")
	tr.AppendFragment("jour!")
	if tr.Partial() != "Bonjour!" {
		t.Errorf("partial = %q, want %q", tr.Partial(), "Bonjour!")
	}

	text := tr.FinishTurn()
	if text != "Bonjour!" {
		t.Errorf("finish = %q, want %q", text, "Bonjour!")
	}
	if tr.Streaming() {
		t.Error("expected not streaming after finish")
	}

	msgs := tr.Messages()
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	if msgs[0].Sender != SenderLearner || msgs[0].Text != "Hello" {
		t.Errorf("msgs[0] = %+v, want learner Hello", msgs[0])
	}
	if msgs[1].Sender != SenderTutor || msgs[1].Text != "Bonjour!" {
		t.Errorf("msgs[1] = %+v, want tutor Bonjour!", msgs[1])
	}
}

func TestTranscriptGreetingRecordsNoLearnerMessage(t *testing.T) {
	tr := NewTranscript()
	if err := tr.BeginTurn(""); err != nil {
		t.Fatalf("begin greeting: %v", err)
	}
	tr.AppendFragment("Hola!")
	tr.FinishTurn()

	msgs := tr.Messages()
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	if msgs[0].Sender != SenderTutor {
		t.Errorf("sender = %v, want tutor", msgs[0].Sender)
	}
}

func TestTranscriptFailTurnDropsFragments(t *testing.T) {
	tr := NewTranscript()
	if err := tr.BeginTurn("Hi"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	tr.AppendFragment("I was about to say")
	tr.FailTurn(TurnFallback)

	if tr.Streaming() {
		t.Error("expected not streaming after fail")
	}
	msgs := tr.Messages()
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	if msgs[1].Text != TurnFallback {
		t.Errorf("tutor message = %q, want fallback", msgs[1].Text)
	}

	// The transcript stays usable for the next turn.
	if err := tr.BeginTurn("Retry"); err != nil {
		t.Fatalf("begin after fail: %v", err)
	}
}

func TestTranscriptFragmentsOutsideTurnDropped(t *testing.T) {
	tr := NewTranscript()
	tr.AppendFragment("stray")
	if tr.Partial() != "" {
		t.Errorf("partial = %q, want empty", tr.Partial())
	}
	if tr.FinishTurn() != "" {
		t.Error("finish outside turn should return empty")
	}
	if len(tr.Messages()) != 0 {
		t.Errorf("messages = %d, want 0", len(tr.Messages()))
	}
}
