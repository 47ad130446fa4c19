package tutor

import "errors"

// Sender identifies who authored a transcript message.
type Sender int

const (
	SenderLearner Sender = iota
	SenderTutor
)

// Message is one finalized entry in the conversation transcript.
type Message struct {
	Sender Sender
	Text   string
}

// Fallback replies shown in place of a tutor message when a turn fails.
const (
	GreetingFallback = "Hello! I'm having a little trouble connecting right now. Please try again in a moment."
	TurnFallback     = "I'm sorry, I encountered an error. Could you please rephrase your question?"
)

// ErrTurnInFlight is returned when a new turn is started while a tutor
// reply is still streaming.
var ErrTurnInFlight = errors.New("tutor: a turn is already in flight")

// Transcript holds the display-facing conversation state. It tracks
// finalized messages plus at most one in-flight tutor reply that is
// accumulated fragment by fragment.
type Transcript struct {
	messages  []Message
	streaming bool
	partial   string
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Messages returns the finalized messages in order.
func (t *Transcript) Messages() []Message {
	return t.messages
}

// Streaming reports whether a tutor reply is currently in flight.
func (t *Transcript) Streaming() bool {
	return t.streaming
}

// Partial returns the in-flight tutor reply accumulated so far.
func (t *Transcript) Partial() string {
	return t.partial
}

// BeginTurn records the learner's message and opens a streaming slot for
// the tutor's reply. An empty userText starts a greeting turn: no learner
// message is recorded, only the tutor slot opens. Returns ErrTurnInFlight
// if a reply is already streaming.
func (t *Transcript) BeginTurn(userText string) error {
	if t.streaming {
		return ErrTurnInFlight
	}
	if userText != "" {
		t.messages = append(t.messages, Message{Sender: SenderLearner, Text: userText})
	}
	t.streaming = true
	t.partial = ""
	return nil
}

// AppendFragment adds a streamed fragment to the in-flight tutor reply.
// Fragments arriving outside a turn are dropped.
func (t *Transcript) AppendFragment(s string) {
	if !t.streaming {
		return
	}
	t.partial += s
}

// FinishTurn finalizes the in-flight reply as a tutor message and returns
// its full text.
func (t *Transcript) FinishTurn() string {
	if !t.streaming {
		return ""
	}
	text := t.partial
	t.messages = append(t.messages, Message{Sender: SenderTutor, Text: text})
	t.streaming = false
	t.partial = ""
	return text
}

// FailTurn discards the in-flight reply and records fallback as the tutor
// message instead. Any fragments received before the failure are dropped so
// the learner never sees a half-finished reply.
func (t *Transcript) FailTurn(fallback string) {
	if !t.streaming {
		return
	}
	t.messages = append(t.messages, Message{Sender: SenderTutor, Text: fallback})
	t.streaming = false
	t.partial = ""
}
