// Package teacher implements the streaming chat screen with the AI tutor.
package teacher

import (
	"context"
	"errors"
	"io"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoleap/internal/llm"
	"github.com/abhisek/lingoleap/internal/screen"
	"github.com/abhisek/lingoleap/internal/tutor"
	"github.com/abhisek/lingoleap/internal/ui/components"
	"github.com/abhisek/lingoleap/internal/ui/layout"
	"github.com/abhisek/lingoleap/internal/ui/theme"
)

// streamCursor marks the live end of a streaming reply.
const streamCursor = "▌"

type streamOpenMsg struct {
	stream llm.Stream
}

type fragmentMsg struct {
	text string
}

type turnDoneMsg struct{}

type turnFailedMsg struct {
	err error
}

// TeacherScreen runs the chat conversation. One turn is in flight at most;
// input is ignored while the tutor is replying.
type TeacherScreen struct {
	session    *tutor.Session
	transcript *tutor.Transcript
	input      components.TextInput

	stream      llm.Stream
	pendingUser string
	greeting    bool
}

var _ screen.Screen = (*TeacherScreen)(nil)
var _ screen.KeyHintProvider = (*TeacherScreen)(nil)
var _ screen.TextCapturer = (*TeacherScreen)(nil)

// New creates the chat screen. The tutor greets the learner on entry.
func New(session *tutor.Session) *TeacherScreen {
	return &TeacherScreen{
		session:    session,
		transcript: tutor.NewTranscript(),
		input:      components.NewTextInput("Ask Lingo anything...", 200),
	}
}

func (t *TeacherScreen) Title() string {
	return "AI Teacher"
}

func (t *TeacherScreen) Init() tea.Cmd {
	t.greeting = true
	t.transcript.BeginTurn("")
	return tea.Batch(t.input.Init(), t.openGreeting())
}

// CapturingText is always true: the chat input stays focused, so digits
// typed mid-sentence belong to the message, not to view switching.
func (t *TeacherScreen) CapturingText() bool {
	return true
}

func (t *TeacherScreen) KeyHints() []layout.KeyHint {
	if t.transcript.Streaming() {
		return []layout.KeyHint{
			{Key: "...", Description: "Lingo is typing"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
	}
}

func (t *TeacherScreen) openGreeting() tea.Cmd {
	return func() tea.Msg {
		stream, err := t.session.Greet(context.Background())
		if err != nil {
			return turnFailedMsg{err: err}
		}
		return streamOpenMsg{stream: stream}
	}
}

func (t *TeacherScreen) openTurn(text string) tea.Cmd {
	return func() tea.Msg {
		stream, err := t.session.SendTurn(context.Background(), text)
		if err != nil {
			return turnFailedMsg{err: err}
		}
		return streamOpenMsg{stream: stream}
	}
}

func (t *TeacherScreen) readNext() tea.Cmd {
	stream := t.stream
	return func() tea.Msg {
		frag, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return turnDoneMsg{}
		}
		if err != nil {
			return turnFailedMsg{err: err}
		}
		return fragmentMsg{text: frag}
	}
}

func (t *TeacherScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case streamOpenMsg:
		t.stream = msg.stream
		return t, t.readNext()

	case fragmentMsg:
		t.transcript.AppendFragment(msg.text)
		return t, t.readNext()

	case turnDoneMsg:
		reply := t.transcript.FinishTurn()
		t.session.Commit(t.pendingUser, reply)
		t.closeStream()
		return t, nil

	case turnFailedMsg:
		fallback := tutor.TurnFallback
		if t.greeting && len(t.transcript.Messages()) == 0 {
			fallback = tutor.GreetingFallback
		}
		t.transcript.FailTurn(fallback)
		t.closeStream()
		return t, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && !t.transcript.Streaming() {
			text := strings.TrimSpace(t.input.Value())
			if text == "" {
				return t, nil
			}
			if err := t.transcript.BeginTurn(text); err != nil {
				return t, nil
			}
			t.pendingUser = text
			t.greeting = false
			t.input.Reset()
			return t, t.openTurn(text)
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t *TeacherScreen) closeStream() {
	if t.stream != nil {
		t.stream.Close()
		t.stream = nil
	}
}

func (t *TeacherScreen) View(width, height int) string {
	learnerStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	tutorStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 4)

	var lines []string
	for _, m := range t.transcript.Messages() {
		switch m.Sender {
		case tutor.SenderLearner:
			lines = append(lines, learnerStyle.Render("You"))
		case tutor.SenderTutor:
			lines = append(lines, tutorStyle.Render("Lingo"))
		}
		lines = append(lines, strings.Split(bodyStyle.Render(m.Text), "\n")...)
		lines = append(lines, "")
	}

	if t.transcript.Streaming() {
		lines = append(lines, tutorStyle.Render("Lingo"))
		lines = append(lines, strings.Split(bodyStyle.Render(t.transcript.Partial()+streamCursor), "\n")...)
		lines = append(lines, "")
	}

	// Reserve two rows for the input line at the bottom.
	chatHeight := height - 2
	if chatHeight < 1 {
		chatHeight = 1
	}
	if len(lines) > chatHeight {
		lines = lines[len(lines)-chatHeight:]
	}

	chat := strings.Join(lines, "\n")
	chat = lipgloss.NewStyle().Width(width).Height(chatHeight).Padding(0, 2).Render(chat)

	return chat + "\n" + lipgloss.NewStyle().Padding(0, 2).Render(t.input.View())
}
