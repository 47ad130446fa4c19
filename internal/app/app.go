// Package app wires the screens, session state, and navigation gates into
// the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	cert "github.com/abhisek/lingoleap/internal/certificate"
	"github.com/abhisek/lingoleap/internal/exercisegen"
	"github.com/abhisek/lingoleap/internal/llm"
	"github.com/abhisek/lingoleap/internal/nav"
	"github.com/abhisek/lingoleap/internal/quiz"
	"github.com/abhisek/lingoleap/internal/screen"
	"github.com/abhisek/lingoleap/internal/screens/answers"
	certscreen "github.com/abhisek/lingoleap/internal/screens/certificate"
	"github.com/abhisek/lingoleap/internal/screens/exercise"
	"github.com/abhisek/lingoleap/internal/screens/guide"
	quizscreen "github.com/abhisek/lingoleap/internal/screens/quiz"
	"github.com/abhisek/lingoleap/internal/screens/teacher"
	"github.com/abhisek/lingoleap/internal/screens/welcome"
	"github.com/abhisek/lingoleap/internal/session"
	"github.com/abhisek/lingoleap/internal/store"
	"github.com/abhisek/lingoleap/internal/studygen"
	"github.com/abhisek/lingoleap/internal/tutor"
	"github.com/abhisek/lingoleap/internal/ui/layout"
	"github.com/abhisek/lingoleap/internal/ui/theme"
)

// Options carries the dependencies the app needs to run.
type Options struct {
	Provider  llm.Provider
	Events    store.EventRepo
	ExportDir string
}

// AppModel is the root Bubble Tea model. Before a session starts it shows
// the welcome screen; afterwards it hosts the seven learning views behind
// the navigation gates.
type AppModel struct {
	opts   Options
	width  int
	height int

	welcome screen.Screen

	sess      *session.Session
	sessionID string
	state     *sessionState
	navigator *nav.Navigator
	screens   map[nav.View]screen.Screen
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		opts:    opts,
		welcome: welcome.New(),
		sess:    &session.Session{},
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.welcome.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StartSessionMsg:
		return m.startSession(msg)

	case screen.EndSessionMsg:
		return m.endSession()

	case screen.NavigateMsg:
		if m.navigator != nil {
			m.navigator.Navigate(msg.View)
		}
		return m, nil

	case screen.ExercisesReadyMsg:
		if m.state != nil {
			m.state.exercises = msg.Exercises
		}
		return m, m.broadcast(msg)

	case screen.QuizFinishedMsg:
		return m.finishQuiz(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
		if m.sess.Active() {
			key := msg.String()
			if key == "ctrl+e" {
				return m.endSession()
			}
			// Bare digits switch views only when the active screen is not
			// collecting text; alt+digit always switches, so chat and topic
			// entry never swallow navigation entirely.
			if v, ok := viewForKey(key); ok {
				if strings.HasPrefix(key, "alt+") || !m.activeCapturesText() {
					m.navigator.Navigate(v)
					return m, nil
				}
			}
			return m.forwardToActive(msg)
		}
		var cmd tea.Cmd
		m.welcome, cmd = m.welcome.Update(msg)
		return m, cmd
	}

	if m.sess.Active() {
		// Async messages (stream fragments, generation results) may belong
		// to a view that is no longer active; deliver them everywhere so
		// background work keeps flowing.
		return m, m.broadcast(msg)
	}
	var cmd tea.Cmd
	m.welcome, cmd = m.welcome.Update(msg)
	return m, cmd
}

// viewForKey maps "1".."7" and "alt+1".."alt+7" to a view.
func viewForKey(key string) (nav.View, bool) {
	digit := strings.TrimPrefix(key, "alt+")
	if len(digit) == 1 && digit[0] >= '1' && digit[0] <= '0'+byte(len(nav.Views)) {
		return nav.Views[digit[0]-'1'], true
	}
	return 0, false
}

func (m AppModel) activeCapturesText() bool {
	capturer, ok := m.screens[m.navigator.Active()].(screen.TextCapturer)
	return ok && capturer.CapturingText()
}

func (m AppModel) forwardToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	active := m.navigator.Active()
	s, cmd := m.screens[active].Update(msg)
	m.screens[active] = s
	return m, cmd
}

func (m AppModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for v, s := range m.screens {
		updated, cmd := s.Update(msg)
		m.screens[v] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m AppModel) startSession(msg screen.StartSessionMsg) (tea.Model, tea.Cmd) {
	if err := m.sess.Start(msg.Name, msg.LanguageID); err != nil {
		return m, nil
	}

	m.sessionID = uuid.NewString()
	m.state = &sessionState{}
	m.navigator = nav.New(m.state)

	language := m.sess.Language()
	learner := m.sess.LearnerName()
	state := m.state

	tutorSession := tutor.NewSession(m.opts.Provider, language, learner)
	studySvc := studygen.NewService(m.opts.Provider)
	exerciseSvc := exercisegen.NewService(m.opts.Provider)
	quizSvc := quiz.NewService(m.opts.Provider)

	m.screens = map[nav.View]screen.Screen{
		nav.ViewTeacher:  teacher.New(tutorSession),
		nav.ViewStudy:    guide.New(guide.KindStudy, studySvc, language),
		nav.ViewGrammar:  guide.New(guide.KindGrammar, studySvc, language),
		nav.ViewExercise: exercise.New(exerciseSvc, language),
		nav.ViewAnswers: answers.New(func() []exercisegen.Exercise {
			return state.exercises
		}),
		nav.ViewQuiz: quizscreen.New(quizSvc, language),
		nav.ViewCertificate: certscreen.New(func() (cert.Certificate, bool) {
			score, ok := state.QuizScore()
			if !ok || score < nav.PassScore {
				return cert.Certificate{}, false
			}
			return cert.New(learner, language, score), true
		}, m.opts.ExportDir),
	}

	var cmds []tea.Cmd
	for _, s := range m.screens {
		if cmd := s.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	cmds = append(cmds, m.appendSessionEvent("start", learner, language.ID))

	return m, tea.Batch(cmds...)
}

// endSession tears the session down: all session-scoped state is
// discarded so gated views lock again on the next session.
func (m AppModel) endSession() (tea.Model, tea.Cmd) {
	eventCmd := m.appendSessionEvent("end", "", "")

	m.sess.End()
	if m.state != nil {
		m.state.reset()
	}
	m.screens = nil
	m.navigator = nil
	m.state = nil
	m.sessionID = ""
	m.welcome = welcome.New()

	return m, tea.Batch(eventCmd, m.welcome.Init())
}

func (m AppModel) finishQuiz(msg screen.QuizFinishedMsg) (tea.Model, tea.Cmd) {
	if m.state == nil {
		return m, nil
	}
	m.state.quizScore = msg.Score
	m.state.quizTaken = true

	passed := msg.Score >= nav.PassScore
	if passed {
		// A passing score walks the learner straight to their certificate.
		m.navigator.Navigate(nav.ViewCertificate)
	}

	events := m.opts.Events
	sessionID := m.sessionID
	languageID := m.sess.Language().ID
	eventCmd := func() tea.Msg {
		if events == nil {
			return nil
		}
		err := events.AppendQuizEvent(context.Background(), store.QuizEventData{
			SessionID:      sessionID,
			LanguageID:     languageID,
			Level:          msg.Level,
			TotalQuestions: msg.Total,
			CorrectAnswers: msg.Correct,
			Score:          msg.Score,
			Passed:         passed,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log quiz event: %v\n", err)
		}
		return nil
	}
	return m, eventCmd
}

func (m AppModel) appendSessionEvent(action, learner, languageID string) tea.Cmd {
	events := m.opts.Events
	sessionID := m.sessionID
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		err := events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:   sessionID,
			Action:      action,
			LearnerName: learner,
			LanguageID:  languageID,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log session event: %v\n", err)
		}
		return nil
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	var active screen.Screen
	var learner, language string
	if m.sess.Active() {
		active = m.screens[m.navigator.Active()]
		learner = m.sess.LearnerName()
		language = m.sess.Language().Flag + " " + m.sess.Language().Name
	} else {
		active = m.welcome
	}

	header := layout.RenderHeader(active.Title(), learner, language, m.width)

	hints := m.footerHints(active)
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if m.sess.Active() {
		sidebar := m.renderSidebar(contentHeight)
		panel := active.View(m.width-lipgloss.Width(sidebar), contentHeight)
		content = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, panel)
	} else {
		content = active.View(m.width, contentHeight)
	}
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

const sidebarWidth = 20

// renderSidebar lists the seven views with their number keys. Gated views
// render locked until their data exists.
func (m AppModel) renderSidebar(height int) string {
	var b strings.Builder
	for i, v := range nav.Views {
		label := fmt.Sprintf("%d %s", i+1, v.Name())
		switch {
		case v == m.navigator.Active():
			b.WriteString(theme.Selected.Render("▸ " + label))
		case !m.navigator.Enabled(v):
			b.WriteString(theme.Locked.Render("  🔒 " + v.Name()))
		default:
			b.WriteString(theme.Unselected.Render("  " + label))
		}
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(height).
		Padding(1, 1).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.Border).
		Render(b.String())
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, provider.KeyHints()...)
	}
	if m.sess.Active() {
		hints = append(hints,
			layout.KeyHint{Key: "Alt+1-7", Description: "Views"},
			layout.KeyHint{Key: "Ctrl+E", Description: "End session"},
		)
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
