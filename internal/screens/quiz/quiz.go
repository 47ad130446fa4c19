// Package quiz implements the quiz screen: level selection, generation,
// one-question-at-a-time answering, and the scored result.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoleap/internal/catalog"
	"github.com/abhisek/lingoleap/internal/nav"
	quizengine "github.com/abhisek/lingoleap/internal/quiz"
	"github.com/abhisek/lingoleap/internal/screen"
	"github.com/abhisek/lingoleap/internal/ui/components"
	"github.com/abhisek/lingoleap/internal/ui/layout"
	"github.com/abhisek/lingoleap/internal/ui/theme"
)

type phase int

const (
	phaseLevel phase = iota
	phaseLoading
	phaseTaking
	phaseFailed
	phaseResult
)

type quizMsg struct {
	questions []quizengine.Question
	err       error
}

// QuizScreen runs one quiz attempt end to end.
type QuizScreen struct {
	svc      *quizengine.Service
	language catalog.Language

	phase    phase
	levelIdx int
	engine   *quizengine.Engine
	choice   components.MultiChoice

	score   int
	correct int
	total   int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen at level selection.
func New(svc *quizengine.Service, language catalog.Language) *QuizScreen {
	return &QuizScreen{svc: svc, language: language}
}

func (q *QuizScreen) Title() string {
	return "Take a Quiz"
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseLoading:
		return []layout.KeyHint{{Key: "...", Description: "Preparing your quiz"}}
	case phaseTaking:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Lock in"},
		}
	case phaseFailed:
		return []layout.KeyHint{{Key: "Enter", Description: "Try again"}}
	case phaseResult:
		return []layout.KeyHint{{Key: "Enter", Description: "New attempt"}}
	default:
		return []layout.KeyHint{
			{Key: "←→", Description: "Level"},
			{Key: "Enter", Description: "Start"},
		}
	}
}

func (q *QuizScreen) generate() tea.Cmd {
	svc, language, level := q.svc, q.language, catalog.Levels[q.levelIdx]
	return func() tea.Msg {
		questions, err := svc.Generate(context.Background(), language, level)
		return quizMsg{questions: questions, err: err}
	}
}

func (q *QuizScreen) loadCurrent() {
	question, _ := q.engine.Current()
	q.choice = components.NewMultiChoice(question.Question, question.Options, -1)
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizMsg:
		if msg.err != nil {
			q.phase = phaseFailed
			return q, nil
		}
		engine, err := quizengine.NewEngine(msg.questions)
		if err != nil {
			q.phase = phaseFailed
			return q, nil
		}
		q.engine = engine
		q.phase = phaseTaking
		q.loadCurrent()
		return q, nil

	case tea.KeyMsg:
		switch q.phase {
		case phaseLevel:
			switch msg.String() {
			case "left":
				if q.levelIdx > 0 {
					q.levelIdx--
				}
			case "right":
				if q.levelIdx < len(catalog.Levels)-1 {
					q.levelIdx++
				}
			case "enter":
				q.phase = phaseLoading
				return q, q.generate()
			}
			return q, nil

		case phaseTaking:
			return q.updateTaking(msg)

		case phaseFailed:
			if msg.String() == "enter" {
				q.phase = phaseLevel
			}
			return q, nil

		case phaseResult:
			if msg.String() == "enter" {
				q.phase = phaseLevel
				q.engine = nil
			}
			return q, nil

		case phaseLoading:
			return q, nil
		}
	}

	return q, nil
}

func (q *QuizScreen) updateTaking(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	q.choice, cmd = q.choice.Update(msg)

	if !q.choice.Submitted {
		return q, cmd
	}

	// A choice was locked in: record it and either advance or submit.
	if err := q.engine.Select(q.choice.ChosenIndex); err != nil {
		return q, cmd
	}

	if !q.engine.OnLast() {
		if err := q.engine.Advance(); err != nil {
			return q, cmd
		}
		q.loadCurrent()
		return q, cmd
	}

	score, err := q.engine.Submit()
	if err != nil {
		return q, cmd
	}
	q.score = score
	q.correct = q.engine.CorrectCount()
	q.total = q.engine.Total()
	q.phase = phaseResult

	level := catalog.Levels[q.levelIdx]
	return q, func() tea.Msg {
		return screen.QuizFinishedMsg{
			Score:   score,
			Correct: q.correct,
			Total:   q.total,
			Level:   level,
		}
	}
}

func (q *QuizScreen) View(width, height int) string {
	switch q.phase {
	case phaseLoading:
		msg := theme.Hint.Render("Preparing a " + catalog.Levels[q.levelIdx] + " quiz in " + q.language.Name + "...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)

	case phaseFailed:
		msg := theme.Incorrect.Render(quizengine.GenerationError)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)

	case phaseTaking:
		_, idx := q.engine.Current()
		progress := components.NewProgressBar(
			fmt.Sprintf("Question %d of %d", idx+1, q.engine.Total()),
			float64(idx)/float64(q.engine.Total()),
			false,
			width-8,
		)

		var b strings.Builder
		b.WriteString(progress.View() + "\n\n")
		b.WriteString(q.choice.View())
		return lipgloss.NewStyle().Padding(1, 2).Render(b.String())

	case phaseResult:
		var b strings.Builder
		b.WriteString(theme.Title.Render("Quiz Complete!") + "\n\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("You answered %d of %d correctly.", q.correct, q.total)) + "\n\n")

		scoreStyle := theme.Incorrect
		if q.score >= nav.PassScore {
			scoreStyle = theme.Correct
		}
		b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d%%", q.score)) + "\n\n")

		if q.score >= nav.PassScore {
			b.WriteString(theme.Body.Render("Congratulations — your certificate is unlocked!"))
		} else {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("Score %d%% or higher to unlock your certificate. Keep going!", nav.PassScore)))
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())

	default:
		var b strings.Builder
		b.WriteString(theme.Body.Render("Choose your quiz level.") + "\n\n")
		b.WriteString(renderLevelPicker(q.levelIdx) + "\n\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d questions. Score %d%%+ to earn your certificate.", quizengine.QuestionCount, nav.PassScore)))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}
}

func renderLevelPicker(selected int) string {
	parts := make([]string, 0, len(catalog.Levels))
	for i, level := range catalog.Levels {
		if i == selected {
			parts = append(parts, theme.Selected.Render("[ "+level+" ]"))
		} else {
			parts = append(parts, theme.Unselected.Render("  "+level+"  "))
		}
	}
	return strings.Join(parts, " ")
}
