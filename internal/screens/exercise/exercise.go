// Package exercise implements the exercise book screen: topic and level
// entry, generation, and display of the resulting exercise set.
package exercise

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoleap/internal/catalog"
	"github.com/abhisek/lingoleap/internal/exercisegen"
	"github.com/abhisek/lingoleap/internal/screen"
	"github.com/abhisek/lingoleap/internal/ui/components"
	"github.com/abhisek/lingoleap/internal/ui/layout"
	"github.com/abhisek/lingoleap/internal/ui/theme"
)

type phase int

const (
	phaseInput phase = iota
	phaseLoading
	phaseReady
	phaseFailed
)

type exercisesMsg struct {
	exercises []exercisegen.Exercise
	err       error
}

// ExerciseScreen generates and displays practice exercises. Answers are
// hidden here; the answer book shows them.
type ExerciseScreen struct {
	svc      *exercisegen.Service
	language catalog.Language

	phase    phase
	input    components.TextInput
	levelIdx int
	topic    string

	exercises []exercisegen.Exercise
	scroll    int
}

var _ screen.Screen = (*ExerciseScreen)(nil)
var _ screen.KeyHintProvider = (*ExerciseScreen)(nil)
var _ screen.TextCapturer = (*ExerciseScreen)(nil)

// New creates the exercise book screen.
func New(svc *exercisegen.Service, language catalog.Language) *ExerciseScreen {
	return &ExerciseScreen{
		svc:      svc,
		language: language,
		input:    components.NewTextInput("Topic, e.g. Travel phrases...", 60),
	}
}

func (e *ExerciseScreen) Title() string {
	return "Exercise Book"
}

func (e *ExerciseScreen) Init() tea.Cmd {
	return e.input.Init()
}

// CapturingText reports whether the topic input is focused.
func (e *ExerciseScreen) CapturingText() bool {
	return e.phase == phaseInput
}

func (e *ExerciseScreen) KeyHints() []layout.KeyHint {
	switch e.phase {
	case phaseLoading:
		return []layout.KeyHint{{Key: "...", Description: "Generating"}}
	case phaseReady:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "N", Description: "New set"},
		}
	case phaseFailed:
		return []layout.KeyHint{{Key: "Enter", Description: "Try again"}}
	default:
		return []layout.KeyHint{
			{Key: "←→", Description: "Level"},
			{Key: "Enter", Description: "Generate"},
		}
	}
}

func (e *ExerciseScreen) generate() tea.Cmd {
	svc, language := e.svc, e.language
	topic, level := e.topic, catalog.Levels[e.levelIdx]
	return func() tea.Msg {
		exercises, err := svc.Generate(context.Background(), language, topic, level)
		return exercisesMsg{exercises: exercises, err: err}
	}
}

func (e *ExerciseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exercisesMsg:
		if msg.err != nil {
			e.phase = phaseFailed
			return e, nil
		}
		e.exercises = msg.exercises
		e.phase = phaseReady
		e.scroll = 0
		return e, func() tea.Msg {
			return screen.ExercisesReadyMsg{Exercises: msg.exercises}
		}

	case tea.KeyMsg:
		switch e.phase {
		case phaseInput:
			switch msg.String() {
			case "left":
				if e.levelIdx > 0 {
					e.levelIdx--
				}
				return e, nil
			case "right":
				if e.levelIdx < len(catalog.Levels)-1 {
					e.levelIdx++
				}
				return e, nil
			case "enter":
				topic := strings.TrimSpace(e.input.Value())
				if topic == "" {
					return e, nil
				}
				e.topic = topic
				e.phase = phaseLoading
				return e, e.generate()
			}

		case phaseReady:
			switch msg.String() {
			case "up", "k":
				if e.scroll > 0 {
					e.scroll--
				}
			case "down", "j":
				e.scroll++
			case "n":
				e.phase = phaseInput
				e.input.Reset()
				return e, e.input.Init()
			}
			return e, nil

		case phaseFailed:
			if msg.String() == "enter" {
				e.phase = phaseInput
				return e, e.input.Init()
			}
			return e, nil

		case phaseLoading:
			return e, nil
		}
	}

	if e.phase == phaseInput {
		var cmd tea.Cmd
		e.input, cmd = e.input.Update(msg)
		return e, cmd
	}
	return e, nil
}

// RenderExercise renders one exercise without its answer. Shared with the
// answer book, which appends the answer line.
func RenderExercise(i int, ex exercisegen.Exercise) string {
	var b strings.Builder

	kind := theme.Hint.Render("(" + ex.Type + ")")
	b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf("%d. %s ", i+1, ex.Question)) + kind + "\n")

	if ex.Type == exercisegen.KindMultipleChoice {
		for j, opt := range ex.Options {
			b.WriteString(theme.Unselected.Render(fmt.Sprintf("     %c)  %s", 'a'+j, opt)) + "\n")
		}
	}
	return b.String()
}

func (e *ExerciseScreen) View(width, height int) string {
	switch e.phase {
	case phaseLoading:
		msg := theme.Hint.Render("Building exercises on \"" + e.topic + "\"...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)

	case phaseFailed:
		msg := theme.Incorrect.Render(exercisegen.GenerationError)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)

	case phaseReady:
		var b strings.Builder
		b.WriteString(theme.Title.Render("Exercises: "+e.topic) + "\n\n")
		for i, ex := range e.exercises {
			b.WriteString(RenderExercise(i, ex) + "\n")
		}
		b.WriteString(theme.Hint.Render("Answers are waiting in the Answer Book."))

		lines := strings.Split(b.String(), "\n")
		if e.scroll > len(lines)-1 {
			e.scroll = len(lines) - 1
		}
		visible := lines[e.scroll:]
		if len(visible) > height {
			visible = visible[:height]
		}
		return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(visible, "\n"))

	default:
		var b strings.Builder
		b.WriteString(theme.Body.Render("Pick a topic for your "+e.language.Name+" exercises.") + "\n\n")
		b.WriteString(e.input.View() + "\n\n")
		b.WriteString(renderLevelPicker(e.levelIdx))
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
