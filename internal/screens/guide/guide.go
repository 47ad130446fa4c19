// Package guide implements the study book and grammar guide screens. Both
// collect a topic and level, generate markdown material, and display it;
// only the generator call differs.
package guide

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoleap/internal/catalog"
	"github.com/abhisek/lingoleap/internal/markdown"
	"github.com/abhisek/lingoleap/internal/screen"
	"github.com/abhisek/lingoleap/internal/studygen"
	"github.com/abhisek/lingoleap/internal/ui/components"
	"github.com/abhisek/lingoleap/internal/ui/layout"
	"github.com/abhisek/lingoleap/internal/ui/theme"
)

// Kind selects which guide this screen generates.
type Kind int

const (
	KindStudy Kind = iota
	KindGrammar
)

type phase int

const (
	phaseInput phase = iota
	phaseLoading
	phaseReady
)

type guideReadyMsg struct {
	content string
}

// GuideScreen generates and displays one kind of study material.
type GuideScreen struct {
	kind     Kind
	svc      *studygen.Service
	language catalog.Language

	phase    phase
	input    components.TextInput
	levelIdx int
	topic    string

	content string
	scroll  int

	// Renderer is rebuilt only when the panel width changes.
	renderer  *markdown.Renderer
	rendererW int
}

var _ screen.Screen = (*GuideScreen)(nil)
var _ screen.KeyHintProvider = (*GuideScreen)(nil)
var _ screen.TextCapturer = (*GuideScreen)(nil)

// New creates a guide screen of the given kind.
func New(kind Kind, svc *studygen.Service, language catalog.Language) *GuideScreen {
	placeholder := "Topic, e.g. Ordering food..."
	if kind == KindGrammar {
		placeholder = "Grammar topic, e.g. Past tense..."
	}
	return &GuideScreen{
		kind:     kind,
		svc:      svc,
		language: language,
		input:    components.NewTextInput(placeholder, 60),
	}
}

func (g *GuideScreen) Title() string {
	if g.kind == KindGrammar {
		return "Grammar Guide"
	}
	return "Study Book"
}

func (g *GuideScreen) Init() tea.Cmd {
	return g.input.Init()
}

// CapturingText reports whether the topic input is focused.
func (g *GuideScreen) CapturingText() bool {
	return g.phase == phaseInput
}

func (g *GuideScreen) KeyHints() []layout.KeyHint {
	switch g.phase {
	case phaseLoading:
		return []layout.KeyHint{{Key: "...", Description: "Generating"}}
	case phaseReady:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "N", Description: "New topic"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←→", Description: "Level"},
			{Key: "Enter", Description: "Generate"},
		}
	}
}

func (g *GuideScreen) generate() tea.Cmd {
	kind, svc, language := g.kind, g.svc, g.language
	topic, level := g.topic, catalog.Levels[g.levelIdx]
	return func() tea.Msg {
		var content string
		if kind == KindGrammar {
			content = svc.GrammarGuide(context.Background(), language, topic, level)
		} else {
			content = svc.StudyGuide(context.Background(), language, topic, level)
		}
		return guideReadyMsg{content: content}
	}
}

func (g *GuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case guideReadyMsg:
		g.content = msg.content
		g.phase = phaseReady
		g.scroll = 0
		return g, nil

	case tea.KeyMsg:
		switch g.phase {
		case phaseInput:
			switch msg.String() {
			case "left":
				if g.levelIdx > 0 {
					g.levelIdx--
				}
				return g, nil
			case "right":
				if g.levelIdx < len(catalog.Levels)-1 {
					g.levelIdx++
				}
				return g, nil
			case "enter":
				topic := strings.TrimSpace(g.input.Value())
				if topic == "" {
					return g, nil
				}
				g.topic = topic
				g.phase = phaseLoading
				return g, g.generate()
			}

		case phaseReady:
			switch msg.String() {
			case "up", "k":
				if g.scroll > 0 {
					g.scroll--
				}
				return g, nil
			case "down", "j":
				g.scroll++
				return g, nil
			case "n":
				g.phase = phaseInput
				g.input.Reset()
				return g, g.input.Init()
			}
			return g, nil

		case phaseLoading:
			return g, nil
		}
	}

	if g.phase == phaseInput {
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd
	}
	return g, nil
}

func (g *GuideScreen) View(width, height int) string {
	switch g.phase {
	case phaseLoading:
		msg := theme.Hint.Render("Lingo is writing your " + strings.ToLower(g.Title()) + " on \"" + g.topic + "\"...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)

	case phaseReady:
		if g.renderer == nil || g.rendererW != width {
			g.renderer = nil
			if r, err := markdown.New(width - 4); err == nil {
				g.renderer = r
			}
			g.rendererW = width
		}
		rendered := g.content
		if g.renderer != nil {
			rendered = g.renderer.Render(g.content)
		}
		lines := strings.Split(rendered, "\n")
		if g.scroll > len(lines)-1 {
			g.scroll = len(lines) - 1
		}
		visible := lines[g.scroll:]
		if len(visible) > height {
			visible = visible[:height]
		}
		return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(visible, "\n"))

	default:
		var b strings.Builder
		b.WriteString(theme.Body.Render("What would you like to study in "+g.language.Name+"?") + "\n\n")
		b.WriteString(g.input.View() + "\n\n")
		b.WriteString(renderLevelPicker(g.levelIdx))
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
