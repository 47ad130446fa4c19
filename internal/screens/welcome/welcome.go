// Package welcome implements the session setup screen: learner name entry
// followed by language selection.
package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoleap/internal/catalog"
	"github.com/abhisek/lingoleap/internal/screen"
	"github.com/abhisek/lingoleap/internal/ui/components"
	"github.com/abhisek/lingoleap/internal/ui/layout"
	"github.com/abhisek/lingoleap/internal/ui/theme"
)

type step int

const (
	stepName step = iota
	stepLanguage
)

// WelcomeScreen collects the learner's name and target language, then
// emits screen.StartSessionMsg.
type WelcomeScreen struct {
	step   step
	input  components.TextInput
	menu   components.Menu
	name   string
	errMsg string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen at the name entry step.
func New() *WelcomeScreen {
	w := &WelcomeScreen{
		input: components.NewTextInput("Enter your name...", 30),
	}
	return w
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.step == stepName {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose language"},
		{Key: "Enter", Description: "Start learning"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch w.step {
	case stepName:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			name := strings.TrimSpace(w.input.Value())
			if name == "" {
				w.errMsg = "Please enter your name to get started."
				return w, nil
			}
			w.name = name
			w.errMsg = ""
			w.step = stepLanguage
			w.menu = components.NewMenu(w.languageItems())
			return w, nil
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd

	case stepLanguage:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
			w.step = stepName
			return w, w.input.Init()
		}
		var cmd tea.Cmd
		w.menu, cmd = w.menu.Update(msg)
		return w, cmd
	}

	return w, nil
}

func (w *WelcomeScreen) languageItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(catalog.Languages))
	for _, lang := range catalog.Languages {
		id := lang.ID
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s  %s", lang.Flag, lang.Name),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return screen.StartSessionMsg{Name: w.name, LanguageID: id}
				}
			},
		})
	}
	return items
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")
	sections = append(sections, theme.Subtitle.Render("Leap into a new language with your personal AI tutor"))
	sections = append(sections, "")

	switch w.step {
	case stepName:
		sections = append(sections, theme.Body.Render("What should we call you?"))
		sections = append(sections, "")
		sections = append(sections, w.input.View())
		if w.errMsg != "" {
			sections = append(sections, "")
			sections = append(sections, theme.Incorrect.Render(w.errMsg))
		}

	case stepLanguage:
		sections = append(sections, theme.Body.Render(fmt.Sprintf("Nice to meet you, %s! Which language would you like to learn?", w.name)))
		sections = append(sections, "")
		sections = append(sections, w.menu.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
