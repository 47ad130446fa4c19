// Package answers implements the answer book: the current exercise set
// with solutions revealed.
package answers

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoleap/internal/exercisegen"
	"github.com/abhisek/lingoleap/internal/screen"
	exscreen "github.com/abhisek/lingoleap/internal/screens/exercise"
	"github.com/abhisek/lingoleap/internal/ui/layout"
	"github.com/abhisek/lingoleap/internal/ui/theme"
)

// AnswersScreen shows the current exercise set with answers. The set is
// read through a getter so the screen always reflects the newest
// generation without explicit refresh plumbing.
type AnswersScreen struct {
	exercises func() []exercisegen.Exercise
	scroll    int
}

var _ screen.Screen = (*AnswersScreen)(nil)
var _ screen.KeyHintProvider = (*AnswersScreen)(nil)

// New creates the answer book over the given exercise source.
func New(exercises func() []exercisegen.Exercise) *AnswersScreen {
	return &AnswersScreen{exercises: exercises}
}

func (a *AnswersScreen) Title() string {
	return "Answer Book"
}

func (a *AnswersScreen) Init() tea.Cmd {
	return nil
}

func (a *AnswersScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
	}
}

func (a *AnswersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if a.scroll > 0 {
				a.scroll--
			}
		case "down", "j":
			a.scroll++
		}
	}
	return a, nil
}

func (a *AnswersScreen) View(width, height int) string {
	exercises := a.exercises()
	if len(exercises) == 0 {
		msg := theme.Hint.Render("Generate some exercises first — the answers will appear here.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Answer Book") + "\n\n")
	for i, ex := range exercises {
		b.WriteString(exscreen.RenderExercise(i, ex))
		b.WriteString(theme.Correct.Render("     Answer: "+ex.Answer) + "\n\n")
	}

	lines := strings.Split(b.String(), "\n")
	if a.scroll > len(lines)-1 {
		a.scroll = len(lines) - 1
	}
	visible := lines[a.scroll:]
	if len(visible) > height {
		visible = visible[:height]
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(visible, "\n"))
}
