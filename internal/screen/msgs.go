package screen

import (
	"github.com/abhisek/lingoleap/internal/exercisegen"
	"github.com/abhisek/lingoleap/internal/nav"
)

// StartSessionMsg is emitted by the welcome screen once the learner has
// entered a name and picked a language.
type StartSessionMsg struct {
	Name       string
	LanguageID string
}

// EndSessionMsg requests that the current session be ended and all
// session-scoped state discarded.
type EndSessionMsg struct{}

// NavigateMsg requests a switch to another view. The root model applies
// the navigation gates; a locked view leaves the active view unchanged.
type NavigateMsg struct {
	View nav.View
}

// ExercisesReadyMsg is emitted by the exercise screen when a new exercise
// set has been generated. It replaces any previous set and unlocks the
// answer book.
type ExercisesReadyMsg struct {
	Exercises []exercisegen.Exercise
}

// QuizFinishedMsg is emitted by the quiz screen when an attempt has been
// submitted and scored.
type QuizFinishedMsg struct {
	Score   int
	Correct int
	Total   int
	Level   string
}
