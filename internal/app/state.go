package app

import (
	"github.com/abhisek/lingoleap/internal/exercisegen"
	"github.com/abhisek/lingoleap/internal/nav"
)

// sessionState holds the data the gated views depend on. It is the single
// source of truth the navigator reads, so view enablement can never drift
// from the actual exercise and quiz state.
type sessionState struct {
	exercises []exercisegen.Exercise
	quizScore int
	quizTaken bool
}

var _ nav.Gates = (*sessionState)(nil)

func (s *sessionState) HasExercises() bool {
	return len(s.exercises) > 0
}

func (s *sessionState) QuizScore() (int, bool) {
	if !s.quizTaken {
		return 0, false
	}
	return s.quizScore, true
}

func (s *sessionState) reset() {
	*s = sessionState{}
}
