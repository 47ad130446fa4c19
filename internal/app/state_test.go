package app

import (
	"testing"

	"github.com/abhisek/lingoleap/internal/exercisegen"
	"github.com/abhisek/lingoleap/internal/nav"
)

func TestGatesFollowState(t *testing.T) {
	state := &sessionState{}
	navigator := nav.New(state)

	if navigator.Enabled(nav.ViewAnswers) {
		t.Error("answers should be locked with no exercises")
	}
	if navigator.Enabled(nav.ViewCertificate) {
		t.Error("certificate should be locked before any quiz")
	}

	state.exercises = []exercisegen.Exercise{{
		Type:     exercisegen.KindTranslation,
		Question: "Translate: hello",
		Answer:   "hola",
	}}
	if !navigator.Enabled(nav.ViewAnswers) {
		t.Error("answers should unlock once exercises exist")
	}

	state.quizScore = 70
	state.quizTaken = true
	if navigator.Enabled(nav.ViewCertificate) {
		t.Error("certificate should stay locked below the pass mark")
	}

	state.quizScore = 80
	if !navigator.Enabled(nav.ViewCertificate) {
		t.Error("certificate should unlock at the pass mark")
	}
}

func TestResetLocksGatedViews(t *testing.T) {
	state := &sessionState{
		exercises: []exercisegen.Exercise{{Type: exercisegen.KindTranslation, Question: "q", Answer: "a"}},
		quizScore: 90,
		quizTaken: true,
	}
	navigator := nav.New(state)
	navigator.Navigate(nav.ViewCertificate)

	state.reset()
	navigator.Reset()

	if navigator.Active() != nav.DefaultView {
		t.Error("reset should return to the default view")
	}
	if navigator.Enabled(nav.ViewAnswers) || navigator.Enabled(nav.ViewCertificate) {
		t.Error("gated views should lock again after reset")
	}
}
