package nav

import "testing"

// stubGates implements Gates with settable state.
type stubGates struct {
	exercises bool
	score     int
	scored    bool
}

func (g *stubGates) HasExercises() bool { return g.exercises }
func (g *stubGates) QuizScore() (int, bool) {
	return g.score, g.scored
}

func TestDefaultView(t *testing.T) {
	n := New(&stubGates{})
	if n.Active() != ViewTeacher {
		t.Errorf("expected default view teacher, got %v", n.Active())
	}
}

func TestAnswersGatedOnExercises(t *testing.T) {
	g := &stubGates{}
	n := New(g)

	if n.Navigate(ViewAnswers) {
		t.Error("answers must be disabled without exercises")
	}
	if n.Active() != ViewTeacher {
		t.Error("failed navigation must not change the active view")
	}

	g.exercises = true
	if !n.Navigate(ViewAnswers) {
		t.Error("answers must be enabled once exercises exist")
	}
	if n.Active() != ViewAnswers {
		t.Errorf("expected active answers, got %v", n.Active())
	}
}

func TestCertificateGatedOnScore(t *testing.T) {
	tests := []struct {
		name    string
		score   int
		scored  bool
		enabled bool
	}{
		{"no quiz taken", 0, false, false},
		{"score 79 locked", 79, true, false},
		{"score 80 unlocked", 80, true, true},
		{"score 100 unlocked", 100, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(&stubGates{score: tt.score, scored: tt.scored})
			if got := n.Navigate(ViewCertificate); got != tt.enabled {
				t.Errorf("Navigate(certificate) = %v, want %v", got, tt.enabled)
			}
		})
	}
}

func TestGatesRecomputedEveryCall(t *testing.T) {
	g := &stubGates{exercises: true}
	n := New(g)

	if !n.Enabled(ViewAnswers) {
		t.Fatal("expected answers enabled")
	}

	// Gate state changes under the navigator; no stale cache allowed.
	g.exercises = false
	if n.Enabled(ViewAnswers) {
		t.Error("expected answers disabled after exercises cleared")
	}
}

func TestReset(t *testing.T) {
	g := &stubGates{exercises: true}
	n := New(g)
	n.Navigate(ViewExercise)

	n.Reset()

	if n.Active() != ViewTeacher {
		t.Errorf("expected teacher after reset, got %v", n.Active())
	}
}

func TestViewNamesClosed(t *testing.T) {
	for _, v := range Views {
		if v.Name() == "Unknown" {
			t.Errorf("view %d has no name", v)
		}
	}
}
