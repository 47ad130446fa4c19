package nav

// View identifies one of the seven learning panels. Exactly one view is
// active at a time. Adding a view means extending this enum and every
// switch over it — there is no open-ended dispatch.
type View int

const (
	ViewTeacher View = iota
	ViewStudy
	ViewGrammar
	ViewExercise
	ViewAnswers
	ViewQuiz
	ViewCertificate
)

// DefaultView is the panel shown when a session starts.
const DefaultView = ViewTeacher

// PassScore is the minimum quiz score that unlocks the certificate.
const PassScore = 80

// Views lists all views in sidebar order.
var Views = []View{
	ViewTeacher,
	ViewStudy,
	ViewGrammar,
	ViewExercise,
	ViewAnswers,
	ViewQuiz,
	ViewCertificate,
}

// Name returns the sidebar label for the view.
func (v View) Name() string {
	switch v {
	case ViewTeacher:
		return "AI Teacher"
	case ViewStudy:
		return "Study Book"
	case ViewGrammar:
		return "Grammar Guide"
	case ViewExercise:
		return "Exercise Book"
	case ViewAnswers:
		return "Answer Book"
	case ViewQuiz:
		return "Take a Quiz"
	case ViewCertificate:
		return "Certificate"
	}
	return "Unknown"
}

// Gates exposes the data preconditions that enable gated views.
// Enablement is always recomputed from this source — never cached — so
// the gate cannot drift from the underlying exercise/quiz state.
type Gates interface {
	// HasExercises reports whether a non-empty exercise set exists.
	HasExercises() bool

	// QuizScore returns the last quiz score, or false if no quiz has
	// been completed this session.
	QuizScore() (int, bool)
}

// Navigator tracks the active view and applies the enablement gates.
type Navigator struct {
	gates  Gates
	active View
}

// New creates a Navigator starting at the default view.
func New(gates Gates) *Navigator {
	return &Navigator{gates: gates, active: DefaultView}
}

// Active returns the currently displayed view.
func (n *Navigator) Active() View {
	return n.active
}

// Enabled reports whether v can be navigated to right now.
func (n *Navigator) Enabled(v View) bool {
	switch v {
	case ViewAnswers:
		return n.gates.HasExercises()
	case ViewCertificate:
		score, ok := n.gates.QuizScore()
		return ok && score >= PassScore
	default:
		return true
	}
}

// Navigate switches to v and reports whether the switch happened.
// Navigating to a disabled view is a no-op.
func (n *Navigator) Navigate(v View) bool {
	if !n.Enabled(v) {
		return false
	}
	n.active = v
	return true
}

// Reset returns the navigator to the default view. Used on session reset,
// after which the gated views are disabled again because their underlying
// data is gone.
func (n *Navigator) Reset() {
	n.active = DefaultView
}
