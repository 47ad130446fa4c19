package markdown

import (
	"strings"
	"testing"
)

func TestRenderKeepsContent(t *testing.T) {
	r, err := New(80)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	src := "# Greetings\n\nLearn to say **Bonjour** in French.\n\n* Bonjour\n* Salut\n\n1. Practice daily\n2. Speak out loud"
	out := r.Render(src)

	for _, want := range []string{"Greetings", "Bonjour", "Salut", "Practice daily", "Speak out loud"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestRenderEmptySource(t *testing.T) {
	r, err := New(80)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	// Should not panic or error on empty input.
	_ = r.Render("")
}

func TestNewClampsNarrowWidth(t *testing.T) {
	r, err := New(5)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if r.Width() != 20 {
		t.Errorf("width = %d, want 20", r.Width())
	}
}
