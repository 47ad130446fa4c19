package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingoleap/internal/catalog"
	"github.com/abhisek/lingoleap/internal/screen"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestEmptyNameRejected(t *testing.T) {
	w := New()

	w.Update(specialKey(tea.KeyEnter))

	if w.step != stepName {
		t.Fatal("empty name should not advance past name entry")
	}
	view := w.View(80, 24)
	if !strings.Contains(view, "Please enter your name to get started.") {
		t.Error("expected validation message in view")
	}
}

func TestWhitespaceNameRejected(t *testing.T) {
	w := New()
	w.input.SetValue("   ")

	w.Update(specialKey(tea.KeyEnter))

	if w.step != stepName {
		t.Error("whitespace-only name should not advance past name entry")
	}
}

func TestNameAdvancesToLanguageStep(t *testing.T) {
	w := New()
	w.input.SetValue("  Ana ")

	w.Update(specialKey(tea.KeyEnter))

	if w.step != stepLanguage {
		t.Fatal("expected language step after entering a name")
	}
	if w.name != "Ana" {
		t.Errorf("expected trimmed name %q, got %q", "Ana", w.name)
	}
	view := w.View(80, 24)
	if !strings.Contains(view, "Ana") {
		t.Error("language step should greet the learner by name")
	}
	if len(w.menu.Items) != len(catalog.Languages) {
		t.Errorf("expected %d language items, got %d", len(catalog.Languages), len(w.menu.Items))
	}
}

func TestLanguageSelectionStartsSession(t *testing.T) {
	w := New()
	w.input.SetValue("Ana")
	w.Update(specialKey(tea.KeyEnter))

	// Move to the second language, then confirm.
	w.Update(specialKey(tea.KeyDown))
	_, cmd := w.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from language selection")
	}

	msg, ok := cmd().(screen.StartSessionMsg)
	if !ok {
		t.Fatalf("expected StartSessionMsg, got %T", cmd())
	}
	if msg.Name != "Ana" {
		t.Errorf("expected name Ana, got %q", msg.Name)
	}
	if msg.LanguageID != catalog.Languages[1].ID {
		t.Errorf("expected language %q, got %q", catalog.Languages[1].ID, msg.LanguageID)
	}
}

func TestEscReturnsToNameStep(t *testing.T) {
	w := New()
	w.input.SetValue("Ana")
	w.Update(specialKey(tea.KeyEnter))

	w.Update(specialKey(tea.KeyEscape))

	if w.step != stepName {
		t.Error("esc should return to name entry")
	}
}
