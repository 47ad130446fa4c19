package catalog

import "testing"

func TestByID(t *testing.T) {
	lang, ok := ByID("french")
	if !ok {
		t.Fatal("expected french to exist")
	}
	if lang.Name != "French" {
		t.Errorf("expected name 'French', got %q", lang.Name)
	}

	if _, ok := ByID("klingon"); ok {
		t.Error("expected unknown id to miss")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, l := range Languages {
		if seen[l.ID] {
			t.Errorf("duplicate language id %q", l.ID)
		}
		seen[l.ID] = true
		if l.ID == "" || l.Name == "" || l.Flag == "" {
			t.Errorf("incomplete catalog entry: %+v", l)
		}
	}
}
