package session

import (
	"errors"
	"testing"
)

func TestStartValidation(t *testing.T) {
	tests := []struct {
		name     string
		learner  string
		language string
		wantErr  error
	}{
		{"valid", "Ana", "spanish", nil},
		{"name needs trimming", "  Ana  ", "spanish", nil},
		{"empty name", "", "spanish", ErrEmptyName},
		{"whitespace name", "   ", "spanish", ErrEmptyName},
		{"no language", "Ana", "", ErrNoLanguage},
		{"unknown language", "Ana", "klingon", ErrNoLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Session
			err := s.Start(tt.learner, tt.language)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Start() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if s.Active() {
					t.Error("failed Start must leave session inactive")
				}
				if s.LearnerName() != "" || s.Language().ID != "" {
					t.Error("failed Start must not set any field")
				}
				return
			}
			if !s.Active() {
				t.Error("expected active session")
			}
			if s.LearnerName() != "Ana" {
				t.Errorf("expected trimmed name 'Ana', got %q", s.LearnerName())
			}
			if s.Language().ID != "spanish" {
				t.Errorf("expected language 'spanish', got %q", s.Language().ID)
			}
		})
	}
}

func TestEndClearsEverything(t *testing.T) {
	var s Session
	if err := s.Start("Ana", "french"); err != nil {
		t.Fatal(err)
	}

	s.End()

	if s.Active() {
		t.Error("expected inactive session after End")
	}
	if s.LearnerName() != "" || s.Language().ID != "" {
		t.Error("expected cleared fields after End")
	}
}
