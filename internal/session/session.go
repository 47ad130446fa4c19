package session

import (
	"errors"
	"strings"

	"github.com/abhisek/lingoleap/internal/catalog"
)

var (
	// ErrEmptyName is returned when the learner name trims to nothing.
	ErrEmptyName = errors.New("learner name is required")

	// ErrNoLanguage is returned when no catalog language was chosen.
	ErrNoLanguage = errors.New("a language must be selected")
)

// Session holds the learner identity for one learning engagement:
// display name plus chosen target language. Both fields are set together
// by Start and cleared together by End; no partial state is observable.
type Session struct {
	learnerName string
	language    catalog.Language
	active      bool
}

// Start establishes the session. The name is trimmed before validation.
// On error the session is left unchanged.
func (s *Session) Start(name, languageID string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	lang, ok := catalog.ByID(languageID)
	if !ok {
		return ErrNoLanguage
	}

	s.learnerName = trimmed
	s.language = lang
	s.active = true
	return nil
}

// End clears the session, returning the app to its pre-session state.
func (s *Session) End() {
	*s = Session{}
}

// Active reports whether a session is established.
func (s *Session) Active() bool {
	return s.active
}

// LearnerName returns the trimmed learner display name.
func (s *Session) LearnerName() string {
	return s.learnerName
}

// Language returns the chosen target language.
func (s *Session) Language() catalog.Language {
	return s.language
}
