package exercisegen

// Exercise kinds, matching the values the model is asked to emit.
const (
	KindFillBlank      = "fill-in-the-blank"
	KindMultipleChoice = "multiple-choice"
	KindTranslation    = "translation"
)

// Exercise is one practice item. Options is set only for multiple-choice.
type Exercise struct {
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer"`
}

// validKind reports whether t is one of the known exercise kinds.
func validKind(t string) bool {
	switch t {
	case KindFillBlank, KindMultipleChoice, KindTranslation:
		return true
	}
	return false
}

// valid reports whether the exercise is well-formed enough to show. A
// multiple-choice item additionally needs options that contain the answer.
func (e Exercise) valid() bool {
	if !validKind(e.Type) || e.Question == "" || e.Answer == "" {
		return false
	}
	if e.Type == KindMultipleChoice {
		if len(e.Options) < 2 {
			return false
		}
		found := false
		for _, o := range e.Options {
			if o == e.Answer {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
