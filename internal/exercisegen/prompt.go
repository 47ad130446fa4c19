package exercisegen

import (
	"fmt"

	"github.com/abhisek/lingoleap/internal/catalog"
)

func buildExercisePrompt(language catalog.Language, topic, level string) string {
	return fmt.Sprintf(
		`Generate 5 diverse exercises for a %s learner of %s on the topic: "%s". `+
			`Include a mix of fill-in-the-blank, multiple choice, and translation exercises. `+
			`For fill-in-the-blank, use "___" for the blank.`,
		level, language.Name, topic)
}
