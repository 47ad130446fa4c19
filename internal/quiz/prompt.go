package quiz

import (
	"fmt"

	"github.com/abhisek/lingoleap/internal/catalog"
)

func buildQuizPrompt(language catalog.Language, level string) string {
	return fmt.Sprintf(
		"Create a %d-question multiple-choice quiz for a %s learner of %s. "+
			"The questions should cover a mix of vocabulary, grammar, and basic cultural knowledge. "+
			"Each question must have %d options. One of the options must be the correct answer.",
		QuestionCount, level, language.Name, OptionCount)
}
