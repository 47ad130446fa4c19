package studygen

import (
	"fmt"

	"github.com/abhisek/lingoleap/internal/catalog"
)

func buildStudyGuidePrompt(language catalog.Language, topic, level string) string {
	return fmt.Sprintf(`Generate a study guide for a %s learner of %s on the topic of "%s".
The guide should be well-structured.
Include:
1. A clear explanation of the concept.
2. Key vocabulary with translations.
3. Several example sentences demonstrating usage.
4. A short, encouraging summary.
Format the output using markdown-style headers, lists, and bold text for clarity.`,
		level, language.Name, topic)
}

func buildGrammarGuidePrompt(language catalog.Language, topic, level string) string {
	return fmt.Sprintf(`Generate a detailed grammar guide for a %s learner of %s on the topic of "%s".
The guide must be easy to understand and well-structured.
Include:
1. A clear explanation of the grammar rule(s).
2. Several example sentences showing correct usage, with translations to English.
3. Common mistakes or pitfalls to avoid.
4. A short summary with key takeaways.
Format the output using markdown-style headers, lists, and bold text for clarity.`,
		level, language.Name, topic)
}
