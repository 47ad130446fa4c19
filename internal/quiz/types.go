package quiz

// OptionCount is the number of choices every quiz question carries.
const OptionCount = 4

// QuestionCount is how many questions the model is asked to produce.
const QuestionCount = 10

// Question is one multiple-choice quiz item.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// valid reports whether the question can be scored: the stated correct
// answer must be one of the options.
func (q Question) valid() bool {
	if q.Question == "" || q.CorrectAnswer == "" {
		return false
	}
	for _, o := range q.Options {
		if o == q.CorrectAnswer {
			return true
		}
	}
	return false
}
