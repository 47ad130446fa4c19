package quiz

import (
	"errors"
	"math"
)

// Engine walks a learner through one quiz attempt: one question at a time,
// an answer selected before advancing, and a single final score.
type Engine struct {
	questions []Question
	answers   []int // selected option index per question, -1 = unanswered
	current   int
	done      bool
	score     int
}

// ErrNoQuestions is returned when an engine is started with an empty set.
var ErrNoQuestions = errors.New("quiz: cannot start with no questions")

// ErrQuizComplete is returned by mutating calls after Submit.
var ErrQuizComplete = errors.New("quiz: attempt already completed")

// NewEngine starts an attempt over the given questions.
func NewEngine(questions []Question) (*Engine, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = -1
	}
	return &Engine{questions: questions, answers: answers}, nil
}

// Current returns the question under consideration and its index.
func (e *Engine) Current() (Question, int) {
	return e.questions[e.current], e.current
}

// Total returns the number of questions in the attempt.
func (e *Engine) Total() int {
	return len(e.questions)
}

// Selected returns the chosen option index for the current question,
// or -1 if none is selected yet.
func (e *Engine) Selected() int {
	return e.answers[e.current]
}

// Select records the option choice for the current question. Selecting
// again before advancing replaces the previous choice.
func (e *Engine) Select(option int) error {
	if e.done {
		return ErrQuizComplete
	}
	if option < 0 || option >= len(e.questions[e.current].Options) {
		return errors.New("quiz: option index out of range")
	}
	e.answers[e.current] = option
	return nil
}

// OnLast reports whether the current question is the final one.
func (e *Engine) OnLast() bool {
	return e.current == len(e.questions)-1
}

// Advance moves to the next question. The current question must have a
// selection, and the final question is submitted rather than advanced.
func (e *Engine) Advance() error {
	if e.done {
		return ErrQuizComplete
	}
	if e.answers[e.current] < 0 {
		return errors.New("quiz: select an answer before advancing")
	}
	if e.OnLast() {
		return errors.New("quiz: on final question, submit instead")
	}
	e.current++
	return nil
}

// Submit finalizes the attempt and computes the score. It can only be
// called once, from the final question with a selection made.
func (e *Engine) Submit() (int, error) {
	if e.done {
		return 0, ErrQuizComplete
	}
	if !e.OnLast() {
		return 0, errors.New("quiz: not on final question")
	}
	if e.answers[e.current] < 0 {
		return 0, errors.New("quiz: select an answer before submitting")
	}

	correct := 0
	for i, q := range e.questions {
		if q.Options[e.answers[i]] == q.CorrectAnswer {
			correct++
		}
	}
	e.score = int(math.Round(float64(correct) / float64(len(e.questions)) * 100))
	e.done = true
	return e.score, nil
}

// Done reports whether the attempt has been submitted.
func (e *Engine) Done() bool {
	return e.done
}

// Score returns the final score. Valid only after Submit.
func (e *Engine) Score() int {
	return e.score
}

// CorrectCount returns how many answers were correct. Valid only after
// Submit.
func (e *Engine) CorrectCount() int {
	if !e.done {
		return 0
	}
	correct := 0
	for i, q := range e.questions {
		if e.answers[i] >= 0 && q.Options[e.answers[i]] == q.CorrectAnswer {
			correct++
		}
	}
	return correct
}
