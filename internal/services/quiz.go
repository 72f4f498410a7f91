package services

import (
	"fmt"

	"github.com/deskfolio/deskfolio/internal/domain"
)

const quizMissFeedback = "Almost! Not this time. Try again."

// QuizService tracks answers to the About Me quiz
type QuizService struct {
	entries   []quizEntry
	questions []domain.QuizQuestion
}

type quizEntry struct {
	attempts int // wrong answers only
	feedback string
	selected int // -1 when nothing was picked yet
	solved   bool
}

// NewQuizService creates a quiz over the given questions
func NewQuizService(questions []domain.QuizQuestion) *QuizService {
	q := &QuizService{questions: questions}
	q.Reset()
	return q
}

// Questions returns the quiz questions
func (q *QuizService) Questions() []domain.QuizQuestion {
	return q.questions
}

// Answer records a pick. Solved questions and out-of-range indexes are ignored.
func (q *QuizService) Answer(question, option int) {
	if question < 0 || question >= len(q.entries) {
		return
	}
	entry := &q.entries[question]
	qq := q.questions[question]
	if entry.solved || option < 0 || option >= len(qq.Options) {
		return
	}

	entry.selected = option
	if option == qq.CorrectIndex {
		entry.solved = true
		entry.feedback = qq.SuccessMessage
		return
	}
	entry.attempts++
	entry.feedback = quizMissFeedback
}

// Reset clears every answer
func (q *QuizService) Reset() {
	q.entries = make([]quizEntry, len(q.questions))
	for i := range q.entries {
		q.entries[i].selected = -1
	}
}

// SolvedCount returns how many questions were answered correctly
func (q *QuizService) SolvedCount() int {
	n := 0
	for _, e := range q.entries {
		if e.solved {
			n++
		}
	}
	return n
}

// Solved reports whether a question was answered correctly
func (q *QuizService) Solved(question int) bool {
	if question < 0 || question >= len(q.entries) {
		return false
	}
	return q.entries[question].solved
}

// AttemptLabel describes the wrong answers given to a question
func (q *QuizService) AttemptLabel(question int) string {
	attempts := 0
	if question >= 0 && question < len(q.entries) {
		attempts = q.entries[question].attempts
	}
	switch attempts {
	case 0:
		return "No mistakes so far"
	case 1:
		return "1 wrong attempt"
	default:
		return fmt.Sprintf("%d wrong attempts", attempts)
	}
}

// Feedback returns the message shown after the last answer, if any
func (q *QuizService) Feedback(question int) string {
	if question < 0 || question >= len(q.entries) {
		return ""
	}
	return q.entries[question].feedback
}

// Selected returns the last picked option of a question
func (q *QuizService) Selected(question int) (int, bool) {
	if question < 0 || question >= len(q.entries) || q.entries[question].selected < 0 {
		return 0, false
	}
	return q.entries[question].selected, true
}
