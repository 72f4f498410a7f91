package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/deskfolio/deskfolio/internal/services"
)

// QuizForm asks one quiz question with a select list and records the pick
type QuizForm struct {
	Completed bool
	Cancelled bool
	form      *huh.Form
	choice    int
	question  int
	quiz      *services.QuizService
}

// NewQuizForm creates the answer dialog for question q
func NewQuizForm(quiz *services.QuizService, q int) *QuizForm {
	qf := &QuizForm{quiz: quiz, question: q}
	question := quiz.Questions()[q]

	if selected, ok := quiz.Selected(q); ok {
		qf.choice = selected
	}

	options := make([]huh.Option[int], len(question.Options))
	for i, label := range question.Options {
		options[i] = huh.NewOption(fmt.Sprintf("%d. %s", i+1, label), i)
	}

	qf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(question.Prompt).
				Description(quiz.AttemptLabel(q)).
				Options(options...).
				Value(&qf.choice),
		),
	)
	return qf
}

func (qf *QuizForm) Init() tea.Cmd {
	return qf.form.Init()
}

func (qf *QuizForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			qf.Cancelled = true
			qf.Completed = true
			return qf, nil
		}
	}

	form, cmd := qf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		qf.form = f
	}

	if qf.form.State == huh.StateCompleted {
		qf.Completed = true
		qf.quiz.Answer(qf.question, qf.choice)
		return qf, nil
	}

	return qf, cmd
}

func (qf *QuizForm) View() string {
	if qf.form != nil {
		return qf.form.View()
	}
	return ""
}
