package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/deskfolio/deskfolio/internal/logging"
)

const notesCharLimit = 2000

// NoteKeeper reads and writes the visitor's note
type NoteKeeper interface {
	Notes() string
	SetNotes(text string)
}

// NotesFormResult contains the result of the edit
type NotesFormResult struct {
	Cancelled bool
	Text      string
}

// NotesForm is a Bubble Tea component for editing the note
type NotesForm struct {
	Completed bool
	form      *huh.Form
	keeper    NoteKeeper
	result    NotesFormResult
}

// NewNotesForm creates a form preloaded with the current note
func NewNotesForm(keeper NoteKeeper) *NotesForm {
	nf := &NotesForm{
		keeper: keeper,
		result: NotesFormResult{Text: keeper.Notes()},
	}

	nf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Note").
				Description("Saved for your next visit. esc to discard.").
				Value(&nf.result.Text).
				CharLimit(notesCharLimit),
		),
	)

	return nf
}

func (nf *NotesForm) Init() tea.Cmd {
	return nf.form.Init()
}

func (nf *NotesForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			nf.result.Cancelled = true
			nf.Completed = true
			return nf, nil
		}
	}

	form, cmd := nf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		nf.form = f
	}

	if nf.form.State == huh.StateCompleted {
		nf.Completed = true
		nf.result.Text = strings.TrimRight(nf.result.Text, " \n")
		nf.keeper.SetNotes(nf.result.Text)
		logging.Logger.Info("Note updated", "length", len(nf.result.Text))
		return nf, nil
	}

	return nf, cmd
}

func (nf *NotesForm) View() string {
	if nf.form != nil {
		return nf.form.View()
	}
	return ""
}

// Result returns the form result
func (nf *NotesForm) Result() NotesFormResult {
	return nf.result
}
