package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/deskfolio/deskfolio/internal/theme"
)

// Dialog wraps any tea.Model content and adds a header with a title and a border.
//
// Usage:
//   form := NewNotesForm(prefs)
//   dialog := NewDialog("Edit note", form, false)
//   dialog.Init()       // Delegates to form.Init()
//   dialog.Update(msg)  // Delegates to form.Update(msg)
//   dialog.View()       // Returns the bordered header + form.View()
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog creates a new dialog wrapper around content
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

// Init delegates to wrapped content's Init method.
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to wrapped content's Update method.
// The returned tea.Model is the Dialog itself with updated content.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View renders the header and the wrapped content inside a rounded border
func (d *Dialog) View() string {
	return theme.DialogBorderStyle.Render(renderDialogHeader(d.devMode, d.title) + d.content.View())
}

// Content returns the wrapped content for type assertion.
//
// Example:
//   if content, ok := dialog.Content().(*NotesForm); ok && content.Completed {
//       result := content.Result()
//   }
func (d *Dialog) Content() tea.Model {
	return d.content
}
