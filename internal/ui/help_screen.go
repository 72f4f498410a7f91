package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/deskfolio/deskfolio/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string         // Pre-built help content
	initialized bool           // Track if viewport has been sized
	keys        *KeyMap        // Key bindings to display
	viewport    viewport.Model // Scrollable viewport
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	groups := []string{"Desktop", "Windows", "Inside windows"}
	for i, bindings := range keys.FullHelp() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.HelpGroupStyle.Render(groups[i]) + "\n")
		for _, binding := range bindings {
			b.WriteString(renderBinding(binding))
		}
	}

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Mouse") + "\n")
	b.WriteString(renderShortcut("title bar", "drag the window"))
	b.WriteString(renderShortcut("◢", "resize the window"))
	b.WriteString(renderShortcut("[-] [+] [x]", "minimize, maximize, close"))
	b.WriteString(renderShortcut("icon / dock", "open the app"))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Terminal") + "\n")
	b.WriteString(renderShortcut("help", "list the terminal commands"))
	b.WriteString(renderShortcut("↑ ↓", "browse history, steer the snake"))
	b.WriteString(renderShortcut("quit", "leave a running game"))

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 6 lines, border: 2 lines, footer: 2 lines
		h.viewport.Width = max(msg.Width-8, 20)
		h.viewport.Height = max(msg.Height-12, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("esc or f1 to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
