package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/theme"
)

// maxVisibleItems is the maximum number of actions shown at once.
const maxVisibleItems = 8

// CommandPalette is a searchable launcher for apps and desktop actions.
type CommandPalette struct {
	actions       []domain.Action // Filtered actions
	allActions    []domain.Action // All available actions for context
	Completed     bool
	filterInput   textinput.Model
	keys          KeyMap
	lastQuery     string // Previous filter query (to detect changes)
	Result        CommandPaletteResult
	selectedIndex int
}

// CommandPaletteResult contains the result of the command palette interaction.
type CommandPaletteResult struct {
	Action    *domain.Action
	Cancelled bool
}

// NewCommandPalette creates a new command palette.
// Window actions are listed only when a window is focused.
func NewCommandPalette(hasWindow bool, keys KeyMap) *CommandPalette {
	actions := domain.GetActionsForContext(hasWindow)

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.Placeholder = "type an app or an action"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &CommandPalette{
		actions:     actions,
		allActions:  actions,
		filterInput: ti,
		keys:        keys,
	}
}

// Init initializes the command palette.
func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (cp *CommandPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case msg.Type == tea.KeyEsc || key.Matches(msg, cp.keys.Application.Quit.Binding):
			cp.Completed = true
			cp.Result.Cancelled = true
			return cp, nil

		case msg.Type == tea.KeyEnter:
			if cp.selectedIndex < len(cp.actions) {
				cp.Completed = true
				cp.Result.Action = &cp.actions[cp.selectedIndex]
			}
			return cp, nil

		case msg.Type == tea.KeyUp:
			if cp.selectedIndex > 0 {
				cp.selectedIndex--
			}
			return cp, nil

		case msg.Type == tea.KeyDown:
			if cp.selectedIndex < len(cp.actions)-1 {
				cp.selectedIndex++
			}
			return cp, nil
		}
	}

	var cmd tea.Cmd
	cp.filterInput, cmd = cp.filterInput.Update(msg)
	cp.filterActions()

	return cp, cmd
}

// View renders the filter line and the visible actions.
func (cp *CommandPalette) View() string {
	var items []string
	start, end := cp.visibleRange()
	for i := start; i < end; i++ {
		prefix := "  "
		switch {
		case i == cp.selectedIndex:
			prefix = "> "
		case i == start && start > 0:
			prefix = "↑ "
		case i == end-1 && end < len(cp.actions):
			prefix = "↓ "
		}
		items = append(items, prefix+cp.actions[i].Description)
	}
	if len(items) == 0 {
		items = append(items, theme.HintStyle.Render("  No matching actions"))
	}
	for len(items) < maxVisibleItems {
		items = append(items, "")
	}

	return cp.filterInput.View() + "\n\n" + strings.Join(items, "\n")
}

// filterActions filters the action list based on the current input.
func (cp *CommandPalette) filterActions() {
	query := strings.ToLower(cp.filterInput.Value())
	if query == cp.lastQuery {
		return
	}
	cp.lastQuery = query

	if query == "" {
		cp.actions = cp.allActions
		cp.selectedIndex = 0
		return
	}

	var filtered []domain.Action
	for _, a := range cp.allActions {
		if fuzzyMatch(query, a.Description) {
			filtered = append(filtered, a)
		}
	}
	cp.actions = filtered

	if cp.selectedIndex >= len(cp.actions) {
		cp.selectedIndex = 0
	}
}

// fuzzyMatch checks if all characters in query appear in order in target.
func fuzzyMatch(query, target string) bool {
	target = strings.ToLower(target)
	queryRunes := []rune(query)
	qi := 0
	for _, c := range target {
		if qi < len(queryRunes) && c == queryRunes[qi] {
			qi++
		}
	}
	return qi == len(queryRunes)
}

// visibleRange returns the start and end indices for visible items.
func (cp *CommandPalette) visibleRange() (int, int) {
	total := len(cp.actions)
	if total <= maxVisibleItems {
		return 0, total
	}

	start := max(cp.selectedIndex-maxVisibleItems/2, 0)
	end := start + maxVisibleItems
	if end > total {
		end = total
		start = end - maxVisibleItems
	}
	return start, end
}
