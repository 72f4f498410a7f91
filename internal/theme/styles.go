package theme

import "github.com/charmbracelet/lipgloss"

// Role names a painted element of the desktop
type Role int

const (
	RoleDesktop Role = iota
	RoleIcon
	RoleIconLabel
	RoleMenu
	RoleMenuBrand
	RoleMenuHint
	RoleFrameActive
	RoleFrameInactive
	RoleTitleActive
	RoleTitleInactive
	RoleControl
	RoleContent
	RoleContentMuted
	RoleContentAccent
	RoleContentError
	RoleSelected
	RoleTerminal
	RoleTerminalCommand
	RoleTerminalError
	RoleTerminalGame
	RoleDock
	RoleDockItem
	RoleDockOpen
	roleCount
)

// Styles resolves roles to lipgloss styles for one palette and renderer
type Styles struct {
	Palette Palette
	styles  [roleCount]lipgloss.Style
}

// NewStyles builds the styles of a palette. A nil renderer uses the default one.
func NewStyles(r *lipgloss.Renderer, p Palette) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	s := &Styles{Palette: p}
	bg := func(c Color) lipgloss.Style { return r.NewStyle().Background(c) }

	s.styles[RoleDesktop] = bg(p.Desktop).Foreground(p.DesktopFg)
	s.styles[RoleIcon] = bg(p.ContentBg).Foreground(p.Accent).Bold(true)
	s.styles[RoleIconLabel] = bg(p.Desktop).Foreground(p.DesktopFg)
	s.styles[RoleMenu] = bg(p.MenuBar).Foreground(p.MenuFg)
	s.styles[RoleMenuBrand] = bg(p.MenuBar).Foreground(p.Accent).Bold(true)
	s.styles[RoleMenuHint] = bg(p.MenuBar).Foreground(p.Muted)
	s.styles[RoleFrameActive] = bg(p.ContentBg).Foreground(p.FrameActive)
	s.styles[RoleFrameInactive] = bg(p.ContentBg).Foreground(p.FrameInactive)
	s.styles[RoleTitleActive] = bg(p.TitleActive).Foreground(p.TitleActiveFg).Bold(true)
	s.styles[RoleTitleInactive] = bg(p.TitleInactive).Foreground(p.TitleInactFg)
	s.styles[RoleControl] = bg(p.TitleActive).Foreground(p.Accent).Bold(true)
	s.styles[RoleContent] = bg(p.ContentBg).Foreground(p.ContentFg)
	s.styles[RoleContentMuted] = bg(p.ContentBg).Foreground(p.Muted)
	s.styles[RoleContentAccent] = bg(p.ContentBg).Foreground(p.Accent).Bold(true)
	s.styles[RoleContentError] = bg(p.ContentBg).Foreground(p.Error)
	s.styles[RoleSelected] = bg(p.Selected).Foreground(p.SelectedFg)
	s.styles[RoleTerminal] = bg(p.TerminalBg).Foreground(p.TerminalFg)
	s.styles[RoleTerminalCommand] = bg(p.TerminalBg).Foreground(p.Accent)
	s.styles[RoleTerminalError] = bg(p.TerminalBg).Foreground(p.Error)
	s.styles[RoleTerminalGame] = bg(p.TerminalBg).Foreground(p.Game)
	s.styles[RoleDock] = bg(p.Dock).Foreground(p.DockFg)
	s.styles[RoleDockItem] = bg(p.Dock).Foreground(p.DockFg).Bold(true)
	s.styles[RoleDockOpen] = bg(p.Dock).Foreground(p.Accent).Bold(true).Underline(true)
	return s
}

// Style returns the style of a role
func (s *Styles) Style(r Role) lipgloss.Style {
	if r < 0 || r >= roleCount {
		return s.styles[RoleDesktop]
	}
	return s.styles[r]
}

// Dialog styles
var (
	DialogBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Light.Accent).
				Padding(0, 1)

	DialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Light.Accent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Light.Error).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(Light.Muted)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(Light.Muted)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Light.Accent).
			MarginTop(0)

	HelpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Width(16)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Light.Muted)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Light.Accent)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true)

	TaglineStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(Light.Muted)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Light.Muted)
)

// DimmedStyle paints the desktop behind a dialog
var DimmedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
