package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Palette holds every color a desktop needs
type Palette struct {
	Accent        Color
	ContentBg     Color
	ContentFg     Color
	Desktop       Color
	DesktopFg     Color
	Dock          Color
	DockFg        Color
	Error         Color
	FrameActive   Color
	FrameInactive Color
	Game          Color
	MenuBar       Color
	MenuFg        Color
	Muted         Color
	Selected      Color
	SelectedFg    Color
	TerminalBg    Color
	TerminalFg    Color
	TitleActive   Color
	TitleActiveFg Color
	TitleInactive Color
	TitleInactFg  Color
}

// Light is the classic platinum desktop
var Light = Palette{
	Accent:        "25",
	ContentBg:     "255",
	ContentFg:     "235",
	Desktop:       "67",
	DesktopFg:     "255",
	Dock:          "252",
	DockFg:        "236",
	Error:         "160",
	FrameActive:   "238",
	FrameInactive: "246",
	Game:          "28",
	MenuBar:       "254",
	MenuFg:        "234",
	Muted:         "244",
	Selected:      "25",
	SelectedFg:    "255",
	TerminalBg:    "234",
	TerminalFg:    "252",
	TitleActive:   "250",
	TitleActiveFg: "232",
	TitleInactive: "253",
	TitleInactFg:  "245",
}

// Dark is the night variant
var Dark = Palette{
	Accent:        "75",
	ContentBg:     "236",
	ContentFg:     "252",
	Desktop:       "17",
	DesktopFg:     "250",
	Dock:          "235",
	DockFg:        "250",
	Error:         "203",
	FrameActive:   "111",
	FrameInactive: "240",
	Game:          "114",
	MenuBar:       "234",
	MenuFg:        "252",
	Muted:         "243",
	Selected:      "62",
	SelectedFg:    "255",
	TerminalBg:    "16",
	TerminalFg:    "250",
	TitleActive:   "60",
	TitleActiveFg: "255",
	TitleInactive: "238",
	TitleInactFg:  "245",
}

// PaletteFor returns the palette of a theme name, falling back to Light
func PaletteFor(name string) Palette {
	if name == "dark" {
		return Dark
	}
	return Light
}
