package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/deskfolio/deskfolio/internal/domain"
)

// hotspot is a clickable span painted by an app inside its window
type hotspot struct {
	action func()
	col    int
	row    int
	width  int
	window int
}

// handleMouse turns terminal mouse events into window manager pointer events
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.tooSmall() {
		return
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if _, ok := m.wm.Dragging(); ok {
			m.wm.PointerMove(pointerAt(msg.X, msg.Y, false))
		} else if _, ok := m.wm.Resizing(); ok {
			m.wm.PointerMove(pointerAt(msg.X, msg.Y, false))
		}
		return
	case tea.MouseActionRelease:
		m.wm.PointerEnd()
		return
	case tea.MouseActionPress:
	default:
		return
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		m.press(msg.X, msg.Y)
	case tea.MouseButtonWheelUp:
		m.scroll(msg.X, msg.Y, -1)
	case tea.MouseButtonWheelDown:
		m.scroll(msg.X, msg.Y, 1)
	}
}

func (m *Model) press(col, row int) {
	// Hotspots must match what is on screen now
	m.paint()

	h := hitTest(col, row, m.width, m.height, m.wm.Stacked(), m.prefs.Dock())
	switch h.kind {
	case hitMenu:
		m.pressMenu(col)
	case hitIcon, hitDock:
		m.openApp(h.app)
	case hitTitle:
		m.wm.StartDrag(h.window, m.layer, pointerAt(col, row, false))
	case hitMinimize:
		m.wm.Minimize(h.window)
	case hitMaximize:
		m.wm.BringToFront(h.window)
		m.wm.ToggleMaximize(h.window, m.layer)
	case hitClose:
		if w, ok := m.wm.Window(h.window); ok {
			m.closeWindow(w)
		}
	case hitResize:
		m.wm.BringToFront(h.window)
		m.wm.StartResize(h.window, m.layer, pointerAt(col, row, false))
	case hitContent:
		m.wm.BringToFront(h.window)
		for _, spot := range m.hotspots {
			if spot.window == h.window && spot.row == row && col >= spot.col && col < spot.col+spot.width {
				spot.action()
				return
			}
		}
	}
}

// pressMenu opens the help screen from the brand and apps from matching menu titles
func (m *Model) pressMenu(col int) {
	for _, item := range menuLayout() {
		if col < item.col || col >= item.col+len(item.label) {
			continue
		}
		switch item.label {
		case menuBrand, "Help":
			m.showHelp()
		case "Finder":
			m.openApp(domain.AppFinder)
		case "Window":
			m.cycleFocus()
		}
		return
	}
}

// scroll moves the selection of the window under the pointer
func (m *Model) scroll(col, row, delta int) {
	h := hitTest(col, row, m.width, m.height, m.wm.Stacked(), m.prefs.Dock())
	if h.kind != hitContent {
		return
	}
	m.moveSelection(h.app, delta)
}
