package ui

import (
	"github.com/deskfolio/deskfolio/internal/domain"
)

const (
	// CellWidth and CellHeight convert terminal cells to window manager pixels
	CellWidth  = 8
	CellHeight = 16

	menuRows = 1
	dockRows = 3

	// MinCols and MinRows are the smallest terminal the desktop is drawn in
	MinCols = 60
	MinRows = 18

	minFrameCols = 12
	minFrameRows = 4

	controlsLabel = "[-][+][x]"
	resizeGrip    = '◢'

	iconCol    = 2
	iconWidth  = 10
	iconPitch  = 4
	iconHeight = 2
)

// layerRect is the pixel rectangle between the menu bar and the dock
func layerRect(cols, rows int) domain.Rect {
	return domain.Rect{
		X:      0,
		Y:      menuRows * CellHeight,
		Width:  cols * CellWidth,
		Height: max(rows-menuRows-dockRows, 1) * CellHeight,
	}
}

// pointerAt converts a terminal cell to a pointer event in screen pixels
func pointerAt(col, row int, onControl bool) domain.PointerEvent {
	return domain.PointerEvent{
		Button:    domain.ButtonPrimary,
		OnControl: onControl,
		X:         col * CellWidth,
		Y:         row * CellHeight,
	}
}

// frame is a window rectangle in screen cells
type frame struct {
	col, row      int
	width, height int
}

func frameOf(w domain.Window) frame {
	return frame{
		col:    w.X / CellWidth,
		row:    menuRows + w.Y/CellHeight,
		width:  max(w.Width/CellWidth, minFrameCols),
		height: max(w.Height/CellHeight, minFrameRows),
	}
}

func (f frame) contains(col, row int) bool {
	return col >= f.col && col < f.col+f.width && row >= f.row && row < f.row+f.height
}

// content is the area inside the borders and below the title bar
func (f frame) content() frame {
	return frame{col: f.col + 1, row: f.row + 1, width: f.width - 2, height: f.height - 2}
}

func (f frame) controlsCol() int {
	return f.col + f.width - len(controlsLabel)
}

// hitKind says what lies under the pointer
type hitKind int

const (
	hitDesktop hitKind = iota
	hitMenu
	hitIcon
	hitDock
	hitTitle
	hitMinimize
	hitMaximize
	hitClose
	hitResize
	hitContent
)

type hit struct {
	app    domain.AppID
	kind   hitKind
	window int
}

// hitTest finds the topmost element under a cell
func hitTest(col, row, cols, rows int, stacked []domain.Window, dock []domain.AppID) hit {
	if row < menuRows {
		return hit{kind: hitMenu}
	}
	if row >= rows-dockRows {
		for _, slot := range dockSlots(cols, dock) {
			if col >= slot.col && col < slot.col+slot.width {
				return hit{kind: hitDock, app: slot.app}
			}
		}
		return hit{kind: hitDesktop}
	}

	for i := len(stacked) - 1; i >= 0; i-- {
		w := stacked[i]
		if w.Minimized {
			continue
		}
		f := frameOf(w)
		if !f.contains(col, row) {
			continue
		}
		h := hit{kind: hitContent, window: w.ID, app: w.App}
		switch {
		case row == f.row && col >= f.controlsCol():
			switch (col - f.controlsCol()) / 3 {
			case 0:
				h.kind = hitMinimize
			case 1:
				h.kind = hitMaximize
			default:
				h.kind = hitClose
			}
		case row == f.row:
			h.kind = hitTitle
		case row == f.row+f.height-1 && col == f.col+f.width-1:
			h.kind = hitResize
		}
		return h
	}

	for i, app := range domain.DesktopShortcuts {
		top := menuRows + 1 + i*iconPitch
		if col >= iconCol && col < iconCol+iconWidth && row >= top && row < top+iconHeight {
			return hit{kind: hitIcon, app: app}
		}
	}
	return hit{kind: hitDesktop}
}

// dockSlot is the horizontal span of one dock item
type dockSlot struct {
	app   domain.AppID
	col   int
	label string
	width int
}

// dockSlots centers the pinned apps in the dock's middle row
func dockSlots(cols int, dock []domain.AppID) []dockSlot {
	slots := make([]dockSlot, 0, len(dock))
	total := 0
	for _, app := range dock {
		d, ok := domain.Descriptor(app)
		if !ok {
			continue
		}
		label := " " + d.Title + " "
		slots = append(slots, dockSlot{app: app, label: label, width: len(label)})
		total += len(label) + 1
	}
	col := max((cols-total+1)/2, 0)
	for i := range slots {
		slots[i].col = col
		col += slots[i].width + 1
	}
	return slots
}
