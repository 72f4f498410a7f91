package services

import (
	"slices"

	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/logging"
)

// WindowManager owns the open windows of one desktop.
// All mutations go through its methods; readers get copies.
type WindowManager struct {
	interaction any // nil, *dragSession or *resizeSession
	nextID      int
	nextZ       int
	version     uint64
	windows     []*domain.Window // ordered by id
}

type dragSession struct {
	layer   domain.Layer
	offsetX int
	offsetY int
	window  int
}

type resizeSession struct {
	layer       domain.Layer
	startHeight int
	startWidth  int
	startX      int
	startY      int
	window      int
}

// NewWindowManager creates an empty window manager
func NewWindowManager() *WindowManager {
	return &WindowManager{}
}

// OpenApp focuses the app's window, creating it on first open.
// Returns the window id, or 0 for an unknown app.
func (m *WindowManager) OpenApp(app domain.AppID) int {
	if w := m.find(func(w *domain.Window) bool { return w.App == app }); w != nil {
		w.Minimized = false
		m.focus(w)
		m.changed()
		return w.ID
	}

	desc, ok := domain.Descriptor(app)
	if !ok {
		logging.Logger.Warn("open requested for unknown app", "app", app)
		return 0
	}

	m.nextID++
	offset := domain.CascadeOffset(m.nextID)
	w := &domain.Window{
		App:       app,
		Height:    desc.DefaultHeight,
		ID:        m.nextID,
		MinHeight: desc.MinHeight,
		MinWidth:  desc.MinWidth,
		Title:     desc.Title,
		Width:     desc.DefaultWidth,
		X:         offset,
		Y:         offset,
	}
	m.windows = append(m.windows, w)
	m.focus(w)
	m.changed()

	logging.Logger.Debug("window opened", "id", w.ID, "app", app)
	return w.ID
}

// BringToFront gives the window the next z value and makes it the only active window.
// Minimized windows stay where they are; OpenApp restores them.
func (m *WindowManager) BringToFront(id int) {
	w := m.byID(id)
	if w == nil || w.Minimized {
		return
	}
	m.focus(w)
	m.changed()
}

// StartDrag begins moving a window. Secondary buttons, presses on controls,
// maximized and minimized windows are ignored.
func (m *WindowManager) StartDrag(id int, layer domain.Layer, ev domain.PointerEvent) {
	if ev.Button != domain.ButtonPrimary || ev.OnControl {
		return
	}
	w := m.byID(id)
	if w == nil || w.Maximized || w.Minimized {
		return
	}

	m.focus(w)
	rect := layer.Bounds()
	m.interaction = &dragSession{
		layer:   layer,
		offsetX: ev.X - rect.X - w.X,
		offsetY: ev.Y - rect.Y - w.Y,
		window:  id,
	}
	m.changed()
}

// StartResize begins resizing a window from its bottom-right corner, replacing any drag
func (m *WindowManager) StartResize(id int, layer domain.Layer, ev domain.PointerEvent) {
	if ev.Button != domain.ButtonPrimary {
		return
	}
	w := m.byID(id)
	if w == nil || w.Maximized || w.Minimized {
		return
	}

	m.interaction = &resizeSession{
		layer:       layer,
		startHeight: w.Height,
		startWidth:  w.Width,
		startX:      ev.X,
		startY:      ev.Y,
		window:      id,
	}
	m.changed()
}

// PointerMove applies the pointer position to the current drag or resize
func (m *WindowManager) PointerMove(ev domain.PointerEvent) {
	switch s := m.interaction.(type) {
	case *dragSession:
		w := m.byID(s.window)
		if w == nil {
			m.interaction = nil
			return
		}
		rect := s.layer.Bounds()
		w.X = domain.ClampPosition(ev.X-s.offsetX-rect.X, w.Width, rect.Width, domain.DragMargin)
		w.Y = domain.ClampPosition(ev.Y-s.offsetY-rect.Y, w.Height, rect.Height, domain.DragMargin)
		m.changed()
	case *resizeSession:
		w := m.byID(s.window)
		if w == nil {
			m.interaction = nil
			return
		}
		rect := s.layer.Bounds()
		w.Width = domain.ClampSize(s.startWidth+ev.X-s.startX, w.MinWidth, w.X, rect.Width, domain.ResizeMargin)
		w.Height = domain.ClampSize(s.startHeight+ev.Y-s.startY, w.MinHeight, w.Y, rect.Height, domain.ResizeMargin)
		m.changed()
	}
}

// PointerEnd ends any drag or resize
func (m *WindowManager) PointerEnd() {
	if m.interaction == nil {
		return
	}
	m.interaction = nil
	m.changed()
}

// Minimize hides a window and hands focus to the topmost visible one
func (m *WindowManager) Minimize(id int) {
	w := m.byID(id)
	if w == nil {
		return
	}
	w.Minimized = true
	w.Active = false
	m.endInteractionFor(id)
	m.reactivate()
	m.changed()
}

// Close removes a window and hands focus to the topmost visible one
func (m *WindowManager) Close(id int) {
	idx := slices.IndexFunc(m.windows, func(w *domain.Window) bool { return w.ID == id })
	if idx < 0 {
		return
	}
	m.windows = slices.Delete(m.windows, idx, idx+1)
	m.endInteractionFor(id)
	m.reactivate()
	m.changed()

	logging.Logger.Debug("window closed", "id", id)
}

// ToggleMaximize maximizes a window inside the layer, or restores the bounds
// it had before being maximized
func (m *WindowManager) ToggleMaximize(id int, layer domain.Layer) {
	w := m.byID(id)
	if w == nil {
		return
	}

	if w.Maximized && w.Restore != nil {
		w.X, w.Y, w.Width, w.Height = w.Restore.X, w.Restore.Y, w.Restore.Width, w.Restore.Height
		w.Maximized = false
		w.Restore = nil
	} else {
		saved := w.Bounds()
		w.Restore = &saved
		b := domain.MaximizedBounds(layer.Bounds())
		w.X, w.Y, w.Width, w.Height = b.X, b.Y, b.Width, b.Height
		w.Maximized = true
	}
	w.Minimized = false
	m.endInteractionFor(id)
	m.focus(w)
	m.changed()
}

// Windows returns a snapshot of every window ordered by id
func (m *WindowManager) Windows() []domain.Window {
	out := make([]domain.Window, 0, len(m.windows))
	for _, w := range m.windows {
		out = append(out, copyWindow(w))
	}
	return out
}

// Stacked returns a snapshot of every window ordered bottom to top
func (m *WindowManager) Stacked() []domain.Window {
	out := m.Windows()
	slices.SortStableFunc(out, func(a, b domain.Window) int { return a.Z - b.Z })
	return out
}

// Window returns a snapshot of one window
func (m *WindowManager) Window(id int) (domain.Window, bool) {
	w := m.byID(id)
	if w == nil {
		return domain.Window{}, false
	}
	return copyWindow(w), true
}

// Active returns the active window, if any
func (m *WindowManager) Active() (domain.Window, bool) {
	w := m.find(func(w *domain.Window) bool { return w.Active })
	if w == nil {
		return domain.Window{}, false
	}
	return copyWindow(w), true
}

// WindowForApp returns the window hosting app, if open
func (m *WindowManager) WindowForApp(app domain.AppID) (domain.Window, bool) {
	w := m.find(func(w *domain.Window) bool { return w.App == app })
	if w == nil {
		return domain.Window{}, false
	}
	return copyWindow(w), true
}

// Version increases on every mutation, so renderers can skip unchanged frames
func (m *WindowManager) Version() uint64 {
	return m.version
}

// Dragging returns the id of the window being dragged
func (m *WindowManager) Dragging() (int, bool) {
	if s, ok := m.interaction.(*dragSession); ok {
		return s.window, true
	}
	return 0, false
}

// Resizing returns the id of the window being resized
func (m *WindowManager) Resizing() (int, bool) {
	if s, ok := m.interaction.(*resizeSession); ok {
		return s.window, true
	}
	return 0, false
}

func (m *WindowManager) focus(target *domain.Window) {
	m.nextZ++
	target.Z = m.nextZ
	for _, w := range m.windows {
		w.Active = w == target
	}
}

// reactivate marks the highest-z visible window active without raising it
func (m *WindowManager) reactivate() {
	var top *domain.Window
	for _, w := range m.windows {
		w.Active = false
		if w.Minimized {
			continue
		}
		if top == nil || w.Z > top.Z {
			top = w
		}
	}
	if top != nil {
		top.Active = true
	}
}

func (m *WindowManager) endInteractionFor(id int) {
	switch s := m.interaction.(type) {
	case *dragSession:
		if s.window == id {
			m.interaction = nil
		}
	case *resizeSession:
		if s.window == id {
			m.interaction = nil
		}
	}
}

func (m *WindowManager) byID(id int) *domain.Window {
	return m.find(func(w *domain.Window) bool { return w.ID == id })
}

func (m *WindowManager) find(match func(*domain.Window) bool) *domain.Window {
	for _, w := range m.windows {
		if match(w) {
			return w
		}
	}
	return nil
}

func (m *WindowManager) changed() {
	m.version++
}

func copyWindow(w *domain.Window) domain.Window {
	c := *w
	if w.Restore != nil {
		r := *w.Restore
		c.Restore = &r
	}
	return c
}
