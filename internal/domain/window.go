package domain

// Bounds is a window position and size
type Bounds struct {
	Height int
	Width  int
	X      int
	Y      int
}

// Window is a snapshot of one open application window
type Window struct {
	Active    bool
	App       AppID
	Height    int
	ID        int
	Maximized bool
	MinHeight int
	Minimized bool
	MinWidth  int
	Restore   *Bounds // Bounds saved before maximizing
	Title     string
	Width     int
	X         int
	Y         int
	Z         int
}

// Bounds returns the current position and size of the window
func (w Window) Bounds() Bounds {
	return Bounds{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}

// Contains reports whether the point lies inside the window rectangle
func (w Window) Contains(x, y int) bool {
	return x >= w.X && x < w.X+w.Width && y >= w.Y && y < w.Y+w.Height
}

// Rect is the on-screen rectangle of the window-hosting layer
type Rect struct {
	Height int
	Width  int
	X      int
	Y      int
}

// Layer supplies the current bounds of the window-hosting container on demand
type Layer interface {
	Bounds() Rect
}

// LayerFunc adapts a function to the Layer interface
type LayerFunc func() Rect

// Bounds implements Layer
func (f LayerFunc) Bounds() Rect { return f() }

// StaticLayer is a Layer with fixed bounds
type StaticLayer Rect

// Bounds implements Layer
func (s StaticLayer) Bounds() Rect { return Rect(s) }

// PointerButton identifies the mouse button of a pointer event
type PointerButton int

const (
	ButtonPrimary PointerButton = iota
	ButtonMiddle
	ButtonSecondary
)

// PointerEvent is a pointer position in screen pixels (the layer origin is not subtracted)
type PointerEvent struct {
	Button    PointerButton
	OnControl bool // Pointer went down on an interactive child control
	X         int
	Y         int
}
