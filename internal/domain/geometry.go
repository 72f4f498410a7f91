package domain

const (
	// DragMargin keeps dragged windows this far from the layer edges
	DragMargin = 6
	// ResizeMargin keeps resized windows this far from the right/bottom layer edges
	ResizeMargin = 6
	// MaximizeMargin is left around a maximized window on every side
	MaximizeMargin = 12
	// MaximizeMinWidth and MaximizeMinHeight floor the maximized size
	MaximizeMinWidth  = 440
	MaximizeMinHeight = 300

	// CascadeBase is the offset of the first window; each next id adds CascadeStep
	CascadeBase = 24
	CascadeStep = 26
	CascadeCap  = 182
)

// Clamp restricts v to [lo, hi]. An empty interval (hi < lo) yields lo.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampPosition keeps one axis of a window inside the layer:
// [margin, layerSize - windowSize - margin]
func ClampPosition(pos, windowSize, layerSize, margin int) int {
	return Clamp(pos, margin, layerSize-windowSize-margin)
}

// ClampSize keeps one axis of a window size between its minimum and the
// space remaining in the layer from the window origin
func ClampSize(size, minSize, origin, layerSize, margin int) int {
	return Clamp(size, minSize, layerSize-origin-margin)
}

// CascadeOffset returns the diagonal placement offset for a window id
func CascadeOffset(id int) int {
	return min(CascadeBase+CascadeStep*(id-1), CascadeCap)
}

// MaximizedBounds returns the bounds a window takes when maximized in a layer
func MaximizedBounds(layer Rect) Bounds {
	return Bounds{
		X:      MaximizeMargin,
		Y:      MaximizeMargin,
		Width:  max(MaximizeMinWidth, layer.Width-2*MaximizeMargin),
		Height: max(MaximizeMinHeight, layer.Height-2*MaximizeMargin),
	}
}
