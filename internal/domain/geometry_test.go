package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        int
		lo       int
		hi       int
		expected int
	}{
		{"inside", 50, 6, 100, 50},
		{"below", -40, 6, 100, 6},
		{"above", 400, 6, 100, 100},
		{"empty interval", 50, 6, -10, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}

func TestClampPosition(t *testing.T) {
	// 1000 wide layer, 300 wide window: x must stay in [6, 694]
	assert.Equal(t, 6, ClampPosition(-200, 300, 1000, DragMargin))
	assert.Equal(t, 694, ClampPosition(900, 300, 1000, DragMargin))
	assert.Equal(t, 120, ClampPosition(120, 300, 1000, DragMargin))
}

func TestClampSize(t *testing.T) {
	// Window at x=100 in a 1000 wide layer: width in [380, 894]
	assert.Equal(t, 380, ClampSize(-50, 380, 100, 1000, ResizeMargin))
	assert.Equal(t, 894, ClampSize(5000, 380, 100, 1000, ResizeMargin))
	assert.Equal(t, 500, ClampSize(500, 380, 100, 1000, ResizeMargin))
}

func TestCascadeOffset_Saturates(t *testing.T) {
	assert.Equal(t, 24, CascadeOffset(1))
	assert.Equal(t, 50, CascadeOffset(2))
	assert.Equal(t, 180, CascadeOffset(7))
	assert.Equal(t, CascadeCap, CascadeOffset(8))
	assert.Equal(t, CascadeCap, CascadeOffset(100))
}

func TestMaximizedBounds(t *testing.T) {
	b := MaximizedBounds(Rect{Width: 980, Height: 620})
	assert.Equal(t, Bounds{X: 12, Y: 12, Width: 956, Height: 596}, b)

	small := MaximizedBounds(Rect{Width: 300, Height: 200})
	assert.Equal(t, MaximizeMinWidth, small.Width)
	assert.Equal(t, MaximizeMinHeight, small.Height)
}
