package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/deskfolio/deskfolio/internal/theme"
)

// cell is one terminal cell. A zero rune marks the trailing half of a wide rune.
type cell struct {
	r    rune
	role theme.Role
}

// clipRect limits painting to a rectangle of cells
type clipRect struct {
	col, row      int
	width, height int
}

func (c clipRect) contains(col, row int) bool {
	return col >= c.col && col < c.col+c.width && row >= c.row && row < c.row+c.height
}

// Canvas is an off-screen grid of styled cells. Painting outside the grid or
// the current clip rectangle is ignored.
type Canvas struct {
	cells  [][]cell
	clip   clipRect
	height int
	width  int
}

// NewCanvas creates a canvas filled with spaces of the given role
func NewCanvas(width, height int, role theme.Role) *Canvas {
	c := &Canvas{width: width, height: height}
	c.cells = make([][]cell, height)
	for row := range c.cells {
		c.cells[row] = make([]cell, width)
		for col := range c.cells[row] {
			c.cells[row][col] = cell{r: ' ', role: role}
		}
	}
	c.ResetClip()
	return c
}

// Size returns the canvas width and height in cells
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clip restricts painting to the intersection of the canvas and the rectangle
func (c *Canvas) Clip(col, row, width, height int) {
	c.clip = clipRect{col: col, row: row, width: width, height: height}
}

// ResetClip allows painting anywhere on the canvas
func (c *Canvas) ResetClip() {
	c.clip = clipRect{width: c.width, height: c.height}
}

// Fill paints a rectangle with a rune
func (c *Canvas) Fill(col, row, width, height int, r rune, role theme.Role) {
	for y := row; y < row+height; y++ {
		for x := col; x < col+width; x++ {
			c.set(x, y, r, role)
		}
	}
}

// Text paints s starting at (col, row) and returns the column after the last rune.
// Nothing is painted past maxWidth cells; a negative maxWidth means no limit.
func (c *Canvas) Text(col, row int, s string, role theme.Role, maxWidth int) int {
	end := col + maxWidth
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if maxWidth >= 0 && col+w > end {
			break
		}
		if w == 2 && !(c.paintable(col, row) && c.paintable(col+1, row)) {
			// A wide rune cut by the clip becomes blanks
			c.set(col, row, ' ', role)
			c.set(col+1, row, ' ', role)
		} else {
			c.set(col, row, r, role)
			if w == 2 {
				c.set(col+1, row, 0, role)
			}
		}
		col += w
	}
	return col
}

// RuneAt returns the rune painted at a cell, or a space outside the canvas
func (c *Canvas) RuneAt(col, row int) rune {
	if col < 0 || row < 0 || col >= c.width || row >= c.height {
		return ' '
	}
	return c.cells[row][col].r
}

// RoleAt returns the role painted at a cell
func (c *Canvas) RoleAt(col, row int) theme.Role {
	if col < 0 || row < 0 || col >= c.width || row >= c.height {
		return theme.RoleDesktop
	}
	return c.cells[row][col].role
}

// Line returns the plain text of a row
func (c *Canvas) Line(row int) string {
	if row < 0 || row >= c.height {
		return ""
	}
	var b strings.Builder
	for _, cl := range c.cells[row] {
		if cl.r != 0 {
			b.WriteRune(cl.r)
		}
	}
	return b.String()
}

// Render converts the grid to a string, styling runs of cells that share a role
func (c *Canvas) Render(styles *theme.Styles) string {
	var out strings.Builder
	var run strings.Builder
	for row := range c.cells {
		if row > 0 {
			out.WriteByte('\n')
		}
		cells := c.cells[row]
		for start := 0; start < len(cells); {
			role := cells[start].role
			run.Reset()
			end := start
			for end < len(cells) && cells[end].role == role {
				if cells[end].r != 0 {
					run.WriteRune(cells[end].r)
				}
				end++
			}
			out.WriteString(styles.Style(role).Render(run.String()))
			start = end
		}
	}
	return out.String()
}

func (c *Canvas) paintable(col, row int) bool {
	return col >= 0 && row >= 0 && col < c.width && row < c.height && c.clip.contains(col, row)
}

func (c *Canvas) set(col, row int, r rune, role theme.Role) {
	if !c.paintable(col, row) {
		return
	}
	// Overwriting half of a wide rune blanks the other half
	if cur := c.cells[row][col]; cur.r == 0 && col > 0 && r != 0 {
		c.cells[row][col-1].r = ' '
	} else if cur.r != 0 && runewidth.RuneWidth(cur.r) == 2 && r != 0 && col+1 < c.width {
		c.cells[row][col+1] = cell{r: ' ', role: c.cells[row][col+1].role}
	}
	c.cells[row][col] = cell{r: r, role: role}
}
