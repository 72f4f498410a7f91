package ui

import (
	"strings"

	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/theme"
)

const menuBrand = "deskfolio"

type menuItem struct {
	col   int
	label string
}

// menuLayout places the brand and the menu titles on the menu bar
func menuLayout() []menuItem {
	items := []menuItem{{col: 1, label: menuBrand}}
	col := 1 + len(menuBrand) + 3
	for _, label := range domain.MenuItems {
		items = append(items, menuItem{col: col, label: label})
		col += len(label) + 2
	}
	return items
}

// paint draws the whole desktop and records the content hotspots
func (m *Model) paint() *Canvas {
	m.refreshStyles()
	m.hotspots = m.hotspots[:0]

	c := NewCanvas(m.width, m.height, theme.RoleDesktop)
	m.paintMenu(c)
	m.paintIcons(c)

	layerTop, layerRows := menuRows, m.height-menuRows-dockRows
	for _, w := range m.wm.Stacked() {
		if w.Minimized {
			continue
		}
		c.Clip(0, layerTop, m.width, layerRows)
		m.paintWindow(c, w)
	}
	c.ResetClip()

	m.paintDock(c)
	return c
}

func (m *Model) paintMenu(c *Canvas) {
	c.Fill(0, 0, m.width, 1, ' ', theme.RoleMenu)
	for i, item := range menuLayout() {
		role := theme.RoleMenu
		if i == 0 {
			role = theme.RoleMenuBrand
		}
		c.Text(item.col, 0, item.label, role, -1)
	}

	hint := "f1 help"
	if active, ok := m.wm.Active(); ok {
		hint = active.Title + "  ·  " + hint
	}
	if tips := m.keys.Tips(); len(tips) > 0 {
		candidate := tips[int(m.wm.Version())%len(tips)]
		if len(candidate)+len(hint)+4 < m.width/2 {
			hint = candidate + "  ·  " + hint
		}
	}
	col := max(m.width-len([]rune(hint))-1, 0)
	c.Text(col, 0, hint, theme.RoleMenuHint, -1)
}

func (m *Model) paintIcons(c *Canvas) {
	for i, app := range domain.DesktopShortcuts {
		d, ok := domain.Descriptor(app)
		if !ok {
			continue
		}
		top := menuRows + 1 + i*iconPitch
		if top+iconHeight > m.height-dockRows {
			break
		}
		badge := "[" + d.IconKey + "]"
		c.Text(iconCol+(iconWidth-len(badge))/2, top, badge, theme.RoleIcon, -1)
		label := d.Title
		if len(label) > iconWidth {
			label = label[:iconWidth]
		}
		c.Text(iconCol+(iconWidth-len(label))/2, top+1, label, theme.RoleIconLabel, -1)
	}
}

func (m *Model) paintWindow(c *Canvas, w domain.Window) {
	f := frameOf(w)
	frameRole, titleRole := theme.RoleFrameInactive, theme.RoleTitleInactive
	if w.Active {
		frameRole, titleRole = theme.RoleFrameActive, theme.RoleTitleActive
	}

	// Title bar
	c.Fill(f.col, f.row, f.width, 1, ' ', titleRole)
	c.Text(f.col+1, f.row, w.Title, titleRole, f.width-len(controlsLabel)-2)
	c.Text(f.controlsCol(), f.row, controlsLabel, theme.RoleControl, -1)

	// Borders
	for row := f.row + 1; row < f.row+f.height-1; row++ {
		c.Text(f.col, row, "│", frameRole, 1)
		c.Text(f.col+f.width-1, row, "│", frameRole, 1)
	}
	bottom := f.row + f.height - 1
	c.Text(f.col, bottom, "└"+strings.Repeat("─", f.width-2), frameRole, f.width-1)
	c.Text(f.col+f.width-1, bottom, string(resizeGrip), frameRole, 1)

	area := f.content()
	base := theme.RoleContent
	if w.App == domain.AppTerminal {
		base = theme.RoleTerminal
	}
	c.Fill(area.col, area.row, area.width, area.height, ' ', base)

	p := &pane{area: area, canvas: c, model: m, window: w.ID}
	switch w.App {
	case domain.AppAbout:
		m.paintAbout(p)
	case domain.AppContact:
		m.paintContact(p)
	case domain.AppFinder:
		m.paintFinder(p)
	case domain.AppNotes:
		m.paintNotes(p)
	case domain.AppProjects:
		m.paintProjects(p)
	case domain.AppSettings:
		m.paintSettings(p)
	case domain.AppTerminal:
		m.paintTerminal(p)
	}
}

func (m *Model) paintDock(c *Canvas) {
	top := m.height - dockRows
	c.Fill(0, top, m.width, dockRows, ' ', theme.RoleDock)
	c.Text(0, top, strings.Repeat("─", m.width), theme.RoleDock, m.width)

	for _, slot := range dockSlots(m.width, m.prefs.Dock()) {
		role := theme.RoleDockItem
		_, open := m.wm.WindowForApp(slot.app)
		if open {
			role = theme.RoleDockOpen
		}
		c.Text(slot.col, top+1, slot.label, role, -1)
		if open {
			c.Text(slot.col+slot.width/2, top+2, "•", theme.RoleDock, 1)
		}
	}
}

// pane paints inside a window's content area, in content-relative cells
type pane struct {
	area   frame
	canvas *Canvas
	model  *Model
	window int
}

func (p *pane) width() int  { return p.area.width }
func (p *pane) height() int { return p.area.height }

// text paints s at (x, y) without crossing the right edge and returns the next column
func (p *pane) text(x, y int, s string, role theme.Role) int {
	if y < 0 || y >= p.area.height || x >= p.area.width {
		return x
	}
	return p.canvas.Text(p.area.col+x, p.area.row+y, s, role, p.area.width-x) - p.area.col
}

// fillRow paints a whole content row with a role
func (p *pane) fillRow(y int, role theme.Role) {
	if y < 0 || y >= p.area.height {
		return
	}
	p.canvas.Fill(p.area.col, p.area.row+y, p.area.width, 1, ' ', role)
}

// button paints a clickable label and returns the next column
func (p *pane) button(x, y int, label string, role theme.Role, action func()) int {
	end := p.text(x, y, label, role)
	if y >= 0 && y < p.area.height && end > x {
		p.model.hotspots = append(p.model.hotspots, hotspot{
			action: action,
			col:    p.area.col + x,
			row:    p.area.row + y,
			width:  end - x,
			window: p.window,
		})
	}
	return end
}
