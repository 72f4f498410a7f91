package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/theme"
)

const terminalCursor = "█"

// handleAppKey sends a key to the focused application
func (m *Model) handleAppKey(w domain.Window, msg tea.KeyMsg) tea.Cmd {
	if w.App == domain.AppTerminal {
		m.terminalKey(msg)
		return nil
	}

	keys := m.keys.Content
	switch {
	case key.Matches(msg, keys.Up.Binding):
		m.moveSelection(w.App, -1)
	case key.Matches(msg, keys.Down.Binding):
		m.moveSelection(w.App, 1)
	case key.Matches(msg, keys.PrevQuestion.Binding):
		if w.App == domain.AppAbout {
			m.quizIndex = max(m.quizIndex-1, 0)
		}
	case key.Matches(msg, keys.NextQuestion.Binding):
		if w.App == domain.AppAbout {
			m.quizIndex = min(m.quizIndex+1, len(m.quiz.Questions())-1)
		}
	case key.Matches(msg, keys.Reload.Binding):
		switch w.App {
		case domain.AppAbout:
			m.quiz.Reset()
			m.quizIndex = 0
		case domain.AppProjects:
			m.loadProjects()
		}
	case key.Matches(msg, keys.Activate.Binding):
		m.activate(w.App)
	case w.App == domain.AppAbout && msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		if option := int(msg.Runes[0] - '1'); option >= 0 && option <= 9 {
			m.quiz.Answer(m.quizIndex, option)
		}
	}
	return nil
}

// terminalKey edits the terminal input line
func (m *Model) terminalKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		m.term.InsertRunes(msg.Runes)
	case tea.KeySpace:
		m.term.InsertRunes([]rune{' '})
	case tea.KeyBackspace:
		m.term.Backspace()
	case tea.KeyEnter:
		m.term.Submit()
	case tea.KeyUp:
		m.term.Arrow(domain.DirUp)
	case tea.KeyDown:
		m.term.Arrow(domain.DirDown)
	case tea.KeyLeft:
		m.term.Arrow(domain.DirLeft)
	case tea.KeyRight:
		m.term.Arrow(domain.DirRight)
	case tea.KeyCtrlL:
		m.term.Run("clear")
	case tea.KeyCtrlU:
		m.term.SetInput("")
	}
}

// moveSelection moves the list selection of an app by delta
func (m *Model) moveSelection(app domain.AppID, delta int) {
	switch app {
	case domain.AppFinder:
		m.finderSel = clampIndex(m.finderSel+delta, len(domain.VirtualFiles))
	case domain.AppProjects:
		if m.projects != nil {
			m.projectSel = clampIndex(m.projectSel+delta, len(m.projects.State().Repos))
		}
	case domain.AppSettings:
		m.settingSel = clampIndex(m.settingSel+delta, len(m.settingRows()))
	case domain.AppAbout:
		m.quizIndex = clampIndex(m.quizIndex+delta, len(m.quiz.Questions()))
	}
}

// activate runs the enter action of an app
func (m *Model) activate(app domain.AppID) {
	switch app {
	case domain.AppAbout:
		m.answerQuiz(m.quizIndex)
	case domain.AppFinder:
		m.catFile(m.finderSel)
	case domain.AppNotes:
		m.editNotes()
	case domain.AppSettings:
		rows := m.settingRows()
		if m.settingSel >= 0 && m.settingSel < len(rows) {
			rows[m.settingSel].toggle()
		}
	case domain.AppContact:
		m.openApp(domain.AppTerminal)
		m.term.Run("contact")
	}
}

// catFile prints a virtual file in the terminal
func (m *Model) catFile(index int) {
	if index < 0 || index >= len(domain.VirtualFiles) {
		return
	}
	m.openApp(domain.AppTerminal)
	m.term.Run("cat " + domain.VirtualFiles[index].Name)
}

func clampIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return domain.Clamp(i, 0, n-1)
}

func (m *Model) paintAbout(p *pane) {
	y := 0
	p.text(1, y, "About Me", theme.RoleContentAccent)
	y++
	if f, ok := domain.FindFile("about.txt"); ok {
		for _, line := range f.Content {
			for _, wrapped := range wrapWords(line, p.width()-2) {
				p.text(1, y, wrapped, theme.RoleContent)
				y++
			}
		}
	}
	y++

	questions := m.quiz.Questions()
	if len(questions) == 0 {
		return
	}
	q := clampIndex(m.quizIndex, len(questions))
	question := questions[q]

	x := p.text(1, y, fmt.Sprintf("Quiz  %d/%d solved  ", m.quiz.SolvedCount(), len(questions)), theme.RoleContentMuted)
	x = p.button(x, y, "‹ prev", theme.RoleContentAccent, func() { m.quizIndex = max(q-1, 0) })
	x = p.text(x, y, "  ", theme.RoleContent)
	x = p.button(x, y, "next ›", theme.RoleContentAccent, func() { m.quizIndex = min(q+1, len(questions)-1) })
	x = p.text(x, y, "  ", theme.RoleContent)
	p.button(x, y, "reset", theme.RoleContentAccent, func() { m.quiz.Reset(); m.quizIndex = 0 })
	y += 2

	for _, line := range wrapWords(fmt.Sprintf("%d. %s", q+1, question.Prompt), p.width()-2) {
		p.text(1, y, line, theme.RoleContent)
		y++
	}

	selected, hasSelected := m.quiz.Selected(q)
	solved := m.quiz.Solved(q)
	for i, label := range question.Options {
		role := theme.RoleContent
		marker := "( )"
		if hasSelected && selected == i {
			marker = "(•)"
			role = theme.RoleContentError
			if solved {
				role = theme.RoleSelected
			}
		}
		option := i
		p.button(2, y, fmt.Sprintf("%s %d) %s", marker, i+1, label), role, func() { m.quiz.Answer(q, option) })
		y++
	}

	if feedback := m.quiz.Feedback(q); feedback != "" {
		role := theme.RoleContentError
		if solved {
			role = theme.RoleContentAccent
		}
		for _, line := range wrapWords(feedback, p.width()-2) {
			p.text(1, y, line, role)
			y++
		}
	}
	p.text(1, y, m.quiz.AttemptLabel(q), theme.RoleContentMuted)
}

func (m *Model) paintContact(p *pane) {
	p.text(1, 0, "Contact", theme.RoleContentAccent)
	y := 2
	if f, ok := domain.FindFile("contact.txt"); ok {
		for _, line := range f.Content {
			p.text(1, y, line, theme.RoleContent)
			y++
		}
	}
	y++
	p.button(1, y, "[ open in terminal ]", theme.RoleContentAccent, func() { m.activate(domain.AppContact) })
}

func (m *Model) paintFinder(p *pane) {
	listWidth := max(p.width()/3, 14)
	p.text(1, 0, "Home", theme.RoleContentAccent)
	for i, f := range domain.VirtualFiles {
		y := 1 + i
		role := theme.RoleContent
		if i == m.finderSel {
			role = theme.RoleSelected
		}
		label := runewidth.FillRight(" "+f.Name, listWidth-1)
		index := i
		p.button(1, y, label, role, func() {
			if m.finderSel == index {
				m.catFile(index)
				return
			}
			m.finderSel = index
		})
	}

	for y := 0; y < p.height(); y++ {
		p.text(listWidth+1, y, "│", theme.RoleContentMuted)
	}
	if m.finderSel < 0 || m.finderSel >= len(domain.VirtualFiles) {
		return
	}
	file := domain.VirtualFiles[m.finderSel]
	x := listWidth + 3
	p.text(x, 0, file.Name, theme.RoleContentAccent)
	y := 1
	for _, line := range file.Content {
		for _, wrapped := range wrapWords(line, p.width()-x-1) {
			p.text(x, y, wrapped, theme.RoleContent)
			y++
		}
	}
	p.text(x, p.height()-1, "enter: cat in terminal", theme.RoleContentMuted)
}

func (m *Model) paintNotes(p *pane) {
	x := p.text(1, 0, "Notes", theme.RoleContentAccent)
	p.button(x+2, 0, "[ edit ]", theme.RoleContentAccent, m.editNotes)

	note := m.prefs.Notes()
	if strings.TrimSpace(note) == "" {
		p.text(1, 2, "Nothing here yet. Press enter to write a note.", theme.RoleContentMuted)
		return
	}
	y := 2
	for _, paragraph := range strings.Split(note, "\n") {
		for _, line := range wrapWords(paragraph, p.width()-2) {
			p.text(1, y, line, theme.RoleContent)
			y++
		}
	}
}

func (m *Model) paintProjects(p *pane) {
	if m.projects == nil {
		p.text(1, 0, "Projects", theme.RoleContentAccent)
		p.text(1, 2, "No GitHub user configured.", theme.RoleContentMuted)
		return
	}
	p.text(1, 0, "github.com/"+m.projects.User(), theme.RoleContentAccent)

	st := m.projects.State()
	switch {
	case st.Err != nil && !st.Loading:
		y := 2
		for _, line := range formatErrorForDisplay(st.Err, p.width()-2) {
			p.text(1, y, line, theme.RoleContentError)
			y++
		}
		p.button(1, y+1, "[ retry ]", theme.RoleContentAccent, m.loadProjects)
		return
	case !st.Loaded:
		p.text(1, 2, "Loading repositories...", theme.RoleContentMuted)
		return
	case len(st.Repos) == 0:
		p.text(1, 2, "No public repositories yet.", theme.RoleContentMuted)
		return
	}

	sel := clampIndex(m.projectSel, len(st.Repos))
	y := 2
	for i, repo := range st.Repos {
		if y+1 >= p.height() {
			break
		}
		role := theme.RoleContent
		if i == sel {
			role = theme.RoleSelected
			p.fillRow(y, role)
		}
		index := i
		x := p.button(1, y, repo.Name, role, func() { m.projectSel = index })
		meta := fmt.Sprintf("  ★ %d", repo.Stars)
		if repo.Language != "" {
			meta += "  " + repo.Language
		}
		p.text(x, y, meta, role)
		description := repo.Description
		if description == "" {
			description = "no description"
		}
		p.text(3, y+1, runewidth.Truncate(description, p.width()-4, "…"), theme.RoleContentMuted)
		y += 2
	}
	p.text(1, p.height()-1, st.Repos[sel].URL, theme.RoleContentMuted)
}

// settingRow is one toggleable line of the Settings app
type settingRow struct {
	label  string
	toggle func()
}

func (m *Model) settingRows() []settingRow {
	rows := []settingRow{{
		label:  "Theme: " + string(m.prefs.Theme()) + "  (ctrl+t)",
		toggle: m.toggleTheme,
	}}
	dock := m.prefs.Dock()
	for _, d := range domain.Apps {
		app := d.ID
		pinned := false
		for _, a := range dock {
			if a == app {
				pinned = true
			}
		}
		mark := "[ ]"
		if pinned {
			mark = "[x]"
		}
		rows = append(rows, settingRow{
			label: mark + " " + d.Title + " in dock",
			toggle: func() {
				if pinned {
					m.prefs.Unpin(app)
				} else {
					m.prefs.Pin(app)
				}
			},
		})
	}
	return rows
}

func (m *Model) paintSettings(p *pane) {
	p.text(1, 0, "Settings", theme.RoleContentAccent)
	rows := m.settingRows()
	y := 2
	for i, row := range rows {
		role := theme.RoleContent
		if i == m.settingSel {
			role = theme.RoleSelected
		}
		index, toggle := i, row.toggle
		p.button(1, y, row.label, role, func() {
			m.settingSel = index
			toggle()
		})
		y++
		if i == 0 {
			y++
		}
	}

	y++
	guess, snake := m.prefs.GuessStats(), m.prefs.SnakeStats()
	p.text(1, y, fmt.Sprintf("guess: %d wins, %d losses", guess.Wins, guess.Losses), theme.RoleContentMuted)
	p.text(1, y+1, fmt.Sprintf("snake: %d wins, %d losses, best score %d", snake.Wins, snake.Losses, snake.Best), theme.RoleContentMuted)
}

// terminalRow is a rendered terminal line
type terminalRow struct {
	role theme.Role
	text string
}

func (m *Model) paintTerminal(p *pane) {
	width := p.width() - 1
	var rows []terminalRow
	for _, line := range m.term.Lines() {
		role := theme.RoleTerminal
		switch line.Kind {
		case domain.LineCommand:
			role = theme.RoleTerminalCommand
		case domain.LineError:
			role = theme.RoleTerminalError
		case domain.LineGame:
			role = theme.RoleTerminalGame
		}
		for _, wrapped := range wrapLine(line.Text, width) {
			rows = append(rows, terminalRow{role: role, text: wrapped})
		}
	}
	if m.term.SnakeActive() {
		for _, line := range m.term.SnakeBoard() {
			rows = append(rows, terminalRow{role: theme.RoleTerminalGame, text: line})
		}
	}
	for _, wrapped := range wrapLine(m.term.Prompt()+m.term.Input()+terminalCursor, width) {
		rows = append(rows, terminalRow{role: theme.RoleTerminalCommand, text: wrapped})
	}

	if extra := len(rows) - p.height(); extra > 0 {
		rows = rows[extra:]
	}
	for y, row := range rows {
		p.text(1, y, row.text, row.role)
	}
}
