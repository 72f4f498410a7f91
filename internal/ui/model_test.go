package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deskfolio/deskfolio/internal/adapters/clock"
	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/ports/mocks"
	"github.com/deskfolio/deskfolio/internal/services"
)

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	m := NewModel(opts)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func press(m *Model, col, row int) {
	m.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func motion(m *Model, col, row int) {
	m.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

func release(m *Model, col, row int) {
	m.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func typeText(m *Model, text string) {
	for i, word := range strings.Split(text, " ") {
		if i > 0 {
			m.Update(tea.KeyMsg{Type: tea.KeySpace})
		}
		if word != "" {
			m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(word)})
		}
	}
}

func lastLine(m *Model) domain.TerminalLine {
	lines := m.term.Lines()
	return lines[len(lines)-1]
}

// collectMsgs runs a command and any batched commands, returning their messages
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestClickingIconOpensApp(t *testing.T) {
	m := newTestModel(t, Options{})

	press(m, 5, 2)

	active, ok := m.wm.Active()
	require.True(t, ok)
	assert.Equal(t, domain.AppAbout, active.App)
	assert.Equal(t, 24, active.X)
	assert.Equal(t, 24, active.Y)
}

func TestClickingDockOpensApp(t *testing.T) {
	m := newTestModel(t, Options{})

	press(m, 40, 38)

	active, ok := m.wm.Active()
	require.True(t, ok)
	assert.Equal(t, domain.AppFinder, active.App)
}

func TestDraggingTitleBarMovesWindow(t *testing.T) {
	m := newTestModel(t, Options{})
	id := m.openApp(domain.AppAbout)

	press(m, 10, 2)
	_, dragging := m.wm.Dragging()
	assert.True(t, dragging)

	motion(m, 20, 5)
	release(m, 20, 5)

	w, _ := m.wm.Window(id)
	assert.Equal(t, 104, w.X)
	assert.Equal(t, 72, w.Y)
	_, dragging = m.wm.Dragging()
	assert.False(t, dragging)
}

func TestMotionWithoutPressDoesNothing(t *testing.T) {
	m := newTestModel(t, Options{})
	id := m.openApp(domain.AppAbout)

	motion(m, 40, 20)

	w, _ := m.wm.Window(id)
	assert.Equal(t, 24, w.X)
	assert.Equal(t, 24, w.Y)
}

func TestResizeGripResizesWindow(t *testing.T) {
	m := newTestModel(t, Options{})
	id := m.openApp(domain.AppAbout)

	press(m, 72, 29)
	_, resizing := m.wm.Resizing()
	require.True(t, resizing)

	motion(m, 80, 31)
	release(m, 80, 31)

	w, _ := m.wm.Window(id)
	assert.Equal(t, 624, w.Width)
	assert.Equal(t, 492, w.Height)
}

func TestTitleControls(t *testing.T) {
	m := newTestModel(t, Options{})
	id := m.openApp(domain.AppAbout)

	press(m, 68, 2)
	w, _ := m.wm.Window(id)
	assert.True(t, w.Maximized)
	assert.Equal(t, domain.Bounds{X: 12, Y: 12, Width: 936, Height: 552}, w.Bounds())
	_, dragging := m.wm.Dragging()
	assert.False(t, dragging)

	// Maximized: the controls moved with the frame
	f := frameOf(w)
	press(m, f.controlsCol()+1, f.row)
	w, _ = m.wm.Window(id)
	assert.True(t, w.Minimized)

	m.openApp(domain.AppAbout)
	w, _ = m.wm.Window(id)
	f = frameOf(w)
	press(m, f.controlsCol()+7, f.row)
	_, ok := m.wm.Window(id)
	assert.False(t, ok)
}

func TestClickingContentBringsWindowToFront(t *testing.T) {
	m := newTestModel(t, Options{})
	first := m.openApp(domain.AppAbout)
	m.openApp(domain.AppContact)

	// (5, 20) is inside About and outside Contact
	press(m, 5, 20)

	active, _ := m.wm.Active()
	assert.Equal(t, first, active.ID)
}

func TestWindowKeys(t *testing.T) {
	m := newTestModel(t, Options{})
	about := m.openApp(domain.AppAbout)
	notes := m.openApp(domain.AppNotes)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	active, _ := m.wm.Active()
	assert.Equal(t, about, active.ID)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	w, _ := m.wm.Window(about)
	assert.True(t, w.Maximized)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	w, _ = m.wm.Window(about)
	assert.True(t, w.Minimized)
	active, _ = m.wm.Active()
	assert.Equal(t, notes, active.ID)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	_, ok := m.wm.Window(notes)
	assert.False(t, ok)
	_, ok = m.wm.Active()
	assert.False(t, ok)
}

func TestTerminalTyping(t *testing.T) {
	m := newTestModel(t, Options{})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	active, ok := m.wm.Active()
	require.True(t, ok)
	require.Equal(t, domain.AppTerminal, active.App)

	typeText(m, "echo hello world")
	assert.Equal(t, "echo hello world", m.term.Input())

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "hello worl", lastLine(m).Text)
	assert.Empty(t, m.term.Input())

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "echo hello worl", m.term.Input())

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Empty(t, m.term.Input())
}

func TestTerminalOpenCommandOpensWindow(t *testing.T) {
	m := newTestModel(t, Options{})
	m.openApp(domain.AppTerminal)

	typeText(m, "open notas")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	active, _ := m.wm.Active()
	assert.Equal(t, domain.AppNotes, active.App)
}

func TestSnakeTicksRunOnTheEventLoop(t *testing.T) {
	m := newTestModel(t, Options{SnakeInterval: time.Hour})
	m.openApp(domain.AppTerminal)

	typeText(m, "snake")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	require.True(t, m.term.SnakeActive())
	assert.Equal(t, 1, m.scheduler.ActiveCount())

	before := m.term.SnakeBoard()
	_, cmd = m.Update(clock.TaskDueMsg{ID: 1})
	assert.NotNil(t, cmd, "the tick re-arms")
	assert.NotEqual(t, before, m.term.SnakeBoard())

	// Closing the terminal window stops the run
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	assert.False(t, m.term.SnakeActive())
	assert.Equal(t, 0, m.scheduler.ActiveCount())

	_, cmd = m.Update(clock.TaskDueMsg{ID: 1})
	assert.Nil(t, cmd)
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t, Options{})
	require.Equal(t, domain.ThemeLight, m.prefs.Theme())

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, domain.ThemeDark, m.prefs.Theme())
	assert.Equal(t, domain.ThemeDark, m.themeName)

	// The terminal command switches the palette too
	m.openApp(domain.AppTerminal)
	m.term.Run("theme light")
	m.View()
	assert.Equal(t, domain.ThemeLight, m.themeName)
}

func TestHelpScreen(t *testing.T) {
	m := newTestModel(t, Options{})

	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	require.Equal(t, stateHelp, m.state)
	assert.Contains(t, stripAnsi(m.View()), "Keyboard shortcuts")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateDesktop, m.state)
	assert.Nil(t, m.helpScreen)
}

func TestCommandPaletteOpensApp(t *testing.T) {
	m := newTestModel(t, Options{})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	require.Equal(t, stateCommandPalette, m.state)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("term")})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateDesktop, m.state)

	msgs := collectMsgs(cmd)
	require.Contains(t, msgs, OpenAppMsg{App: "terminal"})
	m.Update(OpenAppMsg{App: "terminal"})

	active, ok := m.wm.Active()
	require.True(t, ok)
	assert.Equal(t, domain.AppTerminal, active.App)
}

func TestCommandPaletteCancel(t *testing.T) {
	m := newTestModel(t, Options{})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, stateDesktop, m.state)
	assert.Nil(t, cmd)
}

func TestQuizKeys(t *testing.T) {
	m := newTestModel(t, Options{})
	m.openApp(domain.AppAbout)
	correct := domain.QuizQuestions[0].CorrectIndex

	wrong := (correct + 1) % len(domain.QuizQuestions[0].Options)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{rune('1' + wrong)}})
	assert.False(t, m.quiz.Solved(0))
	assert.Equal(t, "1 wrong attempt", m.quiz.AttemptLabel(0))

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{rune('1' + correct)}})
	assert.True(t, m.quiz.Solved(0))
	assert.Equal(t, 1, m.quiz.SolvedCount())

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.quizIndex)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Equal(t, 0, m.quiz.SolvedCount())
	assert.Equal(t, 0, m.quizIndex)
}

func TestQuizDialogOpensOnEnter(t *testing.T) {
	m := newTestModel(t, Options{})
	m.openApp(domain.AppAbout)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stateAnsweringQuiz, m.state)
	assert.Contains(t, stripAnsi(m.View()), domain.QuizQuestions[0].Prompt)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateDesktop, m.state)
	assert.False(t, m.quiz.Solved(0))
}

func TestNotesDialog(t *testing.T) {
	m := newTestModel(t, Options{})
	m.openApp(domain.AppNotes)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stateEditingNotes, m.state)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateDesktop, m.state)
	assert.Empty(t, m.prefs.Notes())
}

func TestSettingsTogglesDock(t *testing.T) {
	m := newTestModel(t, Options{})
	m.openApp(domain.AppSettings)
	require.NotContains(t, m.prefs.Dock(), domain.AppAbout)

	// Row 0 is the theme, row 1 the first app (About Me)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.prefs.Dock(), domain.AppAbout)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotContains(t, m.prefs.Dock(), domain.AppAbout)
}

func TestFinderEnterCatsFile(t *testing.T) {
	m := newTestModel(t, Options{})
	m.openApp(domain.AppFinder)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	active, _ := m.wm.Active()
	assert.Equal(t, domain.AppTerminal, active.App)
	file := domain.VirtualFiles[1]
	assert.Equal(t, file.Content[len(file.Content)-1], lastLine(m).Text)
}

func TestProjectsLoadOnOpen(t *testing.T) {
	fetcher := mocks.NewMockRepoFetcher(t)
	fetcher.EXPECT().ListRepositories(mock.Anything, "octo").Return([]domain.Repository{
		{Name: "octo-site", Description: "my site", Language: "Go", Stars: 3, URL: "https://github.com/octo/octo-site"},
	}, nil).Once()

	m := newTestModel(t, Options{
		Context:  context.Background(),
		Projects: services.NewProjectsService(fetcher, "octo", nil),
	})

	_, cmd := m.Update(OpenAppMsg{App: "projetos"})
	msgs := collectMsgs(cmd)
	require.Contains(t, msgs, projectsLoadedMsg{Count: 1})
	m.Update(projectsLoadedMsg{Count: 1})

	view := stripAnsi(m.View())
	assert.Contains(t, view, "github.com/octo")
	assert.Contains(t, view, "octo-site")

	// Reopening does not fetch again
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	_, cmd = m.Update(OpenAppMsg{App: "projects"})
	assert.Empty(t, collectMsgs(cmd))
}

func TestViewTooSmall(t *testing.T) {
	m := NewModel(Options{})
	assert.Equal(t, "Loading desktop...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, stripAnsi(m.View()), "needs a 60x18 terminal")

	// Mouse input is ignored while the desktop is not drawn
	press(m, 5, 2)
	_, ok := m.wm.Active()
	assert.False(t, ok)
}

func TestViewDrawsDesktop(t *testing.T) {
	m := newTestModel(t, Options{})
	m.openApp(domain.AppTerminal)

	lines := strings.Split(stripAnsi(m.View()), "\n")
	require.Len(t, lines, 40)
	assert.Contains(t, lines[0], "deskfolio")
	assert.Contains(t, lines[2], "Terminal")
	assert.Contains(t, lines[2], controlsLabel)
	assert.Contains(t, strings.Join(lines, "\n"), "guest@portfolio:~$ "+terminalCursor)
	assert.Contains(t, lines[38], "Finder")
}

func TestStartupApp(t *testing.T) {
	m := NewModel(Options{StartupApp: domain.AppTerminal})
	assert.NotNil(t, m.Init())

	active, ok := m.wm.Active()
	require.True(t, ok)
	assert.Equal(t, domain.AppTerminal, active.App)
}

func TestQuitClosesTerminal(t *testing.T) {
	m := newTestModel(t, Options{SnakeInterval: time.Hour})
	m.openApp(domain.AppTerminal)
	m.term.Run("snake")
	require.Equal(t, 1, m.scheduler.ActiveCount())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, 0, m.scheduler.ActiveCount())
}
