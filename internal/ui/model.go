package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/deskfolio/deskfolio/internal/adapters/clock"
	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/logging"
	"github.com/deskfolio/deskfolio/internal/services"
	"github.com/deskfolio/deskfolio/internal/theme"
)

type uiState int

const (
	stateDesktop uiState = iota
	stateEditingNotes
	stateAnsweringQuiz
	stateHelp
	stateCommandPalette
)

// Options configures one desktop
type Options struct {
	Context       context.Context
	DevMode       bool
	Host          string
	Keys          config.KeyBindingsConfig
	Preferences   *services.PreferencesService
	Projects      *services.ProjectsService
	Rand          services.Rand
	Renderer      *lipgloss.Renderer
	SnakeInterval time.Duration
	StartupApp    domain.AppID
	User          string
}

// Model is the bubbletea model of one desktop: windows, terminal, dock and dialogs
type Model struct {
	commandPalette *CommandPalette // Launcher overlay
	ctx            context.Context
	devMode        bool
	finderSel      int
	height         int
	helpScreen     *Dialog      // Help screen dialog
	hotspots       []hotspot    // Clickable content areas from the last paint
	keys           KeyMap       // Keyboard shortcuts
	layer          domain.Layer // Window layer, re-measured on every query
	notesForm      *Dialog      // Note editing dialog
	pending        []tea.Cmd    // Commands produced by callbacks during Update
	prefs          *services.PreferencesService
	projectSel     int
	projects       *services.ProjectsService
	quiz           *services.QuizService
	quizForm       *Dialog // Quiz answer dialog
	quizIndex      int
	renderer       *lipgloss.Renderer
	scheduler      *clock.TeaScheduler
	settingSel     int
	startupApp     domain.AppID
	state          uiState
	styles         *theme.Styles
	term           *services.TerminalSession
	themeName      domain.ThemeName
	width          int
	wm             *services.WindowManager
}

// openerFunc lets the terminal open windows through the desktop
type openerFunc func(domain.AppID) int

func (f openerFunc) OpenApp(app domain.AppID) int { return f(app) }

// NewModel creates a desktop. A nil Preferences keeps everything in memory.
func NewModel(opts Options) *Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Preferences == nil {
		opts.Preferences = services.NewPreferencesService(opts.Context, nil, domain.ThemeLight)
	}

	m := &Model{
		ctx:        opts.Context,
		devMode:    opts.DevMode,
		keys:       NewKeyMap(opts.Keys),
		prefs:      opts.Preferences,
		projects:   opts.Projects,
		quiz:       services.NewQuizService(domain.QuizQuestions),
		renderer:   opts.Renderer,
		scheduler:  clock.NewTeaScheduler(),
		startupApp: opts.StartupApp,
		state:      stateDesktop,
		wm:         services.NewWindowManager(),
	}
	m.layer = domain.LayerFunc(func() domain.Rect { return layerRect(m.width, m.height) })
	m.term = services.NewTerminalSession(services.TerminalConfig{
		Host:          opts.Host,
		Opener:        openerFunc(m.openApp),
		Preferences:   m.prefs,
		Rand:          opts.Rand,
		Scheduler:     m.scheduler,
		SnakeInterval: opts.SnakeInterval,
		User:          opts.User,
	})
	m.refreshStyles()
	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("deskfolio")}
	if m.startupApp != "" {
		m.openApp(m.startupApp)
	}
	return tea.Batch(append(cmds, m.flush()...)...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.helpScreen != nil {
			m.helpScreen.Update(msg)
		}
		return m, nil

	case clock.TaskDueMsg:
		cmd = m.scheduler.Fire(msg.ID)
		return m, tea.Batch(append([]tea.Cmd{cmd}, m.flush()...)...)

	case projectsLoadedMsg:
		if msg.Err != nil {
			logging.Logger.Warn("Failed to load projects", "error", msg.Err)
		} else {
			logging.Logger.Debug("Projects loaded", "count", msg.Count)
		}
		return m, nil

	case OpenAppMsg:
		if app, ok := domain.ResolveAlias(msg.App); ok {
			m.openApp(app)
		}
		return m, tea.Batch(m.flush()...)

	case ShowHelpMsg:
		m.showHelp()
		return m, tea.Batch(m.flush()...)

	case QuitMsg:
		m.term.Close()
		return m, tea.Quit

	case toggleThemeMsg:
		m.toggleTheme()
		return m, nil

	case windowActionMsg:
		m.applyWindowAction(msg.Name)
		return m, nil
	}

	switch m.state {
	case stateDesktop:
		cmd = m.updateDesktop(msg)
	case stateEditingNotes:
		cmd = m.updateEditingNotes(msg)
	case stateAnsweringQuiz:
		cmd = m.updateAnsweringQuiz(msg)
	case stateHelp:
		cmd = m.updateHelp(msg)
	case stateCommandPalette:
		cmd = m.updateCommandPalette(msg)
	}
	return m, tea.Batch(append([]tea.Cmd{cmd}, m.flush()...)...)
}

func (m *Model) updateDesktop(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return nil
}

func (m *Model) updateEditingNotes(msg tea.Msg) tea.Cmd {
	// Delegate to dialog (it handles cancel internally)
	_, cmd := m.notesForm.Update(msg)

	if content, ok := m.notesForm.Content().(*NotesForm); ok && content.Completed {
		m.state = stateDesktop
		m.notesForm = nil
		return nil
	}
	return cmd
}

func (m *Model) updateAnsweringQuiz(msg tea.Msg) tea.Cmd {
	_, cmd := m.quizForm.Update(msg)

	if content, ok := m.quizForm.Content().(*QuizForm); ok && content.Completed {
		m.state = stateDesktop
		m.quizForm = nil
		return nil
	}
	return cmd
}

func (m *Model) updateCommandPalette(msg tea.Msg) tea.Cmd {
	_, cmd := m.commandPalette.Update(msg)

	if m.commandPalette.Completed {
		result := m.commandPalette.Result
		m.state = stateDesktop
		m.commandPalette = nil

		if result.Cancelled || result.Action == nil {
			return nil
		}
		_, hasWindow := m.wm.Active()
		if action := NewActionDispatcher(hasWindow).Dispatch(*result.Action); action != nil {
			return func() tea.Msg { return action }
		}
		return nil
	}
	return cmd
}

func (m *Model) updateHelp(msg tea.Msg) tea.Cmd {
	_, cmd := m.helpScreen.Update(msg)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateDesktop
		m.helpScreen = nil
		return nil
	}
	return cmd
}

// handleKey routes desktop-wide shortcuts, then the focused app's keys
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	active, hasActive := m.wm.Active()

	switch {
	case key.Matches(msg, m.keys.Application.Quit.Binding):
		m.term.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Application.Help.Binding):
		// "?" stays typeable inside the terminal
		if !(hasActive && active.App == domain.AppTerminal && msg.Type == tea.KeyRunes) {
			m.showHelp()
			return nil
		}
	case key.Matches(msg, m.keys.Application.CommandPalette.Binding):
		m.showCommandPalette()
		return nil
	case key.Matches(msg, m.keys.Application.ThemeToggle.Binding):
		m.toggleTheme()
		return nil
	case key.Matches(msg, m.keys.Window.CycleFocus.Binding):
		m.cycleFocus()
		return nil
	case key.Matches(msg, m.keys.Window.Launcher.Binding):
		m.openApp(domain.AppTerminal)
		return nil
	}

	if !hasActive {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Window.Close.Binding):
		m.applyWindowAction("close_window")
		return nil
	case key.Matches(msg, m.keys.Window.Minimize.Binding):
		m.applyWindowAction("minimize_window")
		return nil
	case key.Matches(msg, m.keys.Window.Maximize.Binding):
		m.applyWindowAction("maximize_window")
		return nil
	}

	return m.handleAppKey(active, msg)
}

// applyWindowAction runs a named window action on the focused window
func (m *Model) applyWindowAction(name string) {
	if name == "cycle_focus" {
		m.cycleFocus()
		return
	}
	active, ok := m.wm.Active()
	if !ok {
		return
	}
	switch name {
	case "close_window":
		m.closeWindow(active)
	case "minimize_window":
		m.wm.Minimize(active.ID)
	case "maximize_window":
		m.wm.ToggleMaximize(active.ID, m.layer)
	}
}

// openApp opens or focuses an app window and starts whatever the app needs
func (m *Model) openApp(app domain.AppID) int {
	id := m.wm.OpenApp(app)
	if id != 0 && app == domain.AppProjects {
		m.loadProjects()
	}
	return id
}

func (m *Model) closeWindow(w domain.Window) {
	if w.App == domain.AppTerminal {
		m.term.Close()
	}
	m.wm.Close(w.ID)
}

// cycleFocus brings the lowest visible window to the front
func (m *Model) cycleFocus() {
	for _, w := range m.wm.Stacked() {
		if !w.Minimized {
			if !w.Active {
				m.wm.BringToFront(w.ID)
			}
			return
		}
	}
}

func (m *Model) toggleTheme() {
	next := domain.ThemeDark
	if m.prefs.Theme() == domain.ThemeDark {
		next = domain.ThemeLight
	}
	m.prefs.SetTheme(next)
	m.refreshStyles()
}

// refreshStyles rebuilds the styles when the saved theme changed
func (m *Model) refreshStyles() {
	name := m.prefs.Theme()
	if m.styles != nil && name == m.themeName {
		return
	}
	m.themeName = name
	m.styles = theme.NewStyles(m.renderer, theme.PaletteFor(string(name)))
}

func (m *Model) showHelp() {
	help := NewHelpScreen(&m.keys)
	help.Init()
	help.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.helpScreen = NewDialog("Keyboard shortcuts", help, m.devMode)
	m.state = stateHelp
}

func (m *Model) showCommandPalette() {
	_, hasWindow := m.wm.Active()
	m.commandPalette = NewCommandPalette(hasWindow, m.keys)
	m.state = stateCommandPalette
	m.pending = append(m.pending, m.commandPalette.Init())
}

func (m *Model) editNotes() {
	m.notesForm = NewDialog("Notes", NewNotesForm(m.prefs), m.devMode)
	m.state = stateEditingNotes
	m.pending = append(m.pending, m.notesForm.Init())
}

func (m *Model) answerQuiz(question int) {
	if question < 0 || question >= len(m.quiz.Questions()) || m.quiz.Solved(question) {
		return
	}
	m.quizForm = NewDialog(fmt.Sprintf("Question %d of %d", question+1, len(m.quiz.Questions())),
		NewQuizForm(m.quiz, question), m.devMode)
	m.state = stateAnsweringQuiz
	m.pending = append(m.pending, m.quizForm.Init())
}

// loadProjects queues the repository fetch unless one already succeeded
func (m *Model) loadProjects() {
	if m.projects == nil {
		return
	}
	if st := m.projects.State(); st.Loaded || st.Loading {
		return
	}
	m.pending = append(m.pending, loadProjectsCmd(m.ctx, m.projects))
}

// flush returns the commands queued during this update, including new scheduler ticks
func (m *Model) flush() []tea.Cmd {
	cmds := append(m.pending, m.scheduler.Drain()...)
	m.pending = nil
	return cmds
}

// Close stops background work owned by the desktop
func (m *Model) Close() {
	m.term.Close()
}

func (m *Model) tooSmall() bool {
	return m.width < MinCols || m.height < MinRows
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading desktop..."
	}
	if m.tooSmall() {
		msg := fmt.Sprintf("deskfolio needs a %dx%d terminal (this one is %dx%d)", MinCols, MinRows, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.HintStyle.Render(msg))
	}

	desktop := m.paint().Render(m.styles)

	switch m.state {
	case stateEditingNotes:
		if m.notesForm != nil {
			return compositeOverlay(desktop, m.notesForm.View(), m.width, m.height)
		}
	case stateAnsweringQuiz:
		if m.quizForm != nil {
			return compositeOverlay(desktop, m.quizForm.View(), m.width, m.height)
		}
	case stateHelp:
		if m.helpScreen != nil {
			return compositeOverlay(desktop, m.helpScreen.View(), m.width, m.height)
		}
	case stateCommandPalette:
		if m.commandPalette != nil {
			palette := NewDialog("Search", m.commandPalette, m.devMode)
			return compositeOverlay(desktop, palette.View(), m.width, m.height)
		}
	}
	return desktop
}
