package services

import (
	"strings"
	"time"
	"unicode"

	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/ports"
)

const (
	MaxHistory    = 40
	MaxScrollback = 80
)

// AppOpener opens or focuses an application window
type AppOpener interface {
	OpenApp(app domain.AppID) int
}

// TerminalPreferences is what the terminal reads and changes through commands
type TerminalPreferences interface {
	Dock() []domain.AppID
	GuessStats() domain.GuessStats
	Pin(app domain.AppID) bool
	SaveGuessStats(stats domain.GuessStats)
	SaveSnakeStats(stats domain.SnakeStats)
	SetTheme(theme domain.ThemeName)
	SnakeStats() domain.SnakeStats
	Theme() domain.ThemeName
	Unpin(app domain.AppID) bool
}

// TerminalConfig wires a TerminalSession to its collaborators
type TerminalConfig struct {
	Host          string
	Opener        AppOpener
	Preferences   TerminalPreferences
	Rand          Rand
	Scheduler     ports.Scheduler
	SnakeInterval time.Duration
	User          string
}

// TerminalSession is the simulated shell: scrollback, input line, history
// and the two games. Input goes to an active game before the command table.
type TerminalSession struct {
	cursor  int // history browse position, -1 when not browsing
	draft   string
	guess   *GuessEngine
	history []string
	input   string
	lines   []domain.TerminalLine
	opener  AppOpener
	prefs   TerminalPreferences
	prompt  string
	snake   *SnakeEngine
}

// NewTerminalSession creates a session and prints the greeting
func NewTerminalSession(cfg TerminalConfig) *TerminalSession {
	if cfg.User == "" {
		cfg.User = "guest"
	}
	if cfg.Host == "" {
		cfg.Host = "portfolio"
	}
	if cfg.Rand == nil {
		cfg.Rand = NewRand()
	}

	t := &TerminalSession{
		cursor: -1,
		opener: cfg.Opener,
		prefs:  cfg.Preferences,
		prompt: cfg.User + "@" + cfg.Host + ":~$ ",
	}

	var guessStats domain.GuessStats
	var snakeStats domain.SnakeStats
	var saveGuess func(domain.GuessStats)
	var saveSnake func(domain.SnakeStats)
	if t.prefs != nil {
		guessStats, snakeStats = t.prefs.GuessStats(), t.prefs.SnakeStats()
		saveGuess, saveSnake = t.prefs.SaveGuessStats, t.prefs.SaveSnakeStats
	}

	t.guess = NewGuessEngine(cfg.Rand, guessStats, saveGuess)
	t.snake = NewSnakeEngine(SnakeConfig{
		Interval:  cfg.SnakeInterval,
		OnStats:   saveSnake,
		Rand:      cfg.Rand,
		Scheduler: cfg.Scheduler,
		Sink:      func(line string) { t.print(domain.LineGame, line) },
		Stats:     snakeStats,
	})

	t.print(domain.LineOutput, "deskfolio terminal. type 'help' to see the available commands.")
	return t
}

// Prompt returns the prompt string
func (t *TerminalSession) Prompt() string {
	return t.prompt
}

// Lines returns a copy of the scrollback
func (t *TerminalSession) Lines() []domain.TerminalLine {
	out := make([]domain.TerminalLine, len(t.lines))
	copy(out, t.lines)
	return out
}

// Input returns the current input buffer
func (t *TerminalSession) Input() string {
	return t.input
}

// History returns a copy of the stored commands, oldest first
func (t *TerminalSession) History() []string {
	return append([]string(nil), t.history...)
}

// SnakeBoard returns the snake grid rows or the inactive placeholder
func (t *TerminalSession) SnakeBoard() []string {
	return t.snake.Board()
}

// SnakeActive reports whether a snake run is in progress
func (t *TerminalSession) SnakeActive() bool {
	return t.snake.Active()
}

// GuessActive reports whether a guess round is in progress
func (t *TerminalSession) GuessActive() bool {
	return t.guess.Active()
}

// SetInput replaces the input buffer
func (t *TerminalSession) SetInput(s string) {
	t.input = s
}

// InsertRunes appends typed characters to the input buffer
func (t *TerminalSession) InsertRunes(r []rune) {
	t.input += string(r)
}

// Backspace removes the last character of the input buffer
func (t *TerminalSession) Backspace() {
	if t.input == "" {
		return
	}
	r := []rune(t.input)
	t.input = string(r[:len(r)-1])
}

// HistoryUp recalls the previous command, saving the draft on the first step
func (t *TerminalSession) HistoryUp() {
	if len(t.history) == 0 {
		return
	}
	switch {
	case t.cursor == -1:
		t.draft = t.input
		t.cursor = len(t.history) - 1
	case t.cursor > 0:
		t.cursor--
	}
	t.input = t.history[t.cursor]
}

// HistoryDown moves toward the newest command, restoring the draft past the end
func (t *TerminalSession) HistoryDown() {
	if t.cursor == -1 {
		return
	}
	if t.cursor < len(t.history)-1 {
		t.cursor++
		t.input = t.history[t.cursor]
		return
	}
	t.cursor = -1
	t.input = t.draft
	t.draft = ""
}

// Steer turns the snake, if a run is active
func (t *TerminalSession) Steer(dir domain.Direction) bool {
	return t.snake.Steer(dir)
}

// Arrow routes an arrow key: it steers while snake runs and browses history otherwise.
// Left and right are ignored outside snake.
func (t *TerminalSession) Arrow(dir domain.Direction) {
	if t.snake.Active() {
		t.snake.Steer(dir)
		return
	}
	switch dir {
	case domain.DirUp:
		t.HistoryUp()
	case domain.DirDown:
		t.HistoryDown()
	}
}

// Submit runs the current input buffer
func (t *TerminalSession) Submit() {
	raw := t.input
	t.print(domain.LineCommand, t.prompt+raw)

	if cmd := strings.TrimSpace(raw); cmd != "" {
		if n := len(t.history); n == 0 || t.history[n-1] != cmd {
			t.history = append(t.history, cmd)
			if len(t.history) > MaxHistory {
				t.history = append(t.history[:0], t.history[len(t.history)-MaxHistory:]...)
			}
		}
	}
	t.cursor = -1
	t.draft = ""
	t.input = ""

	t.dispatch(raw)
}

// Run sets the input to cmd and submits it
func (t *TerminalSession) Run(cmd string) {
	t.input = cmd
	t.Submit()
}

// Close stops any snake run so that no tick outlives the session
func (t *TerminalSession) Close() {
	t.snake.Stop()
}

func (t *TerminalSession) dispatch(raw string) {
	if t.guess.Active() {
		t.printAll(domain.LineGame, t.guess.Handle(raw))
		return
	}
	if t.snake.HandleInput(raw) {
		return
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return
	}
	keyword, arg := trimmed, ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		keyword, arg = trimmed[:i], strings.TrimSpace(trimmed[i:])
	}

	cmd, ok := commandTable[strings.ToLower(keyword)]
	if !ok {
		t.print(domain.LineError, "command not found: "+raw)
		return
	}
	cmd(t, arg)
}

func (t *TerminalSession) print(kind domain.LineKind, text string) {
	t.lines = append(t.lines, domain.TerminalLine{Kind: kind, Text: text})
	if len(t.lines) > MaxScrollback {
		n := copy(t.lines, t.lines[len(t.lines)-MaxScrollback:])
		t.lines = t.lines[:n]
	}
}

func (t *TerminalSession) printAll(kind domain.LineKind, lines []string) {
	for _, line := range lines {
		t.print(kind, line)
	}
}
