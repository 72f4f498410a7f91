package services

import (
	"fmt"
	"strings"

	"github.com/deskfolio/deskfolio/internal/domain"
)

// historyListSize is how many entries `history` prints
const historyListSize = 12

type terminalCommand func(t *TerminalSession, arg string)

var commandTable = map[string]terminalCommand{
	"about":    fixedLines(aboutLines),
	"cat":      (*TerminalSession).cmdCat,
	"clear":    (*TerminalSession).cmdClear,
	"contact":  fixedLines(contactLines),
	"dock":     (*TerminalSession).cmdDock,
	"echo":     (*TerminalSession).cmdEcho,
	"guess":    (*TerminalSession).cmdGuess,
	"help":     fixedLines(helpLines),
	"history":  (*TerminalSession).cmdHistory,
	"ls":       (*TerminalSession).cmdLs,
	"open":     (*TerminalSession).cmdOpen,
	"projects": fixedLines(projectsLines),
	"skills":   fixedLines(skillsLines),
	"snake":    (*TerminalSession).cmdSnake,
	"stats":    (*TerminalSession).cmdStats,
	"theme":    (*TerminalSession).cmdTheme,
	"whoami":   fixedLines(whoamiLines),
}

var (
	helpLines = []string{
		"available commands:",
		"  help              this list",
		"  about, whoami     who is behind this desktop",
		"  skills, projects  what I work with and on",
		"  contact           how to reach me",
		"  ls, cat <file>    browse the home directory",
		"  echo <text>       print text",
		"  open <app>        open a window (try 'open projects')",
		"  history           recent commands",
		"  clear             clear the screen",
		"  guess, snake      play a game",
		"  stats             game statistics",
		"  theme [name]      show or switch the theme (light, dark)",
		"  dock [add|rm app] show or edit the dock",
	}
	aboutLines = []string{
		"Full stack developer who likes building small, sharp tools.",
		"This desktop is my portfolio: poke around, open windows, play a game.",
	}
	whoamiLines   = []string{"guest. a curious visitor, hopefully."}
	skillsLines   = []string{"Go, TypeScript, SQL, Angular, linux, git. 'cat skills.txt' has more."}
	projectsLines = []string{"my public repositories live in the Projects window: 'open projects'."}
	contactLines  = []string{"email hello@deskfolio.dev, or 'cat contact.txt' for everything."}
)

func fixedLines(lines []string) terminalCommand {
	return func(t *TerminalSession, _ string) {
		t.printAll(domain.LineOutput, lines)
	}
}

func (t *TerminalSession) cmdLs(string) {
	names := make([]string, 0, len(domain.VirtualFiles))
	for _, f := range domain.VirtualFiles {
		names = append(names, f.Name)
	}
	t.print(domain.LineOutput, strings.Join(names, "  "))
}

func (t *TerminalSession) cmdCat(arg string) {
	if arg == "" {
		t.print(domain.LineError, "cat: missing file name")
		return
	}
	f, ok := domain.FindFile(arg)
	if !ok {
		t.print(domain.LineError, fmt.Sprintf("cat: %s: no such file", arg))
		return
	}
	t.print(domain.LineOutput, "--- "+f.Name+" ---")
	t.printAll(domain.LineOutput, f.Content)
}

func (t *TerminalSession) cmdEcho(arg string) {
	t.print(domain.LineOutput, arg)
}

func (t *TerminalSession) cmdOpen(arg string) {
	app, ok := domain.ResolveAlias(arg)
	if !ok || t.opener == nil {
		t.print(domain.LineError, fmt.Sprintf("open: unknown app '%s'. try: %s", arg, strings.Join(domain.AliasNames(), ", ")))
		return
	}
	t.opener.OpenApp(app)
	desc, _ := domain.Descriptor(app)
	t.print(domain.LineOutput, "opening "+desc.Title+"...")
}

func (t *TerminalSession) cmdHistory(string) {
	start := max(0, len(t.history)-historyListSize)
	for i := start; i < len(t.history); i++ {
		t.print(domain.LineOutput, fmt.Sprintf("%4d  %s", i+1, t.history[i]))
	}
}

func (t *TerminalSession) cmdClear(string) {
	t.snake.Stop()
	t.lines = t.lines[:0]
}

func (t *TerminalSession) cmdGuess(string) {
	if t.snake.Active() {
		t.print(domain.LineError, "guess: finish the snake run first (type 'quit').")
		return
	}
	t.printAll(domain.LineGame, t.guess.Start())
}

func (t *TerminalSession) cmdSnake(string) {
	if !t.snake.Start() {
		t.print(domain.LineError, "snake: already running.")
	}
}

func (t *TerminalSession) cmdStats(string) {
	g, s := t.guess.Stats(), t.snake.Stats()
	t.print(domain.LineOutput, fmt.Sprintf("guess: %d wins, %d losses", g.Wins, g.Losses))
	t.print(domain.LineOutput, fmt.Sprintf("snake: %d wins, %d losses, best score %d", s.Wins, s.Losses, s.Best))
}

func (t *TerminalSession) cmdTheme(arg string) {
	if t.prefs == nil {
		t.print(domain.LineError, "theme: not available here")
		return
	}
	if arg == "" {
		t.print(domain.LineOutput, "theme: "+string(t.prefs.Theme()))
		return
	}
	theme, ok := domain.ParseTheme(arg)
	if !ok {
		t.print(domain.LineError, fmt.Sprintf("theme: unknown theme '%s' (light or dark)", arg))
		return
	}
	t.prefs.SetTheme(theme)
	t.print(domain.LineOutput, "theme switched to "+string(theme))
}

func (t *TerminalSession) cmdDock(arg string) {
	if t.prefs == nil {
		t.print(domain.LineError, "dock: not available here")
		return
	}

	fields := strings.Fields(arg)
	if len(fields) == 0 {
		apps := t.prefs.Dock()
		names := make([]string, 0, len(apps))
		for _, app := range apps {
			names = append(names, string(app))
		}
		t.print(domain.LineOutput, "dock: "+strings.Join(names, " "))
		return
	}
	if len(fields) != 2 {
		t.print(domain.LineError, "usage: dock [add|rm <app>]")
		return
	}

	app, ok := domain.ResolveAlias(fields[1])
	if !ok {
		t.print(domain.LineError, fmt.Sprintf("dock: unknown app '%s'", fields[1]))
		return
	}
	switch strings.ToLower(fields[0]) {
	case "add":
		if t.prefs.Pin(app) {
			t.print(domain.LineOutput, fmt.Sprintf("dock: pinned %s", app))
		} else {
			t.print(domain.LineOutput, fmt.Sprintf("dock: %s is already pinned", app))
		}
	case "rm":
		if t.prefs.Unpin(app) {
			t.print(domain.LineOutput, fmt.Sprintf("dock: removed %s", app))
		} else {
			t.print(domain.LineOutput, fmt.Sprintf("dock: %s is not pinned", app))
		}
	default:
		t.print(domain.LineError, "usage: dock [add|rm <app>]")
	}
}
