package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskfolio/deskfolio/internal/adapters/clock"
	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/services"
	"github.com/deskfolio/deskfolio/internal/ui"
)

func intPtr(v int) *int { return &v }

func TestDesktopFlags_ApplyUsesSettingsOnlyForDefaults(t *testing.T) {
	settings := &config.Settings{SnakeTickMS: intPtr(200), StartupApp: "terminal"}

	defaults := DesktopFlags{SnakeTick: config.DefaultSnakeTickMS, StartupApp: config.DefaultStartupApp}
	defaults.apply(settings)
	assert.Equal(t, 200, defaults.SnakeTick)
	assert.Equal(t, "terminal", defaults.StartupApp)

	explicit := DesktopFlags{SnakeTick: 100, StartupApp: "notes"}
	explicit.apply(settings)
	assert.Equal(t, 100, explicit.SnakeTick)
	assert.Equal(t, "notes", explicit.StartupApp)
}

func TestDesktopFlags_ApplyNilSettings(t *testing.T) {
	flags := DesktopFlags{SnakeTick: config.DefaultSnakeTickMS, StartupApp: config.DefaultStartupApp}

	flags.apply(nil)

	assert.Equal(t, config.DefaultSnakeTickMS, flags.SnakeTick)
	assert.Equal(t, config.DefaultStartupApp, flags.StartupApp)
}

func TestDesktopFlags_StartupApp(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    domain.AppID
		wantErr bool
	}{
		{"empty means none", "", "", false},
		{"id", "terminal", domain.AppTerminal, false},
		{"alias", "sobre", domain.AppAbout, false},
		{"unknown", "paint", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := DesktopFlags{StartupApp: tt.value}
			app, err := flags.startupApp()
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnknownApp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, app)
		})
	}
}

func TestDesktopFlags_SnakeInterval(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, (&DesktopFlags{SnakeTick: 250}).snakeInterval())
	assert.Equal(t, time.Duration(config.DefaultSnakeTickMS)*time.Millisecond, (&DesktopFlags{}).snakeInterval())
}

func TestServeCmd_ApplyServer(t *testing.T) {
	settings := &config.Settings{SSHHost: "0.0.0.0", SSHPort: "2222"}

	cmd := ServeCmd{Host: config.DefaultSSHHost, Port: config.DefaultSSHPort}
	cmd.applyServer(settings)
	assert.Equal(t, "0.0.0.0", cmd.Host)
	assert.Equal(t, "2222", cmd.Port)

	explicit := ServeCmd{Host: "127.0.0.1", Port: "2200"}
	explicit.applyServer(settings)
	assert.Equal(t, "127.0.0.1", explicit.Host)
	assert.Equal(t, "2200", explicit.Port)
}

func newExecTerminal() (*services.TerminalSession, *clock.ManualScheduler) {
	scheduler := clock.NewManualScheduler()
	term := services.NewTerminalSession(services.TerminalConfig{
		Host:      "box",
		Opener:    services.NewWindowManager(),
		Scheduler: scheduler,
		User:      "ana",
	})
	return term, scheduler
}

func TestRunCommands_PrintsScrollback(t *testing.T) {
	term, scheduler := newExecTerminal()

	runCommands(term, scheduler, []string{"echo hello", "nope"}, 0)

	var out bytes.Buffer
	printScrollback(&out, term.Lines())
	assert.Contains(t, out.String(), "ana@box:~$ echo hello\nhello\n")
	assert.Contains(t, out.String(), "! command not found: nope\n")
}

func TestRunCommands_QuitLeavesNoSnakeTask(t *testing.T) {
	term, scheduler := newExecTerminal()

	runCommands(term, scheduler, []string{"snake", "quit"}, 5)

	assert.False(t, term.SnakeActive())
	assert.Equal(t, 0, scheduler.ActiveCount())
}

func TestWriteReposTable(t *testing.T) {
	var out bytes.Buffer

	writeReposTable(&out, "ana", []domain.Repository{
		{Name: "deskfolio", Language: "Go", Stars: 3, URL: "https://github.com/ana/deskfolio"},
		{Name: "notes", URL: "https://github.com/ana/notes"},
	})

	assert.Contains(t, out.String(), "Projects of ana")
	assert.Regexp(t, `deskfolio\s+Go\s+3\s+https://github.com/ana/deskfolio`, out.String())
	assert.Regexp(t, `notes\s+-\s+0\s+https://github.com/ana/notes`, out.String())
}

func TestWriteReposTable_Empty(t *testing.T) {
	var out bytes.Buffer

	writeReposTable(&out, "ana", nil)

	assert.Contains(t, out.String(), "No public repositories yet.")
}

func TestWriteReposJSON(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, writeReposJSON(&out, []domain.Repository{{Name: "deskfolio", Stars: 3, URL: "u"}}))

	assert.JSONEq(t, `[{"name":"deskfolio","stars":3,"url":"u"}]`, out.String())
}

func TestRenderStatsTable(t *testing.T) {
	var out bytes.Buffer

	renderStatsTable(&out, statsOutput{
		Guess: domain.GuessStats{Wins: 2, Losses: 1},
		Keys:  []string{"stats.guess", "theme"},
		Snake: domain.SnakeStats{Best: 7, Losses: 4},
	})

	assert.Contains(t, out.String(), "guess    2      1        -")
	assert.Contains(t, out.String(), "snake    0      4        7")
	assert.Contains(t, out.String(), "Saved: stats.guess, theme")
}

func TestRenderStatsTable_NothingSaved(t *testing.T) {
	var out bytes.Buffer

	renderStatsTable(&out, statsOutput{})

	assert.Contains(t, out.String(), "Nothing saved yet.")
}

func TestWriteExampleTable_SortedByName(t *testing.T) {
	var out bytes.Buffer

	writeExampleTable(&out, map[string]any{
		"theme":        "light",
		"debug":        true,
		"pinned_repos": []string{"a", "b"},
	})

	assert.Equal(t, "debug         true\npinned_repos  [\"a\",\"b\"]\ntheme         light\n", out.String())
}

func TestKeyBindingRows_CustomKeysOverrideDefaults(t *testing.T) {
	rows := keyBindingRows(config.KeyBindingsConfig{"help": {"f2"}})

	byName := make(map[string]keyBindingRow, len(rows))
	for _, row := range rows {
		byName[row.Name] = row
	}
	require.Len(t, byName, len(ui.AllKeyDefinitions))

	assert.Equal(t, []string{"f2"}, byName["help"].Effective)
	assert.Equal(t, []string{"f1"}, byName["help"].Default)
	assert.Equal(t, []string{"tab"}, byName["cycle_focus"].Effective)
	assert.Empty(t, byName["cycle_focus"].Custom)
	assert.Equal(t, "Windows", byName["cycle_focus"].Group)
}

func TestWriteKeyTable_GroupsAndMarksCustomKeys(t *testing.T) {
	var out bytes.Buffer

	writeKeyTable(&out, keyBindingRows(config.KeyBindingsConfig{"close_window": {"ctrl+q"}}))

	text := out.String()
	for _, group := range []string{"Desktop", "Windows", "Inside windows"} {
		assert.Equal(t, 1, strings.Count(text, "\n"+group+" "), group)
	}
	assert.Regexp(t, `close_window\s+ctrl\+q \*\s+close window`, text)
	assert.Regexp(t, `cycle_focus\s+tab\s+focus next window`, text)
	assert.Less(t, strings.Index(text, "Desktop"), strings.Index(text, "Windows"))
}

func TestParseKeyValues(t *testing.T) {
	assert.Equal(t, []string{"up", "k"}, parseKeyValues(" up, k ,,"))
	assert.Empty(t, parseKeyValues(" , "))
}
