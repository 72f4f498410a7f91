package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskfolio/deskfolio/test/integration/harness"
)

type shortcutOutput struct {
	Custom    []string `json:"custom"`
	Default   []string `json:"default"`
	Effective []string `json:"effective"`
	Group     string   `json:"group"`
	Name      string   `json:"name"`
}

func listKeys(t *testing.T, env *harness.TestEnvironment) map[string]shortcutOutput {
	t.Helper()
	result := harness.RunCommand(t, env, "settings", "keys", "list", "--format", "json")
	harness.AssertSuccess(t, result)

	var rows []shortcutOutput
	harness.AssertValidJSON(t, result, &rows)
	keys := make(map[string]shortcutOutput, len(rows))
	for _, row := range rows {
		keys[row.Name] = row
	}
	return keys
}

func TestSettingsKeysList(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "list shows defaults when no settings",
			args:         []string{"settings", "keys", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Windows")
				harness.AssertStdoutContains(t, result, "cycle_focus")
				harness.AssertStdoutContains(t, result, "close_window")
				harness.AssertStdoutContains(t, result, "ctrl+w")
				harness.AssertStdoutContains(t, result, "Inside windows")
			},
		},
		{
			name: "list shows custom key when configured",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				result := harness.RunCommand(t, env, "settings", "keys", "set", "cycle_focus", "ctrl+g")
				harness.AssertSuccess(t, result)
			},
			args:         []string{"settings", "keys", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "ctrl+g *")
			},
		},
		{
			name:         "list JSON format",
			args:         []string{"settings", "keys", "list", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				keys := listKeys(t, env)
				require.Contains(t, keys, "quit")
				assert.Equal(t, []string{"ctrl+c"}, keys["quit"].Default)
				assert.Equal(t, []string{"ctrl+c"}, keys["quit"].Effective)
				assert.Equal(t, "Desktop", keys["quit"].Group)
				assert.Empty(t, keys["quit"].Custom)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestSettingsKeysSet(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "set valid key",
			args:         []string{"settings", "keys", "set", "help", "f2"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "help now answers to: f2")
				assert.Equal(t, []string{"f2"}, listKeys(t, env)["help"].Custom)
			},
		},
		{
			name:         "set invalid key name",
			args:         []string{"settings", "keys", "set", "archive", "a"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "unknown shortcut")
			},
		},
		{
			name: "set conflicting key fails",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				result := harness.RunCommand(t, env, "settings", "keys", "set", "cycle_focus", "ctrl+g")
				harness.AssertSuccess(t, result)
			},
			args:         []string{"settings", "keys", "set", "help", "ctrl+g"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "conflict")
			},
		},
		{
			name:         "set multiple keys with comma",
			args:         []string{"settings", "keys", "set", "up", "up,k,w"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "up now answers to: up, k, w")
				assert.Equal(t, []string{"up", "k", "w"}, listKeys(t, env)["up"].Custom)
			},
		},
		{
			name:         "set empty value fails",
			args:         []string{"settings", "keys", "set", "help", " , "},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "cannot be empty")
			},
		},
		{
			name:         "set to the defaults keeps no custom entry",
			args:         []string{"settings", "keys", "set", "up", "up,k"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				assert.Empty(t, listKeys(t, env)["up"].Custom)
			},
		},
		{
			name: "reset all",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "help", "f2"))
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "cycle_focus", "ctrl+g"))
			},
			args:         []string{"settings", "keys", "reset", "--all"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				keys := listKeys(t, env)
				assert.Empty(t, keys["help"].Custom)
				assert.Empty(t, keys["cycle_focus"].Custom)
			},
		},
		{
			name:         "reset without a name",
			args:         []string{"settings", "keys", "reset"},
			wantExitCode: harness.ExitError,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "--all")
			},
		},
		{
			name: "reset restores defaults",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				result := harness.RunCommand(t, env, "settings", "keys", "set", "help", "f2")
				harness.AssertSuccess(t, result)
			},
			args:         []string{"settings", "keys", "reset", "help"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "help answers to its default keys: f1")
				assert.Empty(t, listKeys(t, env)["help"].Custom)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}
