package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deskfolio/deskfolio/test/integration/harness"
)

func TestSettings(t *testing.T) {
	tests := []struct {
		name         string
		settings     map[string]any
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "show is the default subcommand",
			args:         []string{"settings"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file: "+env.SettingsPath())
				harness.AssertStdoutContains(t, result, "github_user")
			},
		},
		{
			name:         "show resolves configured values",
			settings:     map[string]any{"github_user": "ana", "snake_tick_ms": 250},
			args:         []string{"settings", "show"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				assert.Regexp(t, `github_user\s+ana`, result.Stdout)
				assert.Regexp(t, `snake_tick_ms\s+250`, result.Stdout)
			},
		},
		{
			name:         "example table format",
			args:         []string{"settings", "example"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Example settings.json:")
				harness.AssertStdoutContains(t, result, "pinned_repos")
				harness.AssertStdoutContains(t, result, "startup_app")
			},
		},
		{
			name:         "example json format",
			args:         []string{"settings", "example", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var output map[string]any
				harness.AssertValidJSON(t, result, &output)
				assert.Contains(t, output, "settings_file")
				assert.Contains(t, output, "format")
			},
		},
		{
			name:         "path",
			args:         []string{"settings", "path"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				assert.Equal(t, env.SettingsPath()+"\n", result.Stdout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.settings != nil {
				env.WriteSettings(tt.settings)
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

func TestInvalidKeyBindingsRejectDesktop(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(map[string]any{"keys": map[string][]string{"archive": {"a"}}})

	result := harness.RunCommand(t, env, "serve", "--port", "0")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "invalid key bindings")
}
