package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	DefaultGitHubUser  = "deskfolio"
	DefaultSnakeTickMS = 420
	DefaultSSHHost     = "localhost"
	DefaultSSHPort     = "23234"
	DefaultStartupApp  = "about"
	DefaultTheme       = "light"
)

// Settings represents the structure of $DESKFOLIO_HOME/settings.json
type Settings struct {
	DBPath      string            `json:"db_path,omitempty"`
	Debug       *bool             `json:"debug,omitempty"`
	GitHubUser  string            `json:"github_user,omitempty"`
	Keys        KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles *int              `json:"max_log_files,omitempty"`
	PinnedRepos StringArray       `json:"pinned_repos,omitempty"`
	SnakeTickMS *int              `json:"snake_tick_ms,omitempty"`
	SSHHost     string            `json:"ssh_host,omitempty"`
	SSHPort     string            `json:"ssh_port,omitempty"`
	StartupApp  string            `json:"startup_app,omitempty"`
	Theme       string            `json:"theme,omitempty"`
}

// KeyBindingsConfig maps a key binding name to the keys that trigger it
type KeyBindingsConfig map[string][]string

// Validate reports unknown binding names, empty keys and keys bound twice.
// validNames comes from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	names := make([]string, 0, len(k))
	for name := range k {
		names = append(names, name)
	}
	sort.Strings(names)

	keyToAction := make(map[string]string)
	for _, name := range names {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		for _, key := range k[name] {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $DESKFOLIO_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $DESKFOLIO_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo writes settings to path while holding an exclusive file lock
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// ResolvedDBPath returns the database path from settings or the default location
func (s *Settings) ResolvedDBPath() string {
	if s != nil && s.DBPath != "" {
		return s.DBPath
	}
	return GetDBPath()
}

// ResolvedGitHubUser returns the configured GitHub user or the default
func (s *Settings) ResolvedGitHubUser() string {
	if s != nil && s.GitHubUser != "" {
		return s.GitHubUser
	}
	return DefaultGitHubUser
}

// ResolvedSnakeTickMS returns the snake tick period in milliseconds
func (s *Settings) ResolvedSnakeTickMS() int {
	if s != nil && s.SnakeTickMS != nil && *s.SnakeTickMS > 0 {
		return *s.SnakeTickMS
	}
	return DefaultSnakeTickMS
}
