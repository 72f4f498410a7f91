package config

import (
	"os"
	"path/filepath"
)

// GetHomePath returns $DESKFOLIO_HOME or ~/.deskfolio
func GetHomePath() string {
	if home := os.Getenv("DESKFOLIO_HOME"); home != "" {
		return ExpandPath(home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".deskfolio"
	}
	return filepath.Join(homeDir, ".deskfolio")
}

// GetDBPath returns $DESKFOLIO_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHomePath(), "state.db")
}

// GetSettingsPath returns $DESKFOLIO_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHomePath(), "settings.json")
}

// GetSSHDir returns $DESKFOLIO_HOME/ssh, where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetHomePath(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
