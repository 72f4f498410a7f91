package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "snake_tick_ms":
				return DefaultSnakeTickMS
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "db_path":
			return "~/.deskfolio/state.db"
		case "github_user":
			return DefaultGitHubUser
		case "ssh_host":
			return DefaultSSHHost
		case "ssh_port":
			return DefaultSSHPort
		case "startup_app":
			return DefaultStartupApp
		case "theme":
			return DefaultTheme
		default:
			return "example"
		}
	case reflect.Map:
		if fieldName == "keys" {
			return map[string][]string{"quit": {"ctrl+c"}, "cycle_focus": {"tab"}}
		}
		return map[string][]string{}
	case reflect.Slice:
		if fieldName == "pinned_repos" {
			return []string{"deskfolio", "dotfiles"}
		}
		return []string{"example1", "example2"}
	}

	return nil
}
