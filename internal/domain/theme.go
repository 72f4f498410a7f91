package domain

import "strings"

// ThemeName selects the desktop palette
type ThemeName string

const (
	ThemeDark  ThemeName = "dark"
	ThemeLight ThemeName = "light"
)

// ParseTheme accepts a theme name in any case
func ParseTheme(s string) (ThemeName, bool) {
	switch ThemeName(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return "", false
}
