package domain

import "strings"

// Theme tags known to the stylesheet. ThemeDefault is the dark scheme
// the app ships with; the others are opt-in variants.
const (
	ThemeDefault    = "default"
	ThemeLightMode  = "light-mode"
	ThemeDarkPurple = "dark-purple"
	ThemeBlueDark   = "blue-dark"
	ThemeGreenDark  = "green-dark"
)

// KnownThemes lists every accepted theme tag.
var KnownThemes = []string{
	ThemeDefault,
	ThemeLightMode,
	ThemeDarkPurple,
	ThemeBlueDark,
	ThemeGreenDark,
}

// IsDarkTheme reports whether a tag is a dark scheme. The default
// theme and every "dark" variant count.
func IsDarkTheme(theme string) bool {
	return theme == ThemeDefault || strings.Contains(theme, "dark")
}

// ThemeChange is the notification broadcast to subscribers whenever the
// active theme changes.
type ThemeChange struct {
	Theme string `json:"theme"`
}
