package session

import (
	"os"
	"strconv"
	"strings"
)

// DetectHostTheme reads the terminal's ambient light/dark hint from the
// COLORFGBG variable, the terminal analogue of prefers-color-scheme. It is
// consulted once at startup and only when no stored preference exists.
// Unset or unparseable values default to dark.
func DetectHostTheme() Theme {
	return themeFromColorFGBG(os.Getenv("COLORFGBG"))
}

// themeFromColorFGBG parses a "fg;bg" (or "fg;default;bg") value. ANSI
// background colours 0-6 and 8 indicate a dark background.
func themeFromColorFGBG(value string) Theme {
	parts := strings.Split(value, ";")
	if len(parts) < 2 {
		return ThemeDark
	}
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return ThemeDark
	}
	if bg >= 0 && bg <= 6 || bg == 8 {
		return ThemeDark
	}
	return ThemeLight
}
