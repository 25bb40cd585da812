package domain

import (
	"encoding/json"
	"fmt"
)

// StorageKey is the persisted key holding the dark-mode flag.
const StorageKey = "darkMode"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme applies when nothing usable is persisted.
const DefaultTheme = ThemeLight

func ThemeFromDark(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) Dark() bool {
	return t == ThemeDark
}

func (t Theme) Toggle() Theme {
	return ThemeFromDark(!t.Dark())
}

// DecodeDarkMode parses the persisted JSON boolean.
func DecodeDarkMode(raw string) (Theme, error) {
	var dark *bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		return "", fmt.Errorf("decode dark mode: %w", err)
	}
	if dark == nil {
		return "", fmt.Errorf("decode dark mode: null value")
	}
	return ThemeFromDark(*dark), nil
}

func EncodeDarkMode(t Theme) string {
	if t.Dark() {
		return "true"
	}
	return "false"
}
