package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is the theme used in dark mode when none is configured
const DefaultTheme = "dracula"

// DefaultLightTheme is the theme used in light mode when none is configured
const DefaultLightTheme = "github"

// ThemeProvider manages TUI themes using bubbletint. It holds one theme for
// dark mode and one for light mode.
type ThemeProvider struct {
	registry *tint.Registry
	dark     string
	light    string
}

// NewThemeProvider creates a new ThemeProvider with the specified initial theme.
// If initialTheme is empty, DefaultTheme is used.
// If the specified theme doesn't exist, the default theme is used.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	allTints := tint.DefaultTints()

	var defaultTint tint.Tint
	for _, t := range allTints {
		if t.ID() == DefaultTheme {
			defaultTint = t
			break
		}
	}

	// Fallback to first tint if default not found
	if defaultTint == nil && len(allTints) > 0 {
		defaultTint = allTints[0]
	}

	registry := tint.NewRegistry(defaultTint, allTints...)

	if initialTheme != "" {
		registry.SetTintID(initialTheme)
	}

	return &ThemeProvider{
		registry: registry,
		dark:     DefaultTheme,
		light:    DefaultLightTheme,
	}
}

// NewModeThemeProvider creates a ThemeProvider for the given dark and light
// theme IDs and applies the one matching dark. Empty IDs use the defaults.
func NewModeThemeProvider(darkTheme, lightTheme string, dark bool) *ThemeProvider {
	tp := NewThemeProvider("")
	if darkTheme != "" {
		tp.dark = darkTheme
	}
	if lightTheme != "" {
		tp.light = lightTheme
	}
	tp.ApplyMode(dark)
	return tp
}

// ApplyMode switches to the dark or light theme. An unknown configured ID
// falls back to the built-in default for that mode. It returns false when
// neither could be set and the current theme was kept.
func (tp *ThemeProvider) ApplyMode(dark bool) bool {
	want, fallback := tp.light, DefaultLightTheme
	if dark {
		want, fallback = tp.dark, DefaultTheme
	}
	if tp.registry.SetTintID(want) {
		return true
	}
	return tp.registry.SetTintID(fallback)
}

// ModeThemes returns the configured dark and light theme IDs.
func (tp *ThemeProvider) ModeThemes() (dark, light string) {
	return tp.dark, tp.light
}

// SetTheme sets the current theme by name.
// Returns true if the theme was found and set, false otherwise.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// CurrentName returns the name of the current theme.
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the display name of the current theme.
func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// AvailableThemes returns a sorted list of all available theme names.
func (tp *ThemeProvider) AvailableThemes() []string {
	ids := tp.registry.TintIDs()
	sort.Strings(ids)
	return ids
}

// Registry returns the underlying bubbletint registry for direct color access.
func (tp *ThemeProvider) Registry() *tint.Registry {
	return tp.registry
}

// Styles returns a Styles struct configured for the current theme.
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
