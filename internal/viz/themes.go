package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme for the card UI.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Cell       lipgloss.Color
	Highlight  lipgloss.Color
	Glow       lipgloss.Color
	Error      lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:       "dark",
		Primary:    lipgloss.Color("#a5b4fc"),
		Secondary:  lipgloss.Color("#c084fc"),
		Accent:     lipgloss.Color("#22d3ee"),
		Background: lipgloss.Color("#111827"),
		Text:       lipgloss.Color("#f3f4f6"),
		Muted:      lipgloss.Color("#6b7280"),
		Cell:       lipgloss.Color("#4f46e5"), // indigo-600
		Highlight:  lipgloss.Color("#22c55e"), // green-500
		Glow:       lipgloss.Color("#818cf8"),
		Error:      lipgloss.Color("#f87171"),
	}

	ThemeLight = Theme{
		Name:       "light",
		Primary:    lipgloss.Color("#4338ca"),
		Secondary:  lipgloss.Color("#7e22ce"),
		Accent:     lipgloss.Color("#0891b2"),
		Background: lipgloss.Color("#f9fafb"),
		Text:       lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#9ca3af"),
		Cell:       lipgloss.Color("#4f46e5"),
		Highlight:  lipgloss.Color("#22c55e"),
		Glow:       lipgloss.Color("#6366f1"),
		Error:      lipgloss.Color("#dc2626"),
	}

	Themes = []Theme{
		ThemeDark,
		ThemeLight,
	}
)

// GetTheme returns a theme by name, falling back to dark.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

// Toggle returns the other display mode.
func (t Theme) Toggle() Theme {
	if t.Name == ThemeDark.Name {
		return ThemeLight
	}
	return ThemeDark
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
