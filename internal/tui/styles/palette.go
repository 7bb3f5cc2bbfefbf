package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
	ThemeMonokai ThemeName = "monokai" // Classic Monokai editor colors
	ThemePlain   ThemeName = "plain"   // No colors; emphasis only
)

// ThemeNames returns all built-in theme names.
func ThemeNames() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeMonokai),
		string(ThemePlain),
	}
}

// IsValidTheme checks if a theme name is a built-in theme.
func IsValidTheme(name string) bool {
	return slices.Contains(ThemeNames(), name)
}

// ColorPalette defines the color scheme for a theme.
// An empty color means "terminal default".
type ColorPalette struct {
	// Primary accent color (title, prompt)
	Primary lipgloss.Color
	// Secondary accent color (result count, help keys)
	Secondary lipgloss.Color
	// Warning color (no-results message)
	Warning lipgloss.Color
	// Muted color (de-emphasized text, truncation note)
	Muted lipgloss.Color
	// Text color (table cells)
	Text lipgloss.Color
	// Border color (table borders)
	Border lipgloss.Color
	// RowAlt is the foreground of every other table row
	RowAlt lipgloss.Color

	// Search highlight colors
	SearchMatchBg lipgloss.Color
	SearchMatchFg lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500
		RowAlt:    lipgloss.Color("#D1D5DB"), // Gray-300

		SearchMatchBg: lipgloss.Color("#854D0E"), // Dark yellow
		SearchMatchFg: lipgloss.Color("#FEF3C7"), // Light cream
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Warning:   lipgloss.Color("#F1FA8C"), // Dracula yellow
		Muted:     lipgloss.Color("#6272A4"), // Dracula comment
		Text:      lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:    lipgloss.Color("#44475A"), // Dracula selection
		RowAlt:    lipgloss.Color("#8BE9FD"), // Dracula cyan

		SearchMatchBg: lipgloss.Color("#44475A"), // Selection
		SearchMatchFg: lipgloss.Color("#F1FA8C"), // Yellow
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Nord frost (cyan)
		Secondary: lipgloss.Color("#A3BE8C"), // Nord aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Nord aurora yellow
		Muted:     lipgloss.Color("#616E88"), // Nord comment (brightened polar night)
		Text:      lipgloss.Color("#ECEFF4"), // Nord snow storm 2
		Border:    lipgloss.Color("#4C566A"), // Nord polar night 3
		RowAlt:    lipgloss.Color("#D8DEE9"), // Nord snow storm 0

		SearchMatchBg: lipgloss.Color("#5E81AC"), // Nord frost 3
		SearchMatchFg: lipgloss.Color("#ECEFF4"), // Snow storm
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#F92672"), // Monokai pink/magenta
		Secondary: lipgloss.Color("#A6E22E"), // Monokai green
		Warning:   lipgloss.Color("#E6DB74"), // Monokai yellow
		Muted:     lipgloss.Color("#75715E"), // Monokai comment gray
		Text:      lipgloss.Color("#F8F8F2"), // Monokai foreground
		Border:    lipgloss.Color("#49483E"), // Monokai selection
		RowAlt:    lipgloss.Color("#66D9EF"), // Monokai cyan

		SearchMatchBg: lipgloss.Color("#49483E"), // Selection
		SearchMatchFg: lipgloss.Color("#E6DB74"), // Yellow
	}
}

// PlainPalette returns a palette with no colors at all.
func PlainPalette() *ColorPalette {
	return &ColorPalette{}
}

// GetPalette returns the color palette for the given theme name.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemePlain:
		return PlainPalette()
	default:
		return DefaultPalette()
	}
}
