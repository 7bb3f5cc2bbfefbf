package styles

import "github.com/charmbracelet/lipgloss"

// ThemedStyles contains all the lipgloss styles built from a color palette.
// A new value is built whenever the theme changes; nothing here is global.
type ThemedStyles struct {
	// Name of the theme the styles were built from
	Name ThemeName

	// Colors from the palette
	PrimaryColor lipgloss.Color
	BorderColor  lipgloss.Color

	// Base styles
	Title  lipgloss.Style
	Prompt lipgloss.Style
	Input  lipgloss.Style
	Muted  lipgloss.Style

	// Status line above the table
	Loading   lipgloss.Style
	Count     lipgloss.Style
	NoResults lipgloss.Style
	Note      lipgloss.Style

	// Results table
	TableHeader  lipgloss.Style
	TableCell    lipgloss.Style
	TableCellAlt lipgloss.Style
	TableBorder  lipgloss.Border

	// Matched substring within a cell
	SearchMatch lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Spinner shown while loading
	Spinner lipgloss.Style

	plain bool
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{
		PrimaryColor: p.Primary,
		BorderColor:  p.Border,
		TableBorder:  lipgloss.RoundedBorder(),
	}

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.Prompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.Input = lipgloss.NewStyle().
		Foreground(p.Text)

	s.Muted = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.Loading = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.Count = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.NoResults = lipgloss.NewStyle().
		Foreground(p.Warning)

	s.Note = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		Padding(0, 1)

	s.TableCell = lipgloss.NewStyle().
		Foreground(p.Text).
		Padding(0, 1)

	s.TableCellAlt = lipgloss.NewStyle().
		Foreground(p.RowAlt).
		Padding(0, 1)

	s.SearchMatch = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.SearchMatchFg).
		Background(p.SearchMatchBg)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.Spinner = lipgloss.NewStyle().
		Foreground(p.Primary)

	return s
}

// New builds the styles for the named theme. Unknown names get the default theme.
func New(name ThemeName) *ThemedStyles {
	if name == ThemePlain {
		return Plain()
	}
	if !IsValidTheme(string(name)) {
		name = ThemeDefault
	}
	s := NewThemedStyles(GetPalette(name))
	s.Name = name
	return s
}

// Plain returns styles without colors or text attributes, suitable for
// output that is piped or logged. Table borders use ASCII.
func Plain() *ThemedStyles {
	s := NewThemedStyles(PlainPalette())
	s.Name = ThemePlain
	s.plain = true

	bare := lipgloss.NewStyle()
	s.Title = bare
	s.Prompt = bare
	s.Input = bare
	s.Muted = bare
	s.HelpBar = bare
	s.Spinner = bare
	s.Loading = bare
	s.Count = bare
	s.NoResults = bare
	s.Note = bare
	s.SearchMatch = bare
	s.HelpKey = bare
	s.TableHeader = bare.Padding(0, 1)
	s.TableCell = bare.Padding(0, 1)
	s.TableCellAlt = bare.Padding(0, 1)
	s.TableBorder = lipgloss.ASCIIBorder()
	return s
}

// IsPlain reports whether s carries no styling.
func (s *ThemedStyles) IsPlain() bool {
	return s.plain
}

// Highlight renders text with the search match style. Plain styles return
// text unchanged.
func (s *ThemedStyles) Highlight(text string) string {
	if s.plain {
		return text
	}
	return s.SearchMatch.Render(text)
}
