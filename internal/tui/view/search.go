package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Iron-Ham/custsearch/internal/customer"
	"github.com/Iron-Ham/custsearch/internal/search"
	"github.com/Iron-Ham/custsearch/internal/tui/styles"
	"github.com/Iron-Ham/custsearch/internal/util"
)

// Texts shown in the status area.
const (
	Title          = "Customer Database Search"
	LoadingText    = "Loading database..."
	IdlePrompt     = "Type a name or ID to start searching"
	noResultsText  = "No customers found matching %q"
	foundText      = "Found %d results"
	truncatedText  = "showing first %d"
	scrollRowsText = "rows %d-%d of %d"
)

// Rows taken by everything but the table body in interactive mode:
// title, input, blank, status, four table border/header lines, blank, help.
const interactiveChrome = 10

// Rows taken by table borders and header.
const tableChrome = 4

// State is everything the search view renders from. Render derives the
// filtered results from Dataset and Query on every call; nothing is cached.
type State struct {
	// Loading is true until the dataset load has finished, successfully or not.
	Loading bool
	// Query is the current search text.
	Query string
	// Dataset is the full record set; empty while loading or after a failed load.
	Dataset customer.Dataset

	// Width and Height are the terminal size. Zero means unbounded.
	Width  int
	Height int
	// Scroll is the index of the first displayed match shown in the table body.
	Scroll int
	// Limit caps the displayed matches. <= 0 means search.DefaultLimit.
	Limit int

	// Interactive adds the title, the query input and the help bar.
	Interactive bool
	// Input is the rendered query input line.
	Input string
	// Spinner is the current loading spinner frame.
	Spinner string
	// Keys are listed in the help bar.
	Keys []key.Binding
}

// Render draws the search view for state using s.
func Render(state State, s *styles.ThemedStyles) string {
	var b strings.Builder

	if state.Interactive {
		b.WriteString(fitLine(s.Title.Render(Title), state.Width))
		b.WriteString("\n")
		b.WriteString(state.Input)
		b.WriteString("\n\n")
	}

	if state.Loading {
		b.WriteString(renderLoading(state, s))
		return b.String()
	}

	result := search.Filter(state.Dataset, state.Query)
	displayed := result.Displayed(state.Limit)
	first, last := window(state, len(displayed))

	if state.Query != "" {
		b.WriteString(fitLine(renderStatus(state, s, result, first, last, len(displayed)), state.Width))
		b.WriteString("\n")
	} else if state.Interactive {
		// Keep the table from jumping when the first character is typed.
		b.WriteString("\n")
	}

	b.WriteString(renderTable(state, s, displayed[first:last]))
	b.WriteString("\n")

	switch {
	case state.Query == "":
		b.WriteString(fitLine(s.Muted.Render(IdlePrompt), state.Width))
		b.WriteString("\n")
	case result.Total() == 0:
		b.WriteString(fitLine(s.NoResults.Render(fmt.Sprintf(noResultsText, state.Query)), state.Width))
		b.WriteString("\n")
	}

	if state.Interactive && len(state.Keys) > 0 {
		b.WriteString("\n")
		b.WriteString(fitLine(RenderHelp(state.Keys, s), state.Width))
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderLoading(state State, s *styles.ThemedStyles) string {
	text := s.Loading.Render(LoadingText)
	if state.Spinner != "" {
		text = s.Spinner.Render(state.Spinner) + " " + text
	}
	return fitLine(text, state.Width)
}

func renderStatus(state State, s *styles.ThemedStyles, result search.Result, first, last, displayed int) string {
	status := s.Count.Render(fmt.Sprintf(foundText, result.Total()))

	var notes []string
	if result.Truncated(state.Limit) {
		notes = append(notes, fmt.Sprintf(truncatedText, displayed))
	}
	if last-first < displayed {
		notes = append(notes, fmt.Sprintf(scrollRowsText, first+1, last, displayed))
	}
	if len(notes) > 0 {
		status += s.Note.Render(" · " + strings.Join(notes, " · "))
	}
	return status
}

// BodyRows returns how many table rows fit on screen. 0 means no bound.
func BodyRows(state State) int {
	if state.Height <= 0 {
		return 0
	}
	chrome := tableChrome + 2 // status line and message line
	if state.Interactive {
		chrome = interactiveChrome
	}
	return max(state.Height-chrome, 1)
}

// MaxScroll returns the largest useful Scroll for state.
func MaxScroll(state State) int {
	if state.Loading {
		return 0
	}
	rows := BodyRows(state)
	if rows == 0 {
		return 0
	}
	displayed := len(search.Filter(state.Dataset, state.Query).Displayed(state.Limit))
	return max(displayed-rows, 0)
}

// ClampScroll bounds state.Scroll to [0, MaxScroll(state)].
func ClampScroll(state State) int {
	return min(max(state.Scroll, 0), MaxScroll(state))
}

// window returns the [first, last) slice of displayed matches visible on screen.
func window(state State, displayed int) (int, int) {
	rows := BodyRows(state)
	if rows == 0 || displayed <= rows {
		return 0, displayed
	}
	first := min(max(state.Scroll, 0), displayed-rows)
	return first, first + rows
}

func renderTable(state State, s *styles.ThemedStyles, records []customer.Record) string {
	rows := make([][]string, len(records))
	for i, rec := range records {
		cols := rec.Columns()
		for j := range cols {
			cols[j] = util.SanitizeCell(cols[j])
		}
		rows[i] = cols
	}

	widths := fitColumns(naturalWidths(customer.ColumnTitles, rows), availableWidth(state.Width, len(customer.ColumnTitles)))

	headers := make([]string, len(customer.ColumnTitles))
	for j, title := range customer.ColumnTitles {
		headers[j] = util.TruncateWidth(title, widths[j])
	}

	hl := search.NewHighlighter(state.Query)
	for i, cols := range rows {
		for j := range cols {
			// Truncate before highlighting so widths are measured on plain text.
			cols[j] = util.TruncateWidth(cols[j], widths[j])
			if records[i].Searched(j) {
				cols[j] = hl.Highlight(cols[j], s.Highlight)
			}
		}
	}

	t := table.New().
		Border(s.TableBorder).
		BorderStyle(lipgloss.NewStyle().Foreground(s.BorderColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.TableHeader
			case row%2 == 0:
				return s.TableCell
			default:
				return s.TableCellAlt
			}
		})

	return t.Render()
}
