package view

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/custsearch/internal/customer"
	"github.com/Iron-Ham/custsearch/internal/tui/styles"
)

func sampleDataset() customer.Dataset {
	return customer.Dataset{
		customer.NewRecord("1", "John Doe", "N1", "A1"),
		customer.NewRecord("2", "Jane Roe", "N2", "A2"),
		customer.NewRecord("3", "Ann Smith", "N3", "A3"),
		customer.NewRecord("4", "Bob Stone", "N4", "A4"),
		customer.NewRecord("5", "Eve Black", "N5", "A5"),
	}
}

func manyMatches(n int) customer.Dataset {
	ds := make(customer.Dataset, n)
	for i := range ds {
		ds[i] = customer.NewRecord(fmt.Sprint(i+1), fmt.Sprintf("Customer %02d", i+1), fmt.Sprintf("NIC%02d", i+1), "Colombo")
	}
	return ds
}

// tableRows counts body rows of an ASCII-bordered table.
func tableRows(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") {
			n++
		}
	}
	return max(n-1, 0) // minus header
}

func TestRender_Loading(t *testing.T) {
	out := Render(State{Loading: true, Query: "john", Dataset: sampleDataset()}, styles.Plain())

	if out != LoadingText {
		t.Errorf("loading render = %q, want only %q", out, LoadingText)
	}
}

func TestRender_LoadingInteractive(t *testing.T) {
	out := Render(State{Loading: true, Interactive: true, Input: "> ", Spinner: "⣾"}, styles.Plain())

	for _, want := range []string{Title, "⣾ " + LoadingText} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	for _, absent := range []string{"ID", IdlePrompt, "Found"} {
		if strings.Contains(out, absent) {
			t.Errorf("loading output should not contain %q:\n%s", absent, out)
		}
	}
}

func TestRender_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		state       State
		wantRows    int
		contains    []string
		notContains []string
	}{
		{
			name:     "single match",
			state:    State{Query: "john", Dataset: customer.Dataset{customer.NewRecord("1", "John Doe", "N1", "A1")}},
			wantRows: 1,
			contains: []string{"Found 1 results", "John Doe", "N1", "A1"},
		},
		{
			name:        "empty query shows prompt and header only",
			state:       State{Query: "", Dataset: sampleDataset()},
			wantRows:    0,
			contains:    []string{IdlePrompt, "ID", "Name", "NIC", "Address"},
			notContains: []string{"Found", "John"},
		},
		{
			name:     "no matches",
			state:    State{Query: "zz", Dataset: sampleDataset()},
			wantRows: 0,
			contains: []string{"Found 0 results", `No customers found matching "zz"`},
		},
		{
			name:        "truncated to limit",
			state:       State{Query: "customer", Dataset: manyMatches(60)},
			wantRows:    50,
			contains:    []string{"Found 60 results", "showing first 50", "Customer 50"},
			notContains: []string{"Customer 51"},
		},
		{
			name:     "custom limit",
			state:    State{Query: "customer", Dataset: manyMatches(60), Limit: 10},
			wantRows: 10,
			contains: []string{"Found 60 results", "showing first 10"},
		},
		{
			name:        "failed load with query",
			state:       State{Query: "john", Dataset: nil},
			wantRows:    0,
			contains:    []string{"Found 0 results", `No customers found matching "john"`},
			notContains: []string{LoadingText},
		},
		{
			name:        "failed load without query",
			state:       State{Dataset: nil},
			wantRows:    0,
			contains:    []string{IdlePrompt},
			notContains: []string{LoadingText, "Found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Render(tt.state, styles.Plain())

			if got := tableRows(out); got != tt.wantRows {
				t.Errorf("table rows = %d, want %d\n%s", got, tt.wantRows, out)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, absent := range tt.notContains {
				if strings.Contains(out, absent) {
					t.Errorf("output should not contain %q:\n%s", absent, out)
				}
			}
		})
	}
}

func TestRender_PreservesOrder(t *testing.T) {
	out := Render(State{Query: "n", Dataset: sampleDataset()}, styles.Plain())

	// "n" matches John, Jane, Ann, Bob Stone and every NIC.
	names := []string{"John Doe", "Jane Roe", "Ann Smith", "Bob Stone", "Eve Black"}
	last := -1
	for _, name := range names {
		idx := strings.Index(out, name)
		if idx < 0 {
			t.Fatalf("output missing %q:\n%s", name, out)
		}
		if idx < last {
			t.Errorf("%q rendered out of dataset order", name)
		}
		last = idx
	}
}

func TestRender_Width(t *testing.T) {
	ds := customer.Dataset{
		customer.NewRecord("1", "Johnathan Alexander Doe-Smithington", "NIC-1234567890", "221B Baker Street, Marylebone, London NW1 6XE"),
	}
	out := Render(State{Query: "john", Dataset: ds, Width: 60}, styles.Plain())

	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 60 {
			t.Errorf("line %d width %d exceeds 60: %q", i, w, line)
		}
	}
	if !strings.Contains(out, "...") {
		t.Errorf("expected truncated cells:\n%s", out)
	}
}

func TestRender_SanitizesCells(t *testing.T) {
	ds := customer.Dataset{customer.NewRecord("1", "John\nDoe", "N1", "\x1b[31mred\x1b[0m street")}
	out := Render(State{Query: "john", Dataset: ds}, styles.Plain())

	if tableRows(out) != 1 {
		t.Errorf("multi-line cell should render as one row:\n%s", out)
	}
	if strings.Contains(out, "\x1b") {
		t.Errorf("escape sequences from data leaked into output: %q", out)
	}
}

func TestRender_Scroll(t *testing.T) {
	state := State{Query: "customer", Dataset: manyMatches(30), Height: 16}
	rows := BodyRows(state)
	if rows != 10 {
		t.Fatalf("BodyRows = %d, want 10", rows)
	}

	out := Render(state, styles.Plain())
	if got := tableRows(out); got != 10 {
		t.Errorf("table rows = %d, want 10", got)
	}
	if !strings.Contains(out, "rows 1-10 of 30") || !strings.Contains(out, "Customer 01") {
		t.Errorf("unexpected first page:\n%s", out)
	}

	state.Scroll = 5
	out = Render(state, styles.Plain())
	if !strings.Contains(out, "Customer 06") || strings.Contains(out, "Customer 05") {
		t.Errorf("scroll did not move window:\n%s", out)
	}

	// Out-of-range scroll is clamped to the last page.
	state.Scroll = 100
	out = Render(state, styles.Plain())
	if !strings.Contains(out, "rows 21-30 of 30") || !strings.Contains(out, "Customer 30") {
		t.Errorf("scroll was not clamped:\n%s", out)
	}
	if got := ClampScroll(state); got != 20 {
		t.Errorf("ClampScroll = %d, want 20", got)
	}

	state.Scroll = -3
	if got := ClampScroll(state); got != 0 {
		t.Errorf("ClampScroll(-3) = %d, want 0", got)
	}
}

func TestMaxScroll(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  int
	}{
		{"unbounded height", State{Query: "customer", Dataset: manyMatches(30)}, 0},
		{"everything fits", State{Query: "customer", Dataset: manyMatches(5), Height: 40}, 0},
		{"capped by limit", State{Query: "customer", Dataset: manyMatches(80), Height: 16}, 40},
		{"loading", State{Loading: true, Query: "customer", Dataset: manyMatches(80), Height: 16}, 0},
		{"interactive chrome", State{Interactive: true, Query: "customer", Dataset: manyMatches(30), Height: 20}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxScroll(tt.state); got != tt.want {
				t.Errorf("MaxScroll() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRender_Interactive(t *testing.T) {
	keys := []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
	state := State{
		Interactive: true,
		Input:       "> john",
		Query:       "john",
		Dataset:     sampleDataset(),
		Keys:        keys,
	}
	out := Render(state, styles.Plain())

	lines := strings.Split(out, "\n")
	if lines[0] != Title {
		t.Errorf("first line = %q, want title", lines[0])
	}
	if lines[1] != "> john" {
		t.Errorf("second line = %q, want input", lines[1])
	}
	if !strings.HasSuffix(out, "[esc] clear  [ctrl+c] quit") {
		t.Errorf("help bar missing at bottom:\n%s", out)
	}
}

func TestRender_Highlight(t *testing.T) {
	s := styles.New(styles.ThemeDefault)
	s.SearchMatch = lipgloss.NewStyle().Transform(func(m string) string { return "<" + m + ">" })

	ds, err := customer.Decode(strings.NewReader(`[
		{"id": "D10", "name": "John Doe", "nic": 0, "address": "10 Doe Street"},
		{"id": 0, "name": "Ann Doe", "nic": "N0", "address": "A1"}
	]`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	tests := []struct {
		name    string
		query   string
		want    []string
		notWant []string
		marks   int
	}{
		{
			name:    "name highlighted, address left alone",
			query:   "doe",
			want:    []string{"John <Doe>", "Ann <Doe>"},
			notWant: []string{"<Doe> Street"},
			marks:   2,
		},
		{
			name:    "non-truthy fields are not highlighted",
			query:   "0",
			want:    []string{"D1<0>", "N<0>"},
			notWant: []string{"1<0> Doe Street"},
			marks:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(Render(State{Query: tt.query, Dataset: ds}, s))
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("expected %q in output:\n%s", w, out)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(out, nw) {
					t.Errorf("unexpected %q in output:\n%s", nw, out)
				}
			}
			if got := strings.Count(out, "<"); got != tt.marks {
				t.Errorf("highlighted %d spans, want %d:\n%s", got, tt.marks, out)
			}
		})
	}
}

func TestRender_PlainStylesDoNotHighlight(t *testing.T) {
	out := Render(State{Query: "doe", Dataset: sampleDataset()}, styles.Plain())
	if !strings.Contains(out, "John Doe") {
		t.Errorf("plain output should keep cell text unchanged:\n%s", out)
	}
}

func TestFitColumns(t *testing.T) {
	tests := []struct {
		name    string
		natural []int
		avail   int
		want    []int
	}{
		{"fits", []int{2, 8, 3, 10}, 40, []int{2, 8, 3, 10}},
		{"unbounded", []int{2, 80, 3, 100}, 0, []int{2, 80, 3, 100}},
		{"narrow columns keep width", []int{2, 30, 4, 40}, 36, []int{2, 15, 4, 15}},
		{"remainder spread", []int{2, 30, 4, 40}, 37, []int{2, 16, 4, 15}},
		{"all shrink", []int{20, 20, 20, 20}, 40, []int{10, 10, 10, 10}},
		{"minimum one column", []int{20, 20, 20, 20}, 2, []int{1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitColumns(tt.natural, tt.avail)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("fitColumns(%v, %d) = %v, want %v", tt.natural, tt.avail, got, tt.want)
			}
		})
	}
}

func TestAvailableWidth(t *testing.T) {
	if got := availableWidth(0, 4); got != 0 {
		t.Errorf("availableWidth(0, 4) = %d, want 0", got)
	}
	// 5 borders and 8 padding columns
	if got := availableWidth(80, 4); got != 67 {
		t.Errorf("availableWidth(80, 4) = %d, want 67", got)
	}
	if got := availableWidth(5, 4); got != 4 {
		t.Errorf("availableWidth(5, 4) = %d, want minimum of one per column", got)
	}
}
