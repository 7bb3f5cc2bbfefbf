package search

import "testing"

func bracket(s string) string { return "[" + s + "]" }

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		query string
		text  string
		want  string
	}{
		{name: "single match", query: "doe", text: "John Doe", want: "John [Doe]"},
		{name: "multiple matches", query: "o", text: "John Doe", want: "J[o]hn D[o]e"},
		{name: "no match", query: "zz", text: "John Doe", want: "John Doe"},
		{name: "empty query", query: "", text: "John Doe", want: "John Doe"},
		{name: "regex characters are literal", query: "a.b", text: "axb a.b", want: "axb [a.b]"},
		{name: "empty text", query: "x", text: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewHighlighter(tt.query).Highlight(tt.text, bracket)
			if got != tt.want {
				t.Errorf("Highlight(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestHighlight_NilStyle(t *testing.T) {
	h := NewHighlighter("doe")
	if got := h.Highlight("John Doe", nil); got != "John Doe" {
		t.Errorf("nil style should leave text unchanged, got %q", got)
	}
	var nilH *Highlighter
	if got := nilH.Highlight("John Doe", bracket); got != "John Doe" {
		t.Errorf("nil highlighter should leave text unchanged, got %q", got)
	}
}
