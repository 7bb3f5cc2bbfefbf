package search

import (
	"regexp"
	"strings"
)

// Highlighter marks occurrences of a query inside table cells.
// It only affects presentation; matching is decided by [Filter].
type Highlighter struct {
	regex *regexp.Regexp
}

// NewHighlighter compiles a case-insensitive literal pattern for query.
// An empty query yields a Highlighter that leaves text untouched.
func NewHighlighter(query string) *Highlighter {
	if query == "" {
		return &Highlighter{}
	}
	return &Highlighter{regex: regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))}
}

// Highlight applies style to every match of the query in text.
func (h *Highlighter) Highlight(text string, style func(string) string) string {
	if h == nil || h.regex == nil || style == nil || text == "" {
		return text
	}

	matches := h.regex.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var result strings.Builder
	lastEnd := 0
	for _, match := range matches {
		result.WriteString(text[lastEnd:match[0]])
		result.WriteString(style(text[match[0]:match[1]]))
		lastEnd = match[1]
	}
	result.WriteString(text[lastEnd:])

	return result.String()
}
