package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/Iron-Ham/custsearch/internal/tui/styles"
)

// RenderHelp renders the help bar from the enabled bindings in keys,
// as "[key] desc" pairs.
func RenderHelp(keys []key.Binding, s *styles.ThemedStyles) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if !k.Enabled() {
			continue
		}
		h := k.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, s.HelpKey.Render("["+h.Key+"]")+" "+h.Desc)
	}
	if len(parts) == 0 {
		return ""
	}
	return s.HelpBar.Render(strings.Join(parts, "  "))
}
