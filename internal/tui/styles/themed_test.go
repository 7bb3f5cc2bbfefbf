package styles

import (
	"testing"
)

func TestNewThemedStyles(t *testing.T) {
	p := DefaultPalette()
	s := NewThemedStyles(p)

	if s == nil {
		t.Fatal("NewThemedStyles() returned nil")
	}

	// Verify colors are copied correctly
	if s.PrimaryColor != p.Primary {
		t.Errorf("PrimaryColor = %q, want %q", s.PrimaryColor, p.Primary)
	}
	if s.BorderColor != p.Border {
		t.Errorf("BorderColor = %q, want %q", s.BorderColor, p.Border)
	}
	if !s.Title.GetBold() {
		t.Error("Title should be bold")
	}
	if s.IsPlain() {
		t.Error("palette-built styles should not be plain")
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		theme     ThemeName
		wantName  ThemeName
		wantPlain bool
	}{
		{"default", ThemeDefault, ThemeDefault, false},
		{"nord", ThemeNord, ThemeNord, false},
		{"plain", ThemePlain, ThemePlain, true},
		{"unknown falls back", "solarized", ThemeDefault, false},
		{"empty falls back", "", ThemeDefault, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.theme)
			if s.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", s.Name, tt.wantName)
			}
			if s.IsPlain() != tt.wantPlain {
				t.Errorf("IsPlain() = %v, want %v", s.IsPlain(), tt.wantPlain)
			}
		})
	}
}

func TestPlain(t *testing.T) {
	s := Plain()

	if got := s.Highlight("John"); got != "John" {
		t.Errorf("Highlight() = %q, want unchanged text", got)
	}
	if got := s.Count.Render("Found 3 results"); got != "Found 3 results" {
		t.Errorf("Count.Render() = %q, want unchanged text", got)
	}
	if s.TableBorder.Top != "-" {
		t.Errorf("plain table border top = %q, want ASCII", s.TableBorder.Top)
	}
}
