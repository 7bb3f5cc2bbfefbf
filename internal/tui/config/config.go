// Package config implements the interactive editor behind
// "custsearch config edit". Every change is validated against the full
// configuration before it is written to the config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/custsearch/internal/config"
	"github.com/Iron-Ham/custsearch/internal/tui/styles"
	"github.com/Iron-Ham/custsearch/internal/util"
)

// Item types
const (
	TypeString = "string"
	TypeBool   = "bool"
	TypeInt    = "int"
	TypeSelect = "select"
)

const labelWidth = 25

// ConfigItem represents a single configuration item
type ConfigItem struct {
	Key         string
	Label       string
	Description string
	Type        string   // TypeString, TypeBool, TypeInt or TypeSelect
	Options     []string // For select type
}

// Category represents a group of config items
type Category struct {
	Name  string
	Items []ConfigItem
}

// Model is the Bubbletea model for the interactive config UI
type Model struct {
	categories     []Category
	categoryIndex  int
	itemIndex      int
	width          int
	height         int
	editing        bool
	textInput      textinput.Model
	selectIndex    int // For select-type options
	errorMsg       string
	infoMsg        string
	quitting       bool
	configModified bool
	path           string
	styles         *styles.ThemedStyles
}

// Categories returns the editable settings grouped as they are displayed.
func Categories() []Category {
	return []Category{
		{
			Name: "Source",
			Items: []ConfigItem{
				{
					Key:         "source.location",
					Label:       "Location",
					Description: "Dataset path or URL (file, http(s):// or s3://bucket/key; .gz and .zst are decompressed)",
					Type:        TypeString,
				},
				{
					Key:         "source.s3.endpoint",
					Label:       "S3 Endpoint",
					Description: "host[:port] of the S3-compatible object store",
					Type:        TypeString,
				},
				{
					Key:         "source.s3.region",
					Label:       "S3 Region",
					Description: "Bucket region (leave empty to discover it)",
					Type:        TypeString,
				},
				{
					Key:         "source.s3.use_ssl",
					Label:       "S3 Use SSL",
					Description: "Connect to the object store over https",
					Type:        TypeBool,
				},
			},
		},
		{
			Name: "Search",
			Items: []ConfigItem{
				{
					Key:         "search.result_limit",
					Label:       "Result Limit",
					Description: "Maximum rows shown; the result count is never truncated",
					Type:        TypeInt,
				},
			},
		},
		{
			Name: "TUI",
			Items: []ConfigItem{
				{
					Key:         "tui.theme",
					Label:       "Theme",
					Description: "Color theme of the search screen",
					Type:        TypeSelect,
					Options:     config.ValidThemes(),
				},
			},
		},
		{
			Name: "Logging",
			Items: []ConfigItem{
				{
					Key:         "logging.enabled",
					Label:       "Enabled",
					Description: "Write a log file while the search screen runs",
					Type:        TypeBool,
				},
				{
					Key:         "logging.level",
					Label:       "Level",
					Description: "Minimum level written to the log file",
					Type:        TypeSelect,
					Options:     config.ValidLogLevels(),
				},
				{
					Key:         "logging.dir",
					Label:       "Directory",
					Description: "Log directory (leave empty for <config dir>/logs)",
					Type:        TypeString,
				},
				{
					Key:         "logging.max_size_mb",
					Label:       "Max Size (MB)",
					Description: "Rotate the log file once it reaches this size",
					Type:        TypeInt,
				},
				{
					Key:         "logging.max_backups",
					Label:       "Max Backups",
					Description: "Rotated log files to keep",
					Type:        TypeInt,
				},
				{
					Key:         "logging.compress",
					Label:       "Compress",
					Description: "Gzip rotated log files",
					Type:        TypeBool,
				},
			},
		},
	}
}

// Lookup returns the editable item for key.
func Lookup(key string) (ConfigItem, bool) {
	for _, cat := range Categories() {
		for _, item := range cat.Items {
			if item.Key == key {
				return item, true
			}
		}
	}
	return ConfigItem{}, false
}

// Keys returns every editable key in display order.
func Keys() []string {
	var keys []string
	for _, cat := range Categories() {
		for _, item := range cat.Items {
			keys = append(keys, item.Key)
		}
	}
	return keys
}

// New creates a config editor that saves to path.
func New(path string) Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		categories: Categories(),
		textInput:  ti,
		path:       path,
		styles:     styles.New(styles.ThemeName(viper.GetString("tui.theme"))),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Clear messages on any key
		m.errorMsg = ""
		m.infoMsg = ""

		if m.editing {
			return m.handleEditingKeypress(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			m.itemIndex--
			if m.itemIndex < 0 {
				// Move to previous category
				m.categoryIndex--
				if m.categoryIndex < 0 {
					m.categoryIndex = len(m.categories) - 1
				}
				m.itemIndex = len(m.categories[m.categoryIndex].Items) - 1
			}

		case "down", "j":
			m.itemIndex++
			if m.itemIndex >= len(m.categories[m.categoryIndex].Items) {
				// Move to next category
				m.categoryIndex++
				if m.categoryIndex >= len(m.categories) {
					m.categoryIndex = 0
				}
				m.itemIndex = 0
			}

		case "tab":
			m.categoryIndex++
			if m.categoryIndex >= len(m.categories) {
				m.categoryIndex = 0
			}
			m.itemIndex = 0

		case "shift+tab":
			m.categoryIndex--
			if m.categoryIndex < 0 {
				m.categoryIndex = len(m.categories) - 1
			}
			m.itemIndex = 0

		case "enter", " ":
			item := m.currentItem()
			switch item.Type {
			case TypeBool:
				// Toggle boolean directly
				m.apply(item, !viper.GetBool(item.Key))
			case TypeSelect:
				m.editing = true
				m.selectIndex = m.getCurrentSelectIndex()
			default:
				m.editing = true
				m.textInput.SetValue(m.getDisplayValue(item))
				m.textInput.CursorEnd()
				m.textInput.Focus()
			}

		case "r":
			m.resetCurrentToDefault()
		}
	}

	return m, nil
}

func (m Model) handleEditingKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item := m.currentItem()

	switch msg.String() {
	case "esc":
		m.editing = false
		m.textInput.SetValue("")
		return m, nil

	case "enter":
		if item.Type == TypeSelect {
			if m.apply(item, item.Options[m.selectIndex]) {
				m.editing = false
			}
			return m, nil
		}

		value, err := ParseValue(item, m.textInput.Value())
		if err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		if m.apply(item, value) {
			m.editing = false
			m.textInput.SetValue("")
		}
		return m, nil

	case "up", "k":
		if item.Type == TypeSelect {
			m.selectIndex--
			if m.selectIndex < 0 {
				m.selectIndex = len(item.Options) - 1
			}
			return m, nil
		}

	case "down", "j":
		if item.Type == TypeSelect {
			m.selectIndex++
			if m.selectIndex >= len(item.Options) {
				m.selectIndex = 0
			}
			return m, nil
		}
	}

	if item.Type != TypeSelect {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("custsearch configuration"))
	b.WriteString("\n\n")

	configPath := m.path
	if _, err := os.Stat(configPath); err != nil {
		configPath += " (not created)"
	}
	b.WriteString(s.Muted.Render("Config file: " + configPath))
	b.WriteString("\n\n")

	for ci, cat := range m.categories {
		isActiveCategory := ci == m.categoryIndex

		catStyle := s.Muted.Bold(true)
		if isActiveCategory {
			catStyle = s.Title
		}
		b.WriteString(catStyle.Render(fmt.Sprintf("[ %s ]", cat.Name)))
		b.WriteString("\n")

		for ii, item := range cat.Items {
			b.WriteString(m.renderItem(item, isActiveCategory && ii == m.itemIndex))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(m.renderEditOverlay())
	} else {
		b.WriteString(s.Muted.Render(m.currentItem().Description))
	}
	b.WriteString("\n")

	if m.errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(s.NoResults.Render("Error: " + m.errorMsg))
	}
	if m.infoMsg != "" {
		b.WriteString("\n")
		b.WriteString(s.Count.Render(m.infoMsg))
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderItem(item ConfigItem, selected bool) string {
	s := m.styles
	value := m.getDisplayValue(item)
	if value == "" {
		value = "(empty)"
	}

	label := fmt.Sprintf("%-*s", labelWidth, util.TruncateWidth(item.Label, labelWidth))

	if selected {
		cursor := s.Prompt.Render(">")
		return fmt.Sprintf("  %s %s  %s", cursor, s.Input.Bold(true).Render(label), s.Count.Render(value))
	}
	return fmt.Sprintf("    %s  %s", s.Muted.Render(label), s.Input.Render(value))
}

func (m Model) renderEditOverlay() string {
	s := m.styles
	item := m.currentItem()

	boxStyle := lipgloss.NewStyle().
		Border(s.TableBorder).
		Padding(1, 2).
		Width(50)
	if !s.IsPlain() {
		boxStyle = boxStyle.BorderForeground(s.PrimaryColor)
	}

	var content strings.Builder
	if item.Type == TypeSelect {
		content.WriteString(fmt.Sprintf("Select %s:\n\n", item.Label))
		for i, opt := range item.Options {
			if i == m.selectIndex {
				content.WriteString(s.SearchMatch.Render(fmt.Sprintf(" > %s ", opt)))
			} else {
				content.WriteString(fmt.Sprintf("   %s ", opt))
			}
			content.WriteString("\n")
		}
		content.WriteString("\n" + s.Muted.Render("j/k or arrows to select, enter to confirm, esc to cancel"))
	} else {
		content.WriteString(fmt.Sprintf("Edit %s:\n\n", item.Label))
		content.WriteString(m.textInput.View())
		content.WriteString("\n\n" + s.Muted.Render("enter to save, esc to cancel"))
	}

	return "\n" + boxStyle.Render(content.String())
}

func (m Model) renderHelp() string {
	key := m.styles.HelpKey.Render

	if m.editing {
		return m.styles.HelpBar.Render(key("enter") + " save  " + key("esc") + " cancel")
	}

	return m.styles.HelpBar.Render(
		key("j/k") + " navigate  " +
			key("tab") + " next category  " +
			key("enter/space") + " edit  " +
			key("r") + " reset  " +
			key("q") + " quit",
	)
}

func (m Model) currentItem() ConfigItem {
	return m.categories[m.categoryIndex].Items[m.itemIndex]
}

func (m Model) getDisplayValue(item ConfigItem) string {
	switch item.Type {
	case TypeBool:
		return strconv.FormatBool(viper.GetBool(item.Key))
	case TypeInt:
		return strconv.Itoa(viper.GetInt(item.Key))
	default:
		return viper.GetString(item.Key)
	}
}

func (m Model) getCurrentSelectIndex() int {
	item := m.currentItem()
	current := viper.GetString(item.Key)
	for i, opt := range item.Options {
		if opt == current {
			return i
		}
	}
	return 0
}

// parseValue converts raw text input to the item's type.
func ParseValue(item ConfigItem, raw string) (any, error) {
	value := strings.TrimSpace(raw)
	switch item.Type {
	case TypeInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("expected integer value")
		}
		return n, nil
	case TypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("expected true or false")
		}
		return b, nil
	case TypeSelect:
		for _, opt := range item.Options {
			if opt == value {
				return value, nil
			}
		}
		return nil, fmt.Errorf("invalid option: %s", value)
	default:
		return value, nil
	}
}

// apply sets key to value, validates the resulting configuration and saves
// it. An invalid value is rolled back and reported. It reports whether the
// value was kept.
func (m *Model) apply(item ConfigItem, value any) bool {
	previous := viper.Get(item.Key)
	viper.Set(item.Key, value)

	if _, err := config.Load(); err != nil {
		viper.Set(item.Key, previous)
		m.errorMsg = err.Error()
		return false
	}

	if !m.saveConfig() {
		return true
	}
	if item.Key == "tui.theme" {
		m.styles = styles.New(styles.ThemeName(viper.GetString(item.Key)))
	}
	return true
}

func (m *Model) saveConfig() bool {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		m.errorMsg = fmt.Sprintf("Failed to create config directory: %v", err)
		return false
	}

	if err := viper.WriteConfigAs(m.path); err != nil {
		m.errorMsg = fmt.Sprintf("Failed to save config: %v", err)
		return false
	}

	m.infoMsg = "Saved!"
	m.configModified = true
	return true
}

// DefaultValues maps every editable key to its default value.
func DefaultValues() map[string]any {
	d := config.Default()
	return map[string]any{
		// Source
		"source.location":    d.Source.Location,
		"source.s3.endpoint": d.Source.S3.Endpoint,
		"source.s3.region":   d.Source.S3.Region,
		"source.s3.use_ssl":  d.Source.S3.UseSSL,
		// Search
		"search.result_limit": d.Search.ResultLimit,
		// TUI
		"tui.theme": d.TUI.Theme,
		// Logging
		"logging.enabled":     d.Logging.Enabled,
		"logging.level":       d.Logging.Level,
		"logging.dir":         d.Logging.Dir,
		"logging.max_size_mb": d.Logging.MaxSizeMB,
		"logging.max_backups": d.Logging.MaxBackups,
		"logging.compress":    d.Logging.Compress,
	}
}

func (m *Model) resetCurrentToDefault() {
	item := m.currentItem()
	if defaultVal, ok := DefaultValues()[item.Key]; ok {
		if m.apply(item, defaultVal) && m.errorMsg == "" {
			m.infoMsg = fmt.Sprintf("Reset %s to default", item.Label)
		}
	}
}

// Modified reports whether any change was written during the session.
func (m Model) Modified() bool {
	return m.configModified
}

// Run starts the interactive config editor, saving changes to path.
func Run(path string) error {
	p := tea.NewProgram(New(path), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
