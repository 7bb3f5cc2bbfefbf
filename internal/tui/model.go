package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/custsearch/internal/customer"
	"github.com/Iron-Ham/custsearch/internal/errors"
	"github.com/Iron-Ham/custsearch/internal/logging"
	"github.com/Iron-Ham/custsearch/internal/search"
	"github.com/Iron-Ham/custsearch/internal/tui/styles"
	"github.com/Iron-Ham/custsearch/internal/tui/view"
)

const placeholder = "Search by Name, ID, or NIC..."

// DatasetLoader fetches the customer dataset from a location.
type DatasetLoader interface {
	Load(ctx context.Context, location string) (customer.Dataset, error)
}

// Options configures a search view.
type Options struct {
	// Location of the dataset, passed to Loader.
	Location string
	// Loader performs the single dataset load.
	Loader DatasetLoader
	// Limit caps the rendered matches. <= 0 means search.DefaultLimit.
	Limit int
	// Theme selects the color theme.
	Theme styles.ThemeName
	// Logger receives load outcomes. Nil discards them.
	Logger *logging.Logger
}

// Model is the Bubble Tea model of the customer search view.
type Model struct {
	input   textinput.Model
	spinner spinner.Model
	keys    keyMap
	styles  *styles.ThemedStyles
	logger  *logging.Logger

	loader   DatasetLoader
	location string
	limit    int

	loading bool
	dataset customer.Dataset

	width  int
	height int
	scroll int

	// ctx scopes the load; cancel runs on quit.
	ctx      context.Context
	cancel   context.CancelFunc
	quitting bool
}

// NewModel creates a search view that starts loading as soon as it is run.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = search.DefaultLimit
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		input:    ti,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:     defaultKeyMap(),
		logger:   logger,
		loader:   opts.Loader,
		location: opts.Location,
		limit:    limit,
		loading:  true,
		ctx:      ctx,
		cancel:   cancel,
	}
	m.applyTheme(styles.New(opts.Theme))
	return m
}

// Init starts the dataset load, the spinner and the cursor blink.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.loader != nil {
		cmds = append(cmds, loadDataset(m.ctx, m.loader, m.location))
	} else {
		cmds = append(cmds, func() tea.Msg {
			return LoadedMsg{Err: errors.NewLoadError("no loader configured", errors.ErrSourceUnavailable)}
		})
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		m.clampScroll()
		return m, nil

	case LoadedMsg:
		return m.handleLoaded(msg), nil

	case ThemeChangedMsg:
		m.applyTheme(styles.New(msg.Theme))
		m.logger.Info("theme changed", "theme", string(m.styles.Name))
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleLoaded(msg LoadedMsg) Model {
	if m.quitting {
		return m
	}

	m.loading = false
	if msg.Err != nil {
		m.dataset = nil
		if errors.Is(msg.Err, errors.ErrCanceled) {
			m.logger.Debug("dataset load canceled", "location", m.location)
		} else {
			m.logger.Error("dataset load failed", "location", m.location, "error", msg.Err.Error())
		}
	} else {
		m.dataset = msg.Dataset
		m.logger.Info("dataset ready", "location", m.location, "records", msg.Dataset.Len())
	}
	m.clampScroll()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		m.input.SetValue("")
		m.scroll = 0
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.scroll--
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.scroll++
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.scroll -= max(view.BodyRows(m.state()), 1)
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.scroll += max(view.BodyRows(m.state()), 1)
		m.clampScroll()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.scroll = 0
	}
	return m, cmd
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return view.Render(m.state(), m.styles)
}

// state snapshots what the renderer needs.
func (m Model) state() view.State {
	return view.State{
		Loading:     m.loading,
		Query:       m.input.Value(),
		Dataset:     m.dataset,
		Width:       m.width,
		Height:      m.height,
		Scroll:      m.scroll,
		Limit:       m.limit,
		Interactive: true,
		Input:       m.input.View(),
		Spinner:     m.spinner.View(),
		Keys:        m.keys.help(),
	}
}

func (m *Model) clampScroll() {
	m.scroll = view.ClampScroll(m.state())
}

func (m *Model) applyTheme(s *styles.ThemedStyles) {
	m.styles = s
	m.input.PromptStyle = s.Prompt
	m.input.TextStyle = s.Input
	m.input.PlaceholderStyle = s.Muted
}

// Close cancels a load that is still in flight. It is safe to call more than once.
func (m Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Query returns the current search text.
func (m Model) Query() string {
	return m.input.Value()
}

// Loading reports whether the dataset load is still pending.
func (m Model) Loading() bool {
	return m.loading
}

// Dataset returns the loaded records; empty while loading or after a failed load.
func (m Model) Dataset() customer.Dataset {
	return m.dataset
}
