// Package viewer is the terminal inventory viewer. It mirrors the browser
// view: a loading spinner, an error panel with a retry action, and a
// searchable list of item cards with a refresh control.
package viewer

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreasstove999/stock-tracker/internal/client"
	"github.com/andreasstove999/stock-tracker/internal/inventory"
)

const fallbackError = "Failed to load inventory"

// Fetcher is satisfied by *client.Client.
type Fetcher interface {
	Inventory(ctx context.Context) (inventory.Response, error)
}

type State int

const (
	StateLoading State = iota
	StateError
	StateReady
	StateRefreshing
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	case StateRefreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}

type Options struct {
	// AutoRefresh triggers a refresh on this interval. Zero disables it.
	AutoRefresh time.Duration
	Styles      *Styles
}

// Fetch outcomes.
type (
	fetchedMsg struct {
		resp inventory.Response
	}
	// fetchRejectedMsg carries an error body sent by the server.
	fetchRejectedMsg struct {
		err *client.APIError
	}
	// fetchFailedMsg is a transport or decoding failure.
	fetchFailedMsg struct {
		err error
	}
	autoRefreshMsg struct{}
)

type Model struct {
	ctx     context.Context
	fetcher Fetcher
	styles  Styles

	spinner spinner.Model
	search  textinput.Model

	items      []inventory.Item
	loading    bool
	err        string
	refreshing bool

	autoRefresh time.Duration
	width       int
}

func New(ctx context.Context, f Fetcher, opts Options) Model {
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	ti := textinput.New()
	ti.Placeholder = "Search items..."
	ti.Prompt = "🔍 "
	ti.Focus()

	return Model{
		ctx:         ctx,
		fetcher:     f,
		styles:      styles,
		spinner:     sp,
		search:      ti,
		items:       []inventory.Item{},
		loading:     true,
		autoRefresh: opts.AutoRefresh,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink, m.fetch(), m.scheduleAutoRefresh())
}

// State reports which of the mutually exclusive views is shown.
func (m Model) State() State {
	switch {
	case m.loading:
		return StateLoading
	case m.err != "":
		return StateError
	case m.refreshing:
		return StateRefreshing
	default:
		return StateReady
	}
}

// Items is the last successfully loaded list, including while an error is shown.
func (m Model) Items() []inventory.Item { return m.items }

// Visible is the item list filtered by the current search text.
func (m Model) Visible() []inventory.Item {
	return inventory.Filter(m.items, m.search.Value())
}

func (m Model) Err() string { return m.err }

// load starts a fetch. showRefreshing marks a user or timer refresh rather
// than the first load or a retry.
func (m Model) load(showRefreshing bool) (Model, tea.Cmd) {
	if showRefreshing {
		m.refreshing = true
	}
	return m, m.fetch()
}

func (m Model) fetch() tea.Cmd {
	ctx, f := m.ctx, m.fetcher
	return func() tea.Msg {
		resp, err := f.Inventory(ctx)
		if err != nil {
			var apiErr *client.APIError
			if errors.As(err, &apiErr) {
				return fetchRejectedMsg{err: apiErr}
			}
			return fetchFailedMsg{err: err}
		}
		return fetchedMsg{resp: resp}
	}
}

func (m Model) scheduleAutoRefresh() tea.Cmd {
	if m.autoRefresh <= 0 {
		return nil
	}
	return tea.Tick(m.autoRefresh, func(time.Time) tea.Msg { return autoRefreshMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.search.Width = max(msg.Width-8, 10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchedMsg:
		m.items = msg.resp.Data
		if m.items == nil {
			m.items = []inventory.Item{}
		}
		m.err = ""
		m.finishLoad()
		return m, nil

	case fetchRejectedMsg:
		m.setError(msg.err)
		m.finishLoad()
		return m, nil

	case fetchFailedMsg:
		m.setError(msg.err)
		m.finishLoad()
		return m, nil

	case autoRefreshMsg:
		next := m.scheduleAutoRefresh()
		if m.State() != StateReady {
			return m, next
		}
		var cmd tea.Cmd
		m, cmd = m.load(true)
		return m, tea.Batch(cmd, next)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	}

	switch m.State() {
	case StateLoading:
		return m, nil

	case StateError:
		switch msg.String() {
		case "enter", "r":
			m.loading = true
			return m.load(false)
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+r", "f5":
		if m.refreshing {
			return m, nil
		}
		return m.load(true)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) setError(err error) {
	m.err = err.Error()
	if m.err == "" {
		m.err = fallbackError
	}
}

func (m *Model) finishLoad() {
	m.loading = false
	m.refreshing = false
}
