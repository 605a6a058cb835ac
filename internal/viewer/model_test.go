package viewer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreasstove999/stock-tracker/internal/client"
	"github.com/andreasstove999/stock-tracker/internal/inventory"
)

type result struct {
	resp inventory.Response
	err  error
}

type fakeFetcher struct {
	results []result
	calls   int
}

func (f *fakeFetcher) Inventory(ctx context.Context) (inventory.Response, error) {
	r := f.results[min(f.calls, len(f.results)-1)]
	f.calls++
	return r.resp, r.err
}

var sample = inventory.Response{
	Data: []inventory.Item{
		{inventory.ColumnItemName: "Blue Hoodie", inventory.ColumnColor: "Blue", inventory.ColumnSize: "M", inventory.ColumnLength: "", inventory.ColumnTotalStock: "4"},
		{inventory.ColumnItemName: "", inventory.ColumnColor: "Red", inventory.ColumnSize: "", inventory.ColumnLength: "Long", inventory.ColumnTotalStock: ""},
		{inventory.ColumnItemName: "Cap", inventory.ColumnColor: "Black", inventory.ColumnSize: "L", inventory.ColumnLength: "", inventory.ColumnTotalStock: "120"},
	},
	Headers: inventory.RequiredColumns,
}

// collect runs cmd and any batched commands, returning the messages that
// belong to the viewer itself.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	switch msg.(type) {
	case fetchedMsg, fetchRejectedMsg, fetchFailedMsg:
		return []tea.Msg{msg}
	}
	return nil
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

// deliver feeds every fetch outcome produced by cmd back into the model.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range collect(cmd) {
		m, _ = update(t, m, msg)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, f *fakeFetcher) Model {
	t.Helper()
	m := New(context.Background(), f, Options{})
	return deliver(t, m, m.Init())
}

func TestNew_InitialState(t *testing.T) {
	m := New(context.Background(), &fakeFetcher{}, Options{})

	if m.State() != StateLoading {
		t.Fatalf("expected loading, got %s", m.State())
	}
	if len(m.Items()) != 0 || m.Err() != "" {
		t.Fatalf("unexpected initial data: items=%d err=%q", len(m.Items()), m.Err())
	}
	if !strings.Contains(m.View(), "Loading inventory...") {
		t.Fatalf("loading view missing spinner text:\n%s", m.View())
	}
}

func TestInit_LoadsOnce(t *testing.T) {
	f := &fakeFetcher{results: []result{{resp: sample}}}

	m := loaded(t, f)

	if f.calls != 1 {
		t.Fatalf("expected one fetch on mount, got %d", f.calls)
	}
	if m.State() != StateReady {
		t.Fatalf("expected ready, got %s", m.State())
	}
	if len(m.Items()) != 3 {
		t.Fatalf("expected 3 items, got %d", len(m.Items()))
	}
}

func TestLoad_StructuredError(t *testing.T) {
	f := &fakeFetcher{results: []result{{err: &client.APIError{StatusCode: 404, Message: `Spreadsheet "Inventory tracker" not found.`}}}}

	m := loaded(t, f)

	if m.State() != StateError {
		t.Fatalf("expected error state, got %s", m.State())
	}
	if m.Err() != `Spreadsheet "Inventory tracker" not found.` {
		t.Fatalf("unexpected error %q", m.Err())
	}
	view := m.View()
	if !strings.Contains(view, "not found") || !strings.Contains(view, "try again") {
		t.Fatalf("error view incomplete:\n%s", view)
	}
}

func TestLoad_TransportErrorFallback(t *testing.T) {
	f := &fakeFetcher{results: []result{{err: errors.New("")}}}

	m := loaded(t, f)

	if m.Err() != "Failed to load inventory" {
		t.Fatalf("expected fallback message, got %q", m.Err())
	}
}

func TestRetry(t *testing.T) {
	f := &fakeFetcher{results: []result{
		{err: errors.New("dial tcp: connection refused")},
		{resp: sample},
	}}
	m := loaded(t, f)

	m, cmd := update(t, m, key("enter"))
	if m.State() != StateLoading {
		t.Fatalf("retry should show the loading view, got %s", m.State())
	}

	m = deliver(t, m, cmd)
	if m.State() != StateReady || m.Err() != "" {
		t.Fatalf("expected ready after retry, got %s (%q)", m.State(), m.Err())
	}
	if f.calls != 2 {
		t.Fatalf("expected 2 fetches, got %d", f.calls)
	}
}

func TestRefresh(t *testing.T) {
	updated := inventory.Response{Data: []inventory.Item{{inventory.ColumnItemName: "Scarf"}}, Headers: []string{inventory.ColumnItemName}}
	f := &fakeFetcher{results: []result{{resp: sample}, {resp: updated}}}
	m := loaded(t, f)

	m, cmd := update(t, m, key("ctrl+r"))
	if m.State() != StateRefreshing {
		t.Fatalf("expected refreshing, got %s", m.State())
	}
	if !strings.Contains(m.View(), "Refreshing...") {
		t.Fatalf("refresh control should show progress:\n%s", m.View())
	}

	// A second press while in flight is ignored.
	m, second := update(t, m, key("ctrl+r"))
	if second != nil {
		t.Fatalf("refresh must be disabled while refreshing")
	}

	m = deliver(t, m, cmd)
	if m.State() != StateReady {
		t.Fatalf("expected ready, got %s", m.State())
	}
	if len(m.Items()) != 1 || m.Items()[0].Name() != "Scarf" {
		t.Fatalf("items not replaced: %+v", m.Items())
	}
	if f.calls != 2 {
		t.Fatalf("expected 2 fetches, got %d", f.calls)
	}
}

func TestFailedRefreshKeepsItems(t *testing.T) {
	f := &fakeFetcher{results: []result{
		{resp: sample},
		{err: &client.APIError{StatusCode: 500, Message: "Failed to fetch inventory data"}},
	}}
	m := loaded(t, f)

	m, cmd := update(t, m, key("ctrl+r"))
	m = deliver(t, m, cmd)

	if m.State() != StateError {
		t.Fatalf("expected error view, got %s", m.State())
	}
	if len(m.Items()) != len(sample.Data) {
		t.Fatalf("previous items should stay in memory, got %d", len(m.Items()))
	}
	if strings.Contains(m.View(), "Blue Hoodie") {
		t.Fatalf("error view must not render stale cards")
	}
}

func TestSearch(t *testing.T) {
	f := &fakeFetcher{results: []result{{resp: sample}}}
	m := loaded(t, f)

	for _, r := range "blue" {
		m, _ = update(t, m, key(string(r)))
	}

	visible := m.Visible()
	if len(visible) != 1 || visible[0].Name() != "Blue Hoodie" {
		t.Fatalf("expected only Blue Hoodie, got %+v", visible)
	}
	if len(m.Items()) != 3 {
		t.Fatalf("search must not modify stored items")
	}
	if f.calls != 1 {
		t.Fatalf("search must not fetch")
	}
}

func TestSearch_TotalStockIgnored(t *testing.T) {
	m := loaded(t, &fakeFetcher{results: []result{{resp: sample}}})

	for _, r := range "120" {
		m, _ = update(t, m, key(string(r)))
	}

	if len(m.Visible()) != 0 {
		t.Fatalf("stock values must not match, got %+v", m.Visible())
	}
	if !strings.Contains(m.View(), "No items found") {
		t.Fatalf("expected empty placeholder:\n%s", m.View())
	}
}

func TestView_CardFallbacks(t *testing.T) {
	m := loaded(t, &fakeFetcher{results: []result{{resp: sample}}})

	view := m.View()
	for _, want := range []string{"Blue Hoodie", "Unnamed Item", "Available", "ctrl+r: refresh", "3 of 3 items"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestView_EmptyInventory(t *testing.T) {
	m := loaded(t, &fakeFetcher{results: []result{{resp: inventory.Empty()}}})

	if m.State() != StateReady {
		t.Fatalf("empty inventory is not an error, got %s", m.State())
	}
	if !strings.Contains(m.View(), "No items found") {
		t.Fatalf("expected empty placeholder:\n%s", m.View())
	}
}

func TestAutoRefresh(t *testing.T) {
	f := &fakeFetcher{results: []result{{resp: sample}}}
	m := New(context.Background(), f, Options{AutoRefresh: time.Hour})
	m = deliver(t, m, m.fetch())

	m, cmd := update(t, m, autoRefreshMsg{})
	if m.State() != StateRefreshing {
		t.Fatalf("expected refreshing after tick, got %s", m.State())
	}
	if cmd == nil {
		t.Fatalf("expected refresh and reschedule commands")
	}

	// Ticks arriving mid-refresh only reschedule.
	m, cmd = update(t, m, autoRefreshMsg{})
	if m.State() != StateRefreshing || cmd == nil {
		t.Fatalf("expected a reschedule without a second fetch")
	}
}

func TestAutoRefresh_SkippedOnError(t *testing.T) {
	f := &fakeFetcher{results: []result{{err: errors.New("offline")}}}
	m := New(context.Background(), f, Options{AutoRefresh: time.Hour})
	m = deliver(t, m, m.fetch())

	m, _ = update(t, m, autoRefreshMsg{})
	if m.State() != StateError {
		t.Fatalf("auto refresh must not leave the error view, got %s", m.State())
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"esc", "ctrl+c"} {
		m := New(context.Background(), &fakeFetcher{}, Options{})
		_, cmd := update(t, m, key(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestKeysIgnoredWhileLoading(t *testing.T) {
	f := &fakeFetcher{results: []result{{resp: sample}}}
	m := New(context.Background(), f, Options{})

	m, cmd := update(t, m, key("ctrl+r"))
	if cmd != nil || m.State() != StateLoading {
		t.Fatalf("refresh must be ignored during the first load")
	}
	if f.calls != 0 {
		t.Fatalf("unexpected fetch")
	}
}
