package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andreasstove999/stock-tracker/internal/inventory"
)

const title = "📦 Stock Tracker"

func (m Model) View() string {
	var b strings.Builder

	switch m.State() {
	case StateLoading:
		b.WriteString("\n  ")
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading inventory...\n")
		return b.String()

	case StateError:
		b.WriteString(m.styles.Title.Render(title))
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("⚠️  " + m.err))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("enter: try again • esc: quit"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	visible := m.Visible()
	if len(visible) == 0 {
		b.WriteString(m.styles.Muted.Render("📭 No items found"))
		b.WriteString("\n")
	} else {
		for _, item := range visible {
			b.WriteString(m.renderCard(item))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.refreshControl())
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %d of %d items • esc: quit", len(visible), len(m.items))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderCard(item inventory.Item) string {
	detail := func(label, value, fallback string, style lipgloss.Style) string {
		if value == "" {
			value = fallback
		}
		return m.styles.Label.Render(label+" ") + style.Render(value)
	}

	name := item.Name()
	if name == "" {
		name = "Unnamed Item"
	}

	details := strings.Join([]string{
		detail("Color", item.Color(), "-", m.styles.Value),
		detail("Size", item.Size(), "-", m.styles.Value),
		detail("Length", item.Length(), "-", m.styles.Value),
		detail("Available", item.TotalStock(), "0", m.styles.Stock),
	}, "   ")

	card := m.styles.Card
	if m.width > 4 {
		card = card.Width(m.width - 4)
	}
	return card.Render(m.styles.Name.Render(name) + "\n" + details)
}

// refreshControl is disabled while a refresh is in flight.
func (m Model) refreshControl() string {
	if m.refreshing {
		return m.spinner.View() + m.styles.Muted.Render(" Refreshing...")
	}
	return m.styles.Muted.Render("⟳ ctrl+r: refresh")
}
