package viewer

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full screen viewer and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, f Fetcher, opts Options) error {
	p := tea.NewProgram(New(ctx, f, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
