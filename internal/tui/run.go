package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/dealscope/internal/app"
	"github.com/Veraticus/dealscope/internal/source"
	tea "github.com/charmbracelet/bubbletea"
)

// Run browses the catalog from src until the user quits. It returns the
// final model so callers can report on the session.
func Run(ctx context.Context, src source.Source, appCfg app.Config, opts ...Option) (Model, error) {
	if src == nil {
		return Model{}, fmt.Errorf("source is required")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := New(ctx, src, appCfg, opts...)
	program := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		return m, fmt.Errorf("failed to run TUI: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return m, nil
}
