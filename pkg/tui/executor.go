// Package tui provides the terminal user interface for the lost and
// found manager, a full-screen menu-driven workflow over the item
// registry.
//
// The TUI codebase is split into multiple files for better organization:
// - executor.go: Main executor implementation and program lifecycle
// - model.go: Core model structure and state
// - update.go: Bubble Tea Update function and message routing
// - view.go: Bubble Tea View function, toast rendering and layout
// - styles.go: Color schemes and styling
// - itemlist.go: Shared list delegate for item collections
// - one file per page: menu, help, report, candidates, browse, detail,
//   search, edit, remove, claim, pair, sort, clear
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/logging"
	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// Executor runs the interactive terminal interface over a registry.
type Executor struct {
	reg      *registry.Registry
	logger   *logging.Logger
	dataPath string
	program  *tea.Program
}

// NewExecutor creates a TUI executor for the given registry. The logger
// may be nil; the interface then runs without session logging. dataPath
// is shown in the status bar so users know where their items live.
func NewExecutor(reg *registry.Registry, logger *logging.Logger, dataPath string) *Executor {
	return &Executor{
		reg:      reg,
		logger:   logger,
		dataPath: dataPath,
	}
}

// Run starts the TUI and blocks until the user exits or the context is
// cancelled.
func (e *Executor) Run(ctx context.Context) error {
	m := newModel(e.reg, e.logger)
	m.dataPath = e.dataPath
	m.logf("TUI starting, %d items on record", e.reg.Count())

	e.program = tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := e.program.Run(); err != nil {
		// Context cancellation is a normal shutdown path, not a failure.
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run TUI program: %w", err)
	}

	m.logf("TUI exiting, %d items on record", e.reg.Count())
	return nil
}

// logf writes to the session log when one is attached.
func (m *model) logf(format string, args ...any) {
	if m.logger != nil {
		m.logger.Infof(format, args...)
	}
}

// warnf writes a warning to the session log when one is attached.
func (m *model) warnf(format string, args ...any) {
	if m.logger != nil {
		m.logger.Warnf(format, args...)
	}
}
