package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// clearState is the wipe-everything confirmation.
type clearState struct {
	confirm confirmButtons
}

// openClear asks for confirmation before clearing the collection.
func (m *model) openClear() {
	m.clearing = clearState{confirm: newConfirmButtons(" ✓ Delete all ", " ✗ Cancel ", true)}
	m.page = pageClear
}

func (m *model) updateClear(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	if keyMsg.String() == keyEsc {
		m.backToMenu()
		return m, m.showToast("Operation cancelled. No items were deleted.", "", false)
	}

	choice, submitted := m.clearing.confirm.handleKey(keyMsg.String())
	if !submitted {
		return m, nil
	}

	m.backToMenu()
	if choice == choiceNo {
		return m, m.showToast("Operation cancelled. No items were deleted.", "", false)
	}
	return m, m.clearAll()
}

func (m *model) clearAll() tea.Cmd {
	count := m.reg.Count()
	err := m.reg.Clear()
	if err == nil {
		m.logf("cleared %d items", count)
		return m.showToast("All items cleared successfully.", "", false)
	}

	var perr *registry.PersistError
	if errors.As(err, &perr) {
		m.warnf("clear applied but not persisted: %v", perr)
		return m.showToast("All items cleared successfully.",
			"Warning: saving to disk failed: "+perr.Err.Error(), true)
	}
	return m.showToast(strings.TrimPrefix(err.Error(), "registry: "), "", true)
}

func (m *model) viewClear() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("  CLEAR ALL ITEMS"))
	b.WriteString("\n\n")

	warning := fmt.Sprintf("Are you sure you want to delete ALL items?\nThis removes %d items and cannot be undone.", m.reg.Count())
	b.WriteString(dangerPanelStyle.Render(warning))
	b.WriteString("\n\n  ")
	b.WriteString(m.clearing.confirm.render())
	return b.String()
}
