package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// removeState is the delete flow: find the record, confirm, delete.
type removeState struct {
	input      textinput.Model
	confirming bool
	target     item.Item
	confirm    confirmButtons
	errText    string
}

// openRemove starts the delete flow at the id prompt.
func (m *model) openRemove() tea.Cmd {
	m.remove = removeState{input: newPromptInput("item ID")}
	m.page = pageRemove
	return textinput.Blink
}

func (m *model) updateRemove(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.remove.confirming {
		if !isKey {
			return m, nil
		}
		if keyMsg.String() == keyEsc {
			m.backToMenu()
			return m, m.showToast("Deletion cancelled.", "", false)
		}
		choice, submitted := m.remove.confirm.handleKey(keyMsg.String())
		if !submitted {
			return m, nil
		}
		if choice == choiceNo {
			m.backToMenu()
			return m, m.showToast("Deletion cancelled.", "", false)
		}
		cmd := m.deleteTarget()
		m.backToMenu()
		return m, cmd
	}

	if isKey {
		switch keyMsg.String() {
		case keyEsc:
			m.backToMenu()
			return m, nil
		case keyEnter:
			m.lookupRemoveItem()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.remove.input, cmd = m.remove.input.Update(msg)
	return m, cmd
}

func (m *model) lookupRemoveItem() {
	id, err := parseItemID(m.remove.input.Value())
	if err != nil {
		m.remove.errText = err.Error()
		return
	}
	it, err := m.reg.Get(id)
	if err != nil {
		m.remove.errText = fmt.Sprintf("Item with ID %d not found.", id)
		return
	}
	m.remove.target = it
	m.remove.confirming = true
	m.remove.confirm = newConfirmButtons(" ✓ Delete ", " ✗ Cancel ", true)
	m.remove.errText = ""
}

func (m *model) deleteTarget() tea.Cmd {
	err := m.reg.Delete(m.remove.target.ID)
	if err == nil {
		m.logf("deleted item %d", m.remove.target.ID)
		return m.showToast("Item deleted successfully!", "", false)
	}

	var perr *registry.PersistError
	if errors.As(err, &perr) {
		m.warnf("delete of item %d applied but not persisted: %v", m.remove.target.ID, perr)
		return m.showToast("Item deleted successfully!",
			"Warning: saving to disk failed: "+perr.Err.Error(), true)
	}
	return m.showToast(strings.TrimPrefix(err.Error(), "registry: "), "", true)
}

func (m *model) viewRemove() string {
	if m.remove.confirming {
		var b strings.Builder
		b.WriteString(titleStyle.Render("  DELETE ITEM"))
		b.WriteString("\n\n")
		b.WriteString(renderItemDetail(m.remove.target))
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("  Are you sure you want to delete this item?"))
		b.WriteString("\n\n  ")
		b.WriteString(m.remove.confirm.render())
		return b.String()
	}
	return renderPromptPanel("DELETE ITEM", "Enter the ID of the item to delete", m.remove.input, m.remove.errText)
}
