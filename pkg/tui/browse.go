package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// browseState is the all-items list.
type browseState struct {
	list  list.Model
	empty bool
	ready bool
}

func (b *browseState) setSize(width, height int) {
	if !b.ready || b.empty {
		return
	}
	b.list.SetSize(width, height)
}

// openBrowse shows every record on file.
func (m *model) openBrowse() {
	items := m.reg.Items()
	state := browseState{ready: true}
	if len(items) == 0 {
		state.empty = true
	} else {
		state.list = newItemList("Items on record", items, m.listWidth(), m.listHeight())
	}
	m.browse = state
	m.page = pageBrowse
}

func (m *model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.browse.empty {
		if isKey {
			m.backToMenu()
		}
		return m, nil
	}

	if isKey {
		switch keyMsg.String() {
		case keyEsc, "q":
			m.backToMenu()
			return m, nil
		case keyEnter:
			if entry, ok := m.browse.list.SelectedItem().(itemListEntry); ok {
				m.openDetail(entry.it, pageBrowse)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.browse.list, cmd = m.browse.list.Update(msg)
	return m, cmd
}

func (m *model) viewBrowse() string {
	if m.browse.empty {
		var b strings.Builder
		b.WriteString(titleStyle.Render("  ITEMS ON RECORD"))
		b.WriteString("\n\n")
		b.WriteString(valueStyle.Render("  No items to display."))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("  Press any key to return to the menu"))
		return b.String()
	}
	return m.browse.list.View()
}
