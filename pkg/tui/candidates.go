package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

// candidatesState shows potential counterparts for a record.
type candidatesState struct {
	source item.Item
	list   list.Model
	empty  bool
	ready  bool
}

func (c *candidatesState) setSize(width, height int) {
	if !c.ready || c.empty {
		return
	}
	c.list.SetSize(width, height)
}

// openCandidates scans for potential matches of the given record.
func (m *model) openCandidates(of item.Item) {
	found := m.reg.FindCandidates(of)
	m.logf("match search for item %d found %d candidates", of.ID, len(found))

	state := candidatesState{source: of, ready: true}
	if len(found) == 0 {
		state.empty = true
	} else {
		title := fmt.Sprintf("Potential matches for #%d %s", of.ID, of.Name)
		state.list = newItemList(title, found, m.listWidth(), m.listHeight())
	}
	m.candidates = state
	m.page = pageCandidates
}

func (m *model) updateCandidates(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.candidates.empty {
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
			if entry, ok := m.candidates.list.SelectedItem().(itemListEntry); ok {
				cmd := m.confirmMatch(m.candidates.source.ID, entry.it.ID)
				m.backToMenu()
				return m, cmd
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.candidates.list, cmd = m.candidates.list.Update(msg)
	return m, cmd
}

func (m *model) viewCandidates() string {
	if m.candidates.empty {
		var b strings.Builder
		b.WriteString(titleStyle.Render("  POTENTIAL MATCHES"))
		b.WriteString("\n\n")
		b.WriteString(valueStyle.Render("  No potential matches found."))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("  Press any key to return to the menu"))
		return b.String()
	}
	return m.candidates.list.View()
}
