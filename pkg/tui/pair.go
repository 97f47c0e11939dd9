package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// pairState collects the two ids to pair, one prompt at a time.
type pairState struct {
	input   textinput.Model
	firstID int32
	second  bool
	errText string
}

// openPair starts the manual match flow.
func (m *model) openPair() tea.Cmd {
	m.pair = pairState{input: newPromptInput("item ID")}
	m.page = pagePair
	return textinput.Blink
}

func (m *model) updatePair(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyMsg); isKey {
		switch keyMsg.String() {
		case keyEsc:
			m.backToMenu()
			return m, nil
		case keyEnter:
			return m, m.submitPairID()
		}
	}

	var cmd tea.Cmd
	m.pair.input, cmd = m.pair.input.Update(msg)
	return m, cmd
}

// submitPairID consumes the current prompt; after the second id the
// pairing runs.
func (m *model) submitPairID() tea.Cmd {
	id, err := parseItemID(m.pair.input.Value())
	if err != nil {
		m.pair.errText = err.Error()
		return nil
	}

	if !m.pair.second {
		if _, err := m.reg.Get(id); err != nil {
			m.pair.errText = fmt.Sprintf("Item with ID %d not found.", id)
			return nil
		}
		m.pair.firstID = id
		m.pair.second = true
		m.pair.errText = ""
		m.pair.input = newPromptInput("item ID")
		return textinput.Blink
	}

	cmd := m.confirmMatch(m.pair.firstID, id)
	m.backToMenu()
	return cmd
}

func (m *model) viewPair() string {
	label := "Enter the ID of the first item to match"
	if m.pair.second {
		label = fmt.Sprintf("First item: %d. Enter the ID of the second item to match", m.pair.firstID)
	}
	return renderPromptPanel("MARK ITEMS AS MATCHED", label, m.pair.input, m.pair.errText)
}

// confirmMatch runs the pairing operation and reports the outcome with
// a toast. Shared by the manual flow and the post-report candidate
// search.
func (m *model) confirmMatch(id1, id2 int32) tea.Cmd {
	err := m.reg.ConfirmMatch(id1, id2)
	if err == nil {
		m.logf("matched item %d with item %d", id1, id2)
		details := fmt.Sprintf("Item %d matched with Item %d", id1, id2)
		return m.showToast("Items matched successfully!", details, false)
	}

	var perr *registry.PersistError
	if errors.As(err, &perr) {
		m.warnf("match %d/%d applied but not persisted: %v", id1, id2, perr)
		return m.showToast("Items matched successfully!",
			"Warning: saving to disk failed: "+perr.Err.Error(), true)
	}

	m.warnf("match %d/%d rejected: %v", id1, id2, err)
	return m.showToast(matchErrorText(id1, id2, err), "", true)
}

// matchErrorText maps pairing failures onto user-facing messages.
func matchErrorText(id1, id2 int32, err error) string {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return "One or both item IDs not found."
	case errors.Is(err, registry.ErrAlreadyMatched):
		return "One or both items are already matched."
	case errors.Is(err, registry.ErrInvalidPairing):
		if id1 == id2 {
			return "Cannot match an item with itself."
		}
		return "Invalid match! You can only match a Lost item with a Found item."
	}
	return strings.TrimPrefix(err.Error(), "registry: ")
}
