package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// claimState prompts for the id of a matched record to claim.
type claimState struct {
	input   textinput.Model
	errText string
}

// openClaim starts the claim flow.
func (m *model) openClaim() tea.Cmd {
	m.claim = claimState{input: newPromptInput("item ID")}
	m.page = pageClaim
	return textinput.Blink
}

func (m *model) updateClaim(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyMsg); isKey {
		switch keyMsg.String() {
		case keyEsc:
			m.backToMenu()
			return m, nil
		case keyEnter:
			return m, m.submitClaim()
		}
	}
	var cmd tea.Cmd
	m.claim.input, cmd = m.claim.input.Update(msg)
	return m, cmd
}

func (m *model) submitClaim() tea.Cmd {
	id, err := parseItemID(m.claim.input.Value())
	if err != nil {
		m.claim.errText = err.Error()
		return nil
	}

	err = m.reg.MarkClaimed(id)
	if err == nil {
		m.logf("item %d claimed", id)
		m.backToMenu()
		return m.showToast("Item marked as claimed successfully.", "", false)
	}

	var perr *registry.PersistError
	if errors.As(err, &perr) {
		m.warnf("claim of item %d applied but not persisted: %v", id, perr)
		m.backToMenu()
		return m.showToast("Item marked as claimed successfully.",
			"Warning: saving to disk failed: "+perr.Err.Error(), true)
	}

	m.claim.errText = claimErrorText(err)
	return nil
}

// claimErrorText maps claim failures onto user-facing messages.
func claimErrorText(err error) string {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return "Item not found."
	case errors.Is(err, registry.ErrNotMatched):
		return "Item cannot be claimed because it is not matched yet."
	case errors.Is(err, registry.ErrAlreadyClaimed):
		return "Item is already claimed."
	}
	return strings.TrimPrefix(err.Error(), "registry: ")
}

func (m *model) viewClaim() string {
	return renderPromptPanel("MARK ITEM AS CLAIMED", "Enter the ID of the item to mark as claimed", m.claim.input, m.claim.errText)
}
