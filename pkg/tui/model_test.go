package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haleta-e/lost-and-found-manager/pkg/codec"
	"github.com/haleta-e/lost-and-found-manager/pkg/item"
	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// memStore keeps snapshots in memory so flows can run without disk.
type memStore struct {
	snap codec.Snapshot
}

func (s *memStore) Load() (codec.Snapshot, error) { return s.snap, nil }

func (s *memStore) Save(snap codec.Snapshot) error {
	s.snap = snap
	return nil
}

// newTestModel builds a model over a fresh registry, sized like a
// typical terminal.
func newTestModel(t *testing.T) *model {
	t.Helper()
	m := newModel(registry.New(&memStore{}), nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

// press sends a sequence of key presses, returning the last command.
// Multi-character strings that are not named keys are typed as runes.
func press(m *model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

// reportItem drives the whole report form from the main menu, picking
// the first category and skipping the person fields. It leaves the
// model at the match-search prompt.
func reportItem(t *testing.T, m *model, status item.Status, name, desc, date, location string) {
	t.Helper()
	entry := "2"
	if status == item.StatusFound {
		entry = "3"
	}
	require.Equal(t, pageMenu, m.page, "report starts from the menu")
	press(m, entry)
	require.Equal(t, pageReport, m.page)

	press(m, name, "enter")
	press(m, "enter") // first category
	press(m, desc, "enter")
	press(m, date, "enter")
	press(m, location, "enter")
	press(m, "enter", "enter") // skip person name and contact
	require.Equal(t, stepSearchPrompt, m.report.step, "form should finish at the search prompt")
}

// seedItem reports an item and declines the match search.
func seedItem(t *testing.T, m *model, status item.Status, name, desc, date, location string) item.Item {
	t.Helper()
	reportItem(t, m, status, name, desc, date, location)
	added := m.report.added
	press(m, "n")
	require.Equal(t, pageMenu, m.page)
	return added
}

func TestInitialState(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, pageMenu, m.page)
	assert.True(t, m.ready)
	assert.Nil(t, m.Init())
}

func TestMenuArrowNavigation(t *testing.T) {
	m := newTestModel(t)

	press(m, "down", "down", "down")
	assert.Equal(t, 3, m.menu.cursor)
	press(m, "up")
	assert.Equal(t, 2, m.menu.cursor)

	press(m, "enter") // Report Found Item
	assert.Equal(t, pageReport, m.page)
	assert.Equal(t, item.StatusFound, m.report.status)
}

func TestMenuNumberJump(t *testing.T) {
	m := newTestModel(t)

	press(m, "4")
	assert.Equal(t, pageBrowse, m.page)
	assert.True(t, m.browse.empty, "no items yet")

	press(m, "enter") // any key returns from the empty list
	assert.Equal(t, pageMenu, m.page)
}

func TestMenuQuitKey(t *testing.T) {
	m := newTestModel(t)

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCtrlCQuitsFromAnyPage(t *testing.T) {
	m := newTestModel(t)

	press(m, "2")
	require.Equal(t, pageReport, m.page)

	cmd := press(m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestToastExpires(t *testing.T) {
	m := newTestModel(t)

	cmd := m.showToast("saved", "", false)
	require.NotNil(t, cmd, "toast schedules an expiry tick")
	assert.True(t, m.toast.active)

	m.toast.showUntil = time.Now().Add(-time.Second)
	m.Update(toastExpiryMsg{})
	assert.False(t, m.toast.active)
}

func TestViewRendersMenu(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "WELCOME TO THE LOST & FOUND ITEMS MANAGER")
	assert.Contains(t, view, "Report Lost Item")
	assert.Contains(t, view, "0 items on record")
	assert.Contains(t, view, "in-memory store")
}

func TestHelpPageScrollsAndCloses(t *testing.T) {
	m := newTestModel(t)

	press(m, "1")
	require.Equal(t, pageHelp, m.page)
	assert.Contains(t, m.View(), "HOW TO USE")

	press(m, "down", "esc")
	assert.Equal(t, pageMenu, m.page)
}
