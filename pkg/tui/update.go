package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastDuration is how long a toast notification stays visible.
const toastDuration = 3 * time.Second

// toastExpiryMsg triggers a redraw once a toast has run its course.
type toastExpiryMsg struct{}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Global concerns are handled here; all
// remaining messages are routed to the active page.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizePages()
		return m, nil

	case toastExpiryMsg:
		if m.toast.active && !time.Now().Before(m.toast.showUntil) {
			m.toast.active = false
		}
		return m, nil

	case tea.KeyMsg:
		// Ctrl+C always exits, regardless of page.
		if msg.String() == keyCtrlC {
			return m, tea.Quit
		}
	}

	return m.updatePage(msg)
}

// updatePage forwards a message to whichever page is active. Pages
// receive every message so focused text inputs keep blinking.
func (m *model) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.page {
	case pageMenu:
		return m.updateMenu(msg)
	case pageHelp:
		return m.updateHelp(msg)
	case pageReport:
		return m.updateReport(msg)
	case pageCandidates:
		return m.updateCandidates(msg)
	case pageBrowse:
		return m.updateBrowse(msg)
	case pageDetail:
		return m.updateDetail(msg)
	case pageSearch:
		return m.updateSearch(msg)
	case pageEdit:
		return m.updateEdit(msg)
	case pageRemove:
		return m.updateRemove(msg)
	case pageClaim:
		return m.updateClaim(msg)
	case pagePair:
		return m.updatePair(msg)
	case pageSort:
		return m.updateSort(msg)
	case pageClear:
		return m.updateClear(msg)
	}
	return m, nil
}

// resizePages pushes the new terminal dimensions into page state that
// holds sized components.
func (m *model) resizePages() {
	m.help.setSize(m.listWidth(), m.listHeight())
	m.browse.setSize(m.listWidth(), m.listHeight())
	m.search.setSize(m.listWidth(), m.listHeight())
	m.candidates.setSize(m.listWidth(), m.listHeight())
}

// showToast displays a toast notification and schedules its expiry.
func (m *model) showToast(message, details string, isError bool) tea.Cmd {
	icon := "✓"
	if isError {
		icon = "✗"
	}
	m.toast = toastNotification{
		active:    true,
		message:   message,
		details:   details,
		icon:      icon,
		isError:   isError,
		showUntil: time.Now().Add(toastDuration),
	}
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiryMsg{}
	})
}
