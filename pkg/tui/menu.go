package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

// menuState tracks the cursor position on the main menu.
type menuState struct {
	cursor int
}

func newMenuState() menuState {
	return menuState{}
}

// menuEntry is one selectable action on the main menu.
type menuEntry struct {
	title string
	open  func(m *model) tea.Cmd
}

var menuEntries = []menuEntry{
	{"How to Use", func(m *model) tea.Cmd { m.openHelp(); return nil }},
	{"Report Lost Item", func(m *model) tea.Cmd { return m.openReport(item.StatusLost) }},
	{"Report Found Item", func(m *model) tea.Cmd { return m.openReport(item.StatusFound) }},
	{"View Items", func(m *model) tea.Cmd { m.openBrowse(); return nil }},
	{"Update Item", func(m *model) tea.Cmd { return m.openEdit() }},
	{"Filter / Search Items", func(m *model) tea.Cmd { m.openSearch(); return nil }},
	{"Delete Item", func(m *model) tea.Cmd { return m.openRemove() }},
	{"Mark Item as Claimed", func(m *model) tea.Cmd { return m.openClaim() }},
	{"Mark Items as Matched", func(m *model) tea.Cmd { return m.openPair() }},
	{"Sort Items", func(m *model) tea.Cmd { m.openSort(); return nil }},
	{"Clear All Items", func(m *model) tea.Cmd { m.openClear(); return nil }},
	{"Exit", func(m *model) tea.Cmd { return tea.Quit }},
}

func (m *model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "q" {
		return m, tea.Quit
	}
	if chosen, ok := moveCursor(&m.menu.cursor, len(menuEntries), keyMsg.String()); ok {
		return m, menuEntries[chosen].open(m)
	}
	return m, nil
}

func (m *model) viewMenu() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("  WELCOME TO THE LOST & FOUND ITEMS MANAGER"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  Track lost items, manage found items, and help reunite"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  what is lost with its owner. Every item you log can make"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  someone's day!"))
	b.WriteString("\n\n")

	titles := make([]string, len(menuEntries))
	for i, entry := range menuEntries {
		titles[i] = entry.title
	}
	b.WriteString(renderOptionMenu(titles, m.menu.cursor))

	return b.String()
}
