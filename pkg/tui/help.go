package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// helpState holds the scrollable help viewport.
type helpState struct {
	viewport viewport.Model
	ready    bool
}

func (h *helpState) setSize(width, height int) {
	if !h.ready {
		return
	}
	h.viewport.Width = width
	h.viewport.Height = height
}

func (m *model) openHelp() {
	vp := viewport.New(m.listWidth(), m.listHeight())
	vp.SetContent(helpContent())
	m.help = helpState{viewport: vp, ready: true}
	m.page = pageHelp
}

func (m *model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc, "q", keyEnter:
			m.backToMenu()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.help.viewport, cmd = m.help.viewport.Update(msg)
	return m, cmd
}

func (m *model) viewHelp() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("  HOW TO USE"))
	b.WriteString("\n\n")
	b.WriteString(m.help.viewport.View())
	return b.String()
}

func helpContent() string {
	section := func(title string) string {
		return titleStyle.Render(title)
	}

	var b strings.Builder

	b.WriteString(section("ABOUT THE APPLICATION"))
	b.WriteString(`
This application helps track lost and found items. Report items
that were lost or found, pair a lost report with the matching
found report, and mark items as claimed once they are returned
to their owner.

`)

	b.WriteString(section("DATA STORAGE"))
	b.WriteString(`
Items are saved automatically after every change, so your records
persist between sessions. The status bar at the bottom shows where
the data file lives.

`)

	b.WriteString(section("MAIN MENU OPTIONS"))
	b.WriteString(`
Report Lost Item      Log an item you lost, with its details.
Report Found Item     Log an item you found, with its details.
View Items            Browse every item on record.
Update Item           Edit the details of an existing item.
Filter / Search       Find items by name, category, description,
                      location, status, date, or pairing state.
Delete Item           Remove an item from the records.
Mark Item as Claimed  Record that a matched item was returned.
Mark Items as Matched Pair a lost report with a found report.
Sort Items            Reorder the records by ID, name, category,
                      date, or status.
Clear All Items       Delete every item on record.

`)

	b.WriteString(section("MATCHING SYSTEM"))
	b.WriteString(`
After reporting an item you can search for potential matches:
opposite-status items whose name, category, description, or
location overlaps with the new report. Confirming a match links
the two records. Once a matched item is returned to its owner,
mark it as claimed; both records are updated together.

`)

	b.WriteString(section("IMPORTANT NOTES"))
	b.WriteString(`
Every item receives a unique ID when it is reported. Use that ID
to update, delete, match, or claim the item. Only matched items
can be claimed, and a claimed item cannot be claimed again.
`)

	return b.String()
}
