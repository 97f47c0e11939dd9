package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
	"github.com/haleta-e/lost-and-found-manager/pkg/query"
)

// searchStep tracks progress through the filter flow.
type searchStep int

const (
	searchPickField searchStep = iota
	searchEnterQuery
	searchPickOption
	searchResults
)

// searchField identifies which record field is being filtered on.
type searchField int

const (
	searchByName searchField = iota
	searchByCategory
	searchByDescription
	searchByLocation
	searchByStatus
	searchByMatched
	searchByClaimed
	searchByDate
)

var searchFieldTitles = []string{
	"By Name",
	"By Category",
	"By Description",
	"By Location",
	"By Status",
	"By Matched / Unmatched",
	"By Claimed / Unclaimed",
	"By Date",
}

// searchState is the filter flow: pick a field, supply a query or
// option, browse the results.
type searchState struct {
	step      searchStep
	fieldIdx  int
	optionIdx int
	input     textinput.Model
	results   list.Model
	noResults bool
	errText   string
	ready     bool
}

func (s *searchState) setSize(width, height int) {
	if !s.ready || s.step != searchResults || s.noResults {
		return
	}
	s.results.SetSize(width, height)
}

// openSearch starts the filter flow at the field menu.
func (m *model) openSearch() {
	m.search = searchState{ready: true}
	m.page = pageSearch
}

func (m *model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	switch m.search.step {
	case searchPickField:
		if !isKey {
			return m, nil
		}
		if keyMsg.String() == keyEsc || keyMsg.String() == "q" {
			m.backToMenu()
			return m, nil
		}
		if chosen, ok := moveCursor(&m.search.fieldIdx, len(searchFieldTitles), keyMsg.String()); ok {
			return m, m.startSearchField(searchField(chosen))
		}
		return m, nil

	case searchEnterQuery:
		if isKey {
			switch keyMsg.String() {
			case keyEsc:
				m.search.step = searchPickField
				m.search.errText = ""
				return m, nil
			case keyEnter:
				m.runTextSearch()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.search.input, cmd = m.search.input.Update(msg)
		return m, cmd

	case searchPickOption:
		if !isKey {
			return m, nil
		}
		if keyMsg.String() == keyEsc {
			m.search.step = searchPickField
			return m, nil
		}
		options := searchOptions(searchField(m.search.fieldIdx))
		if chosen, ok := moveCursor(&m.search.optionIdx, len(options), keyMsg.String()); ok {
			m.runOptionSearch(chosen)
		}
		return m, nil

	case searchResults:
		if m.search.noResults {
			if isKey {
				m.search.step = searchPickField
			}
			return m, nil
		}
		if isKey {
			switch keyMsg.String() {
			case keyEsc, "q":
				m.search.step = searchPickField
				return m, nil
			case keyEnter:
				if entry, ok := m.search.results.SelectedItem().(itemListEntry); ok {
					m.openDetail(entry.it, pageSearch)
				}
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.search.results, cmd = m.search.results.Update(msg)
		return m, cmd
	}
	return m, nil
}

// startSearchField routes a chosen field to a text prompt or an option
// picker.
func (m *model) startSearchField(field searchField) tea.Cmd {
	m.search.errText = ""
	switch field {
	case searchByName, searchByDescription, searchByLocation, searchByDate:
		placeholder := "search text"
		if field == searchByDate {
			placeholder = "YYYY-MM-DD"
		}
		m.search.input = newPromptInput(placeholder)
		m.search.step = searchEnterQuery
		return textinput.Blink
	default:
		m.search.optionIdx = 0
		m.search.step = searchPickOption
		return nil
	}
}

// searchOptions lists the picker choices for an option-driven field.
func searchOptions(field searchField) []string {
	switch field {
	case searchByCategory:
		return categoryNames()
	case searchByStatus:
		return []string{"Lost", "Found"}
	case searchByMatched:
		return []string{"Matched", "Unmatched"}
	case searchByClaimed:
		return []string{"Claimed", "Unclaimed"}
	}
	return nil
}

// runTextSearch executes the text and date filters.
func (m *model) runTextSearch() {
	items := m.reg.Items()
	q := strings.TrimSpace(m.search.input.Value())

	var results []item.Item
	switch searchField(m.search.fieldIdx) {
	case searchByName:
		results = query.ByName(items, q)
	case searchByDescription:
		results = query.ByDescription(items, q)
	case searchByLocation:
		results = query.ByLocation(items, q)
	case searchByDate:
		d, err := item.ParseDate(q)
		if err != nil {
			m.search.errText = "Invalid date! Use YYYY-MM-DD."
			return
		}
		results = query.ByDate(items, d)
	}

	m.showSearchResults(results)
}

// runOptionSearch executes the picker-driven filters.
func (m *model) runOptionSearch(chosen int) {
	items := m.reg.Items()

	var results []item.Item
	switch searchField(m.search.fieldIdx) {
	case searchByCategory:
		results = query.ByCategory(items, categoryNames()[chosen])
	case searchByStatus:
		status := item.StatusLost
		if chosen == 1 {
			status = item.StatusFound
		}
		results = query.ByStatus(items, status)
	case searchByMatched:
		results = query.ByMatched(items, chosen == 0)
	case searchByClaimed:
		results = query.ByClaimed(items, chosen == 0)
	}

	m.showSearchResults(results)
}

func (m *model) showSearchResults(results []item.Item) {
	m.logf("filter %q returned %d items", searchFieldTitles[m.search.fieldIdx], len(results))
	m.search.step = searchResults
	m.search.noResults = len(results) == 0
	if !m.search.noResults {
		m.search.results = newItemList("Search / Filter Results", results, m.listWidth(), m.listHeight())
	}
}

func (m *model) viewSearch() string {
	switch m.search.step {
	case searchPickField:
		var b strings.Builder
		b.WriteString(titleStyle.Render("  FILTER / SEARCH ITEMS"))
		b.WriteString("\n\n")
		b.WriteString(renderOptionMenu(searchFieldTitles, m.search.fieldIdx))
		return b.String()

	case searchEnterQuery:
		label := searchFieldTitles[m.search.fieldIdx]
		return renderPromptPanel("FILTER / SEARCH ITEMS", label, m.search.input, m.search.errText)

	case searchPickOption:
		var b strings.Builder
		b.WriteString(titleStyle.Render("  FILTER / SEARCH ITEMS"))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("  " + searchFieldTitles[m.search.fieldIdx]))
		b.WriteString("\n")
		b.WriteString(renderOptionMenu(searchOptions(searchField(m.search.fieldIdx)), m.search.optionIdx))
		return b.String()

	case searchResults:
		if m.search.noResults {
			var b strings.Builder
			b.WriteString(titleStyle.Render("  SEARCH / FILTER RESULTS"))
			b.WriteString("\n\n")
			b.WriteString(valueStyle.Render("  No items found matching criteria."))
			b.WriteString("\n\n")
			b.WriteString(hintStyle.Render("  Press any key to search again"))
			return b.String()
		}
		return m.search.results.View()
	}
	return ""
}
