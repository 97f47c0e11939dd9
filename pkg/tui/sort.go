package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// sortStep: pick a key, then pick an order.
type sortStep int

const (
	sortPickKey sortStep = iota
	sortPickOrder
)

type sortState struct {
	step     sortStep
	keyIdx   int
	orderIdx int
}

var sortKeyTitles = []string{
	"By ID",
	"By Name",
	"By Category",
	"By Date",
	"By Status",
}

var sortKeys = []registry.SortKey{
	registry.SortByID,
	registry.SortByName,
	registry.SortByCategory,
	registry.SortByDate,
	registry.SortByStatus,
}

// sortOrderChoices returns the order labels for a key. Date and status
// carry their domain wording instead of ascending/descending.
func sortOrderChoices(keyIdx int) ([]string, []registry.SortOrder) {
	switch sortKeys[keyIdx] {
	case registry.SortByDate:
		return []string{"Recent First", "Older First"},
			[]registry.SortOrder{registry.RecentFirst, registry.OlderFirst}
	case registry.SortByStatus:
		return []string{"Lost First", "Found First"},
			[]registry.SortOrder{registry.LostFirst, registry.FoundFirst}
	}
	return []string{"Ascending", "Descending"},
		[]registry.SortOrder{registry.Ascending, registry.Descending}
}

// openSort starts the sort flow at the key menu.
func (m *model) openSort() {
	m.sorting = sortState{}
	m.page = pageSort
}

func (m *model) updateSort(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch m.sorting.step {
	case sortPickKey:
		if keyMsg.String() == keyEsc || keyMsg.String() == "q" {
			m.backToMenu()
			return m, nil
		}
		if _, ok := moveCursor(&m.sorting.keyIdx, len(sortKeyTitles), keyMsg.String()); ok {
			m.sorting.step = sortPickOrder
			m.sorting.orderIdx = 0
		}
		return m, nil

	case sortPickOrder:
		if keyMsg.String() == keyEsc {
			m.sorting.step = sortPickKey
			return m, nil
		}
		labels, orders := sortOrderChoices(m.sorting.keyIdx)
		if chosen, ok := moveCursor(&m.sorting.orderIdx, len(labels), keyMsg.String()); ok {
			return m, m.applySort(orders[chosen])
		}
		return m, nil
	}
	return m, nil
}

// applySort reorders the collection and returns to the key menu.
func (m *model) applySort(order registry.SortOrder) tea.Cmd {
	key := sortKeys[m.sorting.keyIdx]
	err := m.reg.SortBy(key, order)
	m.sorting.step = sortPickKey

	if err == nil {
		m.logf("sorted items by %s (%s)", key, order)
		return m.showToast("Items sorted successfully!", "", false)
	}

	var perr *registry.PersistError
	if errors.As(err, &perr) {
		m.warnf("sort applied but not persisted: %v", perr)
		return m.showToast("Items sorted successfully!",
			"Warning: saving to disk failed: "+perr.Err.Error(), true)
	}
	return m.showToast(strings.TrimPrefix(err.Error(), "registry: "), "", true)
}

func (m *model) viewSort() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("  SORT ITEMS"))
	b.WriteString("\n\n")

	switch m.sorting.step {
	case sortPickKey:
		b.WriteString(renderOptionMenu(sortKeyTitles, m.sorting.keyIdx))
	case sortPickOrder:
		b.WriteString(labelStyle.Render("  " + sortKeyTitles[m.sorting.keyIdx]))
		b.WriteString("\n")
		labels, _ := sortOrderChoices(m.sorting.keyIdx)
		b.WriteString(renderOptionMenu(labels, m.sorting.orderIdx))
	}
	return b.String()
}
