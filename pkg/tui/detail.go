package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

// detailState shows one record in full, remembering where to go back.
type detailState struct {
	it   item.Item
	back page
}

func (m *model) openDetail(it item.Item, back page) {
	m.detail = detailState{it: it, back: back}
	m.page = pageDetail
}

func (m *model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case keyEsc, "q", keyEnter:
		m.page = m.detail.back
		return m, nil
	case "c":
		return m, m.copyDetail()
	}
	return m, nil
}

// copyDetail puts a plain-text rendition of the record on the system
// clipboard.
func (m *model) copyDetail() tea.Cmd {
	if err := clipboard.WriteAll(plainItemDetail(m.detail.it)); err != nil {
		return m.showToast("Could not copy to clipboard", err.Error(), true)
	}
	return m.showToast("Copied to clipboard", fmt.Sprintf("Item %d details", m.detail.it.ID), false)
}

func (m *model) viewDetail() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("  ITEM %d", m.detail.it.ID)))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(renderItemDetail(m.detail.it)))
	return b.String()
}

// itemFields returns the detail rows for a record in display order.
// Pairing and person rows only appear when they carry information.
func itemFields(it item.Item) [][2]string {
	yesNo := func(v bool) string {
		if v {
			return "Yes"
		}
		return "No"
	}

	fields := [][2]string{
		{"ID", fmt.Sprintf("%d", it.ID)},
		{"Name", it.Name},
		{"Category", string(it.Category)},
		{"Description", it.Description},
		{"Date", it.Date.String()},
		{"Location", it.Location},
		{"Status", string(it.Status)},
		{"Matched", yesNo(it.Matched)},
		{"Claimed", yesNo(it.Claimed)},
	}
	if it.MatchedItemID != item.NoMatch {
		fields = append(fields, [2]string{"Matched With ID", fmt.Sprintf("%d", it.MatchedItemID)})
	}
	if it.PersonName != "" {
		label := "Owner"
		if it.Status == item.StatusFound {
			label = "Finder"
		}
		fields = append(fields, [2]string{label, it.PersonName})
	}
	if it.PersonContact != "" {
		fields = append(fields, [2]string{"Contact", it.PersonContact})
	}
	return fields
}

// renderItemDetail renders a record as a styled field table.
func renderItemDetail(it item.Item) string {
	var b strings.Builder
	for _, f := range itemFields(it) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %-17s", f[0]+":")))
		if f[0] == "Status" {
			style := foundStyle
			if it.Status == item.StatusLost {
				style = lostStyle
			}
			b.WriteString(style.Render(f[1]))
		} else {
			b.WriteString(valueStyle.Render(f[1]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// plainItemDetail renders a record without styling, for the clipboard.
func plainItemDetail(it item.Item) string {
	var b strings.Builder
	for _, f := range itemFields(it) {
		fmt.Fprintf(&b, "%s: %s\n", f[0], f[1])
	}
	return b.String()
}
