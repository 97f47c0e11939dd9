package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

// itemListEntry wraps a record for the bubbles list component.
type itemListEntry struct {
	it item.Item
}

func (e itemListEntry) FilterValue() string {
	return e.it.Name
}

func (e itemListEntry) Title() string {
	title := fmt.Sprintf("#%d %s (%s)", e.it.ID, e.it.Name, e.it.Status)
	if e.it.Claimed {
		title += " • claimed"
	} else if e.it.Matched {
		title += fmt.Sprintf(" • matched with #%d", e.it.MatchedItemID)
	}
	return title
}

func (e itemListEntry) Description() string {
	desc := strings.ReplaceAll(e.it.Description, "\n", " ")
	if len(desc) > 40 {
		desc = desc[:40] + "..."
	}
	return fmt.Sprintf("%s • %s • %s • %s", e.it.Category, e.it.Location, e.it.Date, desc)
}

// newItemListDelegate customizes the default delegate to the app theme.
func newItemListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()

	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(amberGold).
		BorderForeground(amberGold)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(mutedGray).
		BorderForeground(amberGold)

	return d
}

// newItemList builds a list component over a slice of records.
func newItemList(title string, items []item.Item, width, height int) list.Model {
	l := list.New(itemListEntries(items), newItemListDelegate(), width, height)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)

	l.Styles.Title = lipgloss.NewStyle().
		Foreground(amberGold).
		Bold(true).
		Padding(0, 1)

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "select"),
			),
			key.NewBinding(
				key.WithKeys("esc", "q"),
				key.WithHelp("esc/q", "back"),
			),
		}
	}

	return l
}

// itemListEntries converts records into list items.
func itemListEntries(items []item.Item) []list.Item {
	entries := make([]list.Item, len(items))
	for i, it := range items {
		entries[i] = itemListEntry{it: it}
	}
	return entries
}
