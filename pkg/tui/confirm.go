package tui

import "github.com/charmbracelet/lipgloss"

// confirmChoice identifies which confirm button is selected.
type confirmChoice int

const (
	choiceYes confirmChoice = iota
	choiceNo
)

// confirmButtons is a two-button yes/no selector used by destructive
// confirmations. Tab and the arrow keys toggle, y/n jump directly.
type confirmButtons struct {
	yesLabel string
	noLabel  string
	selected confirmChoice
	danger   bool
}

func newConfirmButtons(yesLabel, noLabel string, danger bool) confirmButtons {
	return confirmButtons{
		yesLabel: yesLabel,
		noLabel:  noLabel,
		selected: choiceNo,
		danger:   danger,
	}
}

// handleKey applies a key press. It returns the submitted choice and
// true once the user confirms with Enter or a y/n shortcut.
func (c *confirmButtons) handleKey(key string) (confirmChoice, bool) {
	switch key {
	case keyTab, keyLeft, keyRight:
		if c.selected == choiceYes {
			c.selected = choiceNo
		} else {
			c.selected = choiceYes
		}
	case "y", "Y":
		return choiceYes, true
	case "n", "N":
		return choiceNo, true
	case keyEnter:
		return c.selected, true
	}
	return choiceNo, false
}

// render draws the button row.
func (c confirmButtons) render() string {
	yes := buttonStyle.Render(c.yesLabel)
	no := buttonStyle.Render(c.noLabel)

	if c.selected == choiceYes {
		if c.danger {
			yes = buttonDangerStyle.Render(c.yesLabel)
		} else {
			yes = buttonActiveStyle.Render(c.yesLabel)
		}
	} else {
		no = buttonActiveStyle.Render(c.noLabel)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, yes, "  ", no)
}
