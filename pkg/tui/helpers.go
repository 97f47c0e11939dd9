package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

// categoryNames returns the categories as menu option labels.
func categoryNames() []string {
	cats := item.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

// renderOptionMenu renders a numbered option list with a cursor.
func renderOptionMenu(options []string, cursor int) string {
	var b strings.Builder
	for i, option := range options {
		line := fmt.Sprintf("%2d. %s", i+1, option)
		if i == cursor {
			b.WriteString(menuSelectedStyle.Render("  > " + line))
		} else {
			b.WriteString(menuItemStyle.Render("    " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// moveCursor applies up/down/number-key navigation to an option menu
// cursor. It returns the chosen index and true when the user selected
// an entry with Enter or a number key.
func moveCursor(cursor *int, count int, key string) (int, bool) {
	switch key {
	case keyUp, "k":
		if *cursor > 0 {
			*cursor--
		}
	case keyDown, "j":
		if *cursor < count-1 {
			*cursor++
		}
	case keyEnter:
		return *cursor, true
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= count && n <= 9 {
			*cursor = n - 1
			return n - 1, true
		}
	}
	return -1, false
}

// newPromptInput builds a focused single-line text input.
func newPromptInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = 48
	ti.Prompt = "> "
	ti.PromptStyle = menuSelectedStyle
	ti.Focus()
	return ti
}

// parseItemID parses user input as a record ID.
func parseItemID(s string) (int32, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("enter a numeric item ID")
	}
	return int32(id), nil
}

// renderPromptPanel renders a bordered single-input prompt with an
// optional error line underneath.
func renderPromptPanel(title, label string, input textinput.Model, errText string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("  " + title))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("  " + label))
	b.WriteString("\n")
	b.WriteString("  " + inputBoxStyle.Render(input.View()))
	if errText != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("  " + errText))
	}
	return b.String()
}
