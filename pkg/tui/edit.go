package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// editStep tracks progress through the update flow.
type editStep int

const (
	editEnterID editStep = iota
	editPickField
	editEnterValue
)

// editField identifies which field is being rewritten.
type editField int

const (
	editName editField = iota
	editCategory
	editDescription
	editDate
	editLocation
	editPersonName
	editPersonContact
	editAll
	editReturn
)

var editFieldTitles = []string{
	"Name",
	"Category",
	"Description",
	"Date",
	"Location",
	"Person Name",
	"Person Contact",
	"All Fields",
	"Return to Main Menu",
}

// editState is the update flow: find the record, pick a field, enter
// the new value. All Fields walks every field before a single update.
type editState struct {
	step        editStep
	id          int32
	current     item.Item
	fieldIdx    int
	field       editField
	all         bool
	changes     item.Changes
	input       textinput.Model
	categoryIdx int
	errText     string
}

// openEdit starts the update flow at the id prompt.
func (m *model) openEdit() tea.Cmd {
	m.edit = editState{input: newPromptInput("item ID")}
	m.page = pageEdit
	return textinput.Blink
}

func (m *model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	switch m.edit.step {
	case editEnterID:
		if isKey {
			switch keyMsg.String() {
			case keyEsc:
				m.backToMenu()
				return m, nil
			case keyEnter:
				m.lookupEditItem()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.edit.input, cmd = m.edit.input.Update(msg)
		return m, cmd

	case editPickField:
		if !isKey {
			return m, nil
		}
		if keyMsg.String() == keyEsc {
			m.backToMenu()
			return m, nil
		}
		if chosen, ok := moveCursor(&m.edit.fieldIdx, len(editFieldTitles), keyMsg.String()); ok {
			return m, m.startEditField(editField(chosen))
		}
		return m, nil

	case editEnterValue:
		if m.edit.field == editCategory {
			if !isKey {
				return m, nil
			}
			if keyMsg.String() == keyEsc {
				m.cancelEditValue()
				return m, nil
			}
			cats := item.Categories()
			if chosen, ok := moveCursor(&m.edit.categoryIdx, len(cats), keyMsg.String()); ok {
				return m, m.submitEditValue(string(cats[chosen]))
			}
			return m, nil
		}
		if isKey {
			switch keyMsg.String() {
			case keyEsc:
				m.cancelEditValue()
				return m, nil
			case keyEnter:
				return m, m.submitEditValue(strings.TrimSpace(m.edit.input.Value()))
			}
		}
		var cmd tea.Cmd
		m.edit.input, cmd = m.edit.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// lookupEditItem resolves the entered id to a record.
func (m *model) lookupEditItem() {
	id, err := parseItemID(m.edit.input.Value())
	if err != nil {
		m.edit.errText = err.Error()
		return
	}
	it, err := m.reg.Get(id)
	if err != nil {
		m.edit.errText = fmt.Sprintf("Item with ID %d not found.", id)
		return
	}
	m.edit.id = id
	m.edit.current = it
	m.edit.step = editPickField
	m.edit.errText = ""
}

// startEditField routes a chosen menu entry.
func (m *model) startEditField(field editField) tea.Cmd {
	switch field {
	case editReturn:
		m.backToMenu()
		return nil
	case editAll:
		m.edit.all = true
		m.edit.changes = item.Changes{}
		return m.startEditValuePrompt(editName)
	default:
		m.edit.all = false
		return m.startEditValuePrompt(field)
	}
}

// startEditValuePrompt prepares the input (or category picker) for one
// field.
func (m *model) startEditValuePrompt(field editField) tea.Cmd {
	m.edit.field = field
	m.edit.step = editEnterValue
	m.edit.errText = ""
	if field == editCategory {
		m.edit.categoryIdx = 0
		return nil
	}
	m.edit.input = newPromptInput(editPlaceholder(field, m.edit.current))
	return textinput.Blink
}

// cancelEditValue abandons the value prompt, dropping any half-built
// all-fields change set.
func (m *model) cancelEditValue() {
	m.edit.all = false
	m.edit.changes = item.Changes{}
	m.edit.errText = ""
	m.edit.step = editPickField
}

// submitEditValue validates the value and either advances the
// all-fields chain or applies a single-field update.
func (m *model) submitEditValue(value string) tea.Cmd {
	switch m.edit.field {
	case editName, editDescription, editLocation:
		if value == "" {
			m.edit.errText = "Input cannot be empty!"
			return nil
		}
	case editDate:
		if _, err := item.ParseDate(value); err != nil {
			m.edit.errText = "Invalid date! Use YYYY-MM-DD."
			return nil
		}
	}

	if m.edit.all {
		setChange(&m.edit.changes, m.edit.field, value)
		if m.edit.field == editPersonContact {
			return m.applyEditChanges(m.edit.changes, "All fields updated successfully!")
		}
		return m.startEditValuePrompt(m.edit.field + 1)
	}

	var changes item.Changes
	setChange(&changes, m.edit.field, value)
	return m.applyEditChanges(changes, editSuccessMessage(m.edit.field))
}

// applyEditChanges runs the update and returns to the field menu.
func (m *model) applyEditChanges(c item.Changes, successMsg string) tea.Cmd {
	updated, err := m.reg.Update(m.edit.id, c)

	var perr *registry.PersistError
	if err != nil && !errors.As(err, &perr) {
		m.edit.errText = strings.TrimPrefix(err.Error(), "registry: ")
		return nil
	}

	m.logf("updated item %d", m.edit.id)
	m.edit.current = updated
	m.edit.all = false
	m.edit.changes = item.Changes{}
	m.edit.errText = ""
	m.edit.step = editPickField

	if perr != nil {
		m.warnf("update of item %d applied but not persisted: %v", m.edit.id, perr)
		return m.showToast(successMsg, "Warning: saving to disk failed: "+perr.Err.Error(), true)
	}
	return m.showToast(successMsg, "", false)
}

// setChange writes one field's new value into a change set.
func setChange(c *item.Changes, field editField, value string) {
	switch field {
	case editName:
		c.Name = &value
	case editCategory:
		cat := item.Category(value)
		c.Category = &cat
	case editDescription:
		c.Description = &value
	case editDate:
		d, _ := item.ParseDate(value)
		c.Date = &d
	case editLocation:
		c.Location = &value
	case editPersonName:
		c.PersonName = &value
	case editPersonContact:
		c.PersonContact = &value
	}
}

func editSuccessMessage(field editField) string {
	switch field {
	case editName:
		return "Name updated successfully!"
	case editCategory:
		return "Category updated successfully!"
	case editDescription:
		return "Description updated successfully!"
	case editDate:
		return "Date updated successfully!"
	case editLocation:
		return "Location updated successfully!"
	case editPersonName:
		return "Person name updated successfully!"
	case editPersonContact:
		return "Person contact updated successfully!"
	}
	return "Item updated successfully!"
}

// editPlaceholder shows the current value so the user knows what they
// are replacing.
func editPlaceholder(field editField, current item.Item) string {
	switch field {
	case editName:
		return current.Name
	case editDescription:
		return current.Description
	case editDate:
		return current.Date.String()
	case editLocation:
		return current.Location
	case editPersonName:
		if current.PersonName == "" {
			return "press Enter to leave empty"
		}
		return current.PersonName
	case editPersonContact:
		if current.PersonContact == "" {
			return "press Enter to leave empty"
		}
		return current.PersonContact
	}
	return ""
}

func editValueLabel(field editField) string {
	switch field {
	case editName:
		return "New Name"
	case editCategory:
		return "New Category"
	case editDescription:
		return "New Description"
	case editDate:
		return "New Date (YYYY-MM-DD)"
	case editLocation:
		return "New Location"
	case editPersonName:
		return "New Person Name"
	case editPersonContact:
		return "New Person Contact"
	}
	return ""
}

func (m *model) viewEdit() string {
	switch m.edit.step {
	case editEnterID:
		return renderPromptPanel("UPDATE ITEM", "Enter the ID of the item to update", m.edit.input, m.edit.errText)

	case editPickField:
		var b strings.Builder
		b.WriteString(titleStyle.Render(fmt.Sprintf("  UPDATE ITEM %d", m.edit.id)))
		b.WriteString("\n\n")
		b.WriteString(renderItemDetail(m.edit.current))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  What would you like to update?"))
		b.WriteString("\n")
		b.WriteString(renderOptionMenu(editFieldTitles, m.edit.fieldIdx))
		return b.String()

	case editEnterValue:
		var b strings.Builder
		b.WriteString(titleStyle.Render(fmt.Sprintf("  UPDATE ITEM %d", m.edit.id)))
		b.WriteString("\n\n")
		if m.edit.field == editCategory {
			b.WriteString(labelStyle.Render("  " + editValueLabel(editCategory)))
			b.WriteString("\n")
			b.WriteString(renderOptionMenu(categoryNames(), m.edit.categoryIdx))
		} else {
			b.WriteString(labelStyle.Render("  " + editValueLabel(m.edit.field)))
			b.WriteString("\n")
			b.WriteString("  " + inputBoxStyle.Render(m.edit.input.View()))
			if m.edit.errText != "" {
				b.WriteString("\n")
				b.WriteString(errorStyle.Render("  " + m.edit.errText))
			}
		}
		return b.String()
	}
	return ""
}
