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

// reportStep walks the report form one field at a time.
type reportStep int

const (
	stepName reportStep = iota
	stepCategory
	stepDescription
	stepDate
	stepLocation
	stepPersonName
	stepPersonContact
	stepSearchPrompt
)

// reportState is the in-progress report form.
type reportState struct {
	status      item.Status
	step        reportStep
	input       textinput.Model
	categoryIdx int
	draft       registry.Draft
	added       item.Item
	confirm     confirmButtons
	errText     string
}

// openReport starts the report form for a lost or found item.
func (m *model) openReport(status item.Status) tea.Cmd {
	m.report = reportState{
		status: status,
		step:   stepName,
		input:  newPromptInput(reportPlaceholder(stepName)),
	}
	m.report.draft.Status = status
	m.page = pageReport
	return textinput.Blink
}

func (m *model) updateReport(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if isKey && keyMsg.String() == keyEsc {
		m.backToMenu()
		return m, nil
	}

	switch m.report.step {
	case stepCategory:
		if !isKey {
			return m, nil
		}
		cats := item.Categories()
		if chosen, ok := moveCursor(&m.report.categoryIdx, len(cats), keyMsg.String()); ok {
			m.report.draft.Category = cats[chosen]
			m.advanceReport(stepDescription)
			return m, textinput.Blink
		}
		return m, nil

	case stepSearchPrompt:
		if !isKey {
			return m, nil
		}
		choice, submitted := m.report.confirm.handleKey(keyMsg.String())
		if !submitted {
			return m, nil
		}
		if choice == choiceYes {
			m.openCandidates(m.report.added)
			return m, nil
		}
		m.backToMenu()
		return m, nil

	default:
		if isKey && keyMsg.String() == keyEnter {
			return m, m.submitReportField()
		}
		var cmd tea.Cmd
		m.report.input, cmd = m.report.input.Update(msg)
		return m, cmd
	}
}

// submitReportField validates the current field and advances the form.
func (m *model) submitReportField() tea.Cmd {
	value := strings.TrimSpace(m.report.input.Value())

	switch m.report.step {
	case stepName:
		if value == "" {
			m.report.errText = "Input cannot be empty!"
			return nil
		}
		m.report.draft.Name = value
		m.advanceReport(stepCategory)
		return nil

	case stepDescription:
		if value == "" {
			m.report.errText = "Input cannot be empty!"
			return nil
		}
		m.report.draft.Description = value
		m.advanceReport(stepDate)

	case stepDate:
		d, err := item.ParseDate(value)
		if err != nil {
			m.report.errText = "Invalid date! Use YYYY-MM-DD."
			return nil
		}
		m.report.draft.Date = d
		m.advanceReport(stepLocation)

	case stepLocation:
		if value == "" {
			m.report.errText = "Input cannot be empty!"
			return nil
		}
		m.report.draft.Location = value
		m.advanceReport(stepPersonName)

	case stepPersonName:
		m.report.draft.PersonName = value
		m.advanceReport(stepPersonContact)

	case stepPersonContact:
		m.report.draft.PersonContact = value
		return m.submitReport()
	}
	return textinput.Blink
}

// advanceReport moves to the next field with a fresh input.
func (m *model) advanceReport(next reportStep) {
	m.report.step = next
	m.report.errText = ""
	m.report.input = newPromptInput(reportPlaceholder(next))
}

// submitReport adds the finished draft to the registry and offers a
// match search.
func (m *model) submitReport() tea.Cmd {
	added, err := m.reg.Add(m.report.draft)

	var perr *registry.PersistError
	if err != nil && !errors.As(err, &perr) {
		m.report.errText = err.Error()
		return nil
	}

	m.report.added = added
	m.report.step = stepSearchPrompt
	m.report.confirm = newConfirmButtons(" ✓ Search now ", " ✗ Not now ", false)

	message := fmt.Sprintf("%s item added! ID: %d", m.report.status, added.ID)
	if perr != nil {
		m.warnf("item %d added but not persisted: %v", added.ID, perr)
		return m.showToast(message, "Warning: saving to disk failed: "+perr.Err.Error(), true)
	}

	m.logf("added %s item %d (%s)", strings.ToLower(string(m.report.status)), added.ID, added.Name)
	return m.showToast(message, "", false)
}

func (m *model) viewReport() string {
	var b strings.Builder

	title := "REPORT LOST ITEM"
	if m.report.status == item.StatusFound {
		title = "REPORT FOUND ITEM"
	}
	b.WriteString(titleStyle.Render("  " + title))
	b.WriteString("\n\n")

	b.WriteString(m.renderReportProgress())

	switch m.report.step {
	case stepCategory:
		b.WriteString(labelStyle.Render("  Category"))
		b.WriteString("\n")
		b.WriteString(renderOptionMenu(categoryNames(), m.report.categoryIdx))

	case stepSearchPrompt:
		b.WriteString(valueStyle.Render("  Do you want to search for matching items now?"))
		b.WriteString("\n\n  ")
		b.WriteString(m.report.confirm.render())

	default:
		b.WriteString(labelStyle.Render("  " + reportLabel(m.report.step, m.report.status)))
		b.WriteString("\n")
		b.WriteString("  " + inputBoxStyle.Render(m.report.input.View()))
		if m.report.errText != "" {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render("  " + m.report.errText))
		}
	}

	return b.String()
}

// renderReportProgress summarizes the fields collected so far.
func (m *model) renderReportProgress() string {
	draft := m.report.draft
	var b strings.Builder

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %-13s", label)))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	if m.report.step > stepName {
		writeField("Name", draft.Name)
	}
	if m.report.step > stepCategory {
		writeField("Category", string(draft.Category))
	}
	if m.report.step > stepDescription {
		writeField("Description", draft.Description)
	}
	if m.report.step > stepDate {
		writeField("Date", draft.Date.String())
	}
	if m.report.step > stepLocation {
		writeField("Location", draft.Location)
	}

	if b.Len() == 0 {
		return ""
	}
	b.WriteString("\n")
	return b.String()
}

func reportLabel(step reportStep, status item.Status) string {
	lost := status == item.StatusLost
	switch step {
	case stepName:
		return "Item Name"
	case stepDescription:
		return "Description"
	case stepDate:
		if lost {
			return "Date Lost (YYYY-MM-DD)"
		}
		return "Date Found (YYYY-MM-DD)"
	case stepLocation:
		if lost {
			return "Location Lost"
		}
		return "Location Found"
	case stepPersonName:
		if lost {
			return "Owner Name (optional)"
		}
		return "Finder Name (optional)"
	case stepPersonContact:
		if lost {
			return "Owner Contact (optional)"
		}
		return "Finder Contact (optional)"
	}
	return ""
}

func reportPlaceholder(step reportStep) string {
	switch step {
	case stepName:
		return "e.g. Blue Wallet"
	case stepDescription:
		return "color, brand, identifying marks"
	case stepDate:
		return "YYYY-MM-DD"
	case stepLocation:
		return "e.g. Library"
	case stepPersonName, stepPersonContact:
		return "press Enter to skip"
	}
	return ""
}
