package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// View renders the entire TUI interface.
// This is called by Bubble Tea whenever the UI needs to be redrawn.
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.buildHeader()
	tips := m.buildTips()
	body := m.buildBody()
	bottomBar := m.buildBottomBar()

	baseView := m.assembleBaseView(header, tips, body, bottomBar)

	// Add toast notification as overlay if active and not expired
	if m.toast.active && time.Now().Before(m.toast.showUntil) {
		toastContent := m.renderToast()
		baseView = renderToastOverlay(baseView, toastContent)
	}

	return baseView
}

// buildHeader renders the ASCII art header
func (m *model) buildHeader() string {
	art := headerStyle.Render(`
	██╗      ██████╗ ███████╗████████╗
	██║     ██╔═══██╗██╔════╝╚══██╔══╝
	██║     ██║   ██║███████╗   ██║
	██║     ██║   ██║╚════██║   ██║
	███████╗╚██████╔╝███████║   ██║
	╚══════╝ ╚═════╝ ╚══════╝   ╚═╝`)
	return art + "\n" + subtitleStyle.Render("	& FOUND ITEMS MANAGER")
}

// buildTips renders context-sensitive usage tips
func (m *model) buildTips() string {
	var tips string
	switch m.page {
	case pageMenu:
		tips = `  Tips: ↑/↓ or number keys to choose • Enter to select • q or Ctrl+C to exit`
	case pageHelp:
		tips = `  Help: ↑/↓ to scroll • Esc to return to the menu`
	case pageReport:
		tips = `  Report: Enter to accept each field • Esc to cancel`
	case pageCandidates:
		tips = `  Matches: ↑/↓ to move • Enter to confirm a match • Esc to skip`
	case pageBrowse, pageSearch:
		tips = `  Items: ↑/↓ to move • Enter for details • Esc to go back`
	case pageDetail:
		tips = `  Details: c to copy to clipboard • Esc to go back`
	case pageEdit:
		tips = `  Update: pick a field • Enter to apply • Esc to go back`
	case pageRemove, pageClear:
		tips = `  Confirm: ←/→ or Tab to choose • Enter to confirm • Esc to cancel`
	case pageClaim, pagePair:
		tips = `  Enter an item ID • Enter to submit • Esc to cancel`
	case pageSort:
		tips = `  Sort: ↑/↓ to choose • Enter to select • Esc to go back`
	default:
		tips = `  Ctrl+C to exit`
	}
	return tipsStyle.Render(tips)
}

// buildBody renders the active page.
func (m *model) buildBody() string {
	switch m.page {
	case pageMenu:
		return m.viewMenu()
	case pageHelp:
		return m.viewHelp()
	case pageReport:
		return m.viewReport()
	case pageCandidates:
		return m.viewCandidates()
	case pageBrowse:
		return m.viewBrowse()
	case pageDetail:
		return m.viewDetail()
	case pageSearch:
		return m.viewSearch()
	case pageEdit:
		return m.viewEdit()
	case pageRemove:
		return m.viewRemove()
	case pageClaim:
		return m.viewClaim()
	case pagePair:
		return m.viewPair()
	case pageSort:
		return m.viewSort()
	case pageClear:
		return m.viewClear()
	}
	return ""
}

// buildBottomBar renders the bottom status bar with the record count
func (m *model) buildBottomBar() string {
	bottomLeft := "lostfound"
	bottomCenter := m.dataPath
	if bottomCenter == "" {
		bottomCenter = "in-memory store"
	}
	bottomRight := fmt.Sprintf("%d items on record", m.reg.Count())

	totalUsed := len(bottomLeft) + len(bottomCenter) + len(bottomRight)
	leftPadding := (m.width - totalUsed) / 3
	rightPadding := m.width - totalUsed - leftPadding*2
	if leftPadding < 2 {
		leftPadding = 2
	}
	if rightPadding < 2 {
		rightPadding = 2
	}

	return statusBarStyle.Width(m.width).Render(
		bottomLeft +
			strings.Repeat(" ", leftPadding) +
			bottomCenter +
			strings.Repeat(" ", rightPadding) +
			bottomRight,
	)
}

// assembleBaseView combines all UI components into the base view,
// pinning the bottom bar to the last terminal row.
func (m *model) assembleBaseView(header, tips, body, bottomBar string) string {
	top := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		tips,
		"",
		body,
	)

	used := lipgloss.Height(top) + lipgloss.Height(bottomBar)
	if pad := m.height - used; pad > 0 {
		top += strings.Repeat("\n", pad)
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, bottomBar)
}

// listWidth is the width available to full-page lists and panels.
func (m *model) listWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

// listHeight is the height available once the header, tips and bottom
// bar have taken their rows.
func (m *model) listHeight() int {
	h := m.height - 13
	if h < 5 {
		h = 5
	}
	return h
}

// renderToast renders a toast notification
func (m *model) renderToast() string {
	if !m.toast.active || time.Now().After(m.toast.showUntil) {
		return ""
	}

	boxWidth := m.width - 4
	if boxWidth < 40 {
		boxWidth = 40
	}

	var content strings.Builder

	header := fmt.Sprintf("%s %s", m.toast.icon, m.toast.message)
	content.WriteString(header)

	if m.toast.details != "" {
		content.WriteString("\n")
		content.WriteString(m.toast.details)
	}

	borderColor := amberGold
	if m.toast.isError {
		borderColor = alertRed
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(boxWidth)

	return "\n" + boxStyle.Render(content.String()) + "\n"
}

// renderToastOverlay renders a toast-style overlay near the bottom of
// the screen without affecting the base view's layout
func renderToastOverlay(baseView string, toastContent string) string {
	if toastContent == "" {
		return baseView
	}

	baseLines := strings.Split(baseView, "\n")

	toastLines := strings.Split(strings.TrimRight(toastContent, "\n"), "\n")
	toastHeight := len(toastLines)

	// Position the toast just above the bottom status bar.
	startLine := len(baseLines) - 2 - toastHeight
	if startLine < 0 {
		startLine = 0
	}

	var result strings.Builder
	for i, line := range baseLines {
		toastLineIdx := i - startLine
		if toastLineIdx >= 0 && toastLineIdx < len(toastLines) {
			result.WriteString("  ")
			result.WriteString(toastLines[toastLineIdx])
		} else {
			result.WriteString(line)
		}
		if i < len(baseLines)-1 {
			result.WriteString("\n")
		}
	}

	return result.String()
}
