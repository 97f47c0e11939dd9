package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// This is the single source of truth for all TUI colors.
// Use these constants throughout the TUI to ensure visual consistency.
var (
	// Primary Colors - Core colors
	amberGold   = lipgloss.Color("#FFCC80") // Warm amber - primary accent
	mintGreen   = lipgloss.Color("#A8E6CF") // Soft mint green - found states
	alertRed    = lipgloss.Color("203")     // Red - errors and destructive actions
	mutedGray   = lipgloss.Color("#6B7280") // Muted gray - secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // Bright white - primary text
)

// Common Styles
// These are pre-configured styles for common UI elements.
// Use these as base styles and customize as needed.
var (
	// Text Styles
	headerStyle = lipgloss.NewStyle().
			Foreground(amberGold).
			Bold(true)

	tipsStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	titleStyle = lipgloss.NewStyle().
			Foreground(amberGold).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	valueStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	lostStyle = lipgloss.NewStyle().
			Foreground(alertRed).
			Bold(true)

	foundStyle = lipgloss.NewStyle().
			Foreground(mintGreen).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(alertRed)

	hintStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Italic(true)

	// Menu Styles
	menuItemStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	menuSelectedStyle = lipgloss.NewStyle().
				Foreground(amberGold).
				Bold(true)

	// Button Styles
	buttonStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	buttonActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1F2937")).
				Background(amberGold).
				Bold(true).
				Padding(0, 1)

	buttonDangerStyle = lipgloss.NewStyle().
				Foreground(brightWhite).
				Background(alertRed).
				Bold(true).
				Padding(0, 1)

	// Container Styles
	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(amberGold).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(amberGold).
			Padding(1, 2)

	dangerPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(alertRed).
				Padding(1, 2)
)
