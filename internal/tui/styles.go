package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#2BB3A3")
	colorAccent  = lipgloss.Color("#5B8DEF")
	colorBorder  = lipgloss.Color("#3A3F4B")
	colorDim     = lipgloss.Color("#7A7F8C")
	colorText    = lipgloss.Color("#E6E6E6")
)

var (
	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	userLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	assistantLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	timeStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	userBubbleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorAccent).
			PaddingLeft(1)

	assistantBubbleStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(colorPrimary)

	inputPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	typingStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Italic(true)
)
