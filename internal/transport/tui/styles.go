package tui

import "github.com/charmbracelet/lipgloss"

const cellWidth = 5

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).MarginBottom(1) // cyan

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")) // gray
	cursorCellStyle = cellStyle.BorderForeground(lipgloss.Color("3"))            // yellow
	winCellStyle    = cellStyle.BorderForeground(lipgloss.Color("2")).Bold(true) // green

	markXStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")) // blue
	markOStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")) // magenta

	statusStyle = lipgloss.NewStyle().MarginTop(1)
	winStyle    = statusStyle.Bold(true).Foreground(lipgloss.Color("2")) // green
	drawStyle   = statusStyle.Bold(true).Foreground(lipgloss.Color("3")) // yellow

	helpStyle = lipgloss.NewStyle().MarginTop(1)
)
