package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("39")
	colorMuted   = lipgloss.Color("241")
	colorGood    = lipgloss.Color("42")
	colorBad     = lipgloss.Color("196")
	colorBorder  = lipgloss.Color("238")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(colorMuted)

	positiveStyle = lipgloss.NewStyle().Foreground(colorGood)
	negativeStyle = lipgloss.NewStyle().Foreground(colorBad)

	toggleOnStyle  = lipgloss.NewStyle().Foreground(colorGood)
	toggleOffStyle = lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true)

	statusBarStyle = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)

	errorStyle = lipgloss.NewStyle().Foreground(colorBad).Bold(true)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorBorder).
				BorderBottom(true)

	tableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Bold(false)
)
