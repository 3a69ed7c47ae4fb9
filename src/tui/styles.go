package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// StyleConfig holds all customizable style colors for the listing viewer.
type StyleConfig struct {
	PrimaryBlue   lipgloss.Color
	AccentYellow  lipgloss.Color
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	BorderColor   lipgloss.Color
	SelectedColor lipgloss.Color
}

// DefaultStyles returns the default color palette
func DefaultStyles() *StyleConfig {
	return &StyleConfig{
		PrimaryBlue:   lipgloss.Color("#8AB4F8"),
		AccentYellow:  lipgloss.Color("#FBBC04"),
		TextPrimary:   lipgloss.Color("#E8EAED"),
		TextSecondary: lipgloss.Color("#9AA0A6"),
		BorderColor:   lipgloss.Color("#5F6368"),
		SelectedColor: lipgloss.Color("#303134"),
	}
}

// TitleStyle returns a title lipgloss style using this config
func (s *StyleConfig) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.PrimaryBlue).
		Bold(true).
		Padding(0, 1)
}

// HelpStyle returns a help text lipgloss style using this config
func (s *StyleConfig) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.TextSecondary).
		Padding(0, 2)
}

// FrameStyle returns the border drawn around the table.
func (s *StyleConfig) FrameStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.BorderColor)
}

// TableStyles returns bubbles table styles: yellow header, highlighted selection.
func (s *StyleConfig) TableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(s.AccentYellow).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(s.BorderColor).
		BorderBottom(true)
	styles.Cell = styles.Cell.Foreground(s.TextPrimary)
	styles.Selected = styles.Selected.
		Foreground(s.PrimaryBlue).
		Background(s.SelectedColor).
		Bold(true)
	return styles
}
