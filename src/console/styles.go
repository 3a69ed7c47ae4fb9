package console

import "github.com/charmbracelet/lipgloss"

// StyleConfig holds the colors used for each kind of console line.
type StyleConfig struct {
	Error   lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color
}

// DefaultStyles returns the default color palette
func DefaultStyles() *StyleConfig {
	return &StyleConfig{
		Error:   lipgloss.Color("9"),  // Bright red
		Warning: lipgloss.Color("11"), // Bright yellow
		Info:    lipgloss.Color("14"), // Bright cyan
	}
}

type styles struct {
	err     lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
}

func (s *StyleConfig) build(out, errOut *lipgloss.Renderer) styles {
	return styles{
		err:     errOut.NewStyle().Foreground(s.Error),
		warning: out.NewStyle().Foreground(s.Warning),
		info:    out.NewStyle().Foreground(s.Info),
	}
}
