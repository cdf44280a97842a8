package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and styles for CLI output.
type Theme struct {
	// Color palette
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
	Muted   lipgloss.Color

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style
	ValueStyle    lipgloss.Style
	SuccessStyle  lipgloss.Style
	WarnStyle     lipgloss.Style
	ErrorStyle    lipgloss.Style
	HintStyle     lipgloss.Style

	// Password presentation. No padding or background so terminal
	// selection copies the password bytes exactly.
	PasswordStyle lipgloss.Style

	// Result panel
	PanelStyle lipgloss.Style
}

// DefaultTheme returns a theme with default colors and styles.
func DefaultTheme() *Theme {
	theme := &Theme{
		// Define color palette - mint terminal theme
		Primary: lipgloss.Color("#5FD7AF"),
		Success: lipgloss.Color("#87D787"),
		Warning: lipgloss.Color("#FFD75F"),
		Danger:  lipgloss.Color("#FF5F5F"),
		Muted:   lipgloss.Color("#6C6C6C"),
	}

	theme.TitleStyle = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	theme.SubtitleStyle = lipgloss.NewStyle().
		Foreground(theme.Muted)

	theme.LabelStyle = lipgloss.NewStyle().
		Foreground(theme.Muted)

	theme.ValueStyle = lipgloss.NewStyle()

	theme.SuccessStyle = lipgloss.NewStyle().
		Foreground(theme.Success)

	theme.WarnStyle = lipgloss.NewStyle().
		Foreground(theme.Warning)

	theme.ErrorStyle = lipgloss.NewStyle().
		Foreground(theme.Danger).
		Bold(true)

	theme.HintStyle = lipgloss.NewStyle().
		Foreground(theme.Muted).
		Italic(true)

	theme.PasswordStyle = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	theme.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Muted).
		Padding(0, 1)

	return theme
}
