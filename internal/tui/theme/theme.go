package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Header     lipgloss.Style
	EntryNum   lipgloss.Style
	EntryTitle lipgloss.Style
	EntryDate  lipgloss.Style
	Summary    lipgloss.Style
	Separator  lipgloss.Style
	Status     lipgloss.Style
	Warn       lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	InputLabel lipgloss.Style
	HelpKey    lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpYellow := lipgloss.Color("#f9e2af")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")

	return Theme{
		Header:     lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		EntryNum:   lipgloss.NewStyle().Foreground(cpOverlay1),
		EntryTitle: lipgloss.NewStyle().Bold(true).Foreground(cpText),
		EntryDate:  lipgloss.NewStyle().Foreground(cpSubtext0),
		Summary:    lipgloss.NewStyle().Foreground(cpSubtext1),
		Separator:  lipgloss.NewStyle().Foreground(cpOverlay1),
		Status:     lipgloss.NewStyle().Foreground(cpGreen),
		Warn:       lipgloss.NewStyle().Foreground(cpRed),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),
		InputLabel: lipgloss.NewStyle().Foreground(cpYellow),
		HelpKey:    lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
	}
}

// RenderStatus styles a status-line message, using the warning style when
// the message reports a failure.
func (t Theme) RenderStatus(isWarning bool, message string) string {
	if isWarning {
		return t.Warn.Render(message)
	}
	return t.Status.Render(message)
}
