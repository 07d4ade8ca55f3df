package ui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorClaude  = lipgloss.Color("129")
	ColorUser    = lipgloss.Color("45")
	ColorSystem  = lipgloss.Color("208")
	ColorHeader  = lipgloss.Color("13")
	ColorInfo    = lipgloss.Color("14")
	ColorOK      = lipgloss.Color("10")
	ColorWarning = lipgloss.Color("11")
	ColorFail    = lipgloss.Color("9")
	ColorCommand = lipgloss.Color("12")
)

type styles struct {
	banner  lipgloss.Style
	header  lipgloss.Style
	claude  lipgloss.Style
	label   lipgloss.Style
	user    lipgloss.Style
	system  lipgloss.Style
	info    lipgloss.Style
	ok      lipgloss.Style
	warning lipgloss.Style
	fail    lipgloss.Style
	command lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		banner: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorClaude).
			Foreground(ColorClaude).
			Bold(true).
			Padding(0, 2).
			Align(lipgloss.Center),
		header: r.NewStyle().
			Foreground(ColorHeader).
			Bold(true),
		claude: r.NewStyle().Foreground(ColorClaude),
		label: r.NewStyle().
			Foreground(ColorClaude).
			Bold(true),
		user: r.NewStyle().
			Foreground(ColorUser).
			Bold(true),
		system:  r.NewStyle().Foreground(ColorSystem),
		info:    r.NewStyle().Foreground(ColorInfo),
		ok:      r.NewStyle().Foreground(ColorOK),
		warning: r.NewStyle().Foreground(ColorWarning),
		fail:    r.NewStyle().Foreground(ColorFail),
		command: r.NewStyle().Foreground(ColorCommand),
	}
}
