package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected                                lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor
}

var current = classic()

// SetTheme switches the palette. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("8")), Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")), Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
			Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			BoxUnchecked: "◻", BoxChecked: "◼",
			SymDone: "✔", SymPending: "•",
			Border: lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("13"),
		}
	case "mono":
		lipgloss.SetColorProfile(termenv.Ascii)
		plain := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Pending: plain,
			Done: plain, Selected: plain,
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymPending: "-",
			Border: lipgloss.NormalBorder(), BorderColor: lipgloss.NoColor{},
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Name:         "classic",
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
		Border: lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("8"),
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// ColorDisabled reports whether styles currently render without colour.
func ColorDisabled() bool {
	return lipgloss.ColorProfile() == termenv.Ascii
}
