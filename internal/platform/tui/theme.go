package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tubes/internal/core"
)

// Theme contains all configurable visual styles.
type Theme struct {
	Name string

	// Liquid colors in palette order
	Liquids [12]lipgloss.Style

	// Tube and HUD styles
	Frame     lipgloss.Style
	Highlight lipgloss.Style
	Dim       lipgloss.Style
	Success   lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		Liquids: [12]lipgloss.Style{
			fg("205"), // Pink
			fg("129"), // Purple
			fg("141"), // Violet
			fg("33"),  // Blue
			fg("37"),  // Teal
			fg("40"),  // Green
			fg("100"), // Olive
			fg("226"), // Yellow
			fg("208"), // Orange
			fg("196"), // Red
			fg("245"), // Gray
			fg("255"), // White
		},

		Frame:     fg("250"),
		Highlight: fg("51").Bold(true),
		Dim:       fg("243"),
		Success:   fg("46").Bold(true),

		MenuTitle:       fg("51").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuDescription: fg("245"),
	}
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "pastel"
	theme.Liquids = [12]lipgloss.Style{
		fg("218"), fg("183"), fg("147"), fg("117"),
		fg("122"), fg("157"), fg("187"), fg("229"),
		fg("216"), fg("210"), fg("250"), fg("231"),
	}
	return theme
}

// BasicTheme uses only the 16 standard terminal colors.
func BasicTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "basic"
	theme.Liquids = [12]lipgloss.Style{
		fg("13"), fg("5"), fg("12"), fg("4"),
		fg("6"), fg("2"), fg("10"), fg("11"),
		fg("3"), fg("1"), fg("8"), fg("15"),
	}
	theme.Frame = fg("7")
	theme.Highlight = fg("14").Bold(true)
	theme.Dim = fg("8")
	theme.Success = fg("10").Bold(true)
	return theme
}

// Style returns the style for a screen cell color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	switch {
	case c.IsLiquid():
		return t.Liquids[c-core.ColorPink]
	case c == core.ColorFrame:
		return t.Frame
	case c == core.ColorHighlight:
		return t.Highlight
	case c == core.ColorDim:
		return t.Dim
	case c == core.ColorSuccess:
		return t.Success
	}
	return lipgloss.NewStyle()
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return DefaultTheme(), nil
	case "pastel":
		return PastelTheme(), nil
	case "basic":
		return BasicTheme(), nil
	}
	return Theme{}, fmt.Errorf("tui: unknown theme %q (want default, pastel or basic)", name)
}

// Global theme variable (can be changed at runtime)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return theme
}
