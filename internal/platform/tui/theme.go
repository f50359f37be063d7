package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all configurable visual styles for the board views.
type Theme struct {
	// Board cells
	EmptyCell  lipgloss.Style
	Special    lipgloss.Style // Applied on top of the piece colour
	LastMove   lipgloss.Style // Cell the last slide ended on
	FallbackFG lipgloss.Style // Pieces whose colour index has no palette entry
	ExitMarker lipgloss.Style

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDControls  lipgloss.Style

	// Overlay styles
	OverlayTitle lipgloss.Style
	OverlayText  lipgloss.Style
	ErrorText    lipgloss.Style

	// Catalogue table
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		EmptyCell:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		Special:    lipgloss.NewStyle().Bold(true).Underline(true),
		LastMove:   lipgloss.NewStyle().Background(lipgloss.Color("236")),
		FallbackFG: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ExitMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDControls:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		ErrorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
	}
}

// MonochromeTheme returns a grayscale theme. Piece colours from the level
// palette are ignored.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.HUDTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.ExitMarker = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.TableSelected = lipgloss.NewStyle().Reverse(true)
	return theme
}

// pieceStyle returns the style for a piece of the given palette colour.
func (t Theme) pieceStyle(palette []string, color int, special bool) lipgloss.Style {
	style := t.FallbackFG
	if color >= 0 && color < len(palette) && palette[color] != "" {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(palette[color]))
	}
	if special {
		style = style.Inherit(t.Special)
	}
	return style
}
