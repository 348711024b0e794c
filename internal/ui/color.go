// Package ui formats command output outside the timer screen.
package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusring/internal/phase"
)

// DarkTheme selects the light variants of each colour.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// PhaseColor paints a in the colour of p.
func PhaseColor(p phase.Phase, a any) string {
	if p == phase.Rest {
		return Green(a)
	}

	return Red(a)
}
