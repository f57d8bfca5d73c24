// Package ui holds terminal presentation helpers shared by the list
// and report commands.
package ui

import (
	"github.com/pterm/pterm"
)

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

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Trend colours a percent-change value: green for gains, red for
// losses, unstyled for zero.
func Trend(percent float64, formatted string) string {
	switch {
	case percent > 0:
		return Green(formatted)
	case percent < 0:
		return Red(formatted)
	default:
		return formatted
	}
}
