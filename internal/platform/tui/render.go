package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/irodori/internal/core"
)

// Luminance above which dark text reads better than light text.
const lightThreshold = 0.35

// Swatch renders width blank cells with c as the background color.
func Swatch(c core.Color, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", width))
}

// Label renders text on a c background with a readable foreground.
func Label(c core.Color, text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(TextColor(c)).
		Padding(0, 1).
		Render(text)
}

// TextColor returns black or white, whichever reads better on c.
func TextColor(c core.Color) lipgloss.Color {
	if IsLight(c) {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// IsLight reports whether the relative luminance of c is above lightThreshold.
func IsLight(c core.Color) bool {
	r, g, b := c.Colorful().LinearRgb()
	return 0.2126*r+0.7152*g+0.0722*b > lightThreshold
}

// PadRight pads s with spaces to width display cells. Wide characters
// such as kanji count as two cells.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// centerText centers text within width display cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
