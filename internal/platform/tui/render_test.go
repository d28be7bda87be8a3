package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/irodori/internal/core"
	"github.com/vovakirdan/irodori/internal/wairo"
)

func TestSwatchWidth(t *testing.T) {
	for _, width := range []int{0, 1, 4, 10} {
		got := lipgloss.Width(Swatch(wairo.RedFamily.Aka(), width))
		if got != width {
			t.Errorf("Width(Swatch(%d)) = %d", width, got)
		}
	}
	if Swatch(wairo.RedFamily.Aka(), -2) != "" {
		t.Error("Swatch() with negative width should be empty")
	}
}

func TestIsLight(t *testing.T) {
	tests := []struct {
		name     string
		c        core.Color
		expected bool
	}{
		{"white", core.RGB8(255, 255, 255), true},
		{"black", core.RGB8(0, 0, 0), false},
		{"sakura", wairo.RedFamily.Sakura(), true},
		{"ankokushoku", wairo.BlackFamily.Ankokushoku(), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsLight(tc.c); got != tc.expected {
				t.Errorf("IsLight() = %v, expected %v", got, tc.expected)
			}
		})
	}

	if TextColor(core.RGB8(255, 255, 255)) != lipgloss.Color("#000000") {
		t.Error("TextColor(white) should be black")
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		in       string
		width    int
		expected int
	}{
		{"Aka", 6, 6},
		{"赤", 6, 6},
		{"桜鼠", 3, 4}, // wider than requested, left as is
		{"", 2, 2},
	}

	for _, tc := range tests {
		got := lipgloss.Width(PadRight(tc.in, tc.width))
		if got != tc.expected {
			t.Errorf("Width(PadRight(%q, %d)) = %d, expected %d", tc.in, tc.width, got, tc.expected)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() = %q", got)
	}
}
