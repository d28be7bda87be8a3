package core

import (
	"image/color"
	"testing"
)

func TestRGBA8Normalizes(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a uint8
		expected   Color
	}{
		{"black", 0, 0, 0, 255, Color{0, 0, 0, 1}},
		{"white", 255, 255, 255, 255, Color{1, 1, 1, 1}},
		{"transparent", 0, 0, 0, 0, Color{0, 0, 0, 0}},
		{"aka", 237, 26, 61, 255, Color{237.0 / 255, 26.0 / 255, 61.0 / 255, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RGBA8(tc.r, tc.g, tc.b, tc.a)
			if got != tc.expected {
				t.Errorf("RGBA8() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRGBA8InRange(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c := RGBA8(uint8(v), uint8(v), uint8(v), uint8(v))
		if c.R < 0 || c.R > 1 || c.A < 0 || c.A > 1 {
			t.Fatalf("RGBA8(%d) = %+v, out of [0,1]", v, c)
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		u := uint8(v)
		r, g, b, a := RGBA8(u, 255-u, u/2, u).Bytes()
		if r != u || g != 255-u || b != u/2 || a != u {
			t.Fatalf("Bytes() = (%d,%d,%d,%d), expected (%d,%d,%d,%d)", r, g, b, a, u, 255-u, u/2, u)
		}
	}
}

func TestRGBAMatchesImageColor(t *testing.T) {
	cases := []color.NRGBA{
		{237, 26, 61, 255},
		{0, 0, 0, 255},
		{255, 255, 255, 255},
		{120, 60, 30, 128},
	}

	for _, want := range cases {
		c := RGBA8(want.R, want.G, want.B, want.A)
		r, g, b, a := c.RGBA()
		wr, wg, wb, wa := want.RGBA()
		if r != wr || g != wg || b != wb || a != wa {
			t.Errorf("RGBA() for %v = (%d,%d,%d,%d), expected (%d,%d,%d,%d)", want, r, g, b, a, wr, wg, wb, wa)
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{RGB8(237, 26, 61), "#ed1a3d"},
		{RGB8(0, 0, 0), "#000000"},
		{RGB8(255, 255, 255), "#ffffff"},
		{RGBA8(1, 2, 3, 0), "#010203"},
	}

	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.expected {
			t.Errorf("Hex() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestString(t *testing.T) {
	got := RGBA8(237, 26, 61, 255).String()
	if got != "rgba(237, 26, 61, 255)" {
		t.Errorf("String() = %q", got)
	}
}
