package core

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with each channel normalized to [0, 1].
// Values are built from 8-bit channels, so the range holds by construction.
type Color struct {
	R, G, B, A float32
}

// RGBA8 builds a Color from 8-bit channels, dividing each by 255.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// RGB8 builds an opaque Color from 8-bit channels.
func RGB8(r, g, b uint8) Color {
	return RGBA8(r, g, b, 255)
}

// Bytes returns the 8-bit channels the color was built from.
func (c Color) Bytes() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// RGBA implements image/color.Color. Channels are alpha-premultiplied
// and scaled to [0, 0xffff].
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.Bytes()
	a = uint32(a8)
	a |= a << 8
	r = uint32(r8)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(g8)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(b8)
	b |= b << 8
	b = b * a / 0xffff
	return r, g, b, a
}

// Colorful returns the opaque part of c as a go-colorful color.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Hex returns the color as "#rrggbb". Alpha is dropped.
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// String returns the color as "rgba(r, g, b, a)" with 8-bit channels.
func (c Color) String() string {
	r, g, b, a := c.Bytes()
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", r, g, b, a)
}

func to8(v float32) uint8 {
	return uint8(math.Round(float64(v) * 255))
}
