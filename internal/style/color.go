// Package style defines the declarative style value types toasts carry:
// colors, dimensions, margins, and alignment. Values are plain data; the
// rendering host decides how to realize them.
package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with components in [0, 1].
// Alpha is the only component systems mutate at runtime; R, G and B are
// fixed at creation.
type Color struct {
	R, G, B, A float64
}

// RGB creates a fully opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color with an explicit alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ParseHex parses a "#rrggbb" hex string into an opaque color.
func ParseHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// MustHex parses a hex color and panics on failure. For package-level
// constants only.
func MustHex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns a copy of the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Hex returns the "#rrggbb" representation, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// BlendOver composites the color over an opaque background, producing the
// opaque color a renderer without real alpha support should display.
func (c Color) BlendOver(background Color) Color {
	fg := colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
	bg := colorful.Color{R: clamp01(background.R), G: clamp01(background.G), B: clamp01(background.B)}
	out := bg.BlendRgb(fg, clamp01(c.A))
	return Color{R: out.R, G: out.G, B: out.B, A: 1}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
