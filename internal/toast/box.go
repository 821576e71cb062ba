package toast

import "github.com/jmylchreest/toastbox/internal/style"

// BorderAlpha is the alpha of the border color derived from the requested
// background.
const BorderAlpha = 0.4

// Box is the visual component of a toast entity: the resolved position, the
// requested colors and text, and the opacity projection the countdown system
// rewrites each frame. Requested values are fixed at creation; hosts read
// the Displayed accessors to get the colors to draw.
type Box struct {
	// Style is the layout resolved from the request's anchor. Computed once
	// at spawn, never recomputed.
	Style style.PositionStyle

	// Background and Sections are the requested values.
	Background style.Color
	Sections   []TextSection

	// Opacity is the current animation opacity in [0, 1]. The countdown
	// system overwrites it every frame for timed toasts; indefinite toasts
	// stay at 1.
	Opacity float64
}

// newBox derives the visual component from a consumed request. Timed toasts
// start fully transparent so the first visible frame is the start of the
// fade-in; indefinite toasts have no fade and start fully opaque.
func newBox(req Request, ps style.PositionStyle, indefinite bool) Box {
	opacity := 0.0
	if indefinite {
		opacity = 1.0
	}
	return Box{
		Style:      ps,
		Background: req.Background,
		Sections:   req.Sections,
		Opacity:    opacity,
	}
}

// DisplayedBackground returns the background with the current opacity
// applied to its alpha channel.
func (b *Box) DisplayedBackground() style.Color {
	return b.Background.WithAlpha(b.Background.A * b.Opacity)
}

// DisplayedBorder returns the derived border color: the requested background
// at 0.4 alpha, scaled by the current opacity.
func (b *Box) DisplayedBorder() style.Color {
	return b.Background.WithAlpha(BorderAlpha * b.Opacity)
}

// DisplayedTextColor returns section i's color with the current opacity
// applied. Hue is untouched; only alpha changes.
func (b *Box) DisplayedTextColor(i int) style.Color {
	c := b.Sections[i].Color
	return c.WithAlpha(c.A * b.Opacity)
}
