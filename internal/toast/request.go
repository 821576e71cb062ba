// Package toast implements transient notification boxes for frame-driven
// hosts. A Request describes the toast to show; the registered systems spawn
// a box entity, fade it in, hold it for the requested time, fade it out, and
// despawn it on timeout or on user press.
package toast

import (
	"time"

	"github.com/jmylchreest/toastbox/internal/style"
)

// Default request values.
const (
	DefaultShowTime    = 5 * time.Second
	DefaultFontSize    = 20.0
	DefaultSizePercent = 20.0
)

// DefaultFade is the fixed duration of the fade-in and fade-out phases.
const DefaultFade = 500 * time.Millisecond

// DefaultBackground is the background used when a request does not set one.
var DefaultBackground = style.MustHex("#1d2021")

// White is the default text color.
var White = style.RGB(1, 1, 1)

// TextSection is one styled run of the toast's message.
type TextSection struct {
	Text     string
	FontSize float64
	Color    style.Color
}

// Request describes a toast to display. It is constructed by the caller,
// consumed exactly once by the listener system, and then discarded.
type Request struct {
	// Sections is the rich-text message. An empty message is allowed and
	// renders as an empty label.
	Sections []TextSection

	// Anchor selects one of the nine screen positions.
	Anchor Anchor

	// ShowTime is how long the toast stays fully visible between fades.
	// A value <= 0 means the toast never auto-dismisses; only a press
	// removes it.
	ShowTime time.Duration

	// Background is the box color. The border is derived from it at 0.4
	// alpha.
	Background style.Color

	// Width and Height size the box. Zero values fall back to the resolver
	// default of 20% of the viewport.
	Width  style.Val
	Height style.Val
}

// DefaultRequest returns a request with the package defaults filled in:
// 5 second show time, top-right anchor, 20%x20% box, dark background.
func DefaultRequest() Request {
	return Request{
		Anchor:     AnchorTopRight,
		ShowTime:   DefaultShowTime,
		Background: DefaultBackground,
		Width:      style.PercentVal(DefaultSizePercent),
		Height:     style.PercentVal(DefaultSizePercent),
	}
}

// NewRequest builds a default request carrying a single white text section.
func NewRequest(msg string) Request {
	req := DefaultRequest()
	req.Sections = []TextSection{{
		Text:     msg,
		FontSize: DefaultFontSize,
		Color:    White,
	}}
	return req
}
