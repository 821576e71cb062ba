// Package dbus turns org.freedesktop.Notifications traffic into toast
// requests. It runs in monitor mode only, so it can sit alongside a real
// notification daemon without claiming the bus name.
package dbus

import (
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/jmylchreest/toastbox/internal/style"
	"github.com/jmylchreest/toastbox/internal/toast"
)

// Urgency levels defined by the freedesktop.org notification specification.
const (
	UrgencyLow      = 0
	UrgencyNormal   = 1
	UrgencyCritical = 2
)

// Notification holds the raw parameters of a captured
// org.freedesktop.Notifications.Notify call.
type Notification struct {
	AppName       string
	ReplacesID    uint32
	AppIcon       string
	Summary       string
	Body          string
	Actions       []string // Alternating key, label pairs
	Hints         map[string]dbus.Variant
	ExpireTimeout int32 // -1 = server default, 0 = never expire, >0 = milliseconds
}

// Urgency extracts the urgency hint, defaulting to UrgencyNormal.
func (n *Notification) Urgency() int {
	if v, ok := n.Hints["urgency"]; ok {
		if b, ok := v.Value().(byte); ok {
			return int(b)
		}
	}
	return UrgencyNormal
}

// BackgroundColor extracts the background color hint
// (dunstify -h string:bgcolor:#RRGGBB).
func (n *Notification) BackgroundColor() string {
	if v, ok := n.Hints["bgcolor"]; ok {
		if s, ok := v.Value().(string); ok {
			return s
		}
	}
	return ""
}

// ForegroundColor extracts the foreground color hint
// (dunstify -h string:fgcolor:#RRGGBB).
func (n *Notification) ForegroundColor() string {
	if v, ok := n.Hints["fgcolor"]; ok {
		if s, ok := v.Value().(string); ok {
			return s
		}
	}
	return ""
}

// ToRequest maps the notification onto a toast request derived from base.
//
// Expiry follows the notification spec: -1 keeps the configured default
// show time, 0 means the toast never times out, and a positive value is a
// duration in milliseconds. Critical-urgency notifications also never time
// out unless the sender gave an explicit positive timeout.
func (n *Notification) ToRequest(base toast.Request) toast.Request {
	req := base

	switch {
	case n.ExpireTimeout > 0:
		req.ShowTime = time.Duration(n.ExpireTimeout) * time.Millisecond
	case n.ExpireTimeout == 0:
		req.ShowTime = 0
	case n.Urgency() == UrgencyCritical:
		req.ShowTime = 0
	}

	if hex := n.BackgroundColor(); hex != "" {
		if bg, err := style.ParseHex(hex); err == nil {
			req.Background = bg
		}
	}

	textColor := toast.White
	if hex := n.ForegroundColor(); hex != "" {
		if fg, err := style.ParseHex(hex); err == nil {
			textColor = fg
		}
	}

	req.Sections = nil
	if n.Summary != "" {
		req.Sections = append(req.Sections, toast.TextSection{
			Text:     n.Summary,
			FontSize: toast.DefaultFontSize,
			Color:    textColor,
		})
	}
	if n.Body != "" {
		req.Sections = append(req.Sections, toast.TextSection{
			Text:     n.Body,
			FontSize: toast.DefaultFontSize * 0.8,
			Color:    textColor.WithAlpha(0.9),
		})
	}
	return req
}
