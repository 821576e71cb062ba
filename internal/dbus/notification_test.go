package dbus

import (
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"

	"github.com/jmylchreest/toastbox/internal/toast"
)

func hints(kv map[string]interface{}) map[string]dbus.Variant {
	out := make(map[string]dbus.Variant, len(kv))
	for k, v := range kv {
		out[k] = dbus.MakeVariant(v)
	}
	return out
}

func TestNotification_Urgency(t *testing.T) {
	n := &Notification{}
	assert.Equal(t, UrgencyNormal, n.Urgency())

	n.Hints = hints(map[string]interface{}{"urgency": byte(2)})
	assert.Equal(t, UrgencyCritical, n.Urgency())

	// Wrong type falls back to normal.
	n.Hints = hints(map[string]interface{}{"urgency": "high"})
	assert.Equal(t, UrgencyNormal, n.Urgency())
}

func TestNotification_ToRequest_Expiry(t *testing.T) {
	base := toast.DefaultRequest()

	// -1 keeps the configured default.
	n := &Notification{Summary: "hi", ExpireTimeout: -1}
	assert.Equal(t, base.ShowTime, n.ToRequest(base).ShowTime)

	// 0 means never expire.
	n.ExpireTimeout = 0
	assert.Equal(t, time.Duration(0), n.ToRequest(base).ShowTime)

	// Positive is milliseconds.
	n.ExpireTimeout = 2500
	assert.Equal(t, 2500*time.Millisecond, n.ToRequest(base).ShowTime)
}

func TestNotification_ToRequest_CriticalNeverExpires(t *testing.T) {
	base := toast.DefaultRequest()

	n := &Notification{
		Summary:       "disk full",
		ExpireTimeout: -1,
		Hints:         hints(map[string]interface{}{"urgency": byte(2)}),
	}
	assert.Equal(t, time.Duration(0), n.ToRequest(base).ShowTime)

	// An explicit timeout from the sender still wins.
	n.ExpireTimeout = 1000
	assert.Equal(t, time.Second, n.ToRequest(base).ShowTime)
}

func TestNotification_ToRequest_Sections(t *testing.T) {
	base := toast.DefaultRequest()

	n := &Notification{Summary: "title", Body: "details"}
	req := n.ToRequest(base)
	assert.Len(t, req.Sections, 2)
	assert.Equal(t, "title", req.Sections[0].Text)
	assert.Equal(t, "details", req.Sections[1].Text)
	assert.Less(t, req.Sections[1].FontSize, req.Sections[0].FontSize)

	// Body-only notifications still produce a section.
	n = &Notification{Body: "just body"}
	req = n.ToRequest(base)
	assert.Len(t, req.Sections, 1)
	assert.Equal(t, "just body", req.Sections[0].Text)
}

func TestNotification_ToRequest_ColorHints(t *testing.T) {
	base := toast.DefaultRequest()

	n := &Notification{
		Summary: "colored",
		Hints: hints(map[string]interface{}{
			"bgcolor": "#336699",
			"fgcolor": "#ff0000",
		}),
	}
	req := n.ToRequest(base)
	assert.InDelta(t, float64(0x33)/255, req.Background.R, 1e-9)
	assert.InDelta(t, 1.0, req.Sections[0].Color.R, 1e-9)
	assert.InDelta(t, 0.0, req.Sections[0].Color.G, 1e-9)

	// Unparseable hints are ignored.
	n.Hints = hints(map[string]interface{}{"bgcolor": "reddish"})
	req = n.ToRequest(base)
	assert.Equal(t, base.Background, req.Background)
}

func TestNotification_ToRequest_DoesNotMutateBase(t *testing.T) {
	base := toast.NewRequest("original")
	n := &Notification{Summary: "new"}
	_ = n.ToRequest(base)
	assert.Equal(t, "original", base.Sections[0].Text)
}
