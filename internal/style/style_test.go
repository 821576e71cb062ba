package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#1d2021")
	require.NoError(t, err)
	assert.InDelta(t, float64(0x1d)/255, c.R, 1e-9)
	assert.InDelta(t, float64(0x20)/255, c.G, 1e-9)
	assert.InDelta(t, float64(0x21)/255, c.B, 1e-9)
	assert.Equal(t, 1.0, c.A)

	_, err = ParseHex("nope")
	assert.Error(t, err)
}

func TestColor_HexRoundTrip(t *testing.T) {
	c, err := ParseHex("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, "#ff8000", c.Hex())
}

func TestColor_WithAlpha(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6).WithAlpha(0.5)
	assert.Equal(t, 0.5, c.A)
	// RGB untouched.
	assert.Equal(t, 0.2, c.R)

	// Alpha is clamped.
	assert.Equal(t, 1.0, c.WithAlpha(3).A)
	assert.Equal(t, 0.0, c.WithAlpha(-1).A)
}

func TestColor_BlendOver(t *testing.T) {
	fg := RGB(1, 1, 1)
	bg := RGB(0, 0, 0)

	// Fully opaque foreground wins.
	out := fg.WithAlpha(1).BlendOver(bg)
	assert.InDelta(t, 1.0, out.R, 1e-9)

	// Fully transparent foreground leaves the background.
	out = fg.WithAlpha(0).BlendOver(bg)
	assert.InDelta(t, 0.0, out.R, 1e-9)

	// Halfway blend sits between the two.
	out = fg.WithAlpha(0.5).BlendOver(bg)
	assert.Greater(t, out.R, 0.0)
	assert.Less(t, out.R, 1.0)
}

func TestVal_Resolve(t *testing.T) {
	assert.Equal(t, 5.0, PxVal(5).Resolve(200))
	assert.Equal(t, 40.0, PercentVal(20).Resolve(200))
}

func TestRectAll(t *testing.T) {
	r := RectAll(PxVal(5))
	assert.Equal(t, PxVal(5), r.Top)
	assert.Equal(t, PxVal(5), r.Bottom)
	assert.Equal(t, PxVal(5), r.Left)
	assert.Equal(t, PxVal(5), r.Right)
}
