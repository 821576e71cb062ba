package toast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/toastbox/internal/style"
)

func TestResolveAnchor_ProductSpace(t *testing.T) {
	type pair struct {
		j style.Justify
		a style.Align
	}

	seen := make(map[pair]Anchor)
	for _, anchor := range Anchors {
		ps := ResolveAnchor(anchor)
		p := pair{j: ps.JustifySelf, a: ps.AlignSelf}
		prev, dup := seen[p]
		require.False(t, dup, "anchors %s and %s resolve to the same alignment", prev, anchor)
		seen[p] = anchor
	}

	// Nine distinct pairs over a 3x3 space is exactly the full product.
	assert.Len(t, seen, 9)
}

func TestResolveAnchor_Deterministic(t *testing.T) {
	for _, anchor := range Anchors {
		assert.Equal(t, ResolveAnchor(anchor), ResolveAnchor(anchor))
	}
}

func TestResolveAnchor_Defaults(t *testing.T) {
	ps := ResolveAnchor(AnchorCenter)

	assert.Equal(t, style.PercentVal(20), ps.Width)
	assert.Equal(t, style.PercentVal(20), ps.Height)
	assert.Equal(t, style.RectAll(style.PxVal(5)), ps.Margin)
	assert.Equal(t, style.JustifyCenter, ps.JustifyItems)
	assert.Equal(t, style.AlignCenter, ps.AlignItems)
}

func TestResolveAnchor_Edges(t *testing.T) {
	tl := ResolveAnchor(AnchorTopLeft)
	assert.Equal(t, style.JustifyStart, tl.JustifySelf)
	assert.Equal(t, style.AlignFlexStart, tl.AlignSelf)

	br := ResolveAnchor(AnchorBotRight)
	assert.Equal(t, style.JustifyEnd, br.JustifySelf)
	assert.Equal(t, style.AlignFlexEnd, br.AlignSelf)
}

func TestParseAnchor(t *testing.T) {
	for _, anchor := range Anchors {
		parsed, err := ParseAnchor(anchor.String())
		require.NoError(t, err)
		assert.Equal(t, anchor, parsed)
	}

	parsed, err := ParseAnchor(" Top-Right ")
	require.NoError(t, err)
	assert.Equal(t, AnchorTopRight, parsed)

	_, err = ParseAnchor("somewhere")
	assert.Error(t, err)
}
