package toast

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/toastbox/internal/style"
)

// Anchor is one of the nine symbolic screen positions a toast can occupy.
type Anchor int

const (
	AnchorTopRight Anchor = iota
	AnchorTopLeft
	AnchorTopMid
	AnchorMidLeft
	AnchorCenter
	AnchorMidRight
	AnchorBotLeft
	AnchorBotMid
	AnchorBotRight
)

// Anchors lists every anchor, in declaration order.
var Anchors = []Anchor{
	AnchorTopRight, AnchorTopLeft, AnchorTopMid,
	AnchorMidLeft, AnchorCenter, AnchorMidRight,
	AnchorBotLeft, AnchorBotMid, AnchorBotRight,
}

var anchorNames = map[Anchor]string{
	AnchorTopRight: "top-right",
	AnchorTopLeft:  "top-left",
	AnchorTopMid:   "top-mid",
	AnchorMidLeft:  "mid-left",
	AnchorCenter:   "center",
	AnchorMidRight: "mid-right",
	AnchorBotLeft:  "bot-left",
	AnchorBotMid:   "bot-mid",
	AnchorBotRight: "bot-right",
}

func (a Anchor) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}
	return "top-right"
}

// ParseAnchor converts a configuration string like "bot-left" into an
// Anchor. Matching is case-insensitive.
func ParseAnchor(s string) (Anchor, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for a, name := range anchorNames {
		if name == needle {
			return a, nil
		}
	}
	return AnchorTopRight, fmt.Errorf("unknown anchor %q", s)
}

// ResolveAnchor maps an anchor onto a concrete layout: a 20%x20% box with a
// 5px margin and centered content, hugging the viewport edges the anchor
// names. The nine anchors produce exactly the 3x3 product of horizontal and
// vertical alignment.
func ResolveAnchor(a Anchor) style.PositionStyle {
	ps := style.PositionStyle{
		Width:        style.PercentVal(DefaultSizePercent),
		Height:       style.PercentVal(DefaultSizePercent),
		Margin:       style.RectAll(style.PxVal(5)),
		JustifyItems: style.JustifyCenter,
		AlignItems:   style.AlignCenter,
	}

	switch a {
	case AnchorTopLeft:
		ps.JustifySelf = style.JustifyStart
		ps.AlignSelf = style.AlignFlexStart
	case AnchorTopMid:
		ps.JustifySelf = style.JustifyCenter
		ps.AlignSelf = style.AlignFlexStart
	case AnchorTopRight:
		ps.JustifySelf = style.JustifyEnd
		ps.AlignSelf = style.AlignFlexStart
	case AnchorMidLeft:
		ps.JustifySelf = style.JustifyStart
		ps.AlignSelf = style.AlignCenter
	case AnchorCenter:
		ps.JustifySelf = style.JustifyCenter
		ps.AlignSelf = style.AlignCenter
	case AnchorMidRight:
		ps.JustifySelf = style.JustifyEnd
		ps.AlignSelf = style.AlignCenter
	case AnchorBotLeft:
		ps.JustifySelf = style.JustifyStart
		ps.AlignSelf = style.AlignFlexEnd
	case AnchorBotMid:
		ps.JustifySelf = style.JustifyCenter
		ps.AlignSelf = style.AlignFlexEnd
	case AnchorBotRight:
		ps.JustifySelf = style.JustifyEnd
		ps.AlignSelf = style.AlignFlexEnd
	}

	return ps
}
