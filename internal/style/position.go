package style

// Unit distinguishes how a Val is measured.
type Unit int

const (
	// Px is an absolute measure in pixels (terminal cells for the TUI host).
	Px Unit = iota
	// Percent is relative to the viewport dimension.
	Percent
)

// Val is a single dimension value.
type Val struct {
	Unit  Unit
	Value float64
}

// PxVal creates an absolute value.
func PxVal(v float64) Val {
	return Val{Unit: Px, Value: v}
}

// PercentVal creates a viewport-relative value.
func PercentVal(v float64) Val {
	return Val{Unit: Percent, Value: v}
}

// Resolve converts the value into absolute units against the given viewport
// dimension.
func (v Val) Resolve(viewport float64) float64 {
	if v.Unit == Percent {
		return viewport * v.Value / 100
	}
	return v.Value
}

// Rect holds per-edge values, used for margins.
type Rect struct {
	Top, Bottom, Left, Right Val
}

// RectAll creates a Rect with the same value on every edge.
func RectAll(v Val) Rect {
	return Rect{Top: v, Bottom: v, Left: v, Right: v}
}

// Justify is horizontal placement along the main axis.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
)

// Align is vertical placement along the cross axis.
type Align int

const (
	AlignFlexStart Align = iota
	AlignCenter
	AlignFlexEnd
)

// PositionStyle is the resolved layout description for one box: where it
// places itself in the viewport, its size, margin, and how content is placed
// within it. Produced once at creation and never recomputed.
type PositionStyle struct {
	JustifySelf Justify
	AlignSelf   Align

	Width  Val
	Height Val
	Margin Rect

	JustifyItems Justify
	AlignItems   Align
}
