package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/toastbox/internal/ecs"
	"github.com/jmylchreest/toastbox/internal/style"
	"github.com/jmylchreest/toastbox/internal/toast"
)

// termBackground is the assumed terminal background. A cell has no alpha
// channel, so translucent toast colors are pre-blended over this before
// they reach lipgloss.
var termBackground = style.RGB(0.07, 0.07, 0.07)

// toastView pairs a live entity with its components for rendering, in a
// stable order (record IDs are ULIDs, so sorting by ID is spawn order).
type toastView struct {
	entity ecs.Entity
	box    *toast.Box
	id     string
}

// liveToasts collects every live toast sorted by spawn order.
func liveToasts(toasts *toast.Systems) []toastView {
	var views []toastView
	toasts.EachBox(func(e ecs.Entity, b *toast.Box) {
		id := ""
		if rec, ok := toasts.Record(e); ok {
			id = rec.ID
		}
		views = append(views, toastView{entity: e, box: b, id: id})
	})
	sort.Slice(views, func(i, j int) bool { return views[i].id < views[j].id })
	return views
}

func justifyToPosition(j style.Justify) lipgloss.Position {
	switch j {
	case style.JustifyStart:
		return lipgloss.Left
	case style.JustifyEnd:
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

func alignToPosition(a style.Align) lipgloss.Position {
	switch a {
	case style.AlignFlexStart:
		return lipgloss.Top
	case style.AlignFlexEnd:
		return lipgloss.Bottom
	default:
		return lipgloss.Center
	}
}

// renderToast draws one toast as a full-canvas layer: the bordered box at
// its resolved size, offset by its margin, placed at its anchor corner.
func renderToast(v toastView, hovered bool, width, height int) string {
	b := v.box
	ps := b.Style

	boxW := int(ps.Width.Resolve(float64(width)))
	boxH := int(ps.Height.Resolve(float64(height)))
	if boxW < 4 {
		boxW = 4
	}
	if boxH < 3 {
		boxH = 3
	}

	bg := lipgloss.Color(b.DisplayedBackground().BlendOver(termBackground).Hex())
	border := lipgloss.Color(b.DisplayedBorder().BlendOver(termBackground).Hex())
	if hovered {
		border = lipgloss.Color("#ffffff")
	}

	var lines []string
	for i, sec := range b.Sections {
		fg := b.DisplayedTextColor(i).BlendOver(b.DisplayedBackground().BlendOver(termBackground))
		s := lipgloss.NewStyle().
			Foreground(lipgloss.Color(fg.Hex())).
			Background(bg).
			Bold(i == 0 && len(b.Sections) > 1)
		lines = append(lines, s.Render(sec.Text))
	}
	content := lipgloss.JoinVertical(lipgloss.Center, lines...)

	// Border rows/cols count toward the requested size.
	boxStyle := lipgloss.NewStyle().
		Width(boxW-2).
		Height(boxH-2).
		Align(lipgloss.Center, lipgloss.Center).
		Background(bg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		BorderBackground(bg)
	rendered := boxStyle.Render(content)

	// Margins become blank rows/cols around the box; they read as
	// transparent during composition but keep the box off the edge.
	mx := int(ps.Margin.Left.Resolve(float64(width)))
	my := int(ps.Margin.Top.Resolve(float64(height)))
	rendered = lipgloss.NewStyle().Margin(my, mx).Render(rendered)

	return lipgloss.Place(width, height,
		justifyToPosition(ps.JustifySelf),
		alignToPosition(ps.AlignSelf),
		rendered)
}
