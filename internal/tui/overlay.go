package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// compose layers one full-size frame on top of another. Runs of spaces in
// the layer are treated as transparent, so toasts placed anywhere on an
// otherwise blank canvas only overwrite the cells they actually cover.
// ANSI-aware: styled text keeps its escape sequences intact.
func compose(base, layer string, width int) string {
	baseLines := strings.Split(base, "\n")
	layerLines := strings.Split(layer, "\n")

	for i, layerLine := range layerLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(layerLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		// Visible bounds of the layer content, in display columns.
		startCol := 0
		for _, r := range plain {
			if r != ' ' {
				break
			}
			startCol++
		}
		trimmed := strings.TrimRight(plain, " ")
		endCol := startCol + ansi.StringWidth(trimmed[startCol:])

		content := ansi.Cut(layerLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(ansi.Strip(baseLine)); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		result := ansi.Cut(baseLine, 0, startCol) + content
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}
