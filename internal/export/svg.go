package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/algodyssey/internal/trace"
)

const (
	cellSize = 40
	cellGap  = 8
	svgPad   = 16

	cellFill      = "#4f46e5"
	highlightFill = "#22c55e"
	svgBackground = "#111827"
)

// StepToSVG draws the array cells as they look at step s. A nil step draws
// the idle card. Merge steps draw their snapshot instead of data.
func StepToSVG(data trace.Sequence, s *trace.Step) string {
	values := data
	lit := map[int]bool{}
	if s != nil {
		if s.Values != nil {
			values = s.Values
		}
		for _, i := range s.Highlight() {
			lit[i] = true
		}
	}

	width := svgPad*2 + len(values)*cellSize
	if len(values) > 1 {
		width += (len(values) - 1) * cellGap
	}
	height := svgPad*2 + cellSize

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground))

	for i, v := range values {
		fill := cellFill
		if lit[i] {
			fill = highlightFill
		}
		x := svgPad + i*(cellSize+cellGap)
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="6" fill="%s"/>
`, x, svgPad, cellSize, cellSize, fill))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#ffffff" font-family="monospace" font-weight="bold" text-anchor="middle" dominant-baseline="central">%d</text>
`, x+cellSize/2, svgPad+cellSize/2, v))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
