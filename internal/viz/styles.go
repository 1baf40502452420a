package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	cellWidth = 4
	cardWidth = cellWidth*10 + 2
)

type styles struct {
	card    lipgloss.Style
	glow    lipgloss.Style
	title   lipgloss.Style
	badge   lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	cell    lipgloss.Style
	lit     lipgloss.Style
	code    lipgloss.Style
	status  lipgloss.Style
	errText lipgloss.Style
	keyHint lipgloss.Style
	graph   lipgloss.Style
}

func newStyles(t Theme) styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Padding(0, 1).
		Width(cardWidth)
	cell := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(t.Cell).
		Bold(true).
		Width(cellWidth - 1).
		MarginRight(1).
		Align(lipgloss.Center)

	return styles{
		card: card,
		glow: card.
			Border(lipgloss.ThickBorder()).
			BorderForeground(t.Glow),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		badge: lipgloss.NewStyle().
			Foreground(t.Accent).
			Italic(true),
		text:  lipgloss.NewStyle().Foreground(t.Text).Width(cardWidth - 2),
		muted: lipgloss.NewStyle().Foreground(t.Muted),
		cell:  cell,
		lit:   cell.Background(t.Highlight),
		code: lipgloss.NewStyle().
			Foreground(t.Secondary),
		status: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Highlight),
		errText: lipgloss.NewStyle().
			Foreground(t.Error),
		keyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		graph: lipgloss.NewStyle().
			Foreground(t.Accent),
	}
}

// GradientText colours each rune along a straight line between two hex colours.
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(runes)
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}

	return result.String()
}

func Separator(width int, style lipgloss.Style) string {
	if width < 8 {
		return style.Render(strings.Repeat("─", width))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return style.Render(left + " ◆ " + right)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)
}

func hexColor(r, g, b int) string {
	clamp := func(v int) int {
		return max(0, min(255, v))
	}
	return "#" + hexByte(clamp(r)) + hexByte(clamp(g)) + hexByte(clamp(b))
}

func hexByte(v int) string {
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
