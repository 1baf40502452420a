package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/algodyssey/internal/trace"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	cellWidth   = 6
)

var (
	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#4f46e5")).
			Bold(true).
			Width(cellWidth - 1).
			Align(lipgloss.Center)
	litStyle = cellStyle.
			Background(lipgloss.Color("#22c55e"))
)

// LiveRenderer redraws a card's cells on every played step. It implements
// player.Observer.
type LiveRenderer struct {
	w      io.Writer
	name   string
	data   trace.Sequence
	total  int
	color  bool
	clear  bool
	sums   []float64
	frames int
}

func NewLiveRenderer(w io.Writer, name string, data trace.Sequence, total int) *LiveRenderer {
	return &LiveRenderer{
		w:     w,
		name:  name,
		data:  data.Clone(),
		total: total,
		color: true,
		clear: true,
	}
}

// Plain turns off colours and screen clearing, for pipes and concurrent runs.
func (r *LiveRenderer) Plain() *LiveRenderer {
	r.color = false
	r.clear = false
	return r
}

func (r *LiveRenderer) Frames() int { return r.frames }

func (r *LiveRenderer) OnStep(i int, s trace.Step) {
	if s.Values != nil {
		r.data = s.Values.Clone()
	}
	if s.Kind == trace.KindScan {
		r.sums = append(r.sums, float64(s.Sum))
	}
	r.frames++

	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(fmt.Sprintf("  %s  step %d/%d\n", r.name, i+1, r.total))
	b.WriteString("  " + r.Cells(s.Highlight()) + "\n")
	b.WriteString("  " + s.String() + "\n")
	if len(r.sums) > 1 {
		graph := asciigraph.Plot(r.sums,
			asciigraph.Height(5),
			asciigraph.Width(cellWidth*len(r.data)),
			asciigraph.Caption("running sum"),
		)
		b.WriteString(graph + "\n")
	}
	b.WriteString("\n")

	fmt.Fprint(r.w, b.String())
}

// Cells renders the current values with lit marking the highlighted ones.
func (r *LiveRenderer) Cells(lit []int) string {
	on := make(map[int]bool, len(lit))
	for _, i := range lit {
		on[i] = true
	}

	parts := make([]string, len(r.data))
	for i, v := range r.data {
		switch {
		case r.color && on[i]:
			parts[i] = litStyle.Render(fmt.Sprint(v))
		case r.color:
			parts[i] = cellStyle.Render(fmt.Sprint(v))
		case on[i]:
			parts[i] = fmt.Sprintf("[%3d]", v)
		default:
			parts[i] = fmt.Sprintf(" %3d ", v)
		}
	}
	return strings.Join(parts, " ")
}

func (r *LiveRenderer) Start() {
	if r.clear {
		fmt.Fprint(r.w, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if r.clear {
		fmt.Fprint(r.w, showCursor)
	}
}
