package metrics

import "github.com/san-kum/algodyssey/internal/trace"

// MaxSpan tracks the widest range a run touched in one step.
type MaxSpan struct {
	name string
	max  int
}

func NewMaxSpan() *MaxSpan {
	return &MaxSpan{name: "max_span"}
}

func (m *MaxSpan) Name() string {
	return m.name
}

func (m *MaxSpan) Observe(s trace.Step) {
	if span := s.Span(); span > m.max {
		m.max = span
	}
}

func (m *MaxSpan) Value() float64 {
	return float64(m.max)
}

func (m *MaxSpan) Reset() {
	m.max = 0
}

// Resets counts the indices where Kadane restarted its running sum.
type Resets struct {
	name  string
	count int
}

func NewResets() *Resets {
	return &Resets{name: "resets"}
}

func (r *Resets) Name() string {
	return r.name
}

func (r *Resets) Observe(s trace.Step) {
	if s.Kind == trace.KindScan && s.Reset {
		r.count++
	}
}

func (r *Resets) Value() float64 {
	return float64(r.count)
}

func (r *Resets) Reset() {
	r.count = 0
}
