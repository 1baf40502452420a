package metrics

import "github.com/san-kum/algodyssey/internal/trace"

type Steps struct {
	name  string
	count int
}

func NewSteps() *Steps {
	return &Steps{name: "steps"}
}

func (s *Steps) Name() string { return s.name }
func (s *Steps) Observe(trace.Step) { s.count++ }
func (s *Steps) Value() float64 { return float64(s.count) }
func (s *Steps) Reset() { s.count = 0 }

type Comparisons struct {
	name string
	sum  int
}

func NewComparisons() *Comparisons {
	return &Comparisons{name: "comparisons"}
}

func (c *Comparisons) Name() string { return c.name }

func (c *Comparisons) Observe(s trace.Step) {
	c.sum += s.Comparisons
}

func (c *Comparisons) Value() float64 { return float64(c.sum) }
func (c *Comparisons) Reset() { c.sum = 0 }
