package metrics

import "github.com/san-kum/algodyssey/internal/trace"

type Metric interface {
	Name() string
	Observe(s trace.Step)
	Value() float64
	Reset()
}

// Default returns the metrics reported for every run.
func Default() []Metric {
	return []Metric{
		NewSteps(),
		NewComparisons(),
		NewMaxSpan(),
		NewResets(),
	}
}

// Collect resets ms, feeds tr through them and returns the values by name.
func Collect(tr trace.Trace, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for _, s := range tr {
		for _, m := range ms {
			m.Observe(s)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
