package trace

import (
	"fmt"
	"strings"
)

// MaxLen is the longest sequence a card animates.
const MaxLen = 10

// NotFound is the binary-search result index when the target is absent.
const NotFound = -1

type Sequence []int

func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

func (s Sequence) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

type Kind string

const (
	KindMerge Kind = "merge"
	KindScan  Kind = "scan"
	KindProbe Kind = "probe"
)

type Outcome string

const (
	OutcomeNone  Outcome = ""
	OutcomeFound Outcome = "found"
	OutcomeLeft  Outcome = "left"
	OutcomeRight Outcome = "right"
)

// Step is one decision point of a traced algorithm. Lo and Hi bound the
// active range inclusively; Index is -1 when no single cell is active.
type Step struct {
	Kind        Kind     `json:"kind"`
	Lo          int      `json:"lo"`
	Hi          int      `json:"hi"`
	Index       int      `json:"index"`
	Outcome     Outcome  `json:"outcome,omitempty"`
	Values      Sequence `json:"values,omitempty"`
	Sum         int      `json:"sum,omitempty"`
	Best        int      `json:"best,omitempty"`
	BestLo      int      `json:"best_lo,omitempty"`
	BestHi      int      `json:"best_hi,omitempty"`
	Reset       bool     `json:"reset,omitempty"`
	Comparisons int      `json:"comparisons"`
}

// Span is the width of the active range.
func (s Step) Span() int {
	if s.Hi < s.Lo {
		return 0
	}
	return s.Hi - s.Lo + 1
}

// Highlight returns the cells a view colours for this step.
func (s Step) Highlight() []int {
	switch s.Kind {
	case KindScan:
		out := make([]int, 0, s.BestHi-s.BestLo+1)
		for i := s.BestLo; i <= s.BestHi; i++ {
			out = append(out, i)
		}
		return out
	case KindProbe:
		return []int{s.Index}
	default:
		out := make([]int, 0, s.Span())
		for i := s.Lo; i <= s.Hi; i++ {
			out = append(out, i)
		}
		return out
	}
}

func (s Step) String() string {
	switch s.Kind {
	case KindMerge:
		return fmt.Sprintf("merge [%d..%d] -> %v", s.Lo, s.Hi, s.Values)
	case KindScan:
		verb := "extend"
		if s.Reset {
			verb = "reset"
		}
		return fmt.Sprintf("scan %d: %s sum=%d best=%d [%d..%d]", s.Index, verb, s.Sum, s.Best, s.BestLo, s.BestHi)
	case KindProbe:
		return fmt.Sprintf("probe [%d..%d] mid=%d -> %s", s.Lo, s.Hi, s.Index, s.Outcome)
	}
	return string(s.Kind)
}

type Trace []Step

// Comparisons totals the element comparisons across the trace.
func (t Trace) Comparisons() int {
	n := 0
	for _, s := range t {
		n += s.Comparisons
	}
	return n
}

type Result struct {
	Sorted Sequence `json:"sorted,omitempty"`
	Sum    int      `json:"sum"`
	Start  int      `json:"start"`
	End    int      `json:"end"`
	Index  int      `json:"index"`
	Found  bool     `json:"found"`
}

// Run is one simulation invocation. It lives only as long as its animation.
type Run struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	Input     Sequence           `json:"input"`
	Target    int                `json:"target"`
	Trace     Trace              `json:"trace"`
	Result    Result             `json:"result"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// Summary is the one-line outcome shown when a run finishes.
func (r *Run) Summary() string {
	switch r.Algorithm {
	case "mergesort":
		return "sorted " + r.Result.Sorted.String()
	case "kadane":
		return fmt.Sprintf("max sum %d at [%d..%d]", r.Result.Sum, r.Result.Start, r.Result.End)
	case "binarysearch":
		if r.Result.Found {
			return fmt.Sprintf("found %d at index %d", r.Target, r.Result.Index)
		}
		return fmt.Sprintf("%d not found", r.Target)
	}
	return ""
}
