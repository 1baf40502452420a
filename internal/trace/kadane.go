package trace

// Kadane scans seq once, extending or resetting the running sum at each
// index. The best bounds only move when the running sum strictly beats them.
func Kadane(seq Sequence) (Trace, Result, error) {
	if len(seq) == 0 {
		return nil, Result{}, &InputError{Algorithm: "kadane", Wrapped: ErrEmptySequence}
	}

	current, best := seq[0], seq[0]
	start, bestLo, bestHi := 0, 0, 0
	tr := make(Trace, 0, len(seq))
	tr = append(tr, Step{
		Kind: KindScan, Lo: 0, Hi: 0, Index: 0,
		Sum: current, Best: best, BestLo: 0, BestHi: 0, Reset: true,
	})

	for i := 1; i < len(seq); i++ {
		reset := seq[i] > current+seq[i]
		if reset {
			current = seq[i]
			start = i
		} else {
			current += seq[i]
		}
		if current > best {
			best, bestLo, bestHi = current, start, i
		}
		tr = append(tr, Step{
			Kind:        KindScan,
			Lo:          start,
			Hi:          i,
			Index:       i,
			Sum:         current,
			Best:        best,
			BestLo:      bestLo,
			BestHi:      bestHi,
			Reset:       reset,
			Comparisons: 2,
		})
	}

	return tr, Result{Sum: best, Start: bestLo, End: bestHi, Index: NotFound}, nil
}
