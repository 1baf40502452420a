package trace

// BinarySearch halves [lo, hi] until target is found or the bounds cross.
// seq must already be sorted; it is not checked.
func BinarySearch(seq Sequence, target int) (Trace, Result) {
	lo, hi := 0, len(seq)-1
	tr := make(Trace, 0, 4)

	for lo <= hi {
		mid := lo + (hi-lo)/2
		step := Step{Kind: KindProbe, Lo: lo, Hi: hi, Index: mid, Comparisons: 1}

		switch {
		case seq[mid] == target:
			step.Outcome = OutcomeFound
			tr = append(tr, step)
			return tr, Result{Index: mid, Found: true}
		case seq[mid] < target:
			step.Outcome = OutcomeRight
			step.Comparisons = 2
			lo = mid + 1
		default:
			step.Outcome = OutcomeLeft
			step.Comparisons = 2
			hi = mid - 1
		}
		tr = append(tr, step)
	}

	return tr, Result{Index: NotFound}
}
