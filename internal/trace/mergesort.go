package trace

// MergeSort sorts a copy of seq top-down and records one merge step per
// merged range. Ties take the left run first, so the sort is stable.
func MergeSort(seq Sequence) (Trace, Result) {
	work := seq.Clone()
	buf := make(Sequence, len(work))
	tr := make(Trace, 0, len(work))
	mergeSort(work, buf, 0, len(work)-1, &tr)
	return tr, Result{Sorted: work, Index: NotFound}
}

func mergeSort(work, buf Sequence, lo, hi int, tr *Trace) {
	if hi-lo+1 <= 1 {
		return
	}
	mid := lo + (hi-lo+1)/2
	mergeSort(work, buf, lo, mid-1, tr)
	mergeSort(work, buf, mid, hi, tr)

	i, j, k, cmp := lo, mid, lo, 0
	for i < mid && j <= hi {
		cmp++
		if work[j] < work[i] {
			buf[k] = work[j]
			j++
		} else {
			buf[k] = work[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], work[i:mid])
	copy(buf[k:], work[j:hi+1])
	copy(work[lo:hi+1], buf[lo:hi+1])

	*tr = append(*tr, Step{
		Kind:        KindMerge,
		Lo:          lo,
		Hi:          hi,
		Index:       -1,
		Values:      work.Clone(),
		Comparisons: cmp,
	})
}
