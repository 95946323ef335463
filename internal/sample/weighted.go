package sample

// Weighted draws one item from candidates, with selection probability
// proportional to the weight reported by weightOf. Non-positive weights count
// as 1. The second return value is false when candidates is empty.
//
// A single threshold is drawn in [0, total) and the first candidate whose
// cumulative interval contains it wins. If floating-point error exhausts the
// list before the threshold is claimed, the last candidate is returned.
func Weighted[T any](candidates []T, weightOf func(T) float64, src Source) (T, bool) {
	var zero T
	if len(candidates) == 0 {
		return zero, false
	}

	total := 0.0
	for _, c := range candidates {
		total += effectiveWeight(weightOf(c))
	}

	threshold := src.Float64() * total

	sum := 0.0
	for _, c := range candidates {
		sum += effectiveWeight(weightOf(c))
		if threshold < sum {
			return c, true
		}
	}

	return candidates[len(candidates)-1], true
}

// Uniform draws one item from candidates with equal probability.
func Uniform[T any](candidates []T, src Source) (T, bool) {
	var zero T
	if len(candidates) == 0 {
		return zero, false
	}
	idx := int(src.Float64() * float64(len(candidates)))
	if idx >= len(candidates) {
		idx = len(candidates) - 1
	}
	return candidates[idx], true
}

func effectiveWeight(w float64) float64 {
	if w > 0 {
		return w
	}
	return 1
}
