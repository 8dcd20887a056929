package generator

import "math/rand"

// weightedChoice picks one of choices with probability proportional to its
// weight. Non-positive weights are never chosen. Returns false if nothing
// has a positive weight.
func weightedChoice[T any](rng *rand.Rand, choices []T, weight func(T) float64) (T, bool) {
	var zero T
	total := 0.0
	for _, c := range choices {
		if w := weight(c); w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return zero, false
	}

	target := rng.Float64() * total
	upto := 0.0
	last := -1
	for i, c := range choices {
		w := weight(c)
		if w <= 0 {
			continue
		}
		last = i
		upto += w
		if target < upto {
			return c, true
		}
	}
	// rounding can leave target just past the final weight
	return choices[last], true
}
