package quiz

import "math/rand/v2"

// Shuffle returns a new slice with the elements of s in uniformly
// random order. The input is never mutated; lengths 0 and 1 come back
// as plain copies.
func Shuffle[T any](r *rand.Rand, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	// Fisher-Yates over the copy, last index down to 1.
	for i := len(out) - 1; i >= 1; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
