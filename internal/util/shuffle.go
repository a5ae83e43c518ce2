package util

import "math/rand"

// Shuffle returns a new slice with the elements of in permuted
// uniformly. The input is left untouched. The permutation is not
// reproducible across calls.
func Shuffle(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
