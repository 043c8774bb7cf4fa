// Package freq counts n-gram frequencies over token streams.
package freq

import "iter"

// Count tallies how many times each value occurs in the stream. It
// works over any comparable n-gram type: tokens, bigram pairs, or
// sentence lengths alike.
func Count[T comparable](seq iter.Seq[T]) map[T]int {
	counts := make(map[T]int)
	for v := range seq {
		counts[v]++
	}
	return counts
}

// Total sums all counts in a frequency table.
func Total[T comparable](counts map[T]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
