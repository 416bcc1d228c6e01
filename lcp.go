package bwt

// Kasai's algorithm for building the LCP array of the sorted rotation table
// in O(n) time. lcp[i] is the length of the longest common prefix of the
// rotations at sorted rows i and i+1. Rotations are read cyclically and the
// comparison is capped at n; the amortization argument requires pairwise
// distinct rotations, which a unique terminator guarantees.
func buildLCP(text []byte, rotations []int) []int {
	n := len(text)
	rank := make([]int, n)
	for i := range rotations {
		rank[rotations[i]] = i
	}

	lcp := make([]int, n-1)
	l := 0
	for i := 0; i < n; i++ {
		if rank[i]+1 == n {
			l = 0
			continue
		}
		j := rotations[rank[i]+1]
		for l < n && text[(i+l)%n] == text[(j+l)%n] {
			l++
		}
		lcp[rank[i]] = l
		if l > 0 {
			l--
		}
	}

	return lcp
}
