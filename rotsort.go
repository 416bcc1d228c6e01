package bwt

import "sort"

// sortRotations returns the offsets of all cyclic rotations of text in
// lexicographic order. Rotations that are character-for-character identical
// (only possible for periodic inputs) are ordered by ascending offset, so the
// result is deterministic for every input.
//
// Prefix doubling: after the round with width k, rank[i] is the sorted rank
// of rotation i truncated to its first 2k characters. Ranks are compared
// cyclically, so no terminator is assumed. O(n log^2 n) overall.
func sortRotations(text []byte) []int {
	n := len(text)
	sa := make([]int, n)
	rank := make([]int, n)
	for i := 0; i < n; i++ {
		sa[i] = i
		rank[i] = int(text[i])
	}

	next := make([]int, n)
	for k := 1; k < n; k *= 2 {
		sort.Slice(sa, func(i, j int) bool {
			a, b := sa[i], sa[j]
			if rank[a] != rank[b] {
				return rank[a] < rank[b]
			}
			ra, rb := rank[(a+k)%n], rank[(b+k)%n]
			if ra != rb {
				return ra < rb
			}
			return a < b
		})

		next[sa[0]] = 0
		for i := 1; i < n; i++ {
			prev, cur := sa[i-1], sa[i]
			next[cur] = next[prev]
			if rank[prev] != rank[cur] || rank[(prev+k)%n] != rank[(cur+k)%n] {
				next[cur]++
			}
		}
		copy(rank, next)

		// All rotations distinguished, remaining rounds are no-ops.
		if rank[sa[n-1]] == n-1 {
			break
		}
	}

	return sa
}

// sortRotationsComparison produces the same permutation as sortRotations via
// a direct cyclic byte-by-byte comparison of rotations. O(n^2 log n) worst
// case but allocates only the offset slice; fine for short inputs.
func sortRotationsComparison(text []byte) []int {
	n := len(text)
	sa := make([]int, n)
	for i := 0; i < n; i++ {
		sa[i] = i
	}

	sort.Slice(sa, func(i, j int) bool {
		a, b := sa[i], sa[j]
		for k := 0; k < n; k++ {
			ca, cb := text[(a+k)%n], text[(b+k)%n]
			if ca != cb {
				return ca < cb
			}
		}
		return a < b
	})

	return sa
}
