// Package bwt implements the Burrows-Wheeler transform and its inverse.
//
// The forward transform sorts all cyclic rotations of the input and emits the
// last character of each, together with the primary index: the sorted rank of
// the unrotated input. The pair (output, index) is exactly what the inverse
// needs to reconstruct the input, so the two must travel together.
//
// By convention the input ends with a unique terminator that sorts below
// every other character (see Preparer). The transform itself works on any
// non-empty byte string, but without a unique terminator a periodic input has
// identical rotations and the transform is no longer invertible.
package bwt

import "errors"

var (
	ErrEmptyInput         = errors.New("bwt: empty input")
	ErrIndexOutOfRange    = errors.New("bwt: index out of range")
	ErrMalformedTransform = errors.New("bwt: not a valid transform output")
)

// Transform computes the Burrows-Wheeler transform of input. It returns the
// last column of the sorted rotation table and the primary index. The output
// is a permutation of input's bytes and the index is in [0, len(input)).
func Transform(input []byte) ([]byte, int, error) {
	if len(input) == 0 {
		return nil, 0, ErrEmptyInput
	}
	output, index := lastColumn(input, sortRotations(input))
	return output, index, nil
}

// TransformString is Transform for strings.
func TransformString(input string) (string, int, error) {
	output, index, err := Transform([]byte(input))
	return string(output), index, err
}

// lastColumn extracts the final character of each rotation in sorted order
// and locates the zero-offset rotation.
func lastColumn(text []byte, rotations []int) ([]byte, int) {
	n := len(text)
	out := make([]byte, n)
	index := 0
	for i, off := range rotations {
		out[i] = text[(off+n-1)%n]
		if off == 0 {
			index = i
		}
	}
	return out, index
}

// Inverse reconstructs the original string from a transform output and its
// primary index.
//
// The transformed data is the last column L of the sorted rotation table.
// The first column F is L's characters in ascending order, and the i-th
// occurrence of a character in L is the same original position as its i-th
// occurrence in F. That correspondence (the last-to-first mapping) links each
// row to the row of its predecessor character, so walking it n times from the
// primary index yields the original string back to front.
//
// Inverse returns ErrMalformedTransform when (transformed, index) cannot be
// the output of Transform: a valid mapping walks a single cycle through all
// n rows, so revisiting a row early proves the pair inconsistent.
func Inverse(transformed []byte, index int) ([]byte, error) {
	n := len(transformed)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if index < 0 || index >= n {
		return nil, ErrIndexOutOfRange
	}

	// starts[c] is the first row of c in F, i.e. the number of smaller
	// characters in the transform.
	var counts, starts [256]int
	for _, c := range transformed {
		counts[c]++
	}
	sum := 0
	for c, v := range counts {
		starts[c] = sum
		sum += v
	}

	lf := make([]int, n)
	var seen [256]int
	for i, c := range transformed {
		lf[i] = starts[c] + seen[c]
		seen[c]++
	}

	out := make([]byte, n)
	visited := make([]bool, n)
	cur := index
	for i := 0; i < n; i++ {
		if visited[cur] {
			return nil, ErrMalformedTransform
		}
		visited[cur] = true
		out[n-1-i] = transformed[cur]
		cur = lf[cur]
	}

	return out, nil
}

// InverseString is Inverse for strings.
func InverseString(transformed string, index int) (string, error) {
	original, err := Inverse([]byte(transformed), index)
	return string(original), err
}
