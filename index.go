package bwt

import (
	"errors"

	"github.com/viniciusth/rmq"
)

var (
	ErrNoLCP = errors.New("bwt: index built without the LCP array")
)

type IndexBuilder struct {
	text           []byte
	useLCP         bool
	comparisonSort bool
}

// NewBuilder starts an Index over text. The text must not be mutated after
// Build.
func NewBuilder(text []byte) *IndexBuilder {
	return &IndexBuilder{
		text:   text,
		useLCP: true,
	}
}

// Skips the LCP array and its range-minimum structure.
// Saves O(n) memory: doesn't build two extra int slices over the text.
// Trade-off: CommonPrefix and LongestRepeat become unavailable.
func (b *IndexBuilder) SkipLCP() *IndexBuilder {
	b.useLCP = false
	return b
}

// Sorts rotations with a direct cyclic comparison instead of prefix doubling.
// Saves the per-round rank slices; O(n^2 log n) worst case instead of
// O(n log^2 n).
// Trade-off: slower on long or highly repetitive inputs, lighter on short ones.
func (b *IndexBuilder) UseComparisonSort() *IndexBuilder {
	b.comparisonSort = true
	return b
}

func (b *IndexBuilder) Build() (*Index, error) {
	if len(b.text) == 0 {
		return nil, ErrEmptyInput
	}

	var rotations []int
	if b.comparisonSort {
		rotations = sortRotationsComparison(b.text)
	} else {
		rotations = sortRotations(b.text)
	}

	idx := &Index{text: b.text, rotations: rotations}
	for i, off := range rotations {
		if off == 0 {
			idx.primary = i
			break
		}
	}

	if b.useLCP {
		idx.lcp = buildLCP(b.text, rotations)
		if len(idx.lcp) > 0 {
			idx.lcpRMQ = rmq.NewRMQHybridNaive(idx.lcp)
		}
	}

	return idx, nil
}

// Index is an immutable view of one input's sorted rotation table. It
// answers transform and rotation-similarity queries without re-sorting.
// Safe for concurrent use.
type Index struct {
	text      []byte
	rotations []int
	primary   int
	lcp       []int
	lcpRMQ    *rmq.RMQHybridNaive[int]
}

// Transform returns the last column of the sorted rotation table and the
// primary index, i.e. the Burrows-Wheeler transform of the indexed text.
func (x *Index) Transform() ([]byte, int) {
	return lastColumn(x.text, x.rotations)
}

// PrimaryIndex returns the sorted rank of the zero-offset rotation.
func (x *Index) PrimaryIndex() int {
	return x.primary
}

// Rotations returns a copy of the rotation offsets in sorted order.
func (x *Index) Rotations() []int {
	out := make([]int, len(x.rotations))
	copy(out, x.rotations)
	return out
}

// CommonPrefix returns the length of the longest common prefix of the
// rotations at sorted rows i and j, answered with a range-minimum query over
// the LCP array.
func (x *Index) CommonPrefix(i, j int) (int, error) {
	n := len(x.text)
	if i < 0 || j < 0 || i >= n || j >= n {
		return 0, ErrIndexOutOfRange
	}
	if x.lcp == nil {
		return 0, ErrNoLCP
	}
	if i == j {
		return n, nil
	}
	if i > j {
		i, j = j, i
	}
	return x.lcp[x.lcpRMQ.Query(i, j-1)], nil
}

// LongestRepeat returns the sorted row and length of the longest substring
// that occurs at least twice in the text: the maximum of the LCP array. The
// repeat is the common prefix of the rotations at rows row and row+1. Length
// 0 means nothing repeats. A large value relative to the text is a good sign
// for downstream compression.
func (x *Index) LongestRepeat() (row, length int, err error) {
	if x.lcp == nil {
		return 0, 0, ErrNoLCP
	}
	for i, l := range x.lcp {
		if l > length {
			row, length = i, l
		}
	}
	return row, length, nil
}
