package bwt

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"
)

// naiveTransform materializes every rotation as its own string and sorts
// them, ties broken by offset. Slow but obviously correct.
func naiveTransform(input []byte) ([]byte, int) {
	n := len(input)
	type rot struct {
		s   string
		off int
	}
	rots := make([]rot, n)
	for i := 0; i < n; i++ {
		rots[i] = rot{string(input[i:]) + string(input[:i]), i}
	}
	sort.Slice(rots, func(a, b int) bool {
		if rots[a].s != rots[b].s {
			return rots[a].s < rots[b].s
		}
		return rots[a].off < rots[b].off
	})

	out := make([]byte, n)
	index := 0
	for i, r := range rots {
		out[i] = r.s[n-1]
		if r.off == 0 {
			index = i
		}
	}
	return out, index
}

func randomTerminated(r *rand.Rand, n int, alphabet string) []byte {
	text := make([]byte, n+1)
	for i := 0; i < n; i++ {
		text[i] = alphabet[r.Intn(len(alphabet))]
	}
	text[n] = '$'
	return text
}

func TestTransformKnownInputs(t *testing.T) {
	tests := []struct {
		input  string
		output string
		index  int
	}{
		{"BANANA$", "ANNB$AA", 4},
		{"MISSISSIPPI$", "IPSSM$PISSII", 5},
		{"ABRACADABRA$", "ARD$RCAAAABB", 3},
		{"A$", "A$", 1},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			output, index, err := TransformString(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			if output != tc.output || index != tc.index {
				t.Errorf("transform = (%q, %d), want (%q, %d)", output, index, tc.output, tc.index)
			}

			original, err := InverseString(tc.output, tc.index)
			if err != nil {
				t.Fatal(err)
			}
			if original != tc.input {
				t.Errorf("inverse = %q, want %q", original, tc.input)
			}
		})
	}
}

func TestTransformMatchesNaive(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, alphabet := range []string{"ab", "abc", "abcdefghij"} {
		for n := 0; n <= 64; n++ {
			input := randomTerminated(r, n, alphabet)

			wantOut, wantIdx := naiveTransform(input)
			gotOut, gotIdx, err := Transform(input)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(gotOut, wantOut) || gotIdx != wantIdx {
				t.Fatalf("Transform(%q) = (%q, %d), want (%q, %d)", input, gotOut, gotIdx, wantOut, wantIdx)
			}
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, alphabet := range []string{"ab", "abcdefghijklmnopqrstuvwxyz"} {
		for n := 0; n <= 200; n += 7 {
			input := randomTerminated(r, n, alphabet)

			output, index, err := Transform(input)
			if err != nil {
				t.Fatal(err)
			}
			original, err := Inverse(output, index)
			if err != nil {
				t.Fatalf("Inverse(%q, %d): %v", output, index, err)
			}
			if !bytes.Equal(original, input) {
				t.Fatalf("round trip of %q gave %q", input, original)
			}
		}
	}
}

// The transform does not require a terminator, only pairwise distinct
// rotations. Primitive strings stay invertible without one.
func TestRoundTripWithoutTerminator(t *testing.T) {
	for _, input := range []string{"BANANA", "MISSISSIPPI", "x", "compression"} {
		output, index, err := TransformString(input)
		if err != nil {
			t.Fatal(err)
		}
		original, err := InverseString(output, index)
		if err != nil {
			t.Fatal(err)
		}
		if original != input {
			t.Errorf("round trip of %q gave %q", input, original)
		}
	}
}

func TestTransformProperties(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for n := 0; n <= 50; n++ {
		input := randomTerminated(r, n, "abcd")

		output, index, err := Transform(input)
		if err != nil {
			t.Fatal(err)
		}
		if len(output) != len(input) {
			t.Fatalf("output length %d, want %d", len(output), len(input))
		}
		if index < 0 || index >= len(input) {
			t.Fatalf("index %d out of range for length %d", index, len(input))
		}

		wantMultiset := append([]byte(nil), input...)
		gotMultiset := append([]byte(nil), output...)
		sort.Slice(wantMultiset, func(i, j int) bool { return wantMultiset[i] < wantMultiset[j] })
		sort.Slice(gotMultiset, func(i, j int) bool { return gotMultiset[i] < gotMultiset[j] })
		if !bytes.Equal(gotMultiset, wantMultiset) {
			t.Fatalf("output %q is not a permutation of %q", output, input)
		}

		again, againIdx, err := Transform(input)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(again, output) || againIdx != index {
			t.Fatalf("repeated transform of %q differed", input)
		}
	}
}

func TestSortVariantsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	inputs := [][]byte{
		[]byte("aaaa"),
		[]byte("abababab"),
		[]byte("aabaab"),
		[]byte("$"),
	}
	for n := 1; n <= 48; n++ {
		inputs = append(inputs, randomTerminated(r, n, "ab"))
	}

	for _, input := range inputs {
		doubling := sortRotations(input)
		comparison := sortRotationsComparison(input)
		if len(doubling) != len(comparison) {
			t.Fatalf("permutation lengths differ for %q", input)
		}
		for i := range doubling {
			if doubling[i] != comparison[i] {
				t.Fatalf("sort variants disagree for %q: %v vs %v", input, doubling, comparison)
			}
		}
	}
}

// Identical rotations are ordered by offset, so a fully periodic input still
// gets a deterministic transform even though it cannot be inverted.
func TestPeriodicInput(t *testing.T) {
	output, index, err := TransformString("aaaa")
	if err != nil {
		t.Fatal(err)
	}
	if output != "aaaa" || index != 0 {
		t.Fatalf("transform = (%q, %d), want (%q, 0)", output, index, "aaaa")
	}

	if _, err := InverseString(output, index); err != ErrMalformedTransform {
		t.Fatalf("inverse of periodic transform: err = %v, want ErrMalformedTransform", err)
	}
}

func TestTransformEmpty(t *testing.T) {
	if _, _, err := Transform(nil); err != ErrEmptyInput {
		t.Errorf("Transform(nil): err = %v, want ErrEmptyInput", err)
	}
	if _, _, err := TransformString(""); err != ErrEmptyInput {
		t.Errorf("TransformString(\"\"): err = %v, want ErrEmptyInput", err)
	}
}

func TestInverseErrors(t *testing.T) {
	if _, err := Inverse(nil, 0); err != ErrEmptyInput {
		t.Errorf("empty: err = %v, want ErrEmptyInput", err)
	}
	if _, err := Inverse([]byte("ba"), -1); err != ErrIndexOutOfRange {
		t.Errorf("negative index: err = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := Inverse([]byte("ba"), 2); err != ErrIndexOutOfRange {
		t.Errorf("index == n: err = %v, want ErrIndexOutOfRange", err)
	}

	// L = "ab" gives F = "ab", so the last-to-first mapping is the
	// identity and the walk revisits the start after one step.
	if _, err := Inverse([]byte("ab"), 0); err != ErrMalformedTransform {
		t.Errorf("malformed: err = %v, want ErrMalformedTransform", err)
	}
}
