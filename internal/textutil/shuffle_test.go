package textutil

import (
	"slices"
	"testing"
)

func sortedRunes(s string) []rune {
	r := []rune(s)
	slices.Sort(r)
	return r
}

func TestShuffleIsPermutation(t *testing.T) {
	src := NewSource(11)
	inputs := []string{
		"",
		"a",
		"ab",
		"hello, world",
		"aaaabbbb",
		"色は匂へど散りぬるを",
		Alphabet,
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			for range 50 {
				out := src.Shuffle(in)
				if len(out) != len(in) {
					t.Fatalf("len(Shuffle(%q)) = %d, expected %d", in, len(out), len(in))
				}
				if !slices.Equal(sortedRunes(out), sortedRunes(in)) {
					t.Fatalf("Shuffle(%q) = %q is not a permutation", in, out)
				}
			}
		})
	}
}

func TestShuffleTrivialInputs(t *testing.T) {
	if got := Shuffle(""); got != "" {
		t.Errorf("Shuffle(\"\") = %q", got)
	}
	if got := Shuffle("a"); got != "a" {
		t.Errorf("Shuffle(\"a\") = %q", got)
	}
	if got := Shuffle("色"); got != "色" {
		t.Errorf("Shuffle(\"色\") = %q", got)
	}
}

func TestShuffleInvalidUTF8KeepsBytes(t *testing.T) {
	in := string([]byte{0xff, 'a', 0xfe, 'b', 0x80})
	src := NewSource(5)

	for range 20 {
		out := []byte(src.Shuffle(in))
		got := slices.Clone(out)
		want := []byte(in)
		slices.Sort(got)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Fatalf("Shuffle(% x) = % x, bytes changed", in, out)
		}
	}
}

func TestShuffleDoesNotModifyInput(t *testing.T) {
	in := []rune("abcdef")
	s := string(in)
	_ = Shuffle(s)
	if s != "abcdef" {
		t.Errorf("input changed to %q", s)
	}
}

func TestShuffleUniformPermutations(t *testing.T) {
	const perPerm = 1000
	const perms = 24 // 4!
	src := NewSource(2024)
	counts := make(map[string]int, perms)

	for range perPerm * perms {
		counts[src.Shuffle("abcd")]++
	}

	if len(counts) != perms {
		t.Fatalf("saw %d permutations, expected %d", len(counts), perms)
	}

	// 23 degrees of freedom; the 0.001 critical value is about 49.7.
	if chi := chiSquare(counts, perPerm); chi > 70 {
		t.Errorf("chi-square = %.2f, permutations are not uniform", chi)
	}
}

func TestShuffleSliceConsumesNoRandomnessForShortInput(t *testing.T) {
	a, b := NewSource(9), NewSource(9)

	ShuffleSlice(a, []int{})
	ShuffleSlice(a, []int{1})

	if x, y := a.Intn(1000), b.Intn(1000); x != y {
		t.Errorf("short shuffles advanced the source: %d != %d", x, y)
	}
}

func TestShuffleSliceDeterministic(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7, 8}
	b := slices.Clone(a)

	ShuffleSlice(NewSource(77), a)
	ShuffleSlice(NewSource(77), b)

	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}
