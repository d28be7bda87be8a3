package textutil

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestAlphabet(t *testing.T) {
	if len(Alphabet) != 62 {
		t.Fatalf("len(Alphabet) = %d, expected 62", len(Alphabet))
	}
	seen := make(map[rune]bool)
	for _, r := range Alphabet {
		if seen[r] {
			t.Errorf("duplicate %q in Alphabet", r)
		}
		seen[r] = true
	}
}

func TestRandomStringLength(t *testing.T) {
	src := NewSource(1)

	for _, length := range []int{0, 1, DefaultLength, 16, 257} {
		s, err := src.RandomString(length)
		if err != nil {
			t.Fatalf("RandomString(%d) error = %v", length, err)
		}
		if len(s) != length {
			t.Errorf("len(RandomString(%d)) = %d", length, len(s))
		}
		for _, r := range s {
			if !strings.ContainsRune(Alphabet, r) {
				t.Errorf("RandomString(%d) produced %q outside the alphabet", length, r)
			}
		}
	}
}

func TestRandomStringZero(t *testing.T) {
	s, err := RandomString(0)
	if err != nil || s != "" {
		t.Errorf("RandomString(0) = %q, %v; expected empty string", s, err)
	}
}

func TestRandomStringNegative(t *testing.T) {
	for _, length := range []int{-1, -100} {
		s, err := RandomString(length)
		if !errors.Is(err, ErrNegativeLength) {
			t.Errorf("RandomString(%d) error = %v, expected ErrNegativeLength", length, err)
		}
		if s != "" {
			t.Errorf("RandomString(%d) = %q, expected empty", length, s)
		}
	}
}

func TestRandomStringDeterministicWithSeed(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for range 20 {
		sa, _ := a.RandomString(12)
		sb, _ := b.RandomString(12)
		if sa != sb {
			t.Fatalf("same seed produced %q and %q", sa, sb)
		}
	}
}

func TestRandomStringUniform(t *testing.T) {
	const perChar = 1000
	src := NewSource(7)
	counts := make(map[byte]int, len(Alphabet))

	for range perChar * len(Alphabet) {
		s, err := src.RandomString(1)
		if err != nil {
			t.Fatal(err)
		}
		counts[s[0]]++
	}

	if len(counts) != len(Alphabet) {
		t.Fatalf("saw %d distinct characters, expected %d", len(counts), len(Alphabet))
	}

	// 61 degrees of freedom; the 0.001 critical value is about 100.9.
	if chi := chiSquare(counts, perChar); chi > 120 {
		t.Errorf("chi-square = %.2f, distribution is not uniform", chi)
	}
}

func TestRandomStringConcurrent(t *testing.T) {
	src := NewSource(3)
	var wg sync.WaitGroup
	errs := make(chan string, 64)

	for g := range 8 {
		wg.Add(1)
		go func(length int) {
			defer wg.Done()
			for range 200 {
				s, err := src.RandomString(length)
				if err != nil || len(s) != length {
					errs <- s
					return
				}
			}
		}(g + 3)
	}
	wg.Wait()
	close(errs)

	for s := range errs {
		t.Errorf("concurrent RandomString produced %q", s)
	}
}

func chiSquare[K comparable](counts map[K]int, expected int) float64 {
	var chi float64
	for _, c := range counts {
		d := float64(c - expected)
		chi += d * d / float64(expected)
	}
	return chi
}
