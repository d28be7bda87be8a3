package textutil

import "unicode/utf8"

// ShuffleSlice permutes s in place with the Fisher-Yates shuffle: for i from
// len(s)-1 down to 1, swap s[i] with s[j] for a uniform j in [0, i].
// Every permutation is equally likely. Slices shorter than two elements are
// left untouched and consume no randomness.
func ShuffleSlice[T any](src *Source, s []T) {
	if len(s) < 2 {
		return
	}

	src.mu.Lock()
	defer src.mu.Unlock()

	for i := len(s) - 1; i > 0; i-- {
		j := src.rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Shuffle returns a uniformly random permutation of the characters of text.
// text itself is not modified. Valid UTF-8 is shuffled rune by rune;
// anything else is shuffled byte by byte so no bytes are replaced.
func (s *Source) Shuffle(text string) string {
	if len(text) < 2 {
		return text
	}

	if !utf8.ValidString(text) {
		b := []byte(text)
		ShuffleSlice(s, b)
		return string(b)
	}

	r := []rune(text)
	ShuffleSlice(s, r)
	return string(r)
}

// Shuffle shuffles text using the default source.
func Shuffle(text string) string {
	return defaultSource.Shuffle(text)
}
