package wairo

import (
	"strings"

	"github.com/vovakirdan/irodori/internal/core"
)

// Entry is one named color of the catalog.
type Entry struct {
	Family     Family
	Name       string // Romanized name, e.g. "Aka"
	Kanji      string // Japanese name, e.g. "赤"
	R, G, B, A uint8  // Channels before normalization
}

// Color returns the normalized color of the entry.
func (e Entry) Color() core.Color {
	return core.RGBA8(e.R, e.G, e.B, e.A)
}

// QualifiedName returns the name in accessor form, e.g. "RedFamily.Aka".
func (e Entry) QualifiedName() string {
	return e.Family.Namespace() + "." + e.Name
}

var (
	byName   = make(map[string]int, len(catalog))
	byFamily [len(familyNames)][]int
)

func init() {
	for i, e := range catalog {
		byName[e.QualifiedName()] = i
		byFamily[e.Family] = append(byFamily[e.Family], i)
	}
}

// Len returns the number of entries in the catalog.
func Len() int {
	return len(catalog)
}

// All returns a copy of every entry in catalog order.
func All() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog[:])
	return out
}

// InFamily returns the entries of f in catalog order.
// An unknown family yields nil.
func InFamily(f Family) []Entry {
	if int(f) >= len(byFamily) {
		return nil
	}
	idx := byFamily[f]
	out := make([]Entry, len(idx))
	for i, j := range idx {
		out[i] = catalog[j]
	}
	return out
}

// Lookup returns the entry with the given qualified name. Both
// "RedFamily.Aka" and "Red.Aka" are accepted; names are case-sensitive.
func Lookup(qualified string) (Entry, bool) {
	fam, name, ok := strings.Cut(qualified, ".")
	if !ok {
		return Entry{}, false
	}
	if !strings.HasSuffix(fam, "Family") {
		fam += "Family"
	}
	i, ok := byName[fam+"."+name]
	if !ok {
		return Entry{}, false
	}
	return catalog[i], true
}

// Get is Lookup returning only the color.
func Get(qualified string) (core.Color, bool) {
	e, ok := Lookup(qualified)
	if !ok {
		return core.Color{}, false
	}
	return e.Color(), true
}
