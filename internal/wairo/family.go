package wairo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFamily is returned when a family name does not match any family.
var ErrUnknownFamily = errors.New("unknown color family")

// Family identifies a hue family of the catalog.
type Family uint8

// Families in catalog order.
const (
	Red Family = iota
	Yellow
	Orange
	Green
	Blue
	Purple
	Brown
	White
	Black
)

var familyNames = [...]string{
	Red:    "Red",
	Yellow: "Yellow",
	Orange: "Orange",
	Green:  "Green",
	Blue:   "Blue",
	Purple: "Purple",
	Brown:  "Brown",
	White:  "White",
	Black:  "Black",
}

// String returns the short family name, e.g. "Red".
func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}

// Namespace returns the accessor namespace of the family, e.g. "RedFamily".
func (f Family) Namespace() string {
	return f.String() + "Family"
}

// Families returns all families in catalog order.
func Families() []Family {
	fams := make([]Family, len(familyNames))
	for i := range familyNames {
		fams[i] = Family(i)
	}
	return fams
}

// ParseFamily resolves a family by name. Matching is case-insensitive and
// accepts both "red" and "RedFamily".
func ParseFamily(name string) (Family, error) {
	key := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "family")
	for i, n := range familyNames {
		if strings.ToLower(n) == key {
			return Family(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}
