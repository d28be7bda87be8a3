// Package format implements the catalog output formats. Importing it
// registers every format with the registry.
package format

import (
	"github.com/vovakirdan/irodori/internal/wairo"
)

// Record is the serialized form of a catalog entry.
type Record struct {
	Family     string     `json:"family" yaml:"family"`
	Name       string     `json:"name" yaml:"name"`
	Kanji      string     `json:"kanji,omitempty" yaml:"kanji,omitempty"`
	Hex        string     `json:"hex" yaml:"hex"`
	RGBA       [4]uint8   `json:"rgba" yaml:"rgba,flow"`
	Normalized [4]float32 `json:"normalized" yaml:"normalized,flow"`
}

// NewRecord converts an entry to its serialized form.
func NewRecord(e wairo.Entry, withKanji bool) Record {
	c := e.Color()
	r := Record{
		Family:     e.Family.String(),
		Name:       e.Name,
		Hex:        c.Hex(),
		RGBA:       [4]uint8{e.R, e.G, e.B, e.A},
		Normalized: [4]float32{c.R, c.G, c.B, c.A},
	}
	if withKanji {
		r.Kanji = e.Kanji
	}
	return r
}

func records(entries []wairo.Entry, withKanji bool) []Record {
	out := make([]Record, len(entries))
	for i, e := range entries {
		out[i] = NewRecord(e, withKanji)
	}
	return out
}
