package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/irodori/internal/platform/tui"
	"github.com/vovakirdan/irodori/internal/registry"
	"github.com/vovakirdan/irodori/internal/wairo"
)

func init() {
	registry.Register("table", func() registry.Formatter { return Table{} })
	registry.Register("hex", func() registry.Formatter { return Hex{} })
}

// Table prints aligned columns with a color swatch when the output is a terminal.
type Table struct{}

// Name returns "table".
func (Table) Name() string { return "table" }

// Description returns a one-line summary of the format.
func (Table) Description() string { return "Aligned columns with color swatches" }

// Format writes one row per entry.
func (Table) Format(w io.Writer, entries []wairo.Entry, opts registry.Options) error {
	// Calculate column widths
	nameW, kanjiW := len("Name"), len("Kanji")
	for _, e := range entries {
		nameW = max(nameW, len(e.QualifiedName()))
		kanjiW = max(kanjiW, lipgloss.Width(e.Kanji))
	}

	header := "  " + tui.PadRight("Name", nameW)
	if opts.ShowKanji {
		header += "  " + tui.PadRight("Kanji", kanjiW)
	}
	header += "  Hex      RGB"
	if opts.Color {
		header = tui.PadRight("", opts.SwatchWidth) + header
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, e := range entries {
		line := "  " + tui.PadRight(e.QualifiedName(), nameW)
		if opts.ShowKanji {
			line += "  " + tui.PadRight(e.Kanji, kanjiW)
		}
		line += fmt.Sprintf("  %s  %3d %3d %3d", e.Color().Hex(), e.R, e.G, e.B)
		if opts.Color {
			line = tui.Swatch(e.Color(), opts.SwatchWidth) + line
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Hex prints "#rrggbb Family.Name" per entry, suitable for piping.
type Hex struct{}

// Name returns "hex".
func (Hex) Name() string { return "hex" }

// Description returns a one-line summary of the format.
func (Hex) Description() string { return "One '#rrggbb name' line per color" }

// Format writes one line per entry.
func (Hex) Format(w io.Writer, entries []wairo.Entry, _ registry.Options) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s %s\n", e.Color().Hex(), e.QualifiedName()); err != nil {
			return err
		}
	}
	return nil
}
