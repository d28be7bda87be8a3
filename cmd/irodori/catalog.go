package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/irodori/internal/registry"
	"github.com/vovakirdan/irodori/internal/wairo"
)

var (
	flagFormat string
	flagSwatch int
	flagKanji  bool
)

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List all color families",
	Long:  `Shows every hue family of the catalog with its number of colors.`,
	Args:  cobra.NoArgs,
	RunE:  runFamilies,
}

var listCmd = &cobra.Command{
	Use:   "list [family]",
	Short: "Print the colors of a family",
	Long: `Print every color of the given family, or the whole catalog when no
family is given. Families can be written as "red", "Red" or "RedFamily".

Formats:
  table - aligned columns with swatches (default)
  hex   - "#rrggbb Family.Name" per line
  json  - JSON array
  yaml  - YAML list

Examples:
  irodori list
  irodori list blue
  irodori list purple --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

var showCmd = &cobra.Command{
	Use:   "show <Family.Name>...",
	Short: "Show specific colors",
	Long: `Show colors by qualified name. Names are case-sensitive.

Examples:
  irodori show RedFamily.Aka
  irodori show Red.Aka Blue.Amairo --format hex`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func init() {
	for _, cmd := range []*cobra.Command{listCmd, showCmd} {
		cmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format (default from config)")
		cmd.Flags().IntVar(&flagSwatch, "swatch", 0, "Swatch width in cells (default from config)")
		cmd.Flags().BoolVar(&flagKanji, "kanji", true, "Show kanji names (default from config)")
	}
}

func runFamilies(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Color families:")
	fmt.Fprintln(out)
	for _, f := range wairo.Families() {
		fmt.Fprintf(out, "  %-12s %3d colors\n", f.Namespace(), len(wairo.InFamily(f)))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Total: %d colors. Run 'irodori list <family>' to see them.\n", wairo.Len())
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	entries := wairo.All()
	if len(args) == 1 {
		fam, err := wairo.ParseFamily(args[0])
		if err != nil {
			return fmt.Errorf("%w (run 'irodori families' to see them)", err)
		}
		entries = wairo.InFamily(fam)
	}
	return printEntries(cmd, entries)
}

func runShow(cmd *cobra.Command, args []string) error {
	entries := make([]wairo.Entry, 0, len(args))
	for _, name := range args {
		e, ok := wairo.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown color %q (expected Family.Name, e.g. RedFamily.Aka)", name)
		}
		entries = append(entries, e)
	}
	return printEntries(cmd, entries)
}

// printEntries renders entries with the selected formatter.
func printEntries(cmd *cobra.Command, entries []wairo.Entry) error {
	name := cfg.Display.Format
	if flagFormat != "" {
		name = flagFormat
	}
	f, err := registry.Create(name)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, formatNames())
	}

	opts := registry.Options{
		SwatchWidth: cfg.Display.SwatchWidth,
		ShowKanji:   cfg.Display.ShowKanji,
		Color:       term.IsTerminal(int(os.Stdout.Fd())),
	}
	if flagSwatch > 0 {
		opts.SwatchWidth = flagSwatch
	}
	if cmd.Flags().Changed("kanji") {
		opts.ShowKanji = flagKanji
	}

	logger.Debug("printing colors", "format", name, "count", len(entries), "color", opts.Color)
	return f.Format(cmd.OutOrStdout(), entries, opts)
}

func formatNames() string {
	var s string
	for i, info := range registry.List() {
		if i > 0 {
			s += ", "
		}
		s += info.Name
	}
	return s
}
