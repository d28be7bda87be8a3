// wairogen generates the wairo color catalog from its YAML source.
//
// Usage (normally through go generate in internal/wairo):
//
//	wairogen --in catalog.yaml --out catalog_gen.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	flagIn  string
	flagOut string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wairogen",
	Short: "Generate the wairo catalog Go source from catalog.yaml",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	rootCmd.Flags().StringVarP(&flagIn, "in", "i", "catalog.yaml", "Path to the catalog YAML")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "catalog_gen.go", "Path of the generated Go file")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(flagIn)
	if err != nil {
		return fmt.Errorf("failed to read catalog %s: %w", flagIn, err)
	}

	cat, err := parseCatalog(data)
	if err != nil {
		return fmt.Errorf("failed to parse catalog %s: %w", flagIn, err)
	}

	src, err := render(cat, filepath.Base(flagIn))
	if err != nil {
		return err
	}

	if err := os.WriteFile(flagOut, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", flagOut, err)
	}

	total := 0
	for _, f := range cat.Families {
		total += len(f.Colors)
	}
	fmt.Printf("wrote %s: %d families, %d colors\n", flagOut, len(cat.Families), total)
	return nil
}
