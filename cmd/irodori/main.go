// irodori is a toolbox of traditional Japanese colors and random string
// helpers for terminal game front-ends.
//
// Usage:
//
//	irodori families            - List color families
//	irodori list [family]       - Print the colors of a family (or all)
//	irodori show <Family.Name>  - Show one color
//	irodori random              - Generate random strings
//	irodori shuffle <text>      - Shuffle the characters of text
//	irodori browse              - Browse the catalog interactively
//	irodori serve               - Serve the browser over SSH
//	irodori version             - Print version information
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible output
//	--config <path>  - Use a specific config file
//	--verbose        - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/irodori/internal/config"
	"github.com/vovakirdan/irodori/internal/version"
	// Import formats to register them
	_ "github.com/vovakirdan/irodori/internal/format"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagVerbose bool

	// Loaded in PersistentPreRunE
	cfg    config.Config
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "irodori"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "irodori",
	Short: "Traditional Japanese colors and string helpers",
	Long: `irodori exposes a catalog of traditional Japanese colors (wairo) grouped by
hue family, plus random string generation and Fisher-Yates shuffling.

Available commands:
  families - Show all color families
  list     - Print colors of a family
  show     - Show specific colors
  random   - Generate random strings
  shuffle  - Shuffle text
  browse   - Interactive catalog browser
  serve    - Start SSH server for remote browsing
  version  - Print version information

Examples:
  irodori list red
  irodori show RedFamily.Aka
  irodori random --length 8 --count 3
  irodori shuffle "hello world" --seed 42`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, or random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(familiesCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(shuffleCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the config file and applies global flags.
func loadConfig(_ *cobra.Command, _ []string) error {
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	loaded, src, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded
	logger.Debug("config loaded", "source", src, "path", flagConfig)

	if flagSeed != 0 {
		cfg.Random.Seed = flagSeed
	}
	return nil
}
