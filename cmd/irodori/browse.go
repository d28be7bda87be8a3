package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/irodori/internal/core"
	"github.com/vovakirdan/irodori/internal/platform/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the color catalog interactively",
	Long: `Open a full-screen browser over the wairo catalog.

Controls:
  Up/Down/j/k      - Move through colors
  Left/Right/h/l   - Switch family
  Tab/Shift+Tab    - Switch family
  r                - Jump to a random color
  ?                - Toggle help
  Q/Esc            - Quit

Examples:
  irodori browse
  irodori browse --seed 42`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(_ *cobra.Command, _ []string) error {
	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.Seed = cfg.Random.Seed

	logger.Debug("starting browser", "width", width, "height", height)
	return tui.RunBrowser(rc)
}
