package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/irodori/internal/textutil"
)

//go:embed defaults/irodori.yaml
var defaultYAML []byte

// Default returns the default irodori configuration.
func Default() Config {
	return Config{
		Random: RandomConfig{
			Length: textutil.DefaultLength,
			Seed:   0,
		},
		Display: DisplayConfig{
			Format:      "table",
			SwatchWidth: 4,
			ShowKanji:   true,
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
