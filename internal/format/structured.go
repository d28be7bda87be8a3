package format

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/irodori/internal/registry"
	"github.com/vovakirdan/irodori/internal/wairo"
)

func init() {
	registry.Register("json", func() registry.Formatter { return JSON{} })
	registry.Register("yaml", func() registry.Formatter { return YAML{} })
}

// JSON prints entries as an indented JSON array.
type JSON struct{}

// Name returns "json".
func (JSON) Name() string { return "json" }

// Description returns a one-line summary of the format.
func (JSON) Description() string { return "JSON array of colors" }

// Format writes entries as a JSON array.
func (JSON) Format(w io.Writer, entries []wairo.Entry, opts registry.Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records(entries, opts.ShowKanji)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// YAML prints entries as a YAML sequence.
type YAML struct{}

// Name returns "yaml".
func (YAML) Name() string { return "yaml" }

// Description returns a one-line summary of the format.
func (YAML) Description() string { return "YAML list of colors" }

// Format writes entries as a YAML sequence.
func (YAML) Format(w io.Writer, entries []wairo.Entry, opts registry.Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records(entries, opts.ShowKanji)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
