// Package registry provides a global registry for catalog output formats.
// Formats register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/irodori/internal/wairo"
)

// Options controls how a Formatter renders entries.
type Options struct {
	SwatchWidth int  // Width of color swatches in cells
	ShowKanji   bool // Include the Japanese name
	Color       bool // Output goes to a terminal that can render colors
}

// Formatter writes catalog entries in one output format.
type Formatter interface {
	// Name returns the unique identifier of the format (e.g., "json").
	// Used for the --format flag.
	Name() string

	// Description returns a one-line human-readable summary.
	Description() string

	// Format writes entries to w.
	Format(w io.Writer, entries []wairo.Entry, opts Options) error
}

// FormatInfo contains metadata about a registered format.
type FormatInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of a formatter.
type Factory func() Formatter

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a formatter factory to the registry.
// Typically called from a format's init() function.
// Panics if a format with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: format %q already registered", name))
	}

	factories[name] = f

	// Get description by creating a temporary instance
	descriptions[name] = f().Description()
}

// List returns information about all registered formats, sorted by name.
func List() []FormatInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FormatInfo, 0, len(factories))
	for name := range factories {
		result = append(result, FormatInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new formatter by its name.
// Returns an error if the name is not registered.
func Create(name string) (Formatter, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown format %q", name)
	}

	return f(), nil
}

// Exists checks if a format with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
