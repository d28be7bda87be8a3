package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML structure of catalog.yaml.
type catalogFile struct {
	Families []familyDef `yaml:"families"`
}

type familyDef struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Colors      []colorDef `yaml:"colors"`
}

type colorDef struct {
	Name  string   `yaml:"name"`
	Kanji string   `yaml:"kanji"`
	RGB   [3]uint8 `yaml:"rgb"`
	Alpha *uint8   `yaml:"alpha,omitempty"`
}

// A returns the alpha channel, 255 when omitted.
func (c colorDef) A() uint8 {
	if c.Alpha == nil {
		return 255
	}
	return *c.Alpha
}

// parseCatalog decodes and validates catalog YAML.
// Channel ranges are enforced by decoding into uint8.
func parseCatalog(data []byte) (catalogFile, error) {
	var cat catalogFile
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return cat, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(cat.Families) == 0 {
		return cat, fmt.Errorf("catalog has no families")
	}

	families := make(map[string]bool)
	for _, f := range cat.Families {
		if !isExported(f.Name) {
			return cat, fmt.Errorf("family %q is not an exported Go identifier", f.Name)
		}
		if families[f.Name] {
			return cat, fmt.Errorf("duplicate family %q", f.Name)
		}
		families[f.Name] = true

		names := make(map[string]bool)
		for _, c := range f.Colors {
			if !isExported(c.Name) {
				return cat, fmt.Errorf("%s: color %q is not an exported Go identifier", f.Name, c.Name)
			}
			if names[c.Name] {
				return cat, fmt.Errorf("%s: duplicate color %q", f.Name, c.Name)
			}
			names[c.Name] = true
		}
	}
	return cat, nil
}

func isExported(name string) bool {
	return token.IsIdentifier(name) && token.IsExported(name)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

var catalogTemplate = template.Must(template.New("catalog").
	Funcs(template.FuncMap{"lowerFirst": lowerFirst}).
	Parse(`// Code generated by wairogen from {{.Source}}. DO NOT EDIT.

package wairo

import "github.com/vovakirdan/irodori/internal/core"
{{range $f := .Families}}
// {{$f.Name}}Shades holds the accessors of the {{$f.Name}} family.
type {{$f.Name}}Shades struct{}

// {{$f.Name}}Family groups the {{$f.Name}} family: {{lowerFirst $f.Description}}
var {{$f.Name}}Family {{$f.Name}}Shades
{{range $f.Colors}}
// {{.Name}} is {{.Kanji}}, RGBA ({{index .RGB 0}}, {{index .RGB 1}}, {{index .RGB 2}}, {{.A}}).
func ({{$f.Name}}Shades) {{.Name}}() core.Color { return core.RGBA8({{index .RGB 0}}, {{index .RGB 1}}, {{index .RGB 2}}, {{.A}}) }
{{end}}{{end}}
var catalog = [...]Entry{
{{- range $f := .Families}}{{range $f.Colors}}
	{Family: {{$f.Name}}, Name: {{printf "%q" .Name}}, Kanji: {{printf "%q" .Kanji}}, R: {{index .RGB 0}}, G: {{index .RGB 1}}, B: {{index .RGB 2}}, A: {{.A}}},
{{- end}}{{end}}
}
`))

// render produces formatted Go source for the catalog.
func render(cat catalogFile, source string) ([]byte, error) {
	var buf bytes.Buffer
	err := catalogTemplate.Execute(&buf, struct {
		Source   string
		Families []familyDef
	}{source, cat.Families})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return out, nil
}
