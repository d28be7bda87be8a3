package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const smallCatalog = `families:
  - name: Red
    description: Shades of red.
    colors:
      - {name: Aka, kanji: 赤, rgb: [237, 26, 61]}
      - {name: Toki, kanji: 鴇, rgb: [249, 161, 208], alpha: 128}
  - name: Black
    description: Shades of black.
    colors:
      - {name: Kuro, kanji: 黒, rgb: [43, 43, 43]}
`

func TestParseCatalog(t *testing.T) {
	cat, err := parseCatalog([]byte(smallCatalog))
	if err != nil {
		t.Fatalf("parseCatalog() failed: %v", err)
	}
	if len(cat.Families) != 2 {
		t.Fatalf("got %d families, expected 2", len(cat.Families))
	}
	red := cat.Families[0]
	if red.Colors[0].A() != 255 {
		t.Errorf("default alpha = %d, expected 255", red.Colors[0].A())
	}
	if red.Colors[1].A() != 128 {
		t.Errorf("explicit alpha = %d, expected 128", red.Colors[1].A())
	}
	if red.Colors[0].RGB != [3]uint8{237, 26, 61} {
		t.Errorf("rgb = %v", red.Colors[0].RGB)
	}
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "families: []\n"},
		{"bad yaml", "families: [\n"},
		{"channel out of range", "families:\n  - name: Red\n    colors:\n      - {name: Aka, rgb: [300, 0, 0]}\n"},
		{"wrong channel count", "families:\n  - name: Red\n    colors:\n      - {name: Aka, rgb: [1, 2]}\n"},
		{"lowercase color", "families:\n  - name: Red\n    colors:\n      - {name: aka, rgb: [1, 2, 3]}\n"},
		{"bad family", "families:\n  - name: red-ish\n    colors: []\n"},
		{"duplicate family", "families:\n  - name: Red\n  - name: Red\n"},
		{"duplicate color", "families:\n  - name: Red\n    colors:\n      - {name: Aka, rgb: [1, 2, 3]}\n      - {name: Aka, rgb: [4, 5, 6]}\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseCatalog([]byte(tc.yaml)); err == nil {
				t.Error("parseCatalog() expected error")
			}
		})
	}
}

func TestRender(t *testing.T) {
	cat, err := parseCatalog([]byte(smallCatalog))
	if err != nil {
		t.Fatal(err)
	}

	src, err := render(cat, "small.yaml")
	if err != nil {
		t.Fatalf("render() failed: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		"// Code generated by wairogen from small.yaml. DO NOT EDIT.",
		"type RedShades struct{}",
		"var BlackFamily BlackShades",
		"// RedFamily groups the Red family: shades of red.",
		"func (RedShades) Aka() core.Color { return core.RGBA8(237, 26, 61, 255) }",
		"func (RedShades) Toki() core.Color { return core.RGBA8(249, 161, 208, 128) }",
		`{Family: Black, Name: "Kuro", Kanji: "黒", R: 43, G: 43, B: 43, A: 255},`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

// TestGeneratedCatalogUpToDate fails when catalog.yaml was edited without
// running go generate.
func TestGeneratedCatalogUpToDate(t *testing.T) {
	data, err := os.ReadFile("../../internal/wairo/catalog.yaml")
	if err != nil {
		t.Fatalf("read catalog.yaml: %v", err)
	}
	committed, err := os.ReadFile("../../internal/wairo/catalog_gen.go")
	if err != nil {
		t.Fatalf("read catalog_gen.go: %v", err)
	}

	cat, err := parseCatalog(data)
	if err != nil {
		t.Fatalf("parseCatalog() failed: %v", err)
	}
	src, err := render(cat, "catalog.yaml")
	if err != nil {
		t.Fatalf("render() failed: %v", err)
	}

	normalize := func(b []byte) string { return strings.Join(strings.Fields(string(b)), " ") }
	if normalize(src) != normalize(committed) {
		t.Error("catalog_gen.go is stale; run go generate ./internal/wairo")
	}
}

// generateDirectiveArgs returns the wairogen arguments of the go:generate
// directive in internal/wairo/doc.go.
func generateDirectiveArgs(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile("../../internal/wairo/doc.go")
	if err != nil {
		t.Fatalf("read doc.go: %v", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if rest, ok := strings.CutPrefix(line, "//go:generate go run ../../cmd/wairogen"); ok {
			return strings.Fields(rest)
		}
	}
	t.Fatal("doc.go has no go:generate directive for wairogen")
	return nil
}

func TestGenerateDirectiveArgs(t *testing.T) {
	args := generateDirectiveArgs(t)

	if err := rootCmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v) failed: %v", args, err)
	}
	if err := rootCmd.ValidateArgs(rootCmd.Flags().Args()); err != nil {
		t.Fatalf("directive %v leaves positional args %v: %v", args, rootCmd.Flags().Args(), err)
	}
	if flagIn != "catalog.yaml" || flagOut != "catalog_gen.go" {
		t.Errorf("in = %q, out = %q, expected catalog.yaml and catalog_gen.go", flagIn, flagOut)
	}
}

func TestGenerateDirectiveRuns(t *testing.T) {
	args := generateDirectiveArgs(t)
	catalog, err := os.ReadFile("../../internal/wairo/catalog.yaml")
	if err != nil {
		t.Fatalf("read catalog.yaml: %v", err)
	}
	committed, err := os.ReadFile("../../internal/wairo/catalog_gen.go")
	if err != nil {
		t.Fatalf("read catalog_gen.go: %v", err)
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "catalog.yaml"), catalog, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("wairogen %v failed: %v", args, err)
	}

	generated, err := os.ReadFile(filepath.Join(dir, "catalog_gen.go"))
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	if !bytes.Equal(generated, committed) {
		t.Error("generated catalog_gen.go differs from the committed file")
	}
}
