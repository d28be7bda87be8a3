package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/irodori/internal/registry"
	"github.com/vovakirdan/irodori/internal/wairo"
)

func sample(t *testing.T) []wairo.Entry {
	t.Helper()
	var out []wairo.Entry
	for _, name := range []string{"RedFamily.Aka", "BlueFamily.Amairo", "WhiteFamily.Shironeri"} {
		e, ok := wairo.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		out = append(out, e)
	}
	return out
}

func render(t *testing.T, name string, opts registry.Options) string {
	t.Helper()
	f, err := registry.Create(name)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", name, err)
	}
	var buf bytes.Buffer
	if err := f.Format(&buf, sample(t), opts); err != nil {
		t.Fatalf("%s Format() failed: %v", name, err)
	}
	return buf.String()
}

func TestFormatsRegistered(t *testing.T) {
	for _, name := range []string{"table", "hex", "json", "yaml"} {
		if !registry.Exists(name) {
			t.Errorf("format %q not registered", name)
		}
	}
}

func TestHexFormat(t *testing.T) {
	got := render(t, "hex", registry.Options{})
	lines := strings.Split(strings.TrimSpace(got), "\n")

	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected 3", len(lines))
	}
	if lines[0] != "#ed1a3d RedFamily.Aka" {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestTableFormat(t *testing.T) {
	got := render(t, "table", registry.Options{SwatchWidth: 4, ShowKanji: true})
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("got %d lines, expected header + 3", len(lines))
	}
	if !strings.Contains(lines[0], "Kanji") {
		t.Errorf("header = %q, expected Kanji column", lines[0])
	}
	if !strings.Contains(lines[1], "RedFamily.Aka") || !strings.Contains(lines[1], "赤") ||
		!strings.Contains(lines[1], "237  26  61") {
		t.Errorf("row = %q", lines[1])
	}

	plain := render(t, "table", registry.Options{SwatchWidth: 4})
	if strings.Contains(plain, "赤") || strings.Contains(plain, "Kanji") {
		t.Error("kanji shown with ShowKanji = false")
	}
}

func TestJSONFormat(t *testing.T) {
	got := render(t, "json", registry.Options{ShowKanji: true})

	var recs []Record
	if err := json.Unmarshal([]byte(got), &recs); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, got)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, expected 3", len(recs))
	}

	aka := recs[0]
	if aka.Family != "Red" || aka.Name != "Aka" || aka.Kanji != "赤" || aka.Hex != "#ed1a3d" {
		t.Errorf("record = %+v", aka)
	}
	if aka.RGBA != [4]uint8{237, 26, 61, 255} {
		t.Errorf("RGBA = %v", aka.RGBA)
	}
	if aka.Normalized[3] != 1 {
		t.Errorf("alpha = %v, expected 1", aka.Normalized[3])
	}
}

func TestYAMLFormat(t *testing.T) {
	got := render(t, "yaml", registry.Options{})

	var recs []Record
	if err := yaml.Unmarshal([]byte(got), &recs); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, got)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, expected 3", len(recs))
	}
	if recs[1].Family != "Blue" || recs[1].Name != "Amairo" {
		t.Errorf("record = %+v", recs[1])
	}
	if recs[1].Kanji != "" {
		t.Errorf("kanji = %q with ShowKanji = false", recs[1].Kanji)
	}
}

func TestFormatNamesMatchRegistry(t *testing.T) {
	for _, info := range registry.List() {
		f, err := registry.Create(info.Name)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", info.Name, err)
		}
		if f.Name() != info.Name {
			t.Errorf("format registered as %q reports Name() = %q", info.Name, f.Name())
		}
		if f.Description() == "" {
			t.Errorf("format %q has an empty Description()", info.Name)
		}
	}
}
