package wairo

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/irodori/internal/core"
)

const epsilon = 1e-6

func approx(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < epsilon
}

func TestRedFamilyAka(t *testing.T) {
	c := RedFamily.Aka()

	expected := [4]float32{237.0 / 255.0, 26.0 / 255.0, 61.0 / 255.0, 1.0}
	got := [4]float32{c.R, c.G, c.B, c.A}
	for i := range expected {
		if !approx(got[i], expected[i]) {
			t.Errorf("RedFamily.Aka() channel %d = %v, expected %v", i, got[i], expected[i])
		}
	}

	for range 10 {
		if again := RedFamily.Aka(); again != c {
			t.Fatalf("RedFamily.Aka() = %+v on repeat, expected %+v", again, c)
		}
	}
}

func TestCatalogSize(t *testing.T) {
	if Len() != 466 {
		t.Errorf("Len() = %d, expected 466", Len())
	}

	expected := map[Family]int{
		Red: 65, Yellow: 42, Orange: 24, Green: 94, Blue: 50,
		Purple: 56, Brown: 88, White: 19, Black: 28,
	}
	total := 0
	for _, f := range Families() {
		n := len(InFamily(f))
		total += n
		if n != expected[f] {
			t.Errorf("len(InFamily(%s)) = %d, expected %d", f, n, expected[f])
		}
	}
	if total != Len() {
		t.Errorf("family sizes sum to %d, expected %d", total, Len())
	}
}

func TestNamesUniqueWithinFamily(t *testing.T) {
	for _, f := range Families() {
		seen := make(map[string]bool)
		for _, e := range InFamily(f) {
			if seen[e.Name] {
				t.Errorf("duplicate name %s in %s", e.Name, f)
			}
			seen[e.Name] = true
		}
	}
}

func TestSameNameInDifferentFamilies(t *testing.T) {
	blue, ok := Lookup("BlueFamily.Amairo")
	if !ok {
		t.Fatal("BlueFamily.Amairo not found")
	}
	brown, ok := Lookup("BrownFamily.Amairo")
	if !ok {
		t.Fatal("BrownFamily.Amairo not found")
	}
	if blue.Color() == brown.Color() {
		t.Error("Amairo in Blue and Brown should be distinct colors")
	}
	if blue.Kanji != "天色" || brown.Kanji != "亜麻色" {
		t.Errorf("kanji = %q/%q, expected 天色/亜麻色", blue.Kanji, brown.Kanji)
	}
}

func TestAccessorsMatchTable(t *testing.T) {
	namespaces := map[Family]any{
		Red: RedFamily, Yellow: YellowFamily, Orange: OrangeFamily,
		Green: GreenFamily, Blue: BlueFamily, Purple: PurpleFamily,
		Brown: BrownFamily, White: WhiteFamily, Black: BlackFamily,
	}

	for _, e := range All() {
		ns := reflect.ValueOf(namespaces[e.Family])
		m := ns.MethodByName(e.Name)
		if !m.IsValid() {
			t.Errorf("%s has no accessor", e.QualifiedName())
			continue
		}
		got, ok := m.Call(nil)[0].Interface().(core.Color)
		if !ok {
			t.Errorf("%s accessor does not return core.Color", e.QualifiedName())
			continue
		}
		if got != e.Color() {
			t.Errorf("%s() = %+v, table has %+v", e.QualifiedName(), got, e.Color())
		}
	}

	// Every accessor is backed by a table entry.
	for f, v := range namespaces {
		typ := reflect.TypeOf(v)
		if typ.NumMethod() != len(InFamily(f)) {
			t.Errorf("%s has %d accessors, expected %d", f.Namespace(), typ.NumMethod(), len(InFamily(f)))
		}
	}
}

func TestAllChannelsNormalized(t *testing.T) {
	for _, e := range All() {
		c := e.Color()
		for _, v := range [...]float32{c.R, c.G, c.B, c.A} {
			if v < 0 || v > 1 {
				t.Errorf("%s channel %v out of [0,1]", e.QualifiedName(), v)
			}
		}
		if c.A != 1 {
			t.Errorf("%s alpha = %v, expected 1", e.QualifiedName(), c.A)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		found  bool
		kanji  string
		family Family
	}{
		{"qualified", "RedFamily.Aka", true, "赤", Red},
		{"short family", "Red.Aka", true, "赤", Red},
		{"white", "WhiteFamily.Shironeri", true, "白練", White},
		{"wrong family", "BlueFamily.Aka", false, "", 0},
		{"lowercase name", "RedFamily.aka", false, "", 0},
		{"no dot", "Aka", false, "", 0},
		{"empty", "", false, "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, ok := Lookup(tc.query)
			if ok != tc.found {
				t.Fatalf("Lookup(%q) found = %v, expected %v", tc.query, ok, tc.found)
			}
			if !ok {
				return
			}
			if e.Kanji != tc.kanji || e.Family != tc.family {
				t.Errorf("Lookup(%q) = %+v", tc.query, e)
			}
		})
	}
}

func TestGet(t *testing.T) {
	c, ok := Get("RedFamily.Aka")
	if !ok || c != RedFamily.Aka() {
		t.Errorf("Get(RedFamily.Aka) = %+v, %v", c, ok)
	}
	if _, ok := Get("RedFamily.Nope"); ok {
		t.Error("Get(RedFamily.Nope) should not resolve")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	entries := All()
	entries[0].R = 0
	entries[0].Name = "Mutated"

	if All()[0].Name == "Mutated" {
		t.Error("All() exposed the backing table")
	}
	if e, _ := Lookup("RedFamily.Sakura"); e.R != 254 {
		t.Errorf("Sakura R = %d after caller mutation, expected 254", e.R)
	}
}

func TestQualifiedName(t *testing.T) {
	e, _ := Lookup("Black.Ankokushoku")
	if got := e.QualifiedName(); got != "BlackFamily.Ankokushoku" {
		t.Errorf("QualifiedName() = %q", got)
	}
}

func TestParseFamily(t *testing.T) {
	tests := []struct {
		in       string
		expected Family
		wantErr  bool
	}{
		{"red", Red, false},
		{"Red", Red, false},
		{"RedFamily", Red, false},
		{" purple ", Purple, false},
		{"BLACK", Black, false},
		{"teal", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFamily(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownFamily) {
					t.Errorf("ParseFamily(%q) error = %v, expected ErrUnknownFamily", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFamily(%q) error = %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("ParseFamily(%q) = %s, expected %s", tc.in, got, tc.expected)
			}
		})
	}
}

func TestFamilyString(t *testing.T) {
	if Blue.String() != "Blue" || Blue.Namespace() != "BlueFamily" {
		t.Errorf("Blue = %q/%q", Blue.String(), Blue.Namespace())
	}
	if got := Family(42).String(); got != "Family(42)" {
		t.Errorf("Family(42).String() = %q", got)
	}
	if InFamily(Family(42)) != nil {
		t.Error("InFamily(42) should be nil")
	}
}
