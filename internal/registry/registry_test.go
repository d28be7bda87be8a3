package registry

import (
	"fmt"
	"io"
	"testing"

	"github.com/vovakirdan/irodori/internal/wairo"
)

type stubFormatter struct{ name string }

func (s stubFormatter) Name() string        { return s.name }
func (s stubFormatter) Description() string { return "stub " + s.name }
func (s stubFormatter) Format(w io.Writer, entries []wairo.Entry, _ Options) error {
	_, err := fmt.Fprintf(w, "%d", len(entries))
	return err
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Formatter { return stubFormatter{"stub-b"} })
	Register("stub-a", func() Formatter { return stubFormatter{"stub-a"} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered formats not found")
	}
	if Exists("stub-missing") {
		t.Error("Exists() = true for unregistered format")
	}

	f, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if f.Name() != "stub-a" {
		t.Errorf("Name() = %q, expected stub-a", f.Name())
	}

	if _, err := Create("stub-missing"); err == nil {
		t.Error("Create() expected error for unknown format")
	}

	list := List()
	var names []string
	for _, info := range list {
		names = append(names, info.Name)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("List() not sorted: %v", names)
		}
	}

	found := false
	for _, info := range list {
		if info.Name == "stub-a" {
			found = true
			if info.Description != "stub stub-a" {
				t.Errorf("Description = %q", info.Description)
			}
		}
	}
	if !found {
		t.Error("List() missing stub-a")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Formatter { return stubFormatter{"stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() did not panic on duplicate")
		}
	}()
	Register("stub-dup", func() Formatter { return stubFormatter{"stub-dup"} })
}
