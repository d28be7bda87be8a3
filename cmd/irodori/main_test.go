package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/irodori/internal/textutil"
	"github.com/vovakirdan/irodori/internal/wairo"
)

// execute runs the root command with args and returns its stdout.
// Flags are reset first because cobra keeps parsed values between runs.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestFamiliesCommand(t *testing.T) {
	out, err := execute(t, "families")
	if err != nil {
		t.Fatalf("families failed: %v", err)
	}
	for _, want := range []string{"RedFamily", "BlackFamily", "Total: 466 colors"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list", "red", "--format", "hex")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	got := lines(out)
	if len(got) != len(wairo.InFamily(wairo.Red)) {
		t.Fatalf("got %d lines, expected %d", len(got), len(wairo.InFamily(wairo.Red)))
	}
	for _, l := range got {
		if !strings.Contains(l, " RedFamily.") {
			t.Errorf("unexpected line %q", l)
		}
	}
}

func TestListCommandErrors(t *testing.T) {
	_, err := execute(t, "list", "teal")
	if !errors.Is(err, wairo.ErrUnknownFamily) {
		t.Errorf("unknown family error = %v, expected ErrUnknownFamily", err)
	}

	_, err = execute(t, "list", "red", "--format", "csv")
	if err == nil || !strings.Contains(err.Error(), "available: hex, json, table, yaml") {
		t.Errorf("unknown format error = %v", err)
	}
}

func TestShowCommand(t *testing.T) {
	out, err := execute(t, "show", "Red.Aka", "WhiteFamily.Shironeri", "--format", "hex")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	want := "#ed1a3d RedFamily.Aka\n#f3f3f2 WhiteFamily.Shironeri\n"
	if out != want {
		t.Errorf("show output = %q, expected %q", out, want)
	}

	if _, err := execute(t, "show", "RedFamily.Nope"); err == nil {
		t.Error("show of unknown color expected error")
	}
}

func TestRandomCommand(t *testing.T) {
	first, err := execute(t, "random", "--seed", "42", "--length", "8", "--count", "3")
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}
	got := lines(first)
	if len(got) != 3 {
		t.Fatalf("got %d lines, expected 3", len(got))
	}
	for _, s := range got {
		if len(s) != 8 {
			t.Errorf("len(%q) = %d, expected 8", s, len(s))
		}
		if strings.Trim(s, textutil.Alphabet) != "" {
			t.Errorf("%q contains characters outside the alphabet", s)
		}
	}

	second, err := execute(t, "random", "--seed", "42", "--length", "8", "--count", "3")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("same seed produced %q and %q", first, second)
	}
}

func TestRandomCommandDefaultLength(t *testing.T) {
	out, err := execute(t, "random", "--seed", "1")
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}
	if got := strings.TrimSpace(out); len(got) != textutil.DefaultLength {
		t.Errorf("default length output %q, expected %d chars", got, textutil.DefaultLength)
	}
}

func TestRandomCommandErrors(t *testing.T) {
	if _, err := execute(t, "random", "--length=-3"); !errors.Is(err, textutil.ErrNegativeLength) {
		t.Errorf("negative length error = %v, expected ErrNegativeLength", err)
	}
	if _, err := execute(t, "random", "--count", "0"); err == nil {
		t.Error("zero count expected error")
	}
}

func TestShuffleCommand(t *testing.T) {
	out, err := execute(t, "shuffle", "ab", "cd", "--seed", "7", "--count", "5")
	if err != nil {
		t.Fatalf("shuffle failed: %v", err)
	}
	got := lines(out)
	if len(got) != 5 {
		t.Fatalf("got %d lines, expected 5", len(got))
	}
	for _, s := range got {
		if !samePermutation(s, "ab cd") {
			t.Errorf("%q is not a permutation of %q", s, "ab cd")
		}
	}
}

func samePermutation(a, b string) bool {
	counts := make(map[rune]int)
	for _, r := range a {
		counts[r]++
	}
	for _, r := range b {
		counts[r]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "irodori dev") {
		t.Errorf("version output = %q", out)
	}
}

func TestKanjiFlagOverridesConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "irodori.yaml")
	if err := os.WriteFile(cfgPath, []byte("display:\n  show_kanji: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{"config only", nil, false},
		{"flag enables", []string{"--kanji"}, true},
		{"flag disables", []string{"--kanji=false"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"show", "Red.Aka", "--format", "json", "--config", cfgPath}, tc.args...)
			out, err := execute(t, args...)
			if err != nil {
				t.Fatalf("show failed: %v", err)
			}
			if got := strings.Contains(out, "赤"); got != tc.expected {
				t.Errorf("kanji shown = %v, expected %v:\n%s", got, tc.expected, out)
			}
		})
	}
}
