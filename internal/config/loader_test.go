package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("parse(defaultYAML) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", "random:\n  length: 12\n  seed: 99\n")

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, expected %s", src, SourceCustom)
	}
	if cfg.Random.Length != 12 || cfg.Random.Seed != 99 {
		t.Errorf("random = %+v, expected length 12 seed 99", cfg.Random)
	}
	// Untouched keys keep their defaults.
	if cfg.Display != Default().Display {
		t.Errorf("display = %+v, expected defaults", cfg.Display)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), false},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "random: [unclosed"), false},
		{"negative length", writeFile(t, dir, "neg.yaml", "random:\n  length: -1\n"), true},
		{"zero swatch", writeFile(t, dir, "swatch.yaml", "display:\n  swatch_width: 0\n"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Load(tc.path)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if errors.Is(err, ErrInvalid) != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, expected %v (err: %v)", !tc.invalid, tc.invalid, err)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %s, expected %s", src, SourceEmbedded)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, expected defaults", cfg)
	}

	writeFile(t, work, localPath, "random:\n  length: 7\n")
	cfg, src, _ = Load("")
	if src != SourceLocal || cfg.Random.Length != 7 {
		t.Errorf("local: source = %s, length = %d", src, cfg.Random.Length)
	}

	writeFile(t, home, filepath.Join(".irodori", "config.yaml"), "random:\n  length: 9\n")
	cfg, src, _ = Load("")
	if src != SourceUser || cfg.Random.Length != 9 {
		t.Errorf("user: source = %s, length = %d", src, cfg.Random.Length)
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	writeFile(t, home, filepath.Join(".irodori", "config.yaml"), "random:\n  length: -3\n")

	_, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %s, expected fallback to %s", src, SourceEmbedded)
	}
}

func TestIdleTimeoutDuration(t *testing.T) {
	path := writeFile(t, t.TempDir(), "srv.yaml", "server:\n  idle_timeout: 5m\n")

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("idle_timeout = %v, expected 5m", cfg.Server.IdleTimeout)
	}
}
