package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestStringDev(t *testing.T) {
	got := String()
	if !strings.HasPrefix(got, "irodori dev (") {
		t.Errorf("String() = %q, expected dev build", got)
	}
	if !strings.Contains(got, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("String() = %q, missing platform", got)
	}
}

func TestStringRelease(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "1.2.0", "0123456789abcdef", "2026-10-17T00:00:00Z"

	got := String()
	for _, want := range []string{"irodori 1.2.0", "commit: 01234567,", "built: 2026-10-17T00:00:00Z"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}

	Commit = "abc"
	if got := String(); !strings.Contains(got, "commit: abc,") {
		t.Errorf("short commit not kept: %q", got)
	}
}
