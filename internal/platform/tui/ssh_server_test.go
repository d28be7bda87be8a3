package tui

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/irodori/internal/textutil"
)

func TestNewSSHServer(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys", "host_key")

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = keyPath
	cfg.Seed = 5

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	defer srv.Shutdown()

	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if _, err := os.Stat(filepath.Dir(keyPath)); err != nil {
		t.Errorf("host key directory not created: %v", err)
	}
}

func TestSessionIDs(t *testing.T) {
	srv := &SSHServer{src: textutil.NewSource(3)}

	seen := make(map[string]bool)
	for range 100 {
		id := srv.newSessionID()
		if len(id) != sessionIDLength {
			t.Fatalf("len(newSessionID()) = %d, expected %d", len(id), sessionIDLength)
		}
		for _, r := range id {
			if !strings.ContainsRune(textutil.Alphabet, r) {
				t.Fatalf("session ID %q has %q outside the alphabet", id, r)
			}
		}
		seen[id] = true
	}
	// 62^8 possible IDs; 100 draws should not collide.
	if len(seen) != 100 {
		t.Errorf("got %d distinct session IDs out of 100", len(seen))
	}
}

func TestListenAndServeReturnsBindError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() failed: %v", err)
	}
	defer ln.Close()

	cfg := DefaultSSHServerConfig()
	cfg.Address = ln.Addr().String()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if err == nil {
			t.Error("ListenAndServe() on a busy address returned nil")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe() blocked on a busy address")
	}
}
