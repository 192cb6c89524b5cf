//go:build !windows

package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectSteamRootExplicit(t *testing.T) {
	a := AppSettings{SteamFolder: "/opt/steam"}
	root, err := a.DetectSteamRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/opt/steam" {
		t.Errorf("root = %q", root)
	}
}

func TestDetectSteamRootCandidates(t *testing.T) {
	home := t.TempDir()
	steamDir := filepath.Join(home, ".local", "share", "Steam")
	if err := os.MkdirAll(steamDir, 0755); err != nil {
		t.Fatal(err)
	}

	a := AppSettings{Homedir: home}
	root, err := a.DetectSteamRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != steamDir {
		t.Errorf("root = %q, want %q", root, steamDir)
	}
}

func TestDetectSteamRootNotFound(t *testing.T) {
	a := AppSettings{Homedir: t.TempDir()}
	if _, err := a.DetectSteamRoot(); err == nil {
		t.Errorf("expected an error with no Steam folders present")
	}
}
