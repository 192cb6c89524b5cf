package settings

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	a := AppSettings{}
	a.defaults()
	err := a.Load([]byte(`{"steam_folder": "/mnt/steam", "debug": true, "ignore_app_ids": ["228980"]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.SteamFolder != "/mnt/steam" || !a.Debug {
		t.Errorf("settings = %+v", a)
	}
	if len(a.IgnoreAppIds) != 1 || a.IgnoreAppIds[0] != "228980" {
		t.Errorf("IgnoreAppIds = %v", a.IgnoreAppIds)
	}
}

func TestDefaults(t *testing.T) {
	a := AppSettings{}
	a.defaults()
	if !a.ShowWorkshop {
		t.Errorf("workshop rows should default to on")
	}
	if a.SteamFolder != "" {
		t.Errorf("SteamFolder should default to autodetect")
	}
}

func TestApplyOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "steam_path=/opt/steam\ndebug=true\n"
	if err := ioutil.WriteFile(filepath.Join(dir, OVERRIDES_FILENAME), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	a := AppSettings{SteamFolder: "/from/json"}
	a.setBase(dir)
	a.applyOverrides()

	if a.SteamFolder != "/opt/steam" {
		t.Errorf("SteamFolder = %q, override must win", a.SteamFolder)
	}
	if !a.Debug {
		t.Errorf("debug override not applied")
	}
}

func TestApplyOverridesMissingFile(t *testing.T) {
	a := AppSettings{SteamFolder: "/from/json"}
	a.setBase(t.TempDir())
	a.Homedir = t.TempDir()
	a.applyOverrides()
	if a.SteamFolder != "/from/json" {
		t.Errorf("SteamFolder changed without an overrides file")
	}
}
