//go:build !windows

package settings

import (
	"errors"
	"os"
	"path/filepath"
)

// DetectSteamRoot finds the Steam installation folder. An explicit
// steam_folder setting (or slm.properties override) always wins over
// detection.
func (a *AppSettings) DetectSteamRoot() (string, error) {
	if a.SteamFolder != "" {
		return a.SteamFolder, nil
	}

	candidates := []string{
		filepath.Join(a.Homedir, ".steam", "steam"),
		filepath.Join(a.Homedir, ".local", "share", "Steam"),
		filepath.Join(a.Homedir, "Library", "Application Support", "Steam"),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.New("couldn't find a Steam installation, set steam_folder in settings.json")
}
