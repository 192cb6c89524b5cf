//go:build windows

package settings

import (
	"errors"

	"golang.org/x/sys/windows/registry"
)

const steamRegistryPath = `SOFTWARE\Valve\Steam`

// DetectSteamRoot finds the Steam installation folder through the
// registry, the same way the Steam client records it. An explicit
// steam_folder setting always wins over detection.
func (a *AppSettings) DetectSteamRoot() (string, error) {
	if a.SteamFolder != "" {
		return a.SteamFolder, nil
	}

	for _, hive := range []registry.Key{registry.CURRENT_USER, registry.LOCAL_MACHINE} {
		key, err := registry.OpenKey(hive, steamRegistryPath, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		path, _, err := key.GetStringValue("SteamPath")
		key.Close()
		if err == nil && path != "" {
			return path, nil
		}
	}

	return "", errors.New("couldn't find a Steam installation in the registry, set steam_folder in settings.json")
}
