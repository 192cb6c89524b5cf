package fileio

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"

	"steam-library-manager/inventory"
)

// Manifest path layout inside a library root. Paths are derived only,
// never checked for existence here.
func ManifestPath(libraryPath, appID string) string {
	return filepath.Join(libraryPath, "steamapps", fmt.Sprintf("appmanifest_%s.acf", appID))
}

func WorkshopManifestPath(libraryPath, appID string) string {
	return filepath.Join(libraryPath, "steamapps", "workshop", fmt.Sprintf("appworkshop_%s.acf", appID))
}

func LibraryFoldersPath(steamRoot string) string {
	return filepath.Join(steamRoot, "steamapps", "libraryfolders.vdf")
}

// ReadManifest reads a manifest file, retrying briefly because a
// running Steam client rewrites ACF files in place.
func ReadManifest(path string) ([]byte, error) {
	var data []byte
	err := retry.Do(func() error {
		var readErr error
		data, readErr = ioutil.ReadFile(path)
		return readErr
	},
		retry.Attempts(3),
		retry.Delay(100*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !os.IsNotExist(err)
		}),
	)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ReadOptionalManifest maps a missing file to (nil, nil). Absence of a
// workshop manifest is a normal state for apps without workshop
// content, never an error.
func ReadOptionalManifest(path string) ([]byte, error) {
	data, err := ReadManifest(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Source is the filesystem ManifestSource used by the real scan.
type Source struct{}

func (Source) Manifest(libraryPath, appID string) ([]byte, error) {
	return ReadManifest(ManifestPath(libraryPath, appID))
}

func (Source) WorkshopManifest(libraryPath, appID string) ([]byte, error) {
	return ReadOptionalManifest(WorkshopManifestPath(libraryPath, appID))
}

// Stat folds both manifest files of an app into one cache stamp, so a
// change to either invalidates the cached parse.
func (Source) Stat(libraryPath, appID string) (inventory.CacheStamp, bool) {
	info, err := os.Stat(ManifestPath(libraryPath, appID))
	if err != nil {
		return inventory.CacheStamp{}, false
	}
	stamp := inventory.CacheStamp{ModTimeUnix: info.ModTime().Unix(), Size: info.Size()}
	if wsInfo, err := os.Stat(WorkshopManifestPath(libraryPath, appID)); err == nil {
		stamp.ModTimeUnix += wsInfo.ModTime().Unix()
		stamp.Size += wsInfo.Size()
	}
	return stamp, true
}
