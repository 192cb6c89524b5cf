package inventory

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"steam-library-manager/steam"
	"steam-library-manager/vdf"
)

const DB_TABLE_PARSED_MANIFESTS = "parsed-manifests"

// ProgressUpdater receives scan progress, e.g. for a console progress bar.
type ProgressUpdater interface {
	UpdateProgress(curr int, total int, message string)
}

// CacheStamp identifies one version of an app's manifest files on
// disk. A cache entry is only reused while the stamp still matches, so
// sources must fold every contributing file into it.
type CacheStamp struct {
	ModTimeUnix int64
	Size        int64
}

// ManifestSource hands raw manifest contents to the inventory build.
// WorkshopManifest returns (nil, nil) when the app simply has no
// workshop manifest; that is a normal state, not an error.
type ManifestSource interface {
	Manifest(libraryPath string, appID string) ([]byte, error)
	WorkshopManifest(libraryPath string, appID string) ([]byte, error)
	Stat(libraryPath string, appID string) (CacheStamp, bool)
}

// ItemResult is the outcome for one app id. Exactly one of Game and Err
// is set; callers decide whether a failed item aborts the run or is
// skipped.
type ItemResult struct {
	AppID       string
	LibraryPath string
	Game        *steam.Game
	Err         error
}

// Inventory is the fully built graph for one scan pass.
type Inventory struct {
	Libraries []*steam.Library
	Skipped   []ItemResult
}

// Games lists every game across all libraries, sorted by display name
// ascending using plain byte-wise comparison. The sort is stable, so
// equally named games keep their encounter order.
func (inv *Inventory) Games() []*steam.Game {
	var games []*steam.Game
	for _, lib := range inv.Libraries {
		games = append(games, lib.Games...)
	}
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Name < games[j].Name
	})
	return games
}

// SizeBytes is the grand total: every game's size plus its workshop
// content size when present. Note the asymmetry with
// steam.Library.SizeBytes, which counts games only.
func (inv *Inventory) SizeBytes() uint64 {
	var total uint64
	for _, lib := range inv.Libraries {
		for _, g := range lib.Games {
			total += g.SizeBytes
			if g.Workshop != nil {
				total += g.Workshop.SizeBytes
			}
		}
	}
	return total
}

func (inv *Inventory) Size() string {
	return ConvertSize(inv.SizeBytes())
}

type cachedGame struct {
	Stamp CacheStamp
	Game  steam.Game
}

// Manager builds inventories, caching parsed manifests in bolt so
// unchanged files are not re-parsed on the next run.
type Manager struct {
	cache  *PersistentDB
	logger *zap.SugaredLogger
}

// NewManager creates a manager. cache may be nil to disable caching.
func NewManager(cache *PersistentDB, logger *zap.SugaredLogger) *Manager {
	return &Manager{cache: cache, logger: logger}
}

// Build maps every app of every library ref into the typed graph.
// Failures are collected per item; one bad manifest never blocks the
// rest of the scan.
func (m *Manager) Build(refs []steam.LibraryRef, source ManifestSource,
	progress ProgressUpdater, ignoreCache bool) *Inventory {

	total := 0
	for _, ref := range refs {
		total += len(ref.Apps)
	}

	inv := &Inventory{}
	ind := 0
	for _, ref := range refs {
		lib := &steam.Library{Path: ref.Path}
		for _, appID := range ref.Apps {
			ind++
			if progress != nil {
				progress.UpdateProgress(ind, total, "app "+appID)
			}

			game, err := m.buildGame(ref.Path, appID, source, ignoreCache)
			if err != nil {
				m.logger.Warnf("skipping app %v in %v - %v", appID, ref.Path, err)
				inv.Skipped = append(inv.Skipped, ItemResult{
					AppID:       appID,
					LibraryPath: ref.Path,
					Err:         fmt.Errorf("app %s in %s: %w", appID, ref.Path, err),
				})
				continue
			}
			lib.Games = append(lib.Games, game)
		}
		inv.Libraries = append(inv.Libraries, lib)
	}

	if progress != nil {
		progress.UpdateProgress(total, total, "Complete")
	}
	return inv
}

func (m *Manager) buildGame(libraryPath, appID string,
	source ManifestSource, ignoreCache bool) (*steam.Game, error) {

	cacheKey := libraryPath + "|" + appID
	stamp, haveStamp := source.Stat(libraryPath, appID)

	if m.cache != nil && haveStamp && !ignoreCache {
		var cached cachedGame
		found, err := m.cache.GetEntry(DB_TABLE_PARSED_MANIFESTS, cacheKey, &cached)
		if err != nil {
			m.logger.Warnf("manifest cache read failed for %v - %v", cacheKey, err)
		} else if found && cached.Stamp == stamp {
			game := cached.Game
			return &game, nil
		}
	}

	raw, err := source.Manifest(libraryPath, appID)
	if err != nil {
		return nil, err
	}
	manifest, err := vdf.Parse(string(raw))
	if err != nil {
		return nil, err
	}

	var workshop *vdf.Node
	rawWorkshop, err := source.WorkshopManifest(libraryPath, appID)
	if err != nil {
		return nil, err
	}
	if rawWorkshop != nil {
		workshop, err = vdf.Parse(string(rawWorkshop))
		if err != nil {
			return nil, fmt.Errorf("workshop manifest: %w", err)
		}
	}

	game, err := steam.MapGame(libraryPath, manifest, workshop)
	if err != nil {
		return nil, err
	}

	if m.cache != nil && haveStamp {
		entry := cachedGame{Stamp: stamp, Game: *game}
		if err := m.cache.AddEntry(DB_TABLE_PARSED_MANIFESTS, cacheKey, entry); err != nil {
			m.logger.Warnf("manifest cache write failed for %v - %v", cacheKey, err)
		}
	}
	return game, nil
}
