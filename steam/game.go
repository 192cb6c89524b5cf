package steam

import (
	"fmt"
	"path/filepath"
	"strconv"

	"steam-library-manager/vdf"
)

// SchemaError reports a well-formed manifest that is missing a required
// field or carries a value of the wrong shape.
type SchemaError struct {
	Field string
	AppID string
	Msg   string
}

func (e *SchemaError) Error() string {
	if e.AppID != "" {
		return fmt.Sprintf("steam: app %s: field %q: %s", e.AppID, e.Field, e.Msg)
	}
	return fmt.Sprintf("steam: field %q: %s", e.Field, e.Msg)
}

// Game is one installed app, mapped from an appmanifest_<appid>.acf
// file. LibraryPath identifies the owning library by its root path; the
// library itself is looked up through the inventory, not stored here.
type Game struct {
	AppID       string
	Name        string
	State       AppState
	InstallDir  string
	SizeBytes   uint64
	LibraryPath string
	Workshop    *WorkshopData
}

// WorkshopData is the downloaded workshop content of one app, mapped
// from appworkshop_<appid>.acf. Absent when the app has none.
type WorkshopData struct {
	AppID       string
	SizeBytes   uint64
	LibraryPath string
}

// Path is where the game's files live on disk. The directory is derived
// from validated manifest fields only, it is not checked for existence.
func (g *Game) Path() string {
	return filepath.Join(g.LibraryPath, "steamapps", "common", g.InstallDir)
}

func (w *WorkshopData) Path() string {
	return filepath.Join(w.LibraryPath, "steamapps", "workshop", "content", w.AppID)
}

// MapGame builds a Game from its parsed manifest. workshop may be nil,
// meaning the app has no workshop manifest on disk; that is a normal
// state, not an error.
func MapGame(libraryPath string, manifest *vdf.Node, workshop *vdf.Node) (*Game, error) {
	state, ok := manifest.GetNode("AppState")
	if !ok {
		return nil, &SchemaError{Field: "AppState", Msg: "missing block"}
	}

	appID, err := requireString(state, "appid", "")
	if err != nil {
		return nil, err
	}
	name, err := requireString(state, "name", appID)
	if err != nil {
		return nil, err
	}
	installDir, err := requireString(state, "installdir", appID)
	if err != nil {
		return nil, err
	}
	size, err := requireUint(state, "SizeOnDisk", appID)
	if err != nil {
		return nil, err
	}
	flags, err := requireUint(state, "StateFlags", appID)
	if err != nil {
		return nil, err
	}
	if flags > 0xFFFFFFFF {
		return nil, &SchemaError{Field: "StateFlags", AppID: appID, Msg: "value out of range"}
	}

	game := &Game{
		AppID:       appID,
		Name:        name,
		State:       AppState(flags),
		InstallDir:  installDir,
		SizeBytes:   size,
		LibraryPath: libraryPath,
	}

	if workshop != nil {
		wd, err := mapWorkshop(libraryPath, workshop)
		if err != nil {
			return nil, err
		}
		if wd.AppID != appID {
			return nil, &SchemaError{
				Field: "appid",
				AppID: appID,
				Msg:   fmt.Sprintf("workshop manifest belongs to app %s", wd.AppID),
			}
		}
		game.Workshop = wd
	}

	return game, nil
}

func mapWorkshop(libraryPath string, manifest *vdf.Node) (*WorkshopData, error) {
	block, ok := manifest.GetNode("AppWorkshop")
	if !ok {
		return nil, &SchemaError{Field: "AppWorkshop", Msg: "missing block"}
	}
	appID, err := requireString(block, "appid", "")
	if err != nil {
		return nil, err
	}
	size, err := requireUint(block, "SizeOnDisk", appID)
	if err != nil {
		return nil, err
	}
	return &WorkshopData{AppID: appID, SizeBytes: size, LibraryPath: libraryPath}, nil
}

func requireString(node *vdf.Node, field, appID string) (string, error) {
	v, ok := node.GetString(field)
	if !ok {
		return "", &SchemaError{Field: field, AppID: appID, Msg: "missing required field"}
	}
	return v, nil
}

func requireUint(node *vdf.Node, field, appID string) (uint64, error) {
	raw, err := requireString(node, field, appID)
	if err != nil {
		return 0, err
	}
	v, parseErr := strconv.ParseUint(raw, 10, 64)
	if parseErr != nil {
		return 0, &SchemaError{Field: field, AppID: appID, Msg: fmt.Sprintf("invalid number %q", raw)}
	}
	return v, nil
}
