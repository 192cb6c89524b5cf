package steam

import (
	"steam-library-manager/vdf"
)

// LibraryRef is a storage root together with the app ids it hosts, as
// declared by libraryfolders.vdf. It is the input to the inventory
// build; the Library below is the populated result.
type LibraryRef struct {
	Path string
	Apps []string
}

// Library is one storage root and the games successfully mapped from
// its manifests.
type Library struct {
	Path  string
	Games []*Game
}

// SizeBytes is the sum of the library's game sizes. Workshop content is
// deliberately NOT counted here; only the inventory-wide total includes
// it. This mirrors how the Steam client itself reports library sizes.
func (l *Library) SizeBytes() uint64 {
	var total uint64
	for _, g := range l.Games {
		total += g.SizeBytes
	}
	return total
}

// MapLibraries turns a parsed libraryfolders.vdf into ordered library
// refs. App ids keep the order they appear in the file.
func MapLibraries(folders *vdf.Node) ([]LibraryRef, error) {
	root, ok := folders.GetNode("libraryfolders")
	if !ok {
		return nil, &SchemaError{Field: "libraryfolders", Msg: "missing block"}
	}

	var refs []LibraryRef
	for _, key := range root.Keys() {
		entry, ok := root.GetNode(key)
		if !ok {
			// older formats carry scalar metadata next to the
			// numbered blocks, skip those
			continue
		}
		path, err := requireString(entry, "path", "")
		if err != nil {
			return nil, err
		}
		ref := LibraryRef{Path: path}
		if apps, ok := entry.GetNode("apps"); ok {
			ref.Apps = append(ref.Apps, apps.Keys()...)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
