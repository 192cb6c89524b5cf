package settings

import (
	"path/filepath"

	"github.com/magiconair/properties"
)

const OVERRIDES_FILENAME = "slm.properties"

// applyOverrides layers an optional properties file on top of the JSON
// settings. Handy when the settings file is managed but one machine
// keeps Steam somewhere unusual.
func (a *AppSettings) applyOverrides() {
	p, err := properties.LoadFile(filepath.Join(a.baseFolder, OVERRIDES_FILENAME), properties.UTF8)
	if err != nil {
		p, err = properties.LoadFile("${HOME}/."+SETTINGS_DIR+"/"+OVERRIDES_FILENAME, properties.UTF8)
	}
	if err != nil {
		return
	}

	if v, ok := p.Get("steam_path"); ok && v != "" {
		a.SteamFolder = v
	}
	if v, ok := p.Get("debug"); ok {
		a.Debug = v == "true"
	}
}
