package settings

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	SETTINGS_DIR      = "steam-library-manager"
	SETTINGS_FILENAME = "settings.json"
	SLM_VERSION       = "1.0.0"
)

// Setting of the application
type AppSettings struct {
	// Extra internal settings
	// `json:"-"` to ignore when marshalling
	baseFolder string `json:"-"`
	Homedir    string `json:"-"`
	// Unmarshalled from the JSON file
	SteamFolder  string   `json:"steam_folder"`
	Debug        bool     `json:"debug"`
	ShowWorkshop bool     `json:"show_workshop"`
	IgnoreCache  bool     `json:"ignore_cache"`
	IgnoreAppIds []string `json:"ignore_app_ids"`
}

// Constructor for settings
func NewAppSettings(workingFolder string) *AppSettings {
	a := AppSettings{}
	a.setBase(workingFolder)
	a.switchToHomedir()
	a.read()
	a.applyOverrides()

	return &a
}

// Set the base folder
func (a *AppSettings) setBase(base string) {
	a.baseFolder = base
}

// Switch the settings base folder inside the homedir
func (a *AppSettings) switchToHomedir() {
	var homedirErr error
	a.Homedir, homedirErr = os.UserHomeDir()

	if homedirErr == nil {
		basedir := a.GetHomedirPath()

		// Create a folder if it does not exist
		if mkDirErr := os.MkdirAll(basedir, os.ModePerm); mkDirErr == nil {
			// Change the base
			a.setBase(basedir)
		}
	}
}

// Get the homedir settings path
func (a *AppSettings) GetHomedirPath() string {
	return filepath.Join(a.Homedir, SETTINGS_DIR)
}

// Get the settings file path
func (a *AppSettings) getPath() string {
	return filepath.Join(a.baseFolder, SETTINGS_FILENAME)
}

// BaseFolder is where settings, the log file and the manifest cache live.
func (a *AppSettings) BaseFolder() string {
	return a.baseFolder
}

// Read the file
func (a *AppSettings) read() {
	buf, bufErr := ioutil.ReadFile(a.getPath())

	// If error fill with defaults
	if bufErr != nil {
		zap.S().Warnf("Missing or corrupted config file, creating a new one.")
		a.defaults()
		a.Save()
	} else {
		// Otherwise unmarshal it
		if jsonErr := a.Load(buf); jsonErr != nil {
			zap.S().Warnf("Missing or corrupted config file, creating a new one.")
			a.defaults()
			a.Save()
		}
	}
}

// Fill the structure with default values
func (a *AppSettings) defaults() {
	a.SteamFolder = ""
	a.ShowWorkshop = true
	a.IgnoreAppIds = []string{}
}

// Save to file (ignore errors)
func (a *AppSettings) Save() {
	// Marshal the struct into JSON bytes
	jsonBytes, jsonErr := json.MarshalIndent(a, "", "  ")
	if jsonErr == nil {
		// Write the file
		ioutil.WriteFile(a.getPath(), jsonBytes, 0644)
	}
}

// Return setting as JSON
func (a *AppSettings) ToJSON() string {
	jsonBytes, jsonErr := json.MarshalIndent(a, "", "  ")
	if jsonErr != nil {
		return ""
	}

	return string(jsonBytes)
}

// Load a JSON payload
func (a *AppSettings) Load(payload []byte) error {
	return json.Unmarshal(payload, a)
}
