package steam

import (
	"fmt"
	"strings"
)

// AppState is the StateFlags bit-set from an app manifest. Several
// states can be set at once (e.g. an installed app mid-update carries
// both FullyInstalled and UpdateRunning). Bits outside the known set
// are kept as-is so newer Steam clients don't break decoding.
type AppState uint32

const (
	StateUninstalled    AppState = 1
	StateUpdateRequired AppState = 2
	StateFullyInstalled AppState = 4
	StateEncrypted      AppState = 8
	StateLocked         AppState = 16
	StateFilesMissing   AppState = 32
	StateAppRunning     AppState = 64
	StateFilesCorrupt   AppState = 128
	StateUpdateRunning  AppState = 256
	StateUpdatePaused   AppState = 512
	StateUpdateStarted  AppState = 1024
	StateUninstalling   AppState = 2048
	StateBackupRunning  AppState = 4096
	StateReconfiguring  AppState = 65536
	StateValidating     AppState = 131072
	StateAddingFiles    AppState = 262144
	StatePreallocating  AppState = 524288
	StateDownloading    AppState = 1048576
	StateStaging        AppState = 2097152
	StateCommitting     AppState = 4194304
	StateUpdateStopping AppState = 8388608
)

var stateNames = []struct {
	bit  AppState
	name string
}{
	{StateUninstalled, "Uninstalled"},
	{StateUpdateRequired, "UpdateRequired"},
	{StateFullyInstalled, "FullyInstalled"},
	{StateEncrypted, "Encrypted"},
	{StateLocked, "Locked"},
	{StateFilesMissing, "FilesMissing"},
	{StateAppRunning, "AppRunning"},
	{StateFilesCorrupt, "FilesCorrupt"},
	{StateUpdateRunning, "UpdateRunning"},
	{StateUpdatePaused, "UpdatePaused"},
	{StateUpdateStarted, "UpdateStarted"},
	{StateUninstalling, "Uninstalling"},
	{StateBackupRunning, "BackupRunning"},
	{StateReconfiguring, "Reconfiguring"},
	{StateValidating, "Validating"},
	{StateAddingFiles, "AddingFiles"},
	{StatePreallocating, "Preallocating"},
	{StateDownloading, "Downloading"},
	{StateStaging, "Staging"},
	{StateCommitting, "Committing"},
	{StateUpdateStopping, "UpdateStopping"},
}

// Has reports whether every bit in state is set.
func (s AppState) Has(state AppState) bool {
	return s&state == state
}

// Union combines two flag sets.
func (s AppState) Union(other AppState) AppState {
	return s | other
}

func (s AppState) String() string {
	if s == 0 {
		return "Invalid"
	}
	var names []string
	rest := s
	for _, entry := range stateNames {
		if s.Has(entry.bit) {
			names = append(names, entry.name)
			rest &^= entry.bit
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%X", uint32(rest)))
	}
	return strings.Join(names, "|")
}
