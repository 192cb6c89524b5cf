package steam

import (
	"testing"
)

func TestAppStateHas(t *testing.T) {
	state := AppState(5) // Uninstalled | FullyInstalled
	if !state.Has(StateUninstalled) {
		t.Errorf("expected Uninstalled bit")
	}
	if !state.Has(StateFullyInstalled) {
		t.Errorf("expected FullyInstalled bit")
	}
	if state.Has(StateUpdateRequired) {
		t.Errorf("UpdateRequired must not be set")
	}
}

func TestAppStateUnion(t *testing.T) {
	state := StateFullyInstalled.Union(StateUpdateRunning)
	if !state.Has(StateFullyInstalled) || !state.Has(StateUpdateRunning) {
		t.Errorf("union lost a bit: %v", state)
	}
}

func TestAppStateString(t *testing.T) {
	cases := []struct {
		state AppState
		want  string
	}{
		{0, "Invalid"},
		{StateFullyInstalled, "FullyInstalled"},
		{StateFullyInstalled | StateUpdateRunning, "FullyInstalled|UpdateRunning"},
		{StateFullyInstalled | 1<<30, "FullyInstalled|0x40000000"},
	}
	for _, tc := range cases {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("String(%d) = %q, want %q", uint32(tc.state), got, tc.want)
		}
	}
}

func TestAppStateKeepsUnknownBits(t *testing.T) {
	state := AppState(StateFullyInstalled | 1<<31)
	if uint32(state)&(1<<31) == 0 {
		t.Errorf("unknown bit dropped")
	}
	if !state.Has(StateFullyInstalled) {
		t.Errorf("known bit dropped")
	}
}
