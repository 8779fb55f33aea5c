package profile

import (
	"slices"
	"testing"
)

func TestProfiler_EmptyModeIsNoop(t *testing.T) {
	stop := Profiler{Path: t.TempDir()}.Start()
	if _, ok := stop.(ignore); !ok {
		t.Errorf("Start() = %T, want ignore", stop)
	}

	stop.Stop()
}

func TestProfiler_UnknownModeIsNoop(t *testing.T) {
	stop := Profiler{Mode: "nonsense", Path: t.TempDir(), Quiet: true}.Start()
	if _, ok := stop.(ignore); !ok {
		t.Errorf("Start() = %T, want ignore", stop)
	}

	stop.Stop()
}

func TestModes(t *testing.T) {
	modes := Modes()

	if Enabled() != (len(modes) > 0) {
		t.Error("Enabled disagrees with Modes")
	}

	if !slices.IsSorted(modes) {
		t.Errorf("modes not sorted: %v", modes)
	}
}
