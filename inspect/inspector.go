// Package inspect provides layout introspection for debugging and automated
// testing. It reports grid geometry so tools can check a layout without
// looking at the terminal.
package inspect

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Introspectable is implemented by UI components that can report their state.
type Introspectable interface {
	// InspectNode returns a structured representation of this component.
	InspectNode() *Node
}

// InspectEnvVar enables inspection when set to "1".
const InspectEnvVar = "CUSTOMGRID_INSPECT"

// Global state
var (
	enabled     bool
	enabledOnce sync.Once
	inspectFile string
)

// IsEnabled returns true if inspection mode is active.
func IsEnabled() bool {
	enabledOnce.Do(func() {
		enabled = os.Getenv(InspectEnvVar) == "1"
		if enabled {
			inspectFile = filepath.Join(os.TempDir(), "customgrid-inspect.json")
		}
	})
	return enabled
}

// GetInspectFile returns the path to the inspection output file.
func GetInspectFile() string {
	if !IsEnabled() {
		return ""
	}
	return inspectFile
}

// WriteSnapshot writes snapshot to the inspection file. It is a no-op
// unless inspection is enabled.
func WriteSnapshot(snapshot *Snapshot) error {
	if !IsEnabled() {
		return nil
	}
	return WriteSnapshotToPath(snapshot, inspectFile)
}

// WriteSnapshotToPath writes snapshot to path. The file is replaced in one
// rename so a reader polling it never sees a partial snapshot.
func WriteSnapshotToPath(snapshot *Snapshot, path string) error {
	data, err := snapshot.JSON()
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
