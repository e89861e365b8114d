package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/redpill/charting/pkg/core"
)

const (
	// AppDirName is the fixed application namespace under the OS config directory.
	AppDirName = "RedPillCharting"

	// DatabaseDirName is the segment holding all persisted records.
	DatabaseDirName = "Database"
)

// DefaultDataRoot resolves the per-installation data root:
// <os user config dir>/RedPillCharting/Database.
//
// It is a pure resolution: no caching and no directory creation. Writers
// create the directories they need lazily. Fails with core.ErrPathResolution
// when the OS cannot supply a per-user configuration directory (misconfigured
// environment, sandbox denial).
func DefaultDataRoot() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrPathResolution, err)
	}
	return filepath.Join(base, AppDirName, DatabaseDirName), nil
}
