package charting

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version returns the backend version string.
func Version() string {
	return strings.TrimSpace(rawVersion)
}
