package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath converts a configured location to a local path.
// Handles file:// URIs, a leading "~/" and bare paths.
func ResolvePath(uri string) string {
	// Strip file:// prefix for local paths
	if strings.HasPrefix(uri, "file://") {
		return strings.TrimPrefix(uri, "file://")
	}
	if strings.HasPrefix(uri, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(uri, "~/"))
		}
	}
	// Bare paths pass through unchanged
	return uri
}
