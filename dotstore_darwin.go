//go:build darwin

package dotstore

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// platformKinds lists the store kinds macOS defines in addition to
// commonKinds. Executable, Runtime, State, and Template have no defined
// location on macOS and their entry points are not built.
var platformKinds = []Kind{Font}

func resolvePlatform(kind Kind) (string, bool) {
	switch kind {
	case Preference:
		if xdg.Home == "" {
			return "", false
		}
		return filepath.Join(xdg.Home, "Library", "Preferences"), true
	case Font:
		return firstDir(xdg.FontDirs)
	}
	return "", false
}

// FontStore creates a dot directory under the user's font directory
// (~/Library/Fonts).
func FontStore(target string) (string, error) {
	return Store(Font, target)
}
