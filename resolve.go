package dotstore

import (
	"github.com/adrg/xdg"
)

// BaseDir returns the platform base directory backing kind, without creating
// anything on disk.
//
// The second return value is false when the platform or current environment
// does not define the location. For kinds listed by [Kinds] this does not
// happen in ordinary environments; absence there indicates a broken
// environment (for example a missing home directory).
//
// Resolution queries the environment and platform conventions only; it
// performs no filesystem I/O and caches nothing between calls.
func BaseDir(kind Kind) (string, bool) {
	switch kind {
	case Home:
		return dirOrAbsent(xdg.Home)
	case Config, ConfigLocal:
		return dirOrAbsent(xdg.ConfigHome)
	case Cache:
		return dirOrAbsent(xdg.CacheHome)
	case Data, DataLocal:
		return dirOrAbsent(xdg.DataHome)
	case Audio:
		return dirOrAbsent(xdg.UserDirs.Music)
	case Desktop:
		return dirOrAbsent(xdg.UserDirs.Desktop)
	case Download:
		return dirOrAbsent(xdg.UserDirs.Download)
	case Document:
		return dirOrAbsent(xdg.UserDirs.Documents)
	case Picture:
		return dirOrAbsent(xdg.UserDirs.Pictures)
	case Public:
		return dirOrAbsent(xdg.UserDirs.PublicShare)
	case Video:
		return dirOrAbsent(xdg.UserDirs.Videos)
	default:
		// Preference and the platform-gated kinds resolve differently per
		// target; each build file carries its own cases.
		return resolvePlatform(kind)
	}
}

func dirOrAbsent(dir string) (string, bool) {
	if dir == "" {
		return "", false
	}
	return dir, true
}

func firstDir(dirs []string) (string, bool) {
	for _, d := range dirs {
		if d != "" {
			return d, true
		}
	}
	return "", false
}
