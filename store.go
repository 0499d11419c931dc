package dotstore

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for store creation.
var (
	// ErrInvalidTarget indicates a target path that is empty, absolute, or
	// otherwise malformed.
	ErrInvalidTarget = errors.New("invalid target path")

	// ErrInvalidRoot indicates a custom root path that is malformed.
	ErrInvalidRoot = errors.New("invalid root path")
)

// dirPerm is the permission for newly created store directories, before
// umask. No permissions are managed beyond this creation default.
const dirPerm = 0o755

// Store creates the dot directory for target under the base directory of
// kind and returns its absolute path. The operation is idempotent: an
// existing store directory is success.
//
// kind must be available on the current platform. Store panics with a
// diagnostic if the base directory for kind cannot be resolved; that cannot
// happen for kinds obtained from [ParseKind] or listed by [Kinds] in an
// ordinary environment. The per-kind entry points ([HomeStore],
// [ConfigStore], ...) are the usual way to call this.
func Store(kind Kind, target string) (string, error) {
	base, ok := BaseDir(kind)
	if !ok {
		panic(fmt.Sprintf("dotstore: no base directory for store kind %q on %s", kind, runtime.GOOS))
	}
	return materialize(base, target)
}

// CustomStore creates the dot directory for target under a caller-supplied
// root instead of a resolved base directory. A relative root is made
// absolute against the current working directory.
//
//	dotstore.CustomStore("/home/user/workspace/middle-earth", "eregion")
//	// creates and returns /home/user/workspace/middle-earth/.eregion
func CustomStore(root, target string) (string, error) {
	if root == "" {
		return "", errors.Wrap(ErrInvalidRoot, "empty root")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrap(err, "resolving root path")
	}
	return materialize(abs, target)
}

// materialize computes the hidden path for target under base and ensures it
// exists on disk, creating missing ancestors. It is the single creation path
// shared by every entry point and knows nothing about kind resolution.
func materialize(base, target string) (string, error) {
	if err := validTarget(target); err != nil {
		return "", err
	}
	path := filepath.Join(base, hiddenRel(target))
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return "", errors.Wrap(err, "creating store directory")
	}
	return path, nil
}

// hiddenRel prefixes a dot onto the first segment of target only:
// "barracuda" becomes ".barracuda", "settings/user/local" becomes
// ".settings/user/local". The split is explicit so the rule does not depend
// on how path joining treats dot-leading multi-segment strings.
func hiddenRel(target string) string {
	sep := string(filepath.Separator)
	first, rest, found := strings.Cut(target, sep)
	if !found {
		return "." + first
	}
	return "." + first + sep + rest
}

// validTarget checks that target is a usable relative path fragment. It does
// not require any part of it to exist.
func validTarget(target string) error {
	if target == "" {
		return errors.Wrap(ErrInvalidTarget, "empty target")
	}
	if strings.ContainsRune(target, '\x00') {
		return errors.Wrap(ErrInvalidTarget, "target contains NUL byte")
	}
	if filepath.IsAbs(target) {
		return errors.Wrapf(ErrInvalidTarget, "target %q must be relative", target)
	}
	return nil
}

// HomeStore creates a dot directory under the user's home directory.
//
//	HomeStore("barracuda") // ~/.barracuda
func HomeStore(target string) (string, error) {
	return Store(Home, target)
}

// ConfigStore creates a dot directory under the user's config directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigStore(target string) (string, error) {
	return Store(Config, target)
}

// LocalConfigStore creates a dot directory under the machine-local config
// directory. With XDG conventions this is the same location as
// [ConfigStore]; the distinction matters on platforms that separate roaming
// and local profiles.
func LocalConfigStore(target string) (string, error) {
	return Store(ConfigLocal, target)
}

// CacheStore creates a dot directory under the user's cache directory.
// On Linux: ~/.cache
// On macOS: ~/Library/Caches
// On Windows: %LOCALAPPDATA%\cache
func CacheStore(target string) (string, error) {
	return Store(Cache, target)
}

// DataStore creates a dot directory under the user's data directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataStore(target string) (string, error) {
	return Store(Data, target)
}

// LocalDataStore creates a dot directory under the machine-local data
// directory. With XDG conventions this is the same location as [DataStore].
func LocalDataStore(target string) (string, error) {
	return Store(DataLocal, target)
}

// AudioStore creates a dot directory under the user's music directory.
func AudioStore(target string) (string, error) {
	return Store(Audio, target)
}

// DesktopStore creates a dot directory under the user's desktop directory.
func DesktopStore(target string) (string, error) {
	return Store(Desktop, target)
}

// DownloadStore creates a dot directory under the user's downloads
// directory.
func DownloadStore(target string) (string, error) {
	return Store(Download, target)
}

// DocumentStore creates a dot directory under the user's documents
// directory.
func DocumentStore(target string) (string, error) {
	return Store(Document, target)
}

// PictureStore creates a dot directory under the user's pictures directory.
func PictureStore(target string) (string, error) {
	return Store(Picture, target)
}

// PreferenceStore creates a dot directory under the user's preferences
// directory.
// On Linux: ~/.config
// On macOS: ~/Library/Preferences
// On Windows: %LOCALAPPDATA%
func PreferenceStore(target string) (string, error) {
	return Store(Preference, target)
}

// PublicStore creates a dot directory under the user's public share
// directory.
func PublicStore(target string) (string, error) {
	return Store(Public, target)
}

// VideoStore creates a dot directory under the user's videos directory.
func VideoStore(target string) (string, error) {
	return Store(Video, target)
}
