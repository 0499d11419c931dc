//go:build !windows && !darwin

package dotstore

import (
	"github.com/adrg/xdg"
)

// platformKinds lists the store kinds Linux and the BSDs define in addition
// to commonKinds. These systems carry the full enumeration.
var platformKinds = []Kind{Executable, Font, Runtime, State, Template}

func resolvePlatform(kind Kind) (string, bool) {
	switch kind {
	case Preference:
		return dirOrAbsent(xdg.ConfigHome)
	case Executable:
		return dirOrAbsent(xdg.BinHome)
	case Font:
		return firstDir(xdg.FontDirs)
	case Runtime:
		return dirOrAbsent(xdg.RuntimeDir)
	case State:
		return dirOrAbsent(xdg.StateHome)
	case Template:
		return dirOrAbsent(xdg.UserDirs.Templates)
	}
	return "", false
}

// ExecutableStore creates a dot directory under the user's executable
// directory ($XDG_BIN_HOME, typically ~/.local/bin).
func ExecutableStore(target string) (string, error) {
	return Store(Executable, target)
}

// FontStore creates a dot directory under the user's font directory
// (typically ~/.local/share/fonts).
func FontStore(target string) (string, error) {
	return Store(Font, target)
}

// RuntimeStore creates a dot directory under the user's runtime directory
// ($XDG_RUNTIME_DIR, typically /run/user/$UID).
func RuntimeStore(target string) (string, error) {
	return Store(Runtime, target)
}

// StateStore creates a dot directory under the user's state directory
// ($XDG_STATE_HOME, typically ~/.local/state).
func StateStore(target string) (string, error) {
	return Store(State, target)
}

// TemplateStore creates a dot directory under the user's templates
// directory.
func TemplateStore(target string) (string, error) {
	return Store(Template, target)
}
