//go:build windows

package dotstore

import (
	"github.com/adrg/xdg"
)

// platformKinds lists the store kinds Windows defines in addition to
// commonKinds. Executable, Runtime, State, and Font have no defined
// location on Windows and their entry points are not built.
var platformKinds = []Kind{Template}

func resolvePlatform(kind Kind) (string, bool) {
	switch kind {
	case Preference:
		return dirOrAbsent(xdg.ConfigHome)
	case Template:
		return dirOrAbsent(xdg.UserDirs.Templates)
	}
	return "", false
}

// TemplateStore creates a dot directory under the user's templates
// directory (%APPDATA%\Microsoft\Windows\Templates).
func TemplateStore(target string) (string, error) {
	return Store(Template, target)
}
