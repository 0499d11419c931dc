// Package dotstore creates hidden "dot" directories in well-known system
// locations for an application's private storage.
//
// The package resolves platform-defined base directories (home, config,
// cache, data, and so on) and idempotently creates a dot-prefixed
// subdirectory inside one of them, so callers do not have to special-case
// each operating system's directory conventions or hand-roll
// create-if-missing logic.
//
// # Store Kinds
//
// Each well-known location is identified by a [Kind]. One entry point exists
// per kind:
//
//	dir, err := dotstore.HomeStore("barracuda")   // ~/.barracuda
//	dir, err := dotstore.ConfigStore("editor")    // ~/.config/.editor (Linux)
//	dir, err := dotstore.CacheStore("thumbnails") // ~/.cache/.thumbnails (Linux)
//
// [CustomStore] bypasses base directory resolution entirely and applies the
// same dot-prefix and creation rules against a caller-supplied root:
//
//	dir, err := dotstore.CustomStore("/home/user/workspace/middle-earth", "eregion")
//	// /home/user/workspace/middle-earth/.eregion
//
// # Dot-Prefix Rule
//
// Only the first segment of the target gains the dot. A multi-segment target
// becomes a hidden directory containing ordinary nested directories:
//
//	dotstore.CustomStore("/home/user/project", "settings/user/local")
//	// /home/user/project/.settings/user/local
//
// # Platform Availability
//
// Not every kind exists on every operating system. Entry points for kinds
// that have no meaning on the target platform are excluded at build time
// rather than failing at run time: [ExecutableStore], [RuntimeStore], and
// [StateStore] exist only on Linux and the BSDs, [FontStore] is absent on
// Windows, and [TemplateStore] is absent on macOS. [Kinds] reports the set
// available in the current build.
//
// # Base Directory Resolution
//
// Base directories come from github.com/adrg/xdg, which follows the XDG Base
// Directory Specification on Linux and the BSDs and the native conventions
// on macOS and Windows. Resolution performs no filesystem I/O and nothing is
// cached between calls; use [BaseDir] to inspect a base directory without
// creating anything.
//
// # Idempotence
//
// Creation has mkdir -p semantics: missing ancestors are created, and a
// store directory that already exists is success, not an error. The package
// never touches the contents of a store directory.
package dotstore
