package dotstore

import (
	"runtime"
	"sort"

	"github.com/cockroachdb/errors"
)

// Kind identifies a well-known system location a store can be anchored to.
// The set of kinds reachable on a given platform is fixed at build time; see
// [Kinds].
type Kind uint8

// All store kinds. Constants exist on every platform, but entry points and
// name parsing are limited to the kinds the platform actually defines.
const (
	Home Kind = iota
	Config
	ConfigLocal
	Executable
	Audio
	Cache
	Data
	DataLocal
	Desktop
	Download
	Document
	Font
	Picture
	Preference
	Public
	Runtime
	State
	Template
	Video
)

// Sentinel errors for kind name parsing.
var (
	// ErrUnknownKind indicates a name that matches no store kind.
	ErrUnknownKind = errors.New("unknown store kind")

	// ErrUnavailableKind indicates a store kind that exists but is not
	// defined on the current platform.
	ErrUnavailableKind = errors.New("store kind not available on this platform")
)

// kindNames maps kinds to their canonical names.
var kindNames = map[Kind]string{
	Home:        "home",
	Config:      "config",
	ConfigLocal: "config-local",
	Executable:  "executable",
	Audio:       "audio",
	Cache:       "cache",
	Data:        "data",
	DataLocal:   "data-local",
	Desktop:     "desktop",
	Download:    "download",
	Document:    "document",
	Font:        "font",
	Picture:     "picture",
	Preference:  "preference",
	Public:      "public",
	Runtime:     "runtime",
	State:       "state",
	Template:    "template",
	Video:       "video",
}

// commonKinds are defined on every supported platform. The per-platform
// build files contribute the rest through platformKinds.
var commonKinds = []Kind{
	Home,
	Config,
	ConfigLocal,
	Audio,
	Cache,
	Data,
	DataLocal,
	Desktop,
	Download,
	Document,
	Picture,
	Preference,
	Public,
	Video,
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "unknown"
	}
	return name
}

// Kinds returns the store kinds available on the current platform, in
// declaration order. The result is a fresh slice on every call.
func Kinds() []Kind {
	all := make([]Kind, 0, len(commonKinds)+len(platformKinds))
	all = append(all, commonKinds...)
	all = append(all, platformKinds...)
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// Available reports whether kind is defined on the current platform.
func Available(kind Kind) bool {
	for _, k := range commonKinds {
		if k == kind {
			return true
		}
	}
	for _, k := range platformKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ParseKind converts a canonical kind name to a Kind.
//
// It returns ErrUnknownKind for names that match no kind at all, and
// ErrUnavailableKind for kinds that exist but are not defined on the current
// platform. Parsing is the run-time counterpart of the build-time entry
// point gating: a Kind obtained from ParseKind is always safe to pass to
// [Store].
func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if kindName != name {
			continue
		}
		if !Available(kind) {
			return 0, errors.Wrapf(ErrUnavailableKind, "%s on %s", name, runtime.GOOS)
		}
		return kind, nil
	}
	return 0, errors.Wrap(ErrUnknownKind, name)
}

// KindNames returns the canonical names of all kinds available on the
// current platform, in declaration order.
func KindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
