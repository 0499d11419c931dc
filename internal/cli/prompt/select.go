// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/dotstore"
)

// ErrSelectionCancelled indicates the user aborted the finder (e.g. Esc or Ctrl+C).
var ErrSelectionCancelled = errors.New("selection cancelled")

// SelectKind opens a fuzzy finder over the store kinds available on this
// platform and returns the chosen one.
//
// Returns ErrSelectionCancelled if the user aborts without choosing.
func SelectKind() (dotstore.Kind, error) {
	kinds := dotstore.Kinds()

	idx, err := fuzzyfinder.Find(
		kinds,
		func(i int) string {
			return formatKind(kinds[i])
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return previewKind(kinds[i])
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return 0, ErrSelectionCancelled
		}
		return 0, errors.Wrap(err, "selecting store kind")
	}

	return kinds[idx], nil
}

// formatKind renders one finder line: the kind name plus its base directory.
func formatKind(kind dotstore.Kind) string {
	base, ok := dotstore.BaseDir(kind)
	if !ok {
		return kind.String()
	}
	return fmt.Sprintf("%s  %s", kind, base)
}

// previewKind renders the preview pane for a kind.
func previewKind(kind dotstore.Kind) string {
	base, ok := dotstore.BaseDir(kind)
	if !ok {
		return fmt.Sprintf("Kind: %s\n\nNo base directory in this environment.", kind)
	}
	return fmt.Sprintf("Kind: %s\nBase: %s\n\nA dot directory created for this kind lives directly under the base directory.", kind, base)
}
