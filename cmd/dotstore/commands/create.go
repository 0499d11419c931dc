package commands

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotstore"
	"github.com/thoreinstein/dotstore/internal/cli/prompt"
	cmderrors "github.com/thoreinstein/dotstore/internal/errors"
)

var (
	createRoot        string
	createInteractive bool
)

func init() {
	createCmd.Flags().StringVar(&createRoot, "root", "",
		"create under this directory instead of a resolved base directory")
	createCmd.Flags().BoolVarP(&createInteractive, "interactive", "i", false,
		"pick the store kind with a fuzzy finder")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [kind] <target>",
	Short: "Create a dot directory in a well-known location",
	Long: `Create a hidden dot directory for target inside the base directory of the
given store kind, creating missing ancestors. Only the first segment of a
multi-segment target gains the dot prefix.

When --root is given the kind is skipped entirely and the directory is
created under the supplied root. Without a kind argument the configured
default kind applies, or --interactive opens a fuzzy finder over the kinds
available on this platform.`,
	Example: `  # Create ~/.barracuda
  dotstore create home barracuda

  # Only the first segment is hidden: <config dir>/.settings/user/local
  dotstore create config settings/user/local

  # Use the configured default kind
  dotstore create barracuda

  # Pick the kind interactively
  dotstore create barracuda --interactive

  # Bypass resolution: /srv/project/.eregion
  dotstore create eregion --root /srv/project`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	// Custom root bypasses kind resolution entirely.
	if createRoot != "" {
		if len(args) != 1 {
			return cmderrors.NewUserError(
				errors.New("--root takes a single target argument"),
				"Run: dotstore create <target> --root <dir>")
		}
		path, err := dotstore.CustomStore(createRoot, args[0])
		if err != nil {
			return storeError(err)
		}
		slog.Debug("store created", "root", createRoot, "path", path)
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	kind, target, err := createKindTarget(args)
	if err != nil {
		return err
	}

	path, err := dotstore.Store(kind, target)
	if err != nil {
		return storeError(err)
	}

	slog.Debug("store created", "kind", kind, "path", path)
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// createKindTarget determines the store kind and target from the arguments,
// the --interactive flag, and the configured default kind, in that order.
func createKindTarget(args []string) (dotstore.Kind, string, error) {
	if len(args) == 2 {
		if createInteractive {
			return 0, "", cmderrors.NewUserError(
				errors.New("--interactive cannot be combined with an explicit kind"),
				"Run: dotstore create <target> --interactive")
		}
		kind, err := dotstore.ParseKind(args[0])
		if err != nil {
			return 0, "", kindError(err)
		}
		return kind, args[1], nil
	}

	if createInteractive {
		kind, err := prompt.SelectKind()
		if err != nil {
			if errors.Is(err, prompt.ErrSelectionCancelled) {
				return 0, "", cmderrors.NewExitError(err, cmderrors.ExitUser)
			}
			return 0, "", err
		}
		return kind, args[0], nil
	}

	kind, err := dotstore.ParseKind(cfg.DefaultKind)
	if err != nil {
		return 0, "", kindError(err)
	}
	return kind, args[0], nil
}

// kindError turns a kind parse failure into a user error with a pointer at
// the list command.
func kindError(err error) error {
	return cmderrors.NewUserError(err, "Run 'dotstore list' to see the kinds available on this platform")
}

// storeError classifies a store creation failure: bad inputs are user
// errors, everything else came from the filesystem.
func storeError(err error) error {
	if errors.Is(err, dotstore.ErrInvalidTarget) || errors.Is(err, dotstore.ErrInvalidRoot) {
		return cmderrors.NewUserError(err, "Targets must be relative paths; roots must be non-empty")
	}
	return cmderrors.NewExitError(err, cmderrors.ExitSystem)
}
