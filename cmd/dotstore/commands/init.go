package commands

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotstore"
	"github.com/thoreinstein/dotstore/internal/config"
	cmderrors "github.com/thoreinstein/dotstore/internal/errors"
	"github.com/thoreinstein/dotstore/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize dotstore configuration",
	Long: `Write a default configuration file. The config directory is itself a dot
store: ConfigStore("dotstore") creates <config dir>/.dotstore, and the
file lands there as config.toml.`,
	Example: `  # Write the default config
  dotstore init

  # Replace an existing config
  dotstore init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	configPath := config.Path()

	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(cmd.OutOrStdout(), "Use --force to overwrite")
		return nil
	}

	// The config directory is created through the library's own entry
	// point, so `init` exercises exactly what it configures.
	if _, err := dotstore.ConfigStore(config.AppName); err != nil {
		return cmderrors.NewExitError(
			errors.Wrap(err, "creating config directory"), cmderrors.ExitSystem)
	}

	if err := fileutil.AtomicWriteTOML(configPath, config.Default()); err != nil {
		return cmderrors.NewExitError(
			errors.Wrap(err, "writing config file"), cmderrors.ExitSystem)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
	return nil
}
