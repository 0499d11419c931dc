// Package commands implements the CLI commands for dotstore.
package commands

import (
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotstore/internal/config"
	cmderrors "github.com/thoreinstein/dotstore/internal/errors"
	"github.com/thoreinstein/dotstore/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// cfg is the loaded tool configuration; nil until initConfig has run.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load("")
	if cfg == nil {
		cfg = config.Default()
	}
}

var rootCmd = &cobra.Command{
	Use:   "dotstore",
	Short: "Create hidden dot directories in well-known system locations",
	Long: `dotstore creates hidden ("dot") directories in well-known system
locations such as the home, config, cache, and data directories, so
applications have a conventional place for private storage without
special-casing each operating system.

Base directories follow the platform's own conventions: XDG base
directories on Linux and the BSDs, standard domain directories on macOS,
and known folders on Windows. Creation is idempotent; a store directory
that already exists is success.`,
	Example: `  # Create ~/.barracuda
  dotstore create home barracuda

  # Create .editor in the platform config directory
  dotstore create config editor

  # Create a dot directory under a custom root
  dotstore create eregion --root /home/user/workspace/middle-earth

  # Show where a kind resolves without creating anything
  dotstore resolve cache

  # List every kind available on this platform
  dotstore list`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return cmderrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	v := verbosity

	// CLI flags take precedence, but if not set, check env var
	if v == 0 && !quiet {
		if val, ok := os.LookupEnv("DOTSTORE_DEBUG"); ok {
			switch val {
			case "1", "true":
				v = 1
			case "2":
				v = 2
			}
		}
	}

	opts := logging.Options{
		Verbosity: v,
		Quiet:     quiet,
		Format:    logging.Format(logFormat),
		Output:    cmd.ErrOrStderr(),
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return cmderrors.NewUserError(err, "failed to open log file")
		}
		opts.JSONFiles = append(opts.JSONFiles, f)
	}

	slog.SetDefault(logging.New(opts))
	return nil
}

// checkConfig surfaces config load and validation failures before any
// command runs.
func checkConfig(cmd *cobra.Command) error {
	// Help and version never need config
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return cmderrors.NewConfigError(configLoadErr)
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		err := errors.Wrapf(errors.Join(errs...), "invalid configuration at %s", config.Path())
		return cmderrors.NewConfigError(err)
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
