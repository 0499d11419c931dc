package commands

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dotstore"
	cmderrors "github.com/thoreinstein/dotstore/internal/errors"
)

var resolveOutput string

func init() {
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "",
		"output format: text, json, yaml (default from config)")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <kind>",
	Short: "Print the base directory for a store kind",
	Long: `Print the platform base directory a store kind resolves to, without
creating anything on disk.`,
	Example: `  # Where does the cache kind live?
  dotstore resolve cache

  # Machine-readable output
  dotstore resolve config -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

// resolvedKind is the payload for structured resolve output.
type resolvedKind struct {
	Kind string `json:"kind" yaml:"kind"`
	Base string `json:"base" yaml:"base"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	kind, err := dotstore.ParseKind(args[0])
	if err != nil {
		return kindError(err)
	}

	base, ok := dotstore.BaseDir(kind)
	if !ok {
		// Does not happen for parseable kinds outside broken environments.
		return cmderrors.NewSystemError(
			errors.Newf("no base directory for %s in this environment", kind),
			"Check that your home directory is set")
	}

	out := cmd.OutOrStdout()
	switch outputFormat(resolveOutput) {
	case "json":
		data, err := json.MarshalIndent(resolvedKind{Kind: kind.String(), Base: base}, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshaling JSON")
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(resolvedKind{Kind: kind.String(), Base: base})
		if err != nil {
			return errors.Wrap(err, "marshaling YAML")
		}
		fmt.Fprint(out, string(data))
	default:
		fmt.Fprintln(out, base)
	}
	return nil
}

// outputFormat picks the effective output format: the flag wins, then the
// config file, then plain text.
func outputFormat(flag string) string {
	if flag != "" {
		return flag
	}
	if cfg != nil && cfg.Output != "" {
		return cfg.Output
	}
	return "text"
}
