package commands

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotstore"
)

var listNamesOnly bool

func init() {
	listCmd.Flags().BoolVar(&listNamesOnly, "names", false,
		"print one kind name per line, without base directories")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the store kinds available on this platform",
	Long: `List every store kind this build offers together with the base directory
it resolves to. Kinds that have no meaning on the current operating system
are excluded at build time and do not appear.`,
	Example: `  # Table of kinds and base directories
  dotstore list

  # Just the names, for scripting
  dotstore list --names`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if listNamesOnly {
		for _, name := range dotstore.KindNames() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	bold := color.New(color.Bold)
	bold.Fprintf(out, "Store kinds on %s:\n\n", runtime.GOOS)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Kind", "Base Directory"})
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, kind := range dotstore.Kinds() {
		base, ok := dotstore.BaseDir(kind)
		if !ok {
			base = "(not set in this environment)"
		}
		table.Append([]string{kind.String(), base})
	}

	table.Render()
	return nil
}
