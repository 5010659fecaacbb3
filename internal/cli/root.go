package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand creates the root command for the bibfmt CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bibfmt",
		Short: "bibfmt - format and sort BibTeX bibliographies",
		Long: `A formatter for BibTeX bibliography files: normalizes indentation,
brackets, field alignment and ordering, sorts entries by a configurable
key chain, and reports duplicate entries found while sorting.`,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "",
		"path to a YAML options file (missing file means built-in defaults)")

	// Add subcommands
	cmd.AddCommand(NewFormatCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}
