package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ma-chengcheng/LaTeX-Workshop/internal/config"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <files...>",
		Short: "Report files that are not canonically formatted",
		Long: `Check whether BibTeX files are already in canonical form under the
configured options. Prints the names of files that would change and
exits 1 when any file needs formatting. Entry order is not checked.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	cfg, diags, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "load config", err)
	}
	reportDiagnostics(cmd.ErrOrStderr(), diags)

	unformatted := 0
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return WrapExitError(ExitCommandError, "read "+path, err)
		}

		out, _, err := formatSource(string(src), cfg, false)
		if err != nil {
			return WrapExitError(ExitFailure, path, err)
		}
		if out != string(src) {
			fmt.Fprintln(cmd.OutOrStdout(), path)
			unformatted++
		}
	}

	if unformatted > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d file(s) need formatting", unformatted))
	}
	return nil
}
