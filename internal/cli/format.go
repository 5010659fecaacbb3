package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ma-chengcheng/LaTeX-Workshop/internal/bib"
	"github.com/ma-chengcheng/LaTeX-Workshop/internal/config"
	"github.com/ma-chengcheng/LaTeX-Workshop/internal/parser"
	"github.com/ma-chengcheng/LaTeX-Workshop/internal/render"
	"github.com/ma-chengcheng/LaTeX-Workshop/internal/sorter"
)

// NewFormatCommand creates the format command.
func NewFormatCommand(rootOpts *RootOptions) *cobra.Command {
	var write bool
	var sortEntries bool

	cmd := &cobra.Command{
		Use:   "format <files...>",
		Short: "Format bibliography files",
		Long: `Format BibTeX files with the configured indentation, bracket style,
field alignment, field ordering, and letter case.

With --sort, entries are reordered by the configured sort keys before
formatting and duplicate entries are reported on stderr. Definition
entries (@string, @preamble, @comment) pass through unchanged.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(rootOpts, args, write, sortEntries, cmd)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write results back to the source files")
	cmd.Flags().BoolVar(&sortEntries, "sort", false, "sort entries before formatting")

	return cmd
}

func runFormat(opts *RootOptions, paths []string, write, sortEntries bool, cmd *cobra.Command) error {
	stderr := cmd.ErrOrStderr()

	cfg, diags, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "load config", err)
	}
	reportDiagnostics(stderr, diags)

	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return WrapExitError(ExitCommandError, "read "+path, err)
		}

		out, dups, err := formatSource(string(src), cfg, sortEntries)
		if err != nil {
			return WrapExitError(ExitFailure, path, err)
		}
		for _, d := range dups {
			warnf(stderr, "%s: duplicate entry @%s{%s}", path, d.EntryType, d.InternalKey)
		}

		if write {
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return WrapExitError(ExitCommandError, "write "+path, err)
			}
		} else {
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
	}
	return nil
}

// formatSource parses and re-renders one bibliography source. Free text
// between entries is written back in place. When sortEntries is set,
// entries are sorted first - sorted entries fill the entry positions in
// order while text blocks keep theirs - and the entries that tied on every
// sort key are returned for duplicate reporting.
func formatSource(src string, cfg config.Config, sortEntries bool) (string, []*bib.RealEntry, error) {
	doc, err := parser.ParseDocument(src)
	if err != nil {
		return "", nil, err
	}

	var dups []*bib.RealEntry
	if sortEntries {
		entries := doc.Entries()
		s := sorter.New(cfg)
		s.Sort(entries)
		dups = s.Duplicates.Entries()

		next := 0
		for i, blk := range doc.Blocks {
			if _, ok := blk.(parser.EntryBlock); ok {
				doc.Blocks[i] = parser.EntryBlock{Entry: entries[next]}
				next++
			}
		}
	}

	parts := make([]string, 0, len(doc.Blocks))
	for _, blk := range doc.Blocks {
		switch blk := blk.(type) {
		case parser.EntryBlock:
			switch e := blk.Entry.(type) {
			case *bib.RealEntry:
				parts = append(parts, render.Entry(e, cfg))
			case *bib.StringEntry:
				parts = append(parts, e.Raw)
			}
		case parser.TextBlock:
			parts = append(parts, blk.Text)
		}
	}
	if len(parts) == 0 {
		return "", dups, nil
	}
	return strings.Join(parts, "\n\n") + "\n", dups, nil
}
