package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tlperl/tlperl-build/internal/logging"
	"github.com/tlperl/tlperl-build/internal/messages"
	"github.com/tlperl/tlperl-build/internal/relocate"
)

var relocateRun = relocate.Run

func newRelocateCmd(root *rootOptions) *cobra.Command {
	var dryRun bool
	var strict bool
	var diffLines int

	cmd := &cobra.Command{
		Use:   messages.RelocateUse,
		Short: messages.RelocateShort,
		Long:  messages.RelocateLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			installDir, err := resolvePathArg(args[0])
			if err != nil {
				return err
			}
			opts := relocate.Options{DryRun: dryRun, Strict: root.cfg.Relocate.Strict}
			if cmd.Flags().Changed("strict") {
				opts.Strict = strict
			}
			maxLines := root.cfg.Relocate.DiffLines
			if cmd.Flags().Changed("diff-lines") {
				maxLines = diffLines
			}

			done := logging.LogOperationStart(logging.GetLogger("cli"), "relocate "+installDir)
			defer done()
			results, err := relocateRun(relocate.RealSystem{}, installDir, opts)
			if err != nil {
				return err
			}
			if dryRun {
				printDryRun(cmd.OutOrStdout(), results, maxLines)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.RelocateFlagDryRun)
	cmd.Flags().BoolVar(&strict, "strict", false, messages.RelocateFlagStrict)
	cmd.Flags().IntVar(&diffLines, "diff-lines", relocate.DefaultDiffMaxLines, messages.RelocateFlagDiffLines)
	return cmd
}

func printDryRun(out io.Writer, results []relocate.Result, maxLines int) {
	for _, res := range results {
		_, _ = fmt.Fprintf(out, messages.RelocateDryRunHeader, res.Path, res.Substitutions)
		if !res.Changed() {
			_, _ = fmt.Fprintln(out, messages.RelocateDryRunNoDiff)
			continue
		}
		_, _ = fmt.Fprint(out, relocate.Preview(res, maxLines).UnifiedDiff)
	}
}
