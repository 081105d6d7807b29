package main

import (
	"github.com/spf13/cobra"

	"github.com/tlperl/tlperl-build/internal/lines"
	"github.com/tlperl/tlperl-build/internal/makefile"
	"github.com/tlperl/tlperl-build/internal/messages"
)

func newPatchMakefileCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.PatchMakefileUse,
		Short: messages.PatchMakefileShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			srcDir, err := resolvePathArg(args[0])
			if err != nil {
				return err
			}
			installDir, err := resolvePathArg(args[1])
			if err != nil {
				return err
			}
			_, err = makefile.Run(lines.RealSystem{}, srcDir, installDir, root.cfg.Makefile)
			return err
		},
	}
}
