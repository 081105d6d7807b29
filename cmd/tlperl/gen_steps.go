package main

import (
	"github.com/spf13/cobra"

	"github.com/tlperl/tlperl-build/internal/lines"
	"github.com/tlperl/tlperl-build/internal/messages"
	"github.com/tlperl/tlperl-build/internal/modsteps"
)

func newGenStepsCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.GenStepsUse,
		Short: messages.GenStepsShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			readme, err := resolvePathArg(args[0])
			if err != nil {
				return err
			}
			return modsteps.Run(lines.RealSystem{}, readme, cmd.OutOrStdout())
		},
	}
}
