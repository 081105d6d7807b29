package main

import (
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tlperl/tlperl-build/internal/config"
	"github.com/tlperl/tlperl-build/internal/logging"
	"github.com/tlperl/tlperl-build/internal/messages"
	"github.com/tlperl/tlperl-build/internal/terminal"
)

// rootOptions carries persistent flags and the loaded config to subcommands.
type rootOptions struct {
	configPath string
	verbose    int
	noColor    bool
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			noColor := opts.noColor || !terminal.IsTerminalWriter(cmd.ErrOrStderr())
			if opts.noColor {
				color.NoColor = true
			}
			logging.SetupLogger(cmd.ErrOrStderr(), opts.verbose, noColor)
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", messages.RootFlagConfig)
	cmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", messages.RootFlagVerbose)
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, messages.RootFlagNoColor)

	cmd.AddCommand(newRelocateCmd(opts))
	cmd.AddCommand(newPatchMakefileCmd(opts))
	cmd.AddCommand(newGenStepsCmd(opts))
	return cmd
}

// loadConfig reads an explicit --config path, or tlperl.toml from the working
// directory when present.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		resolved, err := resolvePathArg(path)
		if err != nil {
			return nil, err
		}
		return config.LoadConfig(resolved)
	}
	cwd, err := getwd()
	if err != nil {
		return nil, err
	}
	cfg, found, err := config.LoadOptional(filepath.Join(cwd, config.DefaultFileName))
	if err != nil {
		return nil, err
	}
	if found {
		log := logging.GetLogger("cli")
		log.Debug().Str("dir", cwd).Msg("loaded " + config.DefaultFileName)
	}
	return cfg, nil
}
