package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/propolis-phd/phd-launch/internal/config"
	"github.com/propolis-phd/phd-launch/internal/launch"
	"github.com/propolis-phd/phd-launch/internal/messages"
	"github.com/propolis-phd/phd-launch/internal/scratch"
)

// Injection seams for tests; production values are the real implementations.
var (
	scratchSystem scratch.System = scratch.RealSystem{}
	launchSystem  launch.System  = launch.RealSystem{}
	loadConfig                   = config.Load
)

type rootOptions struct {
	scratchDir       string
	runner           string
	pfexec           string
	artifactTomlPath string
	dryRun           bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := getwd()
			if err != nil {
				return err
			}
			settings, err := loadConfig(cwd)
			if err != nil {
				return err
			}
			applyOverrides(cmd, opts, &settings)

			spec := launch.Spec{
				Pfexec:           settings.Pfexec,
				Runner:           settings.Runner,
				ArtifactTomlPath: settings.ArtifactTomlPath,
				ScratchDir:       settings.ScratchDir,
				ServerCmd:        args[0],
			}

			if opts.dryRun {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), spec.String())
				return nil
			}

			if err := scratch.Ensure(scratchSystem, settings.ScratchDir); err != nil {
				if errors.Is(err, scratch.ErrConflict) {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("%v", err))
					return &SilentExitError{Code: 1}
				}
				return err
			}

			code, err := launch.Invoke(launchSystem, spec)
			if err != nil {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("%v", err))
				return &SilentExitError{Code: code}
			}
			if code != 0 {
				return &SilentExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.scratchDir, "scratch-dir", "", messages.FlagScratchDir)
	cmd.Flags().StringVar(&opts.runner, "runner", "", messages.FlagRunner)
	cmd.Flags().StringVar(&opts.pfexec, "pfexec", "", messages.FlagPfexec)
	cmd.Flags().StringVar(&opts.artifactTomlPath, "artifact-toml-path", "", messages.FlagArtifactTomlPath)
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, messages.FlagDryRun)

	return cmd
}

// applyOverrides layers explicitly set flags over config file settings.
// Changed() rather than a non-empty check so --pfexec="" can disable the
// privilege wrapper.
func applyOverrides(cmd *cobra.Command, opts *rootOptions, settings *config.Settings) {
	if cmd.Flags().Changed("scratch-dir") {
		settings.ScratchDir = opts.scratchDir
	}
	if cmd.Flags().Changed("runner") {
		settings.Runner = opts.runner
	}
	if cmd.Flags().Changed("pfexec") {
		settings.Pfexec = opts.pfexec
	}
	if cmd.Flags().Changed("artifact-toml-path") {
		settings.ArtifactTomlPath = opts.artifactTomlPath
	}
}
