// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	internalcmd "github.com/edgarvarela24/nixspaces/internal/cmd"
	"github.com/edgarvarela24/nixspaces/internal/config"
	"github.com/edgarvarela24/nixspaces/internal/info"
	"github.com/edgarvarela24/nixspaces/internal/logger"
	"github.com/edgarvarela24/nixspaces/internal/version"
)

var (
	appName      = info.AppName
	versionShort = "Display the " + appName + " version"
)

const (
	appShort = "nixspaces is the backend of the NixSpaces development environment platform"

	logFilterFlagName = "log-filter"
	logFilterUsage    = `filter log records with a directive like "nixspaces=debug,http=debug";
	takes precedence over the ` + config.LogFilterEnvName + ` environment variable`

	versionCmdName = "version"
)

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	logFilter string
}

// addFlags registers the persistent CLI flags on cmd.
func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&f.logFilter, logFilterFlagName, "", heredoc.Doc(logFilterUsage))
}

func main() {
	cmd := rootCmd(logger.Global())

	exitCode := 0
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		exitCode = 1
	}

	os.Exit(exitCode)
}

// rootCmd constructs the root Cobra command with shared configuration.
// The logger built from the environment is installed in registry before any command runs.
func rootCmd(registry *logger.Registry) *cobra.Command {
	flag := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				cmd.PrintErrln(err)
				return err
			}

			ctx, err := internalcmd.SetupLogging(cmd.Context(), cmd.ErrOrStderr(), registry, *cfg, flag.logFilter)
			if err != nil {
				cmd.PrintErrln(err)
				return err
			}

			cmd.SetContext(ctx)
			return nil
		},
		RunE: internalcmd.RunStart,
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flag.addFlags(cmd)
	cmd.AddCommand(
		internalcmd.StartCmd(),
		versionCmd(),
	)

	return cmd
}

// versionCmd constructs the Cobra command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: heredoc.Doc(versionShort),

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.NoArgs(cmd, args)
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
			}

			return err
		},
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.ServiceVersionInformation())
		},
	}
}
