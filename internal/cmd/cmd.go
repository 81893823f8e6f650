// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/edgarvarela24/nixspaces/internal/server"
)

const (
	startCmdUsage = "start"
	startCmdShort = "start the NixSpaces backend"
	startCmdLong  = `Start the NixSpaces backend.
	The backend configures logging, announces its startup and exits.

	Log records are filtered with a directive made of comma separated
	namespace=level items, read from the NIXSPACES_LOG environment variable
	or the --log-filter flag. When the directive is empty or invalid the
	default "nixspaces=debug,http=debug" is used.`

	startCmdExample = `# Start with the default logging filter
	nixspaces start

	# Enable trace records for the workspace subsystem
	NIXSPACES_LOG=nixspaces.workspace=trace nixspaces start`
)

// StartCmd returns the "start" cli command for starting the backend.
func StartCmd() *cobra.Command {
	return &cobra.Command{
		Use:     startCmdUsage,
		Short:   heredoc.Doc(startCmdShort),
		Long:    heredoc.Doc(startCmdLong),
		Example: heredoc.Doc(startCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              RunStart,
	}
}

// RunStart starts a new server with the logger carried by the command context.
func RunStart(cmd *cobra.Command, _ []string) error {
	srv := server.NewServer()
	if err := srv.Start(cmd.Context()); err != nil {
		return handleError(cmd, err)
	}

	return nil
}
