// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/spf13/cobra"
)

// handleError prints err on the command error output and returns it, so the
// process exits with a non zero code.
func handleError(cmd *cobra.Command, err error) error {
	cmd.PrintErrln(err)
	return err
}
