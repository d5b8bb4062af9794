// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package commands implements the bigvctl command line.
package commands

import (
	"fmt"
	"os"

	"github.com/juju/cmd/v3"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("bigv.cmd")

const bigvctlDoc = `
bigvctl inspects the groups and machines of a BigV account and creates
machines in it. It drives the bigv client, which must be installed.

Credentials are read from ~/.bigv/client.yaml or from the BIGV_USER,
BIGV_PASSWORD, BIGV_ACCOUNT and BIGV_YUBIKEY environment variables.
`

// NewBigvctlCommand returns the super command holding every bigvctl
// subcommand.
func NewBigvctlCommand() *cmd.SuperCommand {
	bigvctl := cmd.NewSuperCommand(cmd.SuperCommandParams{
		Name:    "bigvctl",
		Purpose: "Inspect and create BigV machines.",
		Doc:     bigvctlDoc,
		Log:     &cmd.Log{},
	})
	bigvctl.Register(newGroupsCommand())
	bigvctl.Register(newMachinesCommand())
	bigvctl.Register(newShowMachineCommand())
	bigvctl.Register(newCreateMachineCommand())
	return bigvctl
}

// Main runs bigvctl with the given arguments, the first being the
// program name, and returns the exit code.
func Main(args []string) int {
	ctx, err := cmd.DefaultContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	return cmd.Main(NewBigvctlCommand(), ctx, args[1:])
}
