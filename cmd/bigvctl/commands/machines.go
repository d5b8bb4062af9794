// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
)

const machinesCommandDoc = `
List the machines of the account, in group order. With --group only the
machines of that group are listed.
`

const machinesCommandExamples = `
    bigvctl machines
    bigvctl machines --group web --format json
`

func newMachinesCommand() cmd.Command {
	c := &machinesCommand{}
	c.newAPIFunc = c.openAccount
	return c
}

type machinesCommand struct {
	baseCommand
	out   cmd.Output
	group string
}

// Info implements cmd.Command.
func (c *machinesCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:     "machines",
		Purpose:  "List the machines of the account.",
		Doc:      machinesCommandDoc,
		Examples: machinesCommandExamples,
		Aliases:  []string{"list-machines"},
		SeeAlso:  []string{"groups", "show-machine"},
	}
}

// SetFlags implements cmd.Command.
func (c *machinesCommand) SetFlags(f *gnuflag.FlagSet) {
	c.baseCommand.SetFlags(f)
	f.StringVar(&c.group, "group", "", "Only list the machines of this group")
	c.out.AddFlags(f, "tabular", formatters(formatMachinesTabular))
}

// Init implements cmd.Command.
func (c *machinesCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements cmd.Command.
func (c *machinesCommand) Run(ctx *cmd.Context) error {
	api, err := c.newAPIFunc()
	if err != nil {
		return errors.Trace(err)
	}
	stdCtx, cancel := interruptible(ctx)
	defer cancel()

	machines, err := api.Machines(stdCtx, c.group)
	if err != nil {
		return errors.Trace(err)
	}
	infos := []MachineInfo{}
	for m := range machines {
		infos = append(infos, machineInfo(m))
	}
	if len(infos) == 0 {
		ctx.Infof("No machines to display.")
		return nil
	}
	return c.out.Write(ctx, infos)
}
