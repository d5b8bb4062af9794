// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
)

const groupsCommandDoc = `
List the groups of the account together with the machines in each.
`

const groupsCommandExamples = `
    bigvctl groups
    bigvctl groups --format yaml
`

func newGroupsCommand() cmd.Command {
	c := &groupsCommand{}
	c.newAPIFunc = c.openAccount
	return c
}

type groupsCommand struct {
	baseCommand
	out cmd.Output
}

// Info implements cmd.Command.
func (c *groupsCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:     "groups",
		Purpose:  "List the groups of the account.",
		Doc:      groupsCommandDoc,
		Examples: groupsCommandExamples,
		Aliases:  []string{"list-groups"},
		SeeAlso:  []string{"machines"},
	}
}

// SetFlags implements cmd.Command.
func (c *groupsCommand) SetFlags(f *gnuflag.FlagSet) {
	c.baseCommand.SetFlags(f)
	c.out.AddFlags(f, "tabular", formatters(formatGroupsTabular))
}

// Init implements cmd.Command.
func (c *groupsCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements cmd.Command.
func (c *groupsCommand) Run(ctx *cmd.Context) error {
	api, err := c.newAPIFunc()
	if err != nil {
		return errors.Trace(err)
	}
	stdCtx, cancel := interruptible(ctx)
	defer cancel()

	groups, err := api.Groups(stdCtx)
	if err != nil {
		return errors.Trace(err)
	}
	infos := []GroupInfo{}
	for g := range groups {
		machines, err := g.Machines()
		if err != nil {
			return errors.Trace(err)
		}
		info := GroupInfo{Name: g.Name(), ID: g.ID()}
		for m := range machines {
			info.Machines = append(info.Machines, m.Name())
		}
		infos = append(infos, info)
	}
	if len(infos) == 0 {
		ctx.Infof("No groups to display.")
		return nil
	}
	return c.out.Write(ctx, infos)
}
