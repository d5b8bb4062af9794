// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"strconv"
	"strings"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/juju/bigv/account"
)

const showMachineCommandDoc = `
Show a single machine, named either by its key (name@group) or by its
numeric id.
`

const showMachineCommandExamples = `
    bigvctl show-machine app1@web
    bigvctl show-machine 10 --format json
`

func newShowMachineCommand() cmd.Command {
	c := &showMachineCommand{}
	c.newAPIFunc = c.openAccount
	return c
}

type showMachineCommand struct {
	baseCommand
	out cmd.Output
	key string
	id  int
}

// Info implements cmd.Command.
func (c *showMachineCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:     "show-machine",
		Args:     "<name>@<group> | <id>",
		Purpose:  "Show a machine.",
		Doc:      showMachineCommandDoc,
		Examples: showMachineCommandExamples,
		SeeAlso:  []string{"machines"},
	}
}

// SetFlags implements cmd.Command.
func (c *showMachineCommand) SetFlags(f *gnuflag.FlagSet) {
	c.baseCommand.SetFlags(f)
	c.out.AddFlags(f, "yaml", map[string]cmd.Formatter{
		"yaml": cmd.FormatYaml,
		"json": cmd.FormatJson,
	})
}

// Init implements cmd.Command.
func (c *showMachineCommand) Init(args []string) error {
	if len(args) == 0 {
		return errors.New("no machine specified")
	}
	arg, err := cmd.ZeroOrOneArgs(args)
	if err != nil {
		return err
	}
	if id, err := strconv.Atoi(arg); err == nil {
		if id <= 0 {
			return errors.NotValidf("machine id %d", id)
		}
		c.id = id
		return nil
	}
	name, group, ok := strings.Cut(arg, "@")
	if !ok || name == "" || group == "" {
		return errors.NotValidf("machine %q (expected <name>@<group> or an id)", arg)
	}
	c.key = account.MachineKey(name, group)
	return nil
}

// Run implements cmd.Command.
func (c *showMachineCommand) Run(ctx *cmd.Context) error {
	api, err := c.newAPIFunc()
	if err != nil {
		return errors.Trace(err)
	}
	stdCtx, cancel := interruptible(ctx)
	defer cancel()

	var m *account.Machine
	if c.id != 0 {
		m, err = api.MachineByID(stdCtx, c.id)
	} else {
		m, err = api.MachineByKey(stdCtx, c.key)
	}
	if err != nil {
		return errors.Trace(err)
	}
	if m == nil {
		if c.id != 0 {
			return errors.NotFoundf("machine %d", c.id)
		}
		return errors.NotFoundf("machine %q", c.key)
	}
	return c.out.Write(ctx, machineInfo(m))
}
