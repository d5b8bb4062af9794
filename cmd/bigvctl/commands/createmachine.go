// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/juju/bigv/account"
)

const createMachineCommandDoc = `
Create a machine in an existing group. The command fails without
contacting the platform when a machine with the same name already exists
in the group, or when the group does not exist.

Unless --no-wait is given the command returns once the machine is built.
`

const createMachineCommandExamples = `
    bigvctl create-machine app3 web
    bigvctl create-machine db2 db --cores 4 --memory 8 --discs sata:100GB
`

func newCreateMachineCommand() cmd.Command {
	c := &createMachineCommand{}
	c.newAPIFunc = c.openAccount
	return c
}

type createMachineCommand struct {
	baseCommand
	out  cmd.Output
	spec account.MachineSpec
}

// Info implements cmd.Command.
func (c *createMachineCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:     "create-machine",
		Args:     "<name> <group>",
		Purpose:  "Create a machine.",
		Doc:      createMachineCommandDoc,
		Examples: createMachineCommandExamples,
		SeeAlso:  []string{"machines", "show-machine"},
	}
}

// SetFlags implements cmd.Command.
func (c *createMachineCommand) SetFlags(f *gnuflag.FlagSet) {
	c.baseCommand.SetFlags(f)
	f.StringVar(&c.spec.Distribution, "distribution", account.DefaultDistribution, "Operating system image")
	f.IntVar(&c.spec.Cores, "cores", account.DefaultCores, "Number of cores")
	f.IntVar(&c.spec.MemoryGB, "memory", account.DefaultMemoryGB, "Memory in GB")
	f.StringVar(&c.spec.Discs, "discs", account.DefaultDiscs, "Disc specification")
	f.StringVar(&c.spec.ReverseDNS, "rdns", "", "Reverse DNS name of the primary address")
	f.StringVar(&c.spec.RootPassword, "root-password", "", "Root password of the new machine")
	f.BoolVar(&c.spec.NoWait, "no-wait", false, "Return without waiting for the machine to be built")
	c.out.AddFlags(f, "yaml", map[string]cmd.Formatter{
		"yaml": cmd.FormatYaml,
		"json": cmd.FormatJson,
	})
}

// Init implements cmd.Command.
func (c *createMachineCommand) Init(args []string) error {
	if len(args) < 2 {
		return errors.New("machine creation requires a name and a group")
	}
	c.spec.Name, c.spec.Group = args[0], args[1]
	if err := cmd.CheckEmpty(args[2:]); err != nil {
		return err
	}
	return c.spec.Validate()
}

// Run implements cmd.Command.
func (c *createMachineCommand) Run(ctx *cmd.Context) error {
	api, err := c.newAPIFunc()
	if err != nil {
		return errors.Trace(err)
	}
	stdCtx, cancel := interruptible(ctx)
	defer cancel()

	m, err := api.CreateMachine(stdCtx, c.spec)
	if err != nil {
		return errors.Trace(err)
	}
	ctx.Infof("Created machine %s", m.Key())
	return c.out.Write(ctx, machineInfo(m))
}
