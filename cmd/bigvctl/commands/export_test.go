// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import "github.com/juju/cmd/v3"

var (
	NewGroupsCommand        = newGroupsCommand
	NewMachinesCommand      = newMachinesCommand
	NewShowMachineCommand   = newShowMachineCommand
	NewCreateMachineCommand = newCreateMachineCommand
)

func apiFunc(api AccountAPI) func() (AccountAPI, error) {
	return func() (AccountAPI, error) {
		return api, nil
	}
}

func NewGroupsCommandForTest(api AccountAPI) cmd.Command {
	c := &groupsCommand{}
	c.newAPIFunc = apiFunc(api)
	return c
}

func NewMachinesCommandForTest(api AccountAPI) cmd.Command {
	c := &machinesCommand{}
	c.newAPIFunc = apiFunc(api)
	return c
}

func NewShowMachineCommandForTest(api AccountAPI) cmd.Command {
	c := &showMachineCommand{}
	c.newAPIFunc = apiFunc(api)
	return c
}

func NewCreateMachineCommandForTest(api AccountAPI) cmd.Command {
	c := &createMachineCommand{}
	c.newAPIFunc = apiFunc(api)
	return c
}
