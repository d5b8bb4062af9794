// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"io"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"

	"github.com/juju/bigv/account"
	"github.com/juju/bigv/cmd/output"
)

// GroupInfo is the serializable form of a group.
type GroupInfo struct {
	Name     string   `yaml:"name" json:"name"`
	ID       int      `yaml:"id" json:"id"`
	Machines []string `yaml:"machines,omitempty" json:"machines,omitempty"`
}

// MachineInfo is the serializable form of a machine.
type MachineInfo struct {
	Name     string `yaml:"name" json:"name"`
	ID       int    `yaml:"id" json:"id"`
	Group    string `yaml:"group" json:"group"`
	Hostname string `yaml:"hostname,omitempty" json:"hostname,omitempty"`
	Cores    int    `yaml:"cores,omitempty" json:"cores,omitempty"`
	Memory   int    `yaml:"memory,omitempty" json:"memory,omitempty"`
	PowerOn  bool   `yaml:"power-on" json:"power-on"`
}

func machineInfo(m *account.Machine) MachineInfo {
	return MachineInfo{
		Name:     m.Name(),
		ID:       m.ID(),
		Group:    m.Group().Name(),
		Hostname: m.Hostname(),
		Cores:    m.Cores(),
		Memory:   m.Memory(),
		PowerOn:  m.PowerOn(),
	}
}

func formatters(tabular cmd.Formatter) map[string]cmd.Formatter {
	return map[string]cmd.Formatter{
		"yaml":    cmd.FormatYaml,
		"json":    cmd.FormatJson,
		"tabular": tabular,
	}
}

func formatGroupsTabular(writer io.Writer, value interface{}) error {
	groups, ok := value.([]GroupInfo)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", groups, value)
	}
	w := output.Wrap(writer)
	w.Println("GROUP", "ID", "MACHINES")
	for _, g := range groups {
		w.Println(g.Name, g.ID, len(g.Machines))
	}
	return w.Flush()
}

func formatMachinesTabular(writer io.Writer, value interface{}) error {
	machines, ok := value.([]MachineInfo)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", machines, value)
	}
	w := output.Wrap(writer)
	w.Println("MACHINE", "ID", "GROUP", "HOSTNAME", "CORES", "MEMORY", "POWER")
	for _, m := range machines {
		power := "off"
		if m.PowerOn {
			power = "on"
		}
		w.Println(m.Name, m.ID, m.Group, m.Hostname, m.Cores, m.Memory, power)
	}
	return w.Flush()
}
