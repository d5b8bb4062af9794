// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package account

import "github.com/juju/bigv/account/state"

// MachineKey returns the composite key identifying a machine by its name
// and the name of its group.
func MachineKey(name, group string) string {
	return name + "@" + group
}

// Machine is a read-only view of a machine.
type Machine struct {
	group  *Group
	record *state.Machine
}

// Name returns the machine's name, unique within its group.
func (m *Machine) Name() string {
	return m.record.Name
}

// ID returns the platform-assigned id of the machine.
func (m *Machine) ID() int {
	return m.record.ID
}

// Group returns the group the machine was read from.
func (m *Machine) Group() *Group {
	return m.group
}

// Key returns the machine's composite name@group key.
func (m *Machine) Key() string {
	return MachineKey(m.Name(), m.group.Name())
}

// Hostname returns the machine's fully qualified hostname, if listed.
func (m *Machine) Hostname() string {
	return m.record.Hostname
}

// Cores returns the number of cores, or zero if not listed.
func (m *Machine) Cores() int {
	return m.record.Cores
}

// Memory returns the machine's memory in MiB.
func (m *Machine) Memory() int {
	return m.record.Memory
}

// PowerOn reports whether the machine is powered on.
func (m *Machine) PowerOn() bool {
	return m.record.PowerOn
}

// Stale reports whether the account state has been refreshed since the
// view was read.
func (m *Machine) Stale() bool {
	return m.group.Stale()
}
