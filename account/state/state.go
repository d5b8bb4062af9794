// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package state decodes the account state printed by `bigv account show`.
//
// The tool emits YAML whose keys are Ruby symbols, such as ":groups" and
// ":virtual_machines". The document is checked against a schema before it
// is mapped onto the types below, so a malformed document never yields a
// partially filled Account.
package state

import (
	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/schema"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var logger = loggo.GetLogger("bigv.state")

const (
	nameKey     = ":name"
	idKey       = ":id"
	groupsKey   = ":groups"
	machinesKey = ":virtual_machines"
	hostnameKey = ":hostname"
	coresKey    = ":cores"
	memoryKey   = ":memory"
	powerOnKey  = ":power_on"
)

// Account is the state of an account as of a single fetch.
type Account struct {
	Name   string  `mapstructure:":name"`
	ID     int     `mapstructure:":id"`
	Groups []Group `mapstructure:":groups"`
}

// Group is a named bucket of machines.
type Group struct {
	Name     string    `mapstructure:":name"`
	ID       int       `mapstructure:":id"`
	Machines []Machine `mapstructure:":virtual_machines"`
}

// Machine is a virtual server. Only Name and ID are guaranteed to be
// reported; the remaining fields are zero when the tool omits them.
type Machine struct {
	Name     string `mapstructure:":name"`
	ID       int    `mapstructure:":id"`
	Hostname string `mapstructure:":hostname"`
	Cores    int    `mapstructure:":cores"`
	// Memory is in MiB.
	Memory  int  `mapstructure:":memory"`
	PowerOn bool `mapstructure:":power_on"`
}

var machineChecker = schema.FieldMap(
	schema.Fields{
		nameKey:     schema.String(),
		idKey:       schema.ForceInt(),
		hostnameKey: schema.String(),
		coresKey:    schema.ForceInt(),
		memoryKey:   schema.ForceInt(),
		powerOnKey:  schema.Bool(),
	},
	schema.Defaults{
		hostnameKey: schema.Omit,
		coresKey:    schema.Omit,
		memoryKey:   schema.Omit,
		powerOnKey:  schema.Omit,
	},
)

var groupChecker = schema.FieldMap(
	schema.Fields{
		nameKey:     schema.String(),
		idKey:       schema.ForceInt(),
		machinesKey: schema.List(machineChecker),
	},
	schema.Defaults{
		machinesKey: schema.Omit,
	},
)

var accountChecker = schema.FieldMap(
	schema.Fields{
		nameKey:   schema.String(),
		idKey:     schema.ForceInt(),
		groupsKey: schema.List(groupChecker),
	},
	schema.Defaults{
		nameKey: schema.Omit,
		idKey:   schema.Omit,
	},
)

// Decode parses the output of `bigv account show`.
func Decode(data []byte) (*Account, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Annotate(err, "parsing account state")
	}
	if raw == nil {
		return nil, errors.NotValidf("empty account state")
	}
	coerced, err := accountChecker.Coerce(raw, nil)
	if err != nil {
		return nil, errors.Annotate(err, "validating account state")
	}
	var account Account
	if err := mapstructure.Decode(coerced, &account); err != nil {
		return nil, errors.Annotate(err, "mapping account state")
	}
	warnDuplicateKeys(&account)
	return &account, nil
}

// warnDuplicateKeys logs machines sharing a name within a group. Machine
// creation refuses to add such duplicates but nothing stops them existing.
func warnDuplicateKeys(account *Account) {
	for _, g := range account.Groups {
		seen := set.NewStrings()
		for _, m := range g.Machines {
			if seen.Contains(m.Name) {
				logger.Warningf("group %q lists machine %q more than once", g.Name, m.Name)
				continue
			}
			seen.Add(m.Name)
		}
	}
}
