// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package account

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/juju/errors"
)

// Defaults applied to the zero fields of a MachineSpec.
const (
	DefaultDistribution = "wheezy"
	DefaultCores        = 1
	DefaultMemoryGB     = 1
	DefaultDiscs        = "sata:25GB"
)

// MachineSpec describes a machine to create.
type MachineSpec struct {
	Name  string
	Group string

	Distribution string
	Cores        int
	MemoryGB     int
	// Discs is a comma separated list of grade:size pairs.
	Discs string

	// ReverseDNS and RootPassword are only passed on when set.
	ReverseDNS   string
	RootPassword string

	// NoWait returns as soon as the platform accepts the request rather
	// than when the machine has been built.
	NoWait bool
}

func (s MachineSpec) withDefaults() MachineSpec {
	if s.Distribution == "" {
		s.Distribution = DefaultDistribution
	}
	if s.Cores == 0 {
		s.Cores = DefaultCores
	}
	if s.MemoryGB == 0 {
		s.MemoryGB = DefaultMemoryGB
	}
	if s.Discs == "" {
		s.Discs = DefaultDiscs
	}
	return s
}

// Validate checks the spec. Values are passed through Cmd, which splits
// on whitespace, so none of them may contain any.
func (s MachineSpec) Validate() error {
	if s.Name == "" {
		return errors.NotValidf("empty machine name")
	}
	if strings.Contains(s.Name, "@") {
		return errors.NotValidf("machine name %q containing @", s.Name)
	}
	if s.Group == "" {
		return errors.NotValidf("empty group name")
	}
	if s.Cores < 0 {
		return errors.NotValidf("%d cores", s.Cores)
	}
	if s.MemoryGB < 0 {
		return errors.NotValidf("%dGB of memory", s.MemoryGB)
	}
	for flag, value := range map[string]string{
		"name":          s.Name,
		"group":         s.Group,
		"distribution":  s.Distribution,
		"discs":         s.Discs,
		"reverse DNS":   s.ReverseDNS,
		"root password": s.RootPassword,
	} {
		if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
			return errors.NotValidf("%s containing whitespace", flag)
		}
	}
	return nil
}

func (s MachineSpec) args() []string {
	args := []string{
		"vm", "new",
		"--vm-name", s.Name,
		"--vm-distribution", s.Distribution,
		"--vm-cores", strconv.Itoa(s.Cores),
		"--vm-memory", strconv.Itoa(s.MemoryGB),
		"--vm-discs", s.Discs,
		"--group-name", s.Group,
	}
	if s.ReverseDNS != "" {
		args = append(args, "--rdns", s.ReverseDNS)
	}
	if s.RootPassword != "" {
		args = append(args, "--vm-root-password", s.RootPassword)
	}
	if s.NoWait {
		args = append(args, "--no-wait")
	}
	return args
}

// CreateMachine creates a machine and returns it as listed by the
// platform afterwards.
//
// It fails with MachineExists if the group already has a machine of that
// name, and with GroupNotFound if the account has no such group. Neither
// check runs the tool beyond fetching the account state. Once the machine
// is created the account state is refreshed, so views obtained earlier
// become stale.
func (a *Account) CreateMachine(ctx context.Context, spec MachineSpec) (*Machine, error) {
	spec = spec.withDefaults()
	if err := spec.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	key := MachineKey(spec.Name, spec.Group)

	existing, err := a.MachineByKey(ctx, key)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if existing != nil {
		return nil, &Error{Kind: MachineExists, Key: key}
	}
	group, err := a.GroupByName(ctx, spec.Group)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if group == nil {
		return nil, &Error{Kind: GroupNotFound, Group: spec.Group}
	}

	logger.Infof("creating machine %q", key)
	if _, err := a.Cmd(ctx, spec.args()...); err != nil {
		return nil, errors.Annotatef(err, "creating machine %q", key)
	}
	if err := a.Refresh(ctx); err != nil {
		return nil, errors.Annotatef(err, "machine %q created", key)
	}
	machine, err := a.MachineByKey(ctx, key)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if machine == nil {
		return nil, errors.NotFoundf("machine %q after creation", key)
	}
	return machine, nil
}
