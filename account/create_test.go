// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package account

import (
	"context"

	"github.com/juju/errors"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/juju/bigv/tool"
)

type createSuite struct {
	baseSuite
}

var _ = gc.Suite(&createSuite{})

const accountShowWithApp3 = `
:groups:
- :name: web
  :id: 1
  :virtual_machines:
  - :name: app1
    :id: 10
  - :name: app2
    :id: 11
  - :name: app3
    :id: 12
`

func (s *createSuite) TestCreateMachine(c *gc.C) {
	defer s.setupMocks(c).Finish()

	gomock.InOrder(
		s.expectShow(accountShow),
		s.runner.EXPECT().Run(gomock.Any(), tool.DefaultPath, commandArgs(
			"vm", "new",
			"--vm-name", "app3",
			"--vm-distribution", "wheezy",
			"--vm-cores", "1",
			"--vm-memory", "1",
			"--vm-discs", "sata:25GB",
			"--group-name", "web",
		)).Return(&tool.Result{}, nil),
		s.expectShow(accountShowWithApp3),
	)

	account := s.newAccount(c)
	machine, err := account.CreateMachine(context.Background(), MachineSpec{
		Name:  "app3",
		Group: "web",
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(machine, gc.NotNil)
	c.Check(machine.Key(), gc.Equals, "app3@web")
	c.Check(machine.ID(), gc.Equals, 12)
	c.Check(machine.Stale(), jc.IsFalse)
	c.Check(account.Generation(), gc.Equals, uint64(1))
}

func (s *createSuite) TestCreateMachineAllOptions(c *gc.C) {
	defer s.setupMocks(c).Finish()

	gomock.InOrder(
		s.expectShow(accountShow),
		s.runner.EXPECT().Run(gomock.Any(), tool.DefaultPath, commandArgs(
			"vm", "new",
			"--vm-name", "app3",
			"--vm-distribution", "squeeze",
			"--vm-cores", "4",
			"--vm-memory", "8",
			"--vm-discs", "sata:25GB,archive:200GB",
			"--group-name", "web",
			"--rdns", "app3.example.com",
			"--vm-root-password", "r00t",
			"--no-wait",
		)).Return(&tool.Result{}, nil),
		s.expectShow(accountShowWithApp3),
	)

	machine, err := s.newAccount(c).CreateMachine(context.Background(), MachineSpec{
		Name:         "app3",
		Group:        "web",
		Distribution: "squeeze",
		Cores:        4,
		MemoryGB:     8,
		Discs:        "sata:25GB,archive:200GB",
		ReverseDNS:   "app3.example.com",
		RootPassword: "r00t",
		NoWait:       true,
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(machine.Key(), gc.Equals, "app3@web")
}

func (s *createSuite) TestCreateMachineCollision(c *gc.C) {
	defer s.setupMocks(c).Finish()

	// Only the state fetch runs; vm new is never invoked.
	s.expectShow(accountShow).Times(1)

	machine, err := s.newAccount(c).CreateMachine(context.Background(), MachineSpec{
		Name:  "app1",
		Group: "db",
	})
	c.Assert(err, gc.ErrorMatches, `machine "app1@db" already exists`)
	c.Check(machine, gc.IsNil)
	c.Check(err, jc.ErrorIs, MachineExists)
	c.Check(err, jc.ErrorIs, errors.AlreadyExists)

	var createErr *Error
	c.Assert(errors.As(err, &createErr), jc.IsTrue)
	c.Check(createErr.Key, gc.Equals, "app1@db")
}

func (s *createSuite) TestCreateMachineGroupNotFound(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.expectShow(accountShow).Times(1)

	_, err := s.newAccount(c).CreateMachine(context.Background(), MachineSpec{
		Name:  "app1",
		Group: "staging",
	})
	c.Assert(err, gc.ErrorMatches, `group "staging" not found`)
	c.Check(err, jc.ErrorIs, GroupNotFound)
	c.Check(err, jc.ErrorIs, errors.NotFound)
	c.Check(err, gc.Not(jc.ErrorIs), MachineExists)
}

func (s *createSuite) TestCreateMachineExecutionFailure(c *gc.C) {
	defer s.setupMocks(c).Finish()

	gomock.InOrder(
		s.expectShow(accountShow),
		s.runner.EXPECT().Run(gomock.Any(), tool.DefaultPath, commandArgs(
			"vm", "new",
			"--vm-name", "app3",
			"--vm-distribution", "wheezy",
			"--vm-cores", "1",
			"--vm-memory", "1",
			"--vm-discs", "sata:25GB",
			"--group-name", "web",
			"--vm-root-password", "s3cret",
		)).Return(&tool.Result{Code: 1, Stderr: []byte("Sorry, insufficient credit\n")}, nil),
	)

	account := s.newAccount(c)
	_, err := account.CreateMachine(context.Background(), MachineSpec{
		Name:         "app3",
		Group:        "web",
		RootPassword: "s3cret",
	})
	c.Assert(err, gc.ErrorMatches, `creating machine "app3@web": "vm new --vm-name app3 --vm-distribution wheezy --vm-cores 1 --vm-memory 1 --vm-discs sata:25GB --group-name web --vm-root-password <redacted>" exited with code 1: Sorry, insufficient credit`)
	c.Check(err.Error(), gc.Not(jc.Contains), "s3cret")
	c.Check(err, jc.ErrorIs, ExecutionFailed)
	c.Check(account.Generation(), gc.Equals, uint64(0))
}

func (s *createSuite) TestCreateMachineNotListedAfterwards(c *gc.C) {
	defer s.setupMocks(c).Finish()

	gomock.InOrder(
		s.expectShow(accountShow),
		s.runner.EXPECT().Run(gomock.Any(), tool.DefaultPath, gomock.Any()).Return(&tool.Result{}, nil),
		s.expectShow(accountShow),
	)

	_, err := s.newAccount(c).CreateMachine(context.Background(), MachineSpec{
		Name:   "app3",
		Group:  "web",
		NoWait: true,
	})
	c.Assert(err, gc.ErrorMatches, `machine "app3@web" after creation not found`)
	c.Check(err, jc.ErrorIs, errors.NotFound)
}

func (s *createSuite) TestCreateMachineStateFailure(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.expectShowFailure(1, "Sorry, bad password\n")

	_, err := s.newAccount(c).CreateMachine(context.Background(), MachineSpec{
		Name:  "app3",
		Group: "web",
	})
	c.Assert(err, jc.ErrorIs, ExecutionFailed)
}

func (s *createSuite) TestCreateMachineInvalidSpec(c *gc.C) {
	defer s.setupMocks(c).Finish()

	account := s.newAccount(c)
	for i, test := range []struct {
		spec MachineSpec
		err  string
	}{{
		spec: MachineSpec{Group: "web"},
		err:  "empty machine name not valid",
	}, {
		spec: MachineSpec{Name: "app3"},
		err:  "empty group name not valid",
	}, {
		spec: MachineSpec{Name: "app3@web", Group: "web"},
		err:  `machine name "app3@web" containing @ not valid`,
	}, {
		spec: MachineSpec{Name: "app3", Group: "web", Cores: -1},
		err:  "-1 cores not valid",
	}, {
		spec: MachineSpec{Name: "app3", Group: "web", MemoryGB: -2},
		err:  "-2GB of memory not valid",
	}, {
		spec: MachineSpec{Name: "app3", Group: "web", RootPassword: "two words"},
		err:  "root password containing whitespace not valid",
	}} {
		c.Logf("test %d", i)
		_, err := account.CreateMachine(context.Background(), test.spec)
		c.Check(err, gc.ErrorMatches, test.err)
		c.Check(err, jc.ErrorIs, errors.NotValid)
	}
}

func (s *createSuite) TestMachineSpecDefaults(c *gc.C) {
	spec := MachineSpec{Name: "app3", Group: "web"}.withDefaults()
	c.Check(spec, jc.DeepEquals, MachineSpec{
		Name:         "app3",
		Group:        "web",
		Distribution: "wheezy",
		Cores:        1,
		MemoryGB:     1,
		Discs:        "sata:25GB",
	})
}
