// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state_test

import (
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/bigv/account/state"
)

type decodeSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&decodeSuite{})

const accountShow = `
---
:name: acme
:id: 7
:groups:
- :name: default
  :id: 1
  :virtual_machines:
  - :name: app1
    :id: 10
    :hostname: app1.default.acme.uk0.bigv.io
    :cores: 2
    :memory: 2048
    :power_on: true
    :distribution: wheezy
  - :name: app2
    :id: 11
- :name: empty
  :id: 2
  :virtual_machines: []
- :name: bare
  :id: 3
`

func (s *decodeSuite) TestDecode(c *gc.C) {
	account, err := state.Decode([]byte(accountShow))
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(account, jc.DeepEquals, &state.Account{
		Name: "acme",
		ID:   7,
		Groups: []state.Group{{
			Name: "default",
			ID:   1,
			Machines: []state.Machine{{
				Name:     "app1",
				ID:       10,
				Hostname: "app1.default.acme.uk0.bigv.io",
				Cores:    2,
				Memory:   2048,
				PowerOn:  true,
			}, {
				Name: "app2",
				ID:   11,
			}},
		}, {
			Name:     "empty",
			ID:       2,
			Machines: []state.Machine{},
		}, {
			Name: "bare",
			ID:   3,
		}},
	})
}

func (s *decodeSuite) TestDecodeNoGroups(c *gc.C) {
	account, err := state.Decode([]byte(":groups: []\n"))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(account.Groups, gc.HasLen, 0)
	c.Check(account.Name, gc.Equals, "")
}

func (s *decodeSuite) TestDecodeEmpty(c *gc.C) {
	_, err := state.Decode(nil)
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}

func (s *decodeSuite) TestDecodeMalformedYAML(c *gc.C) {
	_, err := state.Decode([]byte(":groups: [\n"))
	c.Assert(err, gc.ErrorMatches, `parsing account state: .*`)
}

func (s *decodeSuite) TestDecodeMissingGroups(c *gc.C) {
	_, err := state.Decode([]byte(":name: acme\n"))
	c.Assert(err, gc.ErrorMatches, `validating account state: :groups: expected list, got nothing`)
}

func (s *decodeSuite) TestDecodeNotAMapping(c *gc.C) {
	_, err := state.Decode([]byte("- one\n- two\n"))
	c.Assert(err, gc.ErrorMatches, `validating account state: expected map, got .*`)
}

func (s *decodeSuite) TestDecodeBadGroupID(c *gc.C) {
	_, err := state.Decode([]byte(`
:groups:
- :name: default
  :id: one
`[1:]))
	c.Assert(err, gc.ErrorMatches, `validating account state: :groups\[0\]\.:id: .*`)
}

func (s *decodeSuite) TestDecodeMachineWithoutName(c *gc.C) {
	_, err := state.Decode([]byte(`
:groups:
- :name: default
  :id: 1
  :virtual_machines:
  - :id: 10
`[1:]))
	c.Assert(err, gc.ErrorMatches, `validating account state: :groups\[0\]\.:virtual_machines\[0\]\.:name: expected string, got nothing`)
}

func (s *decodeSuite) TestDecodeDuplicateMachineNames(c *gc.C) {
	account, err := state.Decode([]byte(`
:groups:
- :name: default
  :id: 1
  :virtual_machines:
  - :name: app1
    :id: 10
  - :name: app1
    :id: 11
`[1:]))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(account.Groups[0].Machines, gc.HasLen, 2)
}
