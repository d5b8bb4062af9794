// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package account

import (
	"iter"

	"github.com/juju/bigv/account/state"
)

// Group is a read-only view of a group, valid for the generation of
// account state it was read from.
type Group struct {
	account    *Account
	generation uint64
	record     *state.Group
}

// Name returns the group's name.
func (g *Group) Name() string {
	return g.record.Name
}

// ID returns the platform-assigned id of the group.
func (g *Group) ID() int {
	return g.record.ID
}

// Account returns the account the group belongs to.
func (g *Group) Account() *Account {
	return g.account
}

// Generation returns the generation of account state the view was read
// from.
func (g *Group) Generation() uint64 {
	return g.generation
}

// Stale reports whether the account state has been refreshed since the
// view was read.
func (g *Group) Stale() bool {
	return g.account.Generation() != g.generation
}

// Machines returns the machines in the group, in the order the platform
// lists them. It fails with StaleView if the account has been refreshed
// since the group was read.
func (g *Group) Machines() (iter.Seq[*Machine], error) {
	if current := g.account.Generation(); current != g.generation {
		return nil, &Error{
			Kind:       StaleView,
			Generation: g.generation,
			Current:    current,
		}
	}
	return g.machines(), nil
}

func (g *Group) machines() iter.Seq[*Machine] {
	return func(yield func(*Machine) bool) {
		for i := range g.record.Machines {
			if !yield(&Machine{group: g, record: &g.record.Machines[i]}) {
				return
			}
		}
	}
}
