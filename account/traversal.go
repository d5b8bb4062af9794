// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package account

import (
	"context"
	"iter"

	"github.com/juju/errors"
)

// Groups returns the account's groups in the order the platform lists
// them. The sequence may be ranged over any number of times; each pass
// walks the state cached when Groups was called.
func (a *Account) Groups(ctx context.Context) (iter.Seq[*Group], error) {
	snap, err := a.snapshot(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return func(yield func(*Group) bool) {
		for i := range snap.state.Groups {
			g := &Group{
				account:    a,
				generation: snap.generation,
				record:     &snap.state.Groups[i],
			}
			if !yield(g) {
				return
			}
		}
	}, nil
}

// GroupQuery selects a group by name, by id, or by either.
type GroupQuery struct {
	Name string
	// ID is ignored when zero.
	ID int
}

func (q GroupQuery) empty() bool {
	return q.Name == "" && q.ID == 0
}

func (q GroupQuery) matches(g *Group) bool {
	if q.Name != "" && g.Name() == q.Name {
		return true
	}
	return q.ID != 0 && g.ID() == q.ID
}

// Group returns the first group, in listing order, whose name equals
// q.Name or whose id equals q.ID. When both are given a group matching
// either one is returned, so an earlier group with the requested id wins
// over a later group with the requested name. Group returns nil if nothing
// matches or the query is empty.
func (a *Account) Group(ctx context.Context, q GroupQuery) (*Group, error) {
	if q.empty() {
		return nil, nil
	}
	groups, err := a.Groups(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	for g := range groups {
		if q.matches(g) {
			return g, nil
		}
	}
	return nil, nil
}

// GroupByName returns the group with the given name, or nil.
func (a *Account) GroupByName(ctx context.Context, name string) (*Group, error) {
	return a.Group(ctx, GroupQuery{Name: name})
}

// GroupByID returns the group with the given id, or nil.
func (a *Account) GroupByID(ctx context.Context, id int) (*Group, error) {
	return a.Group(ctx, GroupQuery{ID: id})
}

// Machines returns the machines of every group, group by group, in listing
// order. If group is not empty only the machines of that group are
// returned.
func (a *Account) Machines(ctx context.Context, group string) (iter.Seq[*Machine], error) {
	groups, err := a.Groups(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return func(yield func(*Machine) bool) {
		for g := range groups {
			if group != "" && g.Name() != group {
				continue
			}
			for m := range g.machines() {
				if !yield(m) {
					return
				}
			}
		}
	}, nil
}

// MachineQuery selects a machine by composite key, by id, or by either.
type MachineQuery struct {
	// Key is the name@group composite key.
	Key string
	// ID is ignored when zero.
	ID int
}

func (q MachineQuery) empty() bool {
	return q.Key == "" && q.ID == 0
}

func (q MachineQuery) matches(m *Machine) bool {
	if q.Key != "" && m.Key() == q.Key {
		return true
	}
	return q.ID != 0 && m.ID() == q.ID
}

// Machine returns the first machine, in listing order, whose composite key
// equals q.Key or whose id equals q.ID, following the same rules as Group.
// Machine returns nil if nothing matches or the query is empty.
func (a *Account) Machine(ctx context.Context, q MachineQuery) (*Machine, error) {
	if q.empty() {
		return nil, nil
	}
	machines, err := a.Machines(ctx, "")
	if err != nil {
		return nil, errors.Trace(err)
	}
	for m := range machines {
		if q.matches(m) {
			return m, nil
		}
	}
	return nil, nil
}

// MachineByKey returns the machine with the given name@group key, or nil.
func (a *Account) MachineByKey(ctx context.Context, key string) (*Machine, error) {
	return a.Machine(ctx, MachineQuery{Key: key})
}

// MachineByID returns the machine with the given id, or nil.
func (a *Account) MachineByID(ctx context.Context, id int) (*Machine, error) {
	return a.Machine(ctx, MachineQuery{ID: id})
}
