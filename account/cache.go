// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package account

import (
	"context"

	"github.com/juju/errors"

	"github.com/juju/bigv/account/state"
)

const showCommand = "account show"

type snapshot struct {
	state      *state.Account
	generation uint64
}

// State returns the account state, running `account show` if it has not
// been fetched yet. Later calls return the same value without running the
// tool again, whatever happened on the platform in the meantime.
//
// Concurrent first calls share a single invocation, run with the context
// of the caller that started it.
func (a *Account) State(ctx context.Context) (*state.Account, error) {
	snap, err := a.snapshot(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return snap.state, nil
}

// Refresh discards the cached state and fetches it again. Group and
// Machine values obtained earlier become stale.
func (a *Account) Refresh(ctx context.Context) error {
	a.mu.Lock()
	a.state = nil
	a.generation++
	generation := a.generation
	a.mu.Unlock()
	a.fetches.Forget(showCommand)

	logger.Debugf("refreshing %q at generation %d", a.creds.Account, generation)
	_, err := a.snapshot(ctx)
	return errors.Trace(err)
}

// Generation returns the number of times the state has been refreshed.
func (a *Account) Generation() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generation
}

func (a *Account) cached() (snapshot, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return snapshot{state: a.state, generation: a.generation}, a.state != nil
}

func (a *Account) snapshot(ctx context.Context) (snapshot, error) {
	if snap, ok := a.cached(); ok {
		return snap, nil
	}
	v, err, _ := a.fetches.Do(showCommand, func() (interface{}, error) {
		return a.fetch(ctx)
	})
	if err != nil {
		return snapshot{}, err
	}
	return v.(snapshot), nil
}

// fetch runs `account show` and caches the decoded result, unless the
// cache was invalidated while the tool was running.
func (a *Account) fetch(ctx context.Context) (snapshot, error) {
	snap, ok := a.cached()
	if ok {
		return snap, nil
	}
	result, err := a.Cmd(ctx, showCommand)
	if err != nil {
		return snapshot{}, errors.Annotatef(err, "fetching state of account %q", a.creds.Account)
	}
	decoded, err := state.Decode(result.Stdout)
	if err != nil {
		return snapshot{}, &Error{Kind: DecodeFailed, Err: err}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.generation == snap.generation {
		a.state = decoded
	} else {
		logger.Debugf("discarding state fetched at generation %d, now at %d", snap.generation, a.generation)
	}
	return snapshot{state: decoded, generation: snap.generation}, nil
}
