// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package account models a BigV account as a hierarchy of groups and
// machines.
//
// The state of the account is fetched from the bigv tool the first time it
// is needed and cached for the lifetime of the Account. Refresh replaces the
// cached state; Group and Machine values obtained before a refresh are then
// stale.
package account

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/kballard/go-shellquote"
	"golang.org/x/sync/singleflight"

	"github.com/juju/bigv/account/state"
	"github.com/juju/bigv/tool"
)

var logger = loggo.GetLogger("bigv.account")

// Params holds the arguments for New.
type Params struct {
	Credentials tool.Credentials

	// ToolPath is the bigv binary to run. It defaults to tool.DefaultPath.
	ToolPath string

	// Timeout bounds each invocation of the tool. Zero means no limit
	// beyond the caller's context.
	Timeout time.Duration

	// Runner defaults to tool.NewRunner.
	Runner tool.Runner

	// Clock defaults to clock.WallClock.
	Clock clock.Clock
}

// Validate checks that the params are usable.
func (p Params) Validate() error {
	if p.Credentials.Username == "" {
		return errors.NotValidf("empty username")
	}
	if p.Credentials.Account == "" {
		return errors.NotValidf("empty account name")
	}
	if p.Timeout < 0 {
		return errors.NotValidf("negative timeout %v", p.Timeout)
	}
	return nil
}

// Account is a BigV account accessed through the bigv tool. It is safe for
// concurrent use.
type Account struct {
	creds    tool.Credentials
	toolPath string
	timeout  time.Duration
	runner   tool.Runner
	clock    clock.Clock

	fetches singleflight.Group

	mu         sync.Mutex
	state      *state.Account
	generation uint64
}

// New returns an Account for the given credentials. Nothing is run until
// the account is first queried.
func New(p Params) (*Account, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	if p.ToolPath == "" {
		p.ToolPath = tool.DefaultPath
	}
	if p.Clock == nil {
		p.Clock = clock.WallClock
	}
	if p.Runner == nil {
		p.Runner = tool.NewRunner(p.Clock)
	}
	return &Account{
		creds:    p.Credentials,
		toolPath: p.ToolPath,
		timeout:  p.Timeout,
		runner:   p.Runner,
		clock:    p.Clock,
	}, nil
}

// Name returns the name of the account.
func (a *Account) Name() string {
	return a.creds.Account
}

// Cmd runs the tool once with the given command followed by the
// credential and output-mode flags. The command tokens are joined and
// re-split on whitespace, so a single argument cannot contain spaces.
//
// A non-zero exit status is reported as an *Error of kind ExecutionFailed
// carrying the tool's standard error. Output is returned undecoded.
func (a *Account) Cmd(ctx context.Context, command ...string) (*tool.Result, error) {
	tokens := tool.Normalize(command...)
	if len(tokens) == 0 {
		return nil, errors.NotValidf("empty command")
	}
	args := append(tokens, a.creds.Args()...)
	name := strings.Join(tool.Redact(tokens), " ")

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	if logger.IsDebugEnabled() {
		logger.Debugf("running %s", shellquote.Join(append([]string{a.toolPath}, tool.Redact(args)...)...))
	}
	start := a.clock.Now()
	result, err := a.runner.Run(ctx, a.toolPath, args)
	if err != nil {
		return nil, errors.Annotatef(err, "running %q", name)
	}
	logger.Tracef("%q exited with code %d after %v", name, result.Code, a.clock.Now().Sub(start))
	if result.Code != 0 {
		return nil, &Error{
			Kind:    ExecutionFailed,
			Command: name,
			Code:    result.Code,
			Stderr:  result.Stderr,
		}
	}
	return result, nil
}
