// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package tool runs the bigv command line client.
//
// Every invocation is a single subprocess. The arguments are quoted for the
// shell that utils/exec starts, so each token reaches bigv exactly as given.
package tool

import (
	"context"
	"io/fs"
	osexec "os/exec"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/utils/v4/exec"
	"github.com/kballard/go-shellquote"
)

// DefaultPath is where the bigv client is installed by its packages.
const DefaultPath = "/usr/bin/bigv"

var logger = loggo.GetLogger("bigv.tool")

// Result holds the outcome of one invocation of the tool. The output
// streams are returned exactly as captured.
type Result struct {
	Code   int
	Stdout []byte
	Stderr []byte
}

// Runner runs the tool found at path with the given arguments, blocking
// until it exits or ctx is done.
type Runner interface {
	Run(ctx context.Context, path string, args []string) (*Result, error)
}

// NewRunner returns a Runner that starts the tool through utils/exec.
func NewRunner(clock clock.Clock) Runner {
	return &shellRunner{clock: clock}
}

type shellRunner struct {
	clock clock.Clock
}

// Run implements Runner. When ctx is done the whole process group of the
// shell is terminated, so the tool itself dies with it.
func (r *shellRunner) Run(ctx context.Context, path string, args []string) (*Result, error) {
	params := &exec.RunParams{
		Commands:    shellquote.Join(append([]string{path}, args...)...),
		Clock:       r.clock,
		KillProcess: exec.KillProcess,
	}
	if err := params.Run(); err != nil {
		return nil, errors.Annotatef(err, "starting %s", path)
	}
	resp, err := params.WaitWithCancel(ctx.Done())
	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.Debugf("%s abandoned: %v", path, ctxErr)
		return nil, errors.Trace(ctxErr)
	}
	if err != nil {
		return nil, errors.Annotatef(err, "running %s", path)
	}
	return &Result{
		Code:   resp.Code,
		Stdout: resp.Stdout,
		Stderr: resp.Stderr,
	}, nil
}

// Installed reports whether the tool can be found at path. A path without
// a directory component is looked up in $PATH. When the tool is missing,
// Installed returns (false, nil); other errors result in (false, err).
func Installed(path string) (bool, error) {
	_, err := osexec.LookPath(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, osexec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Annotatef(err, "looking for %q", path)
}
