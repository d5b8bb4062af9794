// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"context"
	"iter"
	"os"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/juju/bigv/account"
	"github.com/juju/bigv/config"
	"github.com/juju/bigv/tool"
)

// AccountAPI is the part of an account the commands use.
type AccountAPI interface {
	Groups(ctx context.Context) (iter.Seq[*account.Group], error)
	Machines(ctx context.Context, group string) (iter.Seq[*account.Machine], error)
	MachineByKey(ctx context.Context, key string) (*account.Machine, error)
	MachineByID(ctx context.Context, id int) (*account.Machine, error)
	CreateMachine(ctx context.Context, spec account.MachineSpec) (*account.Machine, error)
}

// baseCommand loads the configuration and opens the account for the
// commands embedding it.
type baseCommand struct {
	cmd.CommandBase

	configPath string
	newAPIFunc func() (AccountAPI, error)
}

// SetFlags implements cmd.Command.
func (c *baseCommand) SetFlags(f *gnuflag.FlagSet) {
	f.StringVar(&c.configPath, "config", config.DefaultPath(), "Path to the client configuration file")
}

// openAccount reads the configuration and returns the account it names.
func (c *baseCommand) openAccount() (AccountAPI, error) {
	cfg, err := config.Read(c.configPath)
	if err != nil {
		return nil, errors.Trace(err)
	}
	installed, err := tool.Installed(cfg.ToolPath)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if !installed {
		return nil, errors.NotFoundf("bigv client %q", cfg.ToolPath)
	}
	logger.Debugf("using %s", cfg)
	acc, err := account.New(account.Params{
		Credentials: cfg.Credentials(),
		ToolPath:    cfg.ToolPath,
		Timeout:     cfg.Timeout,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return acc, nil
}

// interruptible returns a context cancelled when the command is
// interrupted, so a running bigv process is killed.
func interruptible(ctx *cmd.Context) (context.Context, func()) {
	stdCtx, cancel := context.WithCancel(context.Background())
	interrupted := make(chan os.Signal, 1)
	ctx.InterruptNotify(interrupted)
	go func() {
		select {
		case <-interrupted:
			logger.Debugf("interrupted")
			cancel()
		case <-stdCtx.Done():
		}
	}()
	return stdCtx, func() {
		ctx.StopInterruptNotify(interrupted)
		cancel()
	}
}
