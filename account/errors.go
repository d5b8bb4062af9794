// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package account

import (
	"fmt"
	"strings"

	"github.com/juju/errors"
)

const (
	// ExecutionFailed is raised when the tool exits with a non-zero status.
	ExecutionFailed = errors.ConstError("command execution failed")

	// DecodeFailed is raised when the tool's output does not match the
	// expected account state schema.
	DecodeFailed = errors.ConstError("account state decode failed")

	// MachineExists is raised when creating a machine whose name is
	// already taken within its group.
	MachineExists = errors.ConstError("machine already exists")

	// GroupNotFound is raised when creating a machine in a group the
	// account does not have.
	GroupNotFound = errors.ConstError("group not found")

	// StaleView is raised when a Group is used after the account state it
	// was read from has been refreshed.
	StaleView = errors.ConstError("stale view")
)

// Error is returned for every failure specific to the account model. Kind
// says which failure occurred and which of the remaining fields are set.
//
// errors.Is(err, kind) matches the kind. In addition MachineExists matches
// errors.AlreadyExists and GroupNotFound matches errors.NotFound.
type Error struct {
	Kind errors.ConstError

	// Command, Code and Stderr are set for ExecutionFailed. Command has the
	// values of secret flags redacted.
	Command string
	Code    int
	Stderr  []byte

	// Err is the underlying cause of a DecodeFailed.
	Err error

	// Key is the composite name@group of the machine for MachineExists.
	Key string

	// Group is the missing group for GroupNotFound.
	Group string

	// Generation and Current are the view's and the account's generation
	// for StaleView.
	Generation uint64
	Current    uint64
}

// Error implements error.
func (e *Error) Error() string {
	switch e.Kind {
	case ExecutionFailed:
		msg := strings.TrimSpace(string(e.Stderr))
		if msg == "" {
			return fmt.Sprintf("%q exited with code %d", e.Command, e.Code)
		}
		return fmt.Sprintf("%q exited with code %d: %s", e.Command, e.Code, msg)
	case DecodeFailed:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case MachineExists:
		return fmt.Sprintf("machine %q already exists", e.Key)
	case GroupNotFound:
		return fmt.Sprintf("group %q not found", e.Group)
	case StaleView:
		return fmt.Sprintf("view from generation %d used at generation %d", e.Generation, e.Current)
	}
	return string(e.Kind)
}

// Is reports whether target is the kind of e or its juju/errors
// equivalent.
func (e *Error) Is(target error) bool {
	if target == error(e.Kind) {
		return true
	}
	switch e.Kind {
	case MachineExists:
		return target == errors.AlreadyExists
	case GroupNotFound:
		return target == errors.NotFound
	}
	return false
}

// Unwrap returns the cause of a DecodeFailed.
func (e *Error) Unwrap() error {
	return e.Err
}
