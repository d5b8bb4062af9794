// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package tool

import "strings"

const redacted = "<redacted>"

// Credentials identify the user and account every invocation acts on.
type Credentials struct {
	Username string
	Password string
	Account  string

	// Yubikey is a one-time code from a hardware token. When empty the
	// tool is told not to prompt for one.
	Yubikey string
}

// Args returns the flags appended to every invocation: authentication
// followed by the non-interactive, machine-readable output mode.
func (c Credentials) Args() []string {
	args := []string{
		"--username", c.Username,
		"--password", c.Password,
		"--account", c.Account,
		"--batch",
		"--yaml",
	}
	if c.Yubikey != "" {
		return append(args, "--yubikey", c.Yubikey)
	}
	return append(args, "--no-yubikey")
}

// Normalize joins the command tokens with spaces and splits the result on
// whitespace. Arguments containing whitespace are split apart.
func Normalize(command ...string) []string {
	return strings.Fields(strings.Join(command, " "))
}

// Redact returns a copy of args with the values of the secret flags
// replaced, suitable for logging.
func Redact(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out)-1; i++ {
		switch out[i] {
		case "--password", "--yubikey", "--vm-root-password":
			out[i+1] = redacted
			i++
		}
	}
	return out
}
