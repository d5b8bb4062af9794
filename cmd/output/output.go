// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package output holds helpers shared by the bigvctl formatters.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/juju/ansiterm"
)

// TabWriter returns a new tab writer with the column layout used by every
// tabular formatter.
func TabWriter(writer io.Writer) *ansiterm.TabWriter {
	const (
		// To format things into columns.
		minwidth = 0
		tabwidth = 1
		padding  = 2
		padchar  = ' '
		flags    = 0
	)
	return ansiterm.NewTabWriter(writer, minwidth, tabwidth, padding, padchar, flags)
}

// Wrapper writes rows of tab separated values.
type Wrapper struct {
	*ansiterm.TabWriter
}

// Println writes values as a single row.
func (w *Wrapper) Println(values ...interface{}) {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = fmt.Sprint(v)
	}
	fmt.Fprintln(w, strings.Join(cells, "\t"))
}

// Wrap returns a Wrapper around a TabWriter for writer.
func Wrap(writer io.Writer) *Wrapper {
	return &Wrapper{TabWriter(writer)}
}
