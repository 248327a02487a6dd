package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

type table struct {
	w *tabwriter.Writer
}

func newTable(w io.Writer) table {
	return table{w: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)} //nolint:mnd
}

func (t table) Row(cells ...string) {
	_, _ = fmt.Fprintln(t.w, strings.Join(cells, "\t"))
}

func (t table) Flush() error {
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("tabwriter.Flush: %w", err)
	}

	return nil
}
