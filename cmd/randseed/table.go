package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"
)

// table writes rows as aligned columns with a header when w is a terminal
// and as bare CSV otherwise, so output can be piped into other tools.
type table struct {
	csv *csv.Writer
	tw  *tabwriter.Writer
}

func newTable(w io.Writer, header ...string) *table {
	if !isTerminal(w) {
		return &table{csv: csv.NewWriter(w)}
	}
	t := &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
	t.Write(header...)
	return t
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (t *table) Write(record ...string) error {
	if t.csv != nil {
		return t.csv.Write(record)
	}
	_, err := io.WriteString(t.tw, strings.Join(record, "\t")+"\n")
	return err
}

func (t *table) Flush() error {
	if t.csv != nil {
		t.csv.Flush()
		return t.csv.Error()
	}
	return t.tw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatInt(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
