package store

import (
	"fmt"
	"strings"
)

var tables = []Table{PendingEvents, Events, Registrations}

// schema returns the CREATE TABLE statement for t; seqType is the dialect's
// auto-incrementing key, which preserves insertion order.
func schema(t Table, seqType string) string {
	cols := make([]string, 0, len(t.Columns())+1)
	cols = append(cols, "seq "+seqType)
	for _, c := range t.Columns() {
		cols = append(cols, c+" TEXT NOT NULL")
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", t, strings.Join(cols, ", "))
}

func selectSQL(t Table) string {
	return fmt.Sprintf("SELECT seq, %s FROM %s ORDER BY seq", strings.Join(t.Columns(), ", "), t)
}

// insertSQL builds an INSERT for t; ph renders the n-th (1-based) placeholder.
func insertSQL(t Table, ph func(n int) string) string {
	marks := make([]string, len(t.Columns()))
	for i := range marks {
		marks[i] = ph(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t, strings.Join(t.Columns(), ", "), strings.Join(marks, ", "))
}

// args widens row to the column count of t.
func args(t Table, row []string) []any {
	out := make([]any, len(t.Columns()))
	for i := range out {
		if i < len(row) {
			out[i] = row[i]
		} else {
			out[i] = ""
		}
	}
	return out
}

// seqRow is a persisted row together with its durable sequence number.
type seqRow struct {
	seq int64
	row []string
}

func scanTargets(seq *int64, row []string) []any {
	dest := make([]any, 0, len(row)+1)
	dest = append(dest, seq)
	for i := range row {
		dest = append(dest, &row[i])
	}
	return dest
}

func rowsOf(in []seqRow) [][]string {
	out := make([][]string, len(in))
	for i, r := range in {
		out[i] = r.row
	}
	return out
}
