// Package sqlbuilder assembles parameterized Postgres statements.
// Values are always bound through $n placeholders; only column and table names
// supplied by the program itself are ever written into the statement text.
package sqlbuilder

import (
	"fmt"
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Where accumulates predicates that are joined with AND.
// The zero value is ready to use.
type Where struct {
	conds []string
	args  []any
}

func (w *Where) add(format, column string, value any) *Where {
	w.args = append(w.args, value)
	w.conds = append(w.conds, fmt.Sprintf(format, column, len(w.args)))
	return w
}

// ILike adds a case-insensitive substring match. Empty values add nothing.
func (w *Where) ILike(column, value string) *Where {
	if value == "" {
		return w
	}
	return w.add("%s ILIKE $%d", column, "%"+likeEscaper.Replace(value)+"%")
}

// Gte adds an inclusive lower bound.
func (w *Where) Gte(column string, value any) *Where {
	return w.add("%s >= $%d", column, value)
}

// Lte adds an inclusive upper bound.
func (w *Where) Lte(column string, value any) *Where {
	return w.add("%s <= $%d", column, value)
}

// Len returns the number of predicates added so far.
func (w *Where) Len() int {
	return len(w.conds)
}

// Build returns the clause, with a leading space, and its arguments.
// Without predicates the clause is empty.
func (w *Where) Build() (string, []any) {
	if len(w.conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(w.conds, " AND "), w.args
}
