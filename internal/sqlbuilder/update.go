package sqlbuilder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFields is returned when an update would not set any column.
var ErrNoFields = errors.New("sqlbuilder: no fields to update")

// Table describes which columns of a table may be changed by a partial update.
type Table struct {
	Name      string   // table name
	Key       string   // column identifying the row, never updatable
	Columns   []string // updatable columns, in statement order
	Returning []string // columns returned by the statement
}

// Update builds "UPDATE name SET c1=$1, ... WHERE key=$n RETURNING ...".
// Only columns present in fields are set, in the order of t.Columns.
// A field that is not an allowed column is an error.
func (t Table) Update(fields map[string]any, key any) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, ErrNoFields
	}

	allowed := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		allowed[c] = struct{}{}
	}
	for name := range fields {
		if _, ok := allowed[name]; !ok {
			return "", nil, fmt.Errorf("sqlbuilder: column %q is not updatable on %s", name, t.Name)
		}
	}

	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for _, c := range t.Columns {
		v, ok := fields[c]
		if !ok {
			continue
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s=$%d", c, len(args)))
	}
	args = append(args, key)

	var sb strings.Builder
	fmt.Fprintf(&sb, "UPDATE %s SET %s WHERE %s=$%d", t.Name, strings.Join(sets, ", "), t.Key, len(args))
	if len(t.Returning) > 0 {
		sb.WriteString(" RETURNING ")
		sb.WriteString(strings.Join(t.Returning, ", "))
	}
	return sb.String(), args, nil
}
