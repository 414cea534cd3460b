package repository

import (
	"fmt"
	"strings"

	"github.com/iliyamo/performance-search/internal/predicate"
)

// Column maps a logical predicate field to SQL.  Expr is the column
// expression compared against the value.  When Exists is set it is a format
// string with one %s verb for the comparison, used for fields that live in a
// child table (e.g. a film's section codes).
type Column struct {
	Expr   string
	Exists string
}

// Columns is the field mapping of one table.
type Columns map[string]Column

// Where renders p as a SQL condition with ? placeholders for cols.  A nil
// predicate renders as "1 = 1".  Fields missing from cols yield
// ErrUnknownField.
func Where(p predicate.Predicate, cols Columns) (string, []any, error) {
	b := whereBuilder{cols: cols}
	cond, err := b.build(p)
	if err != nil {
		return "", nil, err
	}
	return cond, b.args, nil
}

type whereBuilder struct {
	cols Columns
	args []any
}

func (b *whereBuilder) build(p predicate.Predicate) (string, error) {
	switch n := p.(type) {
	case nil:
		return "1 = 1", nil
	case predicate.Eq:
		b.args = append(b.args, n.Value)
		return b.compare(n.Field, "%s = ?")
	case predicate.Gte:
		b.args = append(b.args, n.Value)
		return b.compare(n.Field, "%s >= ?")
	case predicate.In:
		if len(n.Values) == 0 {
			if _, ok := b.cols[n.Field]; !ok {
				return "", fmt.Errorf("%w: %s", ErrUnknownField, n.Field)
			}
			return "1 = 0", nil
		}
		b.args = append(b.args, n.Values...)
		marks := strings.TrimSuffix(strings.Repeat("?, ", len(n.Values)), ", ")
		return b.compare(n.Field, "%s IN ("+marks+")")
	case predicate.Contains:
		b.args = append(b.args, n.Substr)
		// BINARY keeps the match case sensitive under the default collation.
		return b.compare(n.Field, "INSTR(BINARY %s, ?) > 0")
	case predicate.And:
		return b.join([]predicate.Predicate(n), " AND ", "1 = 1")
	case predicate.Or:
		return b.join([]predicate.Predicate(n), " OR ", "1 = 0")
	default:
		return "", fmt.Errorf("repository: unsupported predicate %T", p)
	}
}

func (b *whereBuilder) compare(field, format string) (string, error) {
	col, ok := b.cols[field]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	cond := fmt.Sprintf(format, col.Expr)
	if col.Exists != "" {
		cond = fmt.Sprintf(col.Exists, cond)
	}
	return cond, nil
}

func (b *whereBuilder) join(children []predicate.Predicate, sep, empty string) (string, error) {
	switch len(children) {
	case 0:
		return empty, nil
	case 1:
		return b.build(children[0])
	}
	parts := make([]string, 0, len(children))
	for _, c := range children {
		s, err := b.build(c)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}
